// Package main implements the jobd CLI: a job orchestration layer for
// AI-assisted development, applying state machine patterns to LLM coding
// workflows with model/skill routing, retry logic and an audit trail.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/jobd/internal/anthropic"
	"github.com/fyrsmithlabs/jobd/internal/config"
	"github.com/fyrsmithlabs/jobd/internal/job"
	"github.com/fyrsmithlabs/jobd/internal/logging"
)

var version = "dev"

var (
	configPath string
	modelFlag  string
	maxRetries int
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jobd",
	Short: "Job orchestration for AI-assisted development",
	Long: `jobd applies enterprise state machine patterns to LLM coding workflows:
jobs move INIT -> DEFINE_AGENT -> PROCESS -> END with skill and model
routing, retry with exponential backoff, and a full audit trail.

Examples:
  # Run a job from a description
  jobd run "implement the login page"

  # Run a job definition from a file
  jobd run --file job.toml

  # Force a model tier
  jobd --model opus run "redesign the storage layer"`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to config file (default ~/.config/jobd/config.yaml)")
	pf.StringVar(&modelFlag, "model", "", "model tier to use for this session (haiku, sonnet, opus)")
	pf.IntVar(&maxRetries, "max-retries", -1, "maximum retries on failure (overrides config)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(demoCmd)
}

// setup loads configuration and builds the logger before any subcommand.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	logger, err = logging.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	if _, err := modelOverride(); err != nil {
		return err
	}
	return nil
}

// modelOverride parses the --model flag; empty means no override.
func modelOverride() (job.ModelTier, error) {
	if modelFlag == "" {
		return "", nil
	}
	tier := job.ModelTier(modelFlag)
	if !tier.Valid() {
		return "", fmt.Errorf("invalid model tier %q (expected haiku, sonnet or opus)", modelFlag)
	}
	return tier, nil
}

// effectiveRetryConfig resolves CLI override > config > defaults.
func effectiveRetryConfig() job.RetryConfig {
	rc := cfg.JobRetryConfig()
	if maxRetries >= 0 {
		rc.MaxRetries = maxRetries
	}
	return rc
}

// newClient returns an API client, or nil for stub mode when no key is
// configured.
func newClient() anthropic.MessageSender {
	if cfg.Anthropic.APIKey == "" {
		return nil
	}
	return anthropic.NewClient(cfg.Anthropic.APIKey)
}

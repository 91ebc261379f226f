package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/jobd/internal/git"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current orchestrator status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	rc := effectiveRetryConfig()

	fmt.Fprintln(out, "jobd — Status")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "  Default model tier : %s\n", cfg.Model.DefaultTier)
	fmt.Fprintf(out, "  Max retries        : %d\n", rc.MaxRetries)
	fmt.Fprintf(out, "  Base delay         : %d ms\n", rc.BaseDelayMS)
	fmt.Fprintf(out, "  Config file        : %s\n", configFileStatus())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Anthropic API:")
	if cfg.Anthropic.APIKey == "" {
		fmt.Fprintln(out, "  API key : not configured (jobs will run in stub mode)")
	} else {
		fmt.Fprintln(out, "  API key : configured")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Git:")
	gm, err := git.Open(".")
	if err != nil {
		fmt.Fprintln(out, "  Repository : not detected")
		return nil
	}
	branch, err := gm.CurrentBranch()
	if err != nil {
		branch = "unknown"
	}
	fmt.Fprintln(out, "  Repository : detected")
	fmt.Fprintf(out, "  Branch     : %s\n", branch)
	return nil
}

func configFileStatus() string {
	path := configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "unknown"
		}
		path = filepath.Join(home, ".config", "jobd", "config.yaml")
	}
	if _, err := os.Stat(path); err != nil {
		return "not found (using defaults)"
	}
	return path + " (loaded)"
}

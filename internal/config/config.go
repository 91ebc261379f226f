// Package config provides configuration loading for jobd.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/jobd/internal/job"
	"github.com/fyrsmithlabs/jobd/internal/logging"
)

// Config is the top-level jobd configuration.
type Config struct {
	Anthropic AnthropicConfig `koanf:"anthropic"`
	Model     ModelConfig     `koanf:"model"`
	Retry     RetryConfig     `koanf:"retry"`
	Logging   logging.Config  `koanf:"logging"`
}

// AnthropicConfig configures the API client.
type AnthropicConfig struct {
	// APIKey authenticates against the Anthropic API. When empty, jobs
	// run in stub mode. The ANTHROPIC_API_KEY environment variable
	// always takes precedence over the file value.
	APIKey string `koanf:"api_key"`
}

// ModelConfig configures model tier selection.
type ModelConfig struct {
	// DefaultTier is used when neither the CLI nor classification picks
	// a tier: haiku, sonnet or opus.
	DefaultTier string `koanf:"default_tier"`
}

// RetryConfig configures the job retry policy.
type RetryConfig struct {
	MaxRetries  int   `koanf:"max_retries"`
	BaseDelayMS int64 `koanf:"base_delay_ms"`
}

// NewDefaultConfig returns the hardcoded defaults.
func NewDefaultConfig() *Config {
	retry := job.DefaultRetryConfig()
	return &Config{
		Model: ModelConfig{DefaultTier: string(job.TierSonnet)},
		Retry: RetryConfig{
			MaxRetries:  retry.MaxRetries,
			BaseDelayMS: retry.BaseDelayMS,
		},
		Logging: logging.NewDefaultConfig(),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !job.ModelTier(c.Model.DefaultTier).Valid() {
		return fmt.Errorf("invalid model.default_tier %q: must be haiku, sonnet or opus", c.Model.DefaultTier)
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative, got %d", c.Retry.MaxRetries)
	}
	if c.Retry.BaseDelayMS <= 0 {
		return fmt.Errorf("retry.base_delay_ms must be positive, got %d", c.Retry.BaseDelayMS)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// JobRetryConfig converts the retry section into the job package's type.
func (c *Config) JobRetryConfig() job.RetryConfig {
	return job.RetryConfig{
		MaxRetries:  c.Retry.MaxRetries,
		BaseDelayMS: c.Retry.BaseDelayMS,
	}
}

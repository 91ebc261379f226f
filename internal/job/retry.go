package job

import "time"

// RetryConfig bounds retry behavior for a job.
type RetryConfig struct {
	// MaxRetries is the number of retries allowed before the job is
	// marked failed.
	MaxRetries int `json:"max_retries" toml:"max_retries"`
	// BaseDelayMS is the base delay in milliseconds for exponential
	// backoff.
	BaseDelayMS int64 `json:"base_delay_ms" toml:"base_delay_ms"`
}

// DefaultRetryConfig returns the default retry policy: 3 retries with a
// 1s base delay.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{MaxRetries: 3, BaseDelayMS: 1000}
}

// DelayForAttempt computes the backoff delay for a retry attempt using
// classic exponential backoff: base * 2^(attempt-1). Attempts below 1 are
// treated as attempt 1, so the delay never drops under the base.
func (c RetryConfig) DelayForAttempt(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(c.BaseDelayMS) * time.Millisecond << (attempt - 1)
}

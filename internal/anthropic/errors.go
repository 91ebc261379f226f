package anthropic

import (
	"fmt"
	"time"
)

// RateLimitError is returned when the API responds with HTTP 429.
// RetryAfter carries the server's suggested wait, or a 1s default when
// the header is missing.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %dms", e.RetryAfter.Milliseconds())
}

// APIError is returned for any non-429 error status from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Status, e.Message)
}

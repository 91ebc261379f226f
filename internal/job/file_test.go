package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile_JSONSanitizesLifecycle(t *testing.T) {
	// A tampered record claiming a finished lifecycle and exhausted retries.
	path := writeFile(t, "job.json", `{
		"id": "abc-123",
		"description": "Fix the login bug",
		"status": "completed",
		"state": "END",
		"state_history": ["INIT", "DEFINE_AGENT", "PROCESS"],
		"retry_count": 42,
		"retry_config": {"max_retries": 5, "base_delay_ms": 200}
	}`)

	j, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", j.ID)
	assert.Equal(t, "Fix the login bug", j.Description)
	assert.Equal(t, StateInit, j.State)
	assert.Equal(t, StatusPending, j.Status)
	assert.Equal(t, 0, j.RetryCount)
	assert.Empty(t, j.StateHistory)
	assert.Equal(t, 5, j.RetryConfig.MaxRetries)
	assert.Equal(t, int64(200), j.RetryConfig.BaseDelayMS)
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "job.toml", `
description = "Refactor the auth module"

[retry_config]
max_retries = 2
base_delay_ms = 500
`)

	j, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Refactor the auth module", j.Description)
	assert.NotEmpty(t, j.ID, "missing id is generated")
	assert.Equal(t, StateInit, j.State)
	assert.Equal(t, 2, j.RetryConfig.MaxRetries)
}

func TestLoadFile_DefaultsZeroBaseDelay(t *testing.T) {
	path := writeFile(t, "job.json", `{"description": "minimal"}`)

	j, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultRetryConfig().BaseDelayMS, j.RetryConfig.BaseDelayMS)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	path := writeFile(t, "bad.json", "{not json")
	_, err := LoadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse JSON")
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	path := writeFile(t, "bad.toml", "= broken =")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

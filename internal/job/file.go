package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a job definition from a JSON or TOML file (chosen by
// extension, JSON by default) and sanitizes it for execution. Whatever
// lifecycle the file claims, the returned job always starts from a clean
// INIT/pending state with an empty history and a zero retry count.
func LoadFile(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var j Job
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &j); err != nil {
			return nil, fmt.Errorf("failed to parse TOML job from %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &j); err != nil {
			return nil, fmt.Errorf("failed to parse JSON job from %s: %w", path, err)
		}
	}

	if j.RetryConfig.BaseDelayMS <= 0 {
		j.RetryConfig.BaseDelayMS = DefaultRetryConfig().BaseDelayMS
	}
	if j.RetryConfig.MaxRetries < 0 {
		j.RetryConfig.MaxRetries = DefaultRetryConfig().MaxRetries
	}

	j.Sanitize()
	return &j, nil
}

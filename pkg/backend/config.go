package backend

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds client configuration: where the executor lives and
// where the live view of the browser environment can be watched.
type Config struct {
	// BackendURL is the base URL of the task executor.
	BackendURL string `yaml:"backend_url"`

	// LiveViewURL is the embeddable view of the target browser
	// environment (typically a noVNC page). May be empty.
	LiveViewURL string `yaml:"live_view_url"`

	// TimeoutSeconds bounds one task submission end to end. Agent runs
	// are long; the default is generous. Zero means the default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		BackendURL:     "http://localhost:8000",
		LiveViewURL:    "http://localhost:6080/vnc.html",
		TimeoutSeconds: 600,
	}
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 600 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LoadConfig reads configuration from path, falling back to defaults
// when the file does not exist. Unknown keys are rejected (strict
// decode). Environment variables TASKVIEW_BACKEND_URL and
// TASKVIEW_LIVE_URL override file values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config: %w", err)
			}
		} else {
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(&cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("TASKVIEW_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("TASKVIEW_LIVE_URL"); v != "" {
		cfg.LiveViewURL = v
	}
	return cfg, nil
}

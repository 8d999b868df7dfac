package chat

import (
	"os"
	"time"
)

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ConfigFromEnv reads GEMINI_API_KEY, GEMINI_MODEL and GEMINI_TIMEOUT.
// An empty APIKey leaves the chat endpoint answering with a configuration error.
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Model:   os.Getenv("GEMINI_MODEL"),
		Timeout: DefaultTimeout,
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if d, err := time.ParseDuration(os.Getenv("GEMINI_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

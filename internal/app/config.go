package app

import "errors"

// Config holds everything an App instance needs for one invocation.
type Config struct {
	// FilePath is the pipeline document to process.
	FilePath string
	// Tags filter which tasks run; empty means run everything.
	Tags []string

	LogFormat string
	LogLevel  string
}

// NewConfig validates and returns the configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("FilePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// WorkspacePath points at a workspace file or a directory of them.
	WorkspacePath string
	// ProductVersion, when set, overrides the workspace's product version.
	ProductVersion string
	// StrictLinks, when set, overrides the workspace's strict-links mode.
	StrictLinks string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkspacePath == "" {
		return nil, errors.New("WorkspacePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

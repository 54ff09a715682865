package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigName names the launch configuration to run.
	ConfigName string
	// ConfigPaths are extra .hcl files or directories with user-defined
	// configurations.
	ConfigPaths []string
	// Passthrough is forwarded verbatim to the trainer after the fixed flags.
	Passthrough []string
	// Trainer overrides the trainer program path.
	Trainer string

	// List prints the known configurations instead of launching.
	List bool
	// PrintOnly prints the assembled argument vector instead of launching.
	PrintOnly bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigName == "" && !cfg.List {
		return nil, errors.New("a launch configuration name is required")
	}
	return &cfg, nil
}

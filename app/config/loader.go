package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of collection job configurations
type Loader struct {
	path string
}

// NewLoader creates a new job configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the YAML job file, applies defaults and validates the result
func (l *Loader) Load() (*JobConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var config JobConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid job config %s: %w", l.path, err)
	}

	return &config, nil
}

// setDefaults applies default values to configuration
func (l *Loader) setDefaults(config *JobConfig) {
	if config.Settings.PostLimit == 0 {
		config.Settings.PostLimit = 50
	}
	if config.Settings.Cooldown == 0 {
		config.Settings.Cooldown = 1 // seconds
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = 30 // seconds
	}
}

// validate validates the configuration
func (l *Loader) validate(config *JobConfig) error {
	if len(config.Subreddits) == 0 {
		return fmt.Errorf("at least one subreddit is required")
	}

	for i, sr := range config.Subreddits {
		if strings.TrimSpace(sr) == "" {
			return fmt.Errorf("subreddit at index %d is empty", i)
		}
	}

	for i, kw := range config.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("keyword at index %d is empty", i)
		}
	}

	if config.Settings.PostLimit < 0 {
		return fmt.Errorf("post limit must be non-negative")
	}
	if config.Settings.Cooldown < 0 {
		return fmt.Errorf("cooldown must be non-negative")
	}
	if config.Settings.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	return nil
}

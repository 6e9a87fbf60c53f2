package config

import (
	"time"
)

// GetCooldown returns the inter-subreddit cooldown as time.Duration
func (s *JobSettings) GetCooldown() time.Duration {
	if s.Cooldown <= 0 {
		return 0
	}
	return time.Duration(s.Cooldown) * time.Second
}

// GetTimeout returns the per-request timeout as time.Duration
func (s *JobSettings) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 30 * time.Second // default 30 seconds
	}
	return time.Duration(s.Timeout) * time.Second
}

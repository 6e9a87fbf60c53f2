package config

// JobConfig represents a complete collection job configuration
type JobConfig struct {
	Subreddits []string    `yaml:"subreddits"`
	Keywords   []string    `yaml:"keywords"`
	Settings   JobSettings `yaml:"settings"`
}

// JobSettings contains collection run settings
type JobSettings struct {
	PostLimit int `yaml:"post_limit"` // maximum posts per subreddit per pass
	Cooldown  int `yaml:"cooldown"`   // seconds between subreddits
	Timeout   int `yaml:"timeout"`    // seconds per request
}

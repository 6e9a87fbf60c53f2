package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

const (
	SourceAPI = "api"
	SourceRSS = "rss"
)

type rawCfg struct {
	// Reddit API credentials
	ClientID     string `long:"client-id" env:"REDDIT_CLIENT_ID" description:"Reddit API client ID (required for api source)"`
	ClientSecret string `long:"client-secret" env:"REDDIT_CLIENT_SECRET" description:"Reddit API client secret (required for api source)"`
	UserAgent    string `long:"user-agent" env:"REDDIT_USER_AGENT" default:"reddit-comb/1.0" description:"User agent string for Reddit requests"`

	// Application configuration
	JobFile    string `long:"job-file" env:"JOB_FILE" default:"./job.yml" description:"Path to the collection job configuration file"`
	OutputPath string `long:"output" env:"OUTPUT_PATH" default:"./reddit_data.csv" description:"Path to the CSV output file (rewritten on each run)"`
	Source     string `long:"source" env:"SOURCE" default:"api" choice:"api" choice:"rss" description:"Data source: authenticated JSON API or credential-less RSS feeds"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ClientID:     raw.ClientID,
		ClientSecret: raw.ClientSecret,
		UserAgent:    raw.UserAgent,
		JobFile:      raw.JobFile,
		OutputPath:   raw.OutputPath,
		Source:       raw.Source,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// validate enforces the credential requirement for the authenticated API
// source. The RSS source works without credentials.
func (c *Cfg) validate() error {
	if c.Source == SourceAPI {
		if c.ClientID == "" || c.ClientSecret == "" || c.UserAgent == "" {
			return fmt.Errorf("missing Reddit credentials: REDDIT_CLIENT_ID, REDDIT_CLIENT_SECRET and REDDIT_USER_AGENT are required for the api source")
		}
	}
	return nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}

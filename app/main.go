package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/reddit-comb/app/cfg"
	"github.com/lysyi3m/reddit-comb/app/collector"
	"github.com/lysyi3m/reddit-comb/app/config"
	"github.com/lysyi3m/reddit-comb/app/export"
	"github.com/lysyi3m/reddit-comb/app/reddit"
	"github.com/lysyi3m/reddit-comb/app/rss"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting Reddit data collection", "version", appCfg.Version, "source", appCfg.Source)

	job, err := config.NewLoader(appCfg.JobFile).Load()
	if err != nil {
		slog.Error("Failed to load job configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Job configuration loaded",
		"subreddits", len(job.Subreddits),
		"keywords", len(job.Keywords),
		"post_limit", job.Settings.PostLimit)

	var source collector.Source
	switch appCfg.Source {
	case cfg.SourceRSS:
		source = rss.NewSource(appCfg.UserAgent, job.Settings.GetTimeout())
	default:
		source = reddit.NewClient(appCfg.ClientID, appCfg.ClientSecret, appCfg.UserAgent, job.Settings.GetTimeout())
	}

	ctx := context.Background()
	runner := collector.NewRunner(source, job.Settings.GetCooldown())

	rows := runner.CollectHot(ctx, job.Subreddits, job.Settings.PostLimit)
	for _, keyword := range job.Keywords {
		rows = append(rows, runner.CollectSearch(ctx, job.Subreddits, keyword, job.Settings.PostLimit)...)
	}

	unique, summary := collector.NewSink().Finalize(rows)

	writer := export.NewWriter(appCfg.OutputPath)
	if err := writer.Run(unique); err != nil {
		slog.Error("Failed to write output", "error", err)
		os.Exit(1)
	}

	slog.Info("Data collection complete",
		"output", appCfg.OutputPath,
		"unique", summary.Unique,
		"duplicates", summary.Duplicates)
}

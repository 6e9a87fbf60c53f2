package collector

import (
	"context"
	"log/slog"
	"time"
)

// Runner sweeps the configured subreddits against an injected Source,
// normalizing every returned post. A failure on one subreddit is logged and
// skipped; the sweep continues with the remaining subreddits.
type Runner struct {
	source   Source
	cooldown time.Duration
}

func NewRunner(source Source, cooldown time.Duration) *Runner {
	return &Runner{
		source:   source,
		cooldown: cooldown,
	}
}

// CollectHot gathers up to limit hot-listing posts per subreddit, in input
// order. Rows carry a nil search_query.
func (r *Runner) CollectHot(ctx context.Context, subreddits []string, limit int) []Row {
	return r.collect(ctx, subreddits, limit, nil)
}

// CollectSearch gathers up to limit posts matching query per subreddit, in
// input order. Rows carry query as their search_query.
func (r *Runner) CollectSearch(ctx context.Context, subreddits []string, query string, limit int) []Row {
	if query == "" {
		slog.Warn("Skipping search pass, empty query")
		return nil
	}
	return r.collect(ctx, subreddits, limit, &query)
}

func (r *Runner) collect(ctx context.Context, subreddits []string, limit int, query *string) []Row {
	var rows []Row
	skipped := 0

	for i, sr := range subreddits {
		if i > 0 && r.cooldown > 0 {
			// Rate-limit courtesy between subreddits.
			time.Sleep(r.cooldown)
		}

		posts, err := r.fetch(ctx, sr, limit, query)
		if err != nil {
			slog.Warn("Skipping subreddit", "subreddit", sr, "error", err)
			skipped++
			continue
		}

		for _, post := range posts {
			rows = append(rows, Normalize(post, query))
		}

		slog.Debug("Subreddit collected", "subreddit", sr, "posts", len(posts))
	}

	if query == nil {
		slog.Info("Hot pass completed",
			"subreddits", len(subreddits),
			"skipped", skipped,
			"collected", len(rows))
	} else {
		slog.Info("Search pass completed",
			"query", *query,
			"subreddits", len(subreddits),
			"skipped", skipped,
			"collected", len(rows))
	}

	return rows
}

func (r *Runner) fetch(ctx context.Context, subreddit string, limit int, query *string) ([]Post, error) {
	if query != nil {
		return r.source.Search(ctx, subreddit, *query, limit)
	}
	return r.source.Hot(ctx, subreddit, limit)
}

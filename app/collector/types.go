package collector

import (
	"context"
)

// BaseURL is the prefix for building absolute permalinks from the relative
// paths reported by the platform.
const BaseURL = "https://www.reddit.com"

// Post is a raw source record as reported by a Source. Every attribute may be
// missing; absent values are nil. Subreddit is coerced to a plain string
// (possibly empty) because every source reports it alongside the listing.
type Post struct {
	Title         *string
	Score         *int
	UpvoteRatio   *float64
	NumComments   *int
	Author        *string // nil for deleted/suspended accounts
	Subreddit     string
	URL           *string
	PermalinkPath *string // relative path, e.g. /r/golang/comments/abc/...
	CreatedUTC    *float64
	IsSelf        *bool
	Selftext      *string
	Flair         *string
}

// Source is the external data capability the runner collects from. Both the
// authenticated JSON API and the credential-less RSS fallback implement it.
type Source interface {
	// Hot returns up to limit posts from the subreddit's hot listing,
	// in listing order.
	Hot(ctx context.Context, subreddit string, limit int) ([]Post, error)

	// Search returns up to limit posts matching query within the subreddit,
	// in result order.
	Search(ctx context.Context, subreddit string, query string, limit int) ([]Post, error)
}

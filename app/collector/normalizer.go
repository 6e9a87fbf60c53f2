package collector

import (
	"net/url"
	"unicode/utf8"
)

// SelftextLimit is the truncation boundary for post bodies.
const SelftextLimit = 500

// Columns is the canonical output schema. Order is fixed and significant:
// the CSV header and every projected row follow it exactly.
var Columns = []string{
	"title",
	"score",
	"upvote_ratio",
	"num_comments",
	"author",
	"subreddit",
	"url",
	"permalink",
	"created_utc",
	"is_self",
	"selftext",
	"flair",
	"domain",
	"search_query",
}

// Row is a schema-complete normalized post. Nullable fields are pointers;
// Subreddit is always a string (possibly empty) and Permalink is always
// constructed, degenerating to the bare BaseURL when the source reported no
// relative path.
type Row struct {
	Title       *string
	Score       *int
	UpvoteRatio *float64
	NumComments *int
	Author      *string
	Subreddit   string
	URL         *string
	Permalink   string
	CreatedUTC  *int64
	IsSelf      *bool
	Selftext    *string
	Flair       *string
	Domain      *string
	SearchQuery *string
}

// Values projects the row onto Columns, in canonical order. This is the
// single mapping between field and column position; export and tests go
// through it rather than touching fields positionally.
func (r Row) Values() []any {
	return []any{
		r.Title,
		r.Score,
		r.UpvoteRatio,
		r.NumComments,
		r.Author,
		r.Subreddit,
		r.URL,
		r.Permalink,
		r.CreatedUTC,
		r.IsSelf,
		r.Selftext,
		r.Flair,
		r.Domain,
		r.SearchQuery,
	}
}

// HasPermalink reports whether the row carries a real permalink, as opposed
// to the degenerate bare base URL produced when the source record had no
// relative path. Degenerate permalinks are excluded from deduplication.
func (r Row) HasPermalink() bool {
	return r.Permalink != BaseURL
}

// Normalize converts a raw post into a schema-complete row. It never fails:
// absent attributes become nil fields and derivation failures are absorbed.
// query is nil for hot-listing passes and the originating keyword for search
// passes.
func Normalize(p Post, query *string) Row {
	row := Row{
		Title:       p.Title,
		Score:       p.Score,
		UpvoteRatio: p.UpvoteRatio,
		NumComments: p.NumComments,
		Author:      p.Author,
		Subreddit:   p.Subreddit,
		URL:         p.URL,
		Permalink:   buildPermalink(p.PermalinkPath),
		CreatedUTC:  coerceEpoch(p.CreatedUTC),
		IsSelf:      p.IsSelf,
		Selftext:    truncateBody(p.Selftext),
		Flair:       p.Flair,
		Domain:      deriveDomain(p.URL),
		SearchQuery: query,
	}

	return row
}

func buildPermalink(path *string) string {
	if path == nil {
		return BaseURL
	}
	return BaseURL + *path
}

// coerceEpoch converts the reported creation time to an integer epoch.
// A zero timestamp is treated the same as an absent one.
func coerceEpoch(epoch *float64) *int64 {
	if epoch == nil || *epoch == 0 {
		return nil
	}
	v := int64(*epoch)
	return &v
}

// truncateBody caps the body at SelftextLimit bytes, backing off to the
// nearest rune boundary so the cut never produces invalid UTF-8. Absent or
// empty bodies normalize to nil.
func truncateBody(body *string) *string {
	if body == nil || *body == "" {
		return nil
	}

	b := *body
	if len(b) <= SelftextLimit {
		return &b
	}

	cut := SelftextLimit
	for cut > 0 && !utf8.RuneStart(b[cut]) {
		cut--
	}
	b = b[:cut]
	return &b
}

// deriveDomain extracts the network location from the post URL. Any parse
// failure or scheme-less value yields nil, never an error.
func deriveDomain(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}

	u, err := url.Parse(*raw)
	if err != nil || u.Host == "" {
		return nil
	}

	host := u.Host
	return &host
}

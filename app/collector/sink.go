package collector

import (
	"log/slog"
)

// Summary reports the outcome of a Finalize call.
type Summary struct {
	Total       int // rows in
	Duplicates  int // rows dropped for sharing a permalink with an earlier row
	Unique      int // rows out
	NoPermalink int // rows kept despite a degenerate permalink (see HasPermalink)
}

// Sink merges rows from all passes into the final deduplicated set.
type Sink struct{}

func NewSink() *Sink {
	return &Sink{}
}

// Finalize removes rows whose permalink was already seen, keeping the first
// occurrence in input order. Rows without a real permalink cannot be
// meaningfully compared, so they are all retained and counted separately.
// The returned set is schema-complete by construction (Row carries all
// columns) and Finalize is idempotent over its own output.
func (s *Sink) Finalize(rows []Row) ([]Row, Summary) {
	summary := Summary{Total: len(rows)}

	seen := make(map[string]bool, len(rows))
	unique := make([]Row, 0, len(rows))

	for _, row := range rows {
		if !row.HasPermalink() {
			summary.NoPermalink++
			unique = append(unique, row)
			continue
		}

		if seen[row.Permalink] {
			summary.Duplicates++
			continue
		}

		seen[row.Permalink] = true
		unique = append(unique, row)
	}

	summary.Unique = len(unique)

	slog.Info("Aggregation completed",
		"total", summary.Total,
		"duplicates", summary.Duplicates,
		"unique", summary.Unique,
		"no_permalink", summary.NoPermalink)

	return unique, summary
}

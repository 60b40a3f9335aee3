package store

import (
	"context"
	"sort"

	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/report"
)

// Store persists analysis reports
type Store interface {
	Close() error

	// SaveReport inserts a report, replacing any report with the same ID.
	SaveReport(ctx context.Context, r report.Report) error
	// GetReport returns the report with the given ID or an error wrapping
	// internalerr.ErrNotFound.
	GetReport(ctx context.Context, id string) (report.Report, error)
	// ListReports returns the newest reports first. limit <= 0 returns all.
	ListReports(ctx context.Context, limit int) ([]report.Report, error)
	// WordTotals sums word frequencies over all stored reports.
	WordTotals(ctx context.Context, limit int) ([]analytics.WordFrequency, error)
}

// SortTotals orders summed word counts by count descending, then word.
// Both implementations share it so their output matches.
func SortTotals(totals map[string]int, limit int) []analytics.WordFrequency {
	out := make([]analytics.WordFrequency, 0, len(totals))
	for word, n := range totals {
		out = append(out, analytics.WordFrequency{Text: word, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value == out[j].Value {
			return out[i].Text < out[j].Text
		}
		return out[i].Value > out[j].Value
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

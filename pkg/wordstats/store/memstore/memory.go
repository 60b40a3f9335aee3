package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/internalerr"
	"github.com/cognicore/wordstats/pkg/wordstats/report"
	"github.com/cognicore/wordstats/pkg/wordstats/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu      sync.RWMutex
	reports map[string]report.Report
}

var _ store.Store = (*Store)(nil)

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		reports: make(map[string]report.Report),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveReport implements store.Store.
func (s *Store) SaveReport(ctx context.Context, r report.Report) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("save report: %w: empty id", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = copyReport(r)
	return nil
}

// GetReport implements store.Store.
func (s *Store) GetReport(ctx context.Context, id string) (report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.reports[id]; ok {
		return copyReport(r), nil
	}
	return report.Report{}, fmt.Errorf("report %s: %w", id, internalerr.ErrNotFound)
}

// ListReports implements store.Store.
func (s *Store) ListReports(ctx context.Context, limit int) ([]report.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.reports))
	for id := range s.reports {
		ids = append(ids, id)
	}
	// ULIDs sort lexically in creation order
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	out := make([]report.Report, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyReport(s.reports[id]))
	}
	return out, nil
}

// WordTotals implements store.Store.
func (s *Store) WordTotals(ctx context.Context, limit int) ([]analytics.WordFrequency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int)
	for _, r := range s.reports {
		for _, wf := range r.Result.WordFrequencies {
			totals[wf.Text] += wf.Value
		}
	}
	return store.SortTotals(totals, limit), nil
}

func copyReport(r report.Report) report.Report {
	r.Result.WordFrequencies = copyRows(r.Result.WordFrequencies)
	r.Result.TopBigrams = copyRows(r.Result.TopBigrams)
	return r
}

func copyRows(rows []analytics.WordFrequency) []analytics.WordFrequency {
	if rows == nil {
		return nil
	}
	out := make([]analytics.WordFrequency, len(rows))
	for i, row := range rows {
		if row.Percentage != nil {
			pct := *row.Percentage
			row.Percentage = &pct
		}
		out[i] = row
	}
	return out
}

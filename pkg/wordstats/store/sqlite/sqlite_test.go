package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/wordstats/pkg/wordstats"
	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/internalerr"
	"github.com/cognicore/wordstats/pkg/wordstats/report"
	"github.com/cognicore/wordstats/pkg/wordstats/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func newBuilder() *report.Builder {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	return report.NewWithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Millisecond)
		return now
	})
}

// TestSQLiteRoundTrip checks that a stored report decodes to the same value
func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	r := newBuilder().Build("essay.txt", wordstats.Analyze(
		"Good writing is clear writing. Clear writing is good thinking!"))

	if err := st.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	got, err := st.GetReport(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteRoundTripPercentages(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	res := wordstats.Analyze("alpha beta alpha")
	res.WordFrequencies = wordstats.Frequencies("alpha beta alpha",
		analytics.Options{MinWordLength: 2, IncludePercentages: true})
	r := newBuilder().Build("pct", res)

	if err := st.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	got, err := st.GetReport(ctx, r.ID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if diff := cmp.Diff(r.Result.WordFrequencies, got.Result.WordFrequencies); diff != "" {
		t.Errorf("percentages lost (-want +got):\n%s", diff)
	}
}

func TestSQLiteGetMissing(t *testing.T) {
	st := openTestStore(t)

	_, err := st.GetReport(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteSaveRejectsEmptyID(t *testing.T) {
	st := openTestStore(t)

	err := st.SaveReport(context.Background(), report.Report{})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSQLiteUpsertReplacesWords(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	r := newBuilder().Build("v1", wordstats.Analyze("apple apple pear"))
	if err := st.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport v1: %v", err)
	}

	r.Source = "v2"
	r.Result = wordstats.Analyze("plum")
	if err := st.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport v2: %v", err)
	}

	totals, err := st.WordTotals(ctx, 0)
	if err != nil {
		t.Fatalf("WordTotals: %v", err)
	}
	want := []analytics.WordFrequency{{Text: "plum", Value: 1}}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Errorf("WordTotals mismatch (-want +got):\n%s", diff)
	}

	got, _ := st.GetReport(ctx, r.ID)
	if got.Source != "v2" {
		t.Errorf("Source = %q, want v2", got.Source)
	}
}

func TestSQLiteListAndTotals(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	b := newBuilder()

	var ids []string
	for _, text := range []string{"apple banana apple", "banana cherry banana", "cherry"} {
		r := b.Build("batch", wordstats.Analyze(text))
		ids = append(ids, r.ID)
		if err := st.SaveReport(ctx, r); err != nil {
			t.Fatalf("SaveReport: %v", err)
		}
	}

	list, err := st.ListReports(ctx, 2)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(list) != 2 || list[0].ID != ids[2] || list[1].ID != ids[1] {
		t.Errorf("unexpected list order")
	}

	all, err := st.ListReports(ctx, 0)
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 reports, got %d", len(all))
	}

	totals, err := st.WordTotals(ctx, 2)
	if err != nil {
		t.Fatalf("WordTotals: %v", err)
	}
	want := []analytics.WordFrequency{{Text: "banana", Value: 3}, {Text: "apple", Value: 2}}
	if diff := cmp.Diff(want, totals); diff != "" {
		t.Errorf("WordTotals mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	st, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	r := newBuilder().Build("persist", wordstats.Analyze("persistent words persist"))
	if err := st.SaveReport(ctx, r); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	st.Close()

	st, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st.Close()

	if _, err := st.GetReport(ctx, r.ID); err != nil {
		t.Errorf("report lost after reopen: %v", err)
	}
}

package report

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/wordstats/pkg/wordstats"
	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/readability"
	"github.com/cognicore/wordstats/pkg/wordstats/sentiment"
)

// Report is an analysis result stamped with an id, a time and the name of
// the text it describes.
type Report struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Source    string           `json:"source"`
	Labels    Labels           `json:"labels"`
	Result    wordstats.Result `json:"result"`
}

// Labels are human-readable summaries for a statistics panel
type Labels struct {
	Sentiment   string `json:"sentiment"`
	ReadingEase string `json:"readingEase"`
	GradeLevel  string `json:"gradeLevel"`
}

// LabelsFor derives display labels from a result
func LabelsFor(r wordstats.Result) Labels {
	return Labels{
		Sentiment:   sentiment.Label(r.SentimentScore),
		ReadingEase: readability.ReadingEaseLabel(r.Readability.FleschReadingEase),
		GradeLevel:  readability.GradeLevelLabel(r.Readability.FleschKincaidGradeLevel),
	}
}

// Builder stamps results into reports. IDs are ULIDs, so they sort in
// creation order.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new report builder
func New() *Builder {
	return NewWithClock(time.Now)
}

// NewWithClock creates a builder that reads time from now
func NewWithClock(now func() time.Time) *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     now,
	}
}

// Build creates a report for a result
func (b *Builder) Build(source string, r wordstats.Result) Report {
	b.mu.Lock()
	ts := b.now().UTC()
	id := ulid.MustNew(ulid.Timestamp(ts), b.entropy).String()
	b.mu.Unlock()

	return Report{
		ID:        id,
		CreatedAt: ts,
		Source:    source,
		Labels:    LabelsFor(r),
		Result:    r,
	}
}

// Bar is one row of a bar chart: Ratio is Value relative to the first row.
type Bar struct {
	Text  string
	Value int
	Ratio float64
}

// Bars returns at most n rows of a ranked table scaled to its leader.
func Bars(rows []analytics.WordFrequency, n int) []Bar {
	if n > len(rows) {
		n = len(rows)
	}
	if n <= 0 {
		return nil
	}
	top := float64(rows[0].Value)
	out := make([]Bar, 0, n)
	for _, row := range rows[:n] {
		ratio := 0.0
		if top > 0 {
			ratio = float64(row.Value) / top
		}
		out = append(out, Bar{Text: row.Text, Value: row.Value, Ratio: ratio})
	}
	return out
}

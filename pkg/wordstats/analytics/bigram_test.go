package analytics

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTopBigrams(t *testing.T) {
	got := TopBigrams([]string{"new", "york", "new", "york", "city"}, DefaultBigramLimit)

	want := []WordFrequency{
		{Text: "new york", Value: 2},
		{Text: "york new", Value: 1},
		{Text: "york city", Value: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopBigrams mismatch (-want +got):\n%s", diff)
	}
}

func TestTopBigramsTooShort(t *testing.T) {
	for _, tokens := range [][]string{nil, {"solo"}} {
		got := TopBigrams(tokens, DefaultBigramLimit)
		if got == nil || len(got) != 0 {
			t.Errorf("TopBigrams(%v) = %#v, want empty", tokens, got)
		}
	}
}

func TestTopBigramsLimit(t *testing.T) {
	var tokens []string
	for i := 0; i < 30; i++ {
		tokens = append(tokens, fmt.Sprintf("w%d", i))
	}

	got := TopBigrams(tokens, DefaultBigramLimit)

	if len(got) != DefaultBigramLimit {
		t.Fatalf("expected %d bigrams, got %d", DefaultBigramLimit, len(got))
	}
	if got[0].Text != "w0 w1" || got[9].Text != "w9 w10" {
		t.Errorf("ties should keep first-occurrence order, got %v", got)
	}
}

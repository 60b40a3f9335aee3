package ingest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/wordstats/pkg/wordstats/stoplist"
)

func TestPipelineBasic(t *testing.T) {
	pipeline := NewPipeline(NewTokenizer(stoplist.English()))

	result := pipeline.Process("The cat sat. The cat ran away!")

	if diff := cmp.Diff([]string{"cat", "sat", "cat", "ran", "away"}, result.Tokens); diff != "" {
		t.Errorf("Tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"the", "cat", "sat", "the", "cat", "ran", "away"}, result.Raw); diff != "" {
		t.Errorf("Raw mismatch (-want +got):\n%s", diff)
	}
	if len(result.Sentences) != 2 {
		t.Errorf("Expected 2 sentences, got %d: %v", len(result.Sentences), result.Sentences)
	}
}

func TestPipelineEmptyText(t *testing.T) {
	pipeline := NewPipeline(NewTokenizer(stoplist.English()))

	result := pipeline.Process("")

	if len(result.Tokens) != 0 || len(result.Raw) != 0 || len(result.Sentences) != 0 {
		t.Errorf("Empty text should produce nothing, got %+v", result)
	}
}

func TestPipelineOnlyStopwords(t *testing.T) {
	pipeline := NewPipeline(NewTokenizer(stoplist.English()))

	result := pipeline.Process("the and the of in a")

	if len(result.Tokens) != 0 {
		t.Errorf("Text with only stopwords should produce 0 tokens, got %d: %v", len(result.Tokens), result.Tokens)
	}
	if len(result.Raw) != 6 {
		t.Errorf("Raw stream should keep all 6 stopwords, got %v", result.Raw)
	}
}

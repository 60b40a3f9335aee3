package corpus

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func TestReadSkipsMalformedLines(t *testing.T) {
	input := `{"id":"a","title":"First","text":"one two"}

not json
{"id":"b","text":"<p>three</p>","html":true}
`
	var logs bytes.Buffer
	docs, err := Read(strings.NewReader(input), zerolog.New(&logs))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []Document{
		{ID: "a", Title: "First", Text: "one two"},
		{ID: "b", Text: "<p>three</p>", HTML: true},
	}
	if diff := cmp.Diff(want, docs); diff != "" {
		t.Errorf("docs mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), `"line":3`) {
		t.Errorf("expected warning for line 3, got %q", logs.String())
	}
}

func TestReadEmpty(t *testing.T) {
	if _, err := Read(strings.NewReader("\n\n"), zerolog.Nop()); err == nil {
		t.Error("expected error for input without documents")
	}
}

func TestDocumentBodyAndSource(t *testing.T) {
	d := Document{Title: "T", Text: "<b>bold</b> move", HTML: true}
	if got := d.Body(); got != "bold move" {
		t.Errorf("Body = %q", got)
	}
	if got := d.Source(); got != "T" {
		t.Errorf("Source = %q", got)
	}
	d.ID = "x"
	if got := d.Source(); got != "x" {
		t.Errorf("Source = %q", got)
	}
}

func TestLoadFromJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.jsonl")
	if err := os.WriteFile(path, []byte(`{"id":"1","text":"hello"}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	docs, err := LoadFromJSONL(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadFromJSONL: %v", err)
	}
	if len(docs) != 1 || docs[0].Text != "hello" {
		t.Errorf("unexpected docs: %+v", docs)
	}

	if _, err := LoadFromJSONL(filepath.Join(t.TempDir(), "missing.jsonl"), zerolog.Nop()); err == nil {
		t.Error("expected error for missing file")
	}
}

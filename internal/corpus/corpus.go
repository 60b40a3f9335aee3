// Package corpus loads batches of documents for analysis.
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cognicore/wordstats/internal/htmltext"
)

// Document is one line of a JSONL batch
type Document struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	HTML  bool   `json:"html,omitempty"`
}

// Body returns the analysable text, stripping markup when the document is HTML.
func (d Document) Body() string {
	if d.HTML {
		return htmltext.String(d.Text)
	}
	return d.Text
}

// Source names the document for reports: the id, else the title.
func (d Document) Source() string {
	if d.ID != "" {
		return d.ID
	}
	return d.Title
}

// maxLine bounds a single JSONL record
const maxLine = 16 << 20

// LoadFromJSONL loads documents from a JSONL file
func LoadFromJSONL(path string, log zerolog.Logger) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	defer f.Close()

	docs, err := Read(f, log.With().Str("file", path).Logger())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

// Read decodes JSONL documents from r. Malformed lines are logged and skipped;
// an input with no valid document is an error.
func Read(r io.Reader, log zerolog.Logger) ([]Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	var docs []Document
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var doc Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Warn().Int("line", lineNo).Err(err).Msg("skipping malformed JSON")
			continue
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found")
	}
	return docs, nil
}

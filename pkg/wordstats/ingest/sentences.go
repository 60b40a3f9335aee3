package ingest

import (
	"regexp"
	"strings"
)

// sentenceEnd matches a run of terminal punctuation followed by whitespace
// or the end of input.
var sentenceEnd = regexp.MustCompile(`[.!?]+(?:\s+|$)`)

// SplitSentences breaks text into trimmed, non-empty sentences. Text with no
// terminal punctuation is a single sentence unless it is blank.
func SplitSentences(text string) []string {
	sentences := []string{}
	for _, s := range sentenceEnd.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

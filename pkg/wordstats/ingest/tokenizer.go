package ingest

import (
	"strings"
	"unicode/utf8"

	"github.com/cognicore/wordstats/pkg/wordstats/stoplist"
)

// punctuation is the fixed set of runes replaced by a space before splitting.
// Apostrophes are deliberately absent so contractions stay whole and can
// match the stoplist.
const punctuation = ".,/#!$%^&*;:{}=-_`~()"

var punctReplacer = newPunctReplacer()

func newPunctReplacer() *strings.Replacer {
	pairs := make([]string, 0, 2*len(punctuation))
	for _, r := range punctuation {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}

// Tokenizer handles text tokenization and normalization
type Tokenizer struct {
	stops *stoplist.Manager
}

// NewTokenizer creates a tokenizer backed by the given stoplist.
// A nil stoplist disables stop-word filtering.
func NewTokenizer(stops *stoplist.Manager) *Tokenizer {
	return &Tokenizer{stops: stops}
}

// Tokenize splits text into lower-cased tokens in reading order, removing
// stopwords.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.tokenize(text, true, true)
}

// TokenizeRaw is Tokenize without stop-word removal.
func (t *Tokenizer) TokenizeRaw(text string) []string {
	return t.tokenize(text, false, true)
}

// TokenizeCase removes stopwords like Tokenize but returns tokens in their
// original letter case. Stop-word and single-letter checks still compare the
// lower-cased form.
func (t *Tokenizer) TokenizeCase(text string) []string {
	return t.tokenize(text, true, false)
}

func (t *Tokenizer) tokenize(text string, removeStops, fold bool) []string {
	tokens := []string{}
	for _, field := range strings.Fields(punctReplacer.Replace(text)) {
		lower := strings.ToLower(field)
		if !keepLength(lower) {
			continue
		}
		if removeStops && t.stops.IsStop(lower) {
			continue
		}
		if fold {
			tokens = append(tokens, lower)
		} else {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// keepLength drops single-character tokens other than the words "a" and "i".
func keepLength(word string) bool {
	if utf8.RuneCountInString(word) > 1 {
		return true
	}
	return word == "a" || word == "i"
}

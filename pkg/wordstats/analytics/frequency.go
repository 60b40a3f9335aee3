package analytics

import (
	"strings"
	"unicode/utf8"
)

// Frequency table defaults
const (
	DefaultMaxResults    = 100
	DefaultMinWordLength = 2
)

// Options controls frequency table construction.
type Options struct {
	MaxResults         int  // 0 or negative disables truncation
	IncludePercentages bool // share of the filtered token population
	CaseSensitive      bool // count "Go" and "go" separately
	MinWordLength      int  // tokens shorter than this (in runes) are skipped
}

// DefaultOptions returns the defaults used by the analysis facade.
func DefaultOptions() Options {
	return Options{
		MaxResults:    DefaultMaxResults,
		MinWordLength: DefaultMinWordLength,
	}
}

// Frequencies counts tokens and ranks them by count, ties broken by first
// occurrence. Tokens are expected in reading order with stopwords already
// removed.
func Frequencies(tokens []string, opts Options) []WordFrequency {
	c := newCounter(len(tokens))
	filtered := 0
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < opts.MinWordLength {
			continue
		}
		if !opts.CaseSensitive {
			tok = strings.ToLower(tok)
		}
		c.add(tok)
		filtered++
	}

	out := c.ranked(opts.MaxResults)
	if opts.IncludePercentages && filtered > 0 {
		for i := range out {
			pct := 100 * float64(out[i].Value) / float64(filtered)
			out[i].Percentage = &pct
		}
	}
	return out
}

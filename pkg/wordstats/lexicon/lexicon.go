package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordstats/pkg/wordstats/internalerr"
)

// Polarity is the sentiment direction of a single word.
type Polarity int

const (
	Negative Polarity = -1
	Neutral  Polarity = 0
	Positive Polarity = 1
)

// Sentiment is a pair of disjoint word sets used for lexicon-based polarity
// scoring. A Sentiment is never modified after construction and can be
// shared freely.
type Sentiment struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// New builds a sentiment lexicon. Words are lower-cased. A word present in
// both lists is rejected: the sets must be disjoint.
func New(positive, negative []string) (*Sentiment, error) {
	s := &Sentiment{
		positive: toSet(positive),
		negative: toSet(negative),
	}
	var both []string
	for w := range s.positive {
		if _, ok := s.negative[w]; ok {
			both = append(both, w)
		}
	}
	if len(both) > 0 {
		sort.Strings(both)
		return nil, fmt.Errorf("%w: words listed as both positive and negative: %s",
			internalerr.ErrInvalidInput, strings.Join(both, ", "))
	}
	return s, nil
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// LoadFromYAML loads a sentiment lexicon from a YAML file.
//
// Expected format:
//
//	positive: [good, great, excellent]
//	negative: [bad, awful, terrible]
func LoadFromYAML(path string) (*Sentiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Positive []string `yaml:"positive"`
		Negative []string `yaml:"negative"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return New(config.Positive, config.Negative)
}

// Polarity classifies a lower-cased token.
func (s *Sentiment) Polarity(token string) Polarity {
	if _, ok := s.positive[token]; ok {
		return Positive
	}
	if _, ok := s.negative[token]; ok {
		return Negative
	}
	return Neutral
}

// Stats returns the sizes of both word sets.
func (s *Sentiment) Stats() Stats {
	return Stats{Positive: len(s.positive), Negative: len(s.negative)}
}

// Stats holds statistics about lexicon contents.
type Stats struct {
	Positive int
	Negative int
}

var defaultLexicon = mustNew(defaultPositive, defaultNegative)

func mustNew(positive, negative []string) *Sentiment {
	s, err := New(positive, negative)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the shared built-in English lexicon.
func Default() *Sentiment {
	return defaultLexicon
}

var defaultPositive = []string{
	"good", "great", "excellent", "amazing", "wonderful",
	"fantastic", "happy", "love", "best", "beautiful",
	"awesome", "brilliant", "perfect", "nice", "positive",
	"success", "enjoy", "glad", "joy", "superb",
	"pleasant", "outstanding", "delightful", "favorite", "impressive",
}

var defaultNegative = []string{
	"bad", "terrible", "awful", "horrible", "poor",
	"sad", "hate", "worst", "ugly", "negative",
	"failure", "fail", "angry", "disappointing", "wrong",
	"problem", "difficult", "annoying", "boring", "painful",
	"dreadful", "unpleasant", "miserable", "broken", "weak",
}

package readability

import (
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordstats/pkg/wordstats/internalerr"
)

// SyllableCounter estimates the number of syllables in a single word.
// Implementations must return at least 1 for any input.
type SyllableCounter interface {
	Syllables(word string) int
}

// Heuristic is the rule-based English syllable estimator.
type Heuristic struct{}

// Syllables counts vowel groups with small corrections for common endings.
func (Heuristic) Syllables(word string) int {
	letters := lettersOnly(word)
	if utf8.RuneCountInString(letters) <= 3 {
		return 1
	}

	adjust := 0.0
	if strings.HasSuffix(letters, "ion") {
		adjust += 0.5
	}
	if strings.HasSuffix(letters, "le") {
		adjust += 0.5
	}
	if strings.HasSuffix(letters, "ed") {
		adjust -= 0.5
	}

	// silent trailing e
	stem := strings.TrimSuffix(letters, "e")

	groups := vowelGroups(stem)
	if groups == 0 {
		groups = 1
	}

	n := int(math.Round(float64(groups) + adjust))
	if n < 1 {
		n = 1
	}
	return n
}

func lettersOnly(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// vowelGroups counts maximal runs of vowels.
func vowelGroups(s string) int {
	groups := 0
	inGroup := false
	for _, r := range s {
		v := isVowel(r)
		if v && !inGroup {
			groups++
		}
		inGroup = v
	}
	return groups
}

// Dictionary looks words up in a fixed table and defers to a fallback
// counter for anything it does not know.
type Dictionary struct {
	counts   map[string]int
	fallback SyllableCounter
}

// NewDictionary creates a dictionary-backed counter. Keys are lower-cased;
// counts below 1 are rejected. A nil fallback means Heuristic.
func NewDictionary(counts map[string]int, fallback SyllableCounter) (*Dictionary, error) {
	if fallback == nil {
		fallback = Heuristic{}
	}
	d := &Dictionary{
		counts:   make(map[string]int, len(counts)),
		fallback: fallback,
	}
	for w, n := range counts {
		if n < 1 {
			return nil, fmt.Errorf("%w: syllable count %d for %q", internalerr.ErrInvalidInput, n, w)
		}
		d.counts[strings.ToLower(w)] = n
	}
	return d, nil
}

// LoadDictionary reads a syllable table from YAML:
//
//	words:
//	  fire: 1
//	  poem: 2
func LoadDictionary(path string, fallback SyllableCounter) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Words map[string]int `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return NewDictionary(config.Words, fallback)
}

// Syllables implements SyllableCounter.
func (d *Dictionary) Syllables(word string) int {
	if n, ok := d.counts[lettersOnly(word)]; ok {
		return n
	}
	return d.fallback.Syllables(word)
}

// Len returns the number of dictionary entries.
func (d *Dictionary) Len() int {
	return len(d.counts)
}

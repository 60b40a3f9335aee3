package config

import (
	"fmt"

	"github.com/cognicore/wordstats/pkg/wordstats"
	"github.com/cognicore/wordstats/pkg/wordstats/lexicon"
	"github.com/cognicore/wordstats/pkg/wordstats/readability"
	"github.com/cognicore/wordstats/pkg/wordstats/stoplist"
)

// Loader loads all word-list files and constructs components
type Loader struct {
	StoplistPath  string
	LexiconPath   string
	SyllablesPath string
}

// Components holds all loaded configuration components
type Components struct {
	Stoplist  *stoplist.Manager
	Lexicon   *lexicon.Sentiment
	Syllables readability.SyllableCounter
	Analyzer  *wordstats.Analyzer
}

// Load reads all configured files and returns initialized components.
// Unset paths fall back to the built-in English defaults.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Stoplist:  stoplist.English(),
		Lexicon:   lexicon.Default(),
		Syllables: readability.Heuristic{},
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stoplist.NewManager(sl.Terms)
	}

	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	}

	if l.SyllablesPath != "" {
		dict, err := readability.LoadDictionary(l.SyllablesPath, readability.Heuristic{})
		if err != nil {
			return nil, fmt.Errorf("load syllable dictionary: %w", err)
		}
		comp.Syllables = dict
	}

	comp.Analyzer = wordstats.New(wordstats.Options{
		Stoplist:  comp.Stoplist,
		Lexicon:   comp.Lexicon,
		Syllables: comp.Syllables,
	})

	return comp, nil
}

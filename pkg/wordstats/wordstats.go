// Package wordstats computes descriptive statistics about free-form text:
// word frequencies, bigrams, lexicon sentiment and Flesch readability.
//
// Every analysis is a pure function of its input text. An Analyzer holds only
// immutable word sets and may be shared between goroutines.
package wordstats

import (
	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/ingest"
	"github.com/cognicore/wordstats/pkg/wordstats/lexicon"
	"github.com/cognicore/wordstats/pkg/wordstats/readability"
	"github.com/cognicore/wordstats/pkg/wordstats/sentiment"
	"github.com/cognicore/wordstats/pkg/wordstats/stoplist"
)

// Result is the complete analysis of one text.
type Result struct {
	WordFrequencies   []analytics.WordFrequency `json:"wordFrequencies"`
	TotalWords        int                       `json:"totalWords"`
	UniqueWords       int                       `json:"uniqueWords"`
	AverageWordLength float64                   `json:"averageWordLength"`
	SentimentScore    float64                   `json:"sentimentScore"`
	Readability       readability.Metrics       `json:"readability"`
	TopBigrams        []analytics.WordFrequency `json:"topBigrams"`
}

// Options configures an Analyzer. Nil fields fall back to the built-in
// English defaults.
type Options struct {
	Stoplist  *stoplist.Manager
	Lexicon   *lexicon.Sentiment
	Syllables readability.SyllableCounter
}

// Analyzer is the analysis facade.
type Analyzer struct {
	tokenizer *ingest.Tokenizer
	pipeline  *ingest.Pipeline
	lexicon   *lexicon.Sentiment
	syllables readability.SyllableCounter
}

// New creates an Analyzer with the given dependencies
func New(opts Options) *Analyzer {
	if opts.Stoplist == nil {
		opts.Stoplist = stoplist.English()
	}
	if opts.Lexicon == nil {
		opts.Lexicon = lexicon.Default()
	}
	if opts.Syllables == nil {
		opts.Syllables = readability.Heuristic{}
	}
	tokenizer := ingest.NewTokenizer(opts.Stoplist)
	return &Analyzer{
		tokenizer: tokenizer,
		pipeline:  ingest.NewPipeline(tokenizer),
		lexicon:   opts.Lexicon,
		syllables: opts.Syllables,
	}
}

var defaultAnalyzer = New(Options{})

// Default returns the shared Analyzer built from the English defaults.
func Default() *Analyzer {
	return defaultAnalyzer
}

// Tokenize returns normalized tokens in reading order.
func (a *Analyzer) Tokenize(text string, removeStopWords bool) []string {
	if removeStopWords {
		return a.tokenizer.Tokenize(text)
	}
	return a.tokenizer.TokenizeRaw(text)
}

// Frequencies builds the word frequency table of text.
func (a *Analyzer) Frequencies(text string, opts analytics.Options) []analytics.WordFrequency {
	var tokens []string
	if opts.CaseSensitive {
		tokens = a.tokenizer.TokenizeCase(text)
	} else {
		tokens = a.tokenizer.Tokenize(text)
	}
	return analytics.Frequencies(tokens, opts)
}

// Analyze runs the full analysis. It never fails: degenerate input yields a
// zero Result with empty slices.
func (a *Analyzer) Analyze(text string) Result {
	doc := a.pipeline.Process(text)
	metrics := readability.Analyze(doc.Sentences, doc.Raw, a.syllables)

	return Result{
		WordFrequencies:   analytics.Frequencies(doc.Tokens, analytics.DefaultOptions()),
		TotalWords:        len(doc.Raw),
		UniqueWords:       analytics.UniqueCount(doc.Raw),
		AverageWordLength: metrics.AverageWordLength,
		SentimentScore:    sentiment.Score(a.lexicon, doc.Tokens),
		Readability:       metrics,
		TopBigrams:        analytics.TopBigrams(doc.Tokens, analytics.DefaultBigramLimit),
	}
}

// Tokenize uses the Default analyzer.
func Tokenize(text string, removeStopWords bool) []string {
	return defaultAnalyzer.Tokenize(text, removeStopWords)
}

// Frequencies uses the Default analyzer.
func Frequencies(text string, opts analytics.Options) []analytics.WordFrequency {
	return defaultAnalyzer.Frequencies(text, opts)
}

// Analyze uses the Default analyzer.
func Analyze(text string) Result {
	return defaultAnalyzer.Analyze(text)
}

package ingest

// Pipeline runs every text pass the analysis needs exactly once:
// text → filtered tokens, raw tokens, sentences
type Pipeline struct {
	tokenizer *Tokenizer
}

// NewPipeline creates an ingestion pipeline around the given tokenizer
func NewPipeline(tokenizer *Tokenizer) *Pipeline {
	return &Pipeline{tokenizer: tokenizer}
}

// ProcessedText holds the token streams and sentences of one input
type ProcessedText struct {
	Tokens    []string // stopwords removed
	Raw       []string // stopwords retained
	Sentences []string
}

// Process runs a text through all passes
func (p *Pipeline) Process(text string) ProcessedText {
	return ProcessedText{
		Tokens:    p.tokenizer.Tokenize(text),
		Raw:       p.tokenizer.TokenizeRaw(text),
		Sentences: SplitSentences(text),
	}
}

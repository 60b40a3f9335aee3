// Package sentiment scores token streams against a polarity lexicon.
package sentiment

import "github.com/cognicore/wordstats/pkg/wordstats/lexicon"

// Label thresholds on the score scale.
const (
	PositiveThreshold = 0.2
	NegativeThreshold = -0.2
)

// Score returns (positive - negative) / len(tokens), a value in [-1, 1].
// Words in neither set only add to the denominator. No tokens scores 0.
func Score(lex *lexicon.Sentiment, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	var balance int
	for _, tok := range tokens {
		balance += int(lex.Polarity(tok))
	}
	return float64(balance) / float64(len(tokens))
}

// Label maps a score to "Positive", "Negative" or "Neutral".
func Label(score float64) string {
	switch {
	case score > PositiveThreshold:
		return "Positive"
	case score < NegativeThreshold:
		return "Negative"
	default:
		return "Neutral"
	}
}

package analytics

// DefaultBigramLimit is the number of bigrams kept by the analysis facade.
const DefaultBigramLimit = 10

// pair is an ordered adjacent token pair
type pair struct {
	A string
	B string
}

func (p pair) String() string {
	return p.A + " " + p.B
}

// TopBigrams counts adjacent token pairs, preserving order ("new york" and
// "york new" are different bigrams), and returns the most frequent ones.
// Ties keep first-occurrence order. A limit of 0 or less keeps everything.
func TopBigrams(tokens []string, limit int) []WordFrequency {
	if len(tokens) < 2 {
		return []WordFrequency{}
	}
	c := newCounter(len(tokens) - 1)
	for i := 0; i < len(tokens)-1; i++ {
		c.add(pair{A: tokens[i], B: tokens[i+1]}.String())
	}
	return c.ranked(limit)
}

package analytics

import "sort"

// WordFrequency is one row of a frequency table. For bigrams Text holds the
// two tokens joined by a single space.
type WordFrequency struct {
	Text       string   `json:"text"`
	Value      int      `json:"value"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// counter counts keys while remembering the order in which each key was
// first seen. Entries live in a slice in first-seen order so that ranking
// never depends on map iteration order.
type counter struct {
	index   map[string]int
	entries []WordFrequency
}

func newCounter(capacity int) *counter {
	return &counter{
		index:   make(map[string]int, capacity),
		entries: make([]WordFrequency, 0, capacity),
	}
}

func (c *counter) add(key string) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Value++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, WordFrequency{Text: key, Value: 1})
}

// ranked sorts by count descending. The sort is stable over first-seen order,
// which is the tie-break.
func (c *counter) ranked(limit int) []WordFrequency {
	out := c.entries
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// UniqueCount returns the number of distinct tokens.
func UniqueCount(tokens []string) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}
	return len(seen)
}

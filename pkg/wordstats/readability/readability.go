// Package readability computes Flesch readability metrics from sentence and
// word statistics.
package readability

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Flesch formula constants.
const (
	easeBase         = 206.835
	easeSentenceCoef = 1.015
	easeSyllableCoef = 84.6

	gradeSentenceCoef = 0.39
	gradeSyllableCoef = 11.8
	gradeBase         = 15.59
)

// Metrics holds the readability statistics of one text.
type Metrics struct {
	FleschReadingEase       float64 `json:"fleschReadingEase"`
	FleschKincaidGradeLevel float64 `json:"fleschKincaidGradeLevel"`
	AverageSentenceLength   float64 `json:"averageSentenceLength"`
	AverageWordLength       float64 `json:"averageWordLength"`
	TotalSyllables          int     `json:"totalSyllables"`
	AverageSyllablesPerWord float64 `json:"averageSyllablesPerWord"`
}

// Analyze computes Metrics. words is the token stream with stopwords
// retained. No sentences or no words yields zero Metrics.
func Analyze(sentences, words []string, counter SyllableCounter) Metrics {
	if len(sentences) == 0 || len(words) == 0 {
		return Metrics{}
	}
	if counter == nil {
		counter = Heuristic{}
	}

	var chars, syllables int
	for _, w := range words {
		chars += utf8.RuneCountInString(w)
		syllables += counter.Syllables(w)
	}

	wordCount := float64(len(words))
	avgSentence := wordCount / float64(len(sentences))
	avgSyllables := float64(syllables) / wordCount

	ease := easeBase - easeSentenceCoef*avgSentence - easeSyllableCoef*avgSyllables
	grade := gradeSentenceCoef*avgSentence + gradeSyllableCoef*avgSyllables - gradeBase

	return Metrics{
		FleschReadingEase:       math.Min(100, math.Max(0, ease)),
		FleschKincaidGradeLevel: math.Max(0, grade),
		AverageSentenceLength:   avgSentence,
		AverageWordLength:       float64(chars) / wordCount,
		TotalSyllables:          syllables,
		AverageSyllablesPerWord: avgSyllables,
	}
}

// ReadingEaseLabel describes a Flesch Reading Ease score.
func ReadingEaseLabel(score float64) string {
	switch {
	case score > 80:
		return "Very Easy"
	case score > 60:
		return "Easy"
	case score > 40:
		return "Average"
	case score > 20:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}

// GradeLevelLabel describes a Flesch-Kincaid grade level.
func GradeLevelLabel(level float64) string {
	switch {
	case level <= 1:
		return "Kindergarten"
	case level <= 12:
		return fmt.Sprintf("Grade %d", roundHalfUp(level))
	case level <= 16:
		return fmt.Sprintf("College Year %d", roundHalfUp(level-12))
	default:
		return "Graduate Level"
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

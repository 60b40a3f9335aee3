package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/report"
	"github.com/cognicore/wordstats/pkg/wordstats/sentiment"
)

const (
	barWidth = 24
	barRows  = 5
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(w io.Writer, r report.Report) {
	res := r.Result
	fmt.Fprintf(w, "%s %s\n", color.Bold.Sprint(r.Source), color.Gray.Sprint(r.ID))
	fmt.Fprintf(w, "  words %d  unique %d  avg length %.2f  words/sentence %.1f\n",
		res.TotalWords, res.UniqueWords, res.AverageWordLength, res.Readability.AverageSentenceLength)
	fmt.Fprintf(w, "  sentiment    %6.2f  %s\n", res.SentimentScore, sentimentColor(res.SentimentScore).Sprint(r.Labels.Sentiment))
	fmt.Fprintf(w, "  reading ease %6.1f  %s\n", res.Readability.FleschReadingEase, color.Cyan.Sprint(r.Labels.ReadingEase))
	fmt.Fprintf(w, "  grade level  %6.1f  %s\n", res.Readability.FleschKincaidGradeLevel, color.Cyan.Sprint(r.Labels.GradeLevel))

	writeBars(w, "top words", res.WordFrequencies)
	writeBars(w, "top bigrams", res.TopBigrams)
}

func writeBars(w io.Writer, title string, rows []analytics.WordFrequency) {
	bars := report.Bars(rows, barRows)
	if len(bars) == 0 {
		return
	}
	width := 0
	for _, b := range bars {
		if len(b.Text) > width {
			width = len(b.Text)
		}
	}
	fmt.Fprintf(w, "  %s\n", color.Bold.Sprint(title))
	for _, b := range bars {
		n := int(b.Ratio * barWidth)
		if n < 1 {
			n = 1
		}
		fmt.Fprintf(w, "    %-*s %s %d\n", width, b.Text, color.Blue.Sprint(strings.Repeat("#", n)), b.Value)
	}
}

func sentimentColor(score float64) color.Color {
	switch {
	case score > sentiment.PositiveThreshold:
		return color.Green
	case score < sentiment.NegativeThreshold:
		return color.Red
	default:
		return color.Yellow
	}
}

package main

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/cognicore/wordstats/pkg/wordstats"
	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/report"
)

func newTestApp(out io.Writer) (*app, error) {
	return &app{
		analyzer: wordstats.Default(),
		freqOpts: analytics.DefaultOptions(),
		builder:  report.New(),
		log:      zerolog.Nop(),
		out:      out,
		format:   "text",
	}, nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cognicore/wordstats/internal/corpus"
	"github.com/cognicore/wordstats/internal/htmltext"
	"github.com/cognicore/wordstats/pkg/wordstats"
	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/config"
	"github.com/cognicore/wordstats/pkg/wordstats/internalerr"
	"github.com/cognicore/wordstats/pkg/wordstats/report"
	"github.com/cognicore/wordstats/pkg/wordstats/store"
	"github.com/cognicore/wordstats/pkg/wordstats/store/memstore"
	"github.com/cognicore/wordstats/pkg/wordstats/store/sqlite"
)

type options struct {
	input       string
	html        bool
	jsonl       string
	configPath  string
	dbPath      string
	history     int
	format      string
	maxResults  int
	percent     bool
	interactive bool
	logLevel    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("wordstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.input, "input", "-", "Text file to analyze, - for stdin")
	fs.BoolVar(&o.html, "html", false, "Treat input as HTML and extract its text")
	fs.StringVar(&o.jsonl, "jsonl", "", "Batch mode: JSONL file of {id,title,text} documents")
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.dbPath, "db", "", "SQLite database for report history")
	fs.IntVar(&o.history, "history", 0, "Print the N most recent stored reports and exit")
	fs.StringVar(&o.format, "format", "json", "Output format: json or text")
	fs.IntVar(&o.maxResults, "max", 0, "Frequency table size (0 uses config)")
	fs.BoolVar(&o.percent, "percent", false, "Include percentages in the frequency table")
	fs.BoolVar(&o.interactive, "interactive", false, "Start an interactive prompt")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch o.format {
	case "json", "text":
	default:
		return o, fmt.Errorf("%w: unknown format %q", internalerr.ErrInvalidInput, o.format)
	}
	if o.history < 0 {
		return o, fmt.Errorf("%w: -history must not be negative", internalerr.ErrInvalidInput)
	}
	return o, nil
}

// app carries everything one CLI invocation needs
type app struct {
	analyzer *wordstats.Analyzer
	freqOpts analytics.Options
	builder  *report.Builder
	store    store.Store
	log      zerolog.Logger
	out      io.Writer
	format   string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "wordstats: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.dbPath != "" {
		cfg.Database = opts.dbPath
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()

	loader := cfg.Loader()
	components, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load configs: %w", err)
	}
	log.Debug().
		Int("stopwords", components.Stoplist.Len()).
		Str("config", opts.configPath).
		Msg("components loaded")

	freqOpts := cfg.FrequencyOptions()
	if opts.maxResults > 0 {
		freqOpts.MaxResults = opts.maxResults
	}
	if opts.percent {
		freqOpts.IncludePercentages = true
	}

	a := &app{
		analyzer: components.Analyzer,
		freqOpts: freqOpts,
		builder:  report.New(),
		log:      log,
		out:      stdout,
		format:   opts.format,
	}

	ctx := context.Background()
	if cfg.Database != "" {
		st, err := sqlite.OpenSQLite(ctx, cfg.Database, sqlite.Options{Logger: log})
		if err != nil {
			return fmt.Errorf("open store %s: %w", cfg.Database, err)
		}
		defer st.Close()
		a.store = st
	} else if opts.interactive {
		// session-only history for :history and :totals
		a.store = memstore.New()
	}

	switch {
	case opts.history > 0:
		return a.printHistory(ctx, opts.history)
	case opts.interactive:
		return a.repl(ctx)
	case opts.jsonl != "":
		return a.analyzeBatch(ctx, opts.jsonl)
	default:
		return a.analyzeInput(ctx, opts.input, opts.html, stdin)
	}
}

// analyze runs the analyzer and applies the configured frequency options
func (a *app) analyze(source, text string) report.Report {
	res := a.analyzer.Analyze(text)
	res.WordFrequencies = a.analyzer.Frequencies(text, a.freqOpts)
	return a.builder.Build(source, res)
}

func (a *app) record(ctx context.Context, r report.Report) error {
	if a.store == nil {
		return nil
	}
	if err := a.store.SaveReport(ctx, r); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	a.log.Info().Str("id", r.ID).Str("source", r.Source).Msg("report recorded")
	return nil
}

func (a *app) analyzeInput(ctx context.Context, path string, isHTML bool, stdin io.Reader) error {
	var (
		r      io.Reader = stdin
		source           = "stdin"
	)
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
		source = path
	}

	var text string
	if isHTML {
		extracted, err := htmltext.Extract(r)
		if err != nil {
			return fmt.Errorf("parse html: %w", err)
		}
		text = extracted
	} else {
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		text = string(data)
	}

	rep := a.analyze(source, text)
	if err := a.record(ctx, rep); err != nil {
		return err
	}
	return a.print([]report.Report{rep}, false)
}

func (a *app) analyzeBatch(ctx context.Context, path string) error {
	docs, err := corpus.LoadFromJSONL(path, a.log)
	if err != nil {
		return fmt.Errorf("load docs: %w", err)
	}

	reports := make([]report.Report, 0, len(docs))
	for _, doc := range docs {
		rep := a.analyze(doc.Source(), doc.Body())
		if err := a.record(ctx, rep); err != nil {
			return err
		}
		reports = append(reports, rep)
	}
	a.log.Info().Int("documents", len(reports)).Str("file", path).Msg("batch analyzed")
	return a.print(reports, true)
}

func (a *app) printHistory(ctx context.Context, n int) error {
	if a.store == nil {
		return fmt.Errorf("%w: -history needs -db or a configured database", internalerr.ErrInvalidInput)
	}
	reports, err := a.store.ListReports(ctx, n)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}
	if reports == nil {
		reports = []report.Report{}
	}
	return a.print(reports, true)
}

func (a *app) print(reports []report.Report, many bool) error {
	if a.format == "text" {
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(a.out)
			}
			writeText(a.out, r)
		}
		return nil
	}
	if many {
		return writeJSON(a.out, reports)
	}
	return writeJSON(a.out, reports[0])
}

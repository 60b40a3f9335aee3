package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/internalerr"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.FrequencyOptions() != analytics.DefaultOptions() {
		t.Errorf("default frequency options = %+v, want %+v", cfg.FrequencyOptions(), analytics.DefaultOptions())
	}
	if lvl, _ := cfg.Level(); lvl != zerolog.InfoLevel {
		t.Errorf("default level = %v, want info", lvl)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "wordstats.yaml", `stoplist: stops.yaml
lexicon: sentiment.yaml
frequencies:
  max_results: 25
  include_percentages: true
database: history.db
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Stoplist != "stops.yaml" || cfg.Lexicon != "sentiment.yaml" || cfg.Database != "history.db" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
	opts := cfg.FrequencyOptions()
	if opts.MaxResults != 25 || !opts.IncludePercentages {
		t.Errorf("unexpected frequency options: %+v", opts)
	}
	if opts.MinWordLength != analytics.DefaultMinWordLength {
		t.Errorf("unset min_word_length should keep default, got %d", opts.MinWordLength)
	}
	if lvl, _ := cfg.Level(); lvl != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", lvl)
	}

	loader := cfg.Loader()
	if loader.StoplistPath != "stops.yaml" || loader.LexiconPath != "sentiment.yaml" || loader.SyllablesPath != "" {
		t.Errorf("unexpected loader: %+v", loader)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "wordstats.yaml", "database: file.db\n")
	t.Setenv(EnvDatabase, "env.db")
	t.Setenv(EnvLogLevel, "WARN")
	t.Setenv(EnvMaxResults, "0")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database != "env.db" {
		t.Errorf("Database = %q, want env.db", cfg.Database)
	}
	if lvl, _ := cfg.Level(); lvl != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", lvl)
	}
	if cfg.Frequencies.MaxResults != 0 {
		t.Errorf("MaxResults = %d, want 0", cfg.Frequencies.MaxResults)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		env     string
	}{
		{"negative min length", "frequencies:\n  min_word_length: -1\n", ""},
		{"bad log level", "log_level: chatty\n", ""},
		{"bad max results env", "", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "cfg.yaml", tt.content)
			if tt.env != "" {
				t.Setenv(EnvMaxResults, tt.env)
			}
			_, err := Load(path)
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadMissingOrMalformed(t *testing.T) {
	if _, err := Load("/nonexistent/wordstats.yaml"); err == nil {
		t.Error("Should error on missing config file")
	}

	path := writeFile(t, t.TempDir(), "bad.yaml", "frequencies: [oops\n")
	if _, err := Load(path); err == nil {
		t.Error("Should error on malformed YAML")
	}
}

func TestLoadStoplist(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stoplist.yaml", `terms:
  - the
  - and
  - of
`)

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}

	if len(sl.Terms) != 3 {
		t.Errorf("Expected 3 terms, got %d", len(sl.Terms))
	}
}

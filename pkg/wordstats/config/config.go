package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordstats/pkg/wordstats/analytics"
	"github.com/cognicore/wordstats/pkg/wordstats/internalerr"
)

// Environment variables that override the config file
const (
	EnvDatabase   = "WORDSTATS_DB"
	EnvLogLevel   = "WORDSTATS_LOG_LEVEL"
	EnvMaxResults = "WORDSTATS_MAX_RESULTS"
)

// File is the YAML configuration file
type File struct {
	Stoplist    string      `yaml:"stoplist"`
	Lexicon     string      `yaml:"lexicon"`
	Syllables   string      `yaml:"syllables"`
	Frequencies Frequencies `yaml:"frequencies"`
	Database    string      `yaml:"database"`
	LogLevel    string      `yaml:"log_level"`
}

// Frequencies holds frequency table defaults
type Frequencies struct {
	MaxResults         int  `yaml:"max_results"`
	IncludePercentages bool `yaml:"include_percentages"`
	CaseSensitive      bool `yaml:"case_sensitive"`
	MinWordLength      int  `yaml:"min_word_length"`
}

// Default returns the configuration used when no file is given
func Default() File {
	opts := analytics.DefaultOptions()
	return File{
		Frequencies: Frequencies{
			MaxResults:    opts.MaxResults,
			MinWordLength: opts.MinWordLength,
		},
		LogLevel: "info",
	}
}

// Load reads the config file at path (empty path means defaults), applies
// .env and environment overrides and validates the result.
func Load(path string) (*File, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (f *File) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDatabase)); v != "" {
		f.Database = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		f.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxResults)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", internalerr.ErrInvalidConfig, EnvMaxResults, v)
		}
		f.Frequencies.MaxResults = n
	}
	return nil
}

// Validate checks value ranges
func (f *File) Validate() error {
	if f.Frequencies.MinWordLength < 0 {
		return fmt.Errorf("%w: min_word_length must not be negative", internalerr.ErrInvalidConfig)
	}
	if _, err := f.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel
func (f *File) Level() (zerolog.Level, error) {
	if f.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(f.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log_level %q", internalerr.ErrInvalidConfig, f.LogLevel)
	}
	return lvl, nil
}

// FrequencyOptions converts the frequency section to analytics options
func (f *File) FrequencyOptions() analytics.Options {
	return analytics.Options{
		MaxResults:         f.Frequencies.MaxResults,
		IncludePercentages: f.Frequencies.IncludePercentages,
		CaseSensitive:      f.Frequencies.CaseSensitive,
		MinWordLength:      f.Frequencies.MinWordLength,
	}
}

// Loader returns a Loader for the word-list files named in the config
func (f *File) Loader() Loader {
	return Loader{
		StoplistPath:  f.Stoplist,
		LexiconPath:   f.Lexicon,
		SyllablesPath: f.Syllables,
	}
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

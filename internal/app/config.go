package app

import (
	"errors"
	"strings"
	"time"
)

// Flag defaults, shared with the settings-file overlay so it can tell
// "left at default" apart from "explicitly set".
const (
	DefaultInputPath  = "data/input_urls.txt"
	DefaultOutputPath = "data/companies.json"
	DefaultCacheDir   = ".companyscrape-cache"
	DefaultTimeout    = 15 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = 2 * time.Second
)

// Config carries everything one scraping run needs. Flags, environment and
// the optional settings file all funnel into this struct before Run.
type Config struct {
	// InputPath is a text file of company page URLs, one per line. Blank
	// lines and lines starting with "#" are ignored.
	InputPath string
	// OutputPath receives the scraped records as indented JSON.
	OutputPath string
	// OutputPDFPath, when non-empty, additionally receives a one-page-per-
	// company PDF summary.
	OutputPDFPath string

	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	MaxEmployees int
	MaxUpdates   int

	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool

	Verbose bool
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if cfg.MaxRetries < 0 || cfg.MaxEmployees < 0 || cfg.MaxUpdates < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	if cfg.Timeout < 0 || cfg.RetryDelay < 0 {
		return errors.New("config: negative durations are not allowed")
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"companyscrape/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath    string
		outputPath   string
		outputPDF    string
		settingsPath string
		userAgent    string
		timeout      time.Duration
		maxRetries   int
		retryDelay   time.Duration
		maxEmployees int
		maxUpdates   int
		cacheDir     string
		cacheMaxAge  time.Duration
		cacheClear   bool
		verbose      bool
	)

	flag.StringVar(&inputPath, "input", app.DefaultInputPath, "Path to text file of company page URLs (one per line, # comments)")
	flag.StringVar(&outputPath, "output", app.DefaultOutputPath, "Path to JSON file where scraped data is written")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path for a PDF summary of the scraped companies")
	flag.StringVar(&settingsPath, "settings", os.Getenv("COMPANYSCRAPE_SETTINGS"), "Optional YAML/JSON settings file overlaid onto unset flags")
	flag.StringVar(&userAgent, "http.ua", os.Getenv("COMPANYSCRAPE_UA"), "Custom User-Agent (default: desktop browser string)")
	flag.DurationVar(&timeout, "http.timeout", app.DefaultTimeout, "Per-request timeout")
	flag.IntVar(&maxRetries, "http.retries", app.DefaultMaxRetries, "Attempts per URL including the first")
	flag.DurationVar(&retryDelay, "http.retryDelay", app.DefaultRetryDelay, "Delay between retry attempts")
	flag.IntVar(&maxEmployees, "max.employees", 0, "Maximum employees per company (0 uses the default of 4)")
	flag.IntVar(&maxUpdates, "max.updates", 0, "Maximum activity posts per company (0 uses the default of 5)")
	flag.StringVar(&cacheDir, "cache.dir", app.DefaultCacheDir, "HTTP cache directory (empty disables caching)")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		OutputPDFPath: outputPDF,
		UserAgent:     userAgent,
		Timeout:       timeout,
		MaxRetries:    maxRetries,
		RetryDelay:    retryDelay,
		MaxEmployees:  maxEmployees,
		MaxUpdates:    maxUpdates,
		CacheDir:      cacheDir,
		CacheMaxAge:   cacheMaxAge,
		CacheClear:    cacheClear,
		Verbose:       verbose,
	}

	if settingsPath != "" {
		fc, err := app.LoadConfigFile(settingsPath)
		if err != nil {
			// Matching the original tool: a broken settings file warns and
			// the in-flag defaults apply.
			log.Warn().Err(err).Str("settings", settingsPath).Msg("settings file ignored")
		} else {
			app.ApplyFileConfig(&cfg, fc)
		}
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		if errors.Is(err, app.ErrNoRecords) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	return a.Run(context.Background())
}

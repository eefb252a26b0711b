// Package app wires the scraping pipeline together: it reads the URL list,
// fetches and parses each page, runs the extractors, normalizes the results
// and writes the output files.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"companyscrape/internal/cache"
	"companyscrape/internal/fetch"
	"companyscrape/internal/normalize"
	"companyscrape/internal/scrape"
)

// ErrNoRecords is returned when no company data could be scraped from any
// input URL. The CLI maps it to a non-zero exit code.
var ErrNoRecords = fmt.Errorf("no company data scraped")

type App struct {
	cfg    Config
	client *fetch.Client
}

func New(cfg Config) (*App, error) {
	ua := cfg.UserAgent
	if ua == "" {
		ua = fetch.DefaultUserAgent
	}
	client := &fetch.Client{
		UserAgent:   ua,
		MaxAttempts: cfg.MaxRetries,
		RetryDelay:  cfg.RetryDelay,
		Timeout:     cfg.Timeout,
	}
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			// Best-effort; a stale cache must not fail startup.
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
		client.Cache = &cache.HTTPCache{Dir: cfg.CacheDir}
	}
	return &App{cfg: cfg, client: client}, nil
}

// Run processes every URL in the input file and writes the collected records
// as indented JSON. One failing page never aborts the batch: fetch failures,
// empty extractions and even panics are logged per URL and skipped.
func (a *App) Run(ctx context.Context) error {
	urls, err := ReadURLList(a.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(urls) == 0 {
		log.Warn().Str("input", a.cfg.InputPath).Msg("no URLs found")
		return ErrNoRecords
	}
	log.Info().Int("count", len(urls)).Str("input", a.cfg.InputPath).Msg("loaded URLs")

	records := make([]normalize.Company, 0, len(urls))
	for i, u := range urls {
		log.Info().Int("index", i+1).Int("count", len(urls)).Str("url", u).Msg("processing")
		rec, ok := a.processOne(ctx, u)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		log.Warn().Msg("no company data was successfully scraped")
		return ErrNoRecords
	}

	if err := writeJSON(a.cfg.OutputPath, records); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Int("companies", len(records)).Str("out", a.cfg.OutputPath).Msg("wrote scraped data")

	if a.cfg.OutputPDFPath != "" {
		if err := writeSummaryPDF(records, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote PDF summary")
	}
	return nil
}

// processOne runs the whole pipeline for a single URL. The recover keeps an
// unexpected failure on one adversarial page from taking down the batch.
func (a *App) processOne(ctx context.Context, pageURL string) (rec normalize.Company, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("url", pageURL).Interface("panic", r).Msg("unexpected error while processing")
			ok = false
		}
	}()

	body, _, err := a.client.Get(ctx, pageURL)
	if err != nil {
		log.Warn().Err(err).Str("url", pageURL).Msg("fetch failed")
		return rec, false
	}

	doc, err := scrape.ParseDocument(bytes.NewReader(body), pageURL)
	if err != nil {
		log.Warn().Err(err).Str("url", pageURL).Msg("parse failed")
		return rec, false
	}

	raw := scrape.Scrape(doc, scrape.Options{
		MaxEmployees: a.cfg.MaxEmployees,
		MaxUpdates:   a.cfg.MaxUpdates,
	})
	rec, ok = normalize.Normalize(raw)
	if !ok {
		log.Warn().Str("url", pageURL).Msg("no data extracted")
	}
	return rec, ok
}

// writeJSON writes records as indented UTF-8 JSON, creating parent
// directories as needed. HTML escaping is off so non-ASCII and URLs come
// through verbatim.
func writeJSON(path string, records []normalize.Company) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

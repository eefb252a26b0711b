package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the settings-file schema. Nested sections map naturally to
// the flag groups; YAML and JSON are both accepted.
type FileConfig struct {
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`

	HTTP struct {
		UserAgent  string        `yaml:"userAgent" json:"userAgent"`
		Timeout    time.Duration `yaml:"timeout" json:"timeout"`
		MaxRetries int           `yaml:"maxRetries" json:"maxRetries"`
		RetryDelay time.Duration `yaml:"retryDelay" json:"retryDelay"`
	} `yaml:"http" json:"http"`

	Scrape struct {
		MaxEmployees int `yaml:"maxEmployees" json:"maxEmployees"`
		MaxUpdates   int `yaml:"maxUpdates" json:"maxUpdates"`
	} `yaml:"scrape" json:"scrape"`

	Cache struct {
		Dir    string        `yaml:"dir" json:"dir"`
		MaxAge time.Duration `yaml:"maxAge" json:"maxAge"`
		Clear  bool          `yaml:"clear" json:"clear"`
	} `yaml:"cache" json:"cache"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values onto cfg for fields still at their
// flag defaults, so explicit flags always win over the settings file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == DefaultInputPath) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}

	if cfg.UserAgent == "" && fc.HTTP.UserAgent != "" {
		cfg.UserAgent = fc.HTTP.UserAgent
	}
	if (cfg.Timeout == 0 || cfg.Timeout == DefaultTimeout) && fc.HTTP.Timeout > 0 {
		cfg.Timeout = fc.HTTP.Timeout
	}
	if (cfg.MaxRetries == 0 || cfg.MaxRetries == DefaultMaxRetries) && fc.HTTP.MaxRetries > 0 {
		cfg.MaxRetries = fc.HTTP.MaxRetries
	}
	if (cfg.RetryDelay == 0 || cfg.RetryDelay == DefaultRetryDelay) && fc.HTTP.RetryDelay > 0 {
		cfg.RetryDelay = fc.HTTP.RetryDelay
	}

	if cfg.MaxEmployees == 0 && fc.Scrape.MaxEmployees > 0 {
		cfg.MaxEmployees = fc.Scrape.MaxEmployees
	}
	if cfg.MaxUpdates == 0 && fc.Scrape.MaxUpdates > 0 {
		cfg.MaxUpdates = fc.Scrape.MaxUpdates
	}

	if (cfg.CacheDir == "" || cfg.CacheDir == DefaultCacheDir) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

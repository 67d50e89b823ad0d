package config

import (
	"fmt"
	"net/url"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML configs can say "100s" or "2m".
type Duration time.Duration

// UnmarshalYAML parses a duration in time.ParseDuration syntax.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds scraper configuration. The fixed request constants (headers,
// timeout, root origin) live here instead of package-level globals so tests
// can point the whole stack at a stub host.
type Config struct {
	RootURL        string        `yaml:"root_url"`
	StartURL       string        `yaml:"start_url"`
	UserAgent      string        `yaml:"user_agent"`
	AcceptLanguage string        `yaml:"accept_language"`
	Timeout        Duration      `yaml:"timeout"`
	OutputFile     string        `yaml:"output_file"`
	OutputFormat   string        `yaml:"output_format"` // csv, jsonl, or dual
	MetricsAddr    string        `yaml:"metrics_addr"`
	LogFile        string        `yaml:"log_file"`
	Verbose        bool          `yaml:"verbose"`
}

// DefaultConfig returns the constants of the practice target.
func DefaultConfig() *Config {
	return &Config{
		RootURL:        "https://www.scrapethissite.com/",
		StartURL:       "https://www.scrapethissite.com/pages/forms/?page_num=1&per_page=100",
		UserAgent:      "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/117.0",
		AcceptLanguage: "en-US",
		Timeout:        Duration(100 * time.Second),
		OutputFile:     "data/raw/hockey_teams_raw.csv",
		OutputFormat:   "csv",
		MetricsAddr:    "",
		Verbose:        false,
	}
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.RootURL == "" {
		return fmt.Errorf("root URL cannot be empty")
	}
	root, err := url.Parse(c.RootURL)
	if err != nil {
		return fmt.Errorf("invalid root URL: %w", err)
	}
	if root.Host == "" {
		return fmt.Errorf("root URL must include a host")
	}

	if c.StartURL == "" {
		return fmt.Errorf("start URL cannot be empty")
	}
	start, err := url.Parse(c.StartURL)
	if err != nil {
		return fmt.Errorf("invalid start URL: %w", err)
	}
	if start.Host == "" {
		return fmt.Errorf("start URL must include a host")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if c.OutputFormat != "csv" && c.OutputFormat != "jsonl" && c.OutputFormat != "dual" {
		return fmt.Errorf("output format must be csv, jsonl, or dual")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}
	if c.AcceptLanguage == "" {
		return fmt.Errorf("accept-language cannot be empty")
	}

	return nil
}

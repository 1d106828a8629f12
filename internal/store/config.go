package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	SourceRSS  = "RSS"
	SourceJSON = "JSON"
)

type Config struct {
	Server struct {
		Addr                string `yaml:"addr"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	} `yaml:"server"`
	Fetch struct {
		Source         string `yaml:"source"`
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
		Concurrency    int    `yaml:"concurrency"`
	} `yaml:"fetch"`
	Dashboard struct {
		Title          string `yaml:"title"`
		DefaultTickers string `yaml:"default_tickers"`
		LimitMin       int    `yaml:"limit_min"`
		LimitMax       int    `yaml:"limit_max"`
		LimitStep      int    `yaml:"limit_step"`
		LimitDefault   int    `yaml:"limit_default"`
		CSVFilename    string `yaml:"csv_filename"`
	} `yaml:"dashboard"`
}

// FetchTimeout is the per-ticker fetch bound
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

func (c *Config) Validate() error {
	if c.Fetch.Source != SourceRSS && c.Fetch.Source != SourceJSON {
		return fmt.Errorf("invalid fetch.source '%s': must be 'RSS' or 'JSON'", c.Fetch.Source)
	}
	if !strings.HasPrefix(c.Fetch.BaseURL, "http://") && !strings.HasPrefix(c.Fetch.BaseURL, "https://") {
		return fmt.Errorf("fetch.base_url must be an http(s) URL, got '%s'", c.Fetch.BaseURL)
	}
	if c.Fetch.TimeoutSeconds <= 0 || c.Fetch.TimeoutSeconds > 120 {
		return fmt.Errorf("fetch.timeout_seconds must be between 1-120, got %d", c.Fetch.TimeoutSeconds)
	}
	if c.Fetch.Concurrency < 1 {
		return fmt.Errorf("fetch.concurrency must be at least 1, got %d", c.Fetch.Concurrency)
	}
	d := c.Dashboard
	if d.LimitStep <= 0 {
		return errors.New("dashboard.limit_step must be positive")
	}
	if d.LimitMin <= 0 || d.LimitMin > d.LimitMax {
		return fmt.Errorf("dashboard limits invalid: min=%d max=%d", d.LimitMin, d.LimitMax)
	}
	if d.LimitDefault < d.LimitMin || d.LimitDefault > d.LimitMax {
		return fmt.Errorf("dashboard.limit_default %d outside [%d, %d]", d.LimitDefault, d.LimitMin, d.LimitMax)
	}
	return nil
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8501"
	}
	if c.Server.ReadTimeoutSeconds == 0 {
		c.Server.ReadTimeoutSeconds = 10
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		// A run fetches several tickers sequentially
		c.Server.WriteTimeoutSeconds = 300
	}
	if c.Fetch.Source == "" {
		c.Fetch.Source = SourceRSS
	}
	c.Fetch.Source = strings.ToUpper(c.Fetch.Source)
	if c.Fetch.BaseURL == "" {
		c.Fetch.BaseURL = "https://www.reddit.com"
	}
	c.Fetch.BaseURL = strings.TrimRight(c.Fetch.BaseURL, "/")
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = 15
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if c.Fetch.Concurrency == 0 {
		c.Fetch.Concurrency = 1
	}
	if c.Dashboard.Title == "" {
		c.Dashboard.Title = "Real-Time Reddit Sentiment Dashboard"
	}
	if c.Dashboard.DefaultTickers == "" {
		c.Dashboard.DefaultTickers = "TSLA"
	}
	if c.Dashboard.LimitMin == 0 {
		c.Dashboard.LimitMin = 20
	}
	if c.Dashboard.LimitMax == 0 {
		c.Dashboard.LimitMax = 100
	}
	if c.Dashboard.LimitStep == 0 {
		c.Dashboard.LimitStep = 10
	}
	if c.Dashboard.LimitDefault == 0 {
		c.Dashboard.LimitDefault = 60
	}
	if c.Dashboard.CSVFilename == "" {
		c.Dashboard.CSVFilename = "reddit_sentiment.csv"
	}
}

// LoadConfig reads path; a missing file is not an error and yields defaults.
func LoadConfig(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// MetProvider configures the Met Museum collection endpoints.
type MetProvider struct {
	Enabled   bool   `yaml:"enabled"`
	SearchURL string `yaml:"search_url"`
	ObjectURL string `yaml:"object_url"`
	PageURL   string `yaml:"page_url"`
}

// AICProvider configures the Art Institute of Chicago endpoints.
type AICProvider struct {
	Enabled   bool   `yaml:"enabled"`
	SearchURL string `yaml:"search_url"`
	IIIFURL   string `yaml:"iiif_url"`
	PageURL   string `yaml:"page_url"`
}

type Providers struct {
	Met MetProvider `yaml:"met"`
	AIC AICProvider `yaml:"aic"`
}

type Search struct {
	MinResults int `yaml:"min_results"`
	MaxResults int `yaml:"max_results"`
}

type Config struct {
	RequestTimeout string    `yaml:"request_timeout"`
	Search         Search    `yaml:"search"`
	Providers      Providers `yaml:"providers"`
}

func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// MinResults returns the widen threshold, defaulting to 50.
func (c *Config) MinResults() int {
	if c.Search.MinResults <= 0 {
		return 50
	}
	return c.Search.MinResults
}

// MaxResults returns the result-set hard cap, defaulting to 500.
func (c *Config) MaxResults() int {
	if c.Search.MaxResults <= 0 {
		return 500
	}
	return c.Search.MaxResults
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "artmood", "config.yaml")
}

// LikesPath is where the liked-artworks database lives.
func LikesPath() string {
	return filepath.Join(xdg.DataHome, "artmood", "likes.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if !cfg.Providers.Met.Enabled && !cfg.Providers.AIC.Enabled {
		return fmt.Errorf("at least one provider must be enabled")
	}
	urls := map[string]string{}
	if cfg.Providers.Met.Enabled {
		urls["providers.met.search_url"] = cfg.Providers.Met.SearchURL
		urls["providers.met.object_url"] = cfg.Providers.Met.ObjectURL
		urls["providers.met.page_url"] = cfg.Providers.Met.PageURL
	}
	if cfg.Providers.AIC.Enabled {
		urls["providers.aic.search_url"] = cfg.Providers.AIC.SearchURL
		urls["providers.aic.iiif_url"] = cfg.Providers.AIC.IIIFURL
		urls["providers.aic.page_url"] = cfg.Providers.AIC.PageURL
	}
	for field, raw := range urls {
		if raw == "" {
			return fmt.Errorf("%s: url is required", field)
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: invalid url: %w", field, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s: url scheme must be http or https, got %q", field, u.Scheme)
		}
	}
	if cfg.Search.MinResults < 0 || cfg.Search.MaxResults < 0 {
		return fmt.Errorf("search thresholds must not be negative")
	}
	if cfg.Search.MinResults > 0 && cfg.Search.MaxResults > 0 && cfg.Search.MinResults > cfg.Search.MaxResults {
		return fmt.Errorf("search.min_results (%d) must not exceed search.max_results (%d)", cfg.Search.MinResults, cfg.Search.MaxResults)
	}
	return nil
}

package config

import (
	"fmt"
	"net/url"
)

// Config is the top-level repoctl configuration.
type Config struct {
	RepologyURL string   `mapstructure:"repology_url" yaml:"repology_url"`
	Database    string   `mapstructure:"database" yaml:"database"`
	Allowlist   []string `mapstructure:"allowlist" yaml:"allowlist"`
	Denylist    []string `mapstructure:"denylist" yaml:"denylist"`
}

// Validate checks that the repology URL is an absolute http(s) URL.
func (c *Config) Validate() error {
	u, err := url.Parse(c.RepologyURL)
	if err != nil {
		return fmt.Errorf("invalid repology_url %q: %w", c.RepologyURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid repology_url %q: must be an absolute http(s) URL", c.RepologyURL)
	}
	return nil
}

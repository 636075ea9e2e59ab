package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/repoctl/internal/util"
)

// DefaultRepologyURL is used when the config does not name an instance.
const DefaultRepologyURL = "https://repology.org/"

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "repoctl", "config.yml")
}

// DefaultDatabasePath returns the default version database path.
func DefaultDatabasePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "repoctl", "versions.yml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		RepologyURL: DefaultRepologyURL,
		Database:    DefaultDatabasePath(),
		Allowlist:   []string{},
		Denylist:    []string{},
	}
}

// ResolvePath picks the config file: explicit path, then REPOCTL_CONFIG,
// then the default location.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv("REPOCTL_CONFIG"); env != "" {
		return env
	}
	return DefaultPath()
}

// Load reads the config from path (see ResolvePath) and the environment.
// A missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("repology_url", DefaultRepologyURL)
	v.SetDefault("database", DefaultDatabasePath())
	v.SetDefault("allowlist", []string{})
	v.SetDefault("denylist", []string{})

	v.SetEnvPrefix("REPOCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(ResolvePath(path))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Database = util.ExpandHome(cfg.Database)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return util.WriteFileAtomic(path, buf.Bytes(), 0644)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/repoctl/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRepologyURL, cfg.RepologyURL)
	assert.Equal(t, config.DefaultDatabasePath(), cfg.Database)
	assert.Empty(t, cfg.Allowlist)
	assert.Empty(t, cfg.Denylist)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
repology_url: http://localhost:8080/
database: ~/versions.yml
allowlist: [arch]
denylist:
  - arch
  - gentoo
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, "http://localhost:8080/", cfg.RepologyURL)
	assert.Equal(t, filepath.Join(home, "versions.yml"), cfg.Database)
	assert.Equal(t, []string{"arch"}, cfg.Allowlist)
	assert.Equal(t, []string{"arch", "gentoo"}, cfg.Denylist)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REPOCTL_REPOLOGY_URL", "https://mirror.example.org/")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example.org/", cfg.RepologyURL)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("repology_url: [unclosed\n"), 0644))

	_, err := config.Load(path)
	var parseErr viper.ConfigParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadInvalidURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("repology_url: not-a-url\n"), 0644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	t.Setenv("REPOCTL_CONFIG", "/from/env.yml")
	assert.Equal(t, "/explicit.yml", config.ResolvePath("/explicit.yml"))
	assert.Equal(t, "/from/env.yml", config.ResolvePath(""))

	t.Setenv("REPOCTL_CONFIG", "")
	assert.Equal(t, config.DefaultPath(), config.ResolvePath(""))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")
	want := &config.Config{
		RepologyURL: "https://repology.org/",
		Database:    "/tmp/versions.yml",
		Allowlist:   []string{"arch"},
		Denylist:    []string{"gentoo"},
	}
	require.NoError(t, config.Save(path, want))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

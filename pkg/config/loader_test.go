package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomathdoc/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscover(t *testing.T) {
	t.Run("finds config in working directory", func(t *testing.T) {
		dir := t.TempDir()
		want := filepath.Join(dir, ".gomathdoc.yaml")
		writeFile(t, want, "backups: {enabled: false}\n")

		got, err := config.Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("walks up to parent directories", func(t *testing.T) {
		dir := t.TempDir()
		want := filepath.Join(dir, ".gomathdoc.yml")
		writeFile(t, want, "backups: {enabled: false}\n")
		sub := filepath.Join(dir, "docs", "notes")
		require.NoError(t, os.MkdirAll(sub, 0755))

		got, err := config.Discover(sub)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("stops at VCS root", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, ".gomathdoc.yaml"), "")
		repo := filepath.Join(dir, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))

		got, err := config.Discover(repo)
		require.NoError(t, err)
		assert.Empty(t, got, "config above the VCS root must not be picked up")
	})

	t.Run("prefers earlier names", func(t *testing.T) {
		dir := t.TempDir()
		first := filepath.Join(dir, ".gomathdoc.yml")
		writeFile(t, first, "")
		writeFile(t, filepath.Join(dir, "gomathdoc.yaml"), "")

		got, err := config.Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("nothing found returns empty", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

		got, err := config.Discover(dir)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yaml")
		writeFile(t, path, "renderer: {error_indicator: \"!\"}\n")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "!", cfg.Renderer.ErrorIndicator)
	})

	t.Run("missing explicit path is an error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "backups: {mode: cloud}\n")

		_, err := config.Load(path)
		require.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides fields", func(t *testing.T) {
		t.Setenv("GOMATHDOC_JOBS", "4")
		t.Setenv("GOMATHDOC_WIDTH", "120")
		t.Setenv("GOMATHDOC_ERROR_INDICATOR", "[err]")
		t.Setenv("GOMATHDOC_BACKUPS_ENABLED", "false")
		t.Setenv("GOMATHDOC_IGNORE", "vendor/**, drafts/**")

		cfg := config.NewConfig()
		require.NoError(t, config.ApplyEnv(cfg))

		assert.Equal(t, 4, cfg.Jobs)
		assert.Equal(t, 120, cfg.Renderer.Width)
		assert.Equal(t, "[err]", cfg.Renderer.ErrorIndicator)
		assert.False(t, cfg.Backups.Enabled)
		assert.Equal(t, []string{"vendor/**", "drafts/**"}, cfg.Ignore)
	})

	t.Run("bad boolean is an error", func(t *testing.T) {
		t.Setenv("GOMATHDOC_WRITE", "definitely")

		cfg := config.NewConfig()
		require.Error(t, config.ApplyEnv(cfg))
	})

	t.Run("bad integer is an error", func(t *testing.T) {
		t.Setenv("GOMATHDOC_JOBS", "many")

		cfg := config.NewConfig()
		require.Error(t, config.ApplyEnv(cfg))
	})

	t.Run("nil config is a no-op", func(t *testing.T) {
		require.NoError(t, config.ApplyEnv(nil))
	})
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultFileName is the file name written by gomathdoc init and the
// first name searched for during discovery.
const DefaultFileName = ".gomathdoc.yml"

// configFileNames are the file names searched for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	DefaultFileName,
	".gomathdoc.yaml",
	"gomathdoc.yml",
	"gomathdoc.yaml",
}

// vcsRootMarkers are directories that indicate a project root; the upward
// search stops at the first one it passes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Discover searches upward from workDir for a project config file and
// returns its path, or "" when none is found. The search stops after the
// first directory that contains a VCS root marker.
func Discover(workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", workDir, err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// Load reads, parses, and validates a config file. An explicit empty path
// discovers the project config from the current directory; with nothing
// found the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		path, err = Discover(wd)
		if err != nil {
			return nil, err
		}
		if path == "" {
			cfg := NewConfig()
			if err := ApplyEnv(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// envVarPrefix is the prefix for all gomathdoc environment variables.
const envVarPrefix = "GOMATHDOC_"

// ApplyEnv applies environment variable overrides to the configuration.
// Variables are prefixed with GOMATHDOC_ (e.g. GOMATHDOC_JOBS).
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "ERROR_INDICATOR"); v != "" {
		cfg.Renderer.ErrorIndicator = v
	}
	if v := os.Getenv(envVarPrefix + "WIDTH"); v != "" {
		n, err := parseEnvInt(envVarPrefix+"WIDTH", v)
		if err != nil {
			return err
		}
		cfg.Renderer.Width = n
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		n, err := parseEnvInt(envVarPrefix+"JOBS", v)
		if err != nil {
			return err
		}
		cfg.Jobs = n
	}
	if v := os.Getenv(envVarPrefix + "WRITE"); v != "" {
		b, err := parseEnvBool(envVarPrefix+"WRITE", v)
		if err != nil {
			return err
		}
		cfg.Write = b
	}
	if v := os.Getenv(envVarPrefix + "DRY_RUN"); v != "" {
		b, err := parseEnvBool(envVarPrefix+"DRY_RUN", v)
		if err != nil {
			return err
		}
		cfg.DryRun = b
	}
	if v := os.Getenv(envVarPrefix + "BACKUPS_ENABLED"); v != "" {
		b, err := parseEnvBool(envVarPrefix+"BACKUPS_ENABLED", v)
		if err != nil {
			return err
		}
		cfg.Backups.Enabled = b
	}
	if v := os.Getenv(envVarPrefix + "BACKUPS_MODE"); v != "" {
		cfg.Backups.Mode = v
	}
	if v := os.Getenv(envVarPrefix + "IGNORE"); v != "" {
		cfg.Ignore = splitEnvList(v)
	}

	return nil
}

func parseEnvBool(name, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", name, value)
	}
	return b, nil
}

func parseEnvInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q", name, value)
	}
	return n, nil
}

func splitEnvList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

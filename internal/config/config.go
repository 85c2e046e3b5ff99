// Package config loads the CLI configuration file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config carries the knobs the CLI forwards to the client. Every field
// is optional; zero values mean "use the client default".
type Config struct {
	BaseURL    string
	UserID     string
	Timeout    time.Duration
	CacheTTL   time.Duration
	Categories []string
}

const defaultConfigPath = "~/.config/sponsorblock/config.toml"

// Load parses the config file at path, or the default location when
// path is empty. A missing file is not an error; it yields the zero
// Config.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(err, "open config")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var raw struct {
		BaseURL    string   `toml:"base_url"`
		UserID     string   `toml:"user_id"`
		Timeout    string   `toml:"timeout"`
		CacheTTL   string   `toml:"cache_ttl"`
		Categories []string `toml:"categories"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	cfg := Config{
		BaseURL:    strings.TrimSpace(raw.BaseURL),
		UserID:     strings.TrimSpace(raw.UserID),
		Categories: raw.Categories,
	}
	if raw.Timeout != "" {
		cfg.Timeout, err = time.ParseDuration(raw.Timeout)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse timeout")
		}
	}
	if raw.CacheTTL != "" {
		cfg.CacheTTL, err = time.ParseDuration(raw.CacheTTL)
		if err != nil {
			return Config{}, errors.Wrap(err, "parse cache_ttl")
		}
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

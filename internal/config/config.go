package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/arcanaland/manufactor/internal/deck"
	"github.com/arcanaland/manufactor/internal/logger"
	"github.com/arcanaland/manufactor/internal/token"
)

const appName = "manufactor"

// Config is the user configuration stored in config.toml.
type Config struct {
	DefaultDeck     string   `toml:"default_deck"`
	CommonTokens    []string `toml:"common_tokens"`
	Exclude         []string `toml:"exclude"`
	Workers         int      `toml:"workers"`
	CommonTokenFile string   `toml:"common_token_file"`
}

// xdgHome returns the directory named by env, or fallback below the user's
// home directory when env is unset.
func xdgHome(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetXDGDataHome returns XDG_DATA_HOME or ~/.local/share
func GetXDGDataHome() string { return xdgHome("XDG_DATA_HOME", ".local", "share") }

// GetXDGConfigHome returns XDG_CONFIG_HOME or ~/.config
func GetXDGConfigHome() string { return xdgHome("XDG_CONFIG_HOME", ".config") }

// GetXDGCacheHome returns XDG_CACHE_HOME or ~/.cache
func GetXDGCacheHome() string { return xdgHome("XDG_CACHE_HOME", ".cache") }

// GetCacheDir returns the application cache directory
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig reads the config file. The file is written with the default
// vocabulary the first time it is missing.
func LoadConfig() (*Config, error) {
	path := GetConfigFilePath()
	cfg := defaultConfig()

	meta, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := cfg.save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.L().Warn("unknown config keys",
			zap.String("path", path),
			zap.Stringers("keys", undecoded))
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		CommonTokens: append([]string(nil), token.DefaultCommonTokens...),
		Exclude:      append([]string(nil), token.DefaultExclude...),
	}
}

func (c *Config) save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Update loads the config, applies fn and writes the result back.
func Update(fn func(*Config)) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	fn(cfg)
	return cfg.save(GetConfigFilePath())
}

// GetDeckPath resolves a deck by library name first, then as a path to a
// deck folder or deck file.
func GetDeckPath(deckName string) (string, error) {
	candidates := []string{
		filepath.Join(GetDeckLibraryPath(), deckName),
		filepath.Join(GetDeckLibraryPath(), deck.FileName(deckName)),
		deckName,
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", deck.ErrDeckNotFound, deckName)
}

// GetDefaultDeck returns the configured default deck, or "" when none is set.
func GetDefaultDeck() (string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.DefaultDeck, nil
}

// SetDefaultDeck records deckName as the default deck.
func SetDefaultDeck(deckName string) error {
	return Update(func(c *Config) { c.DefaultDeck = deckName })
}

// Vocabulary returns the extraction tables with the configured overrides.
// Empty lists keep the built-in defaults.
func (c *Config) Vocabulary() token.Vocabulary {
	return token.Vocabulary{
		CommonTokens: c.CommonTokens,
		Exclude:      c.Exclude,
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the runtime settings SkyExplorer reads at startup.
type Config struct {
	LogDir   string
	LogLevel string
	Theme    string // empty defers to saved preferences
}

const (
	defaultConfigPath = "~/.config/skyexplorer/config.toml"
	defaultLogDir     = "~/.local/state/skyexplorer"
	defaultLogLevel   = "info"
	logFileName       = "skyexplorer.log"

	envLogLevel = "SKYEXPLORER_LOG_LEVEL"
	envTheme    = "SKYEXPLORER_THEME"
	envLogDir   = "SKYEXPLORER_LOG_DIR"
)

// Load reads the config file at path (or the default location), applies
// environment overrides and fills defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw struct {
		LogDir   string `toml:"log_dir"`
		LogLevel string `toml:"log_level"`
		Theme    string `toml:"theme"`
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg := Config{
		LogDir:   firstNonEmpty(os.Getenv(envLogDir), raw.LogDir, defaultLogDir),
		LogLevel: strings.ToLower(firstNonEmpty(os.Getenv(envLogLevel), raw.LogLevel, defaultLogLevel)),
		Theme:    firstNonEmpty(os.Getenv(envTheme), raw.Theme),
	}
	cfg.LogDir = mustExpand(cfg.LogDir)
	return cfg, nil
}

// LogPath returns the rotating log file inside LogDir.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return filepath.Join(mustExpand(defaultLogDir), logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and makes the path absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

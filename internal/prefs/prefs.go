// Package prefs persists the few UI choices a user makes inside SkyExplorer.
// Preferences live in ~/.config/skyexplorer/prefs.toml. Form contents are
// never saved.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/skyexplorer/internal/config"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme            string `toml:"theme"`
	HideDestinations bool   `toml:"hide_destinations"`
}

const (
	defaultPrefsPath = "~/.config/skyexplorer/prefs.toml"
	defaultTheme     = "Slate"
)

// Default returns the preferences used when nothing is saved.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Any problem reading or parsing the file
// yields the defaults; a broken prefs file should never stop the UI.
func Load(path string) Prefs {
	resolved, err := config.ExpandPath(orDefault(path))
	if err != nil {
		return Default()
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default()
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes p to path, creating directories as needed. The file is
// replaced atomically so a crash never leaves it half written.
func Save(path string, p Prefs) error {
	resolved, err := config.ExpandPath(orDefault(path))
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func orDefault(path string) string {
	if strings.TrimSpace(path) == "" {
		return defaultPrefsPath
	}
	return path
}

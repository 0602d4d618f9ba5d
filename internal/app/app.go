package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/five82/skyexplorer/internal/config"
	"github.com/five82/skyexplorer/internal/logging"
	"github.com/five82/skyexplorer/internal/prefs"
	"github.com/five82/skyexplorer/internal/state"
	"github.com/five82/skyexplorer/internal/ui"
)

// Options configure the SkyExplorer application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/skyexplorer/prefs.toml
	ThemeName  string // overrides config and prefs when set
}

// Run boots the SkyExplorer TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger, closer, err := logging.New(logging.Options{
		Path:  cfg.LogPath(),
		Level: cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	sessionID := uuid.NewString()
	theme := resolveTheme(opts.ThemeName, cfg.Theme, userPrefs.Theme)
	log := logger.WithField("session", sessionID)
	log.WithField("theme", theme).Info("session started")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     &state.Store{},
		Logger:    logger,
		ThemeName: theme,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		SessionID: sessionID,
	})
	if err != nil {
		log.WithError(err).Error("ui exited")
		return fmt.Errorf("run ui: %w", err)
	}
	log.Info("session ended")
	return nil
}

// resolveTheme picks the first non-empty theme name in precedence order.
func resolveTheme(flag, configured, saved string) string {
	for _, name := range []string{flag, configured, saved} {
		if name != "" {
			return name
		}
	}
	return prefs.Default().Theme
}

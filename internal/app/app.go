package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/rove/internal/config"
	"github.com/five82/rove/internal/prefs"
	"github.com/five82/rove/internal/state"
	"github.com/five82/rove/internal/tabnav"
	"github.com/five82/rove/internal/ui"
)

// Options configure the rove application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/rove/prefs.toml
}

// Run boots the community screen until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	store := &state.Store{}
	store.Reset(cfg.TabIDs(), initialTab(cfg, userPrefs))
	logger.Debug("starting", slog.Int("tabs", len(cfg.Tabs)), slog.String("active", string(store.Snapshot().Active)))

	uiOpts := ui.Options{
		Store:     store,
		Config:    &cfg,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	runErr := ui.Run(ctx, uiOpts)

	if err := saveLastTab(opts.PrefsPath, store.Snapshot().Active); err != nil {
		logger.Debug("save last tab failed", slog.Any("error", err))
	}
	return runErr
}

// initialTab restores the last active tab when it is still configured.
func initialTab(cfg config.Config, p prefs.Prefs) tabnav.TabID {
	if last := tabnav.TabID(p.LastTab); last != "" {
		if _, ok := cfg.Tab(last); ok {
			return last
		}
	}
	return cfg.DefaultTab
}

// saveLastTab re-reads prefs so a theme chosen during the session is kept.
func saveLastTab(path string, active tabnav.TabID) error {
	p := prefs.Load(path)
	p.LastTab = string(active)
	return prefs.Save(path, p)
}

package app

import (
	"context"
	"fmt"

	"github.com/five82/contour/internal/config"
	"github.com/five82/contour/internal/logging"
	"github.com/five82/contour/internal/prefs"
	"github.com/five82/contour/internal/source"
	"github.com/five82/contour/internal/state"
	"github.com/five82/contour/internal/ui"
)

// Options configure the previewer.
type Options struct {
	Location   string
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/contour/prefs.toml
	Steps      int    // overrides the configured step count when > 0
}

// Run boots the previewer until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Steps > 0 {
		cfg.Steps = opts.Steps
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	userPrefs := prefs.Load(opts.PrefsPath)

	fetcher, err := source.New(opts.Location)
	if err != nil {
		return fmt.Errorf("init source: %w", err)
	}

	store := &state.Store{}
	refresher := NewRefresher(fetcher, store, cfg.FitOptions(), logger)

	// Do initial load to populate store before UI starts; failures show in the UI
	_ = refresher.Reload(ctx)

	if file, ok := fetcher.(*source.File); ok {
		reload := func() { _ = refresher.Reload(ctx) }
		if err := StartWatcher(ctx, file.Path, 0, reload, logger); err != nil {
			logger.Warn("file watch unavailable, polling instead", "error", err)
			StartPoller(ctx, refresher, cfg.PollEvery)
		}
	} else {
		StartPoller(ctx, refresher, cfg.PollEvery)
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Controller: refresher,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		Logger:     logger,
		LogFile:    cfg.LogFile,
	})
}

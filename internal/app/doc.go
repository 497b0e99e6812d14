// Package app wires configuration, loading, refreshing and the previewer.
//
// # Overview
//
// Run is the composition root of the interactive previewer:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()      Read ~/.config/contour/config.toml
//	       ├─────> logging.New()      Log to the configured file
//	       ├─────> prefs.Load()       Theme and overlay toggles
//	       ├─────> source.New()       File or HTTP fetcher
//	       ├─────> Refresher.Reload() Initial load and fit
//	       ├─────> StartWatcher()     fsnotify reloads for files
//	       │       StartPoller()      timed reloads for HTTP
//	       └─────> ui.Run()           Bubble Tea program (blocks)
//
// # Refreshing
//
// The Refresher fetches the series, runs curve.Fit and publishes the result
// to a state.Store. It also keeps the last series so the UI can change the
// step count without refetching.
//
// File sources are watched with fsnotify on the parent directory; bursts of
// events are debounced into one reload. HTTP sources are polled; after each
// consecutive failure the wait doubles, capped at 30 seconds, and resets on
// the next success.
//
// Reload failures never stop the program. They are logged and recorded in
// the store, which keeps the last good result for display.
//
// # Batch use
//
// LoadAndFit runs one load and fit for the non-interactive subcommands.
package app

// Package app provides the orchestration layer for rove.
//
// # Overview
//
// Run wires configuration, preferences, logging, the tab store and the UI
// together. It is the composition root for the community screen:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()    Tabs, default tab, log file
//	       ├─────> openLogger()     slog to file, or discard
//	       ├─────> prefs.Load()     Theme and last active tab
//	       ├─────> state.Store{}    Owner of tab list and active tab
//	       ├─────> ui.Run()         Bubble Tea screen (blocks)
//	       └─────> saveLastTab()    Persist the final active tab
//
// RunMarkup is the headless path used by "rove markup": it parses an HTML
// document, binds a tabnav.Controller to its tablist, replays keydown events
// and writes the synchronized markup.
//
// # Error Handling
//
// Fatal (returned from Run):
//   - Config file unreadable, invalid TOML, or failing validation
//   - Log file cannot be created
//   - Bubble Tea program errors
//
// Recoverable (logged at debug level):
//   - Preferences that fail to save on exit
//
// Missing or corrupt preference files fall back to defaults.
package app

// Package app is the composition root for shutter.
//
// # Overview
//
// Run wires configuration, logging, metrics, the Pixabay client and the
// preferences file into the Bubble Tea UI and blocks until the user quits:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/shutter/config.toml
//	       ├─────> logging.Setup()      zerolog to the log file
//	       ├─────> pixabay.NewClient()  HTTP client for the image API
//	       ├─────> metrics.Serve()      Optional /metrics listener
//	       ├─────> prefs.Load()         Theme and recent queries
//	       └─────> ui.Run()             Start TUI (blocks)
//
// Query is the non-interactive path behind "shutter query". It drives the
// same search.Controller as the TUI through its synchronous helpers, logs
// and prints notices to stderr, and writes the gallery to stdout as text or
// JSON.
//
// # Error Handling
//
// Fatal errors (returned from Run and Query):
//   - Invalid configuration file
//   - Log file that cannot be created
//   - Missing API key
//
// Everything that happens after startup (failed fetches, empty results,
// lightbox failures) is shown to the user as a toast and logged, never
// returned.
package app

package ui

import "time"

// Fixed rows around the main area: header, search bar and command bar.
const chromeRows = 3

// Default timings used when Options leave them unset.
const (
	DefaultToastTimeout   = 3 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// Diagnostics log view.
const (
	logTailLines       = 500
	logRefreshInterval = 2 * time.Second
)

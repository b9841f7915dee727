// Package config loads shutter's TOML configuration.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shutter/config.toml
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//  5. PIXABAY_API_KEY, when set, replaces api_key
//
// # TOML Format
//
//	api_key = "your-pixabay-key"
//	base_url = "https://pixabay.com/api/"
//	log_file = "~/.local/state/shutter/shutter.log"
//	log_level = "info"          # debug, info, warn, error
//	metrics_addr = ""           # e.g. ":9464" to expose /metrics
//	toast_timeout = "3s"
//	request_timeout = "10s"
//
// Every field is optional. A missing API key is not a load error; the app
// reports it when building the Pixabay client.
//
// # Path Expansion
//
// Tilde paths are expanded to the home directory and relative paths become
// absolute. Expansion applies to the config path and log_file.
package config

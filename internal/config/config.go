package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything shutter reads from its config file.
type Config struct {
	APIKey         string
	BaseURL        string
	LogFile        string
	LogLevel       string
	MetricsAddr    string
	ToastTimeout   time.Duration
	RequestTimeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/shutter/config.toml"
	defaultLogFile        = "~/.local/state/shutter/shutter.log"
	defaultBaseURL        = "https://pixabay.com/api/"
	defaultLogLevel       = "info"
	defaultToastTimeout   = 3 * time.Second
	defaultRequestTimeout = 10 * time.Second

	// APIKeyEnv overrides api_key from the config file when set.
	APIKeyEnv = "PIXABAY_API_KEY"
)

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Load locates and parses the shutter config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:        defaultBaseURL,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		ToastTimeout:   defaultToastTimeout,
		RequestTimeout: defaultRequestTimeout,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIKey         string `toml:"api_key"`
		BaseURL        string `toml:"base_url"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		MetricsAddr    string `toml:"metrics_addr"`
		ToastTimeout   string `toml:"toast_timeout"`
		RequestTimeout string `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)

	if base := strings.TrimSpace(raw.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		if !validLevels[level] {
			return Config{}, fmt.Errorf("invalid log_level: %s", level)
		}
		cfg.LogLevel = level
	}
	if cfg.ToastTimeout, err = parseDuration("toast_timeout", raw.ToastTimeout, defaultToastTimeout); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout, defaultRequestTimeout); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

// HasAPIKey reports whether a non-empty API key was configured.
func (c Config) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func applyEnv(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		cfg.APIKey = key
	}
}

func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", field, trimmed)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
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

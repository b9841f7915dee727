package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/five82/shutter/internal/config"
	"github.com/five82/shutter/internal/logging"
	"github.com/five82/shutter/internal/metrics"
	"github.com/five82/shutter/internal/pixabay"
	"github.com/five82/shutter/internal/prefs"
	"github.com/five82/shutter/internal/ui"
)

// Options configure the shutter application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shutter/prefs.toml
	LogLevel   string // overrides log_level from the config when set
}

// Run boots the shutter TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger, closeLog, err := logging.Setup(logging.Options{Level: cfg.LogLevel, Path: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closeLog() }()

	client, err := newClient(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return err
	}

	metrics.Serve(ctx, cfg.MetricsAddr, logging.New("metrics"))

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Str("theme", userPrefs.Theme).
		Msg("shutter starting")

	err = ui.Run(ui.Options{
		Context:        ctx,
		Fetcher:        client,
		Logger:         componentLogger("ui"),
		ThemeName:      userPrefs.Theme,
		PrefsPath:      prefsPath,
		RecentQueries:  userPrefs.Recent,
		LogPath:        cfg.LogFile,
		ToastTimeout:   cfg.ToastTimeout,
		RequestTimeout: cfg.RequestTimeout,
	})
	if err != nil {
		logger.Error().Err(err).Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info().Msg("shutter stopped")
	return nil
}

// newClient builds the Pixabay client from the loaded config.
func newClient(cfg config.Config) (*pixabay.Client, error) {
	client, err := pixabay.NewClient(cfg.APIKey, pixabay.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  componentLogger("pixabay"),
	})
	if err != nil {
		return nil, fmt.Errorf("init pixabay client (set api_key or %s): %w", config.APIKeyEnv, err)
	}
	return client, nil
}

func componentLogger(component string) *zerolog.Logger {
	l := logging.New(component)
	return &l
}

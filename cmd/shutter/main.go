package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/shutter/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "shutter: %v\n", err)
		return 1
	}
	return 0
}

type globalFlags struct {
	configPath string
	prefsPath  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "shutter",
		Short: "Search Pixabay images from the terminal",
		Long: `shutter searches the Pixabay image API and shows the results as a
scrollable gallery of cards. Press / to search, m to load more results,
o to open the full-size image and ? for every key binding.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				LogLevel:   flags.logLevel,
			})
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/shutter/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/shutter/prefs.toml)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(newQueryCmd(flags))
	return root
}

func newQueryCmd(flags *globalFlags) *cobra.Command {
	var (
		pages  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "query <terms...>",
		Short: "Run one search and print the results",
		Long: `Run a search without the interactive UI. Results are printed as text,
or as JSON with --json. Notices such as "end of results" go to stderr.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Query(cmd.Context(), app.QueryOptions{
				ConfigPath: flags.configPath,
				LogLevel:   flags.logLevel,
				Terms:      strings.Join(args, " "),
				Pages:      pages,
				JSON:       asJSON,
				Out:        cmd.OutOrStdout(),
				Err:        cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 1, "number of result pages to load")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

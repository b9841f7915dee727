package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/five82/shutter/internal/config"
	"github.com/five82/shutter/internal/logging"
	"github.com/five82/shutter/internal/pixabay"
	"github.com/five82/shutter/internal/search"
	"github.com/five82/shutter/internal/state"
)

// QueryOptions configure a one-shot, non-interactive search.
type QueryOptions struct {
	ConfigPath string
	LogLevel   string
	Terms      string
	Pages      int  // pages to load; values below 1 load one
	JSON       bool // print JSON instead of text
	Out        io.Writer
	Err        io.Writer       // notices and logs
	Fetcher    pixabay.Fetcher // nil builds a Pixabay client from the config
}

// Query runs a search through the same controller as the TUI, loads more
// pages while asked to and available, and prints the gallery.
func Query(ctx context.Context, opts QueryOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if _, _, err := logging.Setup(logging.Options{Level: cfg.LogLevel, Output: opts.Err, Console: true}); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		client, err := newClient(cfg)
		if err != nil {
			return err
		}
		fetcher = client
	}

	ctrl := search.NewController(search.Options{
		Notifier: streamNotifier{w: opts.Err},
		Logger:   componentLogger("search"),
	})

	if _, err := ctrl.Search(ctx, fetcher, opts.Terms); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	for ctrl.Snapshot().Page < opts.Pages && ctrl.LoadMoreVisible() {
		if _, err := ctrl.More(ctx, fetcher); err != nil {
			return fmt.Errorf("load more: %w", err)
		}
	}

	if opts.JSON {
		return writeJSON(opts.Out, ctrl.Snapshot(), ctrl.Cards())
	}
	return writeText(opts.Out, ctrl.Snapshot(), ctrl.Cards())
}

// streamNotifier prints notices as "severity: message" lines.
type streamNotifier struct {
	w io.Writer
}

func (n streamNotifier) Notify(notice search.Notice) {
	fmt.Fprintf(n.w, "%s: %s\n", notice.Severity, notice.Message)
}

type queryOutput struct {
	Query     string       `json:"query"`
	Page      int          `json:"page"`
	TotalHits int          `json:"totalHits"`
	Cards     []cardOutput `json:"cards"`
}

type cardOutput struct {
	LargeImageURL string `json:"largeImageURL"`
	WebformatURL  string `json:"webformatURL"`
	Tags          string `json:"tags"`
	Likes         int    `json:"likes"`
	Views         int    `json:"views"`
	Comments      int    `json:"comments"`
	Downloads     int    `json:"downloads"`
}

func writeJSON(w io.Writer, snap state.Snapshot, cards []search.Card) error {
	out := queryOutput{
		Query:     snap.Query,
		Page:      snap.Page,
		TotalHits: snap.TotalHits,
		Cards:     make([]cardOutput, len(cards)),
	}
	for i, c := range cards {
		out.Cards[i] = cardOutput{
			LargeImageURL: c.Link,
			WebformatURL:  c.Thumbnail,
			Tags:          c.Alt,
			Likes:         c.Likes,
			Views:         c.Views,
			Comments:      c.Comments,
			Downloads:     c.Downloads,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func writeText(w io.Writer, snap state.Snapshot, cards []search.Card) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%q: %d of %d hits (page %d)\n", snap.Query, len(cards), snap.TotalHits, snap.Page)
	for i, c := range cards {
		fmt.Fprintf(tw, "\n%d.\t%s\n", i+1, c.Alt)
		fmt.Fprintf(tw, "\tfull\t%s\n", c.Link)
		fmt.Fprintf(tw, "\tpreview\t%s\n", c.Thumbnail)
		fmt.Fprintf(tw, "\tstats\tlikes %d  views %d  comments %d  downloads %d\n",
			c.Likes, c.Views, c.Comments, c.Downloads)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

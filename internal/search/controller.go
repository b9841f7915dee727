package search

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/shutter/internal/metrics"
	"github.com/five82/shutter/internal/pixabay"
	"github.com/five82/shutter/internal/state"
)

// ScrollCards is how many card heights the gallery scrolls after a load-more.
const ScrollCards = 2

// Kind tells a new search apart from a load-more request.
type Kind int

const (
	KindNew Kind = iota
	KindMore
)

func (k Kind) String() string {
	if k == KindMore {
		return "more"
	}
	return "new"
}

// Request is one fetch issued by the controller. Seq increases with every
// request; only the latest one is applied when it completes.
type Request struct {
	Seq   uint64
	Kind  Kind
	Query string
	Page  int
}

// Outcome describes what applying a completed request did.
type Outcome struct {
	Stale        bool // superseded by a newer request and dropped
	Rendered     int  // cards added to the gallery
	ScrollCards  int  // card heights to scroll down, load-more only
	EndOfResults bool
	Err          error
}

// Options wire a Controller to its collaborators. Nil fields become no-ops.
type Options struct {
	Notifier Notifier
	Viewer   Viewer
	Logger   *zerolog.Logger
}

// Controller owns the search state and the visibility of the loader and the
// load-more control.
type Controller struct {
	state    state.Search
	seq      uint64
	loading  bool
	loadMore bool
	notifier Notifier
	viewer   Viewer
	logger   zerolog.Logger
}

// NewController returns an idle controller.
func NewController(opts Options) *Controller {
	c := &Controller{
		notifier: opts.Notifier,
		viewer:   opts.Viewer,
		logger:   zerolog.Nop(),
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.viewer == nil {
		c.viewer = nopViewer{}
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}
	return c
}

// Submit starts a new search for input, clearing the gallery and the viewer's
// links. A blank input shows an info notice, changes nothing and returns
// ErrEmptyQuery.
func (c *Controller) Submit(input string) (Request, error) {
	query := strings.TrimSpace(input)
	if query == "" {
		c.notifier.Notify(Notice{Severity: SeverityInfo, Message: MsgEmptyQuery})
		return Request{}, ErrEmptyQuery
	}

	c.state.Reset(query)
	c.viewer.Refresh(nil)
	c.loadMore = false
	c.loading = true
	metrics.RenderedHits.Set(0)

	return c.issue(KindNew), nil
}

// LoadMore requests the next page of the active query. It fails with
// ErrLoadMoreUnavailable while the control is hidden.
func (c *Controller) LoadMore() (Request, error) {
	if !c.loadMore || c.state.Query() == "" {
		return Request{}, ErrLoadMoreUnavailable
	}

	c.state.Advance()
	c.loading = true
	c.loadMore = false

	return c.issue(KindMore), nil
}

func (c *Controller) issue(kind Kind) Request {
	c.seq++
	req := Request{
		Seq:   c.seq,
		Kind:  kind,
		Query: c.state.Query(),
		Page:  c.state.Page(),
	}
	c.logger.Debug().
		Uint64("seq", req.Seq).
		Stringer("kind", req.Kind).
		Str("query", req.Query).
		Int("page", req.Page).
		Msg("request issued")
	return req
}

// Complete applies the result of req. Results of superseded requests are
// dropped without touching the gallery, the loader or the notices.
func (c *Controller) Complete(req Request, res pixabay.Result, err error) Outcome {
	if req.Seq != c.seq {
		metrics.StaleResponses.Inc()
		c.logger.Debug().
			Uint64("seq", req.Seq).
			Uint64("latest", c.seq).
			Msg("dropping stale response")
		return Outcome{Stale: true}
	}
	defer func() { c.loading = false }()

	if err != nil {
		return c.fail(req, err)
	}
	if req.Kind == KindMore {
		return c.appendPage(res)
	}
	return c.firstPage(res)
}

func (c *Controller) fail(req Request, err error) Outcome {
	c.logger.Warn().Err(err).
		Stringer("kind", req.Kind).
		Str("query", req.Query).
		Int("page", req.Page).
		Msg("search request failed")

	if req.Kind == KindMore {
		// Roll back so the next load-more retries the page that failed.
		c.state.Rewind()
		c.loadMore = c.state.Rendered() < c.state.TotalHits()
		c.notifier.Notify(Notice{Severity: SeverityError, Message: MsgLoadMoreError})
		return Outcome{Err: err}
	}

	c.notifier.Notify(Notice{Severity: SeverityError, Message: MsgSearchFailed})
	return Outcome{Err: err}
}

func (c *Controller) firstPage(res pixabay.Result) Outcome {
	c.state.SetTotal(res.TotalHits)
	if len(res.Hits) == 0 {
		c.notifier.Notify(Notice{Severity: SeverityError, Message: MsgNoResults})
		return Outcome{}
	}

	c.state.Replace(res.Hits, res.TotalHits)
	c.render()
	end := c.checkEnd()
	return Outcome{Rendered: len(res.Hits), EndOfResults: end}
}

func (c *Controller) appendPage(res pixabay.Result) Outcome {
	if len(res.Hits) == 0 {
		// The API ran dry before reaching its reported total; stop paging.
		c.state.SetTotal(c.state.Rendered())
		end := c.checkEnd()
		return Outcome{EndOfResults: end}
	}

	c.state.Append(res.Hits)
	c.render()
	end := c.checkEnd()
	return Outcome{Rendered: len(res.Hits), ScrollCards: ScrollCards, EndOfResults: end}
}

func (c *Controller) render() {
	snap := c.state.Snapshot()
	metrics.RenderedHits.Set(float64(snap.Rendered()))
	c.viewer.Refresh(links(snap.Hits))
}

// checkEnd hides the load-more control once every hit is rendered and
// reports whether that point was reached.
func (c *Controller) checkEnd() bool {
	total := c.state.TotalHits()
	if c.state.Rendered() >= total {
		c.loadMore = false
		if total > 0 {
			c.notifier.Notify(Notice{Severity: SeverityInfo, Message: MsgEndOfResults})
		}
		return true
	}
	c.loadMore = true
	return false
}

// Loading reports whether the loader is visible.
func (c *Controller) Loading() bool { return c.loading }

// LoadMoreVisible reports whether the load-more control is shown.
func (c *Controller) LoadMoreVisible() bool { return c.loadMore }

// Snapshot returns a copy of the search state.
func (c *Controller) Snapshot() state.Snapshot { return c.state.Snapshot() }

// Cards returns the gallery in render order.
func (c *Controller) Cards() []Card { return Cards(c.state.Snapshot().Hits) }

// Search runs a complete new search synchronously.
func (c *Controller) Search(ctx context.Context, f pixabay.Fetcher, input string) (Outcome, error) {
	req, err := c.Submit(input)
	if err != nil {
		return Outcome{}, err
	}
	res, err := f.FetchImages(ctx, req.Query, req.Page)
	out := c.Complete(req, res, err)
	return out, out.Err
}

// More runs a complete load-more synchronously.
func (c *Controller) More(ctx context.Context, f pixabay.Fetcher) (Outcome, error) {
	req, err := c.LoadMore()
	if err != nil {
		return Outcome{}, err
	}
	res, err := f.FetchImages(ctx, req.Query, req.Page)
	out := c.Complete(req, res, err)
	return out, out.Err
}

package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/shutter/internal/pixabay"
	"github.com/five82/shutter/internal/prefs"
	"github.com/five82/shutter/internal/search"
	"github.com/five82/shutter/internal/viewer"
)

// focus tells which widget receives key presses.
type focus int

const (
	focusGallery focus = iota
	focusSearch
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Fetcher        pixabay.Fetcher
	Lightbox       *viewer.Lightbox
	Logger         *zerolog.Logger
	ThemeName      string
	PrefsPath      string   // empty disables saving preferences
	RecentQueries  []string // newest first; the newest prefills the search form
	LogPath        string   // file shown by the diagnostics view
	ToastTimeout   time.Duration
	RequestTimeout time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx        context.Context
	fetcher    pixabay.Fetcher
	controller *search.Controller
	lightbox   *viewer.Lightbox
	toasts     *toastQueue
	logger     zerolog.Logger

	// Configuration
	keys           keyMap
	prefsPath      string
	logPath        string
	history        prefs.Prefs
	toastTimeout   time.Duration
	requestTimeout time.Duration

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	focus    focus
	showHelp bool
	selected int // card index; len(cards) is the load-more control

	// Widgets
	input   textinput.Model
	gallery viewport.Model
	spinner spinner.Model
	help    help.Model

	// Diagnostics view
	logs logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	lightbox := opts.Lightbox
	if lightbox == nil {
		lightbox = viewer.New()
	}

	toastTimeout := opts.ToastTimeout
	if toastTimeout <= 0 {
		toastTimeout = DefaultToastTimeout
	}
	requestTimeout := opts.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	toasts := newToastQueue()
	controller := search.NewController(search.Options{
		Notifier: toasts,
		Viewer:   lightbox,
		Logger:   opts.Logger,
	})

	theme := GetTheme(opts.ThemeName)

	input := textinput.New()
	input.Prompt = "Search: "
	input.Placeholder = "Search images..."
	input.CharLimit = 100
	input.ShowSuggestions = true

	history := prefs.Prefs{Recent: opts.RecentQueries}
	input.SetSuggestions(history.Recent)
	input.SetValue(history.LastQuery())
	input.CursorEnd()
	input.Focus()

	m := Model{
		ctx:            ctx,
		fetcher:        opts.Fetcher,
		controller:     controller,
		lightbox:       lightbox,
		toasts:         toasts,
		logger:         logger,
		keys:           DefaultKeyMap(),
		prefsPath:      opts.PrefsPath,
		logPath:        opts.LogPath,
		history:        history,
		toastTimeout:   toastTimeout,
		requestTimeout: requestTimeout,
		theme:          theme,
		focus:          focusSearch,
		input:          input,
		gallery:        viewport.New(0, 0),
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:           help.New(),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.refreshGallery()
		m.refreshLogView()
		return m, nil

	case fetchResultMsg:
		return m.applyResult(msg)

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		m.refreshGallery()
		return m, nil

	case logLinesMsg:
		return m.handleLogLines(msg)

	case logTickMsg:
		if !m.logs.open || msg.gen != m.logs.gen {
			return m, nil
		}
		return m, readLogCmd(m.logPath, m.logs.gen)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	rows := []string{
		m.renderHeader(),
		m.renderSearchBar(),
	}
	if m.logs.open {
		rows = append(rows, m.renderLogs())
	} else {
		rows = append(rows, m.gallery.View())
	}
	rows = append(rows, m.renderToasts()...)
	rows = append(rows, m.renderCommandBar())
	return strings.Join(rows, "\n")
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	if m.logs.open {
		return m.handleLogsKey(msg)
	}

	return m.handleGalleryKey(msg)
}

// handleSearchKey routes keys while the search form has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Escape):
		m.input.Blur()
		m.focus = focusGallery
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleGalleryKey routes keys while the gallery has focus.
func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.FocusSearch):
		m.focus = focusSearch
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		m.refreshGallery()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()

	case key.Matches(msg, m.keys.LoadMore):
		return m.loadMore()

	case key.Matches(msg, m.keys.Activate):
		if m.onLoadMoreControl() {
			return m.loadMore()
		}
		return m.openSelected()

	case key.Matches(msg, m.keys.Open):
		return m.openSelected()

	case key.Matches(msg, m.keys.Copy):
		return m.copySelected()

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-m.slots())
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(m.slots())
	case key.Matches(msg, m.keys.PageDown):
		m.gallery.PageDown()
		m.selectFirstVisible()
	case key.Matches(msg, m.keys.PageUp):
		m.gallery.PageUp()
		m.selectFirstVisible()
	}
	return m, nil
}

// submit starts a new search with the form's value.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req, err := m.controller.Submit(m.input.Value())
	if err != nil {
		m.refreshGallery()
		return m, m.toasts.schedule(m.toastTimeout)
	}

	m.input.Blur()
	m.focus = focusGallery
	m.selected = 0
	m.history.Remember(req.Query)
	m.input.SetSuggestions(m.history.Recent)
	m.savePrefs()
	m.refreshGallery()
	m.gallery.GotoTop()

	return m, tea.Batch(m.fetch(req), m.toasts.schedule(m.toastTimeout))
}

// loadMore requests the next page when the control is shown.
func (m Model) loadMore() (tea.Model, tea.Cmd) {
	req, err := m.controller.LoadMore()
	if err != nil {
		return m, nil
	}
	m.refreshGallery()
	return m, m.fetch(req)
}

// applyResult hands a completed fetch to the controller and redraws.
func (m Model) applyResult(msg fetchResultMsg) (tea.Model, tea.Cmd) {
	out := m.controller.Complete(msg.req, msg.res, msg.err)
	if out.Stale {
		return m, nil
	}

	m.clampSelection()
	m.refreshGallery()
	if out.ScrollCards > 0 {
		m.gallery.SetYOffset(m.gallery.YOffset + out.ScrollCards*CardHeight)
	}
	return m, m.toasts.schedule(m.toastTimeout)
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if _, err := m.lightbox.Open(m.selected); err != nil {
		m.lightboxFailed(err, "Could not open the image.")
	}
	m.refreshGallery()
	return m, m.toasts.schedule(m.toastTimeout)
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	if _, err := m.lightbox.Copy(m.selected); err != nil {
		m.lightboxFailed(err, "Could not copy the link.")
	} else {
		m.toasts.Notify(search.Notice{Severity: search.SeverityInfo, Message: "Image link copied."})
	}
	m.refreshGallery()
	return m, m.toasts.schedule(m.toastTimeout)
}

func (m *Model) lightboxFailed(err error, message string) {
	if errors.Is(err, viewer.ErrNoImage) {
		m.toasts.Notify(search.Notice{Severity: search.SeverityInfo, Message: "No image selected."})
		return
	}
	m.logger.Warn().Err(err).Int("card", m.selected).Msg("lightbox action failed")
	m.toasts.Notify(search.Notice{Severity: search.SeverityError, Message: message})
}

// applyTheme pushes the theme's colors into the bubbles widgets.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.spinner.Style = styles.WarningText

	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}

// savePrefs persists the theme and query history. Failures are logged only.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	m.history.Theme = m.theme.Name
	if err := prefs.Save(m.prefsPath, m.history); err != nil {
		m.logger.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences")
	}
}

// Messages

type fetchResultMsg struct {
	req search.Request
	res pixabay.Result
	err error
}

// Commands

// fetch runs req off the update loop under its own timeout.
func (m Model) fetch(req search.Request) tea.Cmd {
	ctx, fetcher, timeout := m.ctx, m.fetcher, m.requestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		res, err := fetcher.FetchImages(ctx, req.Query, req.Page)
		return fetchResultMsg{req: req, res: res, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx ends.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

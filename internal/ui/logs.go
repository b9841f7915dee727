package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shutter/internal/logtail"
)

// logState holds the diagnostics view, a tail of shutter's own log file.
type logState struct {
	open   bool
	gen    int // bumped on every open; stale reads and ticks are ignored
	follow bool
	lines  []string
	err    error
	view   viewport.Model
}

type logLinesMsg struct {
	gen   int
	lines []string
	err   error
}

type logTickMsg struct{ gen int }

func readLogCmd(path string, gen int) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logLinesMsg{gen: gen}
		}
		lines, err := logtail.Read(path, logTailLines)
		return logLinesMsg{gen: gen, lines: lines, err: err}
	}
}

func logTickCmd(gen int) tea.Cmd {
	return tea.Tick(logRefreshInterval, func(time.Time) tea.Msg {
		return logTickMsg{gen: gen}
	})
}

func (m Model) openLogs() (tea.Model, tea.Cmd) {
	m.logs.open = true
	m.logs.follow = true
	m.logs.gen++
	m.refreshLogView()
	return m, readLogCmd(m.logPath, m.logs.gen)
}

func (m Model) handleLogLines(msg logLinesMsg) (tea.Model, tea.Cmd) {
	if !m.logs.open || msg.gen != m.logs.gen {
		return m, nil
	}
	m.logs.lines = msg.lines
	m.logs.err = msg.err
	m.refreshLogView()
	return m, logTickCmd(msg.gen)
}

// handleLogsKey routes keys while the diagnostics view is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs):
		m.logs.open = false
		m.refreshGallery()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Top):
		m.logs.follow = false
		m.logs.view.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logs.follow = true
		m.logs.view.GotoBottom()
	case key.Matches(msg, m.keys.Down):
		m.logs.view.ScrollDown(1)
		m.logs.follow = m.logs.view.AtBottom()
	case key.Matches(msg, m.keys.Up):
		m.logs.follow = false
		m.logs.view.ScrollUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.logs.view.PageDown()
		m.logs.follow = m.logs.view.AtBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.logs.follow = false
		m.logs.view.PageUp()
	}
	return m, nil
}

// refreshLogView resizes the log viewport and redraws its content.
func (m *Model) refreshLogView() {
	if !m.ready || !m.logs.open {
		return
	}
	if m.logs.view.Width == 0 {
		m.logs.view = viewport.New(m.width, m.mainHeight())
	}
	m.logs.view.Width = m.width
	m.logs.view.Height = m.mainHeight()
	m.logs.view.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logs.view.SetContent(m.renderLogContent())
	if m.logs.follow {
		m.logs.view.GotoBottom()
	}
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	switch {
	case m.logs.err != nil:
		return styles.DangerText.Render("Cannot read log: " + m.logs.err.Error())
	case m.logPath == "":
		return styles.MutedText.Render("Logging to a file is disabled.")
	case len(m.logs.lines) == 0:
		return styles.MutedText.Render("No log entries yet in " + m.logPath)
	}

	out := make([]string, len(m.logs.lines))
	for i, line := range m.logs.lines {
		entry := logtail.Parse(line)
		text := truncate(logtail.Format(entry), m.width)
		switch entry.Level {
		case "error", "fatal", "panic":
			out[i] = styles.DangerText.Render(text)
		case "warn":
			out[i] = styles.WarningText.Render(text)
		case "debug", "trace":
			out[i] = styles.FaintText.Render(text)
		default:
			out[i] = styles.Text.Render(text)
		}
	}
	return strings.Join(out, "\n")
}

func (m Model) renderLogs() string {
	return m.logs.view.View()
}

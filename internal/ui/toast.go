package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shutter/internal/search"
)

// maxVisibleToasts caps the toast area. Only the newest toasts are drawn;
// hidden ones keep their own expiry timers.
const maxVisibleToasts = 3

type toast struct {
	id     int
	notice search.Notice
}

// toastQueue is the Notifier handed to the search controller. Notices are
// collected during Update and given an expiry timer by schedule.
type toastQueue struct {
	nextID  int
	active  []toast
	pending []int
}

func newToastQueue() *toastQueue {
	return &toastQueue{}
}

// Notify implements search.Notifier.
func (q *toastQueue) Notify(n search.Notice) {
	q.nextID++
	q.active = append(q.active, toast{id: q.nextID, notice: n})
	q.pending = append(q.pending, q.nextID)
}

// schedule returns a timer command for every toast added since the last call.
func (q *toastQueue) schedule(timeout time.Duration) tea.Cmd {
	if len(q.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(q.pending))
	for _, id := range q.pending {
		cmds = append(cmds, toastTimer(id, timeout))
	}
	q.pending = q.pending[:0]
	return tea.Batch(cmds...)
}

func (q *toastQueue) expire(id int) {
	for i, t := range q.active {
		if t.id == id {
			q.active = append(q.active[:i], q.active[i+1:]...)
			return
		}
	}
}

// visible returns the newest toasts, oldest first.
func (q *toastQueue) visible() []toast {
	if len(q.active) <= maxVisibleToasts {
		return q.active
	}
	return q.active[len(q.active)-maxVisibleToasts:]
}

type toastExpiredMsg struct{ id int }

func toastTimer(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// renderToasts renders one line per visible toast.
func (m Model) renderToasts() []string {
	styles := m.theme.Styles()
	toasts := m.toasts.visible()
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		badge := styles.ToastStyle(t.notice.Severity).Render(t.notice.Severity.String())
		lines = append(lines, badge+" "+styles.Text.Render(truncate(t.notice.Message, m.width-10)))
	}
	return lines
}

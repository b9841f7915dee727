// Package viewer implements the lightbox: it tracks the full-size links of
// the rendered gallery and opens or copies the one the user picks.
package viewer

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// ErrNoImage is returned when the requested index has no registered link.
var ErrNoImage = errors.New("no image at that position")

// Lightbox holds the links registered by the last Refresh.
type Lightbox struct {
	links []string
	open  func(url string) error
	copy  func(text string) error
}

// New returns a Lightbox that opens links in the system browser and copies
// them with the system clipboard.
func New() *Lightbox {
	return NewWith(nil, nil)
}

// NewWith returns a Lightbox using the given open and copy functions. Nil
// functions fall back to the system browser and clipboard.
func NewWith(openFn, copyFn func(string) error) *Lightbox {
	if openFn == nil {
		openFn = openURL
	}
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	return &Lightbox{open: openFn, copy: copyFn}
}

// Refresh replaces the registered links with the gallery's current ones.
func (l *Lightbox) Refresh(links []string) {
	l.links = append(l.links[:0], links...)
}

// Len returns the number of registered links.
func (l *Lightbox) Len() int { return len(l.links) }

// Link returns the link at index i.
func (l *Lightbox) Link(i int) (string, error) {
	if i < 0 || i >= len(l.links) || l.links[i] == "" {
		return "", ErrNoImage
	}
	return l.links[i], nil
}

// Open shows the full-size image at index i in the browser.
func (l *Lightbox) Open(i int) (string, error) {
	link, err := l.Link(i)
	if err != nil {
		return "", err
	}
	if err := l.open(link); err != nil {
		return link, fmt.Errorf("open image: %w", err)
	}
	return link, nil
}

// Copy puts the full-size link at index i on the clipboard.
func (l *Lightbox) Copy(i int) (string, error) {
	link, err := l.Link(i)
	if err != nil {
		return "", err
	}
	if err := l.copy(link); err != nil {
		return link, fmt.Errorf("copy link: %w", err)
	}
	return link, nil
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

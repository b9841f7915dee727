// Package prefs persists the small amount of state shutter keeps between
// runs: the color theme and the most recent search queries.
//
// The file lives at ~/.config/shutter/prefs.toml by default:
//
//	theme = "Kanagawa"
//	recent_queries = ["red fox", "mountains"]
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// MaxRecent caps the query history.
const MaxRecent = 10

const (
	defaultPrefsPath = "~/.config/shutter/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Prefs holds user preferences. Recent is newest first.
type Prefs struct {
	Theme  string   `toml:"theme"`
	Recent []string `toml:"recent_queries,omitempty"`
}

// LastQuery returns the newest remembered query, or "".
func (p Prefs) LastQuery() string {
	if len(p.Recent) == 0 {
		return ""
	}
	return p.Recent[0]
}

// Remember moves query to the front of the history. Blank queries are
// ignored and duplicates compare case-insensitively.
func (p *Prefs) Remember(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	recent := make([]string, 0, MaxRecent)
	recent = append(recent, query)
	for _, q := range p.Recent {
		if len(recent) == MaxRecent {
			break
		}
		if !strings.EqualFold(q, query) {
			recent = append(recent, q)
		}
	}
	p.Recent = recent
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path ("" means DefaultPath). A missing,
// unreadable or malformed file yields defaults.
func Load(path string) Prefs {
	p := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return p
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: defaultTheme}
	}
	return p.normalized()
}

func (p Prefs) normalized() Prefs {
	out := Prefs{Theme: strings.TrimSpace(p.Theme)}
	if out.Theme == "" {
		out.Theme = defaultTheme
	}
	// Replay oldest first so the newest ends up in front.
	for i := len(p.Recent) - 1; i >= 0; i-- {
		out.Remember(p.Recent[i])
	}
	return out
}

// Save writes p to path, creating parent directories. The file is replaced
// atomically so a crash never leaves a truncated prefs file behind.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}

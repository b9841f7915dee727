package state

import (
	"github.com/five82/shutter/internal/pixabay"
)

// Snapshot is a read-only copy of the search state for rendering.
type Snapshot struct {
	Query     string
	Page      int
	TotalHits int
	Hits      []pixabay.Hit
}

// Rendered returns the number of hits currently in the gallery.
func (s Snapshot) Rendered() int {
	return len(s.Hits)
}

// AtEnd reports whether every available hit has been rendered.
func (s Snapshot) AtEnd() bool {
	return len(s.Hits) >= s.TotalHits
}

// Search holds the state of the current query. The zero value is an idle
// session on page 1 with an empty gallery.
type Search struct {
	query     string
	page      int
	totalHits int
	hits      []pixabay.Hit
}

// Reset starts a new query: page 1, no hits, unknown total.
func (s *Search) Reset(query string) {
	s.query = query
	s.page = 1
	s.totalHits = 0
	s.hits = nil
}

// Advance moves to the next page and returns it.
func (s *Search) Advance() int {
	s.page = s.Page() + 1
	return s.page
}

// Rewind undoes one Advance. The page never drops below 1.
func (s *Search) Rewind() {
	if s.page > 1 {
		s.page--
	}
}

// Replace swaps the gallery contents and records the total reported by the API.
func (s *Search) Replace(hits []pixabay.Hit, totalHits int) {
	s.hits = cloneHits(hits)
	s.SetTotal(totalHits)
}

// Append adds hits after the existing gallery contents.
func (s *Search) Append(hits []pixabay.Hit) {
	s.hits = append(s.hits, hits...)
}

// SetTotal records the total hit count; negative values clamp to zero.
func (s *Search) SetTotal(totalHits int) {
	if totalHits < 0 {
		totalHits = 0
	}
	s.totalHits = totalHits
}

// Query returns the active query.
func (s *Search) Query() string { return s.query }

// Page returns the last requested page, at least 1.
func (s *Search) Page() int {
	if s.page < 1 {
		return 1
	}
	return s.page
}

// TotalHits returns the total reported for the active query.
func (s *Search) TotalHits() int { return s.totalHits }

// Rendered returns the number of hits in the gallery.
func (s *Search) Rendered() int { return len(s.hits) }

// Snapshot returns a copy of the current state.
func (s *Search) Snapshot() Snapshot {
	return Snapshot{
		Query:     s.query,
		Page:      s.Page(),
		TotalHits: s.totalHits,
		Hits:      cloneHits(s.hits),
	}
}

func cloneHits(hits []pixabay.Hit) []pixabay.Hit {
	if len(hits) == 0 {
		return nil
	}
	dup := make([]pixabay.Hit, len(hits))
	copy(dup, hits)
	return dup
}

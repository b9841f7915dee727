package state

import (
	"testing"

	"github.com/five82/shutter/internal/pixabay"
)

func TestSearch_ZeroValueIsIdle(t *testing.T) {
	var s Search
	snap := s.Snapshot()
	if snap.Query != "" || snap.Page != 1 || snap.TotalHits != 0 || snap.Rendered() != 0 {
		t.Fatalf("zero snapshot = %#v, want idle page 1", snap)
	}
	if !snap.AtEnd() {
		t.Fatalf("AtEnd() = false, want true for empty state")
	}
}

func TestSearch_ResetClearsGallery(t *testing.T) {
	var s Search
	s.Reset("cats")
	s.Replace([]pixabay.Hit{{ID: 1}, {ID: 2}}, 80)
	s.Advance()

	s.Reset("dogs")
	snap := s.Snapshot()
	if snap.Query != "dogs" || snap.Page != 1 || snap.TotalHits != 0 || snap.Rendered() != 0 {
		t.Fatalf("after Reset snapshot = %#v, want fresh dogs state", snap)
	}
}

func TestSearch_AdvanceRewind(t *testing.T) {
	var s Search
	s.Reset("q")
	if got := s.Advance(); got != 2 {
		t.Fatalf("Advance() = %d, want 2", got)
	}
	s.Rewind()
	if s.Page() != 1 {
		t.Fatalf("Page after Rewind = %d, want 1", s.Page())
	}
	s.Rewind()
	if s.Page() != 1 {
		t.Fatalf("Page after second Rewind = %d, want 1 (floor)", s.Page())
	}
}

func TestSearch_AppendKeepsExisting(t *testing.T) {
	var s Search
	s.Reset("q")
	s.Replace([]pixabay.Hit{{ID: 1}}, 3)
	s.Append([]pixabay.Hit{{ID: 2}, {ID: 3}})

	snap := s.Snapshot()
	if snap.Rendered() != 3 || snap.Hits[0].ID != 1 || snap.Hits[2].ID != 3 {
		t.Fatalf("hits = %#v, want 1,2,3", snap.Hits)
	}
	if !snap.AtEnd() {
		t.Fatalf("AtEnd() = false, want true with 3/3 rendered")
	}
}

func TestSearch_SnapshotClonesHits(t *testing.T) {
	var s Search
	s.Reset("q")
	input := []pixabay.Hit{{ID: 1}}
	s.Replace(input, 1)
	input[0].ID = 42

	snap := s.Snapshot()
	if snap.Hits[0].ID != 1 {
		t.Fatalf("Replace should copy input; got id %d", snap.Hits[0].ID)
	}
	snap.Hits[0].ID = 999
	if s.Snapshot().Hits[0].ID != 1 {
		t.Fatalf("Snapshot should clone hits")
	}
}

func TestSearch_SetTotalClampsNegative(t *testing.T) {
	var s Search
	s.SetTotal(-5)
	if s.TotalHits() != 0 {
		t.Fatalf("TotalHits = %d, want 0", s.TotalHits())
	}
}

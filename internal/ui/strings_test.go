package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  mountain lake  ", 20, "mountain lake"},
		{"mountain lake", 8, "mountai…"},
		{"mountain", 1, "m"},
		{"mountain", 0, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle_KeepsFileName(t *testing.T) {
	url := "https://pixabay.com/get/g0123456789abcdef_1280.jpg"
	got := truncateMiddle(url, 24)
	if n := utf8.RuneCountInString(got); n != 24 {
		t.Fatalf("truncateMiddle length = %d, want 24 (%q)", n, got)
	}
	if got[len(got)-8:] != "1280.jpg" {
		t.Fatalf("truncateMiddle = %q, want it to end with the file name", got)
	}
	if got := truncateMiddle("short", 24); got != "short" {
		t.Fatalf("truncateMiddle short = %q", got)
	}
}

func TestTruncate_CountsWideRunesAsTwoCells(t *testing.T) {
	tags := "富士山、湖、反射、風景、自然、山、日本、旅行、空、雲、夏"
	for _, limit := range []int{1, 2, 7, 10, 36} {
		got := truncate(tags, limit)
		if w := ansi.StringWidth(got); w > limit {
			t.Fatalf("truncate(_, %d) = %q is %d cells wide", limit, got, w)
		}
	}
	if got := truncate("富士山", 4); got != "富…" {
		t.Fatalf("truncate(富士山, 4) = %q, want %q", got, "富…")
	}
}

func TestTruncateMiddle_CountsWideRunesAsTwoCells(t *testing.T) {
	url := "https://example.jp/画像/富士山の湖_1280.jpg"
	for _, limit := range []int{4, 9, 16, 24} {
		got := truncateMiddle(url, limit)
		if w := ansi.StringWidth(got); w > limit {
			t.Fatalf("truncateMiddle(_, %d) = %q is %d cells wide", limit, got, w)
		}
	}
}

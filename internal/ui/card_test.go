package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shutter/internal/search"
)

func sampleCard() search.Card {
	return search.Card{
		Link:      "https://pixabay.com/get/g1f2e3d_1280.jpg",
		Thumbnail: "https://pixabay.com/get/g1f2e3d_640.jpg",
		Alt:       "mountain, lake, reflection",
		Likes:     12,
		Views:     340,
		Comments:  5,
		Downloads: 99,
	}
}

func TestRenderCard_FixedHeight(t *testing.T) {
	th := GetTheme("Nightfox")
	wide := sampleCard()
	wide.Alt = "富士山、湖、反射、風景、自然、山、日本、旅行、空、雲、夏"
	wide.Link = "https://example.jp/画像/富士山の湖と反射と風景_1280.jpg"

	for name, card := range map[string]search.Card{"ascii": sampleCard(), "wide runes": wide} {
		for _, width := range []int{10, 40, 41, 80, 200} {
			for _, selected := range []bool{false, true} {
				out := RenderCard(card, th, width, selected)
				if h := lipgloss.Height(out); h != CardHeight {
					t.Fatalf("%s width %d selected %v: height = %d, want %d\n%s", name, width, selected, h, CardHeight, out)
				}
			}
		}
	}
}

func TestRenderCard_ShowsTagsLinksAndCounts(t *testing.T) {
	out := RenderCard(sampleCard(), GetTheme("Slate"), 100, false)
	for _, want := range []string{"mountain,", "reflection", "_1280.jpg", "_640.jpg", "Likes", "12", "Views", "340", "Comments", "Downloads", "99"} {
		if !strings.Contains(out, want) {
			t.Fatalf("card is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCard_NarrowDropsLabels(t *testing.T) {
	out := RenderCard(sampleCard(), GetTheme("Slate"), 24, false)
	if strings.Contains(out, "Downloads") {
		t.Fatalf("narrow card kept long labels:\n%s", out)
	}
	if !strings.Contains(out, "L12") || !strings.Contains(out, "V340") {
		t.Fatalf("narrow card lost counts:\n%s", out)
	}
}

func TestRenderCard_UntitledWhenNoTags(t *testing.T) {
	c := sampleCard()
	c.Alt = "  "
	out := RenderCard(c, GetTheme("Nightfox"), 60, false)
	if !strings.Contains(out, "untitled") {
		t.Fatalf("card without tags should read untitled:\n%s", out)
	}
}

func TestRenderGallery_CardOffsets(t *testing.T) {
	cards := []search.Card{sampleCard(), sampleCard(), sampleCard()}
	out := renderGallery(cards, GetTheme("Nightfox"), 60, 1, "FOOTER")
	lines := strings.Split(out, "\n")
	if len(lines) != 3*CardHeight+1 {
		t.Fatalf("gallery has %d lines, want %d", len(lines), 3*CardHeight+1)
	}
	if lines[3*CardHeight] != "FOOTER" {
		t.Fatalf("last line = %q, want footer", lines[3*CardHeight])
	}
}

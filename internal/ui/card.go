package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shutter/internal/search"
)

// CardHeight is the rendered height of every card, borders included.
const CardHeight = 6

const (
	cardMinWidth = 24
	cardChrome   = 4 // border and padding, left and right
)

// RenderCard renders one gallery card. It is a pure function of its inputs
// and always returns exactly CardHeight lines.
func RenderCard(c search.Card, th Theme, width int, selected bool) string {
	width = max(width, cardMinWidth)
	inner := width - cardChrome
	styles := th.Styles()

	alt := c.Alt
	if strings.TrimSpace(alt) == "" {
		alt = "untitled"
	}

	lines := []string{
		styles.Text.Bold(true).Render(truncate(alt, inner)),
		urlLine("preview", c.Thumbnail, inner, styles),
		urlLine("full", c.Link, inner, styles),
		statsLine(c, inner, styles),
	}

	box := styles.Card
	if selected {
		box = styles.CardSelected
	}
	return box.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func urlLine(label, url string, inner int, styles Styles) string {
	const labelWidth = 8
	if url == "" {
		url = "-"
	}
	return styles.MutedText.Width(labelWidth).Render(label) +
		styles.AccentText.Render(truncateMiddle(url, inner-labelWidth))
}

// statsLine renders the four counts. Labels are dropped when the card is too
// narrow for them.
func statsLine(c search.Card, inner int, styles Styles) string {
	stats := []struct {
		label string
		value int
	}{
		{"Likes", c.Likes},
		{"Views", c.Views},
		{"Comments", c.Comments},
		{"Downloads", c.Downloads},
	}

	parts := make([]string, len(stats))
	plain := make([]string, len(stats))
	for i, s := range stats {
		v := fmt.Sprintf("%d", s.value)
		parts[i] = styles.MutedText.Render(s.label) + " " + styles.Text.Render(v)
		plain[i] = s.label + " " + v
	}
	if lipgloss.Width(strings.Join(plain, "  ")) <= inner {
		return strings.Join(parts, "  ")
	}

	for i, s := range stats {
		plain[i] = fmt.Sprintf("%c%d", s.label[0], s.value)
	}
	return styles.MutedText.Render(truncate(strings.Join(plain, " "), inner))
}

// renderGallery stacks the cards and appends footer. Card i starts at line
// i*CardHeight.
func renderGallery(cards []search.Card, th Theme, width, selected int, footer string) string {
	var b strings.Builder
	for i, c := range cards {
		b.WriteString(RenderCard(c, th, width, i == selected))
		b.WriteByte('\n')
	}
	b.WriteString(footer)
	return b.String()
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: logo, active query, paging progress
// and the loader.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < 80

	snap := m.controller.Snapshot()
	parts := []string{bg.Render("shutter", styles.Logo)}

	if snap.Query != "" {
		maxQuery := 40
		if compact {
			maxQuery = 16
		}
		parts = append(parts, bg.Render("“"+truncate(snap.Query, maxQuery)+"”", styles.Text))
		parts = append(parts, bg.Pair("Page", styles.MutedText, fmt.Sprintf("%d", snap.Page), styles.Text))
		parts = append(parts, bg.Pair("Hits", styles.MutedText,
			fmt.Sprintf("%d/%d", snap.Rendered(), snap.TotalHits), styles.InfoText))
	}

	if m.controller.Loading() {
		parts = append(parts, m.spinner.View()+bg.Render(" loading", styles.WarningText))
	} else if snap.Query != "" && snap.AtEnd() && snap.Rendered() > 0 {
		parts = append(parts, bg.Render("● all loaded", styles.SuccessText))
	}

	if m.logs.open {
		parts = append(parts, bg.Render("diagnostics", styles.AccentText))
	}

	return bg.FillLine(bg.Join(parts, "  "), m.width)
}

// renderSearchBar renders the search form.
func (m Model) renderSearchBar() string {
	style := lipgloss.NewStyle().Width(m.width)
	if m.focus == focusSearch {
		style = style.Background(lipgloss.Color(m.theme.FocusBg))
	}
	return style.Render(m.input.View())
}

// renderCommandBar renders the key hints and the active theme.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	theme := bg.Pair("T", styles.AccentText, m.theme.Name, styles.FaintText)

	// Hints get what is left after the bar padding and the theme name.
	h := m.help
	h.Width = max(m.width-4-lipgloss.Width(theme), 1)

	// Open and copy only make sense once the lightbox has links.
	keys := m.keys
	hasImages := m.lightbox.Len() > 0
	keys.Open.SetEnabled(hasImages)
	keys.Copy.SetEnabled(hasImages)

	hints := h.View(keys)
	if m.focus == focusSearch {
		hints = h.ShortHelpView([]key.Binding{keys.Submit, keys.Complete, keys.Escape})
	} else if m.logs.open {
		hints = h.ShortHelpView([]key.Binding{keys.Down, keys.Up, keys.Bottom, keys.Escape})
	}

	return styles.Bar.Width(m.width).Render(hints + bg.Spaces(2) + theme)
}

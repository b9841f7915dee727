package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// truncate shortens value to at most limit terminal cells, adding an
// ellipsis if needed. Wide runes count as two cells.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	if ansi.StringWidth(value) <= limit {
		return value
	}
	if limit == 1 {
		return ansi.Truncate(value, 1, "")
	}
	return ansi.Truncate(value, limit, ellipsis)
}

// truncateMiddle keeps both ends of value within limit cells, which suits
// URLs whose file name is the interesting part.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	width := ansi.StringWidth(value)
	if width <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	keep := limit - 1
	suffix := keep * 2 / 3
	prefix := keep - suffix
	return ansi.Truncate(value, prefix, "") + ellipsis + lastCells(value, width, suffix)
}

// lastCells returns the longest tail of value that fits in n cells.
func lastCells(value string, width, n int) string {
	tail := ansi.TruncateLeft(value, width-n, "")
	// A wide rune straddling the cut is kept whole by TruncateLeft.
	for skip := width - n + 1; ansi.StringWidth(tail) > n && skip <= width; skip++ {
		tail = ansi.TruncateLeft(value, skip, "")
	}
	return tail
}

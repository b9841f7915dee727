package ui

// slots counts the selectable rows: every card plus the load-more control
// while it is shown.
func (m Model) slots() int {
	n := len(m.controller.Cards())
	if m.controller.LoadMoreVisible() {
		n++
	}
	return n
}

func (m Model) onLoadMoreControl() bool {
	return m.controller.LoadMoreVisible() && m.selected == len(m.controller.Cards())
}

// moveSelection moves the selection by delta rows and scrolls it into view.
func (m *Model) moveSelection(delta int) {
	n := m.slots()
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = min(max(m.selected+delta, 0), n-1)
	m.refreshGallery()
	m.ensureVisible()
}

// selectFirstVisible selects the first card whose top is in view.
func (m *Model) selectFirstVisible() {
	n := m.slots()
	if n == 0 {
		return
	}
	idx := (m.gallery.YOffset + CardHeight - 1) / CardHeight
	m.selected = min(idx, n-1)
	m.refreshGallery()
}

// clampSelection keeps the selection on an existing row after the gallery
// changed underneath it.
func (m *Model) clampSelection() {
	n := m.slots()
	if m.selected >= n {
		m.selected = max(n-1, 0)
	}
}

func (m *Model) ensureVisible() {
	top := m.selected * CardHeight
	bottom := top + CardHeight
	switch {
	case top < m.gallery.YOffset:
		m.gallery.SetYOffset(top)
	case bottom > m.gallery.YOffset+m.gallery.Height:
		m.gallery.SetYOffset(bottom - m.gallery.Height)
	}
}

// refreshGallery resizes the gallery to the space left by the chrome and
// redraws its content, keeping the scroll offset.
func (m *Model) refreshGallery() {
	if !m.ready {
		return
	}
	offset := m.gallery.YOffset
	m.gallery.Width = m.width
	m.gallery.Height = m.mainHeight()
	m.gallery.SetContent(renderGallery(m.controller.Cards(), m.theme, m.width, m.selected, m.galleryFooter()))
	m.gallery.SetYOffset(offset)
}

// mainHeight is the height left for the gallery or the log view.
func (m Model) mainHeight() int {
	return max(m.height-chromeRows-len(m.toasts.visible()), 1)
}

// galleryFooter renders the row below the last card: the loader, the
// load-more control, the end-of-results marker or an empty-state hint.
func (m Model) galleryFooter() string {
	styles := m.theme.Styles()
	cards := len(m.controller.Cards())
	snap := m.controller.Snapshot()

	switch {
	case m.controller.Loading():
		return styles.WarningText.Render("Loading images...")
	case m.controller.LoadMoreVisible():
		button := styles.Button
		if m.selected == cards {
			button = styles.ButtonSelected
		}
		return button.Render("Load more")
	case cards > 0:
		return styles.FaintText.Render("End of results")
	case snap.Query == "":
		return styles.MutedText.Render("Type a query and press enter to search Pixabay.")
	default:
		return ""
	}
}

// Package ui is shutter's Bubble Tea terminal interface.
//
// # Layout
//
// The screen is a stack of rows:
//
//   - header: logo, active query, page, rendered/total hits and the loader spinner
//   - search bar: a textinput that submits on enter and tab-completes recent queries
//   - main area: the gallery viewport, or the diagnostics log view
//   - toasts: up to three timed notices, newest last
//   - command bar: key hints from the bubbles help widget and the theme name
//
// # Gallery
//
// Every hit renders as a fixed-height card (RenderCard) so card positions are
// plain arithmetic: card i starts at line i*CardHeight. The row after the
// last card holds the loader, the load-more control, or the end-of-results
// marker. The control is selectable like a card; enter on it, or m anywhere,
// loads the next page. After a page is appended the gallery scrolls down by
// search.ScrollCards card heights.
//
// # Data Flow
//
// Key presses call the search.Controller, which mutates its state and returns
// a search.Request. The request is fetched inside a tea.Cmd with its own
// timeout and comes back as a fetchResultMsg, which goes to
// Controller.Complete. Superseded responses are dropped there. Notices raised
// by the controller land in the toast queue and get an expiry timer on the
// same Update pass.
//
// # Lightbox
//
// o opens the selected card's full-size image in the system browser and y
// copies its link, both through viewer.Lightbox, which the controller keeps
// in sync with the gallery.
package ui

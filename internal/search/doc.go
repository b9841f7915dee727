// Package search implements the query and pagination state machine behind
// the gallery.
//
// # States
//
//	Idle ──Submit──> Searching ──Complete──> Success | Empty | Error ──> Idle
//	Idle ──LoadMore─> LoadingMore ──Complete──> Success | Error ──> Idle
//
// Submit and LoadMore mutate the state and return a Request. The caller runs
// the fetch wherever it likes (a tea.Cmd in the TUI, inline in the CLI) and
// hands the result back to Complete. Search and More do all three steps in
// one call.
//
// # Stale responses
//
// Each Request carries a sequence number. Complete applies a result only if
// it belongs to the most recent request; anything older is dropped, so two
// quick submissions cannot interleave their galleries.
//
// # Guarantees
//
//   - A blank query never fetches and never clears the gallery
//   - A new search clears the gallery and resets the page to 1
//   - Load more appends; it never replaces
//   - The loader is hidden after every applied completion, success or not
//   - A failed load-more rolls the page back so the retry asks for it again
//   - After every render the viewer is refreshed and the end-of-results check
//     decides whether the load-more control stays visible
package search

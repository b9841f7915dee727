package search

import "errors"

var (
	// ErrEmptyQuery is returned when a submitted query is blank after trimming.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrLoadMoreUnavailable is returned when load-more is triggered while the
	// control is hidden (no query, request in flight, or end of results).
	ErrLoadMoreUnavailable = errors.New("load more is not available")
)

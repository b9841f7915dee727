package pixabay

import "errors"

var (
	// ErrFetch is the only error FetchImages returns; the cause is logged, not wrapped.
	ErrFetch = errors.New("image request failed")

	// ErrMissingAPIKey is returned by NewClient when no API key is configured.
	ErrMissingAPIKey = errors.New("pixabay api key is required")
)

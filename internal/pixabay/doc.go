// Package pixabay provides the HTTP client for the Pixabay image search API.
//
// # Overview
//
// The package wraps a single endpoint: GET https://pixabay.com/api/ with the
// search term and page number. Every request carries the same fixed filters:
//
//   - image_type=photo
//   - orientation=horizontal
//   - safesearch=true
//   - per_page=40
//
// Responses are normalized into Result{Hits, TotalHits}.
//
// # Client Usage
//
//	client, err := pixabay.NewClient(cfg.APIKey, pixabay.Options{})
//	if err != nil {
//		return err
//	}
//	res, err := client.FetchImages(ctx, "mountains", 1)
//	if errors.Is(err, pixabay.ErrFetch) {
//		// show a generic failure
//	}
//
// # Error Handling
//
// Callers see exactly one error, ErrFetch, whatever went wrong:
//
//   - Network errors: connection refused, timeout, DNS failure
//   - HTTP errors: any non-2xx status, including quota exhaustion (429)
//   - Deserialization errors: malformed JSON or a negative totalHits
//
// The underlying cause is logged with zerolog together with a per-request
// xid so a failure seen in the UI can be found in the log file. A response
// with zero hits is not an error at this layer.
//
// # Metrics
//
// Each call records shutter_fetch_requests_total{outcome} and
// shutter_fetch_duration_seconds (see package metrics).
//
// # Design Rationale
//
//   - No caching: every call is a fresh request, even for a page seen before
//   - No retries: a failed call surfaces immediately to the caller
//   - The API key travels as a query parameter, as the API requires
package pixabay

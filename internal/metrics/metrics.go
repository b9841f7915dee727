// Package metrics holds shutter's Prometheus collectors and the optional
// /metrics listener.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Fetch outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeEmpty     = "empty"
	OutcomeHTTP      = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
)

var (
	// FetchRequests counts image API calls by outcome.
	FetchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shutter_fetch_requests_total",
			Help: "Total number of image API requests by outcome",
		},
		[]string{"outcome"},
	)

	// FetchDuration tracks image API latency.
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shutter_fetch_duration_seconds",
			Help:    "Image API request duration",
			Buckets: prometheus.DefBuckets,
		},
	)

	// StaleResponses counts completions discarded because a newer request was issued.
	StaleResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shutter_stale_responses_total",
			Help: "Responses discarded because a newer request superseded them",
		},
	)

	// RenderedHits reports how many cards the gallery currently holds.
	RenderedHits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shutter_rendered_hits",
			Help: "Number of image cards currently rendered",
		},
	)
)

const shutdownTimeout = 2 * time.Second

// Serve exposes /metrics on addr until ctx is cancelled. An empty addr is a no-op.
func Serve(ctx context.Context, addr string, logger zerolog.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics listener started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics listener failed")
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}

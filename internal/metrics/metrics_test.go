package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFetchRequestsCountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(FetchRequests.WithLabelValues(OutcomeEmpty))
	FetchRequests.WithLabelValues(OutcomeEmpty).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(FetchRequests.WithLabelValues(OutcomeEmpty)))
}

func TestServe_EmptyAddrIsNoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	Serve(ctx, "", zerolog.Nop())
}

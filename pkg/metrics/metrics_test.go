package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequestCountsByLabels(t *testing.T) {
	before := testutil.ToFloat64(requestsTotal.WithLabelValues("/api/workouts", "GET", "200"))
	ObserveRequest("/api/workouts", "GET", 200, 12*time.Millisecond)
	after := testutil.ToFloat64(requestsTotal.WithLabelValues("/api/workouts", "GET", "200"))
	assert.Equal(t, before+1, after)
}

func TestUnmatchedRouteLabel(t *testing.T) {
	before := testutil.ToFloat64(requestsTotal.WithLabelValues("unmatched", "GET", "404"))
	ObserveRequest("", "GET", 404, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(requestsTotal.WithLabelValues("unmatched", "GET", "404")))
}

func TestAuthFailureCounter(t *testing.T) {
	before := testutil.ToFloat64(authFailures.WithLabelValues("expired"))
	RecordAuthFailure("expired")
	assert.Equal(t, before+1, testutil.ToFloat64(authFailures.WithLabelValues("expired")))
}

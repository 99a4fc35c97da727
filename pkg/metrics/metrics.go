// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fitness_backend"

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, labeled by route, method and status.",
	}, []string{"route", "method", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"route", "method"})

	sessionExchanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "session_exchanges_total",
		Help:      "Session exchanges against the OAuth session service, labeled by outcome.",
	}, []string{"outcome"})

	authFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "failures_total",
		Help:      "Rejected requests on protected routes, labeled by reason.",
	}, []string{"reason"})

	aiRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coach",
		Name:      "ai_requests_total",
		Help:      "Chat completions sent to the LLM provider, labeled by provider and outcome.",
	}, []string{"provider", "outcome"})

	eventPublishFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Domain events that could not be published, labeled by topic.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, sessionExchanges, authFailures, aiRequests, eventPublishFailures)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func RecordSessionExchange(outcome string) {
	sessionExchanges.WithLabelValues(outcome).Inc()
}

func RecordAuthFailure(reason string) {
	authFailures.WithLabelValues(reason).Inc()
}

func RecordAIRequest(provider, outcome string) {
	aiRequests.WithLabelValues(provider, outcome).Inc()
}

func RecordEventPublishFailure(topic string) {
	eventPublishFailures.WithLabelValues(topic).Inc()
}

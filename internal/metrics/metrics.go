// Package metrics defines the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Page and newsletter metrics
var (
	// PageViews counts landing page renders.
	PageViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "page_views_total",
			Help: "Total landing page renders",
		},
	)

	// NewsletterSignups tracks signup attempts by outcome
	// (accepted, duplicate, debounced, invalid).
	NewsletterSignups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_signups_total",
			Help: "Newsletter signup attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// Rotator and slide feed metrics
var (
	// RotatorTicks counts timer-driven slide advances.
	RotatorTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rotator_ticks_total",
			Help: "Total timer-driven slide advances",
		},
	)

	// SlideFeedClients tracks currently connected slide feed clients.
	SlideFeedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slide_feed_clients_current",
			Help: "Currently connected slide feed WebSocket clients",
		},
	)

	// SlideFramesSent counts frames fanned out to clients.
	SlideFramesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slide_frames_sent_total",
			Help: "Slide frames fanned out to WebSocket clients",
		},
	)
)

// Dependency metrics
var (
	// CircuitBreakerStateChanges tracks circuit breaker state transitions.
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)

	// CircuitBreakerState tracks the current circuit breaker state
	// (0=closed, 1=half-open, 2=open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)

	// SubscriberCountCacheHits tracks subscriber count cache lookups by result.
	SubscriberCountCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscriber_count_cache_lookups_total",
			Help: "Subscriber count cache lookups by result (hit/miss/stale)",
		},
		[]string{"result"},
	)
)

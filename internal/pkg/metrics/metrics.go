// Package metrics owns the service's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "groupbuy"

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	transitions       *prometheus.CounterVec
	reviews           *prometheus.CounterVec
	draftTokens       *prometheus.CounterVec
	chatNotifications *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_request_actions_total",
			Help:      "Purchase request actions by action name and result.",
		}, []string{"action", "result"}),
		reviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_total",
			Help:      "Review submissions by result.",
		}, []string{"result"}),
		draftTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_draft_tokens_total",
			Help:      "Listing draft token operations by operation and result.",
		}, []string{"op", "result"}),
		chatNotifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_notifications_total",
			Help:      "System chat notifications by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.transitions,
		m.reviews,
		m.draftTokens,
		m.chatNotifications,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveAction(action, result string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(action, result).Inc()
}

func (m *Metrics) ObserveReview(result string) {
	if m == nil {
		return
	}
	m.reviews.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDraftToken(op, result string) {
	if m == nil {
		return
	}
	m.draftTokens.WithLabelValues(op, result).Inc()
}

func (m *Metrics) ObserveChatNotification(result string) {
	if m == nil {
		return
	}
	m.chatNotifications.WithLabelValues(result).Inc()
}

// ResultOf classifies an operation error for the result label.
func ResultOf(err error, rejected func(error) bool) string {
	switch {
	case err == nil:
		return ResultOK
	case rejected != nil && rejected(err):
		return ResultRejected
	default:
		return ResultError
	}
}

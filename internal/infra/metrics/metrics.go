// Package metrics exposes directory and HTTP metrics through Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"directory/config"
	"directory/internal/domain/service"
	"directory/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so that several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	listingViews    *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	failures        *prometheus.CounterVec
	bulkActions     *prometheus.CounterVec
}

// New creates and registers the collectors under the configured namespace.
func New(cfg *config.Config) *Metrics {
	namespace := "directory"
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		listingViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_views_total",
			Help:      "Listing profile views by city and category",
		}, []string{"city", "category"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listing_transitions_total",
			Help:      "Listings activated or deactivated by subscription reconciliation",
		}, []string{"transition"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_failures_total",
			Help:      "Listings that failed to reconcile",
		}, []string{"job"}),
		bulkActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_bulk_listings_total",
			Help:      "Listings affected by admin bulk actions",
		}, []string{"action"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.listingViews,
		m.transitions,
		m.failures,
		m.bulkActions,
	)

	return m
}

// Registry returns the registry backing the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = errorStatus(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// errorStatus predicts the status the error handler will render for err.
func errorStatus(err error) int {
	if he, ok := errors.AsType[*echo.HTTPError](err); ok {
		return he.Code
	}
	if coded, ok := errors.AsType[httpCoder](err); ok {
		return coded.HTTPCode()
	}

	return http.StatusInternalServerError
}

type httpCoder interface {
	error
	HTTPCode() int
}

// ListingViewed implements service.DirectoryMetrics.
func (m *Metrics) ListingViewed(city, category string) {
	m.listingViews.WithLabelValues(city, category).Inc()
}

// ListingTransition implements service.DirectoryMetrics.
func (m *Metrics) ListingTransition(transition string) {
	m.transitions.WithLabelValues(transition).Inc()
}

// ReconciliationFailure implements service.DirectoryMetrics.
func (m *Metrics) ReconciliationFailure(job string) {
	m.failures.WithLabelValues(job).Inc()
}

// BulkAction implements service.DirectoryMetrics.
func (m *Metrics) BulkAction(action string, affected int) {
	m.bulkActions.WithLabelValues(action).Add(float64(affected))
}

// DirectoryMetrics exposes m through the domain interface for Fx.
func DirectoryMetrics(m *Metrics) service.DirectoryMetrics {
	return m
}

type noop struct{}

// NewNoop returns a DirectoryMetrics that records nothing.
func NewNoop() service.DirectoryMetrics {
	return noop{}
}

func (noop) ListingViewed(string, string) {}
func (noop) ListingTransition(string)     {}
func (noop) ReconciliationFailure(string) {}
func (noop) BulkAction(string, int)       {}

package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	submittedTotal  prometheus.Counter
	paidTotal       prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	submittedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clc_applications_submitted_total",
		Help: "Total number of CLC applications submitted",
	})

	paidTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "clc_payments_confirmed_total",
		Help: "Total number of CLC application payments confirmed",
	})

	registry.MustRegister(requestDuration, requestTotal, submittedTotal, paidTotal)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		submittedTotal:  submittedTotal,
		paidTotal:       paidTotal,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records a completed request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, fmt.Sprintf("%d", status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// IncApplicationSubmitted counts a successful submission.
func (s *MetricsService) IncApplicationSubmitted() {
	s.submittedTotal.Inc()
}

// IncPaymentConfirmed counts a successful payment confirmation.
func (s *MetricsService) IncPaymentConfirmed() {
	s.paidTotal.Inc()
}

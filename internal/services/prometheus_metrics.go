package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by the recorder
const (
	MetricCustomerListRequest  = "customer_list_request"
	MetricCustomerListDuration = "customer_list"
	MetricCustomerListResults  = "customer_list_results"
)

type PrometheusMetrics struct {
	customerListRequests *prometheus.CounterVec
	customerListDuration prometheus.Histogram
	customerListResults  prometheus.Histogram
}

// NewPrometheusMetrics registers the listing metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		customerListRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_list_requests_total",
				Help: "Total number of customer list requests",
			},
			[]string{"status"},
		),
		customerListDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_list_duration_seconds",
				Help:    "Customer list duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		customerListResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_list_results",
				Help:    "Number of customers returned per page",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricCustomerListRequest:
		if status := tags["status"]; status != "" {
			m.customerListRequests.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricCustomerListDuration:
		m.customerListDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCustomerListResults:
		m.customerListResults.Observe(value)
	}
}

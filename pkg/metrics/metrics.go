// Package metrics Prometheus метрики сервиса.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты генерации документа
const (
	ResultSuccess         = "success"
	ResultValidationError = "validation_error"
	ResultError           = "error"
)

// Metrics набор метрик сервиса с собственным реестром
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DocumentsGenerated  *prometheus.CounterVec
	DocumentsEvicted    prometheus.Counter
	RegistrySize        prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DocumentsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "documents_generated_total",
			Help:        "Booking documents generation attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		DocumentsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "documents_evicted_total",
			Help:        "Documents removed by the retention sweep",
			ConstLabels: constLabels,
		}),
		RegistrySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "documents_registry_size",
			Help:        "Number of documents currently held in the registry",
			ConstLabels: constLabels,
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DocumentsGenerated,
		m.DocumentsEvicted,
		m.RegistrySize,
	)

	return m
}

// Handler HTTP handler для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry реестр метрик (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveDocument учитывает попытку генерации документа. Безопасен для nil.
func (m *Metrics) ObserveDocument(result string) {
	if m == nil {
		return
	}
	m.DocumentsGenerated.WithLabelValues(result).Inc()
}

// ObserveEviction учитывает результат очистки. Безопасен для nil.
func (m *Metrics) ObserveEviction(evicted, remaining int) {
	if m == nil {
		return
	}
	m.DocumentsEvicted.Add(float64(evicted))
	m.RegistrySize.Set(float64(remaining))
}

// SetRegistrySize обновляет размер реестра. Безопасен для nil.
func (m *Metrics) SetRegistrySize(size int) {
	if m == nil {
		return
	}
	m.RegistrySize.Set(float64(size))
}

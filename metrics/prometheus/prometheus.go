package prometheusmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/prebid/openrtb-codec/config"
	"github.com/prebid/openrtb-codec/metrics"
)

// Metrics defines the Prometheus metrics backing the MetricsEngine implementation.
type Metrics struct {
	Registry *prometheus.Registry

	operations     *prometheus.CounterVec
	operationTimer *prometheus.HistogramVec
	payloadSize    *prometheus.HistogramVec
	findings       *prometheus.CounterVec
}

const (
	entityLabel    = "entity"
	kindLabel      = "kind"
	operationLabel = "operation"
	severityLabel  = "severity"
	statusLabel    = "status"
)

// NewMetrics initializes a new Prometheus metrics instance with preloaded label values.
func NewMetrics(cfg config.PrometheusMetrics) *Metrics {
	timerBuckets := prometheus.LinearBuckets(0.00005, 0.00005, 20)
	sizeBuckets := prometheus.ExponentialBuckets(128, 2, 12)

	reg := prometheus.NewRegistry()
	m := &Metrics{Registry: reg}

	m.operations = newCounter(cfg, reg,
		"operations",
		"Count of codec operations by operation, entity and status.",
		[]string{operationLabel, entityLabel, statusLabel})

	m.operationTimer = newHistogramVec(cfg, reg,
		"operation_time_seconds",
		"Seconds to encode or decode one payload.",
		[]string{operationLabel}, timerBuckets)

	m.payloadSize = newHistogramVec(cfg, reg,
		"payload_size_bytes",
		"Size of the JSON payloads read or written.",
		[]string{operationLabel}, sizeBuckets)

	m.findings = newCounter(cfg, reg,
		"findings",
		"Count of decode findings by entity, kind and severity.",
		[]string{entityLabel, kindLabel, severityLabel})

	preloadLabelValues(m)

	return m
}

func newCounter(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounterVec(opts, labels)
	registry.MustRegister(counter)
	return counter
}

func newHistogramVec(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	opts := prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}
	histogram := prometheus.NewHistogramVec(opts, labels)
	registry.MustRegister(histogram)
	return histogram
}

func preloadLabelValues(m *Metrics) {
	for _, op := range metrics.Operations() {
		m.operationTimer.With(prometheus.Labels{operationLabel: string(op)})
		m.payloadSize.With(prometheus.Labels{operationLabel: string(op)})
	}
}

func (m *Metrics) RecordOperation(labels metrics.Labels) {
	m.operations.With(prometheus.Labels{
		operationLabel: string(labels.Operation),
		entityLabel:    labels.Entity,
		statusLabel:    string(labels.Status),
	}).Inc()
}

func (m *Metrics) RecordOperationTime(labels metrics.Labels, length time.Duration) {
	m.operationTimer.With(prometheus.Labels{
		operationLabel: string(labels.Operation),
	}).Observe(length.Seconds())
}

func (m *Metrics) RecordPayloadSize(labels metrics.Labels, bytes int) {
	m.payloadSize.With(prometheus.Labels{
		operationLabel: string(labels.Operation),
	}).Observe(float64(bytes))
}

func (m *Metrics) RecordFinding(labels metrics.FindingLabels) {
	m.findings.With(prometheus.Labels{
		entityLabel:   labels.Entity,
		kindLabel:     labels.Kind.String(),
		severityLabel: labels.Severity.String(),
	}).Inc()
}

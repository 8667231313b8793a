package prometheusmetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"

	"github.com/prebid/openrtb-codec/config"
	"github.com/prebid/openrtb-codec/errortypes"
	"github.com/prebid/openrtb-codec/metrics"
)

func createMetricsForTesting() *Metrics {
	return NewMetrics(config.PrometheusMetrics{
		Namespace: "ortbcodec",
		Subsystem: "test",
	})
}

func TestMetricCountGatekeeping(t *testing.T) {
	m := createMetricsForTesting()

	metricFamilies, err := m.Registry.Gather()
	assert.NoError(t, err, "gather metics")

	// Preloaded histograms only; counters appear once used.
	assert.Len(t, metricFamilies, 2)
	for _, family := range metricFamilies {
		assert.Len(t, family.GetMetric(), len(metrics.Operations()), family.GetName())
	}
}

func TestRecordOperation(t *testing.T) {
	m := createMetricsForTesting()

	labels := metrics.Labels{Operation: metrics.OperationDecode, Entity: "BidRequest", Status: metrics.StatusOK}
	m.RecordOperation(labels)
	m.RecordOperation(labels)

	assertCounterVecValue(t, "", "operations", m.operations, 2, prometheus.Labels{
		operationLabel: "decode",
		entityLabel:    "BidRequest",
		statusLabel:    "ok",
	})
}

func TestRecordFinding(t *testing.T) {
	m := createMetricsForTesting()

	m.RecordFinding(metrics.FindingLabels{Entity: "Imp", Kind: errortypes.TypeMismatch, Severity: errortypes.SeverityError})

	assertCounterVecValue(t, "", "findings", m.findings, 1, prometheus.Labels{
		entityLabel:   "Imp",
		kindLabel:     "TypeMismatch",
		severityLabel: "error",
	})
}

func TestRecordOperationTimeAndSize(t *testing.T) {
	m := createMetricsForTesting()
	labels := metrics.Labels{Operation: metrics.OperationEncode}

	m.RecordOperationTime(labels, 300*time.Microsecond)
	m.RecordPayloadSize(labels, 1000)
	m.RecordPayloadSize(labels, 24)

	timer := getHistogramFromHistogramVec(m.operationTimer, operationLabel, "encode")
	assert.Equal(t, uint64(1), timer.GetSampleCount())
	assert.InDelta(t, 0.0003, timer.GetSampleSum(), 1e-9)

	size := getHistogramFromHistogramVec(m.payloadSize, operationLabel, "encode")
	assert.Equal(t, uint64(2), size.GetSampleCount())
	assert.Equal(t, float64(1024), size.GetSampleSum())
}

func assertCounterVecValue(t *testing.T, description, name string, counterVec *prometheus.CounterVec, expected float64, labels prometheus.Labels) {
	t.Helper()
	counter := counterVec.With(labels)
	assertCounterValue(t, description, name, counter, expected)
}

func assertCounterValue(t *testing.T, description, name string, counter prometheus.Counter, expected float64) {
	t.Helper()
	m := &dto.Metric{}
	counter.Write(m)
	actual := m.GetCounter().GetValue()

	assert.Equal(t, expected, actual, description)
}

func getHistogramFromHistogramVec(histogram *prometheus.HistogramVec, labelKey, labelValue string) *dto.Histogram {
	var result *dto.Histogram
	processMetrics(histogram, func(m *dto.Metric) {
		for _, label := range m.GetLabel() {
			if label.GetName() == labelKey && label.GetValue() == labelValue {
				result = m.GetHistogram()
			}
		}
	})
	return result
}

func processMetrics(collector prometheus.Collector, handler func(m *dto.Metric)) {
	collectorChan := make(chan prometheus.Metric)
	go func() {
		collector.Collect(collectorChan)
		close(collectorChan)
	}()

	for metric := range collectorChan {
		dtoMetric := &dto.Metric{}
		metric.Write(dtoMetric)
		handler(dtoMetric)
	}
}

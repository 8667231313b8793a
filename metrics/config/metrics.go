package config

import (
	"time"

	gometrics "github.com/rcrowley/go-metrics"

	mainConfig "github.com/prebid/openrtb-codec/config"
	"github.com/prebid/openrtb-codec/metrics"
	prometheusmetrics "github.com/prebid/openrtb-codec/metrics/prometheus"
)

// NewMetricsEngine reads the configuration and returns the appropriate metrics engine
// for this instance. When more than one engine is configured they are combined in
// a MultiMetricsEngine.
func NewMetricsEngine(cfg *mainConfig.Configuration) *DetailedMetricsEngine {
	returnEngine := DetailedMetricsEngine{}
	engineList := make(MultiMetricsEngine, 0, 2)

	for _, typ := range cfg.Metrics.Types() {
		switch typ {
		case mainConfig.MetricsTypeGoMetrics:
			returnEngine.GoMetrics = metrics.NewMetrics(gometrics.NewPrefixedRegistry("ortbcodec."))
			engineList = append(engineList, returnEngine.GoMetrics)
		case mainConfig.MetricsTypePrometheus:
			returnEngine.PrometheusMetrics = prometheusmetrics.NewMetrics(cfg.Metrics.Prometheus)
			engineList = append(engineList, returnEngine.PrometheusMetrics)
		}
	}

	switch len(engineList) {
	case 0:
		returnEngine.MetricsEngine = &NilMetricsEngine{}
	case 1:
		returnEngine.MetricsEngine = engineList[0]
	default:
		returnEngine.MetricsEngine = &engineList
	}

	return &returnEngine
}

// DetailedMetricsEngine is a MultiMetricsEngine that preserves links to underlying
// metrics engines.
type DetailedMetricsEngine struct {
	metrics.MetricsEngine
	GoMetrics         *metrics.Metrics
	PrometheusMetrics *prometheusmetrics.Metrics
}

// MultiMetricsEngine logs metrics to multiple metrics databases. These can be
// useful in transitioning an instance from one engine to another.
type MultiMetricsEngine []metrics.MetricsEngine

func (me *MultiMetricsEngine) RecordOperation(labels metrics.Labels) {
	for _, thisME := range *me {
		thisME.RecordOperation(labels)
	}
}

func (me *MultiMetricsEngine) RecordOperationTime(labels metrics.Labels, length time.Duration) {
	for _, thisME := range *me {
		thisME.RecordOperationTime(labels, length)
	}
}

func (me *MultiMetricsEngine) RecordPayloadSize(labels metrics.Labels, bytes int) {
	for _, thisME := range *me {
		thisME.RecordPayloadSize(labels, bytes)
	}
}

func (me *MultiMetricsEngine) RecordFinding(labels metrics.FindingLabels) {
	for _, thisME := range *me {
		thisME.RecordFinding(labels)
	}
}

// NilMetricsEngine implements the MetricsEngine interface where no metrics are
// desired.
type NilMetricsEngine struct{}

func (me *NilMetricsEngine) RecordOperation(labels metrics.Labels) {}

func (me *NilMetricsEngine) RecordOperationTime(labels metrics.Labels, length time.Duration) {}

func (me *NilMetricsEngine) RecordPayloadSize(labels metrics.Labels, bytes int) {}

func (me *NilMetricsEngine) RecordFinding(labels metrics.FindingLabels) {}

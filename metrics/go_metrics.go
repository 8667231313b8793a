package metrics

import (
	"fmt"
	"time"

	"github.com/rcrowley/go-metrics"
)

// Metrics is the go-metrics implementation of MetricsEngine. Meters and timers
// are registered up front so that every name shows up in the registry, even
// before it is first used.
type Metrics struct {
	MetricsRegistry metrics.Registry

	OperationMeter map[Operation]map[Status]metrics.Meter
	OperationTimer map[Operation]metrics.Timer
	PayloadSize    map[Operation]metrics.Histogram
	FindingMeter   map[string]metrics.Meter
}

// NewMetrics registers the codec metrics in registry.
func NewMetrics(registry metrics.Registry) *Metrics {
	m := &Metrics{
		MetricsRegistry: registry,
		OperationMeter:  make(map[Operation]map[Status]metrics.Meter),
		OperationTimer:  make(map[Operation]metrics.Timer),
		PayloadSize:     make(map[Operation]metrics.Histogram),
		FindingMeter:    make(map[string]metrics.Meter),
	}

	for _, op := range Operations() {
		m.OperationMeter[op] = make(map[Status]metrics.Meter)
		for _, status := range Statuses() {
			m.OperationMeter[op][status] = metrics.GetOrRegisterMeter(fmt.Sprintf("%s.%s", op, status), registry)
		}
		m.OperationTimer[op] = metrics.GetOrRegisterTimer(fmt.Sprintf("%s_time", op), registry)
		m.PayloadSize[op] = metrics.GetOrRegisterHistogram(fmt.Sprintf("%s_bytes", op), registry, metrics.NewExpDecaySample(1028, 0.015))
	}
	for _, kind := range FindingKinds() {
		name := findingName(kind.String())
		m.FindingMeter[name] = metrics.GetOrRegisterMeter(name, registry)
	}

	return m
}

func findingName(kind string) string {
	return "findings." + kind
}

func (m *Metrics) RecordOperation(labels Labels) {
	if meter, ok := m.OperationMeter[labels.Operation][labels.Status]; ok {
		meter.Mark(1)
	}
	if labels.Entity != "" {
		metrics.GetOrRegisterMeter(fmt.Sprintf("entity.%s.%s", labels.Entity, labels.Operation), m.MetricsRegistry).Mark(1)
	}
}

func (m *Metrics) RecordOperationTime(labels Labels, length time.Duration) {
	if timer, ok := m.OperationTimer[labels.Operation]; ok {
		timer.Update(length)
	}
}

func (m *Metrics) RecordPayloadSize(labels Labels, bytes int) {
	if histogram, ok := m.PayloadSize[labels.Operation]; ok {
		histogram.Update(int64(bytes))
	}
}

func (m *Metrics) RecordFinding(labels FindingLabels) {
	if meter, ok := m.FindingMeter[findingName(labels.Kind.String())]; ok {
		meter.Mark(1)
	}
}

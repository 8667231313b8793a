package metrics

import (
	"testing"
	"time"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"

	"github.com/prebid/openrtb-codec/errortypes"
)

func TestNewMetrics(t *testing.T) {
	registry := metrics.NewRegistry()
	m := NewMetrics(registry)

	for _, op := range Operations() {
		for _, status := range Statuses() {
			ensureContains(t, registry, string(op)+"."+string(status), m.OperationMeter[op][status])
		}
		ensureContains(t, registry, string(op)+"_time", m.OperationTimer[op])
		ensureContains(t, registry, string(op)+"_bytes", m.PayloadSize[op])
	}
	ensureContains(t, registry, "findings.TypeMismatch", m.FindingMeter["findings.TypeMismatch"])
}

func ensureContains(t *testing.T, registry metrics.Registry, name string, metric interface{}) {
	t.Helper()
	if inRegistry := registry.Get(name); inRegistry == nil {
		t.Errorf("No metric in registry at %s.", name)
	} else if inRegistry != metric {
		t.Errorf("Bad value stored at metric %s.", name)
	}
}

func TestRecordOperation(t *testing.T) {
	registry := metrics.NewRegistry()
	m := NewMetrics(registry)

	labels := Labels{Operation: OperationDecode, Entity: "BidRequest", Status: StatusInvalid}
	m.RecordOperation(labels)
	m.RecordOperation(labels)
	m.RecordOperation(Labels{Operation: OperationEncode, Status: StatusOK})
	m.RecordOperationTime(labels, 20*time.Millisecond)
	m.RecordPayloadSize(labels, 512)

	assert.Equal(t, int64(2), m.OperationMeter[OperationDecode][StatusInvalid].Count())
	assert.Equal(t, int64(0), m.OperationMeter[OperationDecode][StatusOK].Count())
	assert.Equal(t, int64(1), m.OperationMeter[OperationEncode][StatusOK].Count())
	assert.Equal(t, int64(2), registry.Get("entity.BidRequest.decode").(metrics.Meter).Count())
	assert.Equal(t, int64(1), m.OperationTimer[OperationDecode].Count())
	assert.Equal(t, int64(512), m.PayloadSize[OperationDecode].Max())
}

func TestRecordFinding(t *testing.T) {
	m := NewMetrics(metrics.NewRegistry())

	m.RecordFinding(FindingLabels{Entity: "Imp", Kind: errortypes.UnknownEnumValue, Severity: errortypes.SeverityWarning})
	m.RecordFinding(FindingLabels{Entity: "Imp", Kind: errortypes.UnknownEnumValue, Severity: errortypes.SeverityWarning})
	m.RecordFinding(FindingLabels{Entity: "Imp", Kind: errortypes.FindingKind(42)})

	assert.Equal(t, int64(2), m.FindingMeter["findings.UnknownEnumValue"].Count())
	assert.Equal(t, int64(0), m.FindingMeter["findings.MissingRequiredField"].Count())
}

package metrics

import (
	"time"

	"github.com/prebid/openrtb-codec/errortypes"
)

// Operation is the codec call being measured.
type Operation string

const (
	OperationDecode Operation = "decode"
	OperationEncode Operation = "encode"
)

func Operations() []Operation {
	return []Operation{
		OperationDecode,
		OperationEncode,
	}
}

// Status is the outcome of an operation.
type Status string

const (
	// StatusOK is a call which returned a result without Error findings.
	StatusOK Status = "ok"
	// StatusInvalid is a decode which returned a graph with Error findings.
	StatusInvalid Status = "invalid"
	// StatusFailed is a call which returned a terminal error and no result.
	StatusFailed Status = "failed"
)

func Statuses() []Status {
	return []Status{
		StatusOK,
		StatusInvalid,
		StatusFailed,
	}
}

// Labels defines the labels that can be attached to an operation.
type Labels struct {
	Operation Operation
	Entity    string
	Status    Status
}

// FindingLabels defines the labels that can be attached to a finding.
type FindingLabels struct {
	Entity   string
	Kind     errortypes.FindingKind
	Severity errortypes.Severity
}

func FindingKinds() []errortypes.FindingKind {
	return []errortypes.FindingKind{
		errortypes.MissingRequiredField,
		errortypes.TypeMismatch,
		errortypes.UnknownEnumValue,
		errortypes.SemanticViolation,
		errortypes.MissingRecommendedField,
	}
}

// MetricsEngine is a generic interface to record codec metrics into the desired
// backend.
type MetricsEngine interface {
	RecordOperation(labels Labels)
	RecordOperationTime(labels Labels, length time.Duration)
	RecordPayloadSize(labels Labels, bytes int)
	RecordFinding(labels FindingLabels)
}

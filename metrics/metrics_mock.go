package metrics

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MetricsEngineMock is a mock implementation of MetricsEngine.
type MetricsEngineMock struct {
	mock.Mock
}

// RecordOperation mock
func (me *MetricsEngineMock) RecordOperation(labels Labels) {
	me.Called(labels)
}

// RecordOperationTime mock
func (me *MetricsEngineMock) RecordOperationTime(labels Labels, length time.Duration) {
	me.Called(labels, length)
}

// RecordPayloadSize mock
func (me *MetricsEngineMock) RecordPayloadSize(labels Labels, bytes int) {
	me.Called(labels, bytes)
}

// RecordFinding mock
func (me *MetricsEngineMock) RecordFinding(labels FindingLabels) {
	me.Called(labels)
}

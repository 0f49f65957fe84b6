package out

import (
	"context"
	"time"
)

// MetricsRecorder records pipeline measurements.
type MetricsRecorder interface {
	// RecordAnalysis records one pipeline run. kind is domain.KindOK on
	// success, otherwise the machine-readable error kind.
	RecordAnalysis(ctx context.Context, kind string, duration time.Duration)

	// RecordInference records one call to the inference service.
	RecordInference(ctx context.Context, model, kind string, duration time.Duration)
}

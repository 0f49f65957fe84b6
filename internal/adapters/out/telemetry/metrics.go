package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/platelens/platelens/internal/domain"
)

// Metrics holds the pipeline's OTel instruments and implements the MetricsRecorder interface.
type Metrics struct {
	AnalysisTotal    metric.Int64Counter
	AnalysisErrors   metric.Int64Counter
	AnalysisDuration metric.Float64Histogram

	InferenceTotal    metric.Int64Counter
	InferenceDuration metric.Float64Histogram
}

// NewMetrics creates the instruments from the global MeterProvider.
// All fields are always initialized; OTel hands out noop instruments when no provider is set.
func NewMetrics() (*Metrics, error) {
	return NewMetricsFrom(otel.GetMeterProvider())
}

// NewMetricsFrom creates the instruments from mp.
func NewMetricsFrom(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("platelens")
	m := &Metrics{}
	var err error

	if m.AnalysisTotal, err = meter.Int64Counter("platelens.analysis.total",
		metric.WithDescription("Total analysis requests by outcome kind")); err != nil {
		return nil, err
	}
	if m.AnalysisErrors, err = meter.Int64Counter("platelens.analysis.errors",
		metric.WithDescription("Failed analysis requests by error kind")); err != nil {
		return nil, err
	}
	if m.AnalysisDuration, err = meter.Float64Histogram("platelens.analysis.duration_seconds",
		metric.WithDescription("End-to-end analysis duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.25, 0.5, 1, 2, 5, 10, 20, 30, 60)); err != nil {
		return nil, err
	}
	if m.InferenceTotal, err = meter.Int64Counter("platelens.inference.total",
		metric.WithDescription("Total inference calls by model and outcome kind")); err != nil {
		return nil, err
	}
	if m.InferenceDuration, err = meter.Float64Histogram("platelens.inference.duration_seconds",
		metric.WithDescription("Inference call latency in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.25, 0.5, 1, 2, 5, 10, 20, 30, 60)); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordAnalysis records one pipeline run. kind is domain.KindOK on success.
func (m *Metrics) RecordAnalysis(ctx context.Context, kind string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("kind", kind))
	m.AnalysisTotal.Add(ctx, 1, attrs)
	m.AnalysisDuration.Record(ctx, duration.Seconds(), attrs)
	if kind != domain.KindOK {
		m.AnalysisErrors.Add(ctx, 1, attrs)
	}
}

// RecordInference records one call to the inference service.
func (m *Metrics) RecordInference(ctx context.Context, model, kind string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("kind", kind),
	)
	m.InferenceTotal.Add(ctx, 1, attrs)
	m.InferenceDuration.Record(ctx, duration.Seconds(), attrs)
}

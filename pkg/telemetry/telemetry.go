// ABOUTME: Core telemetry abstraction over OpenTelemetry for cursor benchmark instrumentation
// ABOUTME: Provides metric recording, tracing, and lifecycle management with a no-op implementation

package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry is the abstraction the benchmark runner records through.
// Callers never depend on the OpenTelemetry SDK directly.
type Telemetry interface {
	// RecordHistogram records a histogram value with optional attributes.
	RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue)

	// RecordCounter records a counter increment with optional attributes.
	RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue)

	// StartSpan creates a new tracing span with the given name and attributes.
	StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span)

	// Shutdown flushes and stops all providers.
	Shutdown(ctx context.Context) error
}

// ComponentMetrics is the marker interface for component-specific metrics.
type ComponentMetrics interface {
	// Close releases any resources held by the metrics implementation.
	Close() error
}

// NoopTelemetry discards everything.
type NoopTelemetry struct{}

// NewNoop creates a new no-operation telemetry instance.
func NewNoop() Telemetry {
	return &NoopTelemetry{}
}

// RecordHistogram is a no-op.
func (n *NoopTelemetry) RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue) {
}

// RecordCounter is a no-op.
func (n *NoopTelemetry) RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue) {
}

// StartSpan returns the original context and the span already in it, which
// is a non-recording span when none was started.
func (n *NoopTelemetry) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

// Shutdown is a no-op.
func (n *NoopTelemetry) Shutdown(ctx context.Context) error {
	return nil
}

// RecordDuration records the seconds elapsed since start in a histogram.
func RecordDuration(ctx context.Context, tel Telemetry, name string, start time.Time, attrs ...attribute.KeyValue) {
	tel.RecordHistogram(ctx, name, time.Since(start).Seconds(), attrs...)
}

// RecordElements records a count of processed elements in a counter.
func RecordElements(ctx context.Context, tel Telemetry, name string, n int64, attrs ...attribute.KeyValue) {
	tel.RecordCounter(ctx, name, n, attrs...)
}

// Metric and span names
const (
	MetricRoundDuration = "cursor.bench.round.duration"
	MetricElements      = "cursor.bench.elements"
	MetricMismatches    = "cursor.bench.mismatches"
	SpanWorkload        = "cursor.bench.workload"
	SpanRound           = "cursor.bench.round"
)

// Attribute keys
const (
	AttrWorkload = "bench.workload"
	AttrImpl     = "bench.impl"
	AttrSize     = "bench.size"
	AttrRound    = "bench.round"
	AttrCategory = "cursor.category"
	AttrMutable  = "cursor.mutable"
	AttrStatus   = "status"
)

// Attribute values
const (
	ImplAdapter = "adapter"
	ImplNative  = "native"

	StatusSuccess  = "success"
	StatusMismatch = "mismatch"
)

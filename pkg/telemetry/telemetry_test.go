// ABOUTME: Tests for the telemetry interface helpers and the no-op implementation

package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

func TestNoopTelemetry(t *testing.T) {
	tel := NewNoop()
	ctx := context.Background()

	tel.RecordHistogram(ctx, "test.histogram", 1.5, attribute.String("key", "value"))
	tel.RecordCounter(ctx, "test.counter", 10, attribute.String("key", "value"))

	spanCtx, span := tel.StartSpan(ctx, "test.span", attribute.String("test", "value"))
	if spanCtx == nil {
		t.Error("StartSpan returned nil context")
	}
	if span == nil {
		t.Fatal("StartSpan returned nil span")
	}
	if span.IsRecording() {
		t.Error("No-op span should not record")
	}
	span.End()

	if err := tel.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown returned error: %v", err)
	}
}

func TestNewForTesting(t *testing.T) {
	tel := NewForTesting()
	if _, ok := tel.(*NoopTelemetry); !ok {
		t.Errorf("NewForTesting should return the no-op implementation, got %T", tel)
	}
}

type recordingTelemetry struct {
	NoopTelemetry
	histograms map[string]float64
	counters   map[string]int64
}

func (r *recordingTelemetry) RecordHistogram(ctx context.Context, name string, value float64, attrs ...attribute.KeyValue) {
	r.histograms[name] += value
}

func (r *recordingTelemetry) RecordCounter(ctx context.Context, name string, value int64, attrs ...attribute.KeyValue) {
	r.counters[name] += value
}

func TestRecordHelpers(t *testing.T) {
	rec := &recordingTelemetry{histograms: map[string]float64{}, counters: map[string]int64{}}
	ctx := context.Background()

	start := time.Now().Add(-time.Second)
	RecordDuration(ctx, rec, MetricRoundDuration, start)
	RecordElements(ctx, rec, MetricElements, 64)
	RecordElements(ctx, rec, MetricElements, 36)

	if rec.histograms[MetricRoundDuration] < 1 {
		t.Errorf("Expected at least one second recorded, got %f", rec.histograms[MetricRoundDuration])
	}
	if rec.counters[MetricElements] != 100 {
		t.Errorf("Expected 100 elements, got %d", rec.counters[MetricElements])
	}
}

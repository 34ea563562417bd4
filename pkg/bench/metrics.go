// ABOUTME: Benchmark telemetry metrics interface recording round durations, element counts and mismatches
// ABOUTME: Falls back to a no-op implementation when telemetry is not configured

package bench

import (
	"context"
	"time"

	"github.com/KevoDB/cursor/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Metrics is the instrumentation surface of the runner.
type Metrics interface {
	telemetry.ComponentMetrics

	// RecordRound records one round of a workload implementation that began at start.
	RecordRound(ctx context.Context, workload, impl string, size int, start time.Time)

	// RecordElements counts elements visited by a round.
	RecordElements(ctx context.Context, workload, impl string, n int)

	// RecordMismatch counts a round whose adapter and native results differ.
	RecordMismatch(ctx context.Context, workload string)
}

type benchMetrics struct {
	tel telemetry.Telemetry
}

// NewMetrics creates a Metrics recording through tel. A nil tel yields the
// no-op implementation.
func NewMetrics(tel telemetry.Telemetry) Metrics {
	if tel == nil {
		return noopMetrics{}
	}
	return &benchMetrics{tel: tel}
}

func (m *benchMetrics) RecordRound(ctx context.Context, workload, impl string, size int, start time.Time) {
	telemetry.RecordDuration(ctx, m.tel, telemetry.MetricRoundDuration, start,
		attribute.String(telemetry.AttrWorkload, workload),
		attribute.String(telemetry.AttrImpl, impl),
		attribute.Int(telemetry.AttrSize, size),
	)
}

func (m *benchMetrics) RecordElements(ctx context.Context, workload, impl string, n int) {
	telemetry.RecordElements(ctx, m.tel, telemetry.MetricElements, int64(n),
		attribute.String(telemetry.AttrWorkload, workload),
		attribute.String(telemetry.AttrImpl, impl),
	)
}

func (m *benchMetrics) RecordMismatch(ctx context.Context, workload string) {
	m.tel.RecordCounter(ctx, telemetry.MetricMismatches, 1,
		attribute.String(telemetry.AttrWorkload, workload),
		attribute.String(telemetry.AttrStatus, telemetry.StatusMismatch),
	)
}

// Close is a no-op; the telemetry owner shuts it down.
func (m *benchMetrics) Close() error {
	return nil
}

type noopMetrics struct{}

func (noopMetrics) RecordRound(context.Context, string, string, int, time.Time) {}
func (noopMetrics) RecordElements(context.Context, string, string, int) {}
func (noopMetrics) RecordMismatch(context.Context, string) {}
func (noopMetrics) Close() error { return nil }

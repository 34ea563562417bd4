// Package bench measures the random-access cursor adapter against the
// equivalent native slice code and checks that both agree.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/KevoDB/cursor/pkg/common/log"
	"github.com/KevoDB/cursor/pkg/config"
	"github.com/KevoDB/cursor/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrMismatch        = errors.New("adapter and native results differ")
	ErrUnknownWorkload = errors.New("unknown workload")
)

// Result summarises all rounds of one workload implementation.
type Result struct {
	Timestamp time.Time
	Workload  string
	Impl      string
	Size      int
	Rounds    int
	Duration  float64 // total seconds across rounds
	NsPerElem float64
	Checksum  uint64
}

// Runner executes the configured workloads.
type Runner struct {
	cfg     *config.BenchConfig
	tel     telemetry.Telemetry
	metrics Metrics
	logger  log.Logger
	now     func() time.Time
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithTelemetry records spans and metrics through tel
func WithTelemetry(tel telemetry.Telemetry) RunnerOption {
	return func(r *Runner) {
		r.tel = tel
		r.metrics = NewMetrics(tel)
	}
}

// WithLogger sets the runner's logger
func WithLogger(logger log.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner validates cfg and returns a runner for it.
func NewRunner(cfg *config.BenchConfig, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:     cfg,
		tel:     telemetry.NewNoop(),
		metrics: NewMetrics(nil),
		logger:  log.NopLogger{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes every configured workload and returns one adapter and one
// native Result per workload. A checksum mismatch stops the run with
// ErrMismatch; the results gathered so far are returned with it.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, name := range r.cfg.Workloads {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		w, ok := workloads[name]
		if !ok {
			return results, fmt.Errorf("%w: %s", ErrUnknownWorkload, name)
		}

		adapter, native, err := r.runWorkload(ctx, w)
		if err != nil {
			return results, err
		}
		results = append(results, adapter, native)
	}
	return results, nil
}

func (r *Runner) runWorkload(ctx context.Context, w workload) (Result, Result, error) {
	ctx, span := r.tel.StartSpan(ctx, telemetry.SpanWorkload,
		attribute.String(telemetry.AttrWorkload, w.name),
		attribute.Int(telemetry.AttrSize, r.cfg.Size),
		attribute.String(telemetry.AttrCategory, w.kind.Category().String()),
		attribute.Bool(telemetry.AttrMutable, w.kind.Mutable()),
	)
	defer span.End()

	logger := r.logger.WithFields(map[string]any{"workload": w.name, "size": r.cfg.Size})
	logger.Info("starting %d rounds", r.cfg.Rounds)

	adapter := Result{Timestamp: r.now(), Workload: w.name, Impl: telemetry.ImplAdapter, Size: r.cfg.Size, Rounds: r.cfg.Rounds}
	native := adapter
	native.Impl = telemetry.ImplNative

	rng := rand.New(rand.NewSource(r.cfg.Seed))
	for round := 0; round < r.cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return adapter, native, err
		}

		input := w.prepare(rng, r.cfg.Size)
		aSum, aDur := r.timePass(ctx, w, telemetry.ImplAdapter, w.adapter, slices.Clone(input))
		nSum, nDur := r.timePass(ctx, w, telemetry.ImplNative, w.native, input)

		adapter.Duration += aDur.Seconds()
		native.Duration += nDur.Seconds()
		adapter.Checksum, native.Checksum = aSum, nSum

		logger.Debug("round %d adapter=%s native=%s", round, aDur, nDur)

		if aSum != nSum {
			r.metrics.RecordMismatch(ctx, w.name)
			span.SetAttributes(attribute.String(telemetry.AttrStatus, telemetry.StatusMismatch))
			span.SetStatus(codes.Error, ErrMismatch.Error())
			logger.Error("round %d checksum %x != %x", round, aSum, nSum)
			return adapter, native, fmt.Errorf("%w: workload %s round %d", ErrMismatch, w.name, round)
		}
	}

	elems := float64(r.cfg.Size) * float64(r.cfg.Rounds)
	adapter.NsPerElem = adapter.Duration * 1e9 / elems
	native.NsPerElem = native.Duration * 1e9 / elems

	span.SetAttributes(attribute.String(telemetry.AttrStatus, telemetry.StatusSuccess))
	span.SetStatus(codes.Ok, "")

	logger.Info("adapter %.2f ns/elem, native %.2f ns/elem", adapter.NsPerElem, native.NsPerElem)
	return adapter, native, nil
}

func (r *Runner) timePass(ctx context.Context, w workload, impl string, p pass, data []int) (uint64, time.Duration) {
	_, span := r.tel.StartSpan(ctx, telemetry.SpanRound, attribute.String(telemetry.AttrImpl, impl))
	start := time.Now()
	sum, visited := p(data)
	elapsed := time.Since(start)
	span.End()

	r.metrics.RecordRound(ctx, w.name, impl, r.cfg.Size, start)
	r.metrics.RecordElements(ctx, w.name, impl, visited)
	return sum, elapsed
}

package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigshift/internal/bignum"
	apperrors "github.com/agbru/bigshift/internal/errors"
	"github.com/agbru/bigshift/internal/logging"
	"github.com/agbru/bigshift/internal/metrics"
	"github.com/agbru/bigshift/internal/sysmon"
)

const (
	// MaxShift is the exclusive upper bound of generated shift amounts.
	MaxShift = bignum.CapacityBits - 1
	// cancelCheckInterval is how many iterations a worker runs between
	// context checks.
	cancelCheckInterval = 1024
	// progressInterval is the refresh period of the Progress callback.
	progressInterval = 100 * time.Millisecond
)

var tracer = otel.Tracer("github.com/agbru/bigshift/internal/bench")

// Options configures a benchmark run.
type Options struct {
	Workers    int
	Iterations int
	PoolSize   int
	// Seed seeds the input generator; 0 picks a time based seed.
	Seed int64
	// Progress, when set, is called periodically with the completed
	// fraction in [0, 1] and once with 1 at the end of a successful run.
	Progress func(float64)
}

// Sample is one pregenerated benchmark input.
type Sample struct {
	Value bignum.Nat
	Shift uint
}

// Report summarizes a finished benchmark run.
type Report struct {
	Workers    int
	Iterations int
	PoolSize   int
	Seed       int64
	Ops        uint64
	Succeeded  uint64
	Overflowed uint64
	Elapsed    time.Duration
	Memory     metrics.MemoryDelta
	// System is the host load measured over the run.
	System sysmon.Stats
	// CPUFeatures lists the multiword arithmetic extensions of the host.
	CPUFeatures []string
}

// OpsPerSecond returns the shift throughput of the run.
func (r Report) OpsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// InvariantError reports a shift result that broke the engine's contract.
type InvariantError struct {
	Worker    int
	Iteration int
	Input     Sample
	Reason    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("worker %d iteration %d: shift of %d-word value by %d: %s",
		e.Worker, e.Iteration, e.Input.Value.Len(), e.Input.Shift, e.Reason)
}

// GeneratePool returns n random samples. Each value has between 1 and
// CapacityWords random words and each shift lies in [0, MaxShift).
func GeneratePool(r *rand.Rand, n int) []Sample {
	pool := make([]Sample, n)
	words := make([]bignum.Word, bignum.CapacityWords)
	for i := range pool {
		used := 1 + r.Intn(bignum.CapacityWords)
		for j := 0; j < used; j++ {
			words[j] = r.Uint64()
		}
		// Cannot fail: used never exceeds CapacityWords.
		v, _ := bignum.FromWords(words[:used]...)
		pool[i] = Sample{Value: v, Shift: uint(r.Intn(MaxShift))}
	}
	return pool
}

// Run executes the benchmark described by opts.
func Run(ctx context.Context, opts Options, logger logging.Logger) (Report, error) {
	if err := opts.validate(); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	ctx, span := tracer.Start(ctx, "bench.Run", trace.WithAttributes(
		attribute.Int("bench.workers", opts.Workers),
		attribute.Int("bench.iterations", opts.Iterations),
		attribute.Int("bench.pool", opts.PoolSize),
		attribute.Int64("bench.seed", opts.Seed),
	))
	defer span.End()

	logger.Info("generating benchmark pool",
		logging.Int("pool", opts.PoolSize), logging.Int("workers", opts.Workers))
	pool := GeneratePool(rand.New(rand.NewSource(opts.Seed)), opts.PoolSize)

	var done, succeeded, overflowed atomic.Uint64
	total := uint64(opts.Workers) * uint64(opts.Iterations)

	stopProgress := startProgress(opts.Progress, &done, total)

	mc := metrics.NewMemoryCollector()
	sysmon.Sample()
	before := mc.Snapshot()
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := range opts.Workers {
		g.Go(func() error {
			ok, ovf, err := runWorker(gctx, w, opts.Iterations, pool, &done)
			succeeded.Add(ok)
			overflowed.Add(ovf)
			return err
		})
	}
	err := g.Wait()
	elapsed := time.Since(start)
	stopProgress()

	report := Report{
		Workers:     opts.Workers,
		Iterations:  opts.Iterations,
		PoolSize:    opts.PoolSize,
		Seed:        opts.Seed,
		Ops:         succeeded.Load() + overflowed.Load(),
		Succeeded:   succeeded.Load(),
		Overflowed:  overflowed.Load(),
		Elapsed:     elapsed,
		Memory:      mc.Snapshot().Since(before),
		System:      sysmon.Sample(),
		CPUFeatures: sysmon.Features(),
	}
	span.SetAttributes(
		attribute.Int64("bench.ops", saturatingInt64(report.Ops)),
		attribute.Int64("bench.overflows", saturatingInt64(report.Overflowed)),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if apperrors.IsContextError(err) {
			logger.Info("benchmark interrupted", logging.Uint64("ops", report.Ops))
		} else {
			logger.Error("benchmark failed", err, logging.Uint64("ops", report.Ops))
		}
		return report, err
	}

	if opts.Progress != nil {
		opts.Progress(1)
	}
	logger.Info("benchmark finished",
		logging.Uint64("ops", report.Ops),
		logging.Uint64("overflows", report.Overflowed),
		logging.Duration("elapsed", elapsed),
		logging.Float64("ops_per_sec", report.OpsPerSecond()),
	)
	return report, nil
}

// runWorker performs iterations shifts over the shared read-only pool. The
// index is offset by the worker id so workers start on different entries.
func runWorker(ctx context.Context, worker, iterations int, pool []Sample, done *atomic.Uint64) (ok, ovf uint64, err error) {
	var pending uint64
	defer func() { done.Add(pending) }()

	for i := 0; i < iterations; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return ok, ovf, err
			}
			done.Add(pending)
			pending = 0
		}

		in := pool[(i+worker)%len(pool)]
		z := in.Value
		switch err := bignum.ShiftLeft(&z, in.Shift); {
		case err == nil:
			if !z.Valid() {
				return ok, ovf, &InvariantError{Worker: worker, Iteration: i, Input: in, Reason: "result not normalized"}
			}
			ok++
		case errors.Is(err, bignum.ErrOverflow):
			if z != in.Value {
				return ok, ovf, &InvariantError{Worker: worker, Iteration: i, Input: in, Reason: "value mutated on overflow"}
			}
			ovf++
		default:
			return ok, ovf, apperrors.ShiftError{Op: "bench", Shift: in.Shift, Cause: err}
		}
		pending++
	}
	return ok, ovf, nil
}

// startProgress reports done/total through fn until the returned stop
// function is called. It is a no-op when fn is nil.
func startProgress(fn func(float64), done *atomic.Uint64, total uint64) (stop func()) {
	if fn == nil || total == 0 {
		return func() {}
	}
	quit := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				fn(float64(done.Load()) / float64(total))
			}
		}
	}()
	return func() {
		close(quit)
		wg.Wait()
	}
}

// saturatingInt64 converts a counter for an int64 span attribute, clamping
// at math.MaxInt64.
func saturatingInt64(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}

func (o Options) validate() error {
	switch {
	case o.Workers <= 0:
		return apperrors.ValidationError{Field: "workers", Message: "must be greater than zero"}
	case o.Iterations <= 0:
		return apperrors.ValidationError{Field: "iterations", Message: "must be greater than zero"}
	case o.PoolSize <= 0:
		return apperrors.ValidationError{Field: "pool", Message: "must be greater than zero"}
	}
	return nil
}

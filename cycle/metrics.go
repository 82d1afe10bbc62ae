package cycle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("github.com/joellidin/aoc/cycle")
	meter  = otel.Meter("github.com/joellidin/aoc/cycle")
)

var (
	runTotal      metric.Int64Counter
	stepsExecuted metric.Int64Counter
	stepsSkipped  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runTotal, err = meter.Int64Counter(
			"cycle_runs_total",
			metric.WithDescription("Total number of cycle simulations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		stepsExecuted, err = meter.Int64Counter(
			"cycle_steps_executed_total",
			metric.WithDescription("Raw step calls across all simulations"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		stepsSkipped, err = meter.Int64Counter(
			"cycle_steps_skipped_total",
			metric.WithDescription("Steps avoided by fast-forwarding"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// finish records metrics, closes out the span and logs the run.
func (d *detector[T]) finish(ctx context.Context, span trace.Span, mode string, started time.Time, err error) {
	var skipped int64
	if mode != "detect" && d.rep.Executed < d.target {
		skipped = d.target - d.rep.Executed
	}

	span.SetAttributes(
		attribute.Bool("cycle.found", d.rep.Found),
		attribute.Int64("cycle.start", d.rep.Start),
		attribute.Int64("cycle.length", d.rep.Length),
		attribute.Int64("cycle.executed", d.rep.Executed),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}

	if initMetrics() == nil {
		attrs := metric.WithAttributes(
			attribute.String("mode", mode),
			attribute.Bool("found", d.rep.Found),
		)
		runTotal.Add(ctx, 1, attrs)
		stepsExecuted.Add(ctx, d.rep.Executed, attrs)
		stepsSkipped.Add(ctx, skipped, attrs)
	}

	if d.cfg.Logger != nil {
		d.cfg.Logger.Debug("simulation finished",
			slog.String("mode", mode),
			slog.Bool("found", d.rep.Found),
			slog.Int64("executed", d.rep.Executed),
			slog.Int64("skipped", skipped),
			slog.Duration("elapsed", time.Since(started)),
		)
	}
}

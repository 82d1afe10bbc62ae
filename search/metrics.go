package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter. Both are no-ops until the host program
// installs global providers.
var (
	tracer = otel.Tracer("github.com/joellidin/aoc/search")
	meter  = otel.Meter("github.com/joellidin/aoc/search")
)

var (
	runTotal       metric.Int64Counter
	statesExpanded metric.Int64Counter
	runLatency     metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		runTotal, err = meter.Int64Counter(
			"search_runs_total",
			metric.WithDescription("Total number of search runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		statesExpanded, err = meter.Int64Counter(
			"search_states_expanded_total",
			metric.WithDescription("States finalized across all searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runLatency, err = meter.Float64Histogram(
			"search_duration_seconds",
			metric.WithDescription("Duration of search runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordRun records the metrics of one run.
func recordRun(ctx context.Context, mode string, d time.Duration, expanded int, found bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.Bool("found", found),
	)
	runTotal.Add(ctx, 1, attrs)
	statesExpanded.Add(ctx, int64(expanded), attrs)
	runLatency.Record(ctx, d.Seconds(), attrs)
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

func endSpan(span trace.Span, expanded int, found bool, err error) {
	span.SetAttributes(
		attribute.Int("search.expanded", expanded),
		attribute.Bool("search.found", found),
	)
	if err != nil && !errors.Is(err, ErrNoPath) {
		span.SetStatus(codes.Error, err.Error())
	}
}

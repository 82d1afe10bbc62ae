package cycle

import (
	"context"
	"errors"
	"log/slog"
)

// Sentinel errors.
var (
	// ErrNegativeTarget indicates a negative target or limit.
	ErrNegativeTarget = errors.New("cycle: target step count is negative")

	// ErrNilStep indicates that Simulation.Step is nil.
	ErrNilStep = errors.New("cycle: step function is nil")

	// ErrNilMeasure indicates that Extrapolate was called without a measure.
	ErrNilMeasure = errors.New("cycle: measure function is nil")

	// ErrNoCycle is returned by Detect when no configuration repeats within
	// the limit.
	ErrNoCycle = errors.New("cycle: no repeat within limit")
)

// Simulation describes a deterministic discrete system.
type Simulation[T any] struct {
	// Initial is the configuration at step 0.
	Initial T

	// Step returns the configuration one step later. Required.
	Step func(T) T

	// Signature fingerprints a configuration. Nil falls back to
	// signature.Of, which hashes exported fields structurally.
	Signature func(T) uint64
}

// Report describes what a simulation found.
//
// When Found is true the configuration after Start steps reappears after
// Start+Length steps. Executed counts raw Step calls, fast-forward included.
type Report struct {
	Found    bool
	Start    int64
	Length   int64
	Executed int64
}

// Options configures Run, Extrapolate and Detect.
type Options struct {
	Ctx    context.Context // checked once per step
	Logger *slog.Logger    // nil disables logging
}

// Option is a functional option.
type Option func(*Options)

// WithContext sets the context polled between steps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger logs a Debug record when a cycle is detected and when a run ends.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

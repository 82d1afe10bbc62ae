package cycle

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joellidin/aoc/signature"
)

// Run returns the configuration after target steps of sim.
//
// target == 0 returns sim.Initial without calling Step. Otherwise the
// simulation advances until target is reached or a signature repeats; on a
// repeat at step i of step j it executes (target−i) mod (i−j) more steps.
//
// Errors: ErrNegativeTarget, ErrNilStep, a wrapped signature error when the
// default signature cannot hash T, or the context error on cancellation.
func Run[T any](sim Simulation[T], target int64, opts ...Option) (T, Report, error) {
	cfg := buildOptions(opts)
	d, err := newDetector(sim, cfg, target)
	if err != nil {
		return sim.Initial, Report{}, err
	}
	if target == 0 {
		return sim.Initial, Report{}, nil
	}

	ctx, span := tracer.Start(cfg.Ctx, "cycle.Run")
	defer span.End()
	started := time.Now()

	cur, err := d.advance(target, false, nil)
	if err == nil && d.rep.Found {
		rem := (target - d.at) % d.rep.Length
		cur, err = d.raw(cur, rem)
	}

	d.finish(ctx, span, "run", started, err)
	return cur, d.rep, err
}

// Extrapolate returns measure evaluated on the configuration after target
// steps. measure is applied to every simulated configuration, the initial one
// included. Once a repeat from step j to step i is found, the measure is
// assumed to grow by measure(i) − measure(j) per period, as tower heights
// and running totals do; only signatures decide when the repeat happens.
//
// Errors are those of Run.
func Extrapolate[T any](sim Simulation[T], target int64, measure func(T) int64, opts ...Option) (int64, Report, error) {
	cfg := buildOptions(opts)
	d, err := newDetector(sim, cfg, target)
	if err != nil {
		return 0, Report{}, err
	}
	if measure == nil {
		return 0, Report{}, ErrNilMeasure
	}

	ctx, span := tracer.Start(cfg.Ctx, "cycle.Extrapolate")
	defer span.End()
	started := time.Now()

	values := []int64{measure(sim.Initial)}
	_, err = d.advance(target, false, func(c T) { values = append(values, measure(c)) })

	var out int64
	switch {
	case err != nil:
	case d.rep.Found:
		j, i := d.rep.Start, d.at
		periods := (target - i) / d.rep.Length
		rem := (target - i) % d.rep.Length
		out = values[j+rem] + (periods+1)*(values[i]-values[j])
	default:
		out = values[len(values)-1]
	}

	d.finish(ctx, span, "extrapolate", started, err)
	return out, d.rep, err
}

// Detect simulates at most limit steps and reports the first repeat.
// Returns ErrNoCycle, alongside a Report with Found == false, when every
// configuration within limit steps is distinct.
func Detect[T any](sim Simulation[T], limit int64, opts ...Option) (Report, error) {
	cfg := buildOptions(opts)
	d, err := newDetector(sim, cfg, limit)
	if err != nil {
		return Report{}, err
	}

	ctx, span := tracer.Start(cfg.Ctx, "cycle.Detect")
	defer span.End()
	started := time.Now()

	_, err = d.advance(limit, true, nil)
	if err == nil && !d.rep.Found {
		err = fmt.Errorf("%w: %d steps", ErrNoCycle, limit)
	}

	d.finish(ctx, span, "detect", started, err)
	return d.rep, err
}

// detector owns the signature history of one call.
type detector[T any] struct {
	sim     Simulation[T]
	cfg     Options
	sig     func(T) (uint64, error)
	history map[uint64]int64
	target  int64
	at      int64 // steps simulated before the fast-forward
	rep     Report
}

func newDetector[T any](sim Simulation[T], cfg Options, target int64) (*detector[T], error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	if sim.Step == nil {
		return nil, ErrNilStep
	}
	d := &detector[T]{sim: sim, cfg: cfg, target: target, history: make(map[uint64]int64, 256)}
	if sim.Signature != nil {
		d.sig = func(c T) (uint64, error) { return sim.Signature(c), nil }
	} else {
		d.sig = func(c T) (uint64, error) { return signature.Of(c) }
	}
	return d, nil
}

// advance steps from Initial until target steps are done or a signature
// repeats. observe, if non-nil, sees every configuration after its step.
// The configuration at target is hashed only when checkLast is set; Run
// already holds its answer there.
func (d *detector[T]) advance(target int64, checkLast bool, observe func(T)) (T, error) {
	cur := d.sim.Initial
	if target == 0 {
		return cur, nil
	}
	h, err := d.sig(cur)
	if err != nil {
		return cur, err
	}
	d.history[h] = 0

	for d.at < target {
		if err = d.cfg.Ctx.Err(); err != nil {
			return cur, err
		}
		cur = d.sim.Step(cur)
		d.at++
		d.rep.Executed++
		if observe != nil {
			observe(cur)
		}
		if d.at == target && !checkLast {
			break
		}

		if h, err = d.sig(cur); err != nil {
			return cur, err
		}
		if j, seen := d.history[h]; seen {
			d.rep.Found = true
			d.rep.Start = j
			d.rep.Length = d.at - j
			if d.cfg.Logger != nil {
				d.cfg.Logger.Debug("cycle detected",
					slog.Int64("start", j),
					slog.Int64("length", d.rep.Length),
					slog.Int64("target", target),
				)
			}
			return cur, nil
		}
		d.history[h] = d.at
	}
	return cur, nil
}

// raw executes n steps without recording signatures.
func (d *detector[T]) raw(cur T, n int64) (T, error) {
	for k := int64(0); k < n; k++ {
		if err := d.cfg.Ctx.Err(); err != nil {
			return cur, err
		}
		cur = d.sim.Step(cur)
		d.rep.Executed++
	}
	return cur, nil
}

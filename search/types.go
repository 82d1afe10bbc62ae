package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Shortest and Distances.
var (
	// ErrNoPath indicates that no goal state is reachable from the seeds.
	ErrNoPath = errors.New("search: no path to a goal state")

	// ErrNoSeeds indicates that Problem.Seeds is empty.
	ErrNoSeeds = errors.New("search: problem has no seed states")

	// ErrNilExpand indicates that Problem.Expand is nil.
	ErrNilExpand = errors.New("search: expand function is nil")

	// ErrNilGoal indicates that Shortest was called without Problem.Goal.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNegativeCost indicates a negative step cost, detected only when
	// WithStrictCosts is set.
	ErrNegativeCost = errors.New("search: negative step cost encountered")

	// ErrStateLimit indicates that the search finalized more states than the
	// WithMaxStates budget allows.
	ErrStateLimit = errors.New("search: state limit exceeded")

	// ErrBadMaxStates indicates a negative WithMaxStates value.
	ErrBadMaxStates = errors.New("search: MaxStates must be non-negative")
)

// Cost is the numeric type of edge weights and path costs.
type Cost interface {
	constraints.Integer | constraints.Float
}

// Step is one outgoing edge produced by Problem.Expand: the successor state
// and the incremental cost of moving to it. Cost must be non-negative.
type Step[S comparable, C Cost] struct {
	To   S
	Cost C
}

// Seed is an initial frontier entry. Multiple seeds model multi-source
// searches (every 'a' cell is a start); Cost lets seeds start unequal.
type Seed[S comparable, C Cost] struct {
	State S
	Cost  C
}

// Problem is the caller's description of an implicit graph.
//
// Two equal states must expand identically: anything that influences future
// moves (facing, run length, collected keys, time modulo a period) belongs in
// S. The engine never inspects S beyond equality and hashing.
type Problem[S comparable, C Cost] struct {
	// Seeds are the start states. Required.
	Seeds []Seed[S, C]

	// Expand returns the successors of a state. Required. The engine does not
	// retain the returned slice, so it may be reused between calls.
	Expand func(S) []Step[S, C]

	// Goal reports whether a state ends the search. Required by Shortest,
	// ignored by Distances.
	Goal func(S) bool

	// TieBreak, if non-nil, orders entries of equal priority: it returns true
	// when a should pop before b. It must be a strict weak order.
	TieBreak func(a, b S) bool

	// Heuristic, if non-nil, turns the search into A*. It must be consistent
	// (h(u) ≤ cost(u,v) + h(v)) and zero at goals, or optimality is lost.
	Heuristic func(S) C

	// OnFinalize, if non-nil, is called once per state in finalization order
	// with its optimal cost.
	OnFinalize func(S, C)
}

// Result is the outcome of Shortest.
type Result[S comparable, C Cost] struct {
	// Cost is the optimal cost of reaching any goal.
	Cost C

	// Goal is the first goal state popped.
	Goal S

	// Goals lists every goal reached at the optimal cost, in pop order. Without
	// WithAllPaths it holds exactly Goal.
	Goals []S

	// Path is one optimal path from a seed to Goal, both inclusive. Nil unless
	// WithPath or WithAllPaths is set.
	Path []S

	// OnPath is the provenance set: every state on at least one optimal path to
	// any goal in Goals. Nil unless WithAllPaths is set.
	OnPath map[S]struct{}

	// Expanded counts finalized states.
	Expanded int
}

// Options configures Shortest and Distances.
type Options struct {
	Ctx         context.Context // checked once per pop; default Background
	Logger      *slog.Logger    // nil disables logging
	RecordPath  bool            // keep one predecessor per state
	AllPaths    bool            // keep every equal-cost predecessor
	MaxStates   int             // 0 = unlimited
	StrictCosts bool            // reject negative step costs

	err error // recorded by invalid options, surfaced by the entry points
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the zero-configuration Options: background context,
// no logging, cost only, no state limit, no cost validation.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context polled for cancellation between pops.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger enables a Debug record summarizing each run.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithPath records a predecessor per state so Result.Path can be rebuilt.
func WithPath() Option {
	return func(o *Options) { o.RecordPath = true }
}

// WithAllPaths collects the provenance set of all optimal paths. It implies
// WithPath.
func WithAllPaths() Option {
	return func(o *Options) {
		o.AllPaths = true
		o.RecordPath = true
	}
}

// WithMaxStates aborts the search with ErrStateLimit once more than n states
// would be finalized. n == 0 removes the limit; n < 0 is rejected with
// ErrBadMaxStates.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxStates, n)
			return
		}
		o.MaxStates = n
	}
}

// WithStrictCosts validates every step cost and fails with ErrNegativeCost on
// the first negative one. Meant for debugging new Expand functions.
func WithStrictCosts() Option {
	return func(o *Options) { o.StrictCosts = true }
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}

package search

import (
	"container/heap"
	"fmt"
	"log/slog"
	"time"
)

// Shortest computes the minimum cost of reaching any state satisfying
// p.Goal from p.Seeds.
//
// Returns:
//
//   - res: the optimal cost and first goal; Path when WithPath is set; Goals
//     and OnPath (union of every optimal path) when WithAllPaths is set.
//   - err: ErrNoPath when no goal is reachable (res.Expanded is still filled),
//     a validation sentinel for a malformed Problem or option, ErrStateLimit,
//     ErrNegativeCost (strict mode), or the context error on cancellation.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxStates).
//  2. p.Seeds must be non-empty (ErrNoSeeds).
//  3. p.Expand must be non-nil (ErrNilExpand).
//  4. p.Goal must be non-nil (ErrNilGoal).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Shortest[S comparable, C Cost](p Problem[S, C], opts ...Option) (Result[S, C], error) {
	// 1) Build and validate Options and the Problem.
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result[S, C]{}, err
	}
	if err = p.validate(true); err != nil {
		return Result[S, C]{}, err
	}

	// 2) Trace and time the run.
	ctx, span := startSpan(cfg.Ctx, "search.Shortest")
	defer span.End()
	started := time.Now()

	// 3) Seed the frontier and run the main loop until the optimum is settled.
	r := newRunner(p, cfg)
	r.init()
	res, err := r.shortest()
	res.Expanded = r.expanded

	// 4) Report.
	found := err == nil
	recordRun(ctx, "shortest", time.Since(started), r.expanded, found)
	endSpan(span, r.expanded, found, err)
	if cfg.Logger != nil {
		cfg.Logger.Debug("search finished",
			slog.String("mode", "shortest"),
			slog.Int("expanded", r.expanded),
			slog.Int("frontier_left", r.pq.Len()),
			slog.Bool("found", found),
			slog.Any("cost", res.Cost),
			slog.Int("goals", len(res.Goals)),
			slog.Duration("elapsed", time.Since(started)),
		)
	}

	return res, err
}

// Distances floods the state space reachable from p.Seeds and returns the
// optimal cost of every reachable state. p.Goal and the path options are
// ignored; WithMaxStates, WithContext, WithStrictCosts and WithLogger apply.
func Distances[S comparable, C Cost](p Problem[S, C], opts ...Option) (map[S]C, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = p.validate(false); err != nil {
		return nil, err
	}
	cfg.RecordPath, cfg.AllPaths = false, false

	ctx, span := startSpan(cfg.Ctx, "search.Distances")
	defer span.End()
	started := time.Now()

	r := newRunner(p, cfg)
	r.init()
	err = r.flood()

	recordRun(ctx, "distances", time.Since(started), r.expanded, err == nil)
	endSpan(span, r.expanded, err == nil, err)
	if cfg.Logger != nil {
		cfg.Logger.Debug("search finished",
			slog.String("mode", "distances"),
			slog.Int("expanded", r.expanded),
			slog.Duration("elapsed", time.Since(started)),
		)
	}
	if err != nil {
		return nil, err
	}

	dist := make(map[S]C, r.expanded)
	for s, rec := range r.records {
		if rec.done {
			dist[s] = rec.cost
		}
	}
	return dist, nil
}

// validate checks the Problem's required fields.
func (p Problem[S, C]) validate(needGoal bool) error {
	if len(p.Seeds) == 0 {
		return ErrNoSeeds
	}
	if p.Expand == nil {
		return ErrNilExpand
	}
	if needGoal && p.Goal == nil {
		return ErrNilGoal
	}
	return nil
}

// record is the engine's per-state bookkeeping: best known cost, whether that
// cost is final, and the predecessors that achieve it.
type record[S comparable, C Cost] struct {
	cost      C    // best cost seen so far; optimal once done
	done      bool // finalized: popped at cost, never revisited
	parent    S    // one predecessor on an optimal path (RecordPath)
	hasParent bool // false for seeds
	preds     []S  // every equal-cost predecessor (AllPaths)
}

// runner holds the mutable state for a single search execution.
type runner[S comparable, C Cost] struct {
	p        Problem[S, C]
	cfg      Options
	records  map[S]*record[S, C] // the visited set: state → best cost / finalized flag
	pq       frontier[S, C]      // min-heap of pending entries, lazily pruned
	seq      uint64              // insertion counter for deterministic ties
	expanded int                 // number of finalized states
}

func newRunner[S comparable, C Cost](p Problem[S, C], cfg Options) *runner[S, C] {
	return &runner[S, C]{
		p:       p,
		cfg:     cfg,
		records: make(map[S]*record[S, C], 64),
		pq:      frontier[S, C]{tieBreak: p.TieBreak},
	}
}

// init pushes every seed. A state seeded twice keeps its cheapest cost.
func (r *runner[S, C]) init() {
	heap.Init(&r.pq)
	for _, sd := range r.p.Seeds {
		if rec, ok := r.records[sd.State]; ok && rec.cost <= sd.Cost {
			continue
		}
		r.records[sd.State] = &record[S, C]{cost: sd.Cost}
		r.push(sd.State, sd.Cost)
	}
}

// push adds a frontier entry with priority cost (+ heuristic).
func (r *runner[S, C]) push(s S, cost C) {
	prio := cost
	if r.p.Heuristic != nil {
		prio += r.p.Heuristic(s)
	}
	r.seq++
	heap.Push(&r.pq, &item[S, C]{state: s, cost: cost, priority: prio, seq: r.seq})
}

// pop returns the next live entry, skipping stale ones: entries for states
// already finalized, or superseded by a cheaper push. ok is false once the
// frontier is exhausted.
func (r *runner[S, C]) pop() (it *item[S, C], rec *record[S, C], ok bool) {
	for r.pq.Len() > 0 {
		it = heap.Pop(&r.pq).(*item[S, C])
		rec = r.records[it.state]
		if rec.done || it.cost > rec.cost {
			continue
		}
		return it, rec, true
	}
	return nil, nil, false
}

// finalize marks rec optimal, fires OnFinalize and enforces MaxStates.
func (r *runner[S, C]) finalize(it *item[S, C], rec *record[S, C]) error {
	if r.cfg.MaxStates > 0 && r.expanded >= r.cfg.MaxStates {
		return fmt.Errorf("%w: %d states finalized", ErrStateLimit, r.expanded)
	}
	rec.done = true
	r.expanded++
	if r.p.OnFinalize != nil {
		r.p.OnFinalize(it.state, it.cost)
	}
	return nil
}

// shortest is the goal-directed main loop.
//
// Loop termination conditions:
//
//   - The first goal is popped (default mode).
//   - In all-paths mode, an entry with priority above the optimal goal cost is
//     popped, since every later entry is at least as expensive.
//   - The frontier is exhausted (ErrNoPath if no goal was found).
func (r *runner[S, C]) shortest() (Result[S, C], error) {
	var res Result[S, C]
	found := false
	for {
		// 1) Cancellation check, once per pop.
		if err := r.cfg.Ctx.Err(); err != nil {
			return res, err
		}

		// 2) Pop the cheapest live entry.
		it, rec, ok := r.pop()
		if !ok {
			break
		}

		// 3) In all-paths mode, stop once we are past the optimum.
		if found && it.priority > res.Cost {
			break
		}

		// 4) Finalize: its cost is now optimal and immutable.
		if err := r.finalize(it, rec); err != nil {
			return res, err
		}

		// 5) Goal reached. Goals are recorded, never expanded.
		if r.p.Goal(it.state) {
			if !found {
				found = true
				res.Cost = it.cost
				res.Goal = it.state
			}
			res.Goals = append(res.Goals, it.state)
			if !r.cfg.AllPaths {
				break
			}
			continue
		}

		// 6) Relax outgoing steps.
		if err := r.relax(it.state, it.cost); err != nil {
			return res, err
		}
	}

	if !found {
		return res, ErrNoPath
	}
	if r.cfg.RecordPath {
		res.Path = r.pathTo(res.Goal)
	}
	if r.cfg.AllPaths {
		res.OnPath = r.provenance(res.Goals)
	}
	return res, nil
}

// flood finalizes every reachable state.
func (r *runner[S, C]) flood() error {
	for {
		if err := r.cfg.Ctx.Err(); err != nil {
			return err
		}
		it, rec, ok := r.pop()
		if !ok {
			return nil
		}
		if err := r.finalize(it, rec); err != nil {
			return err
		}
		if err := r.relax(it.state, it.cost); err != nil {
			return err
		}
	}
}

// relax examines each step out of u (finalized at cost d) and improves the
// successors' best costs.
//
//   - Strictly cheaper: overwrite cost, reset predecessors, push a new entry;
//     the old entry goes stale.
//   - Equal cost: u is an alternative optimal predecessor; record it without
//     pushing. This is how provenance of tied paths is shared instead of
//     cloned per entry.
//   - Costlier, or the successor is already finalized: ignore.
func (r *runner[S, C]) relax(u S, d C) error {
	for _, st := range r.p.Expand(u) {
		if r.cfg.StrictCosts && st.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, u, st.To, st.Cost)
		}
		nd := d + st.Cost

		rec, seen := r.records[st.To]
		switch {
		case !seen:
			rec = &record[S, C]{cost: nd}
			r.records[st.To] = rec
			r.link(rec, u, true)
			r.push(st.To, nd)
		case nd < rec.cost && !rec.done:
			rec.cost = nd
			r.link(rec, u, true)
			r.push(st.To, nd)
		case nd == rec.cost:
			r.link(rec, u, false)
		}
	}
	return nil
}

// link records u as a predecessor of rec. reset discards predecessors of a
// now-superseded cost.
func (r *runner[S, C]) link(rec *record[S, C], u S, reset bool) {
	if r.cfg.RecordPath && reset {
		rec.parent = u
		rec.hasParent = true
	}
	if !r.cfg.AllPaths {
		return
	}
	if reset {
		rec.preds = rec.preds[:0]
	}
	rec.preds = append(rec.preds, u)
}

// pathTo walks single predecessors back from s and returns seed→s.
func (r *runner[S, C]) pathTo(s S) []S {
	path := []S{s}
	for rec := r.records[s]; rec.hasParent; rec = r.records[rec.parent] {
		path = append(path, rec.parent)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// provenance returns every state from which some goal in goals is reached
// along equal-cost predecessor links, goals included. With zero-cost cycles
// the set covers optimal walks, not only simple paths.
func (r *runner[S, C]) provenance(goals []S) map[S]struct{} {
	on := make(map[S]struct{}, len(goals)*8)
	stack := append([]S(nil), goals...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := on[s]; ok {
			continue
		}
		on[s] = struct{}{}
		stack = append(stack, r.records[s].preds...)
	}
	return on
}

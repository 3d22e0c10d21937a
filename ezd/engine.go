// Package ezd — the recursive partition engine.
//
// The engine walks an explicit work list of (domain, remaining-depth) items
// in depth-first order (a stack, not language-level recursion, so parallel
// fan-out needs no call-stack gymnastics). Per cell:
//
//  1. Classify feasibility via the constraint set; certainly-infeasible
//     cells are pruned outright and contribute nothing.
//  2. Sample the energy at the cell's fixed interior reference points
//     (centroid + inward-offset face points, normalized onto the simplex),
//     skipping undefined samples and, unless the cell is certainly
//     feasible, samples that fail the point-level constraint check.
//  3. Prune the cell when its best feasible sample exceeds the running
//     best bound by more than the cell's own sample spread plus tolerance:
//     the spread estimates the internal variation the cell can still hide.
//  4. Otherwise split along the widest axis (ties: sublattice index, then
//     site index) while depth remains, or emit the best sample as a
//     candidate tagged with the cell's width.
//
// The running best bound is shared through an atomic min scalar: a stale
// (too-high) read only delays a prune, never removes a true minimum, which
// is exactly the relaxed semantics the data-parallel variant needs.
package ezd

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gitter-badger/pycalphad/composition"
	"github.com/gitter-badger/pycalphad/energy"
	"github.com/gitter-badger/pycalphad/sublattice"
)

// minBound is a monotonically decreasing atomic float64: the best (lowest)
// feasible energy seen anywhere in the search.
type minBound struct {
	bits atomic.Uint64
}

func newMinBound() *minBound {
	var b minBound
	b.bits.Store(math.Float64bits(math.Inf(1)))

	return &b
}

// load returns the current bound (never worse than the true best).
func (b *minBound) load() float64 { return math.Float64frombits(b.bits.Load()) }

// update lowers the bound to x if x improves it (CAS loop, lock free).
func (b *minBound) update(x float64) {
	for {
		old := b.bits.Load()
		if x >= math.Float64frombits(old) {
			return
		}
		if b.bits.CompareAndSwap(old, math.Float64bits(x)) {
			return
		}
	}
}

// lowestSample tracks the lowest defined feasible sample seen anywhere in
// the search, together with the point and the width of the cell that
// produced it. A well narrower than the leaf resolution can set the bound
// and then prune every leaf against itself; the recorded sample is the
// fallback candidate for that case.
type lowestSample struct {
	mu     sync.Mutex
	ok     bool
	point  composition.Point
	energy float64
	width  float64
}

// update records s if it improves the lowest energy seen so far.
func (l *lowestSample) update(s cellSample, width float64) {
	l.mu.Lock()
	if !l.ok || s.energy < l.energy {
		l.ok, l.point, l.energy, l.width = true, s.point, s.energy, width
	}
	l.mu.Unlock()
}

// candidate returns the recorded sample as a Candidate.
func (l *lowestSample) candidate() (Candidate, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.ok {
		return Candidate{}, false
	}

	return Candidate{
		Point:     l.point,
		Energy:    round1e9(l.energy),
		Width:     l.width,
		Curvature: math.NaN(),
	}, true
}

// workItem is one pending cell with its remaining depth budget.
type workItem struct {
	dom       composition.Domain
	depthLeft int
}

// engine carries the per-run state of one (sequential) search worker.
// Workers running in parallel share only the bound, the lowest-sample
// tracker and the sample counters.
type engine struct {
	sampler energy.Sampler
	set     *sublattice.Set
	cond    energy.Conditions
	opts    Options

	bound  *minBound
	lowest *lowestSample

	// Shared sample accounting for the configuration-error verdict:
	// checked counts samples that passed the constraint check, defined
	// counts those the model could also evaluate.
	checked *atomic.Int64
	defined *atomic.Int64

	// Soft time budget (sparse checks, one per 1024 cell events).
	useDeadline bool
	deadline    time.Time
	steps       int

	out []Candidate
}

// deadlineCheck performs a rare deadline test.
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&1023) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// cellSample is one evaluated interior point of a cell.
type cellSample struct {
	point  composition.Point
	energy float64
	// centroidDist breaks energy ties toward the cell centroid: a centroid
	// sample is more representative of a well than a boundary artifact.
	centroidDist float64
}

// sampleCell evaluates the cell's interior reference points and returns the
// best sample plus the spread (max-min) of all defined feasible samples.
// ok is false when the cell yielded no usable sample (prune, not an error).
// A non-sentinel sampler failure aborts the search.
func (e *engine) sampleCell(dom composition.Domain, class sublattice.Feasibility) (best cellSample, spread float64, ok bool, err error) {
	var (
		centroid = dom.Centroid().Normalize()
		lowest   = math.Inf(1)
		highest  = math.Inf(-1)
		g        float64
		d        float64
	)
	for _, raw := range dom.InteriorSamples(e.opts.Offset) {
		p := raw.Normalize()
		if class != sublattice.Feasible && !e.set.FeasiblePoint(p) {
			continue
		}
		e.checked.Add(1)
		g, err = e.sampler.Energy(p, e.cond)
		if err != nil {
			if errors.Is(err, energy.ErrUndefined) {
				err = nil
				continue // recoverable: skip this sample
			}
			return cellSample{}, 0, false, err
		}
		e.defined.Add(1)
		if d, err = p.Dist(centroid); err != nil {
			return cellSample{}, 0, false, err
		}
		if g < lowest {
			lowest = g
		}
		if g > highest {
			highest = g
		}
		switch {
		case !ok:
			best, ok = cellSample{point: p, energy: g, centroidDist: d}, true
		case g < best.energy-e.opts.tol(best.energy):
			best = cellSample{point: p, energy: g, centroidDist: d}
		case math.Abs(g-best.energy) <= e.opts.tol(best.energy) && d < best.centroidDist:
			// Equal within tolerance: prefer the sample nearer the centroid.
			best = cellSample{point: p, energy: g, centroidDist: d}
		}
	}
	if ok {
		spread = highest - lowest
	}

	return best, spread, ok, nil
}

// run drains the work list depth-first and collects candidates into e.out.
// Returns ErrTimeLimit when the soft budget elapses mid-search.
func (e *engine) run(root workItem) error {
	stack := []workItem{root}
	var (
		item  workItem
		class sublattice.Feasibility
		width float64
	)
	for len(stack) > 0 {
		item = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if e.deadlineCheck() {
			return ErrTimeLimit
		}

		// (a) Certainly-infeasible cells are discarded immediately.
		class = e.set.Classify(item.dom)
		if class == sublattice.Infeasible {
			continue
		}

		// (b) Sample interior reference points.
		best, spread, ok, serr := e.sampleCell(item.dom, class)
		if serr != nil {
			return serr
		}
		if !ok {
			continue // entirely infeasible or entirely undefined: prune
		}

		// (c) Prune against the shared best bound. The cell's spread bounds
		// the variation its interior can still hide from the samples.
		width = item.dom.Width()
		e.bound.update(best.energy)
		e.lowest.update(best, width)
		if best.energy > e.bound.load()+spread+e.opts.tol(best.energy) {
			continue
		}

		// (d)/(e) Split while budget and width remain, otherwise emit.
		if item.depthLeft <= 0 || width <= e.opts.ResolutionFloor {
			e.emit(best, width)
			continue
		}
		left, right, splitErr := item.dom.Split()
		if splitErr != nil {
			// Collapsed on every axis before the depth limit: emit the
			// centroid sample instead of splitting further.
			e.emit(best, width)
			continue
		}
		// LIFO: push right first so the left child is explored first.
		stack = append(stack, workItem{dom: right, depthLeft: item.depthLeft - 1})
		stack = append(stack, workItem{dom: left, depthLeft: item.depthLeft - 1})
	}

	return nil
}

// emit records one accepted candidate.
func (e *engine) emit(best cellSample, width float64) {
	e.out = append(e.out, Candidate{
		Point:     best.point,
		Energy:    round1e9(best.energy),
		Width:     width,
		Curvature: math.NaN(),
	})
}

// roundScale stabilizes reported energies at 1e-9 absolute precision,
// preventing cross-platform FP drift from leaking into output ordering.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

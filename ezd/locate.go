// Package ezd - unified entry point for EZD global minimization.
//
// LocateMinima is the single operation the downstream equilibrium solver
// consumes. It validates the collaborator handles, builds the initial
// feasible hyper-rectangle from the constraint set, runs the partition
// engine (sequentially, or fanned out over sibling cells when MaxWorkers
// allows), merges near-duplicate candidates, and returns the canonical,
// energy-ascending candidate set.
//
// Design principles:
//   - Strict sentinels: only errors from types.go on the public surface.
//   - Deterministic output: canonical sort + stabilized energies; the
//     sequential execution model reproduces bit-identical candidate sets
//     for identical inputs.
//   - No side effects: abandoning the call (time limit) leaves no external
//     state behind; domains and candidates are purely local values.
package ezd

import (
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gitter-badger/pycalphad/energy"
	"github.com/gitter-badger/pycalphad/sublattice"
)

// LocateMinima locates candidate minima of the phase's energy surface over
// the feasible composition space described by set, under fixed conditions.
//
// Returns the candidate set sorted by energy ascending (point-lexicographic
// tiebreak), or:
//   - ErrNilSampler / ErrNilConstraints / ErrBadDepth / ErrBadOption on
//     malformed inputs,
//   - ErrInfeasible when the constraint set admits no feasible sample
//     anywhere in the initial domain (configuration error),
//   - ErrAllUndefined when every feasible sample was undefined,
//   - ErrTimeLimit when the soft time budget elapsed.
//
// Complexity: O(2^Depth) cells worst case, a constant number of energy
// evaluations per cell; pruning removes most cells on smooth surfaces.
func LocateMinima(sampler energy.Sampler, set *sublattice.Set, cond energy.Conditions, opts Options) ([]Candidate, error) {
	if err := validateInputs(sampler, set, opts); err != nil {
		return nil, err
	}

	initial, err := set.InitialDomain()
	if err != nil {
		if errors.Is(err, sublattice.ErrContradiction) {
			// Eagerly detected empty feasible region: same verdict as the
			// lazy no-feasible-sample path.
			return nil, ErrInfeasible
		}
		return nil, err
	}

	// Shared run state: monotone best bound, best-sample fallback and
	// sample accounting. The soft deadline is captured once here so every
	// worker, however late it starts, enforces the same budget.
	var (
		bound       = newMinBound()
		lowest      = &lowestSample{}
		checked     atomic.Int64
		defined     atomic.Int64
		cands       []Candidate
		useDeadline bool
		deadline    time.Time
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}

	newWorker := func() *engine {
		return &engine{
			sampler:     sampler,
			set:         set,
			cond:        cond,
			opts:        opts,
			bound:       bound,
			lowest:      lowest,
			checked:     &checked,
			defined:     &defined,
			useDeadline: useDeadline,
			deadline:    deadline,
		}
	}

	root := workItem{dom: initial, depthLeft: opts.Depth}
	if opts.MaxWorkers > 1 && opts.Depth > 0 {
		cands, err = runParallel(newWorker, root, opts)
	} else {
		w := newWorker()
		err = w.run(root)
		cands = w.out
	}
	if err != nil {
		return nil, err
	}

	if len(cands) == 0 {
		if checked.Load() == 0 {
			return nil, ErrInfeasible
		}
		if defined.Load() == 0 {
			return nil, ErrAllUndefined
		}
		// Feasible, defined samples existed but every leaf was pruned
		// against the shared bound: a well narrower than the leaf
		// resolution set the bound and then beat every other cell. The
		// bound-setting sample is a valid minimum estimate; report it.
		fallback, ok := lowest.candidate()
		if !ok {
			return nil, ErrInfeasible
		}
		cands = []Candidate{fallback}
	}

	cands = mergeCandidates(cands, opts)
	if opts.Refine {
		cands = refineCandidates(sampler, set, cond, cands, opts)
		// Coarse candidates from distinct cells can polish into the same
		// well; merge the converged duplicates away.
		cands = mergeCandidates(cands, opts)
	}
	if opts.Curvature {
		attachCurvature(sampler, cond, cands)
	}
	sortCandidates(cands)

	return cands, nil
}

// runParallel expands the root into a deterministic frontier of sibling
// cells (level-order bisection) and evaluates them concurrently, capped at
// opts.MaxWorkers in-flight workers. Workers share the atomic best bound;
// results are collected per frontier slot, so the merged output order is
// independent of goroutine scheduling.
func runParallel(newWorker func() *engine, root workItem, opts Options) ([]Candidate, error) {
	items := expandFrontier(root, opts)

	var (
		g       errgroup.Group
		results = make([][]Candidate, len(items))
	)
	g.SetLimit(opts.MaxWorkers)
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			w := newWorker()
			if err := w.run(it); err != nil {
				return err
			}
			results[i] = w.out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Candidate
	for _, r := range results {
		out = append(out, r...)
	}

	return out, nil
}

// expandFrontier bisects work items level by level until at least
// MaxWorkers siblings exist or nothing can be split further. Intermediate
// cells are not sampled here: skipping their prune checks only costs work,
// it cannot drop a candidate.
func expandFrontier(root workItem, opts Options) []workItem {
	items := []workItem{root}
	for len(items) < opts.MaxWorkers {
		var (
			next       = make([]workItem, 0, 2*len(items))
			progressed bool
		)
		for _, it := range items {
			if it.depthLeft <= 0 || it.dom.Width() <= opts.ResolutionFloor {
				next = append(next, it)
				continue
			}
			left, right, err := it.dom.Split()
			if err != nil {
				next = append(next, it)
				continue
			}
			next = append(next, workItem{dom: left, depthLeft: it.depthLeft - 1},
				workItem{dom: right, depthLeft: it.depthLeft - 1})
			progressed = true
		}
		items = next
		if !progressed {
			break
		}
	}

	return items
}

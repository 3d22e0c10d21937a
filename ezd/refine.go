// Package ezd - optional local polish of accepted candidates.
//
// The partition engine reports one representative sample per surviving
// leaf cell; with Options.Refine enabled each representative is pushed to
// the bottom of its well by a derivative-free Nelder–Mead descent, still
// confined to the accepting region and re-checked against the constraint
// set. A candidate is only replaced when the polished point is feasible
// and strictly better; any optimizer failure keeps the original.
package ezd

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/gitter-badger/pycalphad/composition"
	"github.com/gitter-badger/pycalphad/energy"
	"github.com/gitter-badger/pycalphad/sublattice"
)

// refineMaxIters caps the Nelder–Mead major iterations per candidate.
const refineMaxIters = 200

// refineCandidates polishes every candidate in place.
func refineCandidates(s energy.Sampler, set *sublattice.Set, cond energy.Conditions, cands []Candidate, opts Options) []Candidate {
	for i := range cands {
		cands[i] = refineOne(s, set, cond, cands[i], opts)
	}

	return cands
}

// refineOne runs one bounded Nelder–Mead descent from the candidate point.
// The search box is the accepting cell's width around the point, clipped to
// [0,1]; leaving the box, the constraint set, or the model's definition
// range walls the objective at +Inf (Nelder–Mead contracts away from it).
func refineOne(s energy.Sampler, set *sublattice.Set, cond energy.Conditions, c Candidate, opts Options) Candidate {
	var (
		shape = c.Point.Shape()
		x0    = c.Point.Flatten()
		half  = c.Width
		lo    = make([]float64, len(x0))
		hi    = make([]float64, len(x0))
	)
	if half < opts.ResolutionFloor {
		half = opts.ResolutionFloor
	}
	for i, x := range x0 {
		lo[i] = math.Max(0, x-half)
		hi[i] = math.Min(1, x+half)
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			for i := range x {
				if x[i] < lo[i] || x[i] > hi[i] {
					return math.Inf(1)
				}
			}
			p, err := composition.Unflatten(shape, x)
			if err != nil {
				return math.Inf(1)
			}
			p = p.Normalize()
			if !set.FeasiblePoint(p) {
				return math.Inf(1)
			}
			g, err := s.Energy(p, cond)
			if err != nil {
				return math.Inf(1)
			}

			return g
		},
	}
	settings := &optimize.Settings{MajorIterations: refineMaxIters}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil || result == nil {
		return c
	}

	p, uerr := composition.Unflatten(shape, result.X)
	if uerr != nil {
		return c
	}
	p = p.Normalize()
	if !set.FeasiblePoint(p) {
		return c
	}
	g, gerr := s.Energy(p, cond)
	if gerr != nil {
		return c
	}
	if g < c.Energy-opts.tol(c.Energy) {
		c.Point = p
		c.Energy = round1e9(g)
	}

	return c
}

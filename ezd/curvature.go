// Package ezd - convexity estimation of accepted candidates.
//
// The smallest eigenvalue of the energy Hessian at a candidate separates
// genuine wells (positive: locally convex) from saddle points and boundary
// artifacts (negative), which the downstream hull construction weighs when
// choosing refinement starting points.
package ezd

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gitter-badger/pycalphad/composition"
	"github.com/gitter-badger/pycalphad/energy"
)

// attachCurvature fills Candidate.Curvature in place for every candidate.
// Failures (undefined perturbed evaluations, factorization breakdown)
// leave NaN; curvature is advisory, never a reason to fail the call.
func attachCurvature(s energy.Sampler, cond energy.Conditions, cands []Candidate) {
	for i := range cands {
		cands[i].Curvature = minEigenvalue(s, cands[i].Point, cond)
	}
}

// minEigenvalue returns the smallest eigenvalue of the finite-difference
// Hessian of s at p, or NaN when it cannot be computed.
//
// Complexity: O(n²) energy evaluations + O(n³) for the factorization.
func minEigenvalue(s energy.Sampler, p composition.Point, cond energy.Conditions) float64 {
	hess, err := energy.Hessian(s, p, cond, 0)
	if err != nil {
		return math.NaN()
	}
	var eig mat.EigenSym
	if !eig.Factorize(hess, false) {
		return math.NaN()
	}
	var (
		vals = eig.Values(nil)
		best = math.Inf(1)
	)
	for _, v := range vals {
		if v < best {
			best = v
		}
	}
	if math.IsInf(best, 0) {
		return math.NaN()
	}

	return best
}

// Package sublattice - constraint evaluation: set validation, initial-domain
// construction, point-level feasibility and three-valued domain
// classification by interval arithmetic.
//
// Design principles:
//   - Deterministic, side-effect free, no hidden allocations in hot loops.
//   - Strict sentinels from types.go; no panics on user input.
//   - Classification is conservative: Infeasible/Feasible only when provable
//     for every point of the domain, otherwise Mixed (spec'd fallback).
package sublattice

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gitter-badger/pycalphad/composition"
)

// Shape returns the composition-space layout implied by the sublattices.
func (s *Set) Shape() composition.Shape {
	shape := make(composition.Shape, len(s.Sublattices))
	for i, subl := range s.Sublattices {
		shape[i] = len(subl.Species)
	}

	return shape
}

// Validate checks structural invariants of the set.
//
// Errors: ErrEmptySet, ErrBadRatio, ErrBadBound, ErrBadConstraint.
//
// Complexity: O(sublattices + bounds + constraints·coords).
func (s *Set) Validate() error {
	if len(s.Sublattices) == 0 {
		return ErrEmptySet
	}
	for _, subl := range s.Sublattices {
		if len(subl.Species) == 0 {
			return ErrEmptySet
		}
		if subl.Ratio <= 0 || math.IsNaN(subl.Ratio) || math.IsInf(subl.Ratio, 0) {
			return ErrBadRatio
		}
	}
	shape := s.Shape()
	for _, b := range s.Bounds {
		if b.Subl < 0 || b.Subl >= len(shape) || b.Site < 0 || b.Site >= shape[b.Subl] {
			return ErrBadBound
		}
		if b.Lo < 0 || b.Hi > 1 || b.Lo > b.Hi || math.IsNaN(b.Lo) || math.IsNaN(b.Hi) {
			return ErrBadBound
		}
	}
	size := shape.Size()
	for _, c := range s.Linear {
		if len(c.Coeffs) != size {
			return ErrBadConstraint
		}
	}

	return nil
}

// InitialDomain builds the maximal feasible hyper-rectangle for the phase:
// [0,1] per site-fraction axis, tightened by the set's bounds. Bounds whose
// intersection is empty surface ErrContradiction eagerly.
//
// Complexity: O(coords + bounds).
func (s *Set) InitialDomain() (composition.Domain, error) {
	if err := s.Validate(); err != nil {
		return composition.Domain{}, err
	}
	dom, err := composition.UnitDomain(s.Shape())
	if err != nil {
		return composition.Domain{}, err
	}
	for _, b := range s.Bounds {
		if b.Lo > dom.LowerLeft[b.Subl][b.Site] {
			dom.LowerLeft[b.Subl][b.Site] = b.Lo
		}
		if b.Hi < dom.UpperRight[b.Subl][b.Site] {
			dom.UpperRight[b.Subl][b.Site] = b.Hi
		}
		if dom.LowerLeft[b.Subl][b.Site] > dom.UpperRight[b.Subl][b.Site] {
			return composition.Domain{}, ErrContradiction
		}
	}

	return dom, nil
}

// FeasiblePoint reports whether the (normalized) point p satisfies every
// constraint of the set within PointTol: coordinates in [0,1], per-sublattice
// site fractions summing to 1, axis bounds, and linear constraints.
//
// Complexity: O(coords + bounds + constraints·coords).
func (s *Set) FeasiblePoint(p composition.Point) bool {
	if !s.Shape().Equal(p.Shape()) {
		return false
	}
	var (
		sum   float64
		sl, i int
	)
	for sl = range p {
		sum = 0
		for i = range p[sl] {
			if p[sl][i] < -PointTol || p[sl][i] > 1+PointTol {
				return false
			}
			sum += p[sl][i]
		}
		if math.Abs(sum-1) > PointTol {
			return false
		}
	}
	for _, b := range s.Bounds {
		v := p[b.Subl][b.Site]
		if v < b.Lo-PointTol || v > b.Hi+PointTol {
			return false
		}
	}
	if len(s.Linear) == 0 {
		return true
	}
	flat := p.Flatten()
	for _, c := range s.Linear {
		if !satisfies(floats.Dot(c.Coeffs, flat), c.Rel, c.RHS) {
			return false
		}
	}

	return true
}

// Classify performs the three-valued feasibility classification of a domain.
//
// Site fractions of points sampled from a domain are normalized per
// sublattice before evaluation, so the classification is computed over the
// normalized image of the box: each axis contributes the interval
//
//	[ lo/(lo + Σ hi_others), hi/(hi + Σ lo_others) ]
//
// which encloses every normalized value the axis can take inside the box.
// Constraints are then tested against those per-axis intervals:
//   - violated at the most favorable interval corner  → Infeasible,
//   - satisfied at the least favorable interval corner → certainly satisfied.
//
// The joint correlations between axes are deliberately discarded; that only
// widens the intervals, so Infeasible and Feasible verdicts stay sound and
// the undecidable remainder degrades to Mixed exactly as the engine expects.
//
// Complexity: O(coords + bounds + constraints·coords).
func (s *Set) Classify(d composition.Domain) Feasibility {
	if !s.Shape().Equal(d.Shape()) {
		return Infeasible
	}
	lo, hi := s.normalizedRanges(d)

	// Axis bounds against normalized ranges.
	var (
		certain = true
		offset  int
	)
	axisOffsets := make([]int, len(s.Sublattices))
	for i := range s.Sublattices {
		axisOffsets[i] = offset
		offset += len(s.Sublattices[i].Species)
	}
	for _, b := range s.Bounds {
		ax := axisOffsets[b.Subl] + b.Site
		if lo[ax] > b.Hi+PointTol || hi[ax] < b.Lo-PointTol {
			return Infeasible
		}
		if lo[ax] < b.Lo-PointTol || hi[ax] > b.Hi+PointTol {
			certain = false
		}
	}

	// Linear constraints via interval extremes.
	var worst, best float64
	for _, c := range s.Linear {
		worst, best = intervalRange(c.Coeffs, lo, hi)
		switch c.Rel {
		case LessEq:
			if worst > c.RHS+PointTol {
				return Infeasible // even the minimum exceeds rhs
			}
			if best > c.RHS+PointTol {
				certain = false
			}
		case GreaterEq:
			if best < c.RHS-PointTol {
				return Infeasible
			}
			if worst < c.RHS-PointTol {
				certain = false
			}
		case Equal:
			if worst > c.RHS+PointTol || best < c.RHS-PointTol {
				return Infeasible
			}
			if best-worst > 2*PointTol {
				certain = false
			}
		}
	}
	if certain {
		return Feasible
	}

	return Mixed
}

// normalizedRanges computes, per flattened axis, the enclosing interval of
// normalized site-fraction values over the box. A sublattice whose box is
// identically zero normalizes to the uniform fraction.
func (s *Set) normalizedRanges(d composition.Domain) (lo, hi []float64) {
	size := s.Shape().Size()
	lo = make([]float64, 0, size)
	hi = make([]float64, 0, size)
	var (
		sumLo, sumHi float64
		sl, i        int
		dmin, dmax   float64
	)
	for sl = range d.LowerLeft {
		sumLo, sumHi = 0, 0
		for i = range d.LowerLeft[sl] {
			sumLo += d.LowerLeft[sl][i]
			sumHi += d.UpperRight[sl][i]
		}
		uniform := 1.0 / float64(len(d.LowerLeft[sl]))
		for i = range d.LowerLeft[sl] {
			dmin = d.LowerLeft[sl][i] + (sumHi - d.UpperRight[sl][i])
			dmax = d.UpperRight[sl][i] + (sumLo - d.LowerLeft[sl][i])
			switch {
			case sumHi == 0:
				// Whole sublattice collapsed at zero: normalization yields uniform.
				lo = append(lo, uniform)
				hi = append(hi, uniform)
			default:
				if dmin > 0 {
					lo = append(lo, d.LowerLeft[sl][i]/dmin)
				} else {
					lo = append(lo, 0)
				}
				if dmax > 0 {
					hi = append(hi, d.UpperRight[sl][i]/dmax)
				} else {
					hi = append(hi, 1)
				}
			}
		}
	}

	return lo, hi
}

// intervalRange returns the min and max of sum(coeffs·y) over the per-axis
// intervals [lo, hi].
func intervalRange(coeffs, lo, hi []float64) (minv, maxv float64) {
	for i, c := range coeffs {
		if c >= 0 {
			minv += c * lo[i]
			maxv += c * hi[i]
		} else {
			minv += c * hi[i]
			maxv += c * lo[i]
		}
	}

	return minv, maxv
}

// satisfies tests a scalar against a relation within PointTol.
func satisfies(v float64, rel Relation, rhs float64) bool {
	switch rel {
	case LessEq:
		return v <= rhs+PointTol
	case GreaterEq:
		return v >= rhs-PointTol
	default:
		return math.Abs(v-rhs) <= PointTol
	}
}

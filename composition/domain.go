// Package composition - Domain: an axis-aligned hyper-rectangle in
// composition space, decomposed per sublattice.
//
// Domains are the unit of work of the EZD partition engine: the engine
// splits them, samples their interiors, prunes them, and emits candidates
// tagged with their width. A Domain is immutable once constructed; Split
// produces fresh children and never aliases parent storage.
//
// Invariants (established by NewDomain, preserved by Split):
//  1. LowerLeft and UpperRight share one shape.
//  2. LowerLeft[s][i] <= UpperRight[s][i] on every axis.
//  3. Zero width on any axis (a collapsed region) is valid, not an error.
package composition

import "math"

// Domain is one axis-aligned hyper-rectangular region of composition space.
// Corners are paired per-sublattice coordinate sequences of identical shape.
type Domain struct {
	// LowerLeft holds the minimal coordinate per axis.
	LowerLeft Point
	// UpperRight holds the maximal coordinate per axis.
	UpperRight Point
}

// NewDomain validates the corner pair and returns a Domain value.
//
// Errors:
//   - ErrEmptyShape when the corners carry no coordinates.
//   - ErrShapeMismatch when the corner shapes differ.
//   - ErrBadValue on NaN/±Inf coordinates.
//   - ErrCornerOrder when lower > upper on some axis.
//
// Complexity: O(n) over all coordinates.
func NewDomain(lower, upper Point) (Domain, error) {
	if !lower.Shape().Valid() {
		return Domain{}, ErrEmptyShape
	}
	if !lower.Shape().Equal(upper.Shape()) {
		return Domain{}, ErrShapeMismatch
	}
	if !lower.finite() || !upper.finite() {
		return Domain{}, ErrBadValue
	}
	var s, i int
	for s = range lower {
		for i = range lower[s] {
			if lower[s][i] > upper[s][i] {
				return Domain{}, ErrCornerOrder
			}
		}
	}

	return Domain{LowerLeft: lower.Clone(), UpperRight: upper.Clone()}, nil
}

// UnitDomain returns the maximal feasible hyper-rectangle for the given
// shape: [0,1] on every site-fraction axis.
func UnitDomain(shape Shape) (Domain, error) {
	if !shape.Valid() {
		return Domain{}, ErrEmptyShape
	}
	var (
		lower = make(Point, len(shape))
		upper = make(Point, len(shape))
	)
	for s, n := range shape {
		lower[s] = make([]float64, n)
		upper[s] = make([]float64, n)
		for i := 0; i < n; i++ {
			upper[s][i] = 1
		}
	}

	return Domain{LowerLeft: lower, UpperRight: upper}, nil
}

// Shape returns the sublattice layout shared by both corners.
func (d Domain) Shape() Shape { return d.LowerLeft.Shape() }

// Width returns the maximum per-axis extent of the domain. A width of zero
// means the domain is collapsed to a single point.
//
// Complexity: O(n).
func (d Domain) Width() float64 {
	var (
		best float64
		ext  float64
		s, i int
	)
	for s = range d.LowerLeft {
		for i = range d.LowerLeft[s] {
			ext = d.UpperRight[s][i] - d.LowerLeft[s][i]
			if ext > best {
				best = ext
			}
		}
	}

	return best
}

// Centroid returns the midpoint of the domain.
//
// Complexity: O(n).
func (d Domain) Centroid() Point {
	out := make(Point, len(d.LowerLeft))
	for s := range d.LowerLeft {
		out[s] = make([]float64, len(d.LowerLeft[s]))
		for i := range d.LowerLeft[s] {
			out[s][i] = 0.5 * (d.LowerLeft[s][i] + d.UpperRight[s][i])
		}
	}

	return out
}

// widestAxis returns the (sublattice, site) pair of the axis with the
// greatest extent. Ties break to the lowest sublattice index, then the
// lowest site index: the scan order is fixed and the comparison is strict.
func (d Domain) widestAxis() (int, int, float64) {
	var (
		bestS, bestI int
		bestExt      = math.Inf(-1)
		ext          float64
		s, i         int
	)
	for s = range d.LowerLeft {
		for i = range d.LowerLeft[s] {
			ext = d.UpperRight[s][i] - d.LowerLeft[s][i]
			if ext > bestExt {
				bestS, bestI, bestExt = s, i, ext
			}
		}
	}

	return bestS, bestI, bestExt
}

// Split bisects the domain along its widest axis and returns the two child
// domains. The children partition the parent exactly: they share the
// bisecting face and their union of corners reconstructs the parent.
//
// Errors: ErrCollapsed when every axis has zero width (nothing to bisect).
//
// Complexity: O(n).
func (d Domain) Split() (Domain, Domain, error) {
	s, i, ext := d.widestAxis()
	if ext <= 0 {
		return Domain{}, Domain{}, ErrCollapsed
	}
	var (
		mid   = 0.5 * (d.LowerLeft[s][i] + d.UpperRight[s][i])
		left  = Domain{LowerLeft: d.LowerLeft.Clone(), UpperRight: d.UpperRight.Clone()}
		right = Domain{LowerLeft: d.LowerLeft.Clone(), UpperRight: d.UpperRight.Clone()}
	)
	left.UpperRight[s][i] = mid
	right.LowerLeft[s][i] = mid

	return left, right, nil
}

// Contains reports whether p lies inside the domain, within tol on every
// axis. Points of a different shape are never contained.
//
// Complexity: O(n).
func (d Domain) Contains(p Point, tol float64) bool {
	if !d.Shape().Equal(p.Shape()) {
		return false
	}
	var s, i int
	for s = range p {
		for i = range p[s] {
			if p[s][i] < d.LowerLeft[s][i]-tol || p[s][i] > d.UpperRight[s][i]+tol {
				return false
			}
		}
	}

	return true
}

// InteriorSamples returns the fixed reference points the engine evaluates in
// this domain: the centroid plus, for every non-collapsed axis, a pair of
// points pulled inward from the axis faces by offset·extent (all other
// coordinates at the centroid). Samples therefore stay strictly interior to
// each open axis: the engine never lands exactly on a face of an axis it is
// still resolving.
//
// offset is clamped to (0, 0.5); at most 2·n+1 points are returned.
//
// Complexity: O(n²) storage over all coordinates.
func (d Domain) InteriorSamples(offset float64) []Point {
	if offset <= 0 || offset >= 0.5 {
		offset = 0.25
	}
	var (
		centroid = d.Centroid()
		out      = []Point{centroid}
		ext      float64
		s, i     int
	)
	for s = range d.LowerLeft {
		for i = range d.LowerLeft[s] {
			ext = d.UpperRight[s][i] - d.LowerLeft[s][i]
			if ext <= 0 {
				continue
			}
			lo := centroid.Clone()
			lo[s][i] = d.LowerLeft[s][i] + offset*ext
			hi := centroid.Clone()
			hi[s][i] = d.UpperRight[s][i] - offset*ext
			out = append(out, lo, hi)
		}
	}

	return out
}

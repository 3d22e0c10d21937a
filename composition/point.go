// Package composition - Point operations: shape queries, cloning, flat-vector
// conversion for gonum consumers, simplex normalization and distances.
//
// Design principles:
//   - Side-effect free: every operation returns fresh storage or a scalar.
//   - Deterministic: no map iteration, no randomness.
//   - Strict sentinels from types.go; no panics on user input.
package composition

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Shape returns the sublattice layout of p.
//
// Complexity: O(s) where s is the number of sublattices.
func (p Point) Shape() Shape {
	shape := make(Shape, len(p))
	for i, subl := range p {
		shape[i] = len(subl)
	}

	return shape
}

// Clone returns a deep copy of p.
//
// Complexity: O(n) over all coordinates.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	for i, subl := range p {
		out[i] = make([]float64, len(subl))
		copy(out[i], subl)
	}

	return out
}

// Flatten concatenates all sublattice coordinates into a single vector,
// sublattice-major. The flat form is the working representation for gonum
// routines (gradients, Hessians, local refinement).
//
// Complexity: O(n).
func (p Point) Flatten() []float64 {
	flat := make([]float64, 0, p.Shape().Size())
	for _, subl := range p {
		flat = append(flat, subl...)
	}

	return flat
}

// Unflatten rebuilds a Point of the given shape from a flat vector.
// Returns ErrShapeMismatch when len(flat) != shape.Size().
//
// Complexity: O(n).
func Unflatten(shape Shape, flat []float64) (Point, error) {
	if !shape.Valid() {
		return nil, ErrEmptyShape
	}
	if len(flat) != shape.Size() {
		return nil, ErrShapeMismatch
	}
	var (
		out    = make(Point, len(shape))
		offset int
	)
	for i, n := range shape {
		out[i] = make([]float64, n)
		copy(out[i], flat[offset:offset+n])
		offset += n
	}

	return out, nil
}

// Normalize rescales each sublattice so its site fractions sum to 1,
// returning a new Point on the product of simplices. Coordinates at or
// below a simplex face are nudged inward by boundaryNudge before rescaling,
// so the result is safe to hand to energy models with logarithmic
// singularities; a sublattice of all zeros therefore normalizes to the
// uniform fraction.
//
// Complexity: O(n).
func (p Point) Normalize() Point {
	var (
		out = p.Clone()
		sum float64
		i   int
	)
	for s := range out {
		sum = 0
		for i = range out[s] {
			if out[s][i] < boundaryNudge {
				out[s][i] = boundaryNudge
			}
			sum += out[s][i]
		}
		floats.Scale(1/sum, out[s])
	}

	return out
}

// Dist returns the Chebyshev (max-norm) distance between two points of the
// same shape, or ErrShapeMismatch.
//
// Complexity: O(n).
func (p Point) Dist(q Point) (float64, error) {
	if !p.Shape().Equal(q.Shape()) {
		return 0, ErrShapeMismatch
	}
	var (
		d    float64
		best float64
		s, i int
	)
	for s = range p {
		for i = range p[s] {
			d = math.Abs(p[s][i] - q[s][i])
			if d > best {
				best = d
			}
		}
	}

	return best, nil
}

// Less imposes a total lexicographic order on points of identical shape.
// Used for canonical output ordering; comparing points of different shapes
// is a programming error and reports false.
func (p Point) Less(q Point) bool {
	for s := range p {
		if s >= len(q) {
			return false
		}
		for i := range p[s] {
			if i >= len(q[s]) {
				return false
			}
			if p[s][i] != q[s][i] {
				return p[s][i] < q[s][i]
			}
		}
	}

	return false
}

// finite reports whether every coordinate is a finite float.
func (p Point) finite() bool {
	for _, subl := range p {
		for _, v := range subl {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}

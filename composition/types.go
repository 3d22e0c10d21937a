// Package composition - core types and sentinel errors for composition-space
// geometry (points and hyper-rectangular domains decomposed per sublattice).
package composition

import "errors"

// Sentinel errors for composition-space operations.
var (
	// ErrEmptyShape indicates a point or domain with no sublattices, or a
	// sublattice with no site species.
	ErrEmptyShape = errors.New("composition: shape must have at least one sublattice and one site per sublattice")

	// ErrShapeMismatch indicates two values whose sublattice/site layout differs.
	ErrShapeMismatch = errors.New("composition: sublattice shapes do not match")

	// ErrCornerOrder indicates a domain whose lower corner exceeds its upper
	// corner on some axis.
	ErrCornerOrder = errors.New("composition: lower corner exceeds upper corner")

	// ErrCollapsed indicates a split request on a domain with zero width on
	// every axis (nothing left to subdivide).
	ErrCollapsed = errors.New("composition: domain is collapsed on every axis")

	// ErrBadValue indicates a non-finite coordinate (NaN or ±Inf).
	ErrBadValue = errors.New("composition: coordinate must be finite")
)

// boundaryNudge is the minimal inward displacement applied to interior sample
// coordinates that would otherwise land exactly on a simplex face. Energy
// models with logarithmic terms diverge at site fraction 0, so samples are
// kept strictly off the face even inside collapsed (zero-width) domains.
// The nudge is far below any practical feasibility tolerance.
const boundaryNudge = 1e-12

// Point is one location in composition space: one ordered coordinate sequence
// per sublattice, one site-fraction value per site species.
type Point [][]float64

// Shape describes the sublattice layout of a point or domain:
// Shape[i] is the number of site species in sublattice i.
type Shape []int

// Valid reports whether the shape has at least one sublattice and at least
// one site per sublattice.
func (s Shape) Valid() bool {
	if len(s) == 0 {
		return false
	}
	for _, n := range s {
		if n < 1 {
			return false
		}
	}

	return true
}

// Size returns the total number of coordinates (degrees of freedom).
func (s Shape) Size() int {
	var total int
	for _, n := range s {
		total += n
	}

	return total
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(t Shape) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

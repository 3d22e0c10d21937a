// Package ezd - result types and sentinel errors.
package ezd

import (
	"errors"

	"github.com/gitter-badger/pycalphad/composition"
)

// Sentinel errors returned by LocateMinima.
var (
	// ErrNilSampler indicates a nil energy sampler.
	ErrNilSampler = errors.New("ezd: energy sampler is nil")

	// ErrNilConstraints indicates a nil sublattice constraint set.
	ErrNilConstraints = errors.New("ezd: sublattice constraint set is nil")

	// ErrBadDepth indicates a negative recursion depth.
	ErrBadDepth = errors.New("ezd: depth must be non-negative")

	// ErrBadOption indicates an option outside its valid range (negative
	// tolerance, offset not in (0, 0.5), negative time limit).
	ErrBadOption = errors.New("ezd: option value out of range")

	// ErrInfeasible is the configuration error: the supplied constraints
	// admit no feasible sample anywhere in the initial domain.
	ErrInfeasible = errors.New("ezd: constraint set admits no feasible point in the initial domain")

	// ErrAllUndefined indicates every sample of the initial domain was
	// undefined; the energy model and constraint set are inconsistent.
	ErrAllUndefined = errors.New("ezd: energy model undefined at every sample of the initial domain")

	// ErrTimeLimit indicates the soft time budget elapsed before the search
	// completed.
	ErrTimeLimit = errors.New("ezd: time limit exceeded")
)

// Candidate is one candidate minimum: a feasible composition-space point,
// its evaluated energy, and the width of the smallest domain that contained
// it when it was accepted (a resolution/confidence indicator for the
// downstream solver).
type Candidate struct {
	// Point is the normalized site-fraction location, one coordinate
	// sequence per sublattice.
	Point composition.Point

	// Energy is the stabilized Gibbs energy at Point, J/mol.
	Energy float64

	// Width is the maximum per-axis extent of the accepting domain.
	Width float64

	// Curvature is the smallest eigenvalue of the finite-difference Hessian
	// at Point when Options.Curvature is enabled (positive: locally convex
	// well; negative: saddle or boundary artifact). NaN when disabled or
	// when the Hessian could not be evaluated.
	Curvature float64
}

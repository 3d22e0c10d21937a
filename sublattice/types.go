// Package sublattice - core types, options and sentinel errors for the
// sublattice constraint model.
package sublattice

import "errors"

// Sentinel errors for sublattice-set construction and evaluation.
var (
	// ErrEmptySet indicates a set with no sublattices or a sublattice with
	// no species.
	ErrEmptySet = errors.New("sublattice: set must have at least one sublattice with one species")

	// ErrBadRatio indicates a non-positive or non-finite site ratio.
	ErrBadRatio = errors.New("sublattice: site ratio must be positive and finite")

	// ErrBadBound indicates a bound with out-of-range axis indices, an
	// inverted interval, or values outside [0,1].
	ErrBadBound = errors.New("sublattice: bound must reference a valid axis with 0 <= lo <= hi <= 1")

	// ErrBadConstraint indicates a linear constraint whose coefficient
	// vector does not match the set's flattened coordinate count.
	ErrBadConstraint = errors.New("sublattice: constraint coefficients must match the coordinate count")

	// ErrContradiction indicates bounds whose intersection is empty: the
	// feasible region cannot contain any point.
	ErrContradiction = errors.New("sublattice: contradictory bounds admit no feasible point")
)

// PointTol is the feasibility tolerance for point-level checks. Site
// fractions produced by interior sampling sit a hair off simplex faces
// (around 1e-12); PointTol is kept three orders of magnitude above that so
// boundary-hugging candidates remain feasible while genuine violations fail.
const PointTol = 1e-9

// Feasibility is the three-valued classification of a domain against a
// constraint set.
type Feasibility int

const (
	// Infeasible: no point of the domain can satisfy the constraints.
	// The engine prunes such domains outright.
	Infeasible Feasibility = iota

	// Feasible: every point of the domain satisfies the constraints.
	// The engine may accept samples without per-point checking.
	Feasible

	// Mixed: the classification is undecidable at domain level; the engine
	// falls back to per-point checks.
	Mixed
)

// String implements fmt.Stringer for diagnostics.
func (f Feasibility) String() string {
	switch f {
	case Infeasible:
		return "infeasible"
	case Feasible:
		return "feasible"
	default:
		return "mixed"
	}
}

// Relation selects the comparison of a linear constraint.
type Relation int

const (
	// LessEq: sum(coeffs·y) <= rhs.
	LessEq Relation = iota
	// GreaterEq: sum(coeffs·y) >= rhs.
	GreaterEq
	// Equal: sum(coeffs·y) == rhs (within PointTol).
	Equal
)

// Species names one occupying species of a sublattice site.
type Species string

// Sublattice is one group of crystallographic sites sharing the same set of
// possible occupying species.
type Sublattice struct {
	// Species are the possible occupants, one site-fraction axis each.
	Species []Species
	// Ratio is the number of sites of this sublattice per formula unit.
	Ratio float64
}

// Bound restricts one site-fraction axis to the interval [Lo, Hi].
type Bound struct {
	Subl, Site int
	Lo, Hi     float64
}

// LinearConstraint is sum(Coeffs·y) ⋈ RHS over the flattened (normalized)
// site-fraction coordinates, sublattice-major.
type LinearConstraint struct {
	Coeffs []float64
	Rel    Relation
	RHS    float64
}

// Set is a phase's full feasibility description: sublattice layout plus the
// constraints a composition must satisfy. Immutable for the duration of one
// minimization call.
type Set struct {
	Sublattices []Sublattice
	Bounds      []Bound
	Linear      []LinearConstraint
}

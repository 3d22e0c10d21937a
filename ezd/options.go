// Package ezd - engine configuration.
package ezd

import "time"

// Default tolerance and sampling constants. The published reference
// algorithm leaves these as tunable parameters; the defaults below are the
// documented configuration of this implementation.
const (
	// DefaultAbsTol is the absolute part of the combined energy tolerance,
	// J/mol. Gibbs energies of real phases span many orders of magnitude,
	// so comparisons always combine it with a relative part.
	DefaultAbsTol = 1e-6

	// DefaultRelTol is the relative part of the combined energy tolerance.
	DefaultRelTol = 1e-9

	// DefaultOffset is the inward fraction of a cell's extent at which
	// face-adjacent samples are placed (keeps samples strictly interior).
	DefaultOffset = 0.25

	// DefaultResolutionFloor is the cell width below which subdivision
	// stops and the cell emits its best sample.
	DefaultResolutionFloor = 1e-6

	// DefaultMergeTol is the max-norm point distance under which two
	// candidates with agreeing energies are merged into one.
	DefaultMergeTol = 1e-2
)

// Options configures one LocateMinima call.
//
// Depth           – recursion bound; 0 evaluates only the initial domain
// (at most one candidate), each extra level bisects surviving cells once.
// AbsTol, RelTol  – combined tolerance for all energy comparisons:
// tol(ref) = AbsTol + RelTol·|ref|; never exact equality.
// Offset          – inward sampling offset fraction, must lie in (0, 0.5).
// ResolutionFloor – numerical resolution floor on cell width.
// MergeTol        – candidate deduplication distance.
// MaxWorkers      – parallel fan-out over sibling cells; ≤1 is sequential
// depth-first (the reference execution model).
// TimeLimit       – soft budget; 0 means unlimited. On expiry the call
// fails with ErrTimeLimit.
// Curvature       – compute the Hessian-eigenvalue convexity estimate for
// each returned candidate.
// Refine          – polish each candidate with a bounded Nelder–Mead pass
// before returning (still constrained to the accepting region).
type Options struct {
	Depth           int
	AbsTol          float64
	RelTol          float64
	Offset          float64
	ResolutionFloor float64
	MergeTol        float64
	MaxWorkers      int
	TimeLimit       time.Duration
	Curvature       bool
	Refine          bool
}

// DefaultOptions returns the documented default configuration: depth 1,
// sequential execution, no curvature or refinement post-passes.
func DefaultOptions() Options {
	return Options{
		Depth:           1,
		AbsTol:          DefaultAbsTol,
		RelTol:          DefaultRelTol,
		Offset:          DefaultOffset,
		ResolutionFloor: DefaultResolutionFloor,
		MergeTol:        DefaultMergeTol,
		MaxWorkers:      1,
	}
}

// tol returns the combined absolute+relative tolerance around ref.
func (o Options) tol(ref float64) float64 {
	if ref < 0 {
		ref = -ref
	}

	return o.AbsTol + o.RelTol*ref
}

// Package ezd - input validation shared by the public entry points.
//
// Design principles (matching the rest of the module):
//   - Deterministic, side-effect free.
//   - No panics on user input - only sentinel errors from types.go.
package ezd

import (
	"github.com/gitter-badger/pycalphad/energy"
	"github.com/gitter-badger/pycalphad/sublattice"
)

// validateInputs checks the collaborator handles and the Options envelope.
//
// Complexity: O(1) plus the constraint set's own structural validation.
func validateInputs(sampler energy.Sampler, set *sublattice.Set, opts Options) error {
	if sampler == nil {
		return ErrNilSampler
	}
	if set == nil {
		return ErrNilConstraints
	}
	if opts.Depth < 0 {
		return ErrBadDepth
	}
	if opts.AbsTol < 0 || opts.RelTol < 0 {
		return ErrBadOption
	}
	if opts.Offset <= 0 || opts.Offset >= 0.5 {
		return ErrBadOption
	}
	if opts.ResolutionFloor < 0 || opts.MergeTol < 0 {
		return ErrBadOption
	}
	if opts.TimeLimit < 0 {
		return ErrBadOption
	}

	return set.Validate()
}

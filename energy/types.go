// Package energy - sampling contract, conditions and sentinel errors.
package energy

import (
	"errors"

	"github.com/gitter-badger/pycalphad/composition"
)

// R is the molar gas constant, J/(mol·K).
const R = 8.3145

// Sentinel errors for energy evaluation.
var (
	// ErrUndefined indicates the energy model is singular or out of its
	// definition range at the requested point (e.g. a logarithmic term at
	// site fraction zero). Callers recover by skipping the sample.
	ErrUndefined = errors.New("energy: model undefined at requested point")

	// ErrShapeMismatch indicates a point whose sublattice layout does not
	// match the model's.
	ErrShapeMismatch = errors.New("energy: point shape does not match model")

	// ErrBadModel indicates an inconsistently parameterized model
	// (mismatched reference/ratio lengths, out-of-range interaction indices).
	ErrBadModel = errors.New("energy: model parameters are inconsistent")
)

// Conditions is the externally fixed thermodynamic state under which a
// sampler is evaluated. Read-only for the duration of a minimization call.
type Conditions struct {
	// Temperature in kelvin.
	Temperature float64
	// Pressure in pascal. The bundled solution models are
	// pressure-independent; the field is carried for samplers that are not.
	Pressure float64
}

// Sampler evaluates one phase's molar Gibbs energy at a composition point.
//
// Contract:
//   - returns (value, nil) for a defined evaluation;
//   - returns (0, ErrUndefined) at singular/out-of-domain points;
//   - must be deterministic for identical inputs and safe for concurrent use.
type Sampler interface {
	Energy(p composition.Point, c Conditions) (float64, error)
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func(p composition.Point, c Conditions) (float64, error)

// Energy implements Sampler.
func (f SamplerFunc) Energy(p composition.Point, c Conditions) (float64, error) {
	return f(p, c)
}

// Package energy - central finite-difference derivatives over any Sampler.
//
// The helpers operate on the flattened coordinate vector of a point and
// evaluate the sampler at perturbed points without re-normalizing them:
// close to a simplex point the models remain well defined for small steps,
// and any perturbed evaluation that lands outside the model's domain
// propagates ErrUndefined to the caller, which treats the derivative as
// unavailable rather than failing the run.
//
// Complexity: Gradient O(2n) evaluations, Hessian O(4n²) evaluations.
package energy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gitter-badger/pycalphad/composition"
)

// DefaultStep is the finite-difference step used when the caller passes a
// non-positive one. Chosen near cbrt(eps)·scale for central differences on
// energies spanning many orders of magnitude.
const DefaultStep = 1e-6

// Gradient estimates ∇G at p by central differences with step h.
//
// Errors: ErrUndefined when any perturbed evaluation is undefined; sampler
// errors pass through.
func Gradient(s Sampler, p composition.Point, c Conditions, h float64) ([]float64, error) {
	if h <= 0 {
		h = DefaultStep
	}
	var (
		shape = p.Shape()
		flat  = p.Flatten()
		grad  = make([]float64, len(flat))
		err   error
	)
	for i := range flat {
		var fPlus, fMinus float64
		if fPlus, err = evalAt(s, shape, flat, i, h, c); err != nil {
			return nil, err
		}
		if fMinus, err = evalAt(s, shape, flat, i, -h, c); err != nil {
			return nil, err
		}
		grad[i] = (fPlus - fMinus) / (2 * h)
	}

	return grad, nil
}

// Hessian estimates the symmetric second-derivative matrix of G at p by
// central differences with step h, into a fresh gonum SymDense.
//
// Errors: ErrUndefined when any perturbed evaluation is undefined.
func Hessian(s Sampler, p composition.Point, c Conditions, h float64) (*mat.SymDense, error) {
	if h <= 0 {
		h = DefaultStep
	}
	var (
		shape = p.Shape()
		flat  = p.Flatten()
		n     = len(flat)
		hess  = mat.NewSymDense(n, nil)
		err   error
	)
	var fpp, fpm, fmp, fmm float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if fpp, err = evalAt2(s, shape, flat, i, h, j, h, c); err != nil {
				return nil, err
			}
			if fpm, err = evalAt2(s, shape, flat, i, h, j, -h, c); err != nil {
				return nil, err
			}
			if fmp, err = evalAt2(s, shape, flat, i, -h, j, h, c); err != nil {
				return nil, err
			}
			if fmm, err = evalAt2(s, shape, flat, i, -h, j, -h, c); err != nil {
				return nil, err
			}
			hess.SetSym(i, j, (fpp-fpm-fmp+fmm)/(4*h*h))
		}
	}

	return hess, nil
}

// evalAt evaluates s at flat with coordinate i displaced by di.
func evalAt(s Sampler, shape composition.Shape, flat []float64, i int, di float64, c Conditions) (float64, error) {
	work := make([]float64, len(flat))
	copy(work, flat)
	work[i] += di
	p, err := composition.Unflatten(shape, work)
	if err != nil {
		return 0, err
	}

	return s.Energy(p, c)
}

// evalAt2 evaluates s at flat with coordinates i and j displaced by di, dj.
// i == j accumulates both displacements on the same axis.
func evalAt2(s Sampler, shape composition.Shape, flat []float64, i int, di float64, j int, dj float64, c Conditions) (float64, error) {
	work := make([]float64, len(flat))
	copy(work, flat)
	work[i] += di
	work[j] += dj
	p, err := composition.Unflatten(shape, work)
	if err != nil {
		return 0, err
	}

	return s.Energy(p, c)
}

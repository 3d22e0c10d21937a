// Package energy - regular/subregular solution model: ideal solution plus
// binary Redlich–Kister excess interactions.
//
// Each interaction contributes, on its sublattice,
//
//	n_s · y_i · y_j · Σ_k L_k · (y_i − y_j)^k
//
// to the formula-unit energy before site normalization. With a single
// positive L0 the excess term competes with the ideal mixing entropy and,
// below the critical temperature T_c = L0/(2R), the energy surface develops
// the two-well miscibility gap this package's tests lean on.
package energy

import "github.com/gitter-badger/pycalphad/composition"

// Interaction is one binary Redlich–Kister interaction between two species
// of the same sublattice.
type Interaction struct {
	// Subl selects the sublattice; I and J the interacting species indices.
	Subl, I, J int
	// L holds the Redlich–Kister coefficients L_0..L_k, J/mol.
	L []float64
}

// RegularSolution is an IdealSolution extended with Redlich–Kister excess
// terms.
type RegularSolution struct {
	IdealSolution
	Interactions []Interaction
}

// validateInteractions checks interaction indices against the model shape.
func (m *RegularSolution) validateInteractions() error {
	shape := m.Shape()
	for _, ia := range m.Interactions {
		if ia.Subl < 0 || ia.Subl >= len(shape) {
			return ErrBadModel
		}
		if ia.I < 0 || ia.I >= shape[ia.Subl] || ia.J < 0 || ia.J >= shape[ia.Subl] || ia.I == ia.J {
			return ErrBadModel
		}
		if len(ia.L) == 0 {
			return ErrBadModel
		}
	}

	return nil
}

// Energy implements Sampler: the ideal contribution plus the excess sum.
//
// Errors: ErrBadModel, ErrShapeMismatch, ErrUndefined (from the ideal part).
//
// Complexity: O(coords + interactions·k).
func (m *RegularSolution) Energy(p composition.Point, c Conditions) (float64, error) {
	ideal, err := m.IdealSolution.Energy(p, c)
	if err != nil {
		return 0, err
	}
	if err = m.validateInteractions(); err != nil {
		return 0, err
	}
	var (
		excess float64
		yi, yj float64
		diff   float64
		pow    float64
		term   float64
	)
	for _, ia := range m.Interactions {
		yi, yj = p[ia.Subl][ia.I], p[ia.Subl][ia.J]
		diff = yi - yj
		pow = 1
		term = 0
		for _, lk := range ia.L {
			term += lk * pow
			pow *= diff
		}
		excess += m.Ratios[ia.Subl] * yi * yj * term
	}

	return ideal + excess/m.siteNormalization(), nil
}

// Package energy - ideal solution model: endmember reference energies plus
// the ideal mixing entropy, site-ratio normalized to one mole of atoms.
//
// The molar Gibbs energy is
//
//	G(y) = [ Σ_s n_s·Σ_i y_si·G°_si + R·T·Σ_s n_s·Σ_i y_si·ln(y_si) ] / Σ_s n_s
//
// where n_s is the site ratio of sublattice s, y_si the site fraction of
// species i on s, and G°_si its reference energy. The y·ln(y) term diverges
// logarithmically as y→0⁺; evaluation at y ≤ 0 reports ErrUndefined, which
// is why the partition engine samples strictly interior points.
package energy

import (
	"math"

	"github.com/gitter-badger/pycalphad/composition"
)

// IdealSolution is a multi-sublattice ideal solution model.
type IdealSolution struct {
	// Ratios holds one site ratio per sublattice (sites per formula unit).
	Ratios []float64
	// Reference holds endmember reference energies, J/mol of formula unit
	// contribution, one inner slice per sublattice matching its species.
	Reference [][]float64
}

// Shape returns the composition-space layout the model expects.
func (m *IdealSolution) Shape() composition.Shape {
	shape := make(composition.Shape, len(m.Reference))
	for i, ref := range m.Reference {
		shape[i] = len(ref)
	}

	return shape
}

// validate checks ratio/reference consistency once per evaluation entry.
func (m *IdealSolution) validate() error {
	if len(m.Ratios) == 0 || len(m.Ratios) != len(m.Reference) {
		return ErrBadModel
	}
	for i, ratio := range m.Ratios {
		if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			return ErrBadModel
		}
		if len(m.Reference[i]) == 0 {
			return ErrBadModel
		}
	}

	return nil
}

// siteNormalization returns Σ n_s, the divisor converting formula-unit
// energies to one mole of atoms.
func (m *IdealSolution) siteNormalization() float64 {
	var total float64
	for _, ratio := range m.Ratios {
		total += ratio
	}

	return total
}

// Energy implements Sampler.
//
// Errors: ErrBadModel, ErrShapeMismatch, ErrUndefined (y ≤ 0 or y > 1).
//
// Complexity: O(coords).
func (m *IdealSolution) Energy(p composition.Point, c Conditions) (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if !m.Shape().Equal(p.Shape()) {
		return 0, ErrShapeMismatch
	}
	var (
		total float64
		y     float64
		s, i  int
	)
	for s = range p {
		for i = range p[s] {
			y = p[s][i]
			if y <= 0 || y > 1 {
				return 0, ErrUndefined
			}
			total += m.Ratios[s] * (y*m.Reference[s][i] + R*c.Temperature*y*math.Log(y))
		}
	}

	return total / m.siteNormalization(), nil
}

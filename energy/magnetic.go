// Package energy - magnetic ordering contribution (Inden-Hillert-Jarl).
//
// Ferromagnetic ordering adds, per mole of atoms,
//
//	G_mag = R·T·ln(β+1)·g(τ),   τ = T/T_C
//
// where T_C is the Curie temperature and β the mean magnetic moment of the
// phase at the evaluated composition, both obtained by site-fraction
// weighting of endmember values. g(τ) is the Hillert-Jarl polynomial fixed
// by the structure factor p (0.4 for bcc, 0.28 otherwise). Negative
// endmember values encode antiferromagnetic ordering and are rescaled by
// the antiferromagnetic factor before use (-1 for bcc, -3 otherwise).
package energy

import (
	"math"

	"github.com/gitter-badger/pycalphad/composition"
)

// MagneticContribution decorates a chemical Sampler with the
// Inden-Hillert-Jarl magnetic ordering energy.
type MagneticContribution struct {
	// Base supplies the chemical (non-magnetic) energy.
	Base Sampler

	// Ratios holds one site ratio per sublattice, matching Base's shape.
	Ratios []float64
	// Curie holds endmember Curie temperatures in kelvin, one inner slice
	// per sublattice matching its species. Negative values are
	// antiferromagnetic.
	Curie [][]float64
	// Moment holds endmember mean magnetic moments in Bohr magnetons,
	// same layout as Curie.
	Moment [][]float64

	// StructureFactor is the Hillert-Jarl p parameter, in (0, 1).
	StructureFactor float64
	// AFMFactor rescales negative Curie/Moment averages; 0 defaults to -3.
	AFMFactor float64
}

// validate checks layout and parameter consistency.
func (m *MagneticContribution) validate() error {
	if m.Base == nil {
		return ErrBadModel
	}
	if len(m.Ratios) == 0 || len(m.Ratios) != len(m.Curie) || len(m.Curie) != len(m.Moment) {
		return ErrBadModel
	}
	for s := range m.Curie {
		if len(m.Curie[s]) == 0 || len(m.Curie[s]) != len(m.Moment[s]) {
			return ErrBadModel
		}
		if m.Ratios[s] <= 0 || math.IsNaN(m.Ratios[s]) || math.IsInf(m.Ratios[s], 0) {
			return ErrBadModel
		}
	}
	if m.StructureFactor <= 0 || m.StructureFactor >= 1 {
		return ErrBadModel
	}
	if m.AFMFactor > 0 {
		return ErrBadModel
	}

	return nil
}

// shape returns the sublattice layout implied by the Curie table.
func (m *MagneticContribution) shape() composition.Shape {
	shape := make(composition.Shape, len(m.Curie))
	for i, row := range m.Curie {
		shape[i] = len(row)
	}

	return shape
}

// average computes the site-ratio-weighted mean of an endmember table at p.
func (m *MagneticContribution) average(table [][]float64, p composition.Point) float64 {
	var (
		total float64
		norm  float64
	)
	for s := range p {
		norm += m.Ratios[s]
		for i := range p[s] {
			total += m.Ratios[s] * p[s][i] * table[s][i]
		}
	}

	return total / norm
}

// Energy implements Sampler: the base chemical energy plus G_mag.
//
// Errors: ErrBadModel, ErrShapeMismatch; base-model errors pass through.
//
// Complexity: O(coords) on top of the base evaluation.
func (m *MagneticContribution) Energy(p composition.Point, c Conditions) (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	if !m.shape().Equal(p.Shape()) {
		return 0, ErrShapeMismatch
	}
	base, err := m.Base.Energy(p, c)
	if err != nil {
		return 0, err
	}

	afm := m.AFMFactor
	if afm == 0 {
		afm = -3
	}
	tc := m.average(m.Curie, p)
	if tc < 0 {
		tc /= afm
	}
	beta := m.average(m.Moment, p)
	if beta < 0 {
		beta /= afm
	}
	if tc <= 0 || beta <= 0 || c.Temperature <= 0 {
		// Paramagnetic everywhere: no ordering contribution.
		return base, nil
	}

	tau := c.Temperature / tc

	return base + R*c.Temperature*math.Log(beta+1)*hillertJarl(tau, m.StructureFactor), nil
}

// hillertJarl evaluates the g(τ) polynomial for structure factor p.
func hillertJarl(tau, p float64) float64 {
	var (
		inv = 1/p - 1
		a   = 518.0/1125.0 + 11692.0/15975.0*inv
		g   float64
	)
	if tau < 1 {
		g = 1 - (79.0/(140.0*p)/tau+
			474.0/497.0*inv*(math.Pow(tau, 3)/6+math.Pow(tau, 9)/135+math.Pow(tau, 15)/600))/a
	} else {
		g = -(math.Pow(tau, -5)/10 + math.Pow(tau, -15)/315 + math.Pow(tau, -25)/1500) / a
	}

	return g
}

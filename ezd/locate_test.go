// Package ezd_test validates the LocateMinima entry point.
// Focus:
//  1. Strict sentinels on malformed inputs (nil handles, bad options).
//  2. Configuration errors: contradictory constraints (eager and lazy) and
//     all-undefined initial domains.
//  3. Soft time-budget behavior without panics.
package ezd_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitter-badger/pycalphad/composition"
	"github.com/gitter-badger/pycalphad/energy"
	"github.com/gitter-badger/pycalphad/ezd"
	"github.com/gitter-badger/pycalphad/sublattice"
)

// binarySet is a single-sublattice A-B phase, one site per formula unit.
func binarySet() *sublattice.Set {
	return &sublattice.Set{
		Sublattices: []sublattice.Sublattice{
			{Species: []sublattice.Species{"A", "B"}, Ratio: 1},
		},
	}
}

// idealAB is an A-B ideal solution with zero reference energies: a single
// strictly convex well at y = (0.5, 0.5).
func idealAB() *energy.IdealSolution {
	return &energy.IdealSolution{Ratios: []float64{1}, Reference: [][]float64{{0, 0}}}
}

// regularAB adds one L0 Redlich-Kister term; l0 > 2·R·T opens two wells.
func regularAB(l0 float64) *energy.RegularSolution {
	return &energy.RegularSolution{
		IdealSolution: *idealAB(),
		Interactions:  []energy.Interaction{{Subl: 0, I: 0, J: 1, L: []float64{l0}}},
	}
}

func TestLocateMinima_InputSentinels(t *testing.T) {
	var (
		set  = binarySet()
		cond = energy.Conditions{Temperature: 1000}
		opts = ezd.DefaultOptions()
	)

	_, err := ezd.LocateMinima(nil, set, cond, opts)
	assert.ErrorIs(t, err, ezd.ErrNilSampler)

	_, err = ezd.LocateMinima(idealAB(), nil, cond, opts)
	assert.ErrorIs(t, err, ezd.ErrNilConstraints)

	bad := opts
	bad.Depth = -1
	_, err = ezd.LocateMinima(idealAB(), set, cond, bad)
	assert.ErrorIs(t, err, ezd.ErrBadDepth)

	bad = opts
	bad.Offset = 0.5
	_, err = ezd.LocateMinima(idealAB(), set, cond, bad)
	assert.ErrorIs(t, err, ezd.ErrBadOption)

	bad = opts
	bad.AbsTol = -1
	_, err = ezd.LocateMinima(idealAB(), set, cond, bad)
	assert.ErrorIs(t, err, ezd.ErrBadOption)

	bad = opts
	bad.TimeLimit = -time.Second
	_, err = ezd.LocateMinima(idealAB(), set, cond, bad)
	assert.ErrorIs(t, err, ezd.ErrBadOption)
}

func TestLocateMinima_ContradictoryBounds(t *testing.T) {
	// Eager path: crossing bound intervals are detected before any sampling.
	set := binarySet()
	set.Bounds = []sublattice.Bound{
		{Subl: 0, Site: 0, Lo: 0.6, Hi: 1},
		{Subl: 0, Site: 0, Lo: 0, Hi: 0.4},
	}
	cands, err := ezd.LocateMinima(idealAB(), set, energy.Conditions{Temperature: 1000}, ezd.DefaultOptions())
	assert.ErrorIs(t, err, ezd.ErrInfeasible)
	assert.Empty(t, cands)
}

func TestLocateMinima_ContradictoryLinearConstraints(t *testing.T) {
	// Lazy path: y_A > 0.6 and y_A < 0.4 leave no feasible sample anywhere,
	// discovered only by sampling.
	set := binarySet()
	set.Linear = []sublattice.LinearConstraint{
		{Coeffs: []float64{1, 0}, Rel: sublattice.GreaterEq, RHS: 0.6},
		{Coeffs: []float64{1, 0}, Rel: sublattice.LessEq, RHS: 0.4},
	}
	opts := ezd.DefaultOptions()
	opts.Depth = 3
	cands, err := ezd.LocateMinima(idealAB(), set, energy.Conditions{Temperature: 1000}, opts)
	assert.ErrorIs(t, err, ezd.ErrInfeasible)
	assert.Empty(t, cands)
}

func TestLocateMinima_AllUndefined(t *testing.T) {
	undefined := energy.SamplerFunc(func(composition.Point, energy.Conditions) (float64, error) {
		return 0, energy.ErrUndefined
	})
	cands, err := ezd.LocateMinima(undefined, binarySet(), energy.Conditions{Temperature: 1000}, ezd.DefaultOptions())
	assert.ErrorIs(t, err, ezd.ErrAllUndefined)
	assert.Empty(t, cands)
}

func TestLocateMinima_SamplerFailurePropagates(t *testing.T) {
	boom := energy.SamplerFunc(func(composition.Point, energy.Conditions) (float64, error) {
		return 0, assert.AnError
	})
	_, err := ezd.LocateMinima(boom, binarySet(), energy.Conditions{Temperature: 1000}, ezd.DefaultOptions())
	assert.ErrorIs(t, err, assert.AnError, "non-sentinel sampler errors abort the call")
}

func TestLocateMinima_TimeLimit(t *testing.T) {
	// A flat surface defeats pruning, so a deep search visits enough cells
	// to hit the sparse deadline check.
	flat := energy.SamplerFunc(func(composition.Point, energy.Conditions) (float64, error) {
		return 1, nil
	})
	opts := ezd.DefaultOptions()
	opts.Depth = 14
	opts.TimeLimit = time.Nanosecond
	cands, err := ezd.LocateMinima(flat, binarySet(), energy.Conditions{Temperature: 1000}, opts)
	require.ErrorIs(t, err, ezd.ErrTimeLimit)
	assert.Empty(t, cands)
}

func TestLocateMinima_TimeLimitParallel(t *testing.T) {
	// The deadline is fixed once per call and shared by all workers, so a
	// late-starting worker cannot stretch the budget: every worker sees
	// the same expired deadline and the fan-out fails as a whole.
	flat := energy.SamplerFunc(func(composition.Point, energy.Conditions) (float64, error) {
		return 1, nil
	})
	opts := ezd.DefaultOptions()
	opts.Depth = 14
	opts.MaxWorkers = 4
	opts.TimeLimit = time.Nanosecond
	cands, err := ezd.LocateMinima(flat, binarySet(), energy.Conditions{Temperature: 1000}, opts)
	require.ErrorIs(t, err, ezd.ErrTimeLimit)
	assert.Empty(t, cands)
}

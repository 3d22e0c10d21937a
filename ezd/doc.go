// Package ezd implements EZD global minimization: recursive subdivision of
// constrained composition-space domains to locate the candidate minima of a
// multi-well Gibbs energy surface.
//
// Reference: Maria Emelianenko, Zi-Kui Liu, and Qiang Du. "A new algorithm
// for the automation of phase diagram calculation." Computational Materials
// Science 35.1 (2006): 61-74.
//
// 🚀 What is EZD?
//
//	Gibbs energy surfaces of real phases are non-convex with narrow wells
//	anywhere in a high-dimensional constrained space; exhaustive grids are
//	intractable. EZD subdivides the feasible hyper-rectangle recursively,
//	samples a handful of interior points per cell, prunes cells that
//	provably cannot beat the running best bound, and emits one candidate
//	minimum per surviving leaf cell. The candidates seed a downstream
//	local-refinement / convex-hull equilibrium stage.
//
// ✨ Key properties:
//   - Sound: every returned candidate satisfies the phase's sublattice
//     constraints; stale pruning bounds only cost work, never correctness.
//   - Not complete: wells narrower than the resolution at the configured
//     depth can be missed; depth trades cost for resolution.
//   - Deterministic: fixed branching order, canonical output ordering,
//     stabilized energies; identical inputs reproduce identical output.
//   - Singularity-aware: samples stay strictly interior to each cell, so
//     logarithmic divergences at pure-component limits are never hit, and
//     per-sample "undefined" outcomes are skipped, not fatal.
//
// ⚙️ Usage:
//
//	model := &energy.RegularSolution{ ... }
//	set := &sublattice.Set{ ... }
//	opts := ezd.DefaultOptions()
//	opts.Depth = 4
//
//	cands, err := ezd.LocateMinima(model, set, energy.Conditions{Temperature: 800}, opts)
//	if err != nil {
//	  // ErrInfeasible: the constraint set admits no feasible point.
//	}
//	// cands are sorted by energy ascending; cands[0] is the best well found.
//
// Complexity:
//   - Time:   O(2^Depth · samples-per-cell · cost(Energy)) worst case;
//     pruning typically removes most cells on smooth surfaces.
//   - Memory: O(Depth + output) for the work list and candidate set.
package ezd

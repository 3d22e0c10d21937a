// Package pycalphad locates the candidate minima of multi-well Gibbs
// free-energy surfaces — the EZD global-minimization core that seeds
// CALPHAD phase-equilibrium calculations.
//
// 🚀 What lives here?
//
//	A deterministic, constraint-aware implementation of the EZD algorithm
//	(Emelianenko, Liu & Du, 2006): recursive subdivision of the feasible
//	composition-space hyper-rectangle, interior sampling, best-bound
//	pruning and candidate-minimum extraction.
//
// ✨ Why this design?
//
//   - Sound – every returned candidate satisfies the phase's sublattice
//     constraints; pruning never discards a true global minimum cell
//   - Deterministic – fixed branching order, canonical output ordering,
//     stabilized energies across platforms
//   - Singularity-aware – logarithmic divergences at pure-component
//     limits are sampled around, never on
//   - Tunable – recursion depth trades cost for well resolution
//
// Everything is organized under four subpackages:
//
//	composition/ — points, shapes and axis-aligned Domain regions (split, sample, contain)
//	sublattice/  — constraint sets: point feasibility + three-valued domain classification
//	energy/      — the Sampler contract, ideal & Redlich–Kister solution models, derivatives
//	ezd/         — the partition engine: LocateMinima, pruning, merging, curvature, refine
//
// Quick start:
//
//	cands, err := ezd.LocateMinima(model, set, energy.Conditions{Temperature: 800}, ezd.DefaultOptions())
//
// returns the feasible wells of the phase, lowest energy first.
package pycalphad

// Package sublattice describes a phase's sublattice configuration and the
// feasibility constraints a composition-space point must satisfy to be
// physically valid for that phase.
//
// A Set carries the per-sublattice species lists and site ratios, optional
// per-axis bounds on site fractions, and linear constraints over the
// flattened coordinates (stoichiometric ratios, charge balance). Site
// fractions within a sublattice always sum to 1; that normalization is
// enforced by construction in the partition engine, not listed as an
// explicit constraint.
//
// The package exposes the two evaluations the EZD engine consumes:
//
//   - FeasiblePoint(p): exact point-level check under a fixed tolerance.
//   - Classify(d): three-valued domain-level classification
//     (Infeasible / Feasible / Mixed) via interval arithmetic,
//     conservative in both directions: Infeasible and
//     Feasible are only reported when certain, everything
//     undecidable is Mixed.
//
// The three-valued result keeps the constraint representation fully opaque
// to the engine: pruning needs no knowledge of how constraints are stored.
package sublattice

// Package composition defines the geometric value types used by the EZD
// global-minimization engine: site-fraction points and axis-aligned
// hyper-rectangular domains over a phase's sublattice composition space.
//
// A phase's composition space is the product of per-sublattice site-fraction
// simplices. Points and Domains are decomposed per sublattice: one inner
// coordinate sequence per sublattice, one value per site species.
//
// All types are plain values: construction validates shape invariants once,
// and every subsequent operation is side-effect free and deterministic.
package composition

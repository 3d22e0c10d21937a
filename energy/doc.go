// Package energy defines the Gibbs-energy sampling boundary consumed by the
// EZD partition engine, together with two concrete solution models and
// finite-difference derivative helpers.
//
// 🚀 What lives here?
//
//   - Sampler: the minimal contract the engine needs: evaluate one phase's
//     molar Gibbs energy at a composition point under fixed conditions.
//     A sampler reports ErrUndefined at singular points (for instance a
//     logarithmic term at site fraction zero); that outcome is recoverable,
//     never fatal.
//   - IdealSolution: endmember reference energies plus the ideal mixing
//     entropy R·T·Σ n_s·Σ y·ln y per sublattice.
//   - RegularSolution: IdealSolution extended with binary Redlich–Kister
//     excess interactions y_i·y_j·Σ_k L_k·(y_i−y_j)^k. A positive L0 term
//     opens the classic miscibility-gap double well.
//   - Gradient / Hessian: central finite differences over any Sampler,
//     with gonum/mat storage; used for curvature classification of
//     candidate minima.
//
// All energies are in J/mol of atoms (site-ratio normalized), temperatures
// in kelvin, pressures in pascal.
package energy

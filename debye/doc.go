// SPDX-License-Identifier: MIT

// Package debye evaluates the Debye scattering equation for a set of
// identical point scatterers over a uniform range of scattering-vector
// magnitudes q.
//
// 🚀 What is the Debye equation?
//
//	For N scatterers with pairwise distances r_ij the isotropic (powder)
//	intensity is
//
//	    I(q) = Σ_i Σ_j sin(q·r_ij) / (q·r_ij)
//
//	summed over all ordered pairs. The r = 0 terms (every self pair and any
//	coincident points) and the q = 0 sample take the sinc limit, exactly 1.
//
// ✨ Key features:
//   - one O(N²) squared-distance table per call, shared read-only by all
//     q samples (row-packed upper triangle, self pairs included)
//   - fork-join over q samples with a fixed worker count (WithWorkers)
//   - bit-identical results for any worker count: each sample is reduced in
//     a fixed order by exactly one goroutine
//   - memory guard on the table (WithMaxTableBytes) instead of an OOM crash
//   - ComputeDirect: table-free reference for cross-checks
//
// ⚙️ Usage:
//
//	curve, err := debye.Compute(1, 15, 0.1, points, debye.WithWorkers(8))
//	if err != nil {
//	    // errors.Is(err, debye.ErrInvalidStep), ErrTableTooLarge, ...
//	}
//	qs := debye.QRange{Min: 1, Max: 15, Step: 0.1}.Values() // x-axis for curve
//
// Counting convention:
//
//	Self pairs contribute 1 each; every distinct pair i<j contributes
//	2·sinc(q·r_ij). Hence: no points ⇒ I ≡ 0, one point ⇒ I ≡ 1,
//	two points at distance r ⇒ I = 2 + 2·sin(qr)/(qr), and I(0) = N².
//
// Complexity:
//
//   - Time:   O(N²) table + O(N²·M) sinc evaluations for M samples.
//   - Memory: 8·N(N+1)/2 bytes for the table + 8·N per worker.
package debye

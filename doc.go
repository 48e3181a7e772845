// SPDX-License-Identifier: MIT

// Package lvscatter is a small kernel for powder-scattering experiments on
// model crystals: build a simple-cubic cluster of atoms, then evaluate its
// Debye scattering curve I(q).
//
// 🚀 What is inside?
//
//	Two packages used in sequence:
//		• lattice: simple-cubic point lattices cut to a cube or a sphere
//		• debye: Debye-equation intensity over a uniform q range,
//		  parallel across q samples
//
// ✨ Model
//
//   - Single species, unit form factor, no thermal factors.
//   - I(q) = Σ_i Σ_j sin(q·r_ij)/(q·r_ij), with the r = 0 term equal to 1.
//   - Deterministic: same inputs, same points, same bits.
//
// Quick example:
//
//	pts, err := lattice.Generate(lattice.Sphere, 3.89, 30)
//	if err != nil { ... }
//	curve, err := debye.Compute(1, 15, 0.1, pts)
//	if err != nil { ... }
//
// Logging is silent by default; call SetLogger to see diagnostics.
//
// Layout:
//
//	lattice/       : Generate, Shape, ParseShape
//	debye/         : Compute, ComputeRange, ComputeDirect, QRange, options
//	cmd/debyeplot/ : demo driver writing a PNG plot of I(q)
//
//	go get github.com/katalvlaran/lvscatter
package lvscatter

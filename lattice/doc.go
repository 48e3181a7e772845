// SPDX-License-Identifier: MIT

// Package lattice generates simple-cubic point lattices cut to a bounding
// shape. The points model atom positions of a single-species crystal and
// feed the Debye intensity engine in package debye.
//
// What:
//
//   - Generate(shape, latticeParam, length) enumerates grid points
//     (i·a, j·a, k·a), i, j, k ≥ 0, inside the half-open box [0, length)³.
//   - Cube keeps every such point.
//   - Sphere keeps the points within length/2 of the box center.
//
// Boundary convention:
//
//   - Lower bound inclusive, upper bound exclusive on every axis, so a
//     lattice that divides length exactly does not gain a duplicate face.
//   - The sphere is cut from the same half-open grid and is therefore a
//     subset of the cube with identical parameters.
//
// Determinism:
//
//   - Points are emitted x-major, then y, then z. Identical inputs always
//     return identical sequences.
//
// Complexity:
//
//   - Time O(n³), Memory O(n³), n = AxisSteps(latticeParam, length).
//
// Errors:
//
//   - ErrInvalidLatticeParam: spacing ≤ 0, NaN or ±Inf.
//   - ErrInvalidLength: length ≤ 0, NaN or ±Inf.
//   - ErrUnknownShape: shape is neither Cube nor Sphere.
//   - ErrGridTooLarge: more than MaxGridPoints candidate points.
package lattice

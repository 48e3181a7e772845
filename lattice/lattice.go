// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvscatter"
	"gonum.org/v1/gonum/spatial/r3"
)

// Generate builds the simple-cubic lattice of spacing latticeParam cut to
// shape, where length is the cube side or the sphere diameter.
//
// Steps:
//  1. Validate latticeParam, length and shape (no allocation on failure).
//  2. n = AxisSteps(latticeParam, length); reject n³ > MaxGridPoints.
//  3. Walk i, j, k in [0, n) (x outermost, z innermost) and keep the point
//     (i·a, j·a, k·a) if it lies inside shape.
//
// Sphere membership compares squared distances to (length/2)² so grid
// points exactly on the surface are kept. The grid stops short of length, so
// when length is a multiple of latticeParam the surface points on the far
// faces (e.g. (L, L/2, L/2)) are missing while their near-face mirrors are
// kept: L=4, a=1 yields 30 points, not the symmetric 33.
//
// Complexity: O(n³) time and memory.
func Generate(shape Shape, latticeParam, length float64) (PointSet, error) {
	n, err := AxisSteps(latticeParam, length)
	if err != nil {
		return nil, fmt.Errorf("Generate(%v, %g, %g): %w", shape, latticeParam, length, err)
	}
	if !shape.Valid() {
		return nil, fmt.Errorf("Generate(%v): %w", shape, ErrUnknownShape)
	}
	if n > 0 && n*n > MaxGridPoints/n {
		return nil, fmt.Errorf("Generate: %d steps per axis: %w", n, ErrGridTooLarge)
	}

	var pts PointSet
	switch shape {
	case Cube:
		pts = cube(n, latticeParam)
	case Sphere:
		pts = sphere(n, latticeParam, length)
	}

	lvscatter.Logger().Debug("lattice generated",
		"shape", shape.String(),
		"lattice_param", latticeParam,
		"length", length,
		"axis_steps", n,
		"points", len(pts))

	return pts, nil
}

// AxisSteps returns how many grid coordinates i·latticeParam (i ≥ 0) fall in
// [0, length). It validates both arguments like Generate does and reports
// ErrGridTooLarge when a single axis alone would exceed MaxGridPoints.
func AxisSteps(latticeParam, length float64) (int, error) {
	if !(latticeParam > 0) || math.IsInf(latticeParam, 0) {
		return 0, ErrInvalidLatticeParam
	}
	if !(length > 0) || math.IsInf(length, 0) {
		return 0, ErrInvalidLength
	}
	ratio := length / latticeParam
	if ratio >= MaxGridPoints {
		return 0, ErrGridTooLarge
	}

	// Ceil gets within one step of the answer; the two loops settle the
	// strict upper bound against the exact products used by the generators.
	n := int(math.Ceil(ratio))
	for n > 0 && float64(n-1)*latticeParam >= length {
		n--
	}
	for float64(n)*latticeParam < length {
		n++
	}

	return n, nil
}

// Center returns the center of the bounding box [0, length)³, which is also
// the center of the sphere cut.
func Center(length float64) Point3 {
	h := length / 2
	return Point3{X: h, Y: h, Z: h}
}

func cube(n int, a float64) PointSet {
	pts := make(PointSet, 0, n*n*n)
	for i := 0; i < n; i++ {
		x := float64(i) * a
		for j := 0; j < n; j++ {
			y := float64(j) * a
			for k := 0; k < n; k++ {
				pts = append(pts, Point3{X: x, Y: y, Z: float64(k) * a})
			}
		}
	}
	return pts
}

func sphere(n int, a, length float64) PointSet {
	c := Center(length)
	r := length / 2
	r2 := r * r

	// π/6 of the bounding box, plus a shell of slack for small grids.
	hint := int(math.Pi/6*float64(n*n*n)) + 6*n*n
	pts := make(PointSet, 0, min(hint, n*n*n))
	for i := 0; i < n; i++ {
		x := float64(i) * a
		for j := 0; j < n; j++ {
			y := float64(j) * a
			for k := 0; k < n; k++ {
				p := Point3{X: x, Y: y, Z: float64(k) * a}
				if r3.Norm2(r3.Sub(p, c)) <= r2 {
					pts = append(pts, p)
				}
			}
		}
	}
	return pts
}

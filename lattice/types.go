// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// MaxGridPoints caps the number of candidate grid points Generate will
// enumerate (AxisSteps³). At 24 bytes per point this bounds the cube output
// to 1.5 GiB.
const MaxGridPoints = 1 << 26

// Point3 is an immutable (x, y, z) atom position.
type Point3 = r3.Vec

// PointSet is an ordered, read-only sequence of lattice points.
// It is assignable to []r3.Vec, which is what package debye consumes.
type PointSet []Point3

// Shape selects the bounding shape a lattice is cut to.
type Shape int

const (
	// Cube keeps every grid point with all coordinates in [0, length).
	Cube Shape = iota
	// Sphere keeps grid points within length/2 of the box center.
	Sphere
)

// String returns the lower-case shape name, or "Shape(n)" for unknown values.
func (s Shape) String() string {
	switch s {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	return s == Cube || s == Sphere
}

// ParseShape maps "cube" or "sphere" (case-insensitive, surrounding space
// ignored) to a Shape. Anything else wraps ErrUnknownShape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cube":
		return Cube, nil
	case "sphere":
		return Sphere, nil
	default:
		return 0, fmt.Errorf("ParseShape(%q): %w", name, ErrUnknownShape)
	}
}

// UnmarshalText lets Shape be decoded from configuration text.
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(s), ErrUnknownShape)
	}
	return []byte(s.String()), nil
}

// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrInvalidLatticeParam indicates a non-positive or non-finite grid spacing.
	ErrInvalidLatticeParam = errors.New("lattice: lattice parameter must be finite and > 0")
	// ErrInvalidLength indicates a non-positive or non-finite cube side / sphere diameter.
	ErrInvalidLength = errors.New("lattice: length must be finite and > 0")
	// ErrUnknownShape indicates an unsupported shape selector.
	ErrUnknownShape = errors.New("lattice: unknown shape (supported: cube, sphere)")
	// ErrGridTooLarge indicates the candidate grid exceeds MaxGridPoints.
	ErrGridTooLarge = errors.New("lattice: grid exceeds MaxGridPoints")
)

// SPDX-License-Identifier: MIT

package debye

import "errors"

// Invalid input. Reported before any allocation; never a partial curve.
var (
	// ErrInvalidStep indicates a q step that is ≤ 0, NaN or ±Inf.
	ErrInvalidStep = errors.New("debye: q step must be finite and > 0")

	// ErrInvalidRange indicates a non-finite bound or Max < Min.
	ErrInvalidRange = errors.New("debye: q range must be finite with min ≤ max")

	// ErrNonFinitePoint indicates a NaN/±Inf coordinate, or a pair whose
	// squared distance overflows float64.
	ErrNonFinitePoint = errors.New("debye: point coordinates must be finite")

	// ErrRangeOverflow indicates a q range whose phase q·r overflows float64
	// for the farthest pair of points.
	ErrRangeOverflow = errors.New("debye: q·r overflows for this range and point set")
)

// Resource exhaustion. The call fails cleanly instead of truncating.
var (
	// ErrTableTooLarge indicates the distance table would exceed the
	// configured byte limit (see WithMaxTableBytes).
	ErrTableTooLarge = errors.New("debye: distance table exceeds memory limit")

	// ErrTooManySamples indicates the q range holds more than MaxSamples samples.
	ErrTooManySamples = errors.New("debye: q range exceeds MaxSamples")
)

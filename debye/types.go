// SPDX-License-Identifier: MIT

package debye

import (
	"fmt"
	"math"
)

// MaxSamples caps QRange.Len for a single call.
const MaxSamples = 1 << 24

// Curve holds one intensity per q sample; index i belongs to QRange.At(i).
type Curve []float64

// QRange describes the half-open interval [Min, Max) sampled every Step.
//
//	Len  = floor((Max - Min) / Step)
//	At(i) = Min + i·Step
//
// Min == Max is valid and has no samples.
type QRange struct {
	Min, Max, Step float64
}

// NewQRange builds and validates a QRange.
func NewQRange(minQ, maxQ, qStep float64) (QRange, error) {
	r := QRange{Min: minQ, Max: maxQ, Step: qStep}
	if err := r.Validate(); err != nil {
		return QRange{}, err
	}
	return r, nil
}

// Validate checks, in order: step, bounds, sample count.
//
// Errors:
//   - ErrInvalidStep:    Step ≤ 0 or non-finite.
//   - ErrInvalidRange:   Min/Max non-finite or Max < Min.
//   - ErrTooManySamples: Len() > MaxSamples.
func (r QRange) Validate() error {
	if !(r.Step > 0) || math.IsInf(r.Step, 0) {
		return fmt.Errorf("QRange.Validate(step=%g): %w", r.Step, ErrInvalidStep)
	}
	if math.IsNaN(r.Min) || math.IsInf(r.Min, 0) || math.IsNaN(r.Max) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("QRange.Validate([%g, %g)): %w", r.Min, r.Max, ErrInvalidRange)
	}
	if r.Max < r.Min {
		return fmt.Errorf("QRange.Validate(max %g < min %g): %w", r.Max, r.Min, ErrInvalidRange)
	}
	if n := math.Floor((r.Max - r.Min) / r.Step); n > MaxSamples {
		return fmt.Errorf("QRange.Validate(%g samples): %w", n, ErrTooManySamples)
	}
	return nil
}

// Len returns the sample count, or 0 for an invalid range.
func (r QRange) Len() int {
	if r.Validate() != nil {
		return 0
	}
	return int(math.Floor((r.Max - r.Min) / r.Step))
}

// At returns the q value of sample i. It does not bounds-check i.
func (r QRange) At(i int) float64 {
	return r.Min + float64(i)*r.Step
}

// Values materializes the q axis matching a Curve computed over r.
func (r QRange) Values() []float64 {
	qs := make([]float64, r.Len())
	for i := range qs {
		qs[i] = r.At(i)
	}
	return qs
}

// SPDX-License-Identifier: MIT

package debye

import (
	"fmt"
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Compute evaluates the Debye intensity of points at q = minQ + i·qStep for
// every sample of [minQ, maxQ). It is shorthand for
// ComputeRange(QRange{minQ, maxQ, qStep}, points, opts...).
func Compute(minQ, maxQ, qStep float64, points []r3.Vec, opts ...Option) (Curve, error) {
	return ComputeRange(QRange{Min: minQ, Max: maxQ, Step: qStep}, points, opts...)
}

// ComputeRange evaluates the Debye intensity of points over r.
//
// Steps:
//  1. Validate r, every point and the table budget (no allocation on error).
//  2. Build the squared-distance table in parallel (rows dealt round-robin)
//     and reject ranges whose largest phase q·r is not finite.
//  3. Split sample indices into contiguous blocks, one per worker; each
//     worker writes only its own slots of the pre-sized Curve.
//
// Returns a non-nil Curve of length r.Len(), in increasing q order.
//
// Errors:
//   - ErrInvalidStep, ErrInvalidRange, ErrTooManySamples: bad q range.
//   - ErrNonFinitePoint: NaN/Inf coordinate or overflowing distance.
//   - ErrRangeOverflow: q·r overflows for the largest |q| and farthest pair.
//   - ErrTableTooLarge: N(N+1)/2·8 bytes above the configured limit.
//
// Determinism: bit-identical output for any WithWorkers value.
func ComputeRange(r QRange, points []r3.Vec, opts ...Option) (Curve, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("ComputeRange: %w", err)
	}
	if err := validatePoints(points); err != nil {
		return nil, fmt.Errorf("ComputeRange: %w", err)
	}
	o := gatherOptions(opts...)
	if err := checkTableSize(len(points), o.maxTableBytes); err != nil {
		return nil, fmt.Errorf("ComputeRange: %w", err)
	}

	m := r.Len()
	curve := make(Curve, m)
	if m == 0 {
		return curve, nil
	}

	start := time.Now()
	t, err := buildTable(points, o.workers)
	if err != nil {
		return nil, fmt.Errorf("ComputeRange: %w", err)
	}
	if err := checkPhase(r, t.maxD2()); err != nil {
		return nil, fmt.Errorf("ComputeRange: %w", err)
	}
	o.logger.Debug("debye: distance table built",
		"points", t.n,
		"entries", len(t.d2),
		"bytes", t.bytes(),
		"elapsed", time.Since(start))

	start = time.Now()
	workers := min(o.workers, m)
	per, rem := m/workers, m%workers

	var wg sync.WaitGroup
	lo := 0
	for w := 0; w < workers; w++ {
		// first rem workers take one extra sample
		count := per
		if w < rem {
			count++
		}
		from, to := lo, lo+count
		lo = to
		wg.Add(1)
		go func() {
			defer wg.Done()
			scratch := make([]float64, max(t.n-1, 0))
			for i := from; i < to; i++ {
				curve[i] = t.intensity(r.At(i), scratch)
			}
		}()
	}
	wg.Wait()

	o.logger.Debug("debye: intensity computed",
		"samples", m,
		"workers", workers,
		"q_min", r.Min,
		"q_step", r.Step,
		"elapsed", time.Since(start))

	return curve, nil
}

// ComputeDirect evaluates the same curve without a distance table: for every
// sample it walks all N² ordered pairs and recomputes each distance. It is
// single-threaded and O(N²·M); use it as a reference for ComputeRange.
//
// Results agree with ComputeRange to floating-point tolerance, not bit for
// bit, because the summation order differs. Errors match ComputeRange except
// ErrTableTooLarge, which never applies.
func ComputeDirect(r QRange, points []r3.Vec) (Curve, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("ComputeDirect: %w", err)
	}
	if err := validatePoints(points); err != nil {
		return nil, fmt.Errorf("ComputeDirect: %w", err)
	}

	m := r.Len()
	if m == 0 {
		return Curve{}, nil
	}
	maxD2, err := maxPairD2(points)
	if err != nil {
		return nil, fmt.Errorf("ComputeDirect: %w", err)
	}
	if err := checkPhase(r, maxD2); err != nil {
		return nil, fmt.Errorf("ComputeDirect: %w", err)
	}

	curve := make(Curve, m)
	for s := range curve {
		q := r.At(s)
		var sum float64
		for i := range points {
			for j := range points {
				sum += pairTerm(q, r3.Norm2(r3.Sub(points[i], points[j])))
			}
		}
		curve[s] = sum
	}

	return curve, nil
}

// maxPairD2 scans every unordered pair for the largest squared distance.
func maxPairD2(points []r3.Vec) (float64, error) {
	var best float64
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d2 := r3.Norm2(r3.Sub(points[i], points[j]))
			if math.IsInf(d2, 1) {
				return 0, fmt.Errorf("pair (%d,%d): squared distance overflows: %w", i, j, ErrNonFinitePoint)
			}
			best = math.Max(best, d2)
		}
	}
	return best, nil
}

func validatePoints(points []r3.Vec) error {
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return fmt.Errorf("point %d (%g, %g, %g): %w", i, p.X, p.Y, p.Z, ErrNonFinitePoint)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

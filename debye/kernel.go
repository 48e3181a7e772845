// SPDX-License-Identifier: MIT

package debye

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// sinc is sin(x)/x with the removable singularity at 0 set to exactly 1.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}

// pairTerm is the Debye contribution of one ordered pair at squared
// distance d2. d2 == 0 short-circuits so the sqrt is skipped for self pairs.
func pairTerm(q, d2 float64) float64 {
	if d2 == 0 {
		return 1
	}
	return sinc(q * math.Sqrt(d2))
}

// maxAbsQ returns the largest |q| sampled by r. r must be valid and non-empty.
func maxAbsQ(r QRange) float64 {
	return math.Max(math.Abs(r.Min), math.Abs(r.At(r.Len()-1)))
}

// checkPhase rejects r when q·r is not finite for the largest sampled |q| and
// the largest squared distance maxD2. Rounded products are monotone, so every
// other pair and sample stays finite when this one does.
func checkPhase(r QRange, maxD2 float64) error {
	q, dist := maxAbsQ(r), math.Sqrt(maxD2)
	if math.IsInf(q*dist, 0) {
		return fmt.Errorf("checkPhase(|q| ≤ %g, r ≤ %g): %w", q, dist, ErrRangeOverflow)
	}
	return nil
}

// intensity evaluates I(q) from the table.
//
// Reduction order is fixed: rows ascending, each row's off-diagonal terms
// written to scratch and reduced with floats.Sum, then accumulated. The
// result therefore does not depend on which goroutine calls it.
//
// scratch must have room for n-1 values.
func (t *distanceTable) intensity(q float64, scratch []float64) float64 {
	var self, cross float64
	for i := 0; i < t.n; i++ {
		row := t.row(i)
		self += pairTerm(q, row[0])

		rest := row[1:]
		if len(rest) == 0 {
			continue
		}
		buf := scratch[:len(rest)]
		for k, d2 := range rest {
			buf[k] = pairTerm(q, d2)
		}
		cross += floats.Sum(buf)
	}

	// Ordered-pair double sum: (i, j) and (j, i) both count.
	return self + 2*cross
}

// SPDX-License-Identifier: MIT

package debye

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// distanceTable stores the squared distance of every unordered pair (i, j),
// i ≤ j, row-packed: row i holds j = i..n-1, so row(i)[0] is the self pair
// and is always 0.
//
// Layout (n = 3):
//
//	d2 = [ d00 d01 d02 | d11 d12 | d22 ]
//	       row 0         row 1     row 2
//
// The table is written once during build (disjoint rows per worker) and is
// read-only afterwards.
type distanceTable struct {
	n  int
	d2 []float64
}

// tableEntries returns n(n+1)/2 without overflow for any int n ≥ 0.
func tableEntries(n int) uint64 {
	u := uint64(n)
	if u%2 == 0 {
		return (u / 2) * (u + 1)
	}
	return u * ((u + 1) / 2)
}

// rowOffset is the index of (i, i) in the packed buffer.
func rowOffset(n, i int) int {
	return i*n - i*(i-1)/2
}

// checkTableSize rejects tables above maxBytes before anything is allocated.
func checkTableSize(n int, maxBytes int64) error {
	const maxRows = 1 << 32 // keeps entries·8 inside uint64
	if n > maxRows {
		return fmt.Errorf("checkTableSize(%d points): %w", n, ErrTableTooLarge)
	}
	entries := tableEntries(n)
	if entries > uint64(maxBytes)/8 || entries > math.MaxInt {
		return fmt.Errorf("checkTableSize(%d points, %d entries, limit %d bytes): %w",
			n, entries, maxBytes, ErrTableTooLarge)
	}
	return nil
}

// buildTable fills the packed table using up to workers goroutines. Rows are
// dealt round-robin (row w, w+workers, ...) so the shrinking row lengths
// even out across workers. Each entry is written by exactly one goroutine.
//
// Fails with ErrNonFinitePoint if a squared distance overflows to +Inf.
func buildTable(points []r3.Vec, workers int) (*distanceTable, error) {
	n := len(points)
	t := &distanceTable{n: n, d2: make([]float64, tableEntries(n))}
	if n == 0 {
		return t, nil
	}
	workers = max(1, min(workers, n))

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < n; i += workers {
				if err := t.fillRow(points, i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *distanceTable) fillRow(points []r3.Vec, i int) error {
	row := t.row(i)
	pi := points[i]
	for k := range row {
		d2 := r3.Norm2(r3.Sub(pi, points[i+k]))
		if math.IsInf(d2, 1) {
			return fmt.Errorf("pair (%d,%d): squared distance overflows: %w", i, i+k, ErrNonFinitePoint)
		}
		row[k] = d2
	}
	return nil
}

// row returns the packed slice for j = i..n-1.
func (t *distanceTable) row(i int) []float64 {
	off := rowOffset(t.n, i)
	return t.d2[off : off+t.n-i]
}

// maxD2 returns the largest squared distance in the table, 0 when empty.
func (t *distanceTable) maxD2() float64 {
	if len(t.d2) == 0 {
		return 0
	}
	return floats.Max(t.d2)
}

// bytes is the table footprint used in diagnostics.
func (t *distanceTable) bytes() int {
	return 8 * len(t.d2)
}

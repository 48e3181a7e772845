package debye_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvscatter/debye"
	"github.com/katalvlaran/lvscatter/lattice"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExampleCompute evaluates a two-atom "molecule" 2 Å long. At q = 0 every
// ordered pair contributes 1, so I(0) = N² = 4.
func ExampleCompute() {
	pts := []r3.Vec{{X: 0}, {X: 2}}
	curve, err := debye.Compute(0, 2, 0.5, pts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	qs := debye.QRange{Min: 0, Max: 2, Step: 0.5}.Values()
	for i, v := range curve {
		fmt.Printf("q=%.1f I=%.4f\n", qs[i], v)
	}
	// Output:
	// q=0.0 I=4.0000
	// q=0.5 I=3.6829
	// q=1.0 I=2.9093
	// q=1.5 I=2.0941
}

// ExampleComputeRange chains the lattice generator into the engine.
func ExampleComputeRange() {
	pts, err := lattice.Generate(lattice.Cube, 1, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	r := debye.QRange{Min: 0, Max: 1, Step: 0.5}
	curve, err := debye.ComputeRange(r, pts, debye.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(pts), len(curve), curve[0])
	// Output:
	// 27 2 729
}

// ExampleCompute_invalidStep shows how validation failures surface.
func ExampleCompute_invalidStep() {
	_, err := debye.Compute(1, 15, 0, nil)
	fmt.Println(errors.Is(err, debye.ErrInvalidStep))
	// Output:
	// true
}

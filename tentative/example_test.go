package tentative_test

import (
	"fmt"
	"math"

	"github.com/velmarin/sagmg/aggregate"
	"github.com/velmarin/sagmg/sparse"
	"github.com/velmarin/sagmg/strength"
	"github.com/velmarin/sagmg/tentative"
)

// ExampleFit runs the whole setup pipeline on a five-node path graph with
// the constant vector as the single near-nullspace candidate: strength
// filter at θ=0, standard aggregation, then tentative prolongation.
func ExampleFit() {
	// 1D Laplacian stencil [-1 2 -1] on a path of 5 nodes.
	a := sparse.NewCSR(5, 5,
		[]int32{0, 2, 5, 8, 11, 13},
		[]int32{0, 1, 0, 1, 2, 1, 2, 3, 2, 3, 4, 3, 4},
		[]float64{2, -1, -1, 2, -1, -1, 2, -1, -1, 2, -1, -1, 2},
	)

	// Strength of connection (θ=0 keeps the full adjacency).
	s := sparse.NewCSR(0, 0,
		make([]int32, 6), make([]int32, a.NNZ()), make([]float64, a.NNZ()))
	if err := strength.Filter(a, 0.0, s); err != nil {
		fmt.Println("filter:", err)
		return
	}

	// Standard aggregation.
	x := make([]int32, 5)
	y := make([]int32, 5)
	count, err := aggregate.Standard(s, x, y)
	if err != nil {
		fmt.Println("aggregate:", err)
		return
	}
	op, err := aggregate.BuildOperator(x, count)
	if err != nil {
		fmt.Println("operator:", err)
		return
	}

	// Tentative prolongator from the constant candidate.
	b := []float64{1, 1, 1, 1, 1}
	p := make([]float64, len(op.Rows))
	r := make([]float64, count)
	if err := tentative.Fit(op, 1, 1, p, b, r, 1e-10); err != nil {
		fmt.Println("fit:", err)
		return
	}

	fmt.Println("aggregates:", count)
	fmt.Printf("coarse candidates: [%.4f %.4f]\n", r[0], r[1])
	fmt.Println("first column orthonormal:", math.Abs(p[0]*p[0]+p[1]*p[1]-1) < 1e-12)
	// Output:
	// aggregates: 2
	// coarse candidates: [1.4142 1.7321]
	// first column orthonormal: true
}

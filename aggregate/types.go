// Package aggregate: sentinel errors and the aggregate-membership operator.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/velmarin/sagmg/sparse"
)

var (
	// ErrBadAssignment is returned when an assignment vector holds a value
	// outside the terminal encoding [-1, count).
	ErrBadAssignment = errors.New("aggregate: assignment value out of range")

	// ErrBadCount is returned for a negative aggregate count.
	ErrBadCount = errors.New("aggregate: aggregate count must be non-negative")
)

// Isolated is the terminal assignment of a node with no strong neighbors.
const Isolated = -1

// Operator is the column-wise membership view of an aggregation: aggregate
// j owns the fine nodes Rows[Ptr[j]:Ptr[j+1]], ascending within each
// aggregate. It is the sparsity pattern the tentative prolongator builder
// iterates over (one output block column per aggregate).
type Operator[I sparse.Index] struct {
	// Nodes is the fine-node count the assignment was built from.
	Nodes int
	// Aggregates is the number of aggregates (coarse unknowns).
	Aggregates int
	// Ptr has length Aggregates+1 and delimits each aggregate's members.
	Ptr []I
	// Rows lists member fine nodes, ascending within each aggregate.
	// Isolated nodes appear in no aggregate.
	Rows []I
}

// BuildOperator converts a terminal assignment vector (as produced by
// Standard or Naive) with the given aggregate count into an Operator.
// Returns ErrBadCount or ErrBadAssignment on malformed input.
func BuildOperator[I sparse.Index](x []I, count int) (*Operator[I], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	op := &Operator[I]{
		Nodes:      len(x),
		Aggregates: count,
		Ptr:        make([]I, count+1),
	}

	// Counting pass: aggregate sizes into Ptr[1:].
	members := 0
	for i, xi := range x {
		if xi == Isolated {
			continue
		}
		if xi < 0 || int(xi) >= count {
			return nil, fmt.Errorf("%w: x[%d] = %d with %d aggregates", ErrBadAssignment, i, xi, count)
		}
		op.Ptr[xi+1]++
		members++
	}
	for j := 0; j < count; j++ {
		op.Ptr[j+1] += op.Ptr[j]
	}

	// Fill pass: ascending i keeps members ascending within each aggregate.
	op.Rows = make([]I, members)
	next := make([]I, count)
	copy(next, op.Ptr[:count])
	for i, xi := range x {
		if xi == Isolated {
			continue
		}
		op.Rows[next[xi]] = I(i)
		next[xi]++
	}

	return op, nil
}

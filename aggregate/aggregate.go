package aggregate

import (
	"fmt"

	"github.com/velmarin/sagmg/scalar"
	"github.com/velmarin/sagmg/sparse"
)

// Standard partitions the nodes of the strength graph s into aggregates
// with the standard three-pass policy and returns the aggregate count.
//
// x (len ≥ s.Rows) receives the terminal assignment: -1 for isolated nodes,
// otherwise the zero-based aggregate id, with max(x)+1 == count. y
// (len ≥ s.Rows) receives each aggregate's root node in y[0:count]. Both
// buffers are caller-allocated and fully overwritten in their used range.
//
// The graph is assumed symmetric; self loops are permitted and ignored when
// probing neighborhoods. Nodes are visited in ascending order, first
// qualifying neighbor wins, so the result is deterministic.
func Standard[I sparse.Index, T scalar.Scalar](s *sparse.CSR[I, T], x, y []I) (int, error) {
	if err := prepare(s, x, y); err != nil {
		return 0, err
	}

	n := s.Rows
	next := I(1) // 1-based id of the next aggregate to seed

	// Pass 1: seed aggregates on nodes whose neighborhood is untouched.
	for i := 0; i < n; i++ {
		if x[i] != 0 {
			continue
		}

		hasNeighbors := false
		hasAggregated := false
		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			if j := s.Aj[jj]; int(j) != i {
				hasNeighbors = true
				if x[j] != 0 {
					hasAggregated = true

					break
				}
			}
		}

		switch {
		case !hasNeighbors:
			// Isolated node: permanently excluded from aggregation.
			x[i] = -I(n)
		case !hasAggregated:
			// Root i claims itself and its whole neighborhood.
			x[i] = next
			y[next-1] = I(i)
			for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
				x[s.Aj[jj]] = next
			}
			next++
		}
	}

	// Pass 2: sweep leftovers into a neighboring aggregate, tentatively
	// (negative marking keeps them from being claimed as pass-1 roots
	// were — they must not attract further neighbors).
	for i := 0; i < n; i++ {
		if x[i] != 0 {
			continue
		}
		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			if xj := x[s.Aj[jj]]; xj > 0 {
				x[i] = -xj

				break
			}
		}
	}

	next-- // number of aggregates seeded so far

	// Pass 3: normalize encodings; any node still unmarked seeds its own
	// aggregate and absorbs its still-unmarked neighbors.
	for i := 0; i < n; i++ {
		xi := x[i]
		if xi != 0 {
			switch {
			case xi > 0: // root or pass-1 member: 1-based → 0-based
				x[i] = xi - 1
			case xi == -I(n): // isolated
				x[i] = Isolated
			default: // tentatively attached
				x[i] = -xi - 1
			}

			continue
		}

		x[i] = next
		y[next] = I(i)
		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			if j := s.Aj[jj]; x[j] == 0 {
				x[j] = next
			}
		}
		next++
	}

	return int(next), nil
}

// Naive partitions the nodes of s with the single-pass greedy policy and
// returns the aggregate count: each unmarked node in ascending order forms
// an aggregate from itself and every currently unmarked neighbor.
//
// Unlike Standard, already-aggregated neighbors are simply left alone, so
// every node ends up aggregated (count can be much larger) and the terminal
// encoding contains no isolated markers. Buffers follow the same contract
// as Standard.
func Naive[I sparse.Index, T scalar.Scalar](s *sparse.CSR[I, T], x, y []I) (int, error) {
	if err := prepare(s, x, y); err != nil {
		return 0, err
	}

	n := s.Rows
	next := I(1)

	for i := 0; i < n; i++ {
		if x[i] != 0 {
			continue
		}
		x[i] = next
		for jj := s.Ap[i]; jj < s.Ap[i+1]; jj++ {
			if j := s.Aj[jj]; x[j] == 0 {
				x[j] = next
			}
		}
		y[next-1] = I(i)
		next++
	}

	// Normalize the working 1-based ids to the terminal 0-based encoding.
	for i := 0; i < n; i++ {
		x[i]--
	}

	return int(next - 1), nil
}

// prepare runs the shared fail-fast checks and zeroes the assignment.
func prepare[I sparse.Index, T scalar.Scalar](s *sparse.CSR[I, T], x, y []I) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Rows != s.Cols {
		return fmt.Errorf("strength graph is %dx%d: %w", s.Rows, s.Cols, sparse.ErrShapeMismatch)
	}
	if err := sparse.ValidateBufferLen("assignment x", len(x), s.Rows); err != nil {
		return err
	}
	if err := sparse.ValidateBufferLen("root list y", len(y), s.Rows); err != nil {
		return err
	}
	for i := 0; i < s.Rows; i++ {
		x[i] = 0
	}

	return nil
}

// Package aggregate partitions the nodes of a strength-of-connection graph
// into aggregates — the clusters that become single coarse-grid unknowns in
// smoothed-aggregation multigrid.
//
// What
//
//   - Standard: the three-pass root/sweep/resolve algorithm. Pass one seeds
//     an aggregate at every node whose neighborhood is still untouched
//     (the node becomes the aggregate's root, its "C-point"); pass two
//     attaches leftover nodes to a neighboring aggregate; pass three
//     normalizes encodings and turns any node both passes missed into a
//     fresh aggregate absorbing its still-unmarked neighbors.
//   - Naive: a single greedy pass — every unmarked node forms an aggregate
//     from itself and its currently unmarked neighbors. Faster, more and
//     smaller aggregates, higher operator complexity.
//   - BuildOperator: converts a terminal assignment vector into the
//     column-wise membership pattern (aggregate → ascending member nodes)
//     that the tentative prolongator builder consumes.
//
// Encodings
//
//	During Standard's passes, x[i] == 0 means unaggregated, a positive k
//	means member of aggregate k-1, -n means permanently isolated (no
//	off-diagonal neighbors at all), and any other negative value means
//	tentatively attached. Both policies return the terminal encoding:
//	-1 for isolated nodes, otherwise the zero-based aggregate id. The root
//	list y records each aggregate's seed node.
//
// Determinism
//
//	Nodes are visited in ascending index order and the first qualifying
//	neighbor wins every tie, so re-running either policy on the same graph
//	reproduces the assignment exactly.
//
// Complexity: O(rows + nnz) time for either policy, no scratch beyond the
// caller-provided x and y buffers.
package aggregate

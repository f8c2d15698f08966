// Package tentative builds the tentative prolongator of a smoothed-
// aggregation hierarchy: the interpolation operator obtained by restricting
// the near-nullspace candidates to each aggregate and orthonormalizing.
//
// What
//
//	Fit processes each aggregate (each output block column) independently:
//	copy the candidate rows of the aggregate's member nodes into the
//	prolongator value array, then run modified Gram-Schmidt across the
//	candidate columns restricted to those rows. The orthogonalization
//	coefficients and column norms land in the coarse candidate factor R, so
//	that per aggregate
//
//	    B_local = P_local · R_local    and    P_localᴴ · P_local = I
//
//	restricted to the columns that survive.
//
// Dropped candidates
//
//	A candidate whose restriction to an aggregate is numerically dependent
//	on earlier candidates (post-orthogonalization norm ≤ tol × its original
//	norm) is zeroed and its diagonal entry of R set to zero — dropped from
//	the coarse space by policy, never a division error. Aggregates with no
//	members produce all-zero prolongator rows; the two relationships above
//	then hold only on the nonzero rows (documented exception).
//
// Complexity: O(members · k1 · k2²) per aggregate, no allocation — the
// prolongator values and R are caller-owned and mutated in place.
package tentative

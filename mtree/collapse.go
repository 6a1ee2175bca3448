// SPDX-License-Identifier: MIT
// Package mtree: collapse engine — materialize the represented dense matrix.
//
// Purpose:
//   - Collapse/CollapseInto walk the tree recursively and produce the
//     elementwise sum of every reachable leaf block, row-major.
//   - Dense hands the materialized sum to the gonum ecosystem as *mat.Dense.
//
// Determinism & Performance:
//   - Children are visited in attach order; summation is commutative, so
//     the order affects only the walk, never the result.
//   - Accumulation runs on flat buffers via gonum floats.Add.
//   - No memoization: the tree is read-only after construction, so repeated
//     collapses redo the work; callers needing the sum repeatedly should
//     cache the returned buffer.

package mtree

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Collapse materializes the dense matrix represented by n into a fresh
// row-major buffer of length Rows()*Cols().
//
// Complexity: O(total leaf elements) time, O(rows*cols · depth) scratch.
func Collapse(n *Node) ([]float64, error) {
	// Validate the evaluation target (nil / destroyed / unset).
	if err := validateEvaluable(n); err != nil {
		return nil, treeErrorf(opCollapse, err)
	}

	// Allocate the output and accumulate into it.
	out := make([]float64, n.rows*n.cols)
	n.collapseInto(out)

	return out, nil
}

// CollapseInto materializes the dense matrix represented by n into out, a
// caller-provided buffer of exactly Rows()*Cols() elements. The buffer is
// zeroed before accumulation, so its prior contents never leak into the
// result.
//
// Stage 1 (Validate): evaluable node, exact buffer length.
// Stage 2 (Execute): zero out, then accumulate the subtree sum.
// Complexity: O(total leaf elements).
func CollapseInto(n *Node, out []float64) error {
	// Validate the evaluation target (nil / destroyed / unset).
	if err := validateEvaluable(n); err != nil {
		return treeErrorf(opCollapse, err)
	}
	// The output must hold exactly one value per matrix cell.
	if err := validateVecLen(out, n.rows*n.cols); err != nil {
		return treeErrorf(opCollapse, err)
	}

	// Zero the accumulation target; policy is zero-internally, always.
	clear(out)
	n.collapseInto(out)

	return nil
}

// collapseInto accumulates the subtree sum into out (len == rows*cols).
// Preconditions (validated by the public entry points, preserved by
// SetChildren for every descendant): node set, out correctly sized.
func (n *Node) collapseInto(out []float64) {
	// Leaf: add the block directly; no scratch needed.
	if n.kind == Leaf {
		floats.Add(out, n.leaf)
		return
	}

	// Internal: recurse per child, reusing one scratch buffer across the
	// fan-out, and fold each child's collapsed block into the accumulator.
	scratch := make([]float64, n.rows*n.cols)
	for _, c := range n.children {
		clear(scratch)
		c.collapseInto(scratch)
		floats.Add(out, scratch)
	}
}

// Dense collapses n and wraps the result in a gonum *mat.Dense, sharing the
// freshly allocated buffer. Use it to hand the represented matrix to gonum
// routines (decompositions, norms, further products).
//
// Complexity: O(total leaf elements).
func Dense(n *Node) (*mat.Dense, error) {
	// Collapse performs all validation and allocates the backing buffer.
	data, err := Collapse(n)
	if err != nil {
		return nil, treeErrorf(opDense, err)
	}

	// NewDense adopts the row-major buffer without copying.
	return mat.NewDense(n.rows, n.cols, data), nil
}

// SPDX-License-Identifier: MIT
// Package mtree: multiply engine — y = A·x over the sum structure.
//
// Purpose:
//   - Compute the matrix-vector product of the represented matrix without
//     ever materializing it, distributing x over the sum:
//     (A₁ + … + Aₖ)·x = A₁·x + … + Aₖ·x.
//
// Design:
//   - Recursion accumulates directly into y. All children of an Internal
//     node share the output shape and addition is associative, so no
//     per-child scratch vector is needed — this is the algorithmic payoff
//     of the tree representation: cost is linear in total leaf elements,
//     independent of how many summation levels separate leaves from root.
//   - The leaf kernel is a row-major dense GEMV via gonum blas64 with β = 1,
//     i.e. the accumulate form y ← A·x + y.

package mtree

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// MulVec computes y = A·x for the matrix A represented by n, returning a
// fresh result vector of length Rows(). A is never materialized.
//
// Complexity: O(total leaf elements) time, O(rows) space.
func MulVec(n *Node, x []float64) ([]float64, error) {
	// Validate the evaluation target (nil / destroyed / unset).
	if err := validateEvaluable(n); err != nil {
		return nil, treeErrorf(opMulVec, err)
	}
	// x pairs with the matrix columns.
	if err := validateVecLen(x, n.cols); err != nil {
		return nil, treeErrorf(opMulVec, err)
	}

	// Allocate the zeroed result and accumulate into it.
	y := make([]float64, n.rows)
	n.mulVecInto(x, y)

	return y, nil
}

// MulVecInto computes y = A·x into a caller-provided vector y of length
// Rows(). The vector is zeroed before accumulation; policy is
// zero-internally, matching CollapseInto.
//
// Stage 1 (Validate): evaluable node, len(x) == cols, len(y) == rows.
// Stage 2 (Execute): zero y, then accumulate the subtree product.
// Complexity: O(total leaf elements).
func MulVecInto(n *Node, x, y []float64) error {
	// Validate the evaluation target (nil / destroyed / unset).
	if err := validateEvaluable(n); err != nil {
		return treeErrorf(opMulVec, err)
	}
	// x pairs with the matrix columns.
	if err := validateVecLen(x, n.cols); err != nil {
		return treeErrorf(opMulVec, err)
	}
	// y pairs with the matrix rows.
	if err := validateVecLen(y, n.rows); err != nil {
		return treeErrorf(opMulVec, err)
	}

	// Zero the accumulation target, then fold the product in.
	clear(y)
	n.mulVecInto(x, y)

	return nil
}

// mulVecInto accumulates this subtree's contribution A·x into y.
// Preconditions (validated by the public entry points, preserved by
// SetChildren for every descendant): node set, vectors correctly sized.
func (n *Node) mulVecInto(x, y []float64) {
	// Internal: distribute x over the children, accumulating into the same y.
	if n.kind == Internal {
		for _, c := range n.children {
			c.mulVecInto(x, y)
		}
		return
	}

	// Leaf: y ← 1·A·x + 1·y on the flat row-major block.
	a := blas64.General{Rows: n.rows, Cols: n.cols, Stride: n.cols, Data: n.leaf}
	blas64.Gemv(blas.NoTrans, 1,
		a,
		blas64.Vector{N: n.cols, Inc: 1, Data: x},
		1,
		blas64.Vector{N: n.rows, Inc: 1, Data: y},
	)
}

// SPDX-License-Identifier: MIT
// Package mtree: single, canonical source of truth for guard checks.
//
// Purpose:
//   - Keep kernels and facades minimal by delegating nil/lifecycle/shape
//     checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with treeErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package mtree

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opNew         = "New"
	opNewLeaf     = "NewLeaf"
	opNewSum      = "NewSum"
	opSetLeafData = "SetLeafData"
	opSetChildren = "SetChildren"
	opDestroy     = "Destroy"
	opCollapse    = "Collapse"
	opMulVec      = "MulVec"
	opScale       = "Scale"
	opDense       = "Dense"
	opChild       = "Child"
	opLeafData    = "LeafData"
)

// treeErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil; wrapping a nil cause yields a non-nil error.
func treeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateHandle ensures n is a live handle: non-nil and not yet destroyed.
// Returns ErrNilNode or ErrNodeDestroyed. Complexity: O(1).
func validateHandle(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.destroyed {
		return ErrNodeDestroyed
	}

	return nil
}

// validateEvaluable ensures n is a live handle whose payload was populated,
// i.e. a legal target for Collapse/MulVec/Scale.
// Checks run in a fixed sequence: handle first, then set-once latch.
func validateEvaluable(n *Node) error {
	if err := validateHandle(n); err != nil {
		return err
	}
	if !n.set {
		return ErrNotSet
	}

	return nil
}

// validateShape ensures requested dimensions are positive.
// Returns ErrBadShape. Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrBadShape
	}

	return nil
}

// validateVecLen ensures a vector has exactly the required length.
// Returns ErrDimensionMismatch. Complexity: O(1).
func validateVecLen(v []float64, want int) error {
	if len(v) != want {
		return ErrDimensionMismatch
	}

	return nil
}

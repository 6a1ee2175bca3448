// SPDX-License-Identifier: MIT
// Package mtree: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the mtree
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.

package mtree

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "mtree: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with treeErrorf(op, ErrX) at the
// call site — callers still match via errors.Is.

var (
	// ErrNilNode indicates that a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("mtree: nil node")

	// ErrBadShape is returned when requested dimensions are invalid (r<1 or c<1).
	// New must validate shape before allocation.
	ErrBadShape = errors.New("mtree: dimensions must be >= 1")

	// ErrBadKind signals a Kind value outside {Leaf, Internal} at construction.
	ErrBadKind = errors.New("mtree: unknown node kind")

	// ErrWrongKind signals a variant mismatch: a leaf-only operation on an
	// Internal node, or a children-only operation on a Leaf.
	ErrWrongKind = errors.New("mtree: operation not valid for node kind")

	// ErrAlreadySet signals a second SetLeafData/SetChildren call on a node
	// whose payload was already populated. The node is set exactly once.
	ErrAlreadySet = errors.New("mtree: node payload already set")

	// ErrNotSet signals an evaluation (Collapse/MulVec/Scale) or accessor call
	// on a node whose payload was never populated.
	ErrNotSet = errors.New("mtree: node payload not set")

	// ErrDataLength indicates that a leaf buffer length differs from rows*cols.
	ErrDataLength = errors.New("mtree: leaf data length must equal rows*cols")

	// ErrNoChildren indicates SetChildren was called with zero children.
	ErrNoChildren = errors.New("mtree: internal node requires at least one child")

	// ErrDimensionMismatch indicates incompatible shapes: a child whose
	// (rows, cols) differs from its parent's, or a vector/buffer whose length
	// does not match the node's rows or cols.
	ErrDimensionMismatch = errors.New("mtree: dimension mismatch")

	// ErrChildOwned indicates a handle already owned by a parent was used
	// where an unowned node is required (re-attach, direct Destroy).
	ErrChildOwned = errors.New("mtree: node is owned by a parent")

	// ErrNodeDestroyed indicates a handle whose subtree was already released.
	// Any use after Destroy reports this sentinel.
	ErrNodeDestroyed = errors.New("mtree: node already destroyed")

	// ErrIndexOutOfRange indicates a child index outside [0, NumChildren).
	ErrIndexOutOfRange = errors.New("mtree: child index out of range")
)

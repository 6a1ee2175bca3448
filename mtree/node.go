// SPDX-License-Identifier: MIT
// Package mtree: node store — construction, set-once population, destruction.
//
// Purpose:
//   - New/Destroy own the node lifecycle; SetLeafData/SetChildren populate
//     the payload exactly once.
//   - NewLeaf/NewSum are thin intention-revealing facades over the strict
//     two-step lifecycle; they add no logic of their own.
//
// Design:
//   - Ownership is strictly tree-shaped. SetChildren transfers every child
//     into the parent in one atomic step: after it succeeds, the caller's
//     child handles are attach-frozen (re-attach and direct Destroy fail
//     with ErrChildOwned). A node can therefore never gain two parents, and
//     a subtree is released exactly once, by its unique root.

package mtree

// New allocates an empty node of the given kind and shape.
//
// Stage 1 (Validate): rows, cols ≥ 1 and kind ∈ {Leaf, Internal}.
// Stage 2 (Finalize): return the empty node; payload comes later via the
// matching set operation.
// Complexity: O(1).
func New(rows, cols int, kind Kind) (*Node, error) {
	// Validate requested shape before allocating.
	if err := validateShape(rows, cols); err != nil {
		return nil, treeErrorf(opNew, err)
	}
	// Reject kinds outside the two-variant tag set.
	if kind != Leaf && kind != Internal {
		return nil, treeErrorf(opNew, ErrBadKind)
	}

	return &Node{kind: kind, rows: rows, cols: cols}, nil
}

// NewLeaf allocates a Leaf node and populates it with a copy of data in one
// call. Equivalent to New(rows, cols, Leaf) followed by SetLeafData(data).
// Complexity: O(rows*cols) for the copy.
func NewLeaf(rows, cols int, data []float64) (*Node, error) {
	// Allocate the empty leaf.
	n, err := New(rows, cols, Leaf)
	if err != nil {
		return nil, treeErrorf(opNewLeaf, err)
	}
	// Populate via the canonical setter (copies data, validates length).
	if err = n.SetLeafData(data); err != nil {
		return nil, treeErrorf(opNewLeaf, err)
	}

	return n, nil
}

// NewSum allocates an Internal node shaped like its first child and attaches
// all children in order. Equivalent to New(r, c, Internal) followed by
// SetChildren(children...). Ownership of every child transfers on success.
// Complexity: O(len(children)).
func NewSum(children ...*Node) (*Node, error) {
	// At least one child is required to derive the shape.
	if len(children) == 0 {
		return nil, treeErrorf(opNewSum, ErrNoChildren)
	}
	// The shape template must be a live handle.
	if err := validateHandle(children[0]); err != nil {
		return nil, treeErrorf(opNewSum, err)
	}
	// Allocate the empty internal node with the shared shape.
	n, err := New(children[0].rows, children[0].cols, Internal)
	if err != nil {
		return nil, treeErrorf(opNewSum, err)
	}
	// Attach via the canonical setter (validates and transfers ownership).
	if err = n.SetChildren(children...); err != nil {
		return nil, treeErrorf(opNewSum, err)
	}

	return n, nil
}

// SetLeafData populates a freshly created Leaf node with a copy of data.
// Valid exactly once per node; data is copied, the caller's slice is never
// aliased or retained.
//
// Stage 1 (Validate): live handle → Leaf kind → set-once latch → length
// equals rows*cols. No mutation happens before all checks pass.
// Stage 2 (Execute): copy into an internally owned buffer, latch the node.
// Complexity: O(rows*cols).
func (n *Node) SetLeafData(data []float64) error {
	// Validate the handle itself (nil / destroyed).
	if err := validateHandle(n); err != nil {
		return treeErrorf(opSetLeafData, err)
	}
	// Leaf-only operation.
	if n.kind != Leaf {
		return treeErrorf(opSetLeafData, ErrWrongKind)
	}
	// Set-once: a second call is a precondition violation, not an overwrite.
	if n.set {
		return treeErrorf(opSetLeafData, ErrAlreadySet)
	}
	// The buffer must hold exactly one value per matrix cell.
	if err := validateVecLen(data, n.rows*n.cols); err != nil {
		return treeErrorf(opSetLeafData, ErrDataLength)
	}

	// Copy into an owned buffer; the caller keeps full control of data.
	n.leaf = make([]float64, len(data))
	copy(n.leaf, data)
	n.set = true

	return nil
}

// SetChildren populates a freshly created Internal node with an ordered
// child list and takes ownership of every child. Valid exactly once per
// node. After success the caller must treat the child handles as borrowed:
// they can still be read, but not re-attached or destroyed independently.
//
// Every child must already be populated. Bottom-up construction keeps the
// tree invariants structural: an attached subtree is evaluable in full, and
// a cycle can never form — closing one would require repopulating a node
// that is already attached, which the set-once latch rejects.
//
// Stage 1 (Validate): live handle → Internal kind → set-once latch → at
// least one child → every child live, unowned, populated, not listed twice,
// and shaped (rows, cols) like the parent. All checks complete before any
// mutation, so a failed call leaves every node (parent and children)
// exactly as it was.
// Stage 2 (Execute): copy the list, mark each child owned, latch the node.
// Complexity: O(len(children)).
func (n *Node) SetChildren(children ...*Node) error {
	// Validate the handle itself (nil / destroyed).
	if err := validateHandle(n); err != nil {
		return treeErrorf(opSetChildren, err)
	}
	// Children-only operation.
	if n.kind != Internal {
		return treeErrorf(opSetChildren, ErrWrongKind)
	}
	// Set-once: the child list is immutable after the first assignment.
	if n.set {
		return treeErrorf(opSetChildren, ErrAlreadySet)
	}
	// An empty sum has no defined shape; reject zero children.
	if len(children) == 0 {
		return treeErrorf(opSetChildren, ErrNoChildren)
	}

	// Validate every child before touching any of them.
	seen := make(map[*Node]struct{}, len(children))
	for _, c := range children {
		if err := validateHandle(c); err != nil {
			return treeErrorf(opSetChildren, err)
		}
		// A child already inside another tree cannot gain a second parent.
		if c.owned {
			return treeErrorf(opSetChildren, ErrChildOwned)
		}
		// The same handle listed twice would alias one node under two slots.
		if _, dup := seen[c]; dup {
			return treeErrorf(opSetChildren, ErrChildOwned)
		}
		seen[c] = struct{}{}
		// Children attach bottom-up: an unpopulated child has no matrix to
		// contribute, and could later be latched into a cycle.
		if !c.set {
			return treeErrorf(opSetChildren, ErrNotSet)
		}
		// Every node of a tree shares the parent's shape.
		if c.rows != n.rows || c.cols != n.cols {
			return treeErrorf(opSetChildren, ErrDimensionMismatch)
		}
	}

	// All checks passed: transfer ownership atomically, preserving order.
	n.children = make([]*Node, len(children))
	copy(n.children, children)
	for _, c := range n.children {
		c.owned = true
	}
	n.set = true

	return nil
}

// Destroy releases the node and its entire owned subtree, bottom-up, exactly
// once. Leaf buffers and child lists are dropped and every handle in the
// subtree is poisoned: any later use reports ErrNodeDestroyed.
//
// Only an unowned root may be destroyed directly; a handle that was
// transferred into a parent fails with ErrChildOwned and is released by its
// parent instead. Calling Destroy twice fails with ErrNodeDestroyed.
// Complexity: O(nodes in the subtree).
func (n *Node) Destroy() error {
	// Validate the handle itself (nil / destroyed).
	if err := validateHandle(n); err != nil {
		return treeErrorf(opDestroy, err)
	}
	// Owned handles are released by their unique parent, never directly.
	if n.owned {
		return treeErrorf(opDestroy, ErrChildOwned)
	}

	n.release()

	return nil
}

// release drops the subtree payload bottom-up and poisons every handle.
// Internal recursion bypasses the owned-handle guard: the parent is the one
// caller allowed to release its children.
func (n *Node) release() {
	// Children first, so the walk is strictly bottom-up.
	for _, c := range n.children {
		c.release()
	}
	// Drop both payload variants and poison the handle.
	n.leaf = nil
	n.children = nil
	n.destroyed = true
}

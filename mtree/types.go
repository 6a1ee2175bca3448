// SPDX-License-Identifier: MIT
// Package mtree: core node type and read-only accessor surface.
//
// Purpose:
//   - Define Node as a tagged variant: either an owned row-major leaf buffer
//     or an owned, ordered list of owned children — never both, never a raw
//     payload pointer disambiguated by hand.
//   - Keep every field unexported so the set-once and ownership invariants
//     cannot be bypassed from outside the package.

package mtree

import "fmt"

// Kind tags the two node variants of a sum-tree.
type Kind uint8

const (
	// Leaf marks a node holding a raw dense matrix block (row-major float64).
	Leaf Kind = iota

	// Internal marks a node representing the elementwise sum of its children.
	Internal
)

// String implements fmt.Stringer for diagnostics and dump output.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "LEAF"
	case Internal:
		return "INTERNAL"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is a single node of a matrix sum-tree.
//
// Exactly one of leaf/children is non-nil once the payload is set, selected
// by kind. rows and cols are fixed at construction; every node of a tree
// shares one shape, enforced at attach time.
//
// Lifecycle: New → one successful SetLeafData or SetChildren → read-only
// (Scale excepted) → at most one Destroy.
type Node struct {
	kind Kind
	rows int
	cols int

	leaf     []float64 // row-major rows*cols block; nil until SetLeafData
	children []*Node   // ordered owned children; nil until SetChildren

	set       bool // payload populated (set-once latch)
	owned     bool // transferred into a parent via SetChildren
	destroyed bool // subtree released; handle is poisoned
}

// Kind reports the node's variant tag. Valid even before the payload is set.
func (n *Node) Kind() Kind { return n.kind }

// Rows reports the number of matrix rows. Complexity: O(1).
func (n *Node) Rows() int { return n.rows }

// Cols reports the number of matrix columns. Complexity: O(1).
func (n *Node) Cols() int { return n.cols }

// IsSet reports whether the payload has been populated.
func (n *Node) IsSet() bool { return n.set }

// NumChildren reports the child count of an Internal node, zero for a Leaf
// or an unset node. Complexity: O(1).
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child of an Internal node. The returned handle is
// read-only for the caller: it remains owned by the receiver, so it cannot
// be re-attached or destroyed independently.
//
// Stage 1 (Validate): live handle, Internal kind, payload set, index bounds.
// Stage 2 (Finalize): return the owned child.
// Complexity: O(1).
func (n *Node) Child(i int) (*Node, error) {
	// Validate the handle itself (nil / destroyed).
	if err := validateHandle(n); err != nil {
		return nil, treeErrorf(opChild, err)
	}
	// Only Internal nodes carry children.
	if n.kind != Internal {
		return nil, treeErrorf(opChild, ErrWrongKind)
	}
	// An unset Internal node has no children to hand out.
	if !n.set {
		return nil, treeErrorf(opChild, ErrNotSet)
	}
	// Bounds check against the owned child list.
	if i < 0 || i >= len(n.children) {
		return nil, treeErrorf(opChild, ErrIndexOutOfRange)
	}

	return n.children[i], nil
}

// LeafData returns a copy of a Leaf node's row-major buffer. A copy keeps the
// accessor contract read-only: collaborators (dumpers, tests) can never
// mutate the tree through it.
//
// Complexity: O(rows*cols) for the copy.
func (n *Node) LeafData() ([]float64, error) {
	// Validate the handle itself (nil / destroyed).
	if err := validateHandle(n); err != nil {
		return nil, treeErrorf(opLeafData, err)
	}
	// Only Leaf nodes carry a value buffer.
	if n.kind != Leaf {
		return nil, treeErrorf(opLeafData, ErrWrongKind)
	}
	// An unset Leaf has nothing to expose.
	if !n.set {
		return nil, treeErrorf(opLeafData, ErrNotSet)
	}

	// Defensive copy of the owned buffer.
	out := make([]float64, len(n.leaf))
	copy(out, n.leaf)

	return out, nil
}

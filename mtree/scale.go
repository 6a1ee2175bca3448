// SPDX-License-Identifier: MIT
// Package mtree: scale engine — in-place scalar multiplication of all
// reachable leaf blocks.
//
// Notes:
//   - Scale is the ONLY operation that mutates a node's payload after
//     population, so it requires exclusive access to the subtree: no
//     Collapse/MulVec may be in flight on the same tree during a Scale.
//   - Composition folds multiplicatively: Scale(n, a) then Scale(n, b) is
//     equivalent to Scale(n, a*b).

package mtree

import "gonum.org/v1/gonum/floats"

// Scale multiplies every leaf value reachable from n by alpha, in place.
// Internal nodes hold no values of their own; the walk simply recurses over
// the owned children in attach order.
//
// Scale keeps the same failure surface as the other operations (nil,
// destroyed, unset node) rather than being infallible by construction, so
// every sentinel is reachable through every entry point consistently.
// Complexity: O(total leaf elements).
func Scale(n *Node, alpha float64) error {
	// Validate the evaluation target (nil / destroyed / unset).
	if err := validateEvaluable(n); err != nil {
		return treeErrorf(opScale, err)
	}

	n.scale(alpha)

	return nil
}

// scale applies alpha to every leaf buffer in the subtree.
func (n *Node) scale(alpha float64) {
	// Leaf: one flat in-place pass over the block.
	if n.kind == Leaf {
		floats.Scale(alpha, n.leaf)
		return
	}

	// Internal: recurse in attach order.
	for _, c := range n.children {
		c.scale(alpha)
	}
}

// Package mtree represents a dense matrix implicitly, as a tree whose
// leaves hold raw row-major float64 blocks and whose internal nodes stand
// for the elementwise sum of their children.
//
// 🚀 What is a matrix sum-tree?
//
//	A caller builds a matrix out of cheaply constructed pieces — each piece
//	a Leaf node — and composes them under Internal nodes without ever paying
//	for the summed matrix. Every node in a tree shares one (rows × cols)
//	shape. Two evaluation strategies are offered:
//	  • Collapse — materialize the represented dense matrix.
//	  • MulVec   — compute y = A·x directly over the sum structure,
//	    exploiting linearity: (A+B)·x = A·x + B·x. The sum is never formed.
//
// ✨ Key guarantees:
//   - Set-once lifecycle: a node is created empty, populated exactly once
//     (SetLeafData or SetChildren), then read-only apart from Scale.
//   - Shape safety: every child of an Internal node must match the parent's
//     (rows, cols); validated once, at attach time.
//   - Strict tree ownership: SetChildren transfers each child into the
//     parent; a transferred handle can no longer be attached elsewhere or
//     destroyed on its own. Trees are never DAGs and never cyclic.
//   - Bottom-up construction: only populated nodes can be attached, so an
//     attached subtree is always evaluable in full.
//   - All user-triggered failures surface as sentinel errors via errors.Is;
//     no panics.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sumtree/mtree"
//
//	a, _ := mtree.NewLeaf(2, 2, []float64{1, 0, 0, 1})
//	b, _ := mtree.NewLeaf(2, 2, []float64{2, 0, 0, 2})
//	sum, _ := mtree.NewSum(a, b) // Internal node: represents a + b
//
//	m, _ := mtree.Collapse(sum)           // dense [3 0 0 3]
//	y, _ := mtree.MulVec(sum, []float64{1, 1}) // [3 3], sum never formed
//
// Concurrency:
//
//	Construction must complete before the tree is shared. Afterwards,
//	Collapse and MulVec are pure reads and may run concurrently. Scale and
//	Destroy mutate and require exclusive access to the subtree.
//
// Performance:
//
//   - Collapse: O(total leaf elements) plus O(fan-out · rows·cols) scratch traffic.
//   - MulVec:   O(total leaf elements), independent of tree depth.
//   - Scale:    O(total leaf elements), in place.
package mtree

// Package sumtree is an in-memory library for representing dense matrices
// implicitly — as trees of summed blocks — and evaluating them lazily.
//
// 🚀 What is sumtree?
//
//	A small, focused library built around one idea: a matrix assembled as a
//	sum of pieces does not have to be materialized to be useful.
//		• Leaf nodes hold raw row-major float64 blocks
//		• Internal nodes stand for the elementwise sum of their children
//		• Collapse materializes the represented matrix on demand
//		• MulVec applies the matrix to a vector without ever forming it,
//		  via linearity: (A+B)·x = A·x + B·x
//		• Scale rescales a whole subtree in place
//
// ✨ Why choose sumtree?
//
//   - Set-once nodes — trees are immutable after construction, so
//     concurrent reads need no locks
//   - Strict ownership — attaching a child transfers it into the parent;
//     double release and dangling children cannot be expressed
//   - Sentinel errors everywhere — every failure matches via errors.Is
//   - gonum under the hood — flat-buffer kernels and *mat.Dense interop
//
// Under the hood, everything is organized under two subpackages:
//
//	mtree/     — the core: node lifecycle, collapse, multiply, scale
//	mtreedump/ — read-only human-readable rendering of trees and blocks
//
// Quick ASCII example:
//
//	      root(+)
//	     /       \
//	  inner(+)   0.25·I
//	   /    \
//	  I    0.5·I
//
//	collapses to 1.75·I; MulVec applies it to x without collapsing.
//
// Dive into the examples/ directory for runnable scenarios.
//
//	go get github.com/katalvlaran/sumtree/mtree
package sumtree

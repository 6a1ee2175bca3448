package mtree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sumtree/mtree"
)

// buildBenchTree constructs a sum-tree of the given fan-out and depth over
// size×size leaves. depth 1 yields an internal node over leaves; each extra
// level nests another layer of internal nodes.
func buildBenchTree(b *testing.B, size, fanout, depth int) *mtree.Node {
	rng := rand.New(rand.NewSource(1)) // deterministic leaf contents

	var build func(level int) *mtree.Node
	build = func(level int) *mtree.Node {
		if level == 0 {
			data := make([]float64, size*size)
			for i := range data {
				data[i] = rng.Float64() // fill the leaf block
			}
			leaf, err := mtree.NewLeaf(size, size, data)
			if err != nil {
				b.Fatalf("NewLeaf failed: %v", err) // report and stop on error
			}
			return leaf
		}
		children := make([]*mtree.Node, fanout)
		for i := range children {
			children[i] = build(level - 1) // recurse one level down
		}
		n, err := mtree.NewSum(children...)
		if err != nil {
			b.Fatalf("NewSum failed: %v", err) // report and stop on error
		}
		return n
	}

	return build(depth)
}

// BenchmarkCollapse_Wide benchmarks materialization of a flat 64-leaf sum.
func BenchmarkCollapse_Wide(b *testing.B) {
	root := buildBenchTree(b, 32, 64, 1) // one internal level, 64 leaves
	out := make([]float64, 32*32)        // reused output buffer

	b.ResetTimer() // ignore construction time
	for i := 0; i < b.N; i++ {
		if err := mtree.CollapseInto(root, out); err != nil {
			b.Fatalf("CollapseInto failed: %v", err)
		}
	}
}

// BenchmarkCollapse_Deep benchmarks materialization through four levels of
// nesting (2⁴ = 16 leaves).
func BenchmarkCollapse_Deep(b *testing.B) {
	root := buildBenchTree(b, 32, 2, 4) // four internal levels, fan-out 2
	out := make([]float64, 32*32)       // reused output buffer

	b.ResetTimer() // ignore construction time
	for i := 0; i < b.N; i++ {
		if err := mtree.CollapseInto(root, out); err != nil {
			b.Fatalf("CollapseInto failed: %v", err)
		}
	}
}

// BenchmarkMulVec_Wide benchmarks the distributed matvec over a flat 64-leaf
// sum; the represented matrix is never formed.
func BenchmarkMulVec_Wide(b *testing.B) {
	root := buildBenchTree(b, 32, 64, 1) // one internal level, 64 leaves
	x := make([]float64, 32)             // input vector
	for i := range x {
		x[i] = float64(i) // predictable increasing values
	}
	y := make([]float64, 32) // reused output vector

	b.ResetTimer() // ignore construction time
	for i := 0; i < b.N; i++ {
		if err := mtree.MulVecInto(root, x, y); err != nil {
			b.Fatalf("MulVecInto failed: %v", err)
		}
	}
}

// BenchmarkMulVec_Deep benchmarks the distributed matvec through four levels
// of nesting, showing depth-independence of the per-leaf cost.
func BenchmarkMulVec_Deep(b *testing.B) {
	root := buildBenchTree(b, 32, 2, 4) // four internal levels, fan-out 2
	x := make([]float64, 32)            // input vector
	for i := range x {
		x[i] = float64(i) // predictable increasing values
	}
	y := make([]float64, 32) // reused output vector

	b.ResetTimer() // ignore construction time
	for i := 0; i < b.N; i++ {
		if err := mtree.MulVecInto(root, x, y); err != nil {
			b.Fatalf("MulVecInto failed: %v", err)
		}
	}
}

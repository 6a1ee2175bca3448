// Package mtreedump: tree and matrix rendering over the read-only accessor
// contract of mtree.

package mtreedump

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sumtree/mtree"
)

// indentUnit is the indentation step per tree level.
const indentUnit = "  "

// Dump writes a human-readable rendering of the tree rooted at n to w.
// A nil root renders as "NULL node"; any deeper accessor failure (destroyed
// handle, unpopulated payload) aborts the walk and is returned to the caller.
//
// Complexity: O(nodes + total leaf elements).
func Dump(w io.Writer, n *mtree.Node) error {
	return dump(w, n, 0)
}

// dump renders one node at the given depth and recurses over its children.
func dump(w io.Writer, n *mtree.Node, depth int) error {
	pad := strings.Repeat(indentUnit, depth) // indentation for this level

	// A nil handle is rendered, not failed: the dumper is display-only.
	if n == nil {
		_, err := fmt.Fprintf(w, "%sNULL node\n", pad)
		return err
	}

	if n.Kind() == mtree.Leaf {
		if _, err := fmt.Fprintf(w, "%sLEAF (%dx%d):\n", pad, n.Rows(), n.Cols()); err != nil {
			return err
		}
		// LeafData hands out a defensive copy; rendering cannot touch the tree.
		data, err := n.LeafData()
		if err != nil {
			return err
		}
		return writeMatrix(w, data, n.Rows(), n.Cols(), depth+1)
	}

	if _, err := fmt.Fprintf(w, "%sINTERNAL (%dx%d) with %d children:\n",
		pad, n.Rows(), n.Cols(), n.NumChildren()); err != nil {
		return err
	}
	for i := 0; i < n.NumChildren(); i++ {
		if _, err := fmt.Fprintf(w, "%s%sChild %d:\n", pad, indentUnit, i); err != nil {
			return err
		}
		c, err := n.Child(i)
		if err != nil {
			return err
		}
		if err = dump(w, c, depth+2); err != nil {
			return err
		}
	}

	return nil
}

// Matrix writes a dense row-major block to w, bracketed and aligned. It is
// the companion renderer for Collapse output and caller-owned buffers.
//
// Fails with an error from mtree when len(data) != rows*cols.
func Matrix(w io.Writer, data []float64, rows, cols int) error {
	if len(data) != rows*cols {
		return fmt.Errorf("Matrix: %w", mtree.ErrDimensionMismatch)
	}

	return writeMatrix(w, data, rows, cols, 0)
}

// writeMatrix renders a validated block at the given indentation depth with
// one fixed-width "%8.3f" cell per value.
func writeMatrix(w io.Writer, data []float64, rows, cols, depth int) error {
	pad := strings.Repeat(indentUnit, depth) // indentation for the bracket lines

	if _, err := fmt.Fprintf(w, "%s[\n", pad); err != nil {
		return err
	}
	for i := 0; i < rows; i++ {
		if _, err := fmt.Fprintf(w, "%s%s", pad, indentUnit); err != nil {
			return err
		}
		for j := 0; j < cols; j++ {
			if _, err := fmt.Fprintf(w, "%8.3f ", data[i*cols+j]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s]\n", pad)

	return err
}

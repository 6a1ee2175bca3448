// Package mtreedump renders matrix sum-trees and dense row-major blocks in a
// human-readable form.
//
// The package is a strictly read-only collaborator of mtree: it observes a
// tree exclusively through the public accessor surface (Kind, Rows, Cols,
// NumChildren, Child, LeafData) and never mutates what it reads. Output goes
// to a caller-supplied io.Writer, so the core stays free of console I/O.
//
// Typical output for a nested tree:
//
//	INTERNAL (2x2) with 2 children:
//	  Child 0:
//	    LEAF (2x2):
//	      [
//	           1.000    0.000
//	           0.000    1.000
//	      ]
//	  Child 1:
//	    ...
package mtreedump

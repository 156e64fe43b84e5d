// SPDX-License-Identifier: MIT

// Package costmodel holds the substitution/gap cost table that drives global
// alignment.
//
// A Model maps an ordered pair of symbols (row symbol from the first sequence,
// column symbol from the second) to an integer cost. The reserved Gap symbol is an
// ordinary key on either axis, so insertion and deletion costs may differ per
// symbol and per direction.
//
// Construction:
//
//	m, err := costmodel.Load("costs.txt")     // comma-separated cost-matrix file
//	m, err := costmodel.Build(rows)            // already-split table cells
//	m := costmodel.Uniform("ACGT", 0, 1, 2)    // square match/mismatch/indel model
//
// File layout:
//
//	*, A, C, G, T, -
//	A, 0, 1, 1, 1, 2
//	C, 1, 0, 1, 1, 2
//	...
//	-, 2, 2, 2, 2, 0
//
// The corner cell is ignored. Row and column symbol sets need not be identical,
// but the gap symbol should label both a row and a column so both gap directions
// can be costed.
//
// Lookup:
//
//	c, err := m.Cost('A', costmodel.Gap) // O(1); ErrUnknownSymbol if either axis misses
//
// A Model is immutable after construction and safe for concurrent readers.
//
// Errors:
//   - ErrFormat          - empty, ragged or non-integer tables.
//   - ErrDuplicateSymbol - a row or column symbol appears twice.
//   - ErrUnknownSymbol   - lookup of a symbol absent from the queried axis.
package costmodel

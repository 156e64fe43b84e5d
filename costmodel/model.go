// SPDX-License-Identifier: MIT
// Package: lvalign/costmodel
//
// model.go: immutable two-axis cost table with O(1) lookup.
//
// Storage:
//   • data is a flat row-major buffer, offset = row*len(cols) + col.
//   • rowIdx/colIdx resolve a symbol to its axis index once per lookup.
//   • Axis symbol slices keep the original table order for WriteTo.

package costmodel

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Gap is the reserved gap symbol. It is a valid key on either axis of a Model but
// never a valid character of an input sequence.
const Gap = '-'

// Model is an immutable cost table. The zero value has no symbols and every
// lookup fails with ErrUnknownSymbol.
type Model struct {
	rows   []rune       // row symbols (first-sequence axis), table order
	cols   []rune       // column symbols (second-sequence axis), table order
	rowIdx map[rune]int // row symbol -> row index
	colIdx map[rune]int // column symbol -> column index
	data   []int        // row-major costs, len == len(rows)*len(cols)
}

// Build constructs a Model from already-split table cells.
//
// rows[0] is the header: rows[0][0] is ignored, rows[0][1:] are the column symbols.
// Every later row is a row symbol followed by one integer cost per column. Cells are
// trimmed of surrounding whitespace.
//
// Errors:
//   - ErrFormat if the table is empty, has no column symbols or no cost rows, is not
//     rectangular, a symbol cell is not exactly one symbol, or a cost is not an integer.
//   - ErrDuplicateSymbol if a row or column symbol repeats.
//
// Complexity: O(r*c) time and space.
func Build(rows [][]string) (*Model, error) {
	if len(rows) == 0 {
		return nil, formatErrorf("empty table")
	}
	header := rows[0]
	width := len(header)
	if width < 2 {
		return nil, formatErrorf("header: no column symbols")
	}
	if len(rows) < 2 {
		return nil, formatErrorf("table has no cost rows")
	}

	m := &Model{
		cols:   make([]rune, 0, width-1),
		rows:   make([]rune, 0, len(rows)-1),
		colIdx: make(map[rune]int, width-1),
		rowIdx: make(map[rune]int, len(rows)-1),
		data:   make([]int, 0, (width-1)*(len(rows)-1)),
	}

	for j, cell := range header[1:] {
		sym, err := parseSymbol(cell)
		if err != nil {
			return nil, fmt.Errorf("header column %d: %w", j+2, err)
		}
		if _, dup := m.colIdx[sym]; dup {
			return nil, fmt.Errorf("header column %d: %q: %w", j+2, sym, ErrDuplicateSymbol)
		}
		m.colIdx[sym] = len(m.cols)
		m.cols = append(m.cols, sym)
	}

	for i, row := range rows[1:] {
		line := i + 2
		if len(row) != width {
			return nil, formatErrorf("row %d: %d fields, header has %d", line, len(row), width)
		}
		sym, err := parseSymbol(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if _, dup := m.rowIdx[sym]; dup {
			return nil, fmt.Errorf("row %d: %q: %w", line, sym, ErrDuplicateSymbol)
		}
		m.rowIdx[sym] = len(m.rows)
		m.rows = append(m.rows, sym)

		for j, cell := range row[1:] {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, formatErrorf("row %d column %d: cost %q is not an integer", line, j+2, cell)
			}
			m.data = append(m.data, v)
		}
	}

	return m, nil
}

// parseSymbol trims a symbol cell and requires exactly one rune.
func parseSymbol(cell string) (rune, error) {
	s := strings.TrimSpace(cell)
	if utf8.RuneCountInString(s) != 1 {
		return 0, formatErrorf("symbol %q must be exactly one character", cell)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// Cost returns the cost of aligning row symbol a against column symbol b.
// Either may be Gap. Returns ErrUnknownSymbol when a is not a row symbol or b is not
// a column symbol.
// A nil Model knows no symbols.
// Complexity: O(1).
func (m *Model) Cost(a, b rune) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("nil model: %w", ErrUnknownSymbol)
	}
	i, ok := m.rowIdx[a]
	if !ok {
		return 0, fmt.Errorf("row %q: %w", a, ErrUnknownSymbol)
	}
	j, ok := m.colIdx[b]
	if !ok {
		return 0, fmt.Errorf("column %q: %w", b, ErrUnknownSymbol)
	}

	return m.data[i*len(m.cols)+j], nil
}

// RowSymbols returns a copy of the row symbols in table order.
func (m *Model) RowSymbols() []rune {
	out := make([]rune, len(m.rows))
	copy(out, m.rows)

	return out
}

// ColSymbols returns a copy of the column symbols in table order.
func (m *Model) ColSymbols() []rune {
	out := make([]rune, len(m.cols))
	copy(out, m.cols)

	return out
}

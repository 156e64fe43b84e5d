// SPDX-License-Identifier: MIT
// Package: lvalign/costmodel
//
// errors.go: sentinel errors for the costmodel package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (line, column, symbol) is attached with %w at the detection site.
//   • Downstream packages (alignio, checker) wrap ErrFormat for their own
//     line-format failures so a single sentinel covers the FormatError class.

package costmodel

import (
	"errors"
	"fmt"
)

// ErrFormat indicates malformed tabular or line-oriented input: an empty table,
// rows of inconsistent length, a symbol cell that is not exactly one symbol, or a
// cost field that is not an integer.
var ErrFormat = errors.New("costmodel: malformed input")

// ErrDuplicateSymbol indicates that a row or column symbol repeats, which would make
// the cost of a pair ambiguous.
var ErrDuplicateSymbol = errors.New("costmodel: duplicate symbol")

// ErrUnknownSymbol indicates a lookup for a symbol that the table never defined on
// the queried axis. It is never replaced by a default cost.
var ErrUnknownSymbol = errors.New("costmodel: unknown symbol")

// formatErrorf wraps ErrFormat with a positional message.
func formatErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFormat)
}

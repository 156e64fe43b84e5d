// SPDX-License-Identifier: MIT
// Package: lvalign/costmodel
//
// uniform.go: square match/mismatch/indel models.

package costmodel

// Uniform returns a square Model over the distinct symbols of alphabet plus Gap.
//
//	cost(x, x)     = match
//	cost(x, y)     = mismatch   (x != y, neither is Gap)
//	cost(x, Gap)   = indel
//	cost(Gap, x)   = indel
//	cost(Gap, Gap) = 0          (stored for completeness; never queried by alignment)
//
// Repeated symbols in alphabet and a literal Gap in alphabet are collapsed.
// Complexity: O(k²) for k distinct symbols.
func Uniform(alphabet string, match, mismatch, indel int) *Model {
	syms := make([]rune, 0, len(alphabet)+1)
	seen := make(map[rune]struct{}, len(alphabet)+1)
	for _, r := range alphabet {
		if r == Gap {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		syms = append(syms, r)
	}
	syms = append(syms, Gap)

	k := len(syms)
	m := &Model{
		rows:   syms,
		cols:   append([]rune(nil), syms...),
		rowIdx: make(map[rune]int, k),
		colIdx: make(map[rune]int, k),
		data:   make([]int, k*k),
	}
	for i, a := range syms {
		m.rowIdx[a] = i
		m.colIdx[a] = i
		for j, b := range syms {
			var c int
			switch {
			case a == Gap && b == Gap:
				c = 0
			case a == Gap || b == Gap:
				c = indel
			case a == b:
				c = match
			default:
				c = mismatch
			}
			m.data[i*k+j] = c
		}
	}

	return m
}

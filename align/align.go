package align

import (
	"errors"
)

// Needleman–Wunsch global alignment with an arbitrary cost model.
//
// Algorithm Outline (FullMatrix):
//  1. Let n = len(seq1), m = len(seq2). Allocate (n+1)x(m+1) table T.
//  2. Initialize:
//     T[0][0] = 0
//     T[i][0] = T[i-1][0] + cost(seq1[i-1], gap)   i = 1..n
//     T[0][j] = T[0][j-1] + cost(gap, seq2[j-1])   j = 1..m
//  3. For i = 1..n, j = 1..m:
//     sub = T[i-1][j-1] + cost(seq1[i-1], seq2[j-1])
//     del = T[i-1][j]   + cost(seq1[i-1], gap)
//     ins = T[i][j-1]   + cost(gap, seq2[j-1])
//     T[i][j] = min(sub, del, ins)
//  4. cost = T[n][m].
//  5. Traceback from (n,m) to (0,0), preferring sub, then del, then ins among the
//     predecessors that reproduce T[i][j] exactly.
//
// Errors:
//   - costmodel.ErrUnknownSymbol (wrapped) - a needed symbol pair is not costed.
//   - ErrPathNeedsMatrix                   - Align called with TwoRows.
//   - ErrBadMemoryMode                     - MemoryMode is not a known constant.
var (
	// ErrPathNeedsMatrix indicates that traceback requires MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("align: traceback requires MemoryMode=FullMatrix")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("align: unknown memory mode")
)

// Align returns one minimum-cost global alignment of seq1 against seq2.
//
// Either sequence may be empty. If one is empty the result is the other sequence
// against all gaps; if both are empty the result is empty with cost 0.
// No partial result is returned on error.
//
// Example:
//
//	res, err := Align(model, "AG", "GA", nil)
//	// res.Seq1 == "AG", res.Seq2 == "GA", res.Cost == 2 (with 0/1/1 costs)
func Align(c Coster, seq1, seq2 string, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	if o.MemoryMode != FullMatrix {
		if o.MemoryMode != TwoRows {
			return Result{}, ErrBadMemoryMode
		}

		return Result{}, ErrPathNeedsMatrix
	}

	s1, s2 := []rune(seq1), []rune(seq2)
	sc, err := resolveCosts(c, s1, s2)
	if err != nil {
		return Result{}, err
	}

	t := fill(sc, len(s1), len(s2))
	a1, a2 := traceback(t, sc, s1, s2)

	return Result{Seq1: a1, Seq2: a2, Cost: t.at(len(s1), len(s2))}, nil
}

// Distance returns the minimum alignment cost without recovering an alignment.
// It always equals Align(c, seq1, seq2, nil).Cost. With TwoRows it uses O(m)
// memory.
func Distance(c Coster, seq1, seq2 string, opts *Options) (int, error) {
	o := resolveOptions(opts)
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return 0, ErrBadMemoryMode
	}

	s1, s2 := []rune(seq1), []rune(seq2)
	sc, err := resolveCosts(c, s1, s2)
	if err != nil {
		return 0, err
	}

	if o.MemoryMode == TwoRows {
		return fillTwoRows(sc, len(s1), len(s2)), nil
	}

	return fill(sc, len(s1), len(s2)).at(len(s1), len(s2)), nil
}

// resolveOptions applies defaults for a nil pointer.
func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// fill computes the full (n+1)x(m+1) DP table.
func fill(sc *stepCosts, n, m int) *table {
	t := newTable(n+1, m+1)

	// Leading gaps: row 0 consumes seq2 only, column 0 consumes seq1 only.
	for j := 1; j <= m; j++ {
		t.set(0, j, t.at(0, j-1)+sc.ins[j-1])
	}
	for i := 1; i <= n; i++ {
		t.set(i, 0, t.at(i-1, 0)+sc.del[i-1])
	}

	for i := 1; i <= n; i++ {
		prev, curr := t.row(i-1), t.row(i)
		del := sc.del[i-1]
		for j := 1; j <= m; j++ {
			curr[j] = min3(
				prev[j-1]+sc.substitute(i-1, j-1),
				prev[j]+del,
				curr[j-1]+sc.ins[j-1],
			)
		}
	}

	return t
}

// fillTwoRows runs the same recurrence as fill keeping only two rows.
func fillTwoRows(sc *stepCosts, n, m int) int {
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = prev[j-1] + sc.ins[j-1]
	}

	for i := 1; i <= n; i++ {
		del := sc.del[i-1]
		curr[0] = prev[0] + del
		for j := 1; j <= m; j++ {
			curr[j] = min3(
				prev[j-1]+sc.substitute(i-1, j-1),
				prev[j]+del,
				curr[j-1]+sc.ins[j-1],
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

package align

import (
	"fmt"
)

// gap is the symbol passed to Coster for the empty side of an indel column.
// It matches costmodel.Gap; align does not import costmodel.
const gap = '-'

// stepCosts holds every cost the fill and traceback can ask for, resolved up
// front so that the DP loops touch only int slices and an unknown symbol fails
// before any table is allocated.
type stepCosts struct {
	del []int // del[i] = cost(seq1[i], gap)
	ins []int // ins[j] = cost(gap, seq2[j])

	sub  []int // sub[x*k2+y] = cost(alphabet1[x], alphabet2[y])
	idx1 []int // idx1[i] = alphabet index of seq1[i]
	idx2 []int // idx2[j] = alphabet index of seq2[j]
	k2   int   // size of alphabet2
}

// substitute returns cost(seq1[i], seq2[j]) for 0-based positions.
func (c *stepCosts) substitute(i, j int) int {
	return c.sub[c.idx1[i]*c.k2+c.idx2[j]]
}

// resolveCosts queries c for every pair the recurrence uses. Each distinct
// symbol pair is looked up once; the full DP visits every (i, j), so the set of
// pairs queried here is exactly the set the recurrence needs.
func resolveCosts(c Coster, s1, s2 []rune) (*stepCosts, error) {
	sc := &stepCosts{
		del:  make([]int, len(s1)),
		ins:  make([]int, len(s2)),
		idx1: make([]int, len(s1)),
		idx2: make([]int, len(s2)),
	}

	var err error
	for i, a := range s1 {
		if sc.del[i], err = c.Cost(a, gap); err != nil {
			return nil, fmt.Errorf("align: seq1[%d]: %w", i, err)
		}
	}
	for j, b := range s2 {
		if sc.ins[j], err = c.Cost(gap, b); err != nil {
			return nil, fmt.Errorf("align: seq2[%d]: %w", j, err)
		}
	}

	alpha1 := indexSymbols(s1, sc.idx1)
	alpha2 := indexSymbols(s2, sc.idx2)
	sc.k2 = len(alpha2)
	sc.sub = make([]int, len(alpha1)*len(alpha2))
	for x, a := range alpha1 {
		for y, b := range alpha2 {
			if sc.sub[x*sc.k2+y], err = c.Cost(a, b); err != nil {
				return nil, fmt.Errorf("align: substitute %q/%q: %w", a, b, err)
			}
		}
	}

	return sc, nil
}

// indexSymbols fills idx with a dense per-sequence alphabet index for each
// position and returns the alphabet in first-seen order.
func indexSymbols(seq []rune, idx []int) []rune {
	seen := make(map[rune]int)
	var alphabet []rune
	for i, r := range seq {
		k, ok := seen[r]
		if !ok {
			k = len(alphabet)
			seen[r] = k
			alphabet = append(alphabet, r)
		}
		idx[i] = k
	}

	return alphabet
}

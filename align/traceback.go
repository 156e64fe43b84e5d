package align

// traceback walks t from (n, m) to (0, 0) and returns the two gapped sequences.
//
// Priority at every interior cell: substitute, then deletion, then insertion. The
// first predecessor whose value plus step cost equals t[i][j] is taken; integer
// equality is exact. On the borders the move is forced (i == 0: insertion,
// j == 0: deletion).
func traceback(t *table, sc *stepCosts, s1, s2 []rune) (string, string) {
	i, j := len(s1), len(s2)
	out1 := make([]rune, 0, i+j)
	out2 := make([]rune, 0, i+j)

	for i > 0 || j > 0 {
		switch step(t, sc, i, j) {
		case substitute:
			i--
			j--
			out1 = append(out1, s1[i])
			out2 = append(out2, s2[j])
		case deletion:
			i--
			out1 = append(out1, s1[i])
			out2 = append(out2, gap)
		default:
			j--
			out1 = append(out1, gap)
			out2 = append(out2, s2[j])
		}
	}

	reverse(out1)
	reverse(out2)

	return string(out1), string(out2)
}

// step picks the predecessor move for cell (i, j), (i, j) != (0, 0).
func step(t *table, sc *stepCosts, i, j int) move {
	switch {
	case i == 0:
		return insertion
	case j == 0:
		return deletion
	}

	here := t.at(i, j)
	if t.at(i-1, j-1)+sc.substitute(i-1, j-1) == here {
		return substitute
	}
	if t.at(i-1, j)+sc.del[i-1] == here {
		return deletion
	}

	return insertion
}

// reverse flips s in place.
func reverse(s []rune) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

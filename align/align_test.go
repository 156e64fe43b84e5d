package align_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/costmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unit is the 0/1/1 model: free matches, unit mismatches and indels.
func unit() *costmodel.Model {
	return costmodel.Uniform("ACGT", 0, 1, 1)
}

// sumCost re-sums an alignment column by column.
func sumCost(t *testing.T, c align.Coster, res align.Result) int {
	t.Helper()
	a, b := []rune(res.Seq1), []rune(res.Seq2)
	require.Equal(t, len(a), len(b), "aligned sequences must have equal length")
	total := 0
	for k := range a {
		require.False(t, a[k] == costmodel.Gap && b[k] == costmodel.Gap, "gap-to-gap column at %d", k)
		v, err := c.Cost(a[k], b[k])
		require.NoError(t, err)
		total += v
	}

	return total
}

// strip removes gap symbols.
func strip(s string) string {
	return strings.ReplaceAll(s, string(costmodel.Gap), "")
}

// TestAlign_Scenario pins the diagonal-first tie-break on a two-optimum input.
func TestAlign_Scenario(t *testing.T) {
	m := costmodel.Uniform("AG", 0, 1, 1)

	res, err := align.Align(m, "AG", "GA", nil)
	require.NoError(t, err)
	assert.Equal(t, align.Result{Seq1: "AG", Seq2: "GA", Cost: 2}, res)
}

// TestAlign_TieBreakDeletionBeforeInsertion checks the second and third priorities.
func TestAlign_TieBreakDeletionBeforeInsertion(t *testing.T) {
	// Substitution is prohibitively expensive, so only indels are used and the
	// traceback must prefer the deletion at every tie.
	m := costmodel.Uniform("AG", 0, 10, 1)

	res, err := align.Align(m, "A", "G", nil)
	require.NoError(t, err)
	assert.Equal(t, align.Result{Seq1: "-A", Seq2: "G-", Cost: 2}, res)
}

// TestAlign_EmptyInputs covers one or both sides empty.
func TestAlign_EmptyInputs(t *testing.T) {
	m, err := costmodel.Parse(strings.NewReader(`*, A, C, -
A, 0, 1, 2
C, 1, 0, 5
-, 3, 4, 0`))
	require.NoError(t, err)

	res, err := align.Align(m, "ACA", "", nil)
	require.NoError(t, err)
	assert.Equal(t, align.Result{Seq1: "ACA", Seq2: "---", Cost: 2 + 5 + 2}, res)

	res, err = align.Align(m, "", "CA", nil)
	require.NoError(t, err)
	assert.Equal(t, align.Result{Seq1: "--", Seq2: "CA", Cost: 4 + 3}, res)

	res, err = align.Align(m, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, align.Result{}, res)
}

// TestAlign_Identity verifies that s against s costs 0 with a zero diagonal.
func TestAlign_Identity(t *testing.T) {
	m := unit()
	for _, s := range []string{"A", "GATTACA", "TTTT", "ACGTACGTAC"} {
		res, err := align.Align(m, s, s, nil)
		require.NoError(t, err)
		assert.Equal(t, align.Result{Seq1: s, Seq2: s, Cost: 0}, res, s)
	}
}

// TestAlign_Asymmetric uses distinct insertion and deletion costs so that the
// direction of each indel matters.
func TestAlign_Asymmetric(t *testing.T) {
	m, err := costmodel.Parse(strings.NewReader(`*, A, C, -
A, 0, 9, 1
C, 9, 0, 1
-, 5, 5, 0`))
	require.NoError(t, err)

	// Substitution is dear, so one symbol is shifted by an insert/delete pair.
	res, err := align.Align(m, "AC", "CA", nil)
	require.NoError(t, err)
	assert.Equal(t, align.Result{Seq1: "-AC", Seq2: "CA-", Cost: 6}, res)
	assert.Equal(t, res.Cost, sumCost(t, m, res))

	rev, err := align.Align(m, "CA", "AC", nil)
	require.NoError(t, err)
	assert.Equal(t, align.Result{Seq1: "-CA", Seq2: "AC-", Cost: 6}, rev)
}

// TestAlign_Deterministic re-runs the same alignment and expects identical output.
func TestAlign_Deterministic(t *testing.T) {
	m := unit()
	first, err := align.Align(m, "GATTACA", "GCATGCT", nil)
	require.NoError(t, err)
	for k := 0; k < 20; k++ {
		again, err := align.Align(m, "GATTACA", "GCATGCT", nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "GATTACA", strip(first.Seq1))
	assert.Equal(t, "GCATGCT", strip(first.Seq2))
	assert.Equal(t, first.Cost, sumCost(t, m, first))
}

// TestAlign_UnknownSymbol is all-or-nothing: no partial result on failure.
func TestAlign_UnknownSymbol(t *testing.T) {
	m := costmodel.Uniform("AC", 0, 1, 1)

	res, err := align.Align(m, "ACX", "AC", nil)
	assert.ErrorIs(t, err, costmodel.ErrUnknownSymbol)
	assert.Equal(t, align.Result{}, res)

	_, err = align.Align(m, "AC", "AXC", nil)
	assert.ErrorIs(t, err, costmodel.ErrUnknownSymbol)

	_, err = align.Distance(m, "X", "", nil)
	assert.ErrorIs(t, err, costmodel.ErrUnknownSymbol)
}

// TestAlign_MissingSubstitution fails even when both symbols have gap costs.
func TestAlign_MissingSubstitution(t *testing.T) {
	m, err := costmodel.Parse(strings.NewReader(`*, A, -
A, 0, 1
T, 1, 1
-, 1, 0`))
	require.NoError(t, err)

	_, err = align.Align(m, "T", "T", nil)
	assert.ErrorIs(t, err, costmodel.ErrUnknownSymbol, "T has no column")
}

// TestAlign_Options covers memory-mode validation.
func TestAlign_Options(t *testing.T) {
	m := unit()

	_, err := align.Align(m, "A", "C", &align.Options{MemoryMode: align.TwoRows})
	assert.ErrorIs(t, err, align.ErrPathNeedsMatrix)

	_, err = align.Align(m, "A", "C", &align.Options{MemoryMode: align.MemoryMode(42)})
	assert.ErrorIs(t, err, align.ErrBadMemoryMode)

	_, err = align.Distance(m, "A", "C", &align.Options{MemoryMode: align.MemoryMode(-1)})
	assert.ErrorIs(t, err, align.ErrBadMemoryMode)

	opts := align.DefaultOptions()
	res, err := align.Align(m, "A", "C", &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Cost)
}

// TestDistance_ModesAgree compares FullMatrix, TwoRows and Align.
func TestDistance_ModesAgree(t *testing.T) {
	m := costmodel.Uniform("ACGT", 0, 3, 2)
	pairs := [][2]string{
		{"", ""}, {"A", ""}, {"", "TT"},
		{"GATTACA", "GCATGCT"}, {"ACGTACGT", "TGCA"}, {"AAAA", "CCCCCCC"},
	}
	full := align.DefaultOptions()
	rolling := align.Options{MemoryMode: align.TwoRows}
	for _, p := range pairs {
		res, err := align.Align(m, p[0], p[1], nil)
		require.NoError(t, err)

		d1, err := align.Distance(m, p[0], p[1], &full)
		require.NoError(t, err)
		d2, err := align.Distance(m, p[0], p[1], &rolling)
		require.NoError(t, err)

		assert.Equal(t, res.Cost, d1, "%v full", p)
		assert.Equal(t, res.Cost, d2, "%v two rows", p)
	}
}

// TestAlign_Unicode treats each code point as one symbol.
func TestAlign_Unicode(t *testing.T) {
	m := costmodel.Uniform("αβ", 0, 1, 1)

	res, err := align.Align(m, "αβα", "ββ", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, len([]rune(res.Seq1)), len([]rune(res.Seq2)))
	assert.Equal(t, res.Cost, sumCost(t, m, res))
}

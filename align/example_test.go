package align_test

import (
	"fmt"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/costmodel"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two short reads with one substitution and one indel.
//	  seq1 = GATTACA
//	  seq2 = GATACA
//
// Model: match 0, mismatch 1, indel 1.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign() {
	m := costmodel.Uniform("ACGT", 0, 1, 1)

	res, err := align.Align(m, "GATTACA", "GATACA", nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s\n%s\ncost=%d\n", res.Seq1, res.Seq2, res.Cost)
	// Output:
	// GATTACA
	// GA-TACA
	// cost=1
}

// ExampleAlign_tieBreak shows the diagonal-first policy on two equal optima.
func ExampleAlign_tieBreak() {
	m := costmodel.Uniform("AG", 0, 1, 1)

	res, _ := align.Align(m, "AG", "GA", nil)
	fmt.Printf("%s/%s cost=%d\n", res.Seq1, res.Seq2, res.Cost)
	// Output:
	// AG/GA cost=2
}

// ExampleDistance computes the cost only, using two rolling rows.
func ExampleDistance() {
	m := costmodel.Uniform("ACGT", 0, 2, 1)

	d, _ := align.Distance(m, "ACGTTGCA", "AGTTCA", &align.Options{MemoryMode: align.TwoRows})
	fmt.Println("distance =", d)
	// Output:
	// distance = 2
}

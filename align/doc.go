// Package align computes minimum-cost global alignments between two symbol
// sequences under an arbitrary, possibly asymmetric, cost model and recovers one
// optimal alignment by deterministic traceback.
//
// 🚀 What is global alignment?
//
//	Both sequences are aligned end to end. Each column of the alignment is a
//	substitution (x over y), a deletion (x over a gap) or an insertion (a gap over
//	y). The cost of an alignment is the sum of its column costs; this package finds
//	a cheapest one. The cost model, not the package, decides what "cheap" means:
//	deleting A may cost differently from inserting A.
//
// ✨ Key features:
//   - exact O(n·m) dynamic programming over integer costs
//   - fixed tie-break (diagonal, then deletion, then insertion): equal-cost inputs
//     always produce the same alignment
//   - cost-only mode with two rolling rows (TwoRows) for large inputs
//   - all-or-nothing failure: an un-costed symbol pair fails before the DP starts
//
// ⚙️ Usage:
//
//	m := costmodel.Uniform("ACGT", 0, 1, 1)
//	res, err := align.Align(m, "GATTACA", "GCATGCU", nil)
//	// res.Seq1, res.Seq2 are equal-length, gap-padded; res.Cost is the minimum.
//
//	cost, err := align.Distance(m, a, b, &align.Options{MemoryMode: align.TwoRows})
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m) (FullMatrix) or O(m) (TwoRows, cost only)
//
// The cost model is only read, so any number of goroutines may align against
// one model concurrently; every call owns its private table.
package align

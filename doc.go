// Package lvalign computes minimum-cost global alignments of symbol sequences
// under a user-supplied, possibly asymmetric, integer cost matrix.
//
// The library is organized into small packages:
//
//	costmodel/  the cost matrix: parsing, lookup, uniform generation
//	align/      the Needleman–Wunsch engine (Align, Distance)
//	alignio/    alignment input and output files
//	checker/    re-costs reported alignments and cross-checks a reference report
//	experiment/ runtime harness over random sequences with a log-log fit
//
// The lvalign command (cmd/lvalign) wires these together behind the align,
// check, bench and costs subcommands.
//
// Quick example:
//
//	m := costmodel.Uniform("AGTC", 0, 1, 1)
//	res, err := align.Align(m, "GATTACA", "GATACA", nil)
//	// res.Seq1 = "GATTACA", res.Seq2 = "GA-TACA", res.Cost = 1
package lvalign

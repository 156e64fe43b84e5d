// Package checker re-sums the cost of reported alignments and compares it with
// the cost each report line claims.
//
// A report line has the form
//
//	AX,AY: REPORTED_COST
//
// where AX and AY are equal-length gapped sequences and REPORTED_COST is an
// integer or float. The checker does not judge optimality; it only verifies that
// Σ cost(AX[k], AY[k]) equals the reported figure.
//
// An optional solution report is cross-checked by cost alone: line k of the
// solution must report the same cost as line k of the primary report. The two
// files must have the same number of lines (ErrLengthMismatch otherwise).
//
// Processing is fail-fast: the first malformed line writes one
// "Line N: Error: ..." record and stops the run. Nothing after it is written.
package checker

// Package alignio reads alignment input files and writes alignment output files.
//
// Input: one pair per line, "seq1, seq2". Fields are trimmed, blank lines are
// skipped and either sequence may be empty. The gap symbol is rejected here, at
// the boundary, so the engine never sees it as a sequence character.
//
// Output: one line per pair, "alignedSeq1,alignedSeq2:cost".
package alignio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/costmodel"
)

// ErrGapInSequence indicates an input sequence containing the gap symbol.
// It wraps costmodel.ErrFormat.
var ErrGapInSequence = fmt.Errorf("alignio: gap symbol %q in input sequence: %w", costmodel.Gap, costmodel.ErrFormat)

// Pair is one line of an alignment input file.
type Pair struct {
	Line int // 1-based source line
	Seq1 string
	Seq2 string
}

// ReadPairs parses every pair in r.
//
// Errors (wrapping costmodel.ErrFormat, with the line number):
//   - a non-blank line without exactly one comma;
//   - ErrGapInSequence when a sequence contains the gap symbol.
func ReadPairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		p, err := parsePair(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		p.Line = line
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("alignio: read: %w", err)
	}

	return pairs, nil
}

// parsePair splits one non-blank line into its two sequences.
func parsePair(text string) (Pair, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 2 {
		return Pair{}, fmt.Errorf("alignio: want \"seq1, seq2\", got %q: %w", text, costmodel.ErrFormat)
	}
	s1, s2 := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
	if strings.ContainsRune(s1, costmodel.Gap) || strings.ContainsRune(s2, costmodel.Gap) {
		return Pair{}, ErrGapInSequence
	}

	return Pair{Seq1: s1, Seq2: s2}, nil
}

// FormatResult renders res as "alignedSeq1,alignedSeq2:cost".
func FormatResult(res align.Result) string {
	return res.Seq1 + "," + res.Seq2 + ":" + strconv.Itoa(res.Cost)
}

// Writer writes alignment output lines. Call Flush when done.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a buffered output-file Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Write appends one result line.
func (w *Writer) Write(res align.Result) error {
	if _, err := w.bw.WriteString(FormatResult(res)); err != nil {
		return err
	}

	return w.bw.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// AlignAll aligns every pair against c and writes one line per pair to w,
// stopping at the first failure. The failing pair's line number is attached.
// It returns the number of pairs written.
func AlignAll(c align.Coster, pairs []Pair, w *Writer) (int, error) {
	for k, p := range pairs {
		res, err := align.Align(c, p.Seq1, p.Seq2, nil)
		if err != nil {
			return k, fmt.Errorf("line %d: %w", p.Line, err)
		}
		if err := w.Write(res); err != nil {
			return k, fmt.Errorf("alignio: write: %w", err)
		}
	}

	return len(pairs), nil
}

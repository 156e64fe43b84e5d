package checker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/costmodel"
)

// ErrLengthMismatch indicates primary and solution reports of different line
// counts. It is detected before any result line is written.
var ErrLengthMismatch = errors.New("checker: primary and solution reports differ in line count")

// DefaultTolerance is the absolute difference under which two costs are equal.
// Costs are integers; the tolerance only absorbs float serialization.
const DefaultTolerance = 1e-9

// Summary counts the outcome of one Check run.
type Summary struct {
	Lines              int  // result lines written (error line excluded)
	PrimaryFailures    int  // computed cost != primary reported cost
	SolutionMismatches int  // primary reported cost != solution reported cost
	CrossChecked       bool // a solution report was supplied
}

// Checker verifies report files against one cost model.
type Checker struct {
	costs     align.Coster
	tolerance float64
}

// Option customizes a Checker.
type Option func(*Checker)

// WithTolerance overrides DefaultTolerance. Panics on a negative or NaN value.
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("checker: WithTolerance(eps<0)")
	}
	return func(c *Checker) {
		c.tolerance = eps
	}
}

// New returns a Checker that costs columns with c.
func New(c align.Coster, opts ...Option) *Checker {
	ch := &Checker{costs: c, tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(ch)
	}

	return ch
}

// Check verifies every primary line and writes one result line per input line
// to out. solution may be nil.
//
// A column pairing the gap with itself is an invalid alignment; its cost is
// never looked up in the model.
//
// On the first malformed line Check writes "Line N: Error: <reason>", flushes,
// and returns the partial Summary with an error wrapping costmodel.ErrFormat
// (costmodel.ErrUnknownSymbol for an un-costed column).
func (c *Checker) Check(primary, solution io.Reader, out io.Writer) (Summary, error) {
	var sum Summary

	pLines, err := readLines(primary)
	if err != nil {
		return sum, fmt.Errorf("checker: read primary report: %w", err)
	}
	var sLines []string
	if solution != nil {
		sum.CrossChecked = true
		if sLines, err = readLines(solution); err != nil {
			return sum, fmt.Errorf("checker: read solution report: %w", err)
		}
		if len(sLines) != len(pLines) {
			return sum, fmt.Errorf("%w: primary %d, solution %d", ErrLengthMismatch, len(pLines), len(sLines))
		}
	}

	bw := bufio.NewWriter(out)
	for idx, raw := range pLines {
		lineNo := idx + 1

		msg, primaryOK, solutionOK, err := c.checkLine(lineNo, raw, sLines, idx)
		if err != nil {
			fmt.Fprintf(bw, "Line %d: Error: %s\n", lineNo, lineErrorText(err))
			if ferr := bw.Flush(); ferr != nil {
				return sum, ferr
			}

			return sum, err
		}
		if !primaryOK {
			sum.PrimaryFailures++
		}
		if sum.CrossChecked && !solutionOK {
			sum.SolutionMismatches++
		}
		bw.WriteString(msg)
		bw.WriteByte('\n')
		sum.Lines++
	}

	return sum, bw.Flush()
}

// checkLine evaluates one primary line (and its solution counterpart) and
// returns the rendered result message.
func (c *Checker) checkLine(lineNo int, raw string, sLines []string, idx int) (string, bool, bool, error) {
	line := strings.TrimSpace(raw)

	rep, err := parseReport(lineNo, line)
	if err != nil {
		return "", false, false, err
	}

	computed, err := c.sum(rep.x, rep.y)
	if err != nil {
		return "", false, false, &lineError{text: fmt.Sprintf("Unknown symbol at line %d: %s", lineNo, line), err: err}
	}

	var msg string
	primaryOK := c.equal(rep.cost, float64(computed))
	if primaryOK {
		msg = fmt.Sprintf("Line %d: Primary cost check passed.", lineNo)
	} else {
		msg = fmt.Sprintf("Line %d: Primary mismatch. Computed: %d, Reported: %s",
			lineNo, computed, formatFloat(rep.cost))
	}

	if sLines == nil {
		return msg, primaryOK, true, nil
	}

	line2 := strings.TrimSpace(sLines[idx])
	solCost, err := parseSolutionCost(lineNo, line2)
	if err != nil {
		return "", false, false, err
	}
	if c.equal(rep.cost, solCost) {
		return msg + " | Solution check: Correct.", primaryOK, true, nil
	}

	return msg + fmt.Sprintf(" | Solution check: Incorrect. Primary cost: %s, Solution cost: %s",
		formatFloat(rep.cost), formatFloat(solCost)), primaryOK, false, nil
}

// sum re-costs an alignment column by column.
func (c *Checker) sum(x, y []rune) (int, error) {
	total := 0
	for k := range x {
		v, err := c.costs.Cost(x[k], y[k])
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

func (c *Checker) equal(a, b float64) bool {
	return math.Abs(a-b) < c.tolerance
}

// report is a parsed primary line.
type report struct {
	x, y []rune
	cost float64
}

// parseReport parses "AX,AY: REPORTED_COST".
func parseReport(lineNo int, line string) (report, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return report{}, formatError("Format error at line %d: %s", lineNo, line)
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return report{}, formatError("Format error at line %d: %s", lineNo, line)
	}

	seqs := strings.Split(strings.TrimSpace(parts[0]), ",")
	if len(seqs) != 2 {
		return report{}, formatError("Format error at line %d: %s", lineNo, line)
	}
	ax, ay := strings.TrimSpace(seqs[0]), strings.TrimSpace(seqs[1])
	if utf8.RuneCountInString(ax) != utf8.RuneCountInString(ay) {
		return report{}, formatError("Invalid alignment at line %d: %s", lineNo, line)
	}

	x, y := []rune(ax), []rune(ay)
	for k := range x {
		if x[k] == costmodel.Gap && y[k] == costmodel.Gap {
			return report{}, formatError("Invalid alignment at line %d: %s", lineNo, line)
		}
	}

	return report{x: x, y: y, cost: cost}, nil
}

// parseSolutionCost reads only the cost after the first ':' of a solution line.
func parseSolutionCost(lineNo int, line string) (float64, error) {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return 0, formatError("Solution file format error at line %d: %s", lineNo, line)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, formatError("Solution file format error at line %d: %s", lineNo, line)
	}

	return v, nil
}

// readLines returns every line of r without line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	return lines, sc.Err()
}

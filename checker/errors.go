package checker

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalign/costmodel"
)

// lineError carries the human-readable reason written to the results file and
// the sentinel it belongs to.
type lineError struct {
	text string
	err  error
}

func (e *lineError) Error() string { return "checker: " + e.text + ": " + e.err.Error() }

func (e *lineError) Unwrap() error { return e.err }

// formatError builds a lineError in the costmodel.ErrFormat class.
func formatError(format string, args ...interface{}) error {
	return &lineError{text: fmt.Sprintf(format, args...), err: costmodel.ErrFormat}
}

// lineErrorText returns the reason recorded in the results file.
func lineErrorText(err error) string {
	var le *lineError
	if errors.As(err, &le) {
		return le.text
	}

	return err.Error()
}

// formatFloat renders v the way the results file has always shown reported
// costs: shortest round-trip digits, with ".0" on integral values.
func formatFloat(v float64) string {
	abs := math.Abs(v)
	if math.IsInf(v, 0) || math.IsNaN(v) || (abs != 0 && (abs < 1e-4 || abs >= 1e16)) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

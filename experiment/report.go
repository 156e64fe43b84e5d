// SPDX-License-Identifier: MIT
// Package: lvalign/experiment
//
// report.go: tabular rendering.

package experiment

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes r as a table: one row per length, the fitted slope as the caption.
func (r *Report) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("run %s", r.RunID)

	t.AppendHeader(table.Row{"Length", "Trials", "Avg (s)", "Min (s)", "Max (s)"})
	for _, row := range r.Rows {
		t.AppendRow(table.Row{row.Length, row.Trials, seconds(row.Avg), seconds(row.Min), seconds(row.Max)})
	}

	slope := "n/a"
	if !math.IsNaN(r.Slope) {
		slope = fmt.Sprintf("O(n^%.2f)", r.Slope)
	}
	t.SetCaption("fitted slope: %s", slope)

	t.Render()
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.4f", d.Seconds())
}

// SPDX-License-Identifier: MIT
// Package: lvalign/costmodel
//
// parse.go: reading and writing the comma-separated cost-matrix file.

package costmodel

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a cost-matrix file and builds a Model from it.
// Cells are split on every comma and trimmed; there is no quoting, so any
// character other than a comma can be a symbol. Blank lines are skipped; row
// length is validated by Build, not by the reader.
func Parse(r io.Reader) (*Model, error) {
	var rows [][]string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		for k := range cells {
			cells[k] = strings.TrimSpace(cells[k])
		}
		rows = append(rows, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costmodel: read: %w", err)
	}

	return Build(rows)
}

// Load opens path and parses it as a cost-matrix file.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("costmodel: open cost matrix: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteTo writes m in the cost-matrix file format. The corner cell is "*".
// Parse(output) yields a Model equal to m.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	bw.WriteString("*")
	for _, c := range m.cols {
		bw.WriteString(", ")
		bw.WriteRune(c)
	}
	bw.WriteByte('\n')

	for i, r := range m.rows {
		bw.WriteRune(r)
		for j := range m.cols {
			bw.WriteString(", ")
			bw.WriteString(strconv.Itoa(m.data[i*len(m.cols)+j]))
		}
		bw.WriteByte('\n')
	}

	err := bw.Flush()

	return cw.n, err
}

// countingWriter tracks bytes forwarded to w for the io.WriterTo contract.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

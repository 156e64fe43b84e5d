package align

// table is a dense row-major integer grid, offset = i*cols + j.
// It is private to one alignment call and never shared.
type table struct {
	rows, cols int
	data       []int
}

// newTable allocates a zeroed rows×cols grid. Zero-sized axes are not legal here
// since the DP table always has at least one row and one column.
func newTable(rows, cols int) *table {
	return &table{rows: rows, cols: cols, data: make([]int, rows*cols)}
}

func (t *table) at(i, j int) int { return t.data[i*t.cols+j] }

func (t *table) set(i, j, v int) { t.data[i*t.cols+j] = v }

// row returns the backing slice of row i; writes go through to the table.
func (t *table) row(i int) []int { return t.data[i*t.cols : (i+1)*t.cols] }

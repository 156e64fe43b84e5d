package align

// Coster is the read-only cost lookup consumed by the engine.
// a is a symbol of the first sequence (or the gap), b a symbol of the second
// sequence (or the gap). *costmodel.Model implements Coster.
type Coster interface {
	Cost(a, b rune) (int, error)
}

// MemoryMode controls how the DP table is stored.
//
//   - FullMatrix - keep the entire (n+1)x(m+1) table. Required for Align.
//     Memory: O(n·m).
//
//   - TwoRows - keep only the previous and current row. Distance only.
//     Memory: O(m).
type MemoryMode int

const (
	// FullMatrix stores every row and supports traceback.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rolling rows and reports the cost only.
	TwoRows
)

// Options configures an alignment call. A nil *Options means DefaultOptions().
type Options struct {
	MemoryMode MemoryMode
}

// DefaultOptions returns FullMatrix options.
func DefaultOptions() Options {
	return Options{MemoryMode: FullMatrix}
}

// Result is one optimal global alignment.
//
// Seq1 and Seq2 have the same number of runes; position k of each forms one
// alignment column. Cost is the sum of the column costs and equals the minimum
// over all alignments of the two inputs.
type Result struct {
	Seq1 string
	Seq2 string
	Cost int
}

// move is one traceback step, in tie-break priority order.
type move uint8

const (
	substitute move = iota // consume one symbol from each sequence
	deletion               // consume a seq1 symbol against a gap
	insertion              // consume a seq2 symbol against a gap
)

/*
Package corpus holds the review batch the stats routines sample from.

A Batch is a 2-D slice of words, one row per review. The routines expect the
rows to share one width; Reshape tolerates ragged batches unless asked to be
strict, in which case it refuses them with a ShapeError.

Reshape reinterprets the batch's flat word sequence as contiguous storage of
a new width, the same way numpy's resize does:

	batch  [[a b] [a c] [a b]]   flat: a b a c a b
	Reshape(batch, 3) -> [[a b a] [c a b] [a b a]]

When the target holds more cells than the source, the source wraps around;
when it holds fewer, the tail is dropped.
*/
package corpus

// Batch is a rectangular set of reviews, each a fixed-length word sequence.
type Batch [][]string

// Rows returns the number of reviews.
func (b Batch) Rows() int {
	return len(b)
}

// Width returns the length of the first review, or 0 for an empty batch.
func (b Batch) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Size returns the total number of words across all reviews.
func (b Batch) Size() int {
	n := 0
	for _, row := range b {
		n += len(row)
	}
	return n
}

// IsRectangular reports whether every review has the same length.
func (b Batch) IsRectangular() bool {
	w := b.Width()
	for _, row := range b {
		if len(row) != w {
			return false
		}
	}
	return true
}

// AllWords flattens the batch into a single ordered slice of words.
func AllWords(b Batch) []string {
	words := make([]string, 0, b.Size())
	for _, row := range b {
		words = append(words, row...)
	}
	return words
}

// ReshapeOptions controls how strictly Reshape treats its input.
type ReshapeOptions struct {
	// Strict rejects ragged batches and batches whose size is not rows*cols.
	Strict bool
}

// Reshape lays the batch's words out as Rows() rows of cols words.
func Reshape(b Batch, cols int) ([][]string, error) {
	return ReshapeWith(b, cols, ReshapeOptions{})
}

// ReshapeWith is Reshape with explicit options.
func ReshapeWith(b Batch, cols int, opts ReshapeOptions) ([][]string, error) {
	rows := b.Rows()
	size := b.Size()

	switch {
	case cols <= 0:
		return nil, &ShapeError{Rows: rows, Cols: cols, Size: size, Reason: "target width must be positive"}
	case rows == 0:
		return nil, &ShapeError{Rows: rows, Cols: cols, Size: size, Reason: "batch has no reviews"}
	case size == 0:
		return nil, &ShapeError{Rows: rows, Cols: cols, Size: size, Reason: "batch has no words"}
	}

	if opts.Strict {
		if !b.IsRectangular() {
			return nil, &ShapeError{Rows: rows, Cols: cols, Size: size, Reason: "reviews differ in length"}
		}
		if size != rows*cols {
			return nil, &ShapeError{Rows: rows, Cols: cols, Size: size, Reason: "size does not match target shape"}
		}
	}

	flat := AllWords(b)
	out := make([][]string, rows)
	cells := make([]string, rows*cols)
	for i := range cells {
		cells[i] = flat[i%size]
	}
	for r := range out {
		out[r] = cells[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return out, nil
}

package corpus

import (
	"errors"
	"fmt"
)

// ErrShape is matched by every ShapeError.
var ErrShape = errors.New("batch cannot be reshaped")

// ShapeError reports a batch that cannot be laid out as Rows x Cols.
type ShapeError struct {
	Rows   int
	Cols   int
	Size   int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cannot reshape %d words into (%d, %d): %s", e.Size, e.Rows, e.Cols, e.Reason)
}

// Is lets errors.Is(err, ErrShape) match.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

package vector

import "fmt"

// ErrDimensionMismatch reports disagreement between an expected and an
// actual vector dimension. It is fatal wherever it occurs: either the
// input rows are ragged or a query does not fit the buffer.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension reports a non-positive vector dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension %d: must be positive", e.Dimension)
}

// ErrInvalidCount reports a non-positive row count.
type ErrInvalidCount struct {
	Count int
}

func (e *ErrInvalidCount) Error() string {
	return fmt.Sprintf("invalid vector count %d: must be positive", e.Count)
}

// ErrInvalidElementWidth reports an unsupported packed element width.
type ErrInvalidElementWidth struct {
	Width int
}

func (e *ErrInvalidElementWidth) Error() string {
	return fmt.Sprintf("invalid element width %d bytes: supported widths are 4 (float32) and 2 (float16)", e.Width)
}

// ErrScalarType reports a boxed element that is not a numeric scalar.
type ErrScalarType struct {
	Row   int
	Index int
	Value any
}

func (e *ErrScalarType) Error() string {
	return fmt.Sprintf("row %d element %d: %T is not a numeric scalar", e.Row, e.Index, e.Value)
}

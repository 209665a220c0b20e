package seq

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *OutOfRangeError.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports an index outside [0, Len).
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Range is a closed index range [Start, End].
type Range struct {
	Start int
	End   int
}

// Closed returns the range start..end, both ends included.
func Closed(start, end int) Range {
	return Range{Start: start, End: end}
}

// Until returns the half-open range [start, end).
func Until(start, end int) Range {
	return Range{Start: start, End: end - 1}
}

// Len returns the number of indices in r, or 0 for an empty range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Slice returns a copy of items[r.Start] through items[r.End]. An empty
// range always succeeds with an empty result.
func Slice[T any](items []T, r Range) ([]T, error) {
	if r.Len() == 0 {
		return []T{}, nil
	}
	if err := checkIndex(r.Start, len(items)); err != nil {
		return nil, err
	}
	if err := checkIndex(r.End, len(items)); err != nil {
		return nil, err
	}
	out := make([]T, r.Len())
	copy(out, items[r.Start:r.End+1])
	return out, nil
}

// SliceIndices returns the items at the given indices, in the order given.
func SliceIndices[T any](items []T, indices []int) ([]T, error) {
	out := make([]T, 0, len(indices))
	for _, i := range indices {
		if err := checkIndex(i, len(items)); err != nil {
			return nil, err
		}
		out = append(out, items[i])
	}
	return out, nil
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &OutOfRangeError{Index: i, Len: n}
	}
	return nil
}

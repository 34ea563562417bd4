// Package sequence adapts a pair of random-access cursors into an Iterator.
package sequence

import (
	"github.com/KevoDB/cursor/pkg/algorithm"
	"github.com/KevoDB/cursor/pkg/common/iterator"
	"github.com/KevoDB/cursor/pkg/cursor"
)

// CompareFunc returns a negative number, zero or a positive number when a is
// less than, equal to or greater than b
type CompareFunc[T any] func(a, b T) int

// RangeIterator walks the range [first, last) of an adapted sequence.
// The range must be sorted by compare for Seek to be meaningful.
type RangeIterator[T any, R cursor.Reference[T]] struct {
	first   cursor.Adapter[T, R]
	last    cursor.Adapter[T, R]
	pos     cursor.Adapter[T, R]
	compare CompareFunc[T]
	valid   bool
}

var _ iterator.Iterator[int] = (*RangeIterator[int, cursor.Const[int]])(nil)

// NewRangeIterator creates an unpositioned iterator over [first, last).
// compare may be nil, in which case Seek always fails.
func NewRangeIterator[T any, R cursor.Reference[T]](first, last cursor.Adapter[T, R], compare CompareFunc[T]) *RangeIterator[T, R] {
	return &RangeIterator[T, R]{
		first:   first,
		last:    last,
		compare: compare,
	}
}

// NewSliceIterator creates a read-only iterator over all of s
func NewSliceIterator[T any](s []T, compare CompareFunc[T]) *RangeIterator[T, cursor.Const[T]] {
	return NewRangeIterator(cursor.MakeConst(cursor.Begin(s)), cursor.MakeConst(cursor.End(s)), compare)
}

// SeekToFirst positions the iterator at the first value
func (r *RangeIterator[T, R]) SeekToFirst() {
	r.setPosition(r.first)
}

// SeekToLast positions the iterator at the last value
func (r *RangeIterator[T, R]) SeekToLast() {
	if r.first.Equal(r.last) {
		r.valid = false
		return
	}
	r.setPosition(r.last.Sub(1))
}

// Seek positions the iterator at the first value >= target
func (r *RangeIterator[T, R]) Seek(target T) bool {
	if r.compare == nil {
		r.valid = false
		return false
	}
	less := func(a, b T) bool { return r.compare(a, b) < 0 }
	r.setPosition(algorithm.LowerBound(r.first, r.last, target, less))
	return r.valid
}

// Next advances the iterator to the next value
func (r *RangeIterator[T, R]) Next() bool {
	if !r.valid {
		return false
	}
	r.pos.Inc()
	r.valid = !r.pos.Equal(r.last)
	return r.valid
}

// Prev moves the iterator back to the previous value
func (r *RangeIterator[T, R]) Prev() bool {
	if !r.valid {
		return false
	}
	if r.pos.Equal(r.first) {
		r.valid = false
		return false
	}
	r.pos.Dec()
	return true
}

// Value returns the current value, or the zero value if the iterator is not valid
func (r *RangeIterator[T, R]) Value() T {
	if !r.valid {
		var zero T
		return zero
	}
	return r.pos.Get()
}

// Valid returns true if the iterator is positioned at a valid value
func (r *RangeIterator[T, R]) Valid() bool {
	return r.valid
}

// Position returns the cursor the iterator is currently at
func (r *RangeIterator[T, R]) Position() cursor.Adapter[T, R] {
	return r.pos
}

// Len returns the number of values in the range
func (r *RangeIterator[T, R]) Len() int {
	return algorithm.Distance(r.first, r.last)
}

func (r *RangeIterator[T, R]) setPosition(pos cursor.Adapter[T, R]) {
	r.pos = pos
	r.valid = !pos.Equal(r.last)
}

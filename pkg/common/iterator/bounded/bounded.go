package bounded

import (
	"github.com/KevoDB/cursor/pkg/common/iterator"
)

// BoundedIterator wraps an iterator and limits it to the value range [start, end)
type BoundedIterator[T any] struct {
	iterator.Iterator[T]
	compare func(a, b T) int
	start   *T
	end     *T
}

// NewBoundedIterator creates a new bounded iterator. A nil bound leaves that side open.
func NewBoundedIterator[T any](iter iterator.Iterator[T], compare func(a, b T) int, start, end *T) *BoundedIterator[T] {
	bi := &BoundedIterator[T]{
		Iterator: iter,
		compare:  compare,
	}
	bi.SetBounds(start, end)
	return bi
}

// SetBounds sets the start and end bounds for the iterator
func (b *BoundedIterator[T]) SetBounds(start, end *T) {
	// Copy the bounds so later changes by the caller are not observed
	b.start, b.end = nil, nil
	if start != nil {
		v := *start
		b.start = &v
	}
	if end != nil {
		v := *end
		b.end = &v
	}
}

// SeekToFirst positions at the first value in the bounded range
func (b *BoundedIterator[T]) SeekToFirst() {
	if b.start != nil {
		b.Iterator.Seek(*b.start)
	} else {
		b.Iterator.SeekToFirst()
	}
}

// SeekToLast positions at the last value in the bounded range
func (b *BoundedIterator[T]) SeekToLast() {
	if b.end == nil {
		b.Iterator.SeekToLast()
		return
	}

	// end is exclusive and the iterator only moves forward. Values may
	// repeat, so count the steps to the last value before end and replay them.
	steps := -1
	i := 0
	for b.SeekToFirst(); b.Iterator.Valid() && b.compare(b.Iterator.Value(), *b.end) < 0; b.Iterator.Next() {
		steps = i
		i++
	}

	// With nothing in range the source stays at or past end; Valid reports false
	b.SeekToFirst()
	for range steps {
		b.Iterator.Next()
	}
}

// Seek positions at the first value >= target within bounds
func (b *BoundedIterator[T]) Seek(target T) bool {
	if b.start != nil && b.compare(target, *b.start) < 0 {
		target = *b.start
	}
	if b.end != nil && b.compare(target, *b.end) >= 0 {
		return false
	}
	if b.Iterator.Seek(target) {
		return b.checkBounds()
	}
	return false
}

// Next advances to the next value within bounds
func (b *BoundedIterator[T]) Next() bool {
	if !b.checkBounds() {
		return false
	}
	if !b.Iterator.Next() {
		return false
	}
	return b.checkBounds()
}

// Valid returns true if the iterator is positioned at a valid value within bounds
func (b *BoundedIterator[T]) Valid() bool {
	return b.checkBounds()
}

// Value returns the current value if within bounds
func (b *BoundedIterator[T]) Value() T {
	if !b.Valid() {
		var zero T
		return zero
	}
	return b.Iterator.Value()
}

// checkBounds reports whether the current position is valid and within bounds
func (b *BoundedIterator[T]) checkBounds() bool {
	if !b.Iterator.Valid() {
		return false
	}
	v := b.Iterator.Value()
	if b.start != nil && b.compare(v, *b.start) < 0 {
		return false
	}
	if b.end != nil && b.compare(v, *b.end) >= 0 {
		return false
	}
	return true
}

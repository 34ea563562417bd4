// Package filtered provides iterators that skip values failing a predicate
package filtered

import (
	"strings"

	"github.com/KevoDB/cursor/pkg/common/iterator"
)

// FilterFunc is a function type for filtering values
type FilterFunc[T any] func(v T) bool

// FilteredIterator wraps an iterator and applies a value filter
type FilteredIterator[T any] struct {
	iter   iterator.Iterator[T]
	filter FilterFunc[T]
}

// NewFilteredIterator creates a new iterator with a value filter
func NewFilteredIterator[T any](iter iterator.Iterator[T], filter FilterFunc[T]) *FilteredIterator[T] {
	return &FilteredIterator[T]{
		iter:   iter,
		filter: filter,
	}
}

// Next advances to the next value that passes the filter
func (fi *FilteredIterator[T]) Next() bool {
	for fi.iter.Next() {
		if fi.filter(fi.iter.Value()) {
			return true
		}
	}
	return false
}

// Value returns the current value
func (fi *FilteredIterator[T]) Value() T {
	return fi.iter.Value()
}

// Valid returns true if the iterator is at a value that passes the filter
func (fi *FilteredIterator[T]) Valid() bool {
	return fi.iter.Valid() && fi.filter(fi.iter.Value())
}

// SeekToFirst positions at the first value that passes the filter
func (fi *FilteredIterator[T]) SeekToFirst() {
	fi.iter.SeekToFirst()
	if fi.iter.Valid() && !fi.filter(fi.iter.Value()) {
		fi.Next()
	}
}

// SeekToLast positions at the last value that passes the filter
func (fi *FilteredIterator[T]) SeekToLast() {
	fi.iter.SeekToLast()
	if !fi.iter.Valid() || fi.filter(fi.iter.Value()) {
		return
	}

	// Scan from the beginning, counting the steps to the last passing value
	steps := -1
	i := 0
	for fi.iter.SeekToFirst(); fi.iter.Valid(); fi.iter.Next() {
		if fi.filter(fi.iter.Value()) {
			steps = i
		}
		i++
	}

	if steps < 0 {
		return
	}
	fi.iter.SeekToFirst()
	for range steps {
		fi.iter.Next()
	}
}

// Seek positions at the first value >= target that passes the filter
func (fi *FilteredIterator[T]) Seek(target T) bool {
	if !fi.iter.Seek(target) {
		return false
	}
	if !fi.filter(fi.iter.Value()) {
		return fi.Next()
	}
	return true
}

// PrefixFilterFunc creates a filter for strings with a specific prefix
func PrefixFilterFunc(prefix string) FilterFunc[string] {
	return func(v string) bool {
		return strings.HasPrefix(v, prefix)
	}
}

// SuffixFilterFunc creates a filter for strings with a specific suffix
func SuffixFilterFunc(suffix string) FilterFunc[string] {
	return func(v string) bool {
		return strings.HasSuffix(v, suffix)
	}
}

// NewPrefixIterator returns an iterator over strings with the given prefix
func NewPrefixIterator(iter iterator.Iterator[string], prefix string) *FilteredIterator[string] {
	return NewFilteredIterator(iter, PrefixFilterFunc(prefix))
}

// NewSuffixIterator returns an iterator over strings with the given suffix
func NewSuffixIterator(iter iterator.Iterator[string], suffix string) *FilteredIterator[string] {
	return NewFilteredIterator(iter, SuffixFilterFunc(suffix))
}

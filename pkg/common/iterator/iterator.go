package iterator

// Iterator defines forward iteration over a sequence of values.
// It is the common shape for walking a cursor range, a bounded view or a
// filtered view without depending on how the values are stored.
type Iterator[T any] interface {
	// SeekToFirst positions the iterator at the first value
	SeekToFirst()

	// SeekToLast positions the iterator at the last value
	SeekToLast()

	// Seek positions the iterator at the first value >= target
	Seek(target T) bool

	// Next advances the iterator to the next value
	Next() bool

	// Value returns the current value
	Value() T

	// Valid returns true if the iterator is positioned at a valid value
	Valid() bool
}

// Collect drains iter from its first value into a slice
func Collect[T any](iter Iterator[T]) []T {
	var out []T
	for iter.SeekToFirst(); iter.Valid(); iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

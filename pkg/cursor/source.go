package cursor

// Source is the capability set a cursor must expose to be adapted: the
// contiguous storage it points into and its index within that storage.
type Source[T any] interface {
	// Backing returns the storage the cursor points into
	Backing() []T

	// Offset returns the cursor's index into Backing
	Offset() int
}

// Position is the native raw position over a slice.
type Position[T any] struct {
	seq []T
	off int
}

// Begin returns the position of the first element of s
func Begin[T any](s []T) Position[T] {
	return Position[T]{seq: s}
}

// End returns the position one past the last element of s
func End[T any](s []T) Position[T] {
	return Position[T]{seq: s, off: len(s)}
}

// At returns the position of element i of s. i is not checked.
func At[T any](s []T, i int) Position[T] {
	return Position[T]{seq: s, off: i}
}

// Backing returns the slice the position points into
func (p Position[T]) Backing() []T {
	return p.seq
}

// Offset returns the index of the position
func (p Position[T]) Offset() int {
	return p.off
}

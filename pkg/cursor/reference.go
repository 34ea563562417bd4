package cursor

import "fmt"

// Difference is the signed offset type of every cursor in this package.
type Difference = int

// Category identifies which traversal operations a cursor supports.
type Category int

const (
	// Input cursors support single-pass reads
	Input Category = iota
	// Forward cursors support multi-pass reads
	Forward
	// Bidirectional cursors can also step backwards
	Bidirectional
	// RandomAccess cursors support offsets, distance and ordering
	RandomAccess
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case Input:
		return "input"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random_access"
	default:
		return fmt.Sprintf("CATEGORY(%d)", int(c))
	}
}

// Reference is the set of reference types an Adapter can hand out.
// *T selects the mutable variant, Const[T] the read-only one.
type Reference[T any] interface {
	*T | Const[T]
}

// Const is an immutable reference to an element. There is no way to modify
// the element through it.
type Const[T any] struct {
	p *T
}

// Get returns a copy of the referenced element
func (c Const[T]) Get() T {
	return *c.p
}

// Same reports whether both references denote the same element
func (c Const[T]) Same(other Const[T]) bool {
	return c.p == other.p
}

// makeRef converts an element address into the reference type R.
func makeRef[T any, R Reference[T]](p *T) R {
	var r R
	if _, ok := any(r).(*T); ok {
		return any(p).(R)
	}
	return any(Const[T]{p: p}).(R)
}

// isMutable reports whether R is the mutable reference type.
func isMutable[T any, R Reference[T]]() bool {
	var r R
	_, ok := any(r).(*T)
	return ok
}

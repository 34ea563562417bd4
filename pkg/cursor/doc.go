// Package cursor adapts raw positions into contiguous storage into
// random-access cursors.
//
// An Adapter holds a borrowed slice and an index into it. It never copies,
// grows or frees the storage it points into, and it performs no bounds
// checking of its own: advancing past the valid range, dereferencing the
// sentinel, or comparing cursors over unrelated sequences is undefined in the
// same way it is for a raw index. Go's built-in slice bounds checks still apply
// on dereference.
//
// The reference type parameter selects the variant:
//
//	cursor.Adapter[int, *int]            // mutable: Ref returns *int
//	cursor.Adapter[int, cursor.Const[int]] // read-only: Ref returns Const[int]
//
// Make and MakeConst deduce the element type from any Source:
//
//	vec := []int{3, 1, 2}
//	first, last := cursor.Make(cursor.Begin(vec)), cursor.Make(cursor.End(vec))
//	algorithm.Sort(first, last, algorithm.Ascending[int])
//
// Building with the cursorcheck tag turns the documented preconditions into
// panics wrapping ErrSentinel, ErrOutOfRange or ErrForeignSequence.
package cursor

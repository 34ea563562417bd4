package cursor

import "fmt"

// Adapter presents a borrowed position into contiguous storage as a
// random-access cursor. R is the reference type: *T for the mutable variant,
// Const[T] for the read-only variant.
//
// The zero value is the sentinel position. It compares equal only to other
// sentinels and must not be dereferenced.
//
// Adapters are values; assignment copies the position and never the
// elements. Two adapters are equal when they address the same element, even
// if they were made from different views of one array. Ordering and Diff are
// only meaningful between adapters into the same array.
type Adapter[T any, R Reference[T]] struct {
	seq []T
	off int
}

// New adapts any source cursor whose element type is T
func New[T any, R Reference[T]](src Source[T]) Adapter[T, R] {
	return Adapter[T, R]{seq: src.Backing(), off: src.Offset()}
}

// Make adapts src into a mutable cursor, deducing the element type
func Make[T any](src Source[T]) Adapter[T, *T] {
	return New[T, *T](src)
}

// MakeConst adapts src into a read-only cursor, deducing the element type
func MakeConst[T any](src Source[T]) Adapter[T, Const[T]] {
	return New[T, Const[T]](src)
}

// AsConst returns a read-only cursor at the same position as a
func AsConst[T any](a Adapter[T, *T]) Adapter[T, Const[T]] {
	return Adapter[T, Const[T]]{seq: a.seq, off: a.off}
}

// Take moves the position out of a and resets a to the sentinel
func Take[T any, R Reference[T]](a *Adapter[T, R]) Adapter[T, R] {
	moved := *a
	*a = Adapter[T, R]{}
	return moved
}

// MoveFrom move-assigns src into a. src is left at the sentinel.
func (a *Adapter[T, R]) MoveFrom(src *Adapter[T, R]) {
	if a == src {
		return
	}
	*a = *src
	*src = Adapter[T, R]{}
}

// Category always reports RandomAccess
func (a Adapter[T, R]) Category() Category {
	return RandomAccess
}

// Mutable reports whether elements can be written through this cursor
func (a Adapter[T, R]) Mutable() bool {
	return isMutable[T, R]()
}

// IsSentinel reports whether a holds the sentinel position
func (a Adapter[T, R]) IsSentinel() bool {
	return a.seq == nil && a.off == 0
}

// Offset returns the index of the position within its sequence
func (a Adapter[T, R]) Offset() int {
	return a.off
}

// Get returns a copy of the element at the position
func (a Adapter[T, R]) Get() T {
	a.checkDeref(0)
	return a.seq[a.off]
}

// Ref returns a reference to the element at the position
func (a Adapter[T, R]) Ref() R {
	a.checkDeref(0)
	return makeRef[T, R](&a.seq[a.off])
}

// Index returns a copy of the element i positions away; a.Index(i) is
// a.Add(i).Get().
func (a Adapter[T, R]) Index(i Difference) T {
	a.checkDeref(i)
	return a.seq[a.off+i]
}

// At returns a reference to the element i positions away
func (a Adapter[T, R]) At(i Difference) R {
	a.checkDeref(i)
	return makeRef[T, R](&a.seq[a.off+i])
}

// Inc advances the cursor by one element
func (a *Adapter[T, R]) Inc() {
	a.checkMove(1)
	a.off++
}

// Dec moves the cursor back by one element
func (a *Adapter[T, R]) Dec() {
	a.checkMove(-1)
	a.off--
}

// PostInc advances the cursor and returns its previous value
func (a *Adapter[T, R]) PostInc() Adapter[T, R] {
	prev := *a
	a.Inc()
	return prev
}

// PostDec moves the cursor back and returns its previous value
func (a *Adapter[T, R]) PostDec() Adapter[T, R] {
	prev := *a
	a.Dec()
	return prev
}

// AddAssign moves the cursor n elements forward (backward for negative n)
func (a *Adapter[T, R]) AddAssign(n Difference) {
	a.checkMove(n)
	a.off += n
}

// SubAssign moves the cursor n elements backward (forward for negative n)
func (a *Adapter[T, R]) SubAssign(n Difference) {
	a.checkMove(-n)
	a.off -= n
}

// Add returns a cursor n elements after a
func (a Adapter[T, R]) Add(n Difference) Adapter[T, R] {
	a.AddAssign(n)
	return a
}

// Sub returns a cursor n elements before a
func (a Adapter[T, R]) Sub(n Difference) Adapter[T, R] {
	a.SubAssign(n)
	return a
}

// Plus is n + a, the commuted form of a.Add(n)
func Plus[T any, R Reference[T]](n Difference, a Adapter[T, R]) Adapter[T, R] {
	return a.Add(n)
}

// Diff returns a - b as an element count, so the distance from first to
// last is last.Diff(first).
func (a Adapter[T, R]) Diff(b Adapter[T, R]) Difference {
	a.checkSameSequence(b)
	return a.distance(b)
}

// Equal reports whether a and b denote the same address
func (a Adapter[T, R]) Equal(b Adapter[T, R]) bool {
	size := elemSize[T]()
	if size == 0 {
		return base(a.seq) == base(b.seq) && a.off == b.off
	}
	return baseDelta(a.seq, b.seq)+(a.off-b.off)*size == 0
}

// distance is a - b in elements, measured from the addresses the adapters hold
func (a Adapter[T, R]) distance(b Adapter[T, R]) Difference {
	size := elemSize[T]()
	if size == 0 {
		return a.off - b.off
	}
	return baseDelta(a.seq, b.seq)/size + a.off - b.off
}

// Less reports whether a comes before b
func (a Adapter[T, R]) Less(b Adapter[T, R]) bool {
	a.checkSameSequence(b)
	return a.distance(b) < 0
}

// LessEqual reports whether a does not come after b
func (a Adapter[T, R]) LessEqual(b Adapter[T, R]) bool {
	a.checkSameSequence(b)
	return a.distance(b) <= 0
}

// Greater reports whether a comes after b
func (a Adapter[T, R]) Greater(b Adapter[T, R]) bool {
	a.checkSameSequence(b)
	return a.distance(b) > 0
}

// GreaterEqual reports whether a does not come before b
func (a Adapter[T, R]) GreaterEqual(b Adapter[T, R]) bool {
	a.checkSameSequence(b)
	return a.distance(b) >= 0
}

// Compare returns -1, 0 or +1 ordering a relative to b
func (a Adapter[T, R]) Compare(b Adapter[T, R]) int {
	a.checkSameSequence(b)
	switch d := a.distance(b); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// String describes the position, for logs and the shell
func (a Adapter[T, R]) String() string {
	if a.IsSentinel() {
		return "cursor(sentinel)"
	}
	mode := "rw"
	if !a.Mutable() {
		mode = "ro"
	}
	return fmt.Sprintf("cursor(%s %d/%d)", mode, a.off, len(a.seq))
}

// Swap exchanges the elements referenced by two mutable cursors
func Swap[T any](a, b Adapter[T, *T]) {
	pa, pb := a.Ref(), b.Ref()
	*pa, *pb = *pb, *pa
}

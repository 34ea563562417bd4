package cursor

import (
	"fmt"
	"unsafe"
)

// base identifies the storage a slice points into.
func base[T any](s []T) *T {
	return unsafe.SliceData(s)
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// baseDelta returns the byte distance from the start of b to the start of a.
func baseDelta[T any](a, b []T) int {
	return int(uintptr(unsafe.Pointer(unsafe.SliceData(a))) - uintptr(unsafe.Pointer(unsafe.SliceData(b))))
}

func (a Adapter[T, R]) checkDeref(i Difference) {
	if !checked {
		return
	}
	if a.seq == nil {
		panic(ErrSentinel)
	}
	if idx := a.off + i; idx < 0 || idx >= len(a.seq) {
		panic(fmt.Errorf("%w: dereference at %d, length %d", ErrOutOfRange, idx, len(a.seq)))
	}
}

func (a Adapter[T, R]) checkMove(n Difference) {
	if !checked {
		return
	}
	if idx := a.off + n; idx < 0 || idx > len(a.seq) {
		panic(fmt.Errorf("%w: move to %d, length %d", ErrOutOfRange, idx, len(a.seq)))
	}
}

func (a Adapter[T, R]) checkSameSequence(b Adapter[T, R]) {
	if !checked {
		return
	}
	size := elemSize[T]()
	if size == 0 {
		if base(a.seq) != base(b.seq) {
			panic(ErrForeignSequence)
		}
		return
	}
	// Views of one array have overlapping or touching windows
	d := baseDelta(b.seq, a.seq)
	if d > len(a.seq)*size || d+len(b.seq)*size < 0 {
		panic(ErrForeignSequence)
	}
}

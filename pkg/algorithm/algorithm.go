package algorithm

import (
	"github.com/KevoDB/cursor/pkg/cursor"
	"golang.org/x/exp/constraints"
)

// Ascending orders values from smallest to largest
func Ascending[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Descending orders values from largest to smallest
func Descending[T constraints.Ordered](a, b T) bool {
	return a > b
}

// Distance returns the number of elements in [first, last)
func Distance[C Differ[C]](first, last C) cursor.Difference {
	return last.Diff(first)
}

// Next returns c advanced by n
func Next[C Advancer[C]](c C, n cursor.Difference) C {
	return c.Add(n)
}

// Prev returns c moved back by n
func Prev[C Advancer[C]](c C, n cursor.Difference) C {
	return c.Add(-n)
}

// IsSorted reports whether [first, last) is ordered by less
func IsSorted[C RandomAccess[C, T], T any](first, last C, less func(a, b T) bool) bool {
	n := Distance(first, last)
	for i := 1; i < n; i++ {
		if less(first.Add(i).Get(), first.Add(i-1).Get()) {
			return false
		}
	}
	return true
}

// LowerBound returns the first position in the sorted range [first, last)
// whose element is not less than value, or last.
func LowerBound[C RandomAccess[C, T], T any](first, last C, value T, less func(a, b T) bool) C {
	count := Distance(first, last)
	for count > 0 {
		step := count / 2
		mid := first.Add(step)
		if less(mid.Get(), value) {
			first = mid.Add(1)
			count -= step + 1
		} else {
			count = step
		}
	}
	return first
}

// UpperBound returns the first position in the sorted range [first, last)
// whose element is greater than value, or last.
func UpperBound[C RandomAccess[C, T], T any](first, last C, value T, less func(a, b T) bool) C {
	count := Distance(first, last)
	for count > 0 {
		step := count / 2
		mid := first.Add(step)
		if !less(value, mid.Get()) {
			first = mid.Add(1)
			count -= step + 1
		} else {
			count = step
		}
	}
	return first
}

// Find returns the first position holding value, or last
func Find[C RandomAccess[C, T], T comparable](first, last C, value T) C {
	return FindIf(first, last, func(v T) bool { return v == value })
}

// FindIf returns the first position whose element satisfies pred, or last
func FindIf[C RandomAccess[C, T], T any](first, last C, pred func(T) bool) C {
	for it := first; !it.Equal(last); it = it.Add(1) {
		if pred(it.Get()) {
			return it
		}
	}
	return last
}

// Count returns how many elements in [first, last) equal value
func Count[C RandomAccess[C, T], T comparable](first, last C, value T) int {
	n := 0
	for it := first; !it.Equal(last); it = it.Add(1) {
		if it.Get() == value {
			n++
		}
	}
	return n
}

// Fill assigns value to every element of [first, last)
func Fill[C Writable[C, T], T any](first, last C, value T) {
	for it := first; !it.Equal(last); it = it.Add(1) {
		*it.Ref() = value
	}
}

// Reverse reverses the order of the elements in [first, last). The element
// type cannot be inferred from the cursors, so it is given explicitly:
//
//	algorithm.Reverse[int](first, last)
func Reverse[T any, C Writable[C, T]](first, last C) {
	for n := Distance(first, last); n > 1; n -= 2 {
		last = last.Add(-1)
		pf, pl := first.Ref(), last.Ref()
		*pf, *pl = *pl, *pf
		first = first.Add(1)
	}
}

package algorithm

import "math/bits"

// insertionThreshold is the range size below which insertion sort is used
const insertionThreshold = 12

// Sort orders [first, last) by less. It is an introsort: quicksort with a
// median-of-three pivot, falling back to heapsort past a depth limit and to
// insertion sort for short ranges. Sort is not stable.
func Sort[C Writable[C, T], T any](first, last C, less func(a, b T) bool) {
	n := Distance(first, last)
	if n < 2 {
		return
	}
	s := span[C, T]{base: first, less: less}
	s.introsort(0, n, 2*bits.Len(uint(n)))
}

// span addresses a range by integer offsets from its first cursor.
type span[C Writable[C, T], T any] struct {
	base C
	less func(a, b T) bool
}

func (s span[C, T]) get(i int) T {
	return s.base.Add(i).Get()
}

func (s span[C, T]) lessAt(i, j int) bool {
	return s.less(s.get(i), s.get(j))
}

func (s span[C, T]) swap(i, j int) {
	if i == j {
		return
	}
	pi, pj := s.base.Add(i).Ref(), s.base.Add(j).Ref()
	*pi, *pj = *pj, *pi
}

func (s span[C, T]) introsort(lo, hi, depth int) {
	for hi-lo > insertionThreshold {
		if depth == 0 {
			s.heapSort(lo, hi)
			return
		}
		depth--

		p := s.partition(lo, hi)
		// Recurse into the smaller side to bound stack depth
		if p-lo < hi-p {
			s.introsort(lo, p, depth)
			lo = p + 1
		} else {
			s.introsort(p+1, hi, depth)
			hi = p
		}
	}
	s.insertionSort(lo, hi)
}

// partition places a pivot at its final index and returns that index.
func (s span[C, T]) partition(lo, hi int) int {
	mid := lo + (hi-lo)/2
	last := hi - 1

	// Order lo, mid, last so mid holds the median
	if s.lessAt(mid, lo) {
		s.swap(mid, lo)
	}
	if s.lessAt(last, mid) {
		s.swap(last, mid)
		if s.lessAt(mid, lo) {
			s.swap(mid, lo)
		}
	}
	s.swap(mid, last)

	pivot := s.get(last)
	store := lo
	for i := lo; i < last; i++ {
		if s.less(s.get(i), pivot) {
			s.swap(i, store)
			store++
		}
	}
	s.swap(store, last)
	return store
}

func (s span[C, T]) insertionSort(lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && s.lessAt(j, j-1); j-- {
			s.swap(j, j-1)
		}
	}
}

func (s span[C, T]) heapSort(lo, hi int) {
	n := hi - lo
	for root := n/2 - 1; root >= 0; root-- {
		s.siftDown(lo, root, n)
	}
	for end := n - 1; end > 0; end-- {
		s.swap(lo, lo+end)
		s.siftDown(lo, 0, end)
	}
}

func (s span[C, T]) siftDown(lo, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && s.lessAt(lo+child, lo+child+1) {
			child++
		}
		if !s.lessAt(lo+root, lo+child) {
			return
		}
		s.swap(lo+root, lo+child)
		root = child
	}
}

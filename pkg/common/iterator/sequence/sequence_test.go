package sequence

import (
	"cmp"
	"testing"

	"github.com/KevoDB/cursor/pkg/common/iterator"
	"github.com/KevoDB/cursor/pkg/cursor"
)

func TestRangeIterator_Walk(t *testing.T) {
	data := []int{10, 20, 30, 40}
	iter := NewSliceIterator(data, cmp.Compare[int])

	if iter.Valid() {
		t.Fatal("Expected new iterator to be unpositioned")
	}

	got := iterator.Collect[int](iter)
	if len(got) != len(data) {
		t.Fatalf("Expected %d values, got %d", len(data), len(got))
	}
	for i := range data {
		if got[i] != data[i] {
			t.Errorf("Expected value %d at %d, got %d", data[i], i, got[i])
		}
	}

	if iter.Next() {
		t.Error("Expected Next to fail after the end")
	}
	if iter.Value() != 0 {
		t.Errorf("Expected zero value past the end, got %d", iter.Value())
	}
	if iter.Len() != 4 {
		t.Errorf("Expected length 4, got %d", iter.Len())
	}
}

func TestRangeIterator_SeekToLastAndPrev(t *testing.T) {
	data := []int{1, 2, 3}
	iter := NewSliceIterator(data, nil)

	iter.SeekToLast()
	if !iter.Valid() || iter.Value() != 3 {
		t.Fatalf("Expected last value 3, got valid=%v value=%d", iter.Valid(), iter.Value())
	}

	var backwards []int
	for ; iter.Valid(); iter.Prev() {
		backwards = append(backwards, iter.Value())
	}
	if len(backwards) != 3 || backwards[0] != 3 || backwards[2] != 1 {
		t.Errorf("Expected [3 2 1], got %v", backwards)
	}
}

func TestRangeIterator_Empty(t *testing.T) {
	iter := NewSliceIterator([]int{}, cmp.Compare[int])

	iter.SeekToFirst()
	if iter.Valid() {
		t.Error("Expected empty iterator to be invalid after SeekToFirst")
	}
	iter.SeekToLast()
	if iter.Valid() {
		t.Error("Expected empty iterator to be invalid after SeekToLast")
	}
	if iter.Seek(5) {
		t.Error("Expected Seek on empty iterator to fail")
	}
}

func TestRangeIterator_Seek(t *testing.T) {
	data := []string{"apple", "banana", "cherry", "date"}
	iter := NewSliceIterator(data, cmp.Compare[string])

	if !iter.Seek("b") {
		t.Fatal("Expected Seek(b) to succeed")
	}
	if iter.Value() != "banana" {
		t.Errorf("Expected banana, got %s", iter.Value())
	}
	if iter.Position().Offset() != 1 {
		t.Errorf("Expected offset 1, got %d", iter.Position().Offset())
	}

	if !iter.Seek("cherry") || iter.Value() != "cherry" {
		t.Errorf("Expected exact match for cherry, got %s", iter.Value())
	}

	if iter.Seek("zebra") {
		t.Error("Expected Seek past the last value to fail")
	}
}

func TestRangeIterator_SeekWithoutCompare(t *testing.T) {
	iter := NewSliceIterator([]int{1, 2}, nil)
	if iter.Seek(1) {
		t.Error("Expected Seek without compare function to fail")
	}
}

func TestRangeIterator_Subrange(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	first := cursor.Make(cursor.Begin(data))
	iter := NewRangeIterator(first.Add(2), first.Add(5), cmp.Compare[int])

	got := iterator.Collect[int](iter)
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("Expected [3 4 5], got %v", got)
	}

	// Mutable iterators expose the cursor for writes
	iter.SeekToFirst()
	*iter.Position().Ref() = 30
	if data[2] != 30 {
		t.Errorf("Expected write through position, got %d", data[2])
	}
}

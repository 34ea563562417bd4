package iterator

// This file documents the recommended adapter pattern for iterator implementations.
//
// Guidelines for Iterator Adapters:
//
// 1. Naming Convention:
//    - Use the suffix "Iterator" for types implementing Iterator[T]
//    - Use "New[Kind]Iterator" for constructor functions
//
// 2. Implementation Pattern:
//    - Store the source (a cursor pair or another Iterator[T]) as a field
//    - Implement Iterator[T] by delegating to the source
//    - Guard Value with Valid; never dereference a cursor at its end
//
// 3. Performance Considerations:
//    - Cursors are values; copy them instead of allocating
//    - Values are returned by copy, so keep T small or use pointers
//
// 4. Adapter Location:
//    - Cursor-backed iterators live in the sequence package
//    - Decorators over Iterator[T] live in their own packages (bounded, filtered)
//
// Example:
//
// // SliceIterator walks a slice through a read-only cursor pair
// type SliceIterator[T any] struct {
//     first, last, pos cursor.Adapter[T, cursor.Const[T]]
//     valid            bool
// }
//
// func (s *SliceIterator[T]) SeekToFirst() {
//     s.pos = s.first
//     s.valid = !s.pos.Equal(s.last)
// }
//
// func (s *SliceIterator[T]) Next() bool {
//     if !s.valid {
//         return false
//     }
//     s.pos.Inc()
//     s.valid = !s.pos.Equal(s.last)
//     return s.valid
// }
//
// func (s *SliceIterator[T]) Value() T {
//     var zero T
//     if !s.valid {
//         return zero
//     }
//     return s.pos.Get()
// }

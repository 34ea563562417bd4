// Package algorithm implements sequence algorithms against the random-access
// cursor protocol. Any type with the right method set is accepted, so adapted
// cursors from package cursor and hand-written cursors are interchangeable.
package algorithm

import "github.com/KevoDB/cursor/pkg/cursor"

// Differ is a cursor that can measure the distance to another cursor of the
// same type.
type Differ[C any] interface {
	Diff(other C) cursor.Difference
}

// Advancer is a cursor that can be moved by an arbitrary offset.
type Advancer[C any] interface {
	Add(n cursor.Difference) C
}

// RandomAccess is the read side of the random-access cursor protocol.
type RandomAccess[C any, T any] interface {
	Differ[C]
	Advancer[C]
	Get() T
	Equal(other C) bool
	Less(other C) bool
}

// Writable is a random-access cursor through which elements can be
// modified. Read-only adapters do not satisfy it.
type Writable[C any, T any] interface {
	RandomAccess[C, T]
	Ref() *T
}

package cursor

import "errors"

// Precondition violations. Production builds never report these; builds with
// the cursorcheck tag panic with an error wrapping one of them.
var (
	// ErrSentinel is reported when the sentinel position is dereferenced
	ErrSentinel = errors.New("dereference of sentinel cursor")

	// ErrOutOfRange is reported when a cursor leaves its sequence
	ErrOutOfRange = errors.New("cursor out of range")

	// ErrForeignSequence is reported when cursors over different sequences are compared
	ErrForeignSequence = errors.New("cursors refer to different sequences")
)

//go:build cursorcheck

package cursor

const checked = true

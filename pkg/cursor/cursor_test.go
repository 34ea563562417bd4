package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ringSource is a source that is not a Position, to show that any type
// exposing Backing and Offset can be adapted.
type ringSource struct {
	buf  *[8]int
	head int
}

func (r ringSource) Backing() []int { return r.buf[:] }
func (r ringSource) Offset() int    { return r.head }

func TestMakeDeducesElementType(t *testing.T) {
	vec := []string{"a", "b", "c"}

	rw := Make(Begin(vec))
	ro := MakeConst(Begin(vec))

	assert.Equal(t, "a", rw.Get())
	assert.Equal(t, "a", ro.Get())
	assert.True(t, rw.Mutable())
	assert.False(t, ro.Mutable())
	assert.Equal(t, RandomAccess, rw.Category())
	assert.Equal(t, RandomAccess, ro.Category())
}

func TestNewFromCustomSource(t *testing.T) {
	var buf [8]int
	for i := range buf {
		buf[i] = i * 10
	}

	c := New[int, *int](ringSource{buf: &buf, head: 3})
	assert.Equal(t, 30, c.Get())
	assert.Equal(t, 3, c.Offset())

	*c.Ref() = 99
	assert.Equal(t, 99, buf[3], "write through cursor must reach the borrowed storage")
}

func TestDereferenceAndIndex(t *testing.T) {
	vec := []int{5, 6, 7, 8}
	c := Make(Begin(vec))

	for i := range vec {
		assert.Equal(t, vec[i], c.Index(i))
		assert.Equal(t, c.Add(i).Get(), c.Index(i))
		assert.Same(t, &vec[i], c.At(i))
	}

	*c.At(2) = 70
	assert.Equal(t, 70, vec[2])

	last := Make(End(vec))
	assert.Equal(t, 8, last.Index(-1))
}

func TestConstReference(t *testing.T) {
	vec := []int{1, 2, 3}
	ro := MakeConst(At(vec, 1))

	ref := ro.Ref()
	assert.Equal(t, 2, ref.Get())

	vec[1] = 20
	assert.Equal(t, 20, ref.Get(), "const reference observes the live element")
	assert.True(t, ref.Same(ro.At(0)))
	assert.False(t, ref.Same(ro.At(1)))
}

func TestIncrementDecrement(t *testing.T) {
	vec := []int{1, 2, 3, 4}
	c := Make(Begin(vec))

	c.Inc()
	assert.Equal(t, 2, c.Get())

	prev := c.PostInc()
	assert.Equal(t, 2, prev.Get())
	assert.Equal(t, 3, c.Get())

	c.Dec()
	assert.Equal(t, 2, c.Get())

	prev = c.PostDec()
	assert.Equal(t, 2, prev.Get())
	assert.Equal(t, 1, c.Get())
	assert.True(t, c.Equal(Make(Begin(vec))))
}

func TestOffsetArithmetic(t *testing.T) {
	vec := make([]int, 10)
	first := Make(Begin(vec))
	last := Make(End(vec))

	c := first
	c.AddAssign(7)
	assert.Equal(t, 7, c.Offset())
	c.SubAssign(3)
	assert.Equal(t, 4, c.Offset())
	c.AddAssign(-4)
	assert.True(t, c.Equal(first))

	assert.True(t, first.Add(10).Equal(last))
	assert.True(t, last.Sub(10).Equal(first))
	assert.True(t, Plus(4, first).Equal(first.Add(4)))
	assert.True(t, first.Add(6).Sub(6).Equal(first))

	assert.Equal(t, 10, last.Diff(first))
	assert.Equal(t, -10, first.Diff(last))

	// Add and Sub leave the receiver untouched
	assert.Equal(t, 0, first.Offset())
}

func TestRelationalOrder(t *testing.T) {
	vec := make([]int, 4)
	a := Make(At(vec, 1))
	b := Make(At(vec, 3))

	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(a))
	assert.True(t, b.GreaterEqual(b))
	assert.False(t, a.Less(a))
	assert.False(t, a.Greater(b))

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestEqualityIsPositionIdentity(t *testing.T) {
	vec := []int{1, 1, 1}
	other := []int{1, 1, 1}

	assert.True(t, Make(At(vec, 1)).Equal(Make(At(vec, 1))))
	assert.False(t, Make(At(vec, 1)).Equal(Make(At(vec, 2))), "equal values at different positions")
	assert.False(t, Make(At(vec, 1)).Equal(Make(At(other, 1))), "same index in another sequence")

	// A shorter view over the same storage denotes the same positions
	assert.True(t, Make(At(vec[:2], 1)).Equal(Make(At(vec, 1))))
}

func TestSubsliceViewsShareAddresses(t *testing.T) {
	vec := []int{0, 1, 2, 3, 4, 5}
	whole := Make(At(vec, 2))
	tail := Make(At(vec[2:], 0))

	assert.Same(t, whole.Ref(), tail.Ref())
	assert.True(t, whole.Equal(tail))
	assert.True(t, tail.Equal(whole))
	assert.Equal(t, 0, whole.Diff(tail))
	assert.Equal(t, 0, whole.Compare(tail))

	later := Make(At(vec[3:], 2))
	assert.Equal(t, 3, later.Diff(whole))
	assert.Equal(t, -3, whole.Diff(later))
	assert.True(t, whole.Less(later))
	assert.True(t, later.GreaterEqual(tail))
	assert.True(t, Make(End(vec[:4])).Equal(Make(Begin(vec[4:]))))
	assert.True(t, MakeConst(End(vec)).Equal(MakeConst(End(vec[1:]))))
}

func TestZeroSizeElements(t *testing.T) {
	vec := make([]struct{}, 4)

	assert.True(t, Make(At(vec, 2)).Equal(Make(At(vec, 2))))
	assert.False(t, Make(At(vec, 1)).Equal(Make(At(vec, 2))))
	assert.Equal(t, 4, Make(End(vec)).Diff(Make(Begin(vec))))
}

func TestSentinel(t *testing.T) {
	var a, b Adapter[int, *int]
	assert.True(t, a.IsSentinel())
	assert.True(t, a.Equal(b))

	var ro Adapter[int, Const[int]]
	assert.True(t, ro.IsSentinel())

	vec := []int{1}
	assert.False(t, a.Equal(Make(Begin(vec))))
	assert.False(t, Make(Begin(vec)).Equal(a))
	assert.False(t, Make(Begin(vec)).IsSentinel())
	assert.Equal(t, "cursor(sentinel)", a.String())

	// Positions over a nil slice are indistinguishable from the sentinel
	var none []int
	assert.True(t, Make(Begin(none)).IsSentinel())
	assert.True(t, Make(End(none)).Equal(a))
	empty := []int{}
	assert.True(t, Make(Begin(empty)).Equal(Make(End(empty))))
}

func TestCopyIsIndependent(t *testing.T) {
	vec := []int{1, 2, 3}
	a := Make(Begin(vec))
	b := a

	b.Inc()
	assert.Equal(t, 0, a.Offset())
	assert.Equal(t, 1, b.Offset())

	*b.Ref() = 9
	assert.Equal(t, 9, a.Index(1), "copies share the borrowed storage")
}

func TestMoveLeavesSentinel(t *testing.T) {
	vec := []int{1, 2, 3}

	src := Make(At(vec, 2))
	moved := Take(&src)
	assert.Equal(t, 3, moved.Get())
	assert.True(t, src.Equal(Adapter[int, *int]{}))

	var dst Adapter[int, Const[int]]
	ro := MakeConst(At(vec, 1))
	dst.MoveFrom(&ro)
	assert.Equal(t, 2, dst.Get())
	assert.True(t, ro.Equal(Adapter[int, Const[int]]{}))

	// Self move is a no-op
	dst.MoveFrom(&dst)
	assert.Equal(t, 2, dst.Get())
}

func TestAsConst(t *testing.T) {
	vec := []int{4, 5}
	rw := Make(At(vec, 1))
	ro := AsConst(rw)

	assert.Equal(t, rw.Offset(), ro.Offset())
	assert.Equal(t, 5, ro.Get())
	assert.False(t, ro.Mutable())
}

func TestSwap(t *testing.T) {
	vec := []int{1, 2, 3}
	first := Make(Begin(vec))

	Swap(first, first.Add(2))
	require.Equal(t, []int{3, 2, 1}, vec)

	Swap(first.Add(1), first.Add(1))
	require.Equal(t, []int{3, 2, 1}, vec)
}

func TestString(t *testing.T) {
	vec := make([]int, 5)
	assert.Equal(t, "cursor(rw 2/5)", Make(At(vec, 2)).String())
	assert.Equal(t, "cursor(ro 5/5)", MakeConst(End(vec)).String())
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "random_access", RandomAccess.String())
	assert.Equal(t, "bidirectional", Bidirectional.String())
	assert.Equal(t, "CATEGORY(42)", Category(42).String())
}

func TestPosition(t *testing.T) {
	vec := []int{1, 2, 3}

	assert.Equal(t, 0, Begin(vec).Offset())
	assert.Equal(t, 3, End(vec).Offset())
	assert.Equal(t, 2, At(vec, 2).Offset())
	assert.Len(t, Begin(vec).Backing(), 3)
}

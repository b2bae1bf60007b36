package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/persistkit/vec/mem"
	"github.com/joshuapare/persistkit/vec/policy"
)

// optionsFor builds Options around each memory policy variant.
func optionsFor(t *testing.T) map[string]Options {
	t.Helper()

	arena, err := mem.NewArena()
	require.NoError(t, err)
	t.Cleanup(func() { _ = arena.Close() })

	return map[string]Options{
		"gc":       {Policy: policy.New(mem.NewGC(), policy.DefaultGrowth)},
		"refcount": {Policy: policy.New(mem.NewRefCount(), policy.DefaultGrowth)},
		"arena":    {Policy: policy.New(arena, policy.DefaultGrowth)},
	}
}

// TestVector_Construction tests the constructors and basic reads.
func TestVector_Construction(t *testing.T) {
	empty := New[int]()
	assert.Zero(t, empty.Len())
	assert.True(t, empty.Empty())

	v := Of(10, 20, 30)
	assert.Equal(t, 3, v.Len())
	assert.False(t, v.Empty())
	assert.Equal(t, 10, v.At(0))
	assert.Equal(t, 30, v.At(2))
	assert.Equal(t, 10, v.Front())
	assert.Equal(t, 30, v.Back())
	assert.Equal(t, []int{10, 20, 30}, v.Slice())

	src := []string{"a", "b"}
	w := FromSlice(src, Options{})
	src[0] = "mutated"
	assert.Equal(t, "a", w.At(0), "FromSlice must copy its input")
}

// TestVector_ZeroValueUsable tests that the zero Vector behaves as empty.
func TestVector_ZeroValueUsable(t *testing.T) {
	var v Vector[int]
	assert.Zero(t, v.Len())
	assert.Empty(t, v.Slice())

	v2 := v.Push(1)
	assert.Equal(t, []int{1}, v2.Slice())
	assert.Zero(t, v.Len(), "push must not touch the zero receiver")

	tr := v.Transient()
	tr.Push(7)
	assert.Equal(t, []int{7}, tr.Commit().Slice())
}

// TestVector_AtOutOfRange tests the documented panic precondition.
func TestVector_AtOutOfRange(t *testing.T) {
	v := Of(1, 2)
	assert.Panics(t, func() { v.At(2) })
	assert.Panics(t, func() { v.At(-1) })
	assert.Panics(t, func() { New[int]().Front() })
	assert.Panics(t, func() { v.Set(5, 0) })
}

// TestVector_PersistentEdits tests that Push/Set/Update/Take fork and
// never touch the receiver.
func TestVector_PersistentEdits(t *testing.T) {
	v := Of(1, 2, 3)

	pushed := v.Push(4)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
	assert.Equal(t, []int{1, 2, 3, 4}, pushed.Slice())

	set := v.Set(1, 20)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
	assert.Equal(t, []int{1, 20, 3}, set.Slice())

	updated := v.Update(0, func(x int) int { return x * 10 })
	assert.Equal(t, []int{10, 2, 3}, updated.Slice())

	taken := v.Take(2)
	assert.Equal(t, []int{1, 2}, taken.Slice())
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

// TestVector_TakeNoOpShares tests that an oversized take returns the
// receiver itself, sharing the node.
func TestVector_TakeNoOpShares(t *testing.T) {
	v := Of(1, 2, 3)
	same := v.Take(3)
	assert.Same(t, v.s.n, same.s.n, "no-op take should share the node")
	assert.Same(t, v.s.n, v.Take(10).s.n)

	shrunk := v.Take(0)
	assert.Zero(t, shrunk.Len())
}

// TestVector_StructuralIndependence tests the central duality invariant:
// deriving and mutating a transient never affects the source value.
func TestVector_StructuralIndependence(t *testing.T) {
	for name, opts := range optionsFor(t) {
		t.Run(name, func(t *testing.T) {
			p := FromSlice([]int{1, 2, 3}, opts)

			tr := p.Transient()
			tr.Push(4)
			p2 := tr.Persistent()

			require.Equal(t, 3, p.Len(), "source must be unchanged")
			assert.Equal(t, []int{1, 2, 3}, p.Slice())
			require.Equal(t, 4, p2.Len())
			assert.Equal(t, []int{1, 2, 3, 4}, p2.Slice())
		})
	}
}

// TestVector_PublishedValueFrozen tests that a value published mid-session
// stays frozen while the transient keeps editing.
func TestVector_PublishedValueFrozen(t *testing.T) {
	for name, opts := range optionsFor(t) {
		t.Run(name, func(t *testing.T) {
			tr := NewWith[int](opts).Transient()
			for i := 0; i < 5; i++ {
				tr.Push(i)
			}

			snap := tr.Persistent()
			require.Equal(t, []int{0, 1, 2, 3, 4}, snap.Slice())

			// Every kind of edit after publishing.
			tr.Push(5)
			tr.Set(0, 100)
			tr.Update(1, func(x int) int { return -x })
			tr.Take(4)

			assert.Equal(t, []int{0, 1, 2, 3, 4}, snap.Slice(),
				"published value must never observe later session edits")
			assert.Equal(t, []int{100, -1, 2, 3}, tr.Persistent().Slice())
		})
	}
}

// TestVector_RoundTrip tests persistent(transient(P)) == P on both
// conversion paths.
func TestVector_RoundTrip(t *testing.T) {
	for name, opts := range optionsFor(t) {
		t.Run(name, func(t *testing.T) {
			p := FromSlice([]int{5, 6, 7}, opts)

			lvalue := p.Transient().Persistent()
			assert.Equal(t, p.Slice(), lvalue.Slice())

			rvalue := p.Transient().Commit()
			assert.Equal(t, p.Slice(), rvalue.Slice())
		})
	}
}

// TestVector_CommitSharesWithoutFork tests that the rvalue path hands the
// node over instead of copying, and that later sessions copy on first
// touch instead of disturbing it.
func TestVector_CommitSharesWithoutFork(t *testing.T) {
	tr := Of(1, 2, 3).Transient()
	tr.Push(4)
	n := tr.s.n

	v := tr.Commit()
	assert.Same(t, n, v.s.n, "commit should move the handle, not fork it")

	// A new session over the committed value must copy on first touch.
	tr2 := v.Transient()
	tr2.Set(0, 9)
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
	assert.NotSame(t, n, tr2.s.n, "foreign node must be copied, not reclaimed")
}

// TestTransient_UseAfterCommitPanics tests the retired-session guard.
func TestTransient_UseAfterCommitPanics(t *testing.T) {
	tr := Of(1).Transient()
	tr.Commit()

	assert.PanicsWithValue(t, ErrRetired, func() { tr.Push(2) })
	assert.PanicsWithValue(t, ErrRetired, func() { tr.Persistent() })
	assert.PanicsWithValue(t, ErrRetired, func() { tr.Commit() })
}

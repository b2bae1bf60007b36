package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/persistkit/vec/mem"
	"github.com/joshuapare/persistkit/vec/policy"
)

// TestTransient_Reads tests the read surface of the builder.
func TestTransient_Reads(t *testing.T) {
	tr := Of(1, 2, 3).Transient()

	assert.Equal(t, 3, tr.Len())
	assert.False(t, tr.Empty())
	assert.Equal(t, 1, tr.Front())
	assert.Equal(t, 3, tr.Back())
	assert.Equal(t, 2, tr.At(1))
	assert.Panics(t, func() { tr.At(3) })

	var got []int
	tr.ForEachChunk(func(chunk []int) bool {
		got = append(got, chunk...)
		return true
	})
	assert.Equal(t, []int{1, 2, 3}, got)
}

// TestTransient_InPlaceReuse tests the amortized-O(1) property: once the
// session's token has claimed the node, edits within capacity perform no
// further buffer allocations.
func TestTransient_InPlaceReuse(t *testing.T) {
	pol := mem.NewRefCount()
	opts := Options{Policy: policy.New(pol, policy.Growth{MinCapacity: 8, Num: 2, Den: 1})}

	tr := NewWith[int](opts).Transient()
	tr.Push(0) // first claim
	claimed := pol.Stats().Buffers()

	for i := 1; i < 8; i++ {
		tr.Push(i)
	}
	assert.Equal(t, claimed, pol.Stats().Buffers(),
		"pushes within capacity must not allocate")

	for i := 0; i < 8; i++ {
		tr.Set(i, i*i)
	}
	tr.Update(3, func(x int) int { return x + 1 })
	tr.Take(6)
	assert.Equal(t, claimed, pol.Stats().Buffers(),
		"in-place edits must not allocate")

	assert.Equal(t, []int{0, 1, 4, 10, 16, 25}, tr.Commit().Slice())
}

// TestTransient_AmortizedGrowth tests that N pushes cost O(log N) buffer
// allocations, not O(N).
func TestTransient_AmortizedGrowth(t *testing.T) {
	pol := mem.NewRefCount()
	opts := Options{Policy: policy.New(pol, policy.DefaultGrowth)}

	tr := NewWith[int](opts).Transient()
	const n = 4096
	for i := 0; i < n; i++ {
		tr.Push(i)
	}

	// Doubling from 8 to 4096 is 10 claims.
	assert.LessOrEqual(t, pol.Stats().Buffers(), uint64(16),
		"growth should be geometric, got %d allocations for %d pushes",
		pol.Stats().Buffers(), n)

	v := tr.Commit()
	require.Equal(t, n, v.Len())
	assert.Equal(t, 0, v.At(0))
	assert.Equal(t, n-1, v.At(n-1))
}

// TestTransient_TakeSemantics tests truncation edge cases.
func TestTransient_TakeSemantics(t *testing.T) {
	tr := Of(1, 2, 3, 4).Transient()

	tr.Take(10)
	assert.Equal(t, 4, tr.Len(), "oversized take is a no-op")
	tr.Take(4)
	assert.Equal(t, 4, tr.Len(), "exact take is a no-op")

	tr.Take(2)
	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, []int{1, 2}, tr.Persistent().Slice())

	tr.Take(-1)
	assert.Zero(t, tr.Len(), "negative take clamps to empty")
}

// TestTransient_TakeThenGrow tests that an owned node truncates in place
// and regrows without disturbing anything published.
func TestTransient_TakeThenGrow(t *testing.T) {
	tr := New[int]().Transient()
	for i := 0; i < 6; i++ {
		tr.Push(i)
	}
	tr.Take(2)
	tr.Push(99)

	assert.Equal(t, []int{0, 1, 99}, tr.Persistent().Slice())
}

// TestTransient_SessionRecycling tests the deterministic reclamation
// path: under a recycling policy, a buffer abandoned by the session that
// owns it returns to the session free list and is reused.
func TestTransient_SessionRecycling(t *testing.T) {
	pol := mem.NewRefCount()
	opts := Options{Policy: policy.New(pol, policy.DefaultGrowth)}

	tr := NewWith[int](opts).Transient()
	for i := 0; i < 9; i++ {
		tr.Push(i) // claims cap 8, then grows to 16 abandoning the 8-buffer
	}

	snap := pol.Stats().Snapshot()
	require.Positive(t, snap.PoolPuts, "growth should recycle the abandoned session buffer")

	// Publish, then force a fresh claim small enough for the pooled
	// 8-element buffer: the claim must be served from the free list.
	tr.Take(4)
	_ = tr.Persistent()
	tr.Set(0, 42)

	after := pol.Stats().Snapshot()
	assert.Positive(t, after.PoolHits, "claim should reuse the recycled buffer")
	assert.Equal(t, snap.Buffers, after.Buffers,
		"the recycled claim must not allocate")
}

// TestTransient_NoRecyclingUnderGC tests that the collector-managed
// policy never pools buffers.
func TestTransient_NoRecyclingUnderGC(t *testing.T) {
	pol := mem.NewGC()
	opts := Options{Policy: policy.New(pol, policy.DefaultGrowth)}

	tr := NewWith[int](opts).Transient()
	for i := 0; i < 64; i++ {
		tr.Push(i)
	}

	snap := pol.Stats().Snapshot()
	assert.Zero(t, snap.PoolPuts)
	assert.Zero(t, snap.PoolHits)
}

// TestTransient_PublishedBufferNeverRecycled tests reclamation soundness:
// a node that was published mid-session must not re-enter the free list,
// even though this session created it.
func TestTransient_PublishedBufferNeverRecycled(t *testing.T) {
	pol := mem.NewRefCount()
	opts := Options{Policy: policy.New(pol, policy.DefaultGrowth)}

	tr := NewWith[int](opts).Transient()
	for i := 0; i < 8; i++ {
		tr.Push(i)
	}
	snap := tr.Persistent() // publishing strips the session's claim

	before := pol.Stats().Snapshot().PoolPuts
	tr.Push(8) // copies; the old node now backs snap

	assert.Equal(t, before, pol.Stats().Snapshot().PoolPuts,
		"published buffer must not be pooled while a value references it")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, snap.Slice())
}

// TestTransient_InterleavedSnapshots tests a sequence of publish points,
// each of which must stay independently frozen.
func TestTransient_InterleavedSnapshots(t *testing.T) {
	tr := New[int]().Transient()

	var snaps []Vector[int]
	for i := 0; i < 5; i++ {
		tr.Push(i)
		snaps = append(snaps, tr.Persistent())
	}

	for i, s := range snaps {
		want := make([]int, 0, i+1)
		for j := 0; j <= i; j++ {
			want = append(want, j)
		}
		assert.Equal(t, want, s.Slice(), "snapshot %d must be frozen", i)
	}
}

// TestTransient_ChainedCalls tests the fluent return values.
func TestTransient_ChainedCalls(t *testing.T) {
	v := New[int]().Transient().
		Push(1).
		Push(2).
		Push(3).
		Set(0, 10).
		Update(2, func(x int) int { return x * 2 }).
		Take(2).
		Commit()

	assert.Equal(t, []int{10, 2}, v.Slice())
}

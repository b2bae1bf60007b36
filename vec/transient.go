package vec

import "github.com/joshuapare/persistkit/vec/trans"

// Transient is the mutable counterpart of Vector: a short-lived builder
// holding the one valid ownership token of its session. Each edit mutates
// the backing node in place when the token owns it, and copies-and-
// relabels it otherwise, so edits after the first copy run in amortized
// O(1) with no further allocation until capacity runs out.
//
// A Transient is single-writer: one goroutine at a time, no internal
// locking. It must not be copied; pass the pointer.
type Transient[T any] struct {
	s     store[T]
	owner *trans.Owner
	fl    freelist[T]
}

// Len returns the number of elements. O(1), never allocates.
func (t *Transient[T]) Len() int { return t.s.size }

// Empty reports whether the builder has no elements.
func (t *Transient[T]) Empty() bool { return t.s.size == 0 }

// At returns the element at position i. O(1), never consults ownership
// state. Panics if i is out of range.
func (t *Transient[T]) At(i int) T { return t.s.view()[i] }

// Front returns the first element. Panics when empty.
func (t *Transient[T]) Front() T { return t.s.view()[0] }

// Back returns the last element. Panics when empty.
func (t *Transient[T]) Back() T { return t.s.view()[t.s.size-1] }

// ForEachChunk yields contiguous runs of elements to fn until fn returns
// false. The chunk is only valid during the call and must not be
// retained or written to.
func (t *Transient[T]) ForEachChunk(fn func(chunk []T) bool) {
	if t.s.size > 0 {
		fn(t.s.view())
	}
}

// Push appends x. Amortized O(1): the node is reused in place once the
// session's token has claimed it.
func (t *Transient[T]) Push(x T) *Transient[T] {
	t.mustLive()
	t.s.pushMut(t.owner.Token(), x, &t.fl)
	return t
}

// Set overwrites position i with x. Panics if i is out of range.
func (t *Transient[T]) Set(i int, x T) *Transient[T] {
	t.mustLive()
	t.s.setMut(t.owner.Token(), i, x, &t.fl)
	return t
}

// Update replaces position i with fn(At(i)). Panics if i is out of
// range.
func (t *Transient[T]) Update(i int, fn func(T) T) *Transient[T] {
	t.mustLive()
	t.s.updateMut(t.owner.Token(), i, fn, &t.fl)
	return t
}

// Take truncates to the first min(n, Len) elements. Truncating to the
// current length or beyond is a no-op.
func (t *Transient[T]) Take(n int) *Transient[T] {
	t.mustLive()
	t.s.takeMut(t.owner.Token(), n, &t.fl)
	return t
}

// Persistent publishes the current contents as an immutable Vector and
// keeps the session alive. The published node is released from the
// session's claim, so the transient's next edit copies-and-relabels
// instead of touching the published value.
func (t *Transient[T]) Persistent() Vector[T] {
	t.mustLive()
	t.s.publish()
	return Vector[T]{s: t.s}
}

// Commit ends the session and hands the node over without a
// structural-sharing fork: the owner is released and its token retired,
// which freezes the node for good - no future session's token can match
// it, so any later mutation of the returned value's contents goes
// through a fresh copy. Using the transient after Commit panics with
// ErrRetired.
func (t *Transient[T]) Commit() Vector[T] {
	t.mustLive()
	v := Vector[T]{s: t.s}
	t.owner.Release()
	t.owner = nil
	t.s = store[T]{pol: t.s.pol}
	t.fl = freelist[T]{}
	return v
}

// mustLive panics when the session has ended.
func (t *Transient[T]) mustLive() {
	if t.owner == nil || !t.owner.Valid() {
		panic(ErrRetired)
	}
}

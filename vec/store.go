package vec

import (
	"github.com/joshuapare/persistkit/vec/policy"
	"github.com/joshuapare/persistkit/vec/trans"
)

// node is one backing-store cell: an element buffer plus the ownership
// marker the transience protocol consults. len(buf) is the capacity.
type node[T any] struct {
	ownee trans.Ownee
	buf   []T
}

// store is the capacity-aware array store behind both the persistent and
// the transient views. size counts the live prefix of the node's buffer.
//
// Every mutator comes in two forms: a value-receiver persistent form that
// builds a fresh unowned node, and a *Mut form that applies the
// in-place-or-copy decision of the ownership protocol per touched node.
type store[T any] struct {
	n    *node[T]
	size int
	pol  policy.Full
}

// view returns the live elements. Never consults ownee state, never
// allocates; indexing the result out of range panics like any slice.
func (s *store[T]) view() []T {
	if s.n == nil {
		return nil
	}
	return s.n.buf[:s.size]
}

// newNode allocates an unowned node of the given capacity, recording the
// allocation with the policy.
func newNode[T any](pol policy.Full, capacity int) *node[T] {
	pol.Mem().Stats().CountAlloc(capacity)
	return &node[T]{buf: make([]T, capacity)}
}

// dup returns a copy of the store holding the first min(size, capacity)
// elements in a fresh unowned node of exactly the given capacity.
// This is the persistent (structural-sharing fork) path.
func (s store[T]) dup(capacity int) store[T] {
	d := store[T]{n: newNode[T](s.pol, capacity), size: min(s.size, capacity), pol: s.pol}
	if s.n != nil {
		copy(d.n.buf, s.n.buf[:d.size])
	}
	return d
}

// push returns a new store with v appended. O(size): persistent values
// use exact capacities; the amortized path is the transient's.
func (s store[T]) push(v T) store[T] {
	d := s.dup(s.size + 1)
	d.n.buf[d.size] = v
	d.size++
	return d
}

// set returns a new store with position i overwritten.
func (s store[T]) set(i int, v T) store[T] {
	_ = s.view()[i] // bounds
	d := s.dup(s.size)
	d.n.buf[i] = v
	return d
}

// update returns a new store with position i replaced by fn(old).
func (s store[T]) update(i int, fn func(T) T) store[T] {
	old := s.view()[i]
	d := s.dup(s.size)
	d.n.buf[i] = fn(old)
	return d
}

// take returns a store holding the first min(k, size) elements. A no-op
// take shares the node unchanged.
func (s store[T]) take(k int) store[T] {
	if k >= s.size {
		return s
	}
	if k < 0 {
		k = 0
	}
	d := s
	d.size = k
	return d.dup(k)
}

// claim installs a node the token may mutate: a fresh buffer of the given
// capacity holding the current elements, relabeled with the token
// (copy-and-relabel). The abandoned node's buffer is recycled through the
// session free list when it still carries this session's token - proof it
// never escaped the session - and the policy opts in.
func (s *store[T]) claim(tok trans.Token, capacity int, fl *freelist[T]) {
	m := s.pol.Mem()

	buf := fl.get(capacity)
	if buf != nil {
		m.Stats().CountPoolHit()
	} else {
		m.Stats().CountAlloc(capacity)
		buf = make([]T, capacity)
	}

	old := s.n
	fresh := &node[T]{buf: buf}
	if old != nil {
		copy(fresh.buf, old.buf[:s.size])
	}
	fresh.ownee.Claim(tok)
	s.n = fresh

	if old != nil && m.Recycle() && old.ownee.CanMutate(tok) {
		fl.put(old.buf)
		m.Stats().CountPoolPut()
	}
}

// pushMut appends v, in place when the token owns the node and capacity
// suffices, otherwise via copy-and-relabel with grown capacity.
func (s *store[T]) pushMut(tok trans.Token, v T, fl *freelist[T]) {
	need := s.size + 1
	if s.n == nil || !s.n.ownee.CanMutate(tok) || need > len(s.n.buf) {
		prev := 0
		if s.n != nil {
			prev = len(s.n.buf)
		}
		capacity := prev
		if capacity < need {
			// Out of room: grow geometrically. An ownership-only claim
			// keeps the previous capacity.
			capacity = s.pol.Growth().Next(prev, need)
		}
		s.claim(tok, capacity, fl)
	}
	s.n.buf[s.size] = v
	s.size = need
}

// setMut overwrites position i, in place when the token owns the node.
func (s *store[T]) setMut(tok trans.Token, i int, v T, fl *freelist[T]) {
	_ = s.view()[i] // bounds
	if !s.n.ownee.CanMutate(tok) {
		// Copy at the live size (plus the policy minimum); spare
		// capacity of the foreign node is not worth carrying over.
		s.claim(tok, s.pol.Growth().Next(0, s.size), fl)
	}
	s.n.buf[i] = v
}

// updateMut replaces position i with fn(old) under the same protocol.
func (s *store[T]) updateMut(tok trans.Token, i int, fn func(T) T, fl *freelist[T]) {
	old := s.view()[i]
	s.setMut(tok, i, fn(old), fl)
}

// takeMut truncates to the first min(k, size) elements. Owned nodes
// truncate in place, with the tail cleared so abandoned elements drop
// their references; foreign nodes keep only the surviving prefix in the
// relabeled copy.
func (s *store[T]) takeMut(tok trans.Token, k int, fl *freelist[T]) {
	if k >= s.size {
		return
	}
	if k < 0 {
		k = 0
	}
	if s.n != nil && s.n.ownee.CanMutate(tok) {
		clear(s.n.buf[k:s.size])
		s.size = k
		return
	}
	s.size = k
	s.claim(tok, k, fl)
}

// publish resets the node's ownership marker. The owning session calls
// this when sharing the node with an immutable value so that its own next
// mutation takes the copy path.
func (s *store[T]) publish() {
	if s.n != nil {
		s.n.ownee.Publish()
	}
}

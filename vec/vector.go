package vec

import "github.com/joshuapare/persistkit/vec/trans"

// Vector is an immutable, structurally-shared vector. Copies share the
// backing node; no operation ever mutates it. The zero Vector is the
// empty vector with the default policy.
type Vector[T any] struct {
	s store[T]
}

// New creates an empty vector with the default policy. It does not
// allocate.
func New[T any]() Vector[T] {
	return NewWith[T](Options{})
}

// NewWith creates an empty vector with the given options. It does not
// allocate.
func NewWith[T any](opts Options) Vector[T] {
	return Vector[T]{s: store[T]{pol: opts.Policy.OrDefault()}}
}

// Of creates a vector holding the given items, in order.
func Of[T any](items ...T) Vector[T] {
	return FromSlice(items, Options{})
}

// FromSlice creates a vector holding a copy of items.
func FromSlice[T any](items []T, opts Options) Vector[T] {
	v := NewWith[T](opts)
	if len(items) == 0 {
		return v
	}
	n := newNode[T](v.s.pol, len(items))
	copy(n.buf, items)
	v.s.n = n
	v.s.size = len(items)
	return v
}

// norm returns the store with an initialized policy bundle; only the
// zero Vector needs the fallback.
func (v Vector[T]) norm() store[T] {
	s := v.s
	if s.pol.Mem() == nil {
		s.pol = s.pol.OrDefault()
	}
	return s
}

// Len returns the number of elements. O(1), never allocates.
func (v Vector[T]) Len() int { return v.s.size }

// Empty reports whether the vector has no elements.
func (v Vector[T]) Empty() bool { return v.s.size == 0 }

// At returns the element at position i. O(1), never allocates.
// Panics if i is out of range.
func (v Vector[T]) At(i int) T { return v.s.view()[i] }

// Front returns the first element. Panics on an empty vector.
func (v Vector[T]) Front() T { return v.s.view()[0] }

// Back returns the last element. Panics on an empty vector.
func (v Vector[T]) Back() T { return v.s.view()[v.s.size-1] }

// Slice returns a copy of the elements.
func (v Vector[T]) Slice() []T {
	out := make([]T, v.s.size)
	copy(out, v.s.view())
	return out
}

// ForEachChunk yields contiguous runs of elements to fn until fn returns
// false. The chunk is only valid during the call and must not be
// retained or written to. Carries no ownership semantics.
func (v Vector[T]) ForEachChunk(fn func(chunk []T) bool) {
	if v.s.size > 0 {
		fn(v.s.view())
	}
}

// Push returns a new vector with x appended. The receiver is unchanged.
// O(Len): persistent edits fork; use a Transient for bulk edits.
func (v Vector[T]) Push(x T) Vector[T] {
	return Vector[T]{s: v.norm().push(x)}
}

// Set returns a new vector with position i overwritten by x. The
// receiver is unchanged. Panics if i is out of range.
func (v Vector[T]) Set(i int, x T) Vector[T] {
	return Vector[T]{s: v.norm().set(i, x)}
}

// Update returns a new vector with position i replaced by fn(At(i)).
// The receiver is unchanged. Panics if i is out of range.
func (v Vector[T]) Update(i int, fn func(T) T) Vector[T] {
	return Vector[T]{s: v.norm().update(i, fn)}
}

// Take returns a vector holding the first min(n, Len) elements. A no-op
// take returns the receiver, sharing everything.
func (v Vector[T]) Take(n int) Vector[T] {
	if n >= v.s.size {
		return v
	}
	return Vector[T]{s: v.norm().take(n)}
}

// Transient begins a mutation session over this vector's contents: it
// mints a fresh ownership token and returns the builder holding it. The
// vector itself is never affected by the session.
func (v Vector[T]) Transient() *Transient[T] {
	s := v.norm()
	return &Transient[T]{
		s:     s,
		owner: trans.NewOwner(s.pol.Mem()),
	}
}

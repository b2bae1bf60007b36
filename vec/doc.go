// Package vec provides an immutable, structurally-shared vector and its
// transient counterpart: a short-lived builder that amortizes many
// consecutive edits down to near O(1) each while leaving every published
// immutable snapshot untouched.
//
// # Overview
//
// Vector is a value type: copies share the backing node freely, no
// operation ever mutates it, and reads are safe from any number of
// goroutines. Its editing methods (Push, Set, Update, Take) return a new
// Vector and leave the receiver unchanged.
//
// Transient is the mutable view. Obtaining one from a Vector mints a
// fresh ownership token (package trans); every edit then either mutates
// the backing node in place - when the node's ownership marker matches
// the session's token - or copies the node once and relabels the copy
// with the token. After that first copy, edits run in place until the
// node is published again.
//
// # Usage Example
//
//	p := vec.Of(1, 2, 3)
//
//	t := p.Transient()
//	for i := range 1000 {
//		t.Push(i) // amortized O(1), no per-edit copies
//	}
//	p2 := t.Commit()
//
//	// p is unchanged: still [1 2 3]. p2 holds the result.
//
// # Conversions
//
// Transient.Persistent publishes the current contents as a Vector and
// keeps the session alive; the next edit copies, so the published value
// stays frozen. Transient.Commit ends the session and hands the node
// over without a copy; using a committed transient panics with
// ErrRetired.
//
// # Preconditions
//
// Indexed operations require 0 <= i < Len(); violating this panics with
// the runtime's range error. There is no recoverable-error channel: this
// is a performance-critical internal protocol whose failure modes are
// programming errors.
//
// # Thread Safety
//
// Transients are single-writer: one goroutine at a time, no internal
// locking. Vectors are immutable and freely shareable.
//
// # Related Packages
//
//   - github.com/joshuapare/persistkit/vec/mem: memory policies
//   - github.com/joshuapare/persistkit/vec/trans: ownership token protocol
//   - github.com/joshuapare/persistkit/vec/policy: policy composition
//   - github.com/joshuapare/persistkit/algo: chunk-wise bulk algorithms
package vec

package mem

import "sync/atomic"

// RefCountPolicy mints identities from a monotonically-issued atomic
// counter and reclaims abandoned buffers deterministically.
//
// Counter identities are never reissued, so an ownee still carrying the
// token of a retired session can never match a live one. Retirement is
// immediate and requires no collector cooperation, which is what allows
// buffer recycling: a buffer whose only claimant was the retiring session
// goes back to the session free list instead of waiting for a GC cycle.
type RefCountPolicy struct {
	ctr   atomic.Uint64
	stats Stats
}

// NewRefCount creates a deterministic counter-based policy.
func NewRefCount() *RefCountPolicy {
	return &RefCountPolicy{}
}

// Name returns "refcount".
func (p *RefCountPolicy) Name() string { return "refcount" }

// MintIdentity issues the next counter value. Safe for concurrent use.
func (p *RefCountPolicy) MintIdentity() Identity {
	p.stats.CountMint()
	return Identity{n: p.ctr.Add(1)}
}

// RetireIdentity records the end of a session. The counter value is never
// reissued.
func (p *RefCountPolicy) RetireIdentity(id Identity) {
	if id.IsNone() {
		return
	}
	p.stats.CountRetire()
}

// Recycle returns true; abandoned session-private buffers are pooled.
func (p *RefCountPolicy) Recycle() bool { return true }

// Stats returns the policy's allocation counters.
func (p *RefCountPolicy) Stats() *Stats { return &p.stats }

// Compile-time interface check
var _ Policy = (*RefCountPolicy)(nil)

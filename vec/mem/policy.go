package mem

// Identity is an opaque session identity. It is compared for equality only
// and never dereferenced for data. The zero Identity means "no one" and is
// never minted.
//
// Two identities are equal iff they denote the same mutation session. A
// policy must never mint an identity equal to that of another concurrently
// live session.
type Identity struct {
	n uint64
	p *byte
}

// IsNone reports whether id is the zero "no one" identity.
func (id Identity) IsNone() bool {
	return id.n == 0 && id.p == nil
}

// Policy supplies session identities and a reclamation discipline for the
// containers assembled on top of it.
//
// Implementations:
//   - GCPolicy: heap-cell identities, collector-managed reclamation
//   - RefCountPolicy: counter identities, deterministic buffer recycling
//   - ArenaPolicy: mapped-page identity slots, wholesale retirement
type Policy interface {
	// Name identifies the policy (for stats output and benchmarks).
	Name() string

	// MintIdentity allocates a fresh identity for a mutation session.
	// The result is unique among all concurrently live sessions.
	MintIdentity() Identity

	// RetireIdentity returns an identity at the end of its session.
	// Retiring the zero identity is a no-op.
	RetireIdentity(id Identity)

	// Recycle reports whether buffers abandoned by the session that
	// exclusively owns them may be returned to a free list for reuse.
	Recycle() bool

	// Stats returns the policy's allocation counters. Containers record
	// buffer allocations and pool traffic through it.
	Stats() *Stats
}

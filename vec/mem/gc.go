package mem

// GCPolicy mints identities as one-byte heap cells and leaves all
// reclamation to the Go collector.
//
// Pointer equality is the identity: the runtime never reuses the address
// of a cell that an owner or ownee still stores, so uniqueness among live
// sessions holds for free. The cell carries no outgoing references, so it
// costs the collector nothing to scan.
//
// Recycling is disabled: buffers abandoned by a session are simply dropped
// and collected with everything else.
type GCPolicy struct {
	stats Stats
}

// NewGC creates a collector-managed policy.
func NewGC() *GCPolicy {
	return &GCPolicy{}
}

// Name returns "gc".
func (p *GCPolicy) Name() string { return "gc" }

// MintIdentity allocates a fresh heap cell and returns its address as the
// session identity.
func (p *GCPolicy) MintIdentity() Identity {
	p.stats.CountMint()
	// A one-byte cell: zero-size allocations all share one address and
	// would not be unique.
	return Identity{p: new(byte)}
}

// RetireIdentity drops the identity; the collector reclaims the cell once
// no ownee stores it.
func (p *GCPolicy) RetireIdentity(id Identity) {
	if id.IsNone() {
		return
	}
	p.stats.CountRetire()
}

// Recycle returns false; reclamation is the collector's job.
func (p *GCPolicy) Recycle() bool { return false }

// Stats returns the policy's allocation counters.
func (p *GCPolicy) Stats() *Stats { return &p.stats }

// Compile-time interface check
var _ Policy = (*GCPolicy)(nil)

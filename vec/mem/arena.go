package mem

import "sync"

// arenaPageSize is the size of the identity page. One byte per slot, so a
// single page serves 4096 sessions before the arena must be closed and
// reopened.
const arenaPageSize = 4096

// ArenaPolicy bump-allocates identity slots from one anonymous mapped
// page. Each MintIdentity takes the address of the next unused byte of
// the page; slots are never reused before Close, and Close releases the
// whole page at once.
//
// This trades the collector cooperation of GCPolicy for deterministic,
// wholesale retirement: no identity outlives the arena, and unmapping the
// page is the only reclamation step.
//
// IMPORTANT: the arena must outlive every ownee that stores one of its
// identities. An ownee holding a slot address into an unmapped page would
// compare equal to a slot handed out by a later arena mapped at the same
// address. Close the arena only after all sessions and the nodes they
// touched are gone.
type ArenaPolicy struct {
	mu     sync.Mutex
	page   []byte
	next   int
	closed bool
	stats  Stats
}

// NewArena maps an anonymous page and returns a policy minting identity
// slots from it. Returns ErrMapFailed (wrapped) if the page cannot be
// mapped.
func NewArena() (*ArenaPolicy, error) {
	page, err := mapArenaPage(arenaPageSize)
	if err != nil {
		return nil, err
	}
	return &ArenaPolicy{page: page}, nil
}

// Name returns "arena".
func (p *ArenaPolicy) Name() string { return "arena" }

// MintIdentity takes the next unused slot of the page. Panics with
// ErrArenaClosed after Close, and with ErrArenaFull once all slots are
// taken; both indicate misuse of a fatal kind, not recoverable states.
func (p *ArenaPolicy) MintIdentity() Identity {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		panic(ErrArenaClosed)
	}
	if p.next >= len(p.page) {
		panic(ErrArenaFull)
	}

	id := Identity{p: &p.page[p.next]}
	p.next++
	p.stats.CountMint()
	return id
}

// RetireIdentity records the end of a session. The slot stays allocated
// until Close; per-slot reuse would break the uniqueness guarantee for
// ownees that still store the identity.
func (p *ArenaPolicy) RetireIdentity(id Identity) {
	if id.IsNone() {
		return
	}
	p.stats.CountRetire()
}

// Recycle returns true; retirement is deterministic, so abandoned
// session-private buffers are pooled.
func (p *ArenaPolicy) Recycle() bool { return true }

// Stats returns the policy's allocation counters.
func (p *ArenaPolicy) Stats() *Stats { return &p.stats }

// Remaining returns the number of identity slots left before the arena
// is exhausted.
func (p *ArenaPolicy) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0
	}
	return len(p.page) - p.next
}

// Close unmaps the identity page. Idempotent. See the type documentation
// for when it is safe to call.
func (p *ArenaPolicy) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	page := p.page
	p.page = nil
	return unmapArenaPage(page)
}

// Compile-time interface check
var _ Policy = (*ArenaPolicy)(nil)

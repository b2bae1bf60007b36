package mem

import "sync/atomic"

// Stats tracks allocation activity for a policy. All counters are atomic
// and safe for concurrent use.
//
// Containers call CountAlloc for every node buffer they allocate, which is
// what makes the amortized-O(1) claim behavior of transients observable in
// tests and benchmarks.
type Stats struct {
	minted   atomic.Uint64
	retired  atomic.Uint64
	buffers  atomic.Uint64
	elems    atomic.Uint64
	poolHits atomic.Uint64
	poolPuts atomic.Uint64
}

// CountMint records one minted identity.
func (s *Stats) CountMint() { s.minted.Add(1) }

// CountRetire records one retired identity.
func (s *Stats) CountRetire() { s.retired.Add(1) }

// CountAlloc records one buffer allocation of elems elements.
func (s *Stats) CountAlloc(elems int) {
	s.buffers.Add(1)
	s.elems.Add(uint64(elems))
}

// CountPoolHit records one buffer served from a free list.
func (s *Stats) CountPoolHit() { s.poolHits.Add(1) }

// CountPoolPut records one buffer returned to a free list.
func (s *Stats) CountPoolPut() { s.poolPuts.Add(1) }

// Buffers returns the number of buffer allocations recorded so far.
func (s *Stats) Buffers() uint64 { return s.buffers.Load() }

// Snapshot returns a point-in-time copy of the counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		IdentitiesMinted:  s.minted.Load(),
		IdentitiesRetired: s.retired.Load(),
		Buffers:           s.buffers.Load(),
		Elements:          s.elems.Load(),
		PoolHits:          s.poolHits.Load(),
		PoolPuts:          s.poolPuts.Load(),
	}
}

// Snapshot is a point-in-time copy of a policy's counters.
type Snapshot struct {
	IdentitiesMinted  uint64 `json:"identities_minted"`
	IdentitiesRetired uint64 `json:"identities_retired"`
	Buffers           uint64 `json:"buffers"`
	Elements          uint64 `json:"elements"`
	PoolHits          uint64 `json:"pool_hits"`
	PoolPuts          uint64 `json:"pool_puts"`
}

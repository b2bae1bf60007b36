// Package mem provides the pluggable memory policies that back persistkit
// containers.
//
// # Overview
//
// A memory policy decides two things for every container assembled on top
// of it:
//
//   - How mutation-session identities are minted and retired. An identity
//     is an opaque, comparable value used by the transience protocol
//     (package trans) to prove that a transient builder is the unique live
//     mutator of a node. Identities are never dereferenced for data.
//   - How abandoned node buffers are reclaimed: returned to a
//     session-scoped free list for deterministic reuse, or left to the Go
//     collector.
//
// # Policy Interface
//
// The core abstraction is the Policy interface:
//
//   - MintIdentity(): allocate a fresh, unique session identity
//   - RetireIdentity(id): return an identity at the end of a session
//   - Recycle(): whether abandoned session-private buffers may be pooled
//   - Stats(): allocation counters for instrumentation
//
// # Implementations
//
// GCPolicy: collector-managed identities
//
//   - Identities are one-byte heap cells; pointer equality is identity
//   - The Go collector reclaims cells once no owner or ownee stores them
//   - Recycling is disabled; buffer reclamation is the collector's job
//
// RefCountPolicy: deterministic counter identities
//
//   - Identities come from a monotonically-issued atomic counter and are
//     never reissued, so retired sessions can never match a live node
//   - Recycling is enabled; buffers abandoned by the session that owns
//     them return to the session free list
//
// ArenaPolicy: identities bump-allocated from one mapped page
//
//   - One anonymous mmap'ed page supplies identity slots; slots are never
//     reused before Close, and Close unmaps the page wholesale
//   - The arena must outlive every ownee that stores one of its
//     identities; this is an environmental precondition the policy
//     documents but cannot enforce
//
// # Failure Modes
//
// Allocation failure is fatal by contract. NewArena returns an error if
// the page cannot be mapped; MintIdentity panics with ErrArenaFull once
// the page is exhausted. There is no retry path.
//
// # Thread Safety
//
// Identity minting and the Stats counters are safe for concurrent use.
// Everything else follows the single-writer rules of the containers built
// on top.
package mem

// Package trans implements the ownership token protocol that lets a
// transient builder mutate shared nodes in place without ever changing a
// published immutable value.
//
// # Overview
//
// Three roles cooperate, one per mutation session:
//
//   - Token: an opaque, comparable identity for the session. Tokens are
//     compared for equality only; the zero Token is the sentinel NoOne.
//   - Owner: mints and holds the currently valid token. Exactly one
//     Owner exists per active transient.
//   - Ownee: a per-node marker recording which token, if any, currently
//     has the right to mutate that node in place.
//
// A mutator consults Ownee.CanMutate(token) for every node it touches:
// true means the node was created or claimed during this session and may
// be edited in place; false means the node must be copied and the fresh
// copy claimed with the session's token (copy-and-relabel).
//
// # Protocol
//
// The per-node state machine is:
//
//	Unowned ──Claim(t)──▶ OwnedBy(t) ──Claim(t)──▶ OwnedBy(t)   (idempotent)
//	OwnedBy(t) ──Claim(t')──▶ panic                              (t' ≠ t)
//	OwnedBy(t) ──Publish()──▶ Unowned
//
// Claiming a node that a different token owns means two sessions are
// racing on one node; that is a programming error and panics with
// ErrForeignClaim rather than silently overwriting the claim.
//
// Publish is the sanctioned release transition: when a transient hands
// its nodes to an immutable value while staying alive, it publishes them,
// which forces its own next mutation down the copy-and-relabel path.
//
// # Owner Lifecycle
//
// Owners are move-only in spirit. There is no implicit copy that could
// create two claimants for one session:
//
//   - Handoff transfers the token to a new Owner; the source behaves as
//     freshly constructed afterwards and can mutate nothing.
//   - Clone mints a fresh token: an independent session holding no claim
//     on any node the original session touched.
//   - Release ends the session and retires the identity with the memory
//     policy. Idempotent.
//
// Nodes left carrying the token of a released session are effectively
// frozen: identities are never reissued to live sessions, so no future
// token can match them, and any new session copies them on first touch.
//
// # Thread Safety
//
// The protocol is single-writer. An Owner and the Ownees it claims must
// only be used by one goroutine at a time; immutable values never consult
// Ownee state and are safe to read concurrently.
package trans

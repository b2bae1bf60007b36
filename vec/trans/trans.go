package trans

import "github.com/joshuapare/persistkit/vec/mem"

// Token is the opaque identity of one mutation session. Tokens are
// compared for equality only. The zero Token is the sentinel NoOne and
// never grants mutation rights.
type Token struct {
	id mem.Identity
}

// NoOne is the sentinel token representing "not part of any session".
var NoOne = Token{}

// IsNoOne reports whether t is the sentinel token.
func (t Token) IsNoOne() bool { return t.id.IsNone() }

// Equal reports whether two tokens denote the same session.
func (t Token) Equal(u Token) bool { return t == u }

// Owner mints and holds the currently valid token for one transient
// session. Owners are not safe for concurrent use.
type Owner struct {
	tok Token
	pol mem.Policy
}

// NewOwner begins a session: it mints a fresh token from the policy and
// returns the owner holding it.
func NewOwner(pol mem.Policy) *Owner {
	return &Owner{
		tok: Token{id: pol.MintIdentity()},
		pol: pol,
	}
}

// Token returns the owner's current token, or NoOne if the owner has
// been handed off or released. Safe on a nil owner.
func (o *Owner) Token() Token {
	if o == nil {
		return NoOne
	}
	return o.tok
}

// Valid reports whether the owner still holds a token.
func (o *Owner) Valid() bool {
	return o != nil && !o.tok.IsNoOne()
}

// Handoff transfers the token to a new owner. The source behaves as
// freshly constructed afterwards: it holds NoOne and can mutate nothing.
func (o *Owner) Handoff() *Owner {
	dst := &Owner{tok: o.tok, pol: o.pol}
	o.tok = NoOne
	return dst
}

// Clone begins an independent session with a fresh token. The clone holds
// no claim on any node the original session touched; it is the explicit
// form of "copying an owner never copies exclusivity".
func (o *Owner) Clone() *Owner {
	return NewOwner(o.pol)
}

// Release ends the session and retires the identity with the policy.
// Idempotent; a released owner holds NoOne.
func (o *Owner) Release() {
	if o == nil || o.tok.IsNoOne() {
		return
	}
	o.pol.RetireIdentity(o.tok.id)
	o.tok = NoOne
}

// Ownee is the per-node marker recording which token, if any, may mutate
// the node in place. The zero Ownee is unowned.
type Ownee struct {
	tok Token
}

// CanMutate reports whether t currently has the right to mutate the node
// in place. Always false for NoOne.
func (o *Ownee) CanMutate(t Token) bool {
	return !t.IsNoOne() && o.tok == t
}

// Owned reports whether any token currently owns the node.
func (o *Ownee) Owned() bool { return !o.tok.IsNoOne() }

// Claim marks the node as owned by t. Re-claiming with the same token is
// a no-op. Claiming a node owned by a different token panics with
// ErrForeignClaim; claiming with NoOne panics with ErrClaimNoOne. Both
// are protocol violations, not recoverable states.
func (o *Ownee) Claim(t Token) {
	if t.IsNoOne() {
		panic(ErrClaimNoOne)
	}
	if o.tok != NoOne && o.tok != t {
		panic(ErrForeignClaim)
	}
	o.tok = t
}

// Publish resets the node to unowned. The owning session calls this when
// it shares the node with an immutable value, so that its own next
// mutation copies instead of editing the published node in place.
func (o *Ownee) Publish() { o.tok = NoOne }

package trans

import "errors"

var (
	// ErrForeignClaim indicates an attempt to claim a node that a
	// different live token owns - two sessions racing on one node.
	ErrForeignClaim = errors.New("trans: node owned by a different token")

	// ErrClaimNoOne indicates an attempt to claim a node with the
	// sentinel "no one" token.
	ErrClaimNoOne = errors.New("trans: cannot claim with the no-one token")
)

// Package policy assembles the orthogonal policies a container is built
// from into one compact bundle.
//
// # Overview
//
// A container needs a memory policy (identity minting and reclamation,
// package mem) and a growth policy (how buffer capacity evolves under
// transient edits). These are independent concerns; this package combines
// them into a single value with a fixed, reproducible layout.
//
// # Composition
//
// Pair and Triple are the generic aggregates. Members are laid out in
// reverse of the type-parameter order, so two instantiations with the
// same member set always agree on layout, and each member is retrieved
// through a typed accessor (First, Second, Third).
//
// Go elides the storage of zero-size members except in trailing position,
// so compose with non-empty members first: the first-composed member sits
// last in memory, and empty members land in interior positions where they
// cost nothing. Unit is the canonical empty member for reserving a slot.
//
// # Bundles
//
// Full is the concrete bundle containers consume. Default() returns the
// collector-backed bundle with balanced growth.
package policy

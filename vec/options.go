package vec

import "github.com/joshuapare/persistkit/vec/policy"

// Options configures container construction.
type Options struct {
	// Policy selects the memory/growth policy bundle backing the
	// container and every value derived from it.
	// Default: policy.Default() (collector-backed, balanced growth).
	Policy policy.Full
}

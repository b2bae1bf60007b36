package vec

import "errors"

var (
	// ErrRetired indicates a mutation or conversion through a transient
	// whose session already ended via Commit.
	ErrRetired = errors.New("vec: transient already committed")
)

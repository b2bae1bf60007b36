package mem

import "errors"

var (
	// ErrArenaClosed indicates an identity was requested from a closed arena.
	ErrArenaClosed = errors.New("mem: arena is closed")

	// ErrArenaFull indicates the arena page has no identity slots left.
	ErrArenaFull = errors.New("mem: arena page exhausted")

	// ErrMapFailed indicates the anonymous page backing an arena could not
	// be mapped.
	ErrMapFailed = errors.New("mem: mapping arena page failed")
)

//go:build unix

package mem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// mapArenaPage maps an anonymous, private page of the given size.
func mapArenaPage(size int) ([]byte, error) {
	page, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMapFailed, err)
	}
	return page, nil
}

// unmapArenaPage releases a page returned by mapArenaPage.
func unmapArenaPage(page []byte) error {
	if page == nil {
		return nil
	}
	err := unix.Munmap(page)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}

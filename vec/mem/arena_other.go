//go:build !unix

package mem

// mapArenaPage falls back to an ordinary heap buffer on platforms without
// anonymous mmap. Slot addresses are still unique for the life of the
// arena, which is all the identity contract needs.
func mapArenaPage(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// unmapArenaPage is a no-op in the fallback; the buffer is collected once
// the arena drops it.
func unmapArenaPage(page []byte) error {
	return nil
}

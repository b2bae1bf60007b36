// Package algo provides chunk-wise bulk algorithms over persistkit
// containers.
//
// Everything here is written against the Chunked interface - a traversal
// entry point yielding contiguous runs of elements - so the same
// functions work on Vector, Transient, and anything else exposing its
// storage chunk by chunk. The interface is purely a performance surface:
// it carries no ownership semantics, and no function here allocates
// beyond what the caller hands in.
package algo

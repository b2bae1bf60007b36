package algo

// Chunked is the traversal contract containers offer to bulk algorithms:
// yield contiguous runs of elements to fn, in order, until fn returns
// false. Chunks are only valid during the call and must not be retained
// or written to.
type Chunked[T any] interface {
	ForEachChunk(fn func(chunk []T) bool)
}

// ForEach applies fn to every element of r, in order.
func ForEach[T any](r Chunked[T], fn func(T)) {
	r.ForEachChunk(func(chunk []T) bool {
		for _, v := range chunk {
			fn(v)
		}
		return true
	})
}

// Accumulate folds r into init with fn, left to right.
func Accumulate[T, A any](r Chunked[T], init A, fn func(A, T) A) A {
	acc := init
	r.ForEachChunk(func(chunk []T) bool {
		for _, v := range chunk {
			acc = fn(acc, v)
		}
		return true
	})
	return acc
}

// Copy copies elements of r into dst, in order, stopping when either is
// exhausted. Returns the number of elements copied.
func Copy[T any](dst []T, r Chunked[T]) int {
	n := 0
	r.ForEachChunk(func(chunk []T) bool {
		n += copy(dst[n:], chunk)
		return n < len(dst)
	})
	return n
}

// All reports whether pred holds for every element of r. True for the
// empty range. Stops at the first failure.
func All[T any](r Chunked[T], pred func(T) bool) bool {
	ok := true
	r.ForEachChunk(func(chunk []T) bool {
		for _, v := range chunk {
			if !pred(v) {
				ok = false
				return false
			}
		}
		return true
	})
	return ok
}

// Any reports whether pred holds for at least one element of r. Stops at
// the first hit.
func Any[T any](r Chunked[T], pred func(T) bool) bool {
	found := false
	r.ForEachChunk(func(chunk []T) bool {
		for _, v := range chunk {
			if pred(v) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// EqualSlice reports whether r holds exactly the elements of want, in
// order.
func EqualSlice[T comparable](r Chunked[T], want []T) bool {
	i := 0
	equal := true
	r.ForEachChunk(func(chunk []T) bool {
		for _, v := range chunk {
			if i >= len(want) || v != want[i] {
				equal = false
				return false
			}
			i++
		}
		return true
	})
	return equal && i == len(want)
}

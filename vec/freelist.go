package vec

import "github.com/joshuapare/persistkit/internal/sizeclass"

// classTable indexes recycled buffers by capacity class.
var classTable = sizeclass.New(sizeclass.DefaultConfig)

// freelist recycles node buffers abandoned within one transient session.
// It is owned by the transient and follows the same single-writer rules;
// buffers enter it only when the memory policy opts into deterministic
// recycling.
type freelist[T any] struct {
	classes [][][]T // one stack of buffers per class, plus the large class
}

// get returns a recycled buffer with len >= n, or nil when none fits.
// Only the request's own class can hold buffers smaller than n; those
// stay parked for smaller requests. Higher classes always fit.
func (f *freelist[T]) get(n int) []T {
	if f.classes == nil {
		return nil
	}
	for c := classTable.ClassFor(n); c < len(f.classes); c++ {
		stack := f.classes[c]
		for i := len(stack) - 1; i >= 0; i-- {
			buf := stack[i]
			if len(buf) < n {
				continue
			}
			f.classes[c] = append(stack[:i], stack[i+1:]...)
			return buf
		}
	}
	return nil
}

// put recycles a buffer. Contents are cleared first so the buffer holds
// no references while parked.
func (f *freelist[T]) put(buf []T) {
	if len(buf) == 0 {
		return
	}
	clear(buf)
	if f.classes == nil {
		f.classes = make([][][]T, classTable.NumClasses()+1)
	}
	c := classTable.ClassFor(len(buf))
	f.classes[c] = append(f.classes[c], buf)
}

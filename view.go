package vec

import (
	"iter"
	"unsafe"
)

// Slice returns the live elements as a mutable contiguous window in
// append order. The window's length and capacity both equal Len(), so
// reserved slots stay out of reach. Taking the window never allocates.
// It is valid only until the next Push, Move or Close; growth may
// relocate the backing allocation.
func (v *Vec[T]) Slice() []T {
	if v.len == 0 {
		return nil
	}
	return unsafe.Slice(v.slot(0), v.len)
}

// All returns a read-only iterator over index/element pairs of the live
// elements, in append order. The Vec must not be mutated during
// iteration.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, *v.slot(i)) {
				return
			}
		}
	}
}

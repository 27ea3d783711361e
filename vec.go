// Package vec implements a growable contiguous array (vector) backed by
// a single heap allocation that doubles on demand.
package vec

import (
	"math"
	"unsafe"
)

// Vec is a growable contiguous array of T. It owns one heap allocation
// sized for Cap() elements, of which the first Len() are live; the rest
// is reserved, uninitialized space. Not goroutine-safe.
type Vec[T any] struct {
	buf   []byte // backing allocation; nil while cap == 0
	cap   int    // element slots allocated
	len   int    // live elements, always <= cap
	alloc Allocator
}

// New creates an empty Vec with no backing allocation.
// Zero-size element types are rejected with a panic.
func New[T any]() *Vec[T] {
	return newIn[T](defaultAllocator)
}

// newIn creates an empty Vec that grows through the given allocator.
func newIn[T any](a Allocator) *Vec[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("vec: zero-size element types are unsupported")
	}
	return &Vec[T]{alloc: a}
}

// Push appends elem as the new last element, growing the backing
// allocation first if all slots are occupied.
func (v *Vec[T]) Push(elem T) {
	if v.len == v.cap {
		v.grow()
	}
	*v.slot(v.len) = elem
	v.len++
}

// Pop removes and returns the last element. The second return value is
// false when the Vec is empty. Capacity is never released by Pop; the
// vacated slot becomes reserved space again.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	p := v.slot(v.len)
	elem := *p
	*p = zero // slot is unconstructed memory from here on
	return elem, true
}

// Move transfers the backing allocation, capacity and length to a freshly
// returned Vec as a group. The receiver is left empty with no allocation,
// so it can neither observe nor release the transferred block.
func (v *Vec[T]) Move() *Vec[T] {
	moved := &Vec[T]{buf: v.buf, cap: v.cap, len: v.len, alloc: v.alloc}
	v.buf = nil
	v.cap = 0
	v.len = 0
	return moved
}

// Close drops every live element from the last index down to the first,
// then releases the backing allocation. Closing an empty Vec is a no-op.
// A closed Vec is indistinguishable from a freshly constructed one and
// may be reused.
func (v *Vec[T]) Close() {
	if v.cap == 0 {
		return
	}
	for {
		if _, ok := v.Pop(); !ok {
			break
		}
	}
	v.alloc.Free(v.buf)
	v.buf = nil
	v.cap = 0
}

// grow reserves space for at least one more element: one slot from empty,
// otherwise double the current capacity. Only allocates, so v.len is not
// changed by this function.
func (v *Vec[T]) grow() {
	var zero T
	newCap, size, ok := nextAllocSize(v.cap, int(unsafe.Sizeof(zero)))
	if !ok {
		panic("vec: allocation exceeds maximum object size")
	}
	if v.cap == 0 {
		v.buf = v.alloc.Allocate(size)
	} else {
		v.buf = v.alloc.Reallocate(size, v.buf)
	}
	if v.buf == nil {
		panic("vec: allocator failed")
	}
	v.cap = newCap
}

// slot returns a pointer to element slot i. The caller guarantees
// i < v.cap.
func (v *Vec[T]) slot(i int) *T {
	var zero T
	return (*T)(unsafe.Pointer(&v.buf[uintptr(i)*unsafe.Sizeof(zero)]))
}

// nextAllocSize returns the capacity after one growth step from cap and
// its size in bytes. ok is false when the byte size would exceed the
// maximum object size addressable by the platform int.
func nextAllocSize(cap, elemSize int) (newCap, size int, ok bool) {
	maxCap := math.MaxInt / elemSize
	newCap = 1
	if cap > 0 {
		if cap > maxCap/2 {
			return 0, 0, false
		}
		newCap = 2 * cap
	}
	return newCap, newCap * elemSize, true
}

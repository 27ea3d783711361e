package vec

import "unsafe"

// Allocator is the raw-memory boundary the container grows through. All
// sizes are byte counts computed from capacity times element size;
// callers of Vec never see these calls.
type Allocator interface {
	// Allocate returns a new block of exactly size bytes.
	Allocate(size int) []byte

	// Reallocate resizes a block previously obtained from this
	// allocator to size bytes, preserving the first min(len(b), size)
	// bytes. The block may move.
	Reallocate(size int, b []byte) []byte

	// Free releases a block previously obtained from this allocator.
	Free(b []byte)
}

// align is the alignment unit for allocated blocks (pointer size).
const align = int(unsafe.Sizeof(uintptr(0)))

// GoAllocator satisfies Allocator with Go's managed heap. Free is a
// no-op; the garbage collector reclaims blocks once unreachable.
type GoAllocator struct{}

// NewGoAllocator returns an allocator backed by the Go runtime heap.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

// Allocate returns a block of size bytes aligned to pointer size.
// Allocation failure is fatal and surfaced by the runtime itself.
func (a *GoAllocator) Allocate(size int) []byte {
	buf := make([]byte, size+align) // padding for pointer-size alignment
	addr := int(addressOf(buf))
	next := roundUpToMultiple(addr, align)
	if addr != next {
		shift := next - addr
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

// Reallocate grows or shrinks b to size bytes, copying the preserved
// prefix into a fresh block when the size actually changes.
func (a *GoAllocator) Reallocate(size int, b []byte) []byte {
	if size == len(b) {
		return b
	}
	newBuf := a.Allocate(size)
	copy(newBuf, b)
	return newBuf
}

// Free is a no-op: dropping the last reference to the block is enough
// for the garbage collector.
func (a *GoAllocator) Free(b []byte) {}

var defaultAllocator Allocator = NewGoAllocator()

func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func roundUpToMultiple(v, m int) int {
	return (v + m - 1) &^ (m - 1)
}

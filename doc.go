// Package vec implements a growable contiguous array (vector) for Go.
//
// # Overview
//
// A Vec stores its elements in one contiguous heap allocation and grows
// that allocation on demand, giving amortized O(1) append and O(1)
// remove-from-end. It is a building block for code that wants explicit
// control over a sequence's backing memory:
//
//   - Append-heavy workloads with predictable doubling growth
//   - Stack-like push/pop usage without per-element allocations
//   - Handing out contiguous windows over the live elements
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Close() // Release the backing allocation
//
//	// Append elements
//	v.Push(1)
//	v.Push(2)
//
//	// Remove from the end
//	elem, ok := v.Pop()
//
//	// View the live elements
//	window := v.Slice()
//	for i, e := range v.All() { ... }
//
// # Memory Layout
//
// A Vec tracks two counters: capacity (element slots backed by the
// allocation) and length (slots holding a live element). The region
// between length and capacity is reserved, uninitialized space. An empty
// Vec holds no allocation at all; the first Push allocates one slot and
// each following growth doubles the capacity. Capacity never shrinks.
//
// # Growth and Failure
//
// Growth happens only when a Push finds every slot occupied. Before
// requesting memory the Vec verifies the new capacity's byte size fits
// the platform int; exceeding it panics, as does an allocator that
// cannot satisfy the request. Both conditions are non-recoverable:
// continuing past either would risk pointer-arithmetic overflow or
// memory unsafety.
//
// # Views
//
// Slice returns a mutable []T over exactly the live elements; All
// returns a read-only iterator. Neither allocates. A view is valid only
// until the next Push, Move or Close, since growth may relocate the
// backing allocation.
//
// # Thread Safety
//
// Vec is not goroutine-safe. Concurrent reads are fine as long as no
// mutation is interleaved; all mutating operations require exclusive
// access.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized (doubling growth)
//   - Pop: O(1)
//   - Slice / All: O(1) to construct, no allocation
//   - Peak memory: up to 2x the live data during growth
//
// # Important Notes
//
//   - Zero-size element types are rejected at construction
//   - Move transfers the allocation whole and leaves the source empty;
//     a moved-from or closed Vec may be reused as a fresh empty one
//   - Element types containing Go pointers are not scanned by the
//     garbage collector while stored; keep such referents reachable
//     elsewhere
//
// # Introspection
//
// The Vec reports its memory usage:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Live bytes: %d\n", m.SizeInUse)
//	fmt.Printf("Allocated bytes: %d\n", m.CapacityBytes)
package vec

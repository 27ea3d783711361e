package vec

import "unsafe"

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.len
}

// Cap returns the number of element slots currently allocated.
// Capacity only ever grows; Pop never shrinks it.
func (v *Vec[T]) Cap() int {
	return v.cap
}

// ElemSize returns the size in bytes of one element slot.
func (v *Vec[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vec[T]) SizeInUse() int {
	return v.len * v.ElemSize()
}

// CapacityBytes returns the size in bytes of the backing allocation.
func (v *Vec[T]) CapacityBytes() int {
	return v.cap * v.ElemSize()
}

// Utilization returns the ratio of live bytes to allocated bytes (0.0 to 1.0).
// Returns 0.0 if the Vec has no allocation.
func (v *Vec[T]) Utilization() float64 {
	capacity := v.CapacityBytes()
	if capacity == 0 {
		return 0
	}
	return float64(v.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of container statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Utilization:   v.Utilization(),
	}
}

// VecMetrics contains statistical information about a Vec.
type VecMetrics struct {
	Len           int     // Live elements
	Cap           int     // Allocated element slots
	ElemSize      int     // Bytes per element slot
	SizeInUse     int     // Bytes occupied by live elements
	CapacityBytes int     // Bytes in the backing allocation
	Utilization   float64 // Ratio of live to allocated bytes (0.0-1.0)
}

// Package pool provides pooled scratch slices for codec paths that need a
// contiguous view of fragmented payload bytes.
package pool

import "sync"

// ScratchMaxThreshold is the largest scratch slice retained by the pool.
// Slices that grew beyond it are dropped on cleanup so a single oversized
// payload does not pin memory for the lifetime of the process.
const ScratchMaxThreshold = 1024 * 1024 * 8 // 8MiB

var byteSlicePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetByteSlice retrieves and resizes a byte slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []byte: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	scratch, cleanup := pool.GetByteSlice(4096)
//	defer cleanup()
//	// Use scratch slice...
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() {
		if cap(*ptr) > ScratchMaxThreshold {
			return
		}
		byteSlicePool.Put(ptr)
	}
}

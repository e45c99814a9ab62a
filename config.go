// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"fmt"
	"io"
	"os"
	"unsafe"
)

// ReserveProxy carries a requested capacity.  It exists so that "empty
// with room for n" can be told apart from "n zero values" at construction.
type ReserveProxy struct {
	capacity uint
}

// Reserve returns a capacity hint suitable for NewReserved
func Reserve(capacity uint) ReserveProxy {
	return ReserveProxy{capacity: capacity}
}

// Capacity is the requested capacity
func (r ReserveProxy) Capacity() uint {
	return r.capacity
}

// Config controls how a Vector acquires storage
type Config[T any] struct {
	// Allocate is called every time the vector needs a new buffer.
	// Copies and growth reuse the allocator of the source vector.
	Allocate AllocateFn[T]
}

// withDefaults fills unset fields the same way for every constructor
func (c Config[T]) withDefaults() Config[T] {
	if c.Allocate == nil {
		c.Allocate = DefaultAllocate[T]
	}
	return c
}

// BytesRequired reports the storage footprint of a buffer with the given
// number of slots.  Memory referenced by the elements is not included.
func (c *Config[T]) BytesRequired(capacity uint) uint {
	var zero T
	return capacity * uint(unsafe.Sizeof(zero))
}

// ExplainIndent writes an indented summary of the growth policy and of
// the footprint of a buffer with the given capacity to w
func (c *Config[T]) ExplainIndent(w io.Writer, indent string, capacity uint) {
	var zero T
	fmt.Fprintf(w, "%s%T elements, %d bytes per slot\n", indent, zero, unsafe.Sizeof(zero))
	fmt.Fprintf(w, "%sPushBack past capacity grows to exactly size+1\n", indent)
	fmt.Fprintf(w, "%sInsert past capacity grows to max(1, 2*capacity)\n", indent)
	fmt.Fprintf(w, "%sReserve and Resize grow to exactly the requested amount\n", indent)
	fmt.Fprintf(w, "%s%d slots need %s of storage\n", indent, capacity, humanBytes(c.BytesRequired(capacity)))
}

// Explain prints ExplainIndent output to stdout
func (c *Config[T]) Explain(capacity uint) {
	c.ExplainIndent(os.Stdout, "", capacity)
}

func humanBytes(bytes uint) string {
	v := float64(bytes)
	suffix := "bytes"
	if v > 1024 {
		v /= 1024.
		suffix = "KB"
		if v > 1024. {
			suffix = "MB"
			v /= 1024.0
			if v > 1024. {
				suffix = "GB"
				v /= 1024.
			}
		}
	}
	if v < 10 {
		return fmt.Sprintf("%0.2f %s", v, suffix)
	} else if v < 100 {
		return fmt.Sprintf("%0.1f %s", v, suffix)
	} else {
		return fmt.Sprintf("%0.0f %s", v, suffix)
	}
}

// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

// AllocateFn allocates contiguous, zeroed storage for exactly n elements
// of T.  An allocator that cannot satisfy a request must panic; the panic is
// never recovered by this package.
type AllocateFn[T any] func(n uint) []T

// DefaultAllocate allocates storage from the Go heap
func DefaultAllocate[T any](n uint) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// Buffer exclusively owns a fixed size block of element slots.  It is
// never resized; growing means allocating a new Buffer and swapping it in.
type Buffer[T any] struct {
	items []T
}

// NewBuffer allocates a buffer holding exactly n slots
func NewBuffer[T any](alloc AllocateFn[T], n uint) Buffer[T] {
	if n == 0 {
		return Buffer[T]{}
	}
	items := alloc(n)
	if uint(len(items)) != n {
		panic(errShortAllocation(n, uint(len(items))))
	}
	return Buffer[T]{items: items}
}

// Len reports the number of slots owned by the buffer
func (b *Buffer[T]) Len() uint {
	return uint(len(b.items))
}

// Items returns the whole block, live or not.  The returned slice
// aliases the buffer and must not outlive it.
func (b *Buffer[T]) Items() []T {
	return b.items
}

// Swap exchanges ownership of the blocks held by b and other
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.items, other.items = other.items, b.items
}

// Release drops the block.  Releasing an empty buffer does nothing.
func (b *Buffer[T]) Release() {
	b.items = nil
}

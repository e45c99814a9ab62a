// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

// Reserve makes room for at least newCapacity elements.  When growing,
// capacity becomes exactly newCapacity.  Size and contents are unchanged.
func (v *Vector[T]) Reserve(newCapacity uint) {
	if newCapacity > v.capacity {
		v.reallocate(newCapacity)
	}
}

// Resize changes the number of live elements to newSize.  Shrinking keeps
// the storage.  Growing beyond capacity reallocates to exactly newSize,
// growing within capacity does not reallocate.  New elements are zero.
func (v *Vector[T]) Resize(newSize uint) {
	switch {
	case newSize == v.size:
		return
	case newSize < v.size:
		clear(v.buf.Items()[newSize:v.size])
	case newSize > v.capacity:
		v.reallocate(newSize)
	default:
		clear(v.buf.Items()[v.size:newSize])
	}
	v.size = newSize
	v.invalidate()
}

// PushBack appends value.  When v is full it grows to exactly one more
// slot, so a run of appends past capacity reallocates every time; call
// Reserve first when the final size is known.
func (v *Vector[T]) PushBack(value T) {
	if v.size < v.capacity {
		v.buf.Items()[v.size] = value
		v.size++
		return
	}
	v.Resize(v.size + 1)
	v.buf.Items()[v.size-1] = value
}

// PopBack removes the last element.  v must not be empty.
func (v *Vector[T]) PopBack() {
	precondition(v.size > 0, "PopBack called on an empty vector")
	v.size--
	var zero T
	v.buf.Items()[v.size] = zero
	v.invalidate()
}

// Clear removes every element.  Capacity is retained for reuse.
func (v *Vector[T]) Clear() {
	clear(v.live())
	v.size = 0
	v.invalidate()
}

// Insert places value before pos and returns an iterator to it.  pos must
// be a valid iterator of v in [Begin(), End()].  A full vector doubles its
// capacity first (0 becomes 1).
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	v.checkPosition(pos)
	return v.iter(v.insert(pos.pos, value))
}

// InsertAt is Insert addressed by index.  i must be in [0, Size()].
func (v *Vector[T]) InsertAt(i uint, value T) uint {
	precondition(i <= v.size, "insert position %d out of range [0, %d]", i, v.size)
	return v.insert(i, value)
}

// Erase removes the element at pos and returns an iterator to the
// element that followed it.  pos must be a valid iterator of v in
// [Begin(), End()]; erasing at End() does nothing.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	v.checkPosition(pos)
	return v.iter(v.erase(pos.pos))
}

// EraseAt is Erase addressed by index.  i must be in [0, Size()].
func (v *Vector[T]) EraseAt(i uint) uint {
	precondition(i <= v.size, "erase position %d out of range [0, %d]", i, v.size)
	return v.erase(i)
}

func (v *Vector[T]) insert(i uint, value T) uint {
	if v.size == v.capacity {
		// i is an offset, so it survives the reallocation unchanged
		v.reallocate(max(1, v.capacity*2))
	}
	items := v.buf.Items()
	// copy moves overlapping ranges as if back to front
	copy(items[i+1:v.size+1], items[i:v.size])
	items[i] = value
	v.size++
	v.invalidate()
	return i
}

func (v *Vector[T]) erase(i uint) uint {
	if i == v.size {
		return i
	}
	items := v.live()
	copy(items[i:], items[i+1:])
	var zero T
	items[v.size-1] = zero
	v.size--
	v.invalidate()
	return i
}

// reallocate moves the live elements into a new buffer of exactly
// newCapacity slots.  The new buffer is swapped in only once the copy is
// complete, so an allocator panic leaves v as it was.
func (v *Vector[T]) reallocate(newCapacity uint) {
	nb := NewBuffer(v.allocator(), newCapacity)
	copy(nb.Items(), v.live())
	v.buf.Swap(&nb)
	nb.Release()
	v.capacity = newCapacity
	v.invalidate()
}

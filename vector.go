// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

// package vec implements a growable contiguous sequence which:
//  1. keeps its own size and capacity on top of an owning Buffer
//  2. grows to an exact fit on PushBack and by doubling on Insert
//  3. detects use of invalidated iterators at run time
//  4. accepts a pluggable allocator
//
// A Vector is not safe for concurrent use.  The zero value is an empty
// vector using DefaultAllocate.
package vec

// Vector is a growable, index addressable sequence of T
type Vector[T any] struct {
	buf      Buffer[T]
	size     uint
	capacity uint
	alloc    AllocateFn[T]
	// gen changes whenever storage is reallocated or shifted, which
	// invalidates every outstanding iterator
	gen uint64
}

// New returns an empty vector.  Nothing is allocated.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithConfig returns an empty vector that allocates through c
func NewWithConfig[T any](c Config[T]) *Vector[T] {
	c = c.withDefaults()
	return &Vector[T]{alloc: c.Allocate}
}

// NewSized returns a vector holding n zero values
func NewSized[T any](n uint) *Vector[T] {
	v := New[T]()
	v.buf = NewBuffer(v.allocator(), n)
	v.size, v.capacity = n, n
	return v
}

// NewFilled returns a vector holding n copies of value
func NewFilled[T any](n uint, value T) *Vector[T] {
	v := NewSized[T](n)
	items := v.buf.Items()
	for i := range items {
		items[i] = value
	}
	return v
}

// FromList returns a vector holding items in order.  Size and capacity
// are both len(items).
func FromList[T any](items ...T) *Vector[T] {
	v := NewSized[T](uint(len(items)))
	copy(v.buf.Items(), items)
	return v
}

// NewReserved returns an empty vector with storage for hint.Capacity()
// elements already allocated
func NewReserved[T any](hint ReserveProxy) *Vector[T] {
	v := New[T]()
	v.buf = NewBuffer(v.allocator(), hint.Capacity())
	v.capacity = hint.Capacity()
	return v
}

// Copy returns a deep copy of other sized to fit: the copy's capacity is
// other.Size().  The two vectors share no storage.
func Copy[T any](other *Vector[T]) *Vector[T] {
	v := &Vector[T]{alloc: other.alloc}
	v.buf = NewBuffer(v.allocator(), other.size)
	copy(v.buf.Items(), other.live())
	v.size, v.capacity = other.size, other.size
	return v
}

// Move returns a vector that has taken ownership of other's storage
// without copying any element.  other is left empty with zero capacity.
func Move[T any](other *Vector[T]) *Vector[T] {
	v := &Vector[T]{alloc: other.alloc}
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, 0
	v.capacity, other.capacity = other.capacity, 0
	other.invalidate()
	return v
}

// CopyAssign replaces the contents of v with a copy of rhs.  The copy is
// built before v is touched, so if allocation panics v is unmodified.
func (v *Vector[T]) CopyAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	tmp := Copy(rhs)
	v.Swap(tmp)
	tmp.buf.Release()
}

// MoveAssign releases the storage of v and takes ownership of rhs's.
// rhs is left empty with zero capacity.  Moving a vector onto itself
// does nothing.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.buf.Release()
	v.buf.Swap(&rhs.buf)
	v.size, rhs.size = rhs.size, 0
	v.capacity, rhs.capacity = rhs.capacity, 0
	v.alloc = rhs.alloc
	v.invalidate()
	rhs.invalidate()
}

// Swap exchanges the full state of v and other in constant time
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.alloc, other.alloc = other.alloc, v.alloc
	v.invalidate()
	other.invalidate()
}

// Size returns the number of live elements
func (v *Vector[T]) Size() uint {
	return v.size
}

// Capacity returns the number of allocated slots
func (v *Vector[T]) Capacity() uint {
	return v.capacity
}

// IsEmpty reports whether v holds no live elements
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns element i.  i must be less than Size().
func (v *Vector[T]) Get(i uint) T {
	return *v.Ref(i)
}

// Set overwrites element i.  i must be less than Size().
func (v *Vector[T]) Set(i uint, value T) {
	*v.Ref(i) = value
}

// Ref returns a pointer to element i, valid until the next operation that
// reallocates v.  i must be less than Size().
func (v *Vector[T]) Ref(i uint) *T {
	precondition(i < v.size, "index %d out of range [0, %d)", i, v.size)
	return &v.buf.Items()[i]
}

// At is the checked form of Ref.  It returns an *OutOfRangeError when i
// is not within [0, Size()).
func (v *Vector[T]) At(i uint) (*T, error) {
	if i >= v.size {
		return nil, &OutOfRangeError{Index: i, Size: v.size}
	}
	return &v.buf.Items()[i], nil
}

// Front returns the first element.  v must not be empty.
func (v *Vector[T]) Front() T {
	precondition(v.size > 0, "Front called on an empty vector")
	return v.buf.Items()[0]
}

// Back returns the last element.  v must not be empty.
func (v *Vector[T]) Back() T {
	precondition(v.size > 0, "Back called on an empty vector")
	return v.buf.Items()[v.size-1]
}

// Values returns the live range as a slice aliasing v's storage.  Its
// capacity is clipped so appending to it never reaches reserved slots.
// Like an iterator, it is invalidated by reallocation.
func (v *Vector[T]) Values() []T {
	return v.live()
}

func (v *Vector[T]) live() []T {
	return v.buf.Items()[:v.size:v.size]
}

func (v *Vector[T]) allocator() AllocateFn[T] {
	if v.alloc == nil {
		return DefaultAllocate[T]
	}
	return v.alloc
}

func (v *Vector[T]) invalidate() {
	v.gen++
}

// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

// Iterator is a random access position within the live range of a
// Vector, End() included.  Any operation that reallocates or shifts the
// vector's storage invalidates every iterator obtained before it; using an
// invalidated iterator panics.
type Iterator[T any] struct {
	vec *Vector[T]
	pos uint
	gen uint64
}

// Begin returns an iterator to the first element
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iter(0)
}

// End returns an iterator one past the last element
func (v *Vector[T]) End() Iterator[T] {
	return v.iter(v.size)
}

func (v *Vector[T]) iter(pos uint) Iterator[T] {
	return Iterator[T]{vec: v, pos: pos, gen: v.gen}
}

// checkPosition verifies that pos is a live iterator of v in [Begin(), End()]
func (v *Vector[T]) checkPosition(pos Iterator[T]) {
	precondition(pos.vec == v, "iterator belongs to a different vector")
	pos.check()
}

func (it Iterator[T]) check() {
	precondition(it.vec != nil, "use of a zero iterator")
	precondition(it.gen == it.vec.gen, "use of an iterator invalidated by reallocation or shifting")
	precondition(it.pos <= it.vec.size, "iterator position %d past end %d", it.pos, it.vec.size)
}

func (it Iterator[T]) sameVector(other Iterator[T]) {
	precondition(it.vec == other.vec, "comparing iterators of different vectors")
}

// Index returns the offset of it from Begin()
func (it Iterator[T]) Index() uint {
	it.check()
	return it.pos
}

// Get returns the element at it, which must not be End()
func (it Iterator[T]) Get() T {
	return *it.Ref()
}

// Set overwrites the element at it, which must not be End()
func (it Iterator[T]) Set(value T) {
	*it.Ref() = value
}

// Ref returns a pointer to the element at it, which must not be End()
func (it Iterator[T]) Ref() *T {
	it.check()
	return it.vec.Ref(it.pos)
}

// Next returns the following position.  it must not be End().
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns the preceding position.  it must not be Begin().
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Add returns it moved by n positions.  The result must lie in
// [Begin(), End()].
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.check()
	target := int64(it.pos) + int64(n)
	precondition(target >= 0 && target <= int64(it.vec.size),
		"iterator moved to %d, outside [0, %d]", target, it.vec.size)
	it.pos = uint(target)
	return it
}

// Sub returns the number of positions from other to it
func (it Iterator[T]) Sub(other Iterator[T]) int {
	it.sameVector(other)
	it.check()
	other.check()
	return int(it.pos) - int(other.pos)
}

// Equal reports whether it and other denote the same position
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.Sub(other) == 0
}

// Less reports whether it precedes other
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Sub(other) < 0
}

// Const returns a read only view of the same position
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is an Iterator without mutators
type ConstIterator[T any] struct {
	it Iterator[T]
}

// CBegin returns a read only iterator to the first element
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns a read only iterator one past the last element
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

func (c ConstIterator[T]) Index() uint { return c.it.Index() }

func (c ConstIterator[T]) Get() T { return c.it.Get() }

func (c ConstIterator[T]) Next() ConstIterator[T] { return c.it.Next().Const() }

func (c ConstIterator[T]) Prev() ConstIterator[T] { return c.it.Prev().Const() }

func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return c.it.Add(n).Const() }

func (c ConstIterator[T]) Sub(other ConstIterator[T]) int { return c.it.Sub(other.it) }

func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }

func (c ConstIterator[T]) Less(other ConstIterator[T]) bool { return c.it.Less(other.it) }

// Each calls fn for every live element in order until fn returns false.
// fn must not modify v.
func (v *Vector[T]) Each(fn func(i uint, value T) bool) {
	for i, x := range v.live() {
		if !fn(uint(i), x) {
			return
		}
	}
}

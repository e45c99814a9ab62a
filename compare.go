// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same size and equal elements in
// the same order
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.live(), b.live())
}

// NotEqual is !Equal(a, b)
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal using eq to compare elements
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	return slices.EqualFunc(a.live(), b.live(), eq)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.live(), b.live())
}

// Less reports whether a sorts before b lexicographically.  A proper
// prefix sorts before the longer vector.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessFunc is Less with a caller supplied strict weak ordering of elements
func LessFunc[T any](a, b *Vector[T], less func(x, y T) bool) bool {
	return slices.CompareFunc(a.live(), b.live(), func(x, y T) int {
		switch {
		case less(x, y):
			return -1
		case less(y, x):
			return 1
		}
		return 0
	}) < 0
}

// LessOrEqual is !Less(b, a)
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater is Less(b, a)
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual is !Less(a, b)
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"strings"
	"testing"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/stretchr/testify/assert"
)

func TestEquality(t *testing.T) {
	a := FromList(1, 2, 3)
	b := FromList(1, 2, 3)
	b.Reserve(10)
	assert.True(t, Equal(a, b), "capacity does not take part in equality")
	assert.False(t, NotEqual(a, b))

	b.PopBack()
	assert.False(t, Equal(a, b))
	assert.True(t, NotEqual(a, b))

	b.PushBack(4)
	assert.False(t, Equal(a, b))
	assert.True(t, Equal(New[int](), NewReserved[int](Reserve(3))))

	fold := func(x, y string) bool { return strings.EqualFold(x, y) }
	assert.True(t, EqualFunc(FromList("A", "b"), FromList("a", "B"), fold))
	assert.False(t, EqualFunc(FromList("A", "b"), FromList("a"), fold))
}

func TestOrdering(t *testing.T) {
	cases := []struct {
		a, b []int
		cmp  int
	}{
		{nil, nil, 0},
		{nil, []int{1}, -1},
		{[]int{1, 2}, []int{1, 2, 3}, -1},
		{[]int{1, 3}, []int{1, 2, 3}, 1},
		{[]int{1, 2, 3}, []int{1, 2, 3}, 0},
		{[]int{0, 9, 9}, []int{1}, -1},
	}
	for _, c := range cases {
		a, b := FromList(c.a...), FromList(c.b...)
		assert.Equal(t, c.cmp, Compare(a, b), "%v vs %v", a, b)
		assert.Equal(t, c.cmp < 0, Less(a, b), "%v < %v", a, b)
		assert.Equal(t, c.cmp <= 0, LessOrEqual(a, b), "%v <= %v", a, b)
		assert.Equal(t, c.cmp > 0, Greater(a, b), "%v > %v", a, b)
		assert.Equal(t, c.cmp >= 0, GreaterOrEqual(a, b), "%v >= %v", a, b)
		assert.Equal(t, c.cmp == 0, Equal(a, b), "%v == %v", a, b)
	}
}

func TestOrderingIsConsistent(t *testing.T) {
	vs := []*Vector[int]{
		New[int](),
		FromList(0),
		FromList(0, 0),
		FromList(0, 1),
		FromList(1),
		FromList(1, 0, 5),
		FromList(2),
	}
	for i, a := range vs {
		for j, b := range vs {
			assert.Equal(t, i < j, Less(a, b), "%v < %v", a, b)
			assert.Equal(t, i == j, Equal(a, b), "%v == %v", a, b)
			// exactly one of <, ==, > holds
			n := 0
			for _, x := range []bool{Less(a, b), Equal(a, b), Greater(a, b)} {
				if x {
					n++
				}
			}
			assert.Equal(t, 1, n, "%v vs %v", a, b)
		}
	}
}

func TestLessFunc(t *testing.T) {
	byLen := func(x, y string) bool { return len(x) < len(y) }
	assert.True(t, LessFunc(FromList("aa", "b"), FromList("cc", "dd"), byLen))
	assert.False(t, LessFunc(FromList("aa", "bb"), FromList("cc", "dd"), byLen), "equivalent elements")
	assert.True(t, LessFunc(FromList("aa"), FromList("cc", ""), byLen), "prefix sorts first")
	assert.False(t, LessFunc(FromList("aaa"), FromList("c", "dddd"), byLen))
}

var words = strings.Fields(`a growable contiguous index addressable sequence
container that manages its own size and capacity bookkeeping and delegates raw
storage to an owning buffer abstraction with exact fit growth on push back and
doubling growth on insert`)

func BenchmarkVectorScan(b *testing.B) {
	v := FromList(words...)
	n := len(words)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		want := words[i%n]
		v.Each(func(_ uint, w string) bool { return w != want })
	}
}

func BenchmarkMapLookup(b *testing.B) {
	table := map[string]struct{}{}
	for _, s := range words {
		table[s] = struct{}{}
	}
	n := len(words)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = table[words[i%n]]
	}
}

func BenchmarkBloomFilter(b *testing.B) {
	bf := bloom.NewWithEstimates(uint(len(words)), 0.0001)
	for _, s := range words {
		bf.AddString(s)
	}
	n := len(words)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bf.TestString(words[i%n])
	}
}

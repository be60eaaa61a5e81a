// Package bitset provides Set, a small fixed-capacity set of discrete values
// such as digits, positions or lines, stored as a single machine word.
package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Capacity is the number of distinct values a Set can hold: 0..Capacity-1.
const Capacity = 64

// Set is an unordered set of values of T. The zero Set is empty. Sets are
// comparable and safe to copy.
type Set[T ~uint8] struct {
	mask uint64
}

// Of returns a Set holding the given items. Items outside the capacity panic.
func Of[T ~uint8](items ...T) Set[T] {
	var s Set[T]
	for _, item := range items {
		s = s.Add(item)
	}
	return s
}

func (s Set[T]) Add(item T) Set[T] {
	if uint8(item) >= Capacity {
		panic(fmt.Sprintf("bitset: item %d exceeds capacity", item))
	}
	s.mask |= 1 << uint8(item)
	return s
}

func (s Set[T]) Remove(item T) Set[T] {
	if uint8(item) < Capacity {
		s.mask &^= 1 << uint8(item)
	}
	return s
}

func (s Set[T]) Contains(item T) bool {
	return uint8(item) < Capacity && s.mask&(1<<uint8(item)) != 0
}

func (s Set[T]) Len() int {
	return bits.OnesCount64(s.mask)
}

func (s Set[T]) IsEmpty() bool {
	return s.mask == 0
}

// Overlaps reports whether the two sets share at least one item.
func (s Set[T]) Overlaps(other Set[T]) bool {
	return s.mask&other.mask != 0
}

func (s Set[T]) Union(other Set[T]) Set[T] {
	return Set[T]{mask: s.mask | other.mask}
}

func (s Set[T]) Intersect(other Set[T]) Set[T] {
	return Set[T]{mask: s.mask & other.mask}
}

// At returns the item of the given rank, counting from the smallest item.
func (s Set[T]) At(rank int) (T, bool) {
	if rank < 0 || rank >= s.Len() {
		return 0, false
	}
	m := s.mask
	for range rank {
		m &= m - 1
	}
	return T(bits.TrailingZeros64(m)), true
}

// Items returns the items in ascending order.
func (s Set[T]) Items() []T {
	items := make([]T, 0, s.Len())
	for m := s.mask; m != 0; m &= m - 1 {
		items = append(items, T(bits.TrailingZeros64(m)))
	}
	return items
}

func (s Set[T]) String() string {
	items := s.Items()
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

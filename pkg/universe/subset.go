package universe

import (
	"fmt"
	"strings"

	"github.com/kbob/synthplan/pkg/bitset"
)

// Subset is a bitset of members drawn from a single Universe. Two subsets
// over different universes are never compared or combined; doing so panics,
// since it always indicates a planner bug rather than bad input data (the
// universes involved are fixed internal structures, never user-supplied).
type Subset[T comparable] struct {
	u    *Universe[T]
	bits bitset.Set
}

// Subset constructs a subset of u containing the given members.
func (u *Universe[T]) Subset(members ...T) Subset[T] {
	bits := bitset.New(uint(len(u.members)))
	for _, m := range members {
		bits.Insert(uint(u.Index(m)))
	}

	return Subset[T]{u, bits}
}

// All returns the subset containing every member of u.
func (u *Universe[T]) All() Subset[T] {
	bits := bitset.New(uint(len(u.members)))
	for i := range u.members {
		bits.Insert(uint(i))
	}

	return Subset[T]{u, bits}
}

// None returns the empty subset of u.
func (u *Universe[T]) None() Subset[T] {
	return Subset[T]{u, bitset.New(uint(len(u.members)))}
}

func (s Subset[T]) assertSameUniverse(other Subset[T]) {
	if s.u != other.u {
		panic("universe: subsets belong to different universes")
	}
}

// Universe returns the universe this subset is drawn from.
func (s Subset[T]) Universe() *Universe[T] {
	return s.u
}

// Len returns the number of members in the subset (its popcount).
func (s Subset[T]) Len() int {
	return int(s.bits.Count())
}

// IsEmpty reports whether the subset has no members.
func (s Subset[T]) IsEmpty() bool {
	return s.bits.IsEmpty()
}

// Contains reports whether member is in the subset.
func (s Subset[T]) Contains(member T) bool {
	i := s.u.Find(member)
	return i >= 0 && s.bits.Contains(uint(i))
}

// At reports whether the member at the given dense index is in the subset.
func (s Subset[T]) At(index int) bool {
	return s.bits.Contains(uint(index))
}

// Get reports whether member is in the subset; equivalent to Contains but
// panics (rather than returning false) if member is unknown to the universe.
func (s Subset[T]) Get(member T) bool {
	return s.bits.Contains(uint(s.u.Index(member)))
}

// Add mutates the subset in place to include member.
func (s Subset[T]) Add(member T) {
	s.bits.Insert(uint(s.u.Index(member)))
}

// AddIndex mutates the subset in place to include the member at index.
func (s Subset[T]) AddIndex(index int) {
	s.bits.Insert(uint(index))
}

// Clone returns an independent copy of the subset.
func (s Subset[T]) Clone() Subset[T] {
	return Subset[T]{s.u, s.bits.Clone()}
}

// Union returns a new subset containing every member of s or other.
func (s Subset[T]) Union(other Subset[T]) Subset[T] {
	s.assertSameUniverse(other)
	r := s.bits.Clone()
	r.Union(other.bits)

	return Subset[T]{s.u, r}
}

// Intersect returns a new subset containing members in both s and other.
func (s Subset[T]) Intersect(other Subset[T]) Subset[T] {
	s.assertSameUniverse(other)
	r := s.bits.Clone()
	r.Intersect(other.bits)

	return Subset[T]{s.u, r}
}

// Subtract returns a new subset containing members of s that are not in
// other.
func (s Subset[T]) Subtract(other Subset[T]) Subset[T] {
	s.assertSameUniverse(other)
	r := s.bits.Clone()
	r.Subtract(other.bits)

	return Subset[T]{s.u, r}
}

// SymmetricDifference returns a new subset containing members present in
// exactly one of s or other.
func (s Subset[T]) SymmetricDifference(other Subset[T]) Subset[T] {
	s.assertSameUniverse(other)

	return s.Union(other).Subtract(s.Intersect(other))
}

// Complement returns the subset of the universe not in s.
func (s Subset[T]) Complement() Subset[T] {
	return s.u.All().Subtract(s)
}

// Equal reports whether s and other contain the same members.
func (s Subset[T]) Equal(other Subset[T]) bool {
	s.assertSameUniverse(other)
	return s.bits.Equal(other.bits)
}

// Less reports whether s is a proper subset of other.
func (s Subset[T]) Less(other Subset[T]) bool {
	return s.LessEqual(other) && !s.Equal(other)
}

// LessEqual reports whether s is a subset of (or equal to) other.
func (s Subset[T]) LessEqual(other Subset[T]) bool {
	s.assertSameUniverse(other)
	return s.Subtract(other).IsEmpty()
}

// Greater reports whether s is a proper superset of other.
func (s Subset[T]) Greater(other Subset[T]) bool {
	return other.Less(s)
}

// GreaterEqual reports whether s is a superset of (or equal to) other.
func (s Subset[T]) GreaterEqual(other Subset[T]) bool {
	return other.LessEqual(s)
}

// IterMembers calls visit for each member of the subset, in universe order.
func (s Subset[T]) IterMembers(visit func(T)) {
	s.bits.Iter(func(i uint) {
		visit(s.u.At(int(i)))
	})
}

// IterIndices calls visit for each member's dense index, in ascending order.
func (s Subset[T]) IterIndices(visit func(int)) {
	s.bits.Iter(func(i uint) {
		visit(int(i))
	})
}

// Members returns the subset's members as a slice, in universe order.
func (s Subset[T]) Members() []T {
	out := make([]T, 0, s.Len())
	s.IterMembers(func(m T) { out = append(out, m) })

	return out
}

func (s Subset[T]) String() string {
	var b strings.Builder
	first := true
	b.WriteString("{")
	s.IterMembers(func(m T) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", m)
	})
	b.WriteString("}")

	return b.String()
}

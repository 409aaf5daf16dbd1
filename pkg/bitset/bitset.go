// Package bitset provides a dense bit-vector set implementation used to back
// [universe.Subset]. The API shape (Insert, Remove, Union, Contains, Count,
// Iter) follows the teacher's in-house bitset; the underlying word storage is
// delegated to github.com/bits-and-blooms/bitset so that both the common
// ≤64-member case and larger universes share one allocation-free-after-
// construction representation.
package bitset

import (
	"fmt"
	"strings"

	bbs "github.com/bits-and-blooms/bitset"
)

// Set is a fixed-capacity set of small unsigned integers.
type Set struct {
	bits *bbs.BitSet
}

// New constructs an empty Set with room for at least size members.
func New(size uint) Set {
	return Set{bbs.New(size)}
}

// Clone creates a true copy of this set; no aliasing with the original.
func (s Set) Clone() Set {
	return Set{s.bits.Clone()}
}

// Insert adds val to the set.
func (s Set) Insert(val uint) {
	s.bits.Set(val)
}

// InsertAll adds zero or more values to the set.
func (s Set) InsertAll(vals ...uint) {
	for _, v := range vals {
		s.Insert(v)
	}
}

// Remove deletes val from the set, if present.
func (s Set) Remove(val uint) {
	s.bits.Clear(val)
}

// Contains reports whether val is a member.
func (s Set) Contains(val uint) bool {
	return s.bits.Test(val)
}

// Count returns the number of members (popcount).
func (s Set) Count() uint {
	return s.bits.Count()
}

// Union mutates s to include every member of other, returning true if s
// changed as a result.
func (s Set) Union(other Set) bool {
	before := s.bits.Count()
	s.bits.InPlaceUnion(other.bits)
	return s.bits.Count() != before
}

// Intersect mutates s to retain only members also present in other.
func (s Set) Intersect(other Set) {
	s.bits.InPlaceIntersection(other.bits)
}

// Subtract mutates s to remove every member present in other.
func (s Set) Subtract(other Set) {
	s.bits.InPlaceDifference(other.bits)
}

// Equal reports whether s and other contain the same members.
func (s Set) Equal(other Set) bool {
	return s.bits.Equal(other.bits)
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return s.bits.None()
}

// Iter calls visit for each member of the set, in ascending order.
func (s Set) Iter(visit func(uint)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		visit(i)
	}
}

// Members returns the set's members as a sorted slice.
func (s Set) Members() []uint {
	out := make([]uint, 0, s.Count())
	s.Iter(func(v uint) { out = append(out, v) })
	return out
}

func (s Set) String() string {
	var b strings.Builder
	first := true
	b.WriteString("{")
	s.Iter(func(v uint) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%d", v)
	})
	b.WriteString("}")
	return b.String()
}

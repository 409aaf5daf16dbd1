// Package universe implements dense index assignment for a fixed collection
// of members ("Universe") and bitset-backed subsets over it ("Subset"). The
// planner builds a Universe once a synth is finalized (modules, controls,
// ports are then immutable) and represents every reachability computation as
// Subset set algebra, which compiles down to a handful of word operations.
//
// Grounded on the original relations.py prototype's Universe/Subset classes.
package universe

import "fmt"

// Universe fixes a mapping from a sequence of members to consecutive indices
// 0..N-1. Members must be comparable and, in this planner, are always
// pointers (so identity, not structural value, determines equality).
type Universe[T comparable] struct {
	members []T
	index   map[T]int
}

// New constructs a Universe over the given members, in declaration order.
// Duplicate members panic: that would indicate the same module, control, or
// port was declared twice, which is a programmer error in the caller.
func New[T comparable](members ...T) *Universe[T] {
	idx := make(map[T]int, len(members))
	cp := make([]T, len(members))
	copy(cp, members)

	for i, m := range cp {
		if _, ok := idx[m]; ok {
			panic(fmt.Sprintf("universe: duplicate member at index %d", i))
		}
		idx[m] = i
	}

	return &Universe[T]{cp, idx}
}

// Len returns the number of members in the universe.
func (u *Universe[T]) Len() int {
	return len(u.members)
}

// Index returns the dense index of member, panicking if it is not present.
// Absence here means the caller handed the planner an entity that was never
// declared on the synth -- a structural error the planner detects and
// reports before ever calling Index.
func (u *Universe[T]) Index(member T) int {
	i, ok := u.index[member]
	if !ok {
		panic(fmt.Sprintf("universe: member %v not present", member))
	}

	return i
}

// Find returns the dense index of member, or -1 if absent.
func (u *Universe[T]) Find(member T) int {
	if i, ok := u.index[member]; ok {
		return i
	}

	return -1
}

// At returns the member at the given dense index.
func (u *Universe[T]) At(index int) T {
	return u.members[index]
}

// Members returns the universe's members in declaration order. The slice is
// a defensive copy; mutating it does not affect the universe.
func (u *Universe[T]) Members() []T {
	cp := make([]T, len(u.members))
	copy(cp, u.members)

	return cp
}

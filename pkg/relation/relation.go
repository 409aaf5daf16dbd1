// Package relation implements a binary relation over two universes, stored
// as one Subset row per member of the first universe. It is the structure
// the graph builder uses for mod_predecessors, port_sources, and links_to.
//
// Grounded on the original relations.py prototype's Relation class.
package relation

import "github.com/kbob/synthplan/pkg/universe"

// Relation represents R ⊆ U1 x U2, stored as |U1| rows each a Subset of U2.
// It is mutable while the planner builds it and read-only thereafter.
type Relation[A, B comparable] struct {
	u1   *universe.Universe[A]
	u2   *universe.Universe[B]
	rows []universe.Subset[B]
}

// New constructs an empty relation over u1 x u2.
func New[A, B comparable](u1 *universe.Universe[A], u2 *universe.Universe[B]) *Relation[A, B] {
	rows := make([]universe.Subset[B], u1.Len())
	for i := range rows {
		rows[i] = u2.None()
	}

	return &Relation[A, B]{u1, u2, rows}
}

// Add records that (a, b) is in the relation.
func (r *Relation[A, B]) Add(a A, b B) {
	r.rows[r.u1.Index(a)].Add(b)
}

// Contains reports whether (a, b) is in the relation.
func (r *Relation[A, B]) Contains(a A, b B) bool {
	return r.rows[r.u1.Index(a)].Contains(b)
}

// At returns the row for the U1 member at the given dense index.
func (r *Relation[A, B]) At(index int) universe.Subset[B] {
	return r.rows[index]
}

// Get returns the row (as a Subset of U2) for a.
func (r *Relation[A, B]) Get(a A) universe.Subset[B] {
	return r.rows[r.u1.Index(a)]
}

package universe_test

import (
	"testing"

	"github.com/kbob/synthplan/pkg/internal/assert"
	"github.com/kbob/synthplan/pkg/universe"
)

func abcde() *universe.Universe[string] {
	return universe.New("a", "b", "c", "d", "e")
}

func TestRoundTrip(t *testing.T) {
	u := abcde()
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, m, u.At(u.Index(m)))
	}
}

func TestFindMissing(t *testing.T) {
	u := abcde()
	assert.Equal(t, -1, u.Find("z"))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 5, abcde().Len())
}

func TestAllNone(t *testing.T) {
	u := abcde()
	assert.Equal(t, 5, u.All().Len())
	assert.Equal(t, 0, u.None().Len())
}

func TestDeMorgan(t *testing.T) {
	u := abcde()
	a := u.Subset("a", "b", "c")
	b := u.Subset("a", "c", "e")

	lhs := a.Union(b).Complement()
	rhs := a.Complement().Intersect(b.Complement())
	assert.True(t, lhs.Equal(rhs), "De Morgan union/intersect failed")

	lhs2 := a.Intersect(b).Complement()
	rhs2 := a.Complement().Union(b.Complement())
	assert.True(t, lhs2.Equal(rhs2), "De Morgan intersect/union failed")
}

func TestPopcount(t *testing.T) {
	u := abcde()
	s := u.Subset("a", "c", "e")

	count := 0
	for i := 0; i < u.Len(); i++ {
		if s.At(i) {
			count++
		}
	}
	assert.Equal(t, count, s.Len())
}

func TestIdempotence(t *testing.T) {
	u := abcde()
	s := u.Subset("a", "b", "c")
	assert.True(t, s.Union(s).Equal(s))
	assert.True(t, s.Intersect(s).Equal(s))
}

func TestOrdering(t *testing.T) {
	u := abcde()
	empty := u.None()
	a := u.Subset("a")
	abc := u.Subset("a", "b", "c")
	abcde_ := u.All()

	assert.True(t, empty.Less(a))
	assert.True(t, a.Less(abc))
	assert.True(t, abc.Less(abcde_))
	assert.False(t, abc.Less(u.Subset("a", "c", "e")))
}

func TestMismatchedUniversePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic comparing subsets of different universes")
		}
	}()

	u1 := universe.New("a", "b")
	u2 := universe.New("x", "y")
	_ = u1.Subset("a").Union(u2.Subset("x"))
}

func TestIterOrder(t *testing.T) {
	u := abcde()
	s := u.Subset("a", "c", "e")

	var got []string
	s.IterMembers(func(m string) { got = append(got, m) })
	assert.Equal(t, []string{"a", "c", "e"}, got)

	var idx []int
	s.IterIndices(func(i int) { idx = append(idx, i) })
	assert.Equal(t, []int{0, 2, 4}, idx)
}

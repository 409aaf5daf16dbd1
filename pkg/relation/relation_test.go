package relation_test

import (
	"testing"

	"github.com/kbob/synthplan/pkg/internal/assert"
	"github.com/kbob/synthplan/pkg/relation"
	"github.com/kbob/synthplan/pkg/universe"
)

func TestContainsMatchesGet(t *testing.T) {
	turtles := universe.New("Leo", "Mich", "Don", "Raph")
	colours := universe.New("R", "O", "Y", "G", "B", "I", "V")

	r := relation.New(turtles, colours)
	r.Add("Leo", "B")
	r.Add("Mich", "O")
	r.Add("Don", "V")
	r.Add("Raph", "R")

	assert.True(t, r.Contains("Mich", "O"))
	assert.False(t, r.Contains("Mich", "R"))

	assert.True(t, r.Get("Mich").Contains("O"))
	assert.Equal(t, 1, r.Get("Don").Len())
	assert.True(t, r.Get("Don").Contains("V"))
}

func TestAtMatchesGet(t *testing.T) {
	u1 := universe.New("x", "y")
	u2 := universe.New("p", "q")
	r := relation.New(u1, u2)
	r.Add("y", "p")

	assert.True(t, r.At(1).Equal(r.Get("y")))
}

package planner

import "fmt"

// Action is one step of a compiled Plan. Concrete types are Eval, Clear,
// Alias, Copy, Add, and Render (spec §4.7's action set); indices embedded in
// each are dense offsets resolved via the Resolver at compile time, so the
// audio thread never does a name lookup.
type Action interface {
	isAction()
	fmt.Stringer
}

// Eval computes a control's current value into its output buffer.
type Eval struct{ Ctl int }

func (Eval) isAction()        {}
func (a Eval) String() string { return fmt.Sprintf("Eval(%d)", a.Ctl) }

// Clear fills a port's buffer with a constant value.
type Clear struct {
	Port  int
	Value float64
}

func (Clear) isAction()        {}
func (a Clear) String() string { return fmt.Sprintf("Clear(%d, %g)", a.Port, a.Value) }

// Alias makes dest's buffer pointer equal src's. Src == -1 breaks a prior
// alias and restores dest's private buffer.
type Alias struct {
	Dest int
	Src  int
}

func (Alias) isAction() {}
func (a Alias) String() string {
	if a.Src < 0 {
		return fmt.Sprintf("Alias(%d, -)", a.Dest)
	}

	return fmt.Sprintf("Alias(%d, %d)", a.Dest, a.Src)
}

// Copy sets dest = scale * src * ctl, treating an absent src or ctl (index
// -1) as 1. It is emitted for the first contribution to a port in a block.
type Copy struct {
	Dest, Src, Ctl int
	Scale          float64
}

func (Copy) isAction()        {}
func (a Copy) String() string { return fmt.Sprintf("Copy(%d, %d, %d, %g)", a.Dest, a.Src, a.Ctl, a.Scale) }

// Add sets dest += scale * src * ctl, treating an absent src or ctl as 1. It
// is emitted for every contribution to a port after the first in a block.
type Add struct {
	Dest, Src, Ctl int
	Scale          float64
}

func (Add) isAction()        {}
func (a Add) String() string { return fmt.Sprintf("Add(%d, %d, %d, %g)", a.Dest, a.Src, a.Ctl, a.Scale) }

// Render invokes a module's per-block DSP function.
type Render struct{ Module int }

func (Render) isAction()        {}
func (a Render) String() string { return fmt.Sprintf("Render(%d)", a.Module) }

// Package synth declares the static data model a patch is built against:
// ports, modules, controls, and links (spec §3). Declarations are immutable
// once a Synth is finalized; only a Patch's link list varies afterwards.
//
// Grounded on the original control.py prototype (Port/Ported/Module/Control/
// LinkType/Synth/Patch) and, for the finalized-builder discipline, on the
// teacher's TraceBuilder pattern (pkg/schema/builder.go).
package synth

import "fmt"

// Direction is a port's signal direction.
type Direction int

// Port directions.
const (
	DirIn Direction = iota
	DirOut
)

func (d Direction) String() string {
	if d == DirIn {
		return "in"
	}

	return "out"
}

// Kind is a port's value type tag. The planner treats it opaquely: two ports
// are link-compatible for a simple link iff their Kind matches.
type Kind int

// Port kinds recognised by this prototype. DSP modules may use either for
// any purpose; the planner never interprets the values themselves.
const (
	KindSample Kind = iota
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindSample:
		return "sample"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// OwnerKind tags which concrete type a Port's Owner holds, realizing the
// "runtime class inspection -> sum type" design note: the planner branches on
// this tag, never on a type switch or reflection.
type OwnerKind int

// Owner kinds.
const (
	OwnerNone OwnerKind = iota
	OwnerIsModule
	OwnerIsControl
)

// OwnerRef identifies the module or control a port belongs to.
type OwnerRef struct {
	Kind    OwnerKind
	Module  *Module
	Control *Control
}

// Name returns the name of the owning entity, regardless of which it is.
func (o OwnerRef) Name() string {
	switch o.Kind {
	case OwnerIsModule:
		return o.Module.Name
	case OwnerIsControl:
		return o.Control.Name
	default:
		return "<unowned>"
	}
}

// Port is a named, typed, directional endpoint on a module or control. Ports
// are compared by reference identity; they are never constructed as
// free-standing values once attached to an owner.
type Port struct {
	Name  string
	Dir   Direction
	Kind  Kind
	Owner OwnerRef
}

// NewInput constructs an unattached input port. Pass it to NewModule to
// attach it to an owner.
func NewInput(name string, kind Kind) *Port {
	return &Port{Name: name, Dir: DirIn, Kind: kind}
}

// NewOutput constructs an unattached output port.
func NewOutput(name string, kind Kind) *Port {
	return &Port{Name: name, Dir: DirOut, Kind: kind}
}

// IsInput reports whether this is an input port.
func (p *Port) IsInput() bool { return p.Dir == DirIn }

// IsOutput reports whether this is an output port.
func (p *Port) IsOutput() bool { return p.Dir == DirOut }

func (p *Port) String() string {
	if p == nil {
		return "-"
	}

	return fmt.Sprintf("%s.%s", p.Owner.Name(), p.Name)
}

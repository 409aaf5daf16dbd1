package synth

// Control is a named source of a scalar value (MIDI pitch, mod wheel, and
// so on). Structurally it is a degenerate module with exactly one output
// port and no inputs, but it is modelled as a distinct type because controls
// are always renderable before any module in their scope (spec §3).
type Control struct {
	Name string
	Out  *Port
}

// NewControl constructs a control with a single output port named "out".
func NewControl(name string, kind Kind) *Control {
	c := &Control{Name: name}
	out := NewOutput("out", kind)
	out.Owner = OwnerRef{Kind: OwnerIsControl, Control: c}
	c.Out = out

	return c
}

func (c *Control) String() string {
	return c.Name
}

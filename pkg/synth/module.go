package synth

// Module is a named DSP unit owning an ordered sequence of ports, mixed
// inputs and outputs. Modules are declared at synth construction time and
// never added or removed afterwards.
type Module struct {
	Name  string
	Ports []*Port
}

// NewModule constructs a module with the given name and ports, attaching
// each port's Owner to it.
func NewModule(name string, ports ...*Port) *Module {
	m := &Module{Name: name, Ports: ports}

	for _, p := range ports {
		p.Owner = OwnerRef{Kind: OwnerIsModule, Module: m}
	}

	return m
}

// InputPorts returns the module's input ports, in declaration order.
func (m *Module) InputPorts() []*Port {
	var out []*Port

	for _, p := range m.Ports {
		if p.IsInput() {
			out = append(out, p)
		}
	}

	return out
}

// OutputPorts returns the module's output ports, in declaration order.
func (m *Module) OutputPorts() []*Port {
	var out []*Port

	for _, p := range m.Ports {
		if p.IsOutput() {
			out = append(out, p)
		}
	}

	return out
}

func (m *Module) String() string {
	return m.Name
}

package synth

import "fmt"

// ConnectError reports a PatchBuilder.Connect call that referenced a port in
// the wrong direction (e.g. an output port as dest, or an input port as src)
// or that supplied neither a src nor a ctl. This is caught at patch-build time, before the link ever reaches the
// planner.
type ConnectError struct {
	Dest   *Port
	Reason string
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect(%s): %s", e.Dest, e.Reason)
}

// linkSpec accumulates the optional fields of a link being built.
type linkSpec struct {
	src   *Port
	ctl   *Port
	scale float64
}

// LinkOption configures an optional field of a link passed to Connect.
type LinkOption func(*linkSpec)

// WithSrc sets the link's source output port.
func WithSrc(src *Port) LinkOption {
	return func(s *linkSpec) { s.src = src }
}

// WithCtl sets the link's control, which may be an output port or a Control
// (a Control is rewritten to its single output port, per spec §6).
func WithCtl(ctl any) LinkOption {
	return func(s *linkSpec) {
		switch c := ctl.(type) {
		case *Port:
			s.ctl = c
		case *Control:
			s.ctl = c.Out
		}
	}
}

// WithScale sets the link's multiplier; the default is 1.
func WithScale(scale float64) LinkOption {
	return func(s *linkSpec) { s.scale = scale }
}

// Patch is an immutable set of links defining a particular sound on a
// timbre, produced by PatchBuilder.Build.
type Patch struct {
	Synth *Synth
	Links []*Link
}

// PatchBuilder accumulates links via chained Connect calls and validates
// each as it goes; the first validation failure is retained and returned by
// Build, so callers can chain freely without checking every call.
type PatchBuilder struct {
	synth *Synth
	links []*Link
	err   error
}

// Connect adds a link `dest += scale * (src ⊕ ctl)` to the patch under
// construction. dest must be an input port; src (via WithSrc) must be an
// output port; ctl (via WithCtl) must be an output port or a Control.
func (p *PatchBuilder) Connect(dest *Port, opts ...LinkOption) *PatchBuilder {
	if p.err != nil {
		return p
	}

	spec := linkSpec{scale: 1}
	for _, opt := range opts {
		opt(&spec)
	}

	if dest == nil || !dest.IsInput() {
		p.err = &ConnectError{dest, "dest must be an input port"}
		return p
	}

	if spec.src != nil && !spec.src.IsOutput() {
		p.err = &ConnectError{dest, "src must be an output port"}
		return p
	}

	if spec.ctl != nil && !spec.ctl.IsOutput() {
		p.err = &ConnectError{dest, "ctl must be an output port or a Control"}
		return p
	}

	if spec.src == nil && spec.ctl == nil {
		p.err = &ConnectError{dest, "link must have a src or a ctl"}
		return p
	}

	p.links = append(p.links, &Link{
		Dest:  dest,
		Src:   spec.src,
		Ctl:   spec.ctl,
		Scale: spec.scale,
	})

	return p
}

// Build returns the immutable patch, or the first error encountered by a
// Connect call in the chain.
func (p *PatchBuilder) Build() (*Patch, error) {
	if p.err != nil {
		return nil, p.err
	}

	return &Patch{Synth: p.synth, Links: p.links}, nil
}

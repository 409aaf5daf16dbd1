// Package planner compiles a Patch into a Plan: an ordered sequence of
// buffer-wiring and rendering actions the audio engine replays every block.
// Compilation never runs on the audio thread; the result is installed with a
// single atomic pointer swap (spec §5).
//
// Grounded on the original control.py prototype's ModNetwork.make_plan, with
// its mapping/identity bookkeeping replaced by the universe package's dense
// indices (spec §9 design note).
package planner

import (
	"github.com/kbob/synthplan/pkg/synth"
	"github.com/kbob/synthplan/pkg/universe"
)

// Resolver fixes the dense-index universes a synth's modules, controls, and
// ports are assigned at finalization. Compile builds a fresh Resolver from
// the synth's declarations for every patch it compiles.
type Resolver struct {
	Modules  *universe.Universe[*synth.Module]
	Controls *universe.Universe[*synth.Control]
	Ports    *universe.Universe[*synth.Port]

	// numTControls is the count of timbre controls; controls at index
	// < numTControls are timbre-scope, the rest voice-scope, since
	// newResolver places TControls before VControls.
	numTControls int

	AllT    universe.Subset[*synth.Module]
	AllV    universe.Subset[*synth.Module]
	Outputs universe.Subset[*synth.Module]
}

// newResolver builds the universes for s, in the declaration order spec §4.3
// and the original _collect_all_ports require: timbre entities before voice
// entities, and within a module its ports in declaration order.
func newResolver(s *synth.Synth) *Resolver {
	modules := make([]*synth.Module, 0, len(s.TModules)+len(s.VModules))
	modules = append(modules, s.TModules...)
	modules = append(modules, s.VModules...)
	modUniverse := universe.New(modules...)

	controls := make([]*synth.Control, 0, len(s.TControls)+len(s.VControls))
	controls = append(controls, s.TControls...)
	controls = append(controls, s.VControls...)
	ctlUniverse := universe.New(controls...)

	var ports []*synth.Port
	for _, c := range s.TControls {
		ports = append(ports, c.Out)
	}
	for _, m := range s.TModules {
		ports = append(ports, m.Ports...)
	}
	for _, c := range s.VControls {
		ports = append(ports, c.Out)
	}
	for _, m := range s.VModules {
		ports = append(ports, m.Ports...)
	}
	portUniverse := universe.New(ports...)

	allT := modUniverse.Subset(s.TModules...)
	allV := modUniverse.Subset(s.VModules...)
	outputs := modUniverse.Subset(s.OModules...)

	return &Resolver{
		Modules:      modUniverse,
		Controls:     ctlUniverse,
		Ports:        portUniverse,
		numTControls: len(s.TControls),
		AllT:         allT,
		AllV:         allV,
		Outputs:      outputs,
	}
}

// isTimbreControlIndex reports whether the control at the given dense index was
// declared as a timbre control.
func (r *Resolver) isTimbreControlIndex(idx int) bool {
	return idx < r.numTControls
}

// portIndex returns the dense index of p, or -1 if p is nil.
func (r *Resolver) portIndex(p *synth.Port) int {
	if p == nil {
		return -1
	}

	return r.Ports.Index(p)
}

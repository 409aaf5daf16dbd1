package synth

import "fmt"

// Synth is the finalized, immutable declaration of a synth's modules,
// controls, and output selection. It is constructed via SynthBuilder and
// never mutated afterwards; only patches applied to it vary.
type Synth struct {
	Name       string
	Polyphony  int
	Timbrality int
	TModules   []*Module
	VModules   []*Module
	OModules   []*Module
	TControls  []*Control
	VControls  []*Control
}

// MakePatch returns a new, empty patch builder targeting this synth.
func (s *Synth) MakePatch() *PatchBuilder {
	return &PatchBuilder{synth: s}
}

// SynthBuilder accumulates a synth's declarations prior to finalization,
// following the teacher's typed-builder-with-a-finalized-flag pattern
// (pkg/schema/builder.go's TraceBuilder).
type SynthBuilder struct {
	name       string
	polyphony  int
	timbrality int
	tmodules   []*Module
	vmodules   []*Module
	omodules   []*Module
	tcontrols  []*Control
	vcontrols  []*Control
	finalized  bool
}

// NewSynthBuilder constructs a builder for a synth with the given name and
// unit polyphony/timbrality; call Polyphony/Timbrality to change them.
func NewSynthBuilder(name string) *SynthBuilder {
	return &SynthBuilder{name: name, polyphony: 1, timbrality: 1}
}

// Polyphony sets the number of voices preallocated per timbre.
func (b *SynthBuilder) Polyphony(n int) *SynthBuilder {
	b.polyphony = n
	return b
}

// Timbrality sets the number of timbres the synth supports.
func (b *SynthBuilder) Timbrality(n int) *SynthBuilder {
	b.timbrality = n
	return b
}

// TimbreModule declares a pre/post-voice-scope module (the planner decides
// which of pre or post at plan time, from reachability).
func (b *SynthBuilder) TimbreModule(m *Module) *SynthBuilder {
	b.tmodules = append(b.tmodules, m)
	return b
}

// VoiceModule declares a per-voice-scope module.
func (b *SynthBuilder) VoiceModule(m *Module) *SynthBuilder {
	b.vmodules = append(b.vmodules, m)
	return b
}

// OutputModule declares a timbre-scope module as one of the synth's designated
// outputs; it is also added to the timbre module list.
func (b *SynthBuilder) OutputModule(m *Module) *SynthBuilder {
	b.tmodules = append(b.tmodules, m)
	b.omodules = append(b.omodules, m)

	return b
}

// TimbreControl declares a timbre-scope control.
func (b *SynthBuilder) TimbreControl(c *Control) *SynthBuilder {
	b.tcontrols = append(b.tcontrols, c)
	return b
}

// VoiceControl declares a voice-scope control.
func (b *SynthBuilder) VoiceControl(c *Control) *SynthBuilder {
	b.vcontrols = append(b.vcontrols, c)
	return b
}

// Finalize fixes the synth's declarations and returns the immutable Synth.
// It fails if called twice or if no output modules were declared. Output
// modules need no separate check: OutputModule also records each one as a
// timbre module.
func (b *SynthBuilder) Finalize() (*Synth, error) {
	if b.finalized {
		return nil, fmt.Errorf("synth %q: already finalized", b.name)
	}

	if len(b.omodules) == 0 {
		return nil, fmt.Errorf("synth %q: no output modules declared", b.name)
	}

	b.finalized = true

	return &Synth{
		Name:       b.name,
		Polyphony:  b.polyphony,
		Timbrality: b.timbrality,
		TModules:   b.tmodules,
		VModules:   b.vmodules,
		OModules:   b.omodules,
		TControls:  b.tcontrols,
		VControls:  b.vcontrols,
	}, nil
}

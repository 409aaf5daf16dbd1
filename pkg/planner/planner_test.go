package planner_test

import (
	"testing"

	"github.com/kbob/synthplan/pkg/internal/assert"
	"github.com/kbob/synthplan/pkg/planner"
	"github.com/kbob/synthplan/pkg/synth"
)

func findAction[T any](actions []planner.Action, pred func(T) bool) (T, bool) {
	for _, a := range actions {
		if t, ok := a.(T); ok && pred(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func countOf[T any](actions []planner.Action) int {
	n := 0
	for _, a := range actions {
		if _, ok := a.(T); ok {
			n++
		}
	}
	return n
}

// Scenario 1: minimal pass-through.
func TestScenarioMinimalPassThrough(t *testing.T) {
	osc := synth.NewModule("Osc", synth.NewOutput("out", synth.KindSample))
	out := synth.NewModule("Out", synth.NewInput("in", synth.KindSample))

	s, err := synth.NewSynthBuilder("S").
		VoiceModule(osc).
		OutputModule(out).
		Finalize()
	assert.True(t, err == nil, "finalize failed")

	patch, err := s.MakePatch().
		Connect(out.Ports[0], synth.WithSrc(osc.Ports[0])).
		Build()
	assert.True(t, err == nil, "patch build failed")

	plan, err := planner.Compile(patch)
	assert.True(t, err == nil, "compile failed")

	// The single link crosses scope (src voice, dest timbre), so prep must
	// not alias it: the run must materialize a Copy.
	_, aliased := findAction[planner.Alias](plan.TPrep, func(a planner.Alias) bool { return a.Src >= 0 })
	assert.True(t, !aliased, "expected no true alias in t_prep")

	assert.Equal(t, 1, countOf[planner.Copy](plan.PostRun))
	assert.Equal(t, 1, countOf[planner.Render](plan.PostRun))
	assert.Equal(t, 0, len(plan.PreRun))
}

// Scenario 2: two sources fan into one voice-scope input.
func TestScenarioTwoSourcesFanIn(t *testing.T) {
	a := synth.NewModule("A", synth.NewOutput("out", synth.KindSample))
	b := synth.NewModule("B", synth.NewOutput("out", synth.KindSample))
	m := synth.NewModule("M", synth.NewInput("in", synth.KindSample), synth.NewOutput("out", synth.KindSample))
	out := synth.NewModule("Out", synth.NewInput("in", synth.KindSample))

	s, err := synth.NewSynthBuilder("S").
		VoiceModule(a).
		VoiceModule(b).
		VoiceModule(m).
		OutputModule(out).
		Finalize()
	assert.True(t, err == nil, "finalize failed")

	patch, err := s.MakePatch().
		Connect(m.Ports[0], synth.WithSrc(a.Ports[0])).
		Connect(m.Ports[0], synth.WithSrc(b.Ports[0])).
		Connect(out.Ports[0], synth.WithSrc(m.Ports[1])).
		Build()
	assert.True(t, err == nil, "patch build failed")

	plan, err := planner.Compile(patch)
	assert.True(t, err == nil, "compile failed")

	assert.Equal(t, 1, countOf[planner.Copy](plan.VRun))
	assert.Equal(t, 1, countOf[planner.Add](plan.VRun))
	assert.Equal(t, 3, countOf[planner.Render](plan.VRun))
}

// Scenario 3: single simple voice-scope link aliases with no run-time copy.
func TestScenarioSingleSimpleLinkAliases(t *testing.T) {
	a := synth.NewModule("A", synth.NewOutput("out", synth.KindSample))
	m := synth.NewModule("M", synth.NewInput("in", synth.KindSample), synth.NewOutput("out", synth.KindSample))
	out := synth.NewModule("Out", synth.NewInput("in", synth.KindSample))

	s, err := synth.NewSynthBuilder("S").
		VoiceModule(a).
		VoiceModule(m).
		OutputModule(out).
		Finalize()
	assert.True(t, err == nil, "finalize failed")

	patch, err := s.MakePatch().
		Connect(m.Ports[0], synth.WithSrc(a.Ports[0])).
		Connect(out.Ports[0], synth.WithSrc(m.Ports[1])).
		Build()
	assert.True(t, err == nil, "patch build failed")

	plan, err := planner.Compile(patch)
	assert.True(t, err == nil, "compile failed")

	_, aliased := findAction[planner.Alias](plan.VPrep, func(a planner.Alias) bool { return a.Src >= 0 })
	assert.True(t, aliased, "expected a true alias in v_prep")
	assert.Equal(t, 0, countOf[planner.Copy](plan.VRun))
	assert.Equal(t, 0, countOf[planner.Add](plan.VRun))
}

// Scenario 4: a control-modulated link materializes as a Copy.
func TestScenarioControlModulated(t *testing.T) {
	env := synth.NewModule("Env", synth.NewOutput("out", synth.KindScalar))
	lfo := synth.NewModule("Lfo", synth.NewOutput("out", synth.KindScalar))
	osc := synth.NewModule("Osc", synth.NewInput("pitch", synth.KindScalar), synth.NewOutput("out", synth.KindSample))
	out := synth.NewModule("Out", synth.NewInput("in", synth.KindSample))

	s, err := synth.NewSynthBuilder("S").
		VoiceModule(env).
		VoiceModule(lfo).
		VoiceModule(osc).
		OutputModule(out).
		Finalize()
	assert.True(t, err == nil, "finalize failed")

	patch, err := s.MakePatch().
		Connect(osc.Ports[0], synth.WithSrc(env.Ports[0]), synth.WithCtl(lfo.Ports[0]), synth.WithScale(0.3)).
		Connect(out.Ports[0], synth.WithSrc(osc.Ports[1])).
		Build()
	assert.True(t, err == nil, "patch build failed")

	plan, err := planner.Compile(patch)
	assert.True(t, err == nil, "compile failed")

	assert.Equal(t, 1, countOf[planner.Copy](plan.VRun))
}

// Scenario 5: a feedback loop fails with Cycle.
func TestScenarioCycleFails(t *testing.T) {
	a := synth.NewModule("A", synth.NewInput("in", synth.KindSample), synth.NewOutput("out", synth.KindSample))
	b := synth.NewModule("B", synth.NewInput("in", synth.KindSample), synth.NewOutput("out", synth.KindSample))
	out := synth.NewModule("Out", synth.NewInput("in", synth.KindSample))

	s, err := synth.NewSynthBuilder("S").
		VoiceModule(a).
		VoiceModule(b).
		OutputModule(out).
		Finalize()
	assert.True(t, err == nil, "finalize failed")

	patch, err := s.MakePatch().
		Connect(a.Ports[0], synth.WithSrc(b.Ports[1])).
		Connect(b.Ports[0], synth.WithSrc(a.Ports[1])).
		Connect(out.Ports[0], synth.WithSrc(a.Ports[1])).
		Build()
	assert.True(t, err == nil, "patch build failed")

	_, err = planner.Compile(patch)
	assert.True(t, err != nil, "expected cycle error")
}

// Scenario 6: a timbre module feeding an output directly AND feeding a
// voice module places it in both post (direct output predecessor) and pre
// (voice's predecessor) -- the partitioner's disjointness check must catch
// this rather than silently picking one.
func TestScenarioCrossScopeViolation(t *testing.T) {
	x := synth.NewModule("X", synth.NewOutput("out", synth.KindSample))
	v := synth.NewModule("V", synth.NewInput("feed", synth.KindSample), synth.NewOutput("out", synth.KindSample))
	out := synth.NewModule("Out",
		synth.NewInput("in1", synth.KindSample),
		synth.NewInput("in2", synth.KindSample),
	)

	s, err := synth.NewSynthBuilder("S").
		TimbreModule(x).
		VoiceModule(v).
		OutputModule(out).
		Finalize()
	assert.True(t, err == nil, "finalize failed")

	patch, err := s.MakePatch().
		Connect(out.Ports[0], synth.WithSrc(x.Ports[0])).
		Connect(out.Ports[1], synth.WithSrc(v.Ports[1])).
		Connect(v.Ports[0], synth.WithSrc(x.Ports[0])).
		Build()
	assert.True(t, err == nil, "patch build failed")

	_, err = planner.Compile(patch)
	assert.True(t, err != nil, "expected scope violation")
}

func TestIdempotentPlanning(t *testing.T) {
	osc := synth.NewModule("Osc", synth.NewOutput("out", synth.KindSample))
	out := synth.NewModule("Out", synth.NewInput("in", synth.KindSample))

	s, _ := synth.NewSynthBuilder("S").
		VoiceModule(osc).
		OutputModule(out).
		Finalize()

	patch, _ := s.MakePatch().
		Connect(out.Ports[0], synth.WithSrc(osc.Ports[0])).
		Build()

	p1, err1 := planner.Compile(patch)
	p2, err2 := planner.Compile(patch)
	assert.True(t, err1 == nil && err2 == nil, "compile failed")
	assert.Equal(t, len(p1.PostRun), len(p2.PostRun))
	assert.Equal(t, p1.PostRun[0].String(), p2.PostRun[0].String())
}

func TestApplyPatchKeepsOldPlanOnError(t *testing.T) {
	a := synth.NewModule("A", synth.NewInput("in", synth.KindSample), synth.NewOutput("out", synth.KindSample))
	out := synth.NewModule("Out", synth.NewInput("in", synth.KindSample))

	s, _ := synth.NewSynthBuilder("S").
		VoiceModule(a).
		OutputModule(out).
		Finalize()

	okPatch, _ := s.MakePatch().
		Connect(out.Ports[0], synth.WithSrc(a.Ports[1])).
		Build()

	var timbre planner.Timbre
	assert.True(t, timbre.ApplyPatch(okPatch) == nil, "expected valid patch to apply")
	firstPlan := timbre.Current()
	assert.True(t, firstPlan != nil, "expected a plan to be installed")

	cyclePatch, _ := s.MakePatch().
		Connect(a.Ports[0], synth.WithSrc(a.Ports[1])).
		Connect(out.Ports[0], synth.WithSrc(a.Ports[1])).
		Build()

	err := timbre.ApplyPatch(cyclePatch)
	assert.True(t, err != nil, "expected cycle patch to fail")
	assert.True(t, timbre.Current() == firstPlan, "expected old plan retained on error")
}

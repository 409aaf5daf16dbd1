package planner

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/kbob/synthplan/pkg/synth"
)

// Compile builds a Plan from patch, running the graph builder, scope
// partitioner, used-controls collector, prep planner, and run planner in
// sequence (spec §4.3-§4.7). It performs no mutation visible outside this
// call; a failure anywhere leaves no partial state for a caller to observe.
func Compile(patch *synth.Patch) (*Plan, error) {
	resolver := newResolver(patch.Synth)

	graph, err := buildGraph(resolver, patch)
	if err != nil {
		return nil, err
	}

	pre, voice, post, err := partitionScopes(resolver, graph)
	if err != nil {
		return nil, err
	}

	usedT, usedV, err := collectUsedControls(resolver, patch)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"pre":   pre.Len(),
		"voice": voice.Len(),
		"post":  post.Len(),
	}).Debug("planner: scope partition computed")

	timbreScope := pre.Union(post)
	tPrep := prepSection(resolver, graph, usedT, timbreScope, true)
	vPrep := prepSection(resolver, graph, usedV, voice, false)

	noModules := resolver.Modules.None()
	noControls := resolver.Controls.None()

	preRun, err := runSection(resolver, graph, usedT, pre, noModules, timbreScope, true)
	if err != nil {
		return nil, err
	}

	vRun, err := runSection(resolver, graph, usedV, voice, pre, voice, false)
	if err != nil {
		return nil, err
	}

	postRun, err := runSection(resolver, graph, noControls, post, pre.Union(voice), timbreScope, true)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Resolver: resolver,
		TPrep:    tPrep,
		VPrep:    vPrep,
		PreRun:   preRun,
		VRun:     vRun,
		PostRun:  postRun,
	}, nil
}

// Timbre holds the currently installed Plan for one timbre of a synth. The
// audio thread reads Current without locking; ApplyPatch recompiles a new
// plan and publishes it with a single atomic pointer swap, retaining the old
// plan if compilation fails (spec §5, §7).
type Timbre struct {
	plan atomic.Pointer[Plan]
}

// Current returns the plan currently installed, or nil if no patch has ever
// been applied.
func (t *Timbre) Current() *Plan {
	return t.plan.Load()
}

// ApplyPatch compiles patch and installs the result, replacing whatever plan
// was previously current. On error the previous plan remains installed and
// is returned unchanged by Current.
func (t *Timbre) ApplyPatch(patch *synth.Patch) error {
	plan, err := Compile(patch)
	if err != nil {
		return err
	}

	t.plan.Store(plan)

	return nil
}

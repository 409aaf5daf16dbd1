package planner

import (
	"github.com/kbob/synthplan/pkg/plannererr"
	"github.com/kbob/synthplan/pkg/relation"
	"github.com/kbob/synthplan/pkg/synth"
	"github.com/kbob/synthplan/pkg/universe"
)

// predecessorsStar computes the least fixpoint of the predecessor relation
// starting from seed, restricted at every step to candidates: the direct
// predecessors of seed intersected with candidates, then the predecessors of
// that frontier intersected with candidates, and so on until no new members
// appear. seed itself is not included unless it is also a predecessor of
// some member of the frontier.
//
// Grounded on the original control.py prototype's ModNetwork._collect_pred.
func predecessorsStar(
	modPred *relation.Relation[*synth.Module, *synth.Module],
	seed, candidates universe.Subset[*synth.Module],
) universe.Subset[*synth.Module] {
	result := candidates.Universe().None()
	frontier := seed

	for {
		preds := candidates.Universe().None()
		frontier.IterMembers(func(m *synth.Module) {
			preds = preds.Union(modPred.Get(m))
		})
		preds = preds.Intersect(candidates)

		fresh := preds.Subtract(result)
		if fresh.IsEmpty() {
			break
		}

		result = result.Union(fresh)
		frontier = fresh
	}

	return result
}

// partitionScopes assigns each module that contributes to the designated
// outputs to pre-voice, per-voice, or post-voice scope by walking the
// predecessor relation backward from those outputs (spec §4.4). A module
// that does not contribute to any output is left out of all three subsets.
func partitionScopes(resolver *Resolver, graph *Graph) (pre, voice, post universe.Subset[*synth.Module], err error) {
	post = resolver.Outputs.Union(predecessorsStar(graph.ModPred, resolver.Outputs, resolver.AllT))
	voice = predecessorsStar(graph.ModPred, post, resolver.AllV)
	pre = predecessorsStar(graph.ModPred, voice, resolver.AllT)

	if !pre.Intersect(post).IsEmpty() {
		return pre, voice, post, &plannererr.ScopeViolationError{Reason: "pre-voice and post-voice module sets overlap"}
	}

	feedsPre := resolver.Modules.None()
	pre.IterMembers(func(m *synth.Module) {
		feedsPre = feedsPre.Union(graph.ModPred.Get(m))
	})
	if !feedsPre.Intersect(resolver.AllV).IsEmpty() {
		return pre, voice, post, &plannererr.ScopeViolationError{Reason: "a voice-scope module feeds a pre-voice module"}
	}

	if !pre.Union(post).LessEqual(resolver.AllT) {
		return pre, voice, post, &plannererr.ScopeViolationError{Reason: "pre/post scope escapes declared timbre modules"}
	}

	if !voice.LessEqual(resolver.AllV) {
		return pre, voice, post, &plannererr.ScopeViolationError{Reason: "voice scope escapes declared voice modules"}
	}

	return pre, voice, post, nil
}

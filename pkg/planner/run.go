package planner

import (
	"github.com/kbob/synthplan/pkg/plannererr"
	"github.com/kbob/synthplan/pkg/synth"
	"github.com/kbob/synthplan/pkg/universe"
)

// runSection emits the once-per-block rendering actions for section,
// treating done as already rendered on entry (spec §4.7). It iterates a
// ready-set fixpoint: a module is ready once every one of its predecessors is
// in done, i.e. rendered earlier in this section or in an earlier one. A section that cannot fully drain -- a feedback
// loop -- fails with CycleError.
// aliasScope and restrictSameScope must match the scopeModules and
// restrictSameScope a prior prepSection call used to wire this same
// section, so that a link skips emitting Copy/Add here exactly when prep
// already aliased it. For pre and post, that is the combined timbre scope
// (pre ∪ post) with restriction on; for voice, it is the voice scope with
// restriction off.
func runSection(
	resolver *Resolver,
	graph *Graph,
	controls universe.Subset[*synth.Control],
	section universe.Subset[*synth.Module],
	done universe.Subset[*synth.Module],
	aliasScope universe.Subset[*synth.Module],
	restrictSameScope bool,
) ([]Action, error) {
	var actions []Action

	controls.IterIndices(func(idx int) {
		actions = append(actions, Eval{Ctl: idx})
	})

	done = done.Clone()

	for !section.LessEqual(done) {
		ready := section.Universe().None()
		section.IterMembers(func(m *synth.Module) {
			if done.Contains(m) {
				return
			}

			if graph.ModPred.Get(m).LessEqual(done) {
				ready.Add(m)
			}
		})

		if ready.IsEmpty() {
			remaining := section.Subtract(done)
			return nil, &plannererr.CycleError{Modules: remaining.Members()}
		}

		ready.IterMembers(func(m *synth.Module) {
			for _, dest := range m.InputPorts() {
				links := graph.LinksTo.Get(dest).Members()
				if len(links) == 1 && isAliasable(links[0], aliasScope, restrictSameScope) {
					continue
				}

				destIdx := resolver.Ports.Index(dest)
				for i, link := range links {
					srcIdx := resolver.portIndex(link.Src)
					ctlIdx := resolver.portIndex(link.Ctl)

					if i == 0 {
						actions = append(actions, Copy{Dest: destIdx, Src: srcIdx, Ctl: ctlIdx, Scale: link.Scale})
					} else {
						actions = append(actions, Add{Dest: destIdx, Src: srcIdx, Ctl: ctlIdx, Scale: link.Scale})
					}
				}
			}

			actions = append(actions, Render{Module: resolver.Modules.Index(m)})
		})

		done = done.Union(ready)
	}

	return actions, nil
}

package planner

import (
	"github.com/kbob/synthplan/pkg/synth"
	"github.com/kbob/synthplan/pkg/universe"
)

// prepSection emits the once-per-scope buffer wiring for scopeModules (spec
// §4.6). restrictSameScope narrows simple-link aliasing to sources that also
// lie in scopeModules: timbre prep passes true (voice-scope sources cannot
// alias timbre buffers, which outlive any one voice), voice prep passes
// false (pre-voice buffers are stable for a voice's whole lifetime, so
// cross-scope aliasing from pre is safe).
func prepSection(
	resolver *Resolver,
	graph *Graph,
	usedControls universe.Subset[*synth.Control],
	scopeModules universe.Subset[*synth.Module],
	restrictSameScope bool,
) []Action {
	var actions []Action

	usedControls.IterIndices(func(idx int) {
		actions = append(actions, Eval{Ctl: idx})
	})

	scopeModules.IterMembers(func(m *synth.Module) {
		for _, p := range m.InputPorts() {
			links := graph.LinksTo.Get(p).Members()
			portIdx := resolver.Ports.Index(p)

			switch {
			case len(links) == 0:
				actions = append(actions, Clear{Port: portIdx, Value: 0})

			case len(links) == 1 && isAliasable(links[0], scopeModules, restrictSameScope):
				srcIdx := resolver.portIndex(links[0].Src)
				actions = append(actions, Alias{Dest: portIdx, Src: srcIdx})

			default:
				actions = append(actions, Alias{Dest: portIdx, Src: -1})
			}
		}
	})

	return actions
}

// isAliasable reports whether a single link targeting a port qualifies for
// zero-copy aliasing in this scope's prep pass.
func isAliasable(link *synth.Link, scopeModules universe.Subset[*synth.Module], restrictSameScope bool) bool {
	if !link.IsSimple() {
		return false
	}

	if !restrictSameScope {
		return true
	}

	return scopeModules.Contains(link.Src.Owner.Module)
}

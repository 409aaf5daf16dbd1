package planner

// Plan is a compiled, immutable action sequence for one patch applied to a
// timbre. It is installed via a single atomic pointer swap and never
// mutated afterwards; a new patch produces a new Plan entirely (spec §5).
type Plan struct {
	Resolver *Resolver

	TPrep   []Action
	VPrep   []Action
	PreRun  []Action
	VRun    []Action
	PostRun []Action
}

package planner

import (
	"github.com/kbob/synthplan/pkg/plannererr"
	"github.com/kbob/synthplan/pkg/synth"
	"github.com/kbob/synthplan/pkg/universe"
)

// collectUsedControls finds every control reached via a link's ctl field and
// assigns it to the timbre or voice used-control set according to its
// declared scope (spec §4.5). Modules reached only by src never add a
// control, since src cannot be owned by a Control (see buildGraph).
func collectUsedControls(resolver *Resolver, patch *synth.Patch) (usedT, usedV universe.Subset[*synth.Control], err error) {
	usedT = resolver.Controls.None()
	usedV = resolver.Controls.None()

	for _, link := range patch.Links {
		if link.Ctl == nil || link.Ctl.Owner.Kind != synth.OwnerIsControl {
			continue
		}

		ctl := link.Ctl.Owner.Control

		idx := resolver.Controls.Find(ctl)
		if idx < 0 {
			return usedT, usedV, &plannererr.UnboundControlError{Control: ctl}
		}

		if resolver.isTimbreControlIndex(idx) {
			usedT.AddIndex(idx)
		} else {
			usedV.AddIndex(idx)
		}
	}

	return usedT, usedV, nil
}

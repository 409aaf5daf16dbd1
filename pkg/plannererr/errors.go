// Package plannererr defines the typed errors the planner can surface.
// All of them are planner-time (never raised during plan execution, per
// spec §7); each carries the offending entity for diagnostics.
//
// Grounded on the teacher's struct-with-Error()-method idiom
// (pkg/sexp/error.go's SyntaxError, pkg/util/source/source_file.go's
// SyntaxError).
package plannererr

import (
	"fmt"
	"strings"

	"github.com/kbob/synthplan/pkg/synth"
)

// InvalidGraphError reports a link that references a port never declared on
// the synth being planned, or whose src is a control's output port (controls
// may only feed a link through its ctl field).
type InvalidGraphError struct {
	Link *synth.Link
	Port *synth.Port
}

func (e *InvalidGraphError) Error() string {
	if e.Port == e.Link.Src && e.Port.Owner.Kind == synth.OwnerIsControl {
		return fmt.Sprintf("invalid graph: link %s takes its src from control port %s", e.Link, e.Port)
	}

	return fmt.Sprintf("invalid graph: link %s references undeclared port %s", e.Link, e.Port)
}

// ScopeViolationError reports a forbidden cross-scope edge: a voice-scope
// module reachable from pre-voice, or a post-voice module reachable from
// voice in a way that breaks the pre/post disjointness invariant.
type ScopeViolationError struct {
	Reason string
}

func (e *ScopeViolationError) Error() string {
	return fmt.Sprintf("scope violation: %s", e.Reason)
}

// UnboundControlError reports a control reached via a link's ctl field that
// is not declared as either a timbre or voice control on the synth.
type UnboundControlError struct {
	Control *synth.Control
}

func (e *UnboundControlError) Error() string {
	return fmt.Sprintf("unbound control: %s is not declared on this synth", e.Control)
}

// CycleError reports that a scope's module graph could not be fully
// linearized: some non-empty remainder had no module whose predecessors
// were all already scheduled.
type CycleError struct {
	Modules []*synth.Module
}

func (e *CycleError) Error() string {
	names := make([]string, len(e.Modules))
	for i, m := range e.Modules {
		names[i] = m.Name
	}

	return fmt.Sprintf("cycle detected: no module in {%s} has all predecessors scheduled",
		strings.Join(names, ", "))
}

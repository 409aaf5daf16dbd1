package synth

// Link is a directed edge contributing to an input port:
//
//	dest += scale * (src ⊕ ctl)
//
// where ⊕ is multiplication when both src and ctl are present and identity
// when only one is present. A link always has at least one of src or ctl;
// PatchBuilder.Connect rejects the degenerate case of neither.
type Link struct {
	Dest  *Port
	Src   *Port
	Ctl   *Port
	Scale float64
}

// IsSimple reports whether this link qualifies for zero-copy aliasing: it
// has a source, no control, matching src/dest kinds, and unit scale.
func (l *Link) IsSimple() bool {
	return l.Src != nil &&
		l.Ctl == nil &&
		l.Src.Kind == l.Dest.Kind &&
		l.Scale == 1
}

func (l *Link) String() string {
	switch {
	case l.Src != nil && l.Ctl != nil:
		return "Link(" + l.Dest.String() + ", " + l.Src.String() + ", " + l.Ctl.String() + ")"
	case l.Src != nil:
		return "Link(" + l.Dest.String() + ", " + l.Src.String() + ")"
	case l.Ctl != nil:
		return "Link(" + l.Dest.String() + ", -, " + l.Ctl.String() + ")"
	default:
		return "Link(" + l.Dest.String() + ")"
	}
}

package planner

import (
	"github.com/kbob/synthplan/pkg/plannererr"
	"github.com/kbob/synthplan/pkg/relation"
	"github.com/kbob/synthplan/pkg/synth"
	"github.com/kbob/synthplan/pkg/universe"
)

// Graph is the set of relations the graph builder emits from a patch's
// links (spec §4.3): which module depends on which, which port draws from
// which, and which links feed which port.
type Graph struct {
	ModPred     *relation.Relation[*synth.Module, *synth.Module]
	PortSources *relation.Relation[*synth.Port, *synth.Port]
	Links       *universe.Universe[*synth.Link]
	LinksTo     *relation.Relation[*synth.Port, *synth.Link]
}

// buildGraph validates every link against the resolver's declared ports and
// builds mod_predecessors, port_sources, and links_to.
//
// mod_predecessors is typed Modules -> Modules (spec §4.3), so a link whose
// src is owned by a Control -- rather than fed through ctl, the field meant
// for controls -- cannot be represented in it; this planner treats that case
// as an InvalidGraph error rather than silently dropping the edge.
func buildGraph(resolver *Resolver, patch *synth.Patch) (*Graph, error) {
	links := universe.New(patch.Links...)

	modPred := relation.New(resolver.Modules, resolver.Modules)
	portSources := relation.New(resolver.Ports, resolver.Ports)
	linksTo := relation.New(resolver.Ports, links)

	for _, link := range patch.Links {
		if resolver.Ports.Find(link.Dest) < 0 {
			return nil, &plannererr.InvalidGraphError{Link: link, Port: link.Dest}
		}

		if link.Src != nil {
			if resolver.Ports.Find(link.Src) < 0 {
				return nil, &plannererr.InvalidGraphError{Link: link, Port: link.Src}
			}

			if link.Src.Owner.Kind != synth.OwnerIsModule {
				return nil, &plannererr.InvalidGraphError{Link: link, Port: link.Src}
			}
		}

		if link.Ctl != nil && resolver.Ports.Find(link.Ctl) < 0 {
			return nil, &plannererr.InvalidGraphError{Link: link, Port: link.Ctl}
		}

		dest := link.Dest.Owner.Module

		if link.Src != nil {
			modPred.Add(dest, link.Src.Owner.Module)
			portSources.Add(link.Dest, link.Src)
		}

		if link.Ctl != nil {
			if link.Ctl.Owner.Kind == synth.OwnerIsModule {
				modPred.Add(dest, link.Ctl.Owner.Module)
			}
			portSources.Add(link.Dest, link.Ctl)
		}

		linksTo.Add(link.Dest, link)
	}

	return &Graph{
		ModPred:     modPred,
		PortSources: portSources,
		Links:       links,
		LinksTo:     linksTo,
	}, nil
}

package engine

import (
	"fmt"
	"sort"

	"wiregrid/core"
	"wiregrid/geometry"
	"wiregrid/pathfinding"
)

// RerouteResult reports the outcome of one re-route attempt. NewRoute is a
// detached copy; nothing is committed until the caller passes it to
// ReplaceWire.
type RerouteResult struct {
	WireID      string           `json:"wireId"`
	Success     bool             `json:"success"`
	NewRoute    *core.RoutedWire `json:"newRoute,omitempty"`
	Improvement float64          `json:"improvement"`
	Reason      string           `json:"reason,omitempty"`
}

// rerouteSets is the order in which strategy sets are tried when resolving a
// collision.
var rerouteSets = []pathfinding.StrategySet{
	pathfinding.SetMinimalBends,
	pathfinding.SetShortest,
	pathfinding.SetBalanced,
}

// RerouteCollidingWires attempts to resolve every high-severity collision by
// re-planning the implicated wires with each strategy set and keeping the
// highest-quality alternative. Inputs are not mutated; each result carries a
// detached replacement route, and a wire whose re-route fails is marked
// Unresolvable.
func (e *Engine) RerouteCollidingWires() []RerouteResult {
	collisions := e.DetectCollisions()

	implicated := make(map[string]bool)
	for _, c := range collisions {
		if c.Severity != core.SeverityHigh {
			continue
		}
		for _, id := range c.AffectedWires {
			implicated[id] = true
		}
	}

	var results []RerouteResult
	for _, id := range e.order {
		if !implicated[id] {
			continue
		}
		results = append(results, e.rerouteWire(*e.wires[id]))
	}
	return results
}

// rerouteWire re-plans one wire across all strategy sets. Components moved
// into a wire's path are hard obstacles for the new plan, so any found route
// resolves the collision even when its quality ends up below the old one.
func (e *Engine) rerouteWire(old core.RoutedWire) RerouteResult {
	// The wire's own marks must not block its alternatives. Restored below.
	e.grid.ClearWire(old.ID)
	defer e.grid.MarkWire(old.ID, old.Segments)

	best := core.RoutedWire{Quality: -1}
	found := false
	for _, set := range rerouteSets {
		w, ok := e.plan(old.Start, old.End, old.ID, old.Type, set)
		if ok && w.Quality > best.Quality {
			best = w
			found = true
		}
	}

	if !found {
		e.wires[old.ID].State = core.StateUnresolvable
		return RerouteResult{
			WireID: old.ID,
			Reason: fmt.Sprintf("no clear route between (%d,%d) and (%d,%d)",
				old.Start.X, old.Start.Y, old.End.X, old.End.Y),
		}
	}

	route := best.Clone()
	return RerouteResult{
		WireID:      old.ID,
		Success:     true,
		NewRoute:    &route,
		Improvement: best.Quality - old.Quality,
	}
}

// OptimizeWireLayout re-routes every registered wire from scratch: wire marks
// are cleared, wires are sorted shortest-first so short connections claim
// direct paths before longer ones compete for the same cells, and each is
// re-planned in that order. The engine's own state is left untouched; the
// returned set is the full replacement, for the caller to commit wire by
// wire.
func (e *Engine) OptimizeWireLayout() []core.RoutedWire {
	wires := e.Wires()
	sort.SliceStable(wires, func(i, j int) bool {
		di := geometry.ManhattanDistance(wires[i].Start, wires[i].End)
		dj := geometry.ManhattanDistance(wires[j].Start, wires[j].End)
		return di < dj
	})

	e.grid.ClearAllWires()
	replacements := make([]core.RoutedWire, 0, len(wires))
	for _, w := range wires {
		r, ok := e.plan(w.Start, w.End, w.ID, w.Type, e.cfg.DefaultSet)
		if !ok {
			r = fallbackWire(w.Start, w.End, w.ID, w.Type, e.cfg.Pathfinding.FallbackQuality)
		}
		e.grid.MarkWire(r.ID, r.Segments)
		replacements = append(replacements, r)
	}

	// Restore the registry's committed marks.
	e.grid.ClearAllWires()
	for _, id := range e.order {
		e.grid.MarkWire(id, e.wires[id].Segments)
	}

	return replacements
}

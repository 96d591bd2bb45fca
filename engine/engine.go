// Package engine owns the live routing state for one diagram: the obstacle
// grid, the wire registry and the planner. One engine instance per diagram,
// single-owner, no internal locking; callers invoke operations serially and
// receive defensive copies.
package engine

import (
	"github.com/google/uuid"

	"wiregrid/collision"
	"wiregrid/core"
	"wiregrid/grid"
	"wiregrid/pathfinding"
)

// Config carries the engine's tunables.
type Config struct {
	GridSize       int
	ObstacleBuffer int
	Pathfinding    pathfinding.Config
	DefaultSet     pathfinding.StrategySet
	Collision      collision.Config
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:       10,
		ObstacleBuffer: 2,
		Pathfinding:    pathfinding.DefaultConfig(),
		DefaultSet:     pathfinding.SetBalanced,
		Collision:      collision.DefaultConfig(),
	}
}

// Engine routes wires around component obstacles and tracks every routed
// wire's lifecycle state.
type Engine struct {
	cfg      Config
	grid     *grid.Grid
	planner  *pathfinding.Planner
	detector *collision.Detector

	wires      map[string]*core.RoutedWire
	order      []string // insertion order, for deterministic iteration
	components []core.ComponentBounds
	canvas     core.Rect
}

// New creates an engine for one diagram.
func New(cfg Config) *Engine {
	if cfg.GridSize <= 0 {
		cfg.GridSize = DefaultConfig().GridSize
	}
	if cfg.DefaultSet == "" {
		cfg.DefaultSet = pathfinding.SetBalanced
	}
	if cfg.Pathfinding.FallbackQuality <= 0 {
		cfg.Pathfinding.FallbackQuality = pathfinding.DefaultConfig().FallbackQuality
	}
	return &Engine{
		cfg:      cfg,
		grid:     grid.New(cfg.GridSize, cfg.ObstacleBuffer),
		planner:  pathfinding.NewPlanner(cfg.Pathfinding),
		detector: collision.NewDetector(cfg.Collision),
		wires:    make(map[string]*core.RoutedWire),
	}
}

// Grid exposes the obstacle grid for read-only inspection, e.g. the ASCII
// visualizer.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// SetObstacles replaces the obstacle snapshot. The full cell matrix is
// rebuilt from scratch; registered wires keep their marks.
func (e *Engine) SetObstacles(components []core.ComponentBounds, canvasBounds core.Rect) {
	e.components = append([]core.ComponentBounds(nil), components...)
	e.canvas = canvasBounds
	e.grid.SetObstacles(components, canvasBounds)
}

// RouteWire plans a route between the two points, registers the result under
// the given id (a fresh id is generated when empty) and returns a copy.
// Routing never fails: when every strategy comes up empty, the result is a
// single direct segment between the original points with minimal quality.
func (e *Engine) RouteWire(start, end core.Point, id string, connType core.ConnectionType) core.RoutedWire {
	if id == "" {
		id = uuid.NewString()
	}
	// A wire being re-routed must not block itself.
	e.grid.ClearWire(id)

	wire, ok := e.plan(start, end, id, connType, e.cfg.DefaultSet)
	if !ok {
		wire = fallbackWire(start, end, id, connType, e.cfg.Pathfinding.FallbackQuality)
	}
	e.register(wire)
	return wire.Clone()
}

// plan snaps the endpoints, runs the strategy set and builds a RoutedWire.
// It does not touch the registry or the grid's wire marks, and reports false
// when every strategy fails.
func (e *Engine) plan(start, end core.Point, id string, connType core.ConnectionType, set pathfinding.StrategySet) (core.RoutedWire, bool) {
	s := e.grid.Snap(start)
	t := e.grid.Snap(end)
	exempt := e.endpointRects(s, t)

	req := pathfinding.Request{
		Start:       s,
		End:         t,
		Step:        e.cfg.GridSize,
		Bounds:      e.grid.Bounds(),
		Blocked:     e.grid.BlockedHard(exempt),
		BlockedSoft: e.grid.BlockedWithWires(id, exempt),
		Crossing:    e.grid.CrossingForWire(id),
	}

	cand, ok := e.planner.Run(set, req)
	if !ok {
		return core.RoutedWire{}, false
	}

	segments := core.SegmentsFromPath(cand.Path.Points)
	return core.RoutedWire{
		ID:          id,
		Start:       s,
		End:         t,
		Path:        cand.Path.Points,
		Segments:    segments,
		TotalLength: core.TotalLengthOf(segments),
		BendCount:   core.BendCountOf(segments),
		Quality:     cand.Quality,
		Type:        connType,
		State:       core.StateRouted,
	}, true
}

// fallbackWire synthesizes the never-fail direct segment between the
// original, unsnapped points.
func fallbackWire(start, end core.Point, id string, connType core.ConnectionType, quality float64) core.RoutedWire {
	segments := []core.WireSegment{{Start: start, End: end}}
	return core.RoutedWire{
		ID:          id,
		Start:       start,
		End:         end,
		Path:        []core.Point{start, end},
		Segments:    segments,
		TotalLength: core.TotalLengthOf(segments),
		BendCount:   0,
		Quality:     quality,
		Type:        connType,
		State:       core.StateRouted,
	}
}

// endpointRects collects the expanded bounds of the components owning the
// wire's endpoints, so a wire may leave and enter its own terminals without
// tripping the obstacle check.
func (e *Engine) endpointRects(points ...core.Point) []core.Rect {
	var rects []core.Rect
	for _, comp := range e.components {
		if comp.Bounds.Empty() {
			continue
		}
		r := comp.Bounds.Expand(e.cfg.ObstacleBuffer + e.cfg.GridSize)
		for _, p := range points {
			if r.Contains(p) {
				rects = append(rects, comp.Bounds.Expand(e.cfg.ObstacleBuffer))
				break
			}
		}
	}
	return rects
}

// register commits a wire into the registry and marks its cells.
func (e *Engine) register(w core.RoutedWire) {
	if _, exists := e.wires[w.ID]; !exists {
		e.order = append(e.order, w.ID)
	}
	c := w.Clone()
	e.wires[w.ID] = &c
	e.grid.MarkWire(w.ID, c.Segments)
}

// Wire returns a copy of the registered wire with the given id.
func (e *Engine) Wire(id string) (core.RoutedWire, bool) {
	w, ok := e.wires[id]
	if !ok {
		return core.RoutedWire{}, false
	}
	return w.Clone(), true
}

// Wires returns copies of all registered wires in insertion order.
func (e *Engine) Wires() []core.RoutedWire {
	out := make([]core.RoutedWire, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.wires[id].Clone())
	}
	return out
}

// RemoveWire deletes a wire from the registry and clears its grid marks.
// The returned copy carries the terminal Removed state.
func (e *Engine) RemoveWire(id string) (core.RoutedWire, bool) {
	w, ok := e.wires[id]
	if !ok {
		return core.RoutedWire{}, false
	}
	removed := w.Clone()
	removed.State = core.StateRemoved

	delete(e.wires, id)
	for i, wid := range e.order {
		if wid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	e.grid.ClearWire(id)
	return removed, true
}

// ReplaceWire commits a replacement route produced by RerouteCollidingWires
// or OptimizeWireLayout. The wire must already be registered.
func (e *Engine) ReplaceWire(w core.RoutedWire) bool {
	if _, ok := e.wires[w.ID]; !ok {
		return false
	}
	w.State = core.StateRouted
	e.grid.ClearWire(w.ID)
	e.register(w)
	return true
}

// DetectCollisions runs the collision pass over the current wires and
// obstacle snapshot, and updates wire states: implicated wires move to
// Colliding, previously colliding wires with no remaining hits return to
// Routed. Unresolvable wires keep their state until re-routed.
func (e *Engine) DetectCollisions() []core.CollisionResult {
	results := e.detector.DetectAll(e.Wires(), e.components)

	affected := make(map[string]bool)
	for _, r := range results {
		for _, id := range r.AffectedWires {
			affected[id] = true
		}
	}
	for _, id := range e.order {
		w := e.wires[id]
		switch {
		case affected[id] && w.State == core.StateRouted:
			w.State = core.StateColliding
		case !affected[id] && w.State == core.StateColliding:
			w.State = core.StateRouted
		}
	}
	return results
}

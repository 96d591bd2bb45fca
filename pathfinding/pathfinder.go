// Package pathfinding provides the routing strategies used by the wire
// engine: direct minimal-bend shortcuts, A* graph search, a Dijkstra
// shortest-path baseline and a grid-aligned variant.
package pathfinding

import (
	"wiregrid/core"
	"wiregrid/geometry"
)

// PathCost defines the cost model shared by the search strategies.
type PathCost struct {
	StraightCost int // Base cost for one grid step
	BendCost     int // Penalty for changing direction
	CrossingCost int // Penalty for stepping onto another wire's cell
}

// DefaultPathCost provides reasonable defaults for path finding. The
// constants are hand-tuned; treat them as configuration, not invariants.
var DefaultPathCost = PathCost{
	StraightCost: 10,
	BendCost:     20,
	CrossingCost: 50,
}

// MinimalBendPathCost punishes turns heavily, for the minimal_bends
// strategy set.
var MinimalBendPathCost = PathCost{
	StraightCost: 10,
	BendCost:     60,
	CrossingCost: 50,
}

// ShortestPathCost ignores turns entirely, for the shortest strategy set.
var ShortestPathCost = PathCost{
	StraightCost: 10,
	BendCost:     0,
	CrossingCost: 50,
}

// Config carries the planner's tunables.
type Config struct {
	Costs           PathCost
	BendPenalty     float64 // quality deduction per bend
	FallbackQuality float64 // quality assigned to the direct fallback segment
	MaxIterations   int     // node-expansion cap per search
	DijkstraMargin  int     // search-region margin around the endpoints, in grid steps
}

// DefaultConfig returns the default planner configuration.
func DefaultConfig() Config {
	return Config{
		Costs:           DefaultPathCost,
		BendPenalty:     0.1,
		FallbackQuality: 0.1,
		MaxIterations:   50000,
		DijkstraMargin:  20,
	}
}

// Request describes one routing problem in snapped canvas coordinates.
// Blocked covers hard obstacles and the canvas boundary; BlockedSoft
// additionally treats other wires' cells as blocked; Crossing reports wire
// cells only, for strategies that charge a penalty instead of refusing.
type Request struct {
	Start, End  core.Point
	Step        int // grid resolution; every move advances one step
	Bounds      core.Rect
	Blocked     func(core.Point) bool
	BlockedSoft func(core.Point) bool
	Crossing    func(core.Point) bool
}

// Direction represents a movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirEast
	DirSouth
	DirWest
)

// GetDirection returns the direction from p1 to p2.
func GetDirection(p1, p2 core.Point) Direction {
	if p1.X == p2.X {
		if p1.Y < p2.Y {
			return DirSouth
		}
		if p1.Y > p2.Y {
			return DirNorth
		}
	} else if p1.Y == p2.Y {
		if p1.X < p2.X {
			return DirEast
		}
		return DirWest
	}
	return DirNone
}

// neighbors returns the 4-connected neighbors of a point at the given step.
func neighbors(p core.Point, step int) [4]core.Point {
	return [4]core.Point{
		{X: p.X, Y: p.Y - step}, // North
		{X: p.X + step, Y: p.Y}, // East
		{X: p.X, Y: p.Y + step}, // South
		{X: p.X - step, Y: p.Y}, // West
	}
}

// neighborsToward orders the 4-connected neighbors so the axes are explored
// symmetrically when the goal lies diagonally. This keeps equal-cost searches
// deterministic and free of directional bias.
func neighborsToward(p, goal core.Point, step int) [4]core.Point {
	dx := goal.X - p.X
	dy := goal.Y - p.Y

	var horiz, vert, backH, backV core.Point
	if dx >= 0 {
		horiz = core.Point{X: p.X + step, Y: p.Y}
		backH = core.Point{X: p.X - step, Y: p.Y}
	} else {
		horiz = core.Point{X: p.X - step, Y: p.Y}
		backH = core.Point{X: p.X + step, Y: p.Y}
	}
	if dy >= 0 {
		vert = core.Point{X: p.X, Y: p.Y + step}
		backV = core.Point{X: p.X, Y: p.Y - step}
	} else {
		vert = core.Point{X: p.X, Y: p.Y - step}
		backV = core.Point{X: p.X, Y: p.Y + step}
	}

	if geometry.Abs(dx) >= geometry.Abs(dy) {
		return [4]core.Point{horiz, vert, backV, backH}
	}
	return [4]core.Point{vert, horiz, backH, backV}
}

// SimplifyPath removes intermediate waypoints along straight runs.
func SimplifyPath(path core.Path) core.Path {
	if len(path.Points) <= 2 {
		return path
	}

	simplified := []core.Point{path.Points[0]}
	for i := 1; i < len(path.Points)-1; i++ {
		if !isAligned(path.Points[i-1], path.Points[i], path.Points[i+1]) {
			simplified = append(simplified, path.Points[i])
		}
	}
	simplified = append(simplified, path.Points[len(path.Points)-1])

	return core.Path{Points: simplified, Cost: path.Cost}
}

// isAligned checks if three points are aligned horizontally or vertically.
func isAligned(p1, p2, p3 core.Point) bool {
	if p1.Y == p2.Y && p2.Y == p3.Y {
		return true
	}
	if p1.X == p2.X && p2.X == p3.X {
		return true
	}
	return false
}

// Quality scores a route against its theoretical direct path:
//
//	quality = min(1, direct/total * max(0, 1 - bends*penalty))
//
// A single unbent segment matching the direct Manhattan distance scores 1.0;
// detours and bends reduce the score monotonically within [0,1].
func Quality(start, end core.Point, segments []core.WireSegment, bendPenalty float64) float64 {
	total := core.TotalLengthOf(segments)
	if total == 0 {
		return 1.0
	}

	direct := geometry.ManhattanDistance(start, end)
	bends := core.BendCountOf(segments)

	q := float64(direct) / float64(total)
	factor := 1.0 - float64(bends)*bendPenalty
	if factor < 0 {
		factor = 0
	}
	q *= factor

	if q > 1 {
		q = 1
	}
	if q < 0 {
		q = 0
	}
	return q
}

// segmentClear walks an orthogonal segment one step at a time and reports
// whether every visited point is free. Non-orthogonal segments always fail.
func segmentClear(start, end core.Point, step int, blocked func(core.Point) bool) bool {
	if start.X != end.X && start.Y != end.Y {
		return false
	}
	if blocked(start) {
		return false
	}

	dx := sign(end.X-start.X) * step
	dy := sign(end.Y-start.Y) * step

	cur := start
	for cur != end {
		if cur.X != end.X {
			cur.X += clampStep(dx, end.X-cur.X)
		}
		if cur.Y != end.Y {
			cur.Y += clampStep(dy, end.Y-cur.Y)
		}
		if blocked(cur) {
			return false
		}
	}
	return true
}

// clampStep shortens the final step when the remaining distance is smaller
// than one grid unit, so unaligned endpoints still terminate.
func clampStep(step, remaining int) int {
	if geometry.Abs(step) <= geometry.Abs(remaining) {
		return step
	}
	return remaining
}

func sign(d int) int {
	if d > 0 {
		return 1
	}
	if d < 0 {
		return -1
	}
	return 0
}

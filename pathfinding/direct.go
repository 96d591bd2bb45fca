package pathfinding

import (
	"wiregrid/core"
	"wiregrid/geometry"
)

// findDirect tries the cheap few-bend shortcuts before any graph search is
// attempted: both orientations of an L-shaped route through the two corner
// candidates, then Z-shaped routes through the midpoint in both orderings.
// Every leg is validated cell by cell against hard obstacles and existing
// wire cells.
func findDirect(req Request) (core.Path, bool) {
	start, end := req.Start, req.End
	blocked := req.BlockedSoft
	if blocked == nil {
		blocked = req.Blocked
	}

	if start == end {
		return core.Path{Points: []core.Point{start}}, true
	}

	// Straight shot when the endpoints share an axis.
	if start.X == end.X || start.Y == end.Y {
		if segmentClear(start, end, req.Step, blocked) {
			return core.Path{Points: []core.Point{start, end}}, true
		}
		return core.Path{}, false
	}

	// L-shaped: horizontal-first, then vertical-first.
	for _, corner := range []core.Point{
		{X: end.X, Y: start.Y},
		{X: start.X, Y: end.Y},
	} {
		if segmentClear(start, corner, req.Step, blocked) &&
			segmentClear(corner, end, req.Step, blocked) {
			return core.Path{Points: []core.Point{start, corner, end}}, true
		}
	}

	// Z-shaped through the midpoint, snapped back onto the grid.
	midX := geometry.SnapToGrid((start.X+end.X)/2, req.Step)
	midY := geometry.SnapToGrid((start.Y+end.Y)/2, req.Step)

	zRoutes := [][]core.Point{
		{start, {X: midX, Y: start.Y}, {X: midX, Y: end.Y}, end},
		{start, {X: start.X, Y: midY}, {X: end.X, Y: midY}, end},
	}
	for _, route := range zRoutes {
		if routeClear(route, req.Step, blocked) {
			return core.Path{Points: route}, true
		}
	}

	return core.Path{}, false
}

// routeClear validates every leg of a waypoint route.
func routeClear(points []core.Point, step int, blocked func(core.Point) bool) bool {
	for i := 0; i < len(points)-1; i++ {
		if !segmentClear(points[i], points[i+1], step, blocked) {
			return false
		}
	}
	return true
}

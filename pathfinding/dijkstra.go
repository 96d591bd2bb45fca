package pathfinding

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"wiregrid/core"
	"wiregrid/geometry"
)

// findDijkstra runs a uniform-cost search over a bounded region of the grid,
// built as a weighted directed graph. It serves as the shortest-path quality
// baseline in the balanced strategy set: no bend penalty, only step and
// crossing costs.
//
// The search region is the endpoints' bounding box expanded by a fixed margin
// rather than the whole canvas; routes that would detour further than the
// margin are out of reach, which is the accepted trade for not rebuilding a
// canvas-sized distance table on every call.
func findDijkstra(req Request, costs PathCost, marginSteps int) (core.Path, bool) {
	if req.Start == req.End {
		return core.Path{Points: []core.Point{req.Start}}, true
	}
	if req.Blocked(req.Start) || req.Blocked(req.End) {
		return core.Path{}, false
	}

	region := searchRegion(req, marginSteps)
	cols := region.Width/req.Step + 1
	rows := region.Height/req.Step + 1
	if cols <= 0 || rows <= 0 {
		return core.Path{}, false
	}

	nodeID := func(p core.Point) int64 {
		col := (p.X - region.X) / req.Step
		row := (p.Y - region.Y) / req.Step
		return int64(row)*int64(cols) + int64(col)
	}
	pointOf := func(id int64) core.Point {
		return core.Point{
			X: region.X + int(id%int64(cols))*req.Step,
			Y: region.Y + int(id/int64(cols))*req.Step,
		}
	}
	inRegion := func(p core.Point) bool {
		return p.X >= region.X && p.X <= region.X+region.Width &&
			p.Y >= region.Y && p.Y <= region.Y+region.Height
	}

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			from := core.Point{
				X: region.X + col*req.Step,
				Y: region.Y + row*req.Step,
			}
			if req.Blocked(from) {
				continue
			}
			for _, to := range neighbors(from, req.Step) {
				if !inRegion(to) || req.Blocked(to) {
					continue
				}
				w := float64(costs.StraightCost)
				if req.Crossing != nil && req.Crossing(to) {
					w += float64(costs.CrossingCost)
				}
				g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(nodeID(from)),
					T: simple.Node(nodeID(to)),
					W: w,
				})
			}
		}
	}

	startID := nodeID(req.Start)
	endID := nodeID(req.End)
	if g.Node(startID) == nil || g.Node(endID) == nil {
		return core.Path{}, false
	}

	shortest := path.DijkstraFrom(g.Node(startID), g)
	nodes, weight := shortest.To(endID)
	if math.IsInf(weight, 1) || len(nodes) == 0 {
		return core.Path{}, false
	}

	points := make([]core.Point, len(nodes))
	for i, n := range nodes {
		points[i] = pointOf(n.ID())
	}
	return core.Path{Points: points, Cost: int(weight)}, true
}

// searchRegion bounds the Dijkstra graph to the endpoints' snapped bounding
// box plus margin, clipped to the canvas.
func searchRegion(req Request, marginSteps int) core.Rect {
	margin := marginSteps * req.Step

	minX := geometry.Min(req.Start.X, req.End.X) - margin
	maxX := geometry.Max(req.Start.X, req.End.X) + margin
	minY := geometry.Min(req.Start.Y, req.End.Y) - margin
	maxY := geometry.Max(req.Start.Y, req.End.Y) + margin

	if !req.Bounds.Empty() {
		minX = geometry.Max(minX, req.Bounds.X)
		minY = geometry.Max(minY, req.Bounds.Y)
		maxX = geometry.Min(maxX, req.Bounds.X+req.Bounds.Width-1)
		maxY = geometry.Min(maxY, req.Bounds.Y+req.Bounds.Height-1)
	}

	// Align the region origin to the step so node positions stay snapped.
	minX = geometry.SnapToGrid(minX, req.Step)
	minY = geometry.SnapToGrid(minY, req.Step)

	return core.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

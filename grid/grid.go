// Package grid discretizes the canvas into fixed-size cells and tracks which
// of them are blocked by components or occupied by routed wires.
package grid

import (
	"wiregrid/core"
	"wiregrid/geometry"
)

// CellState describes what occupies a grid cell.
type CellState uint8

const (
	// CellFree is an empty, routable cell.
	CellFree CellState = iota
	// CellObstacle is blocked by a component's buffered bounds.
	CellObstacle
	// CellWire is occupied by one or more routed wires. Wire cells are soft
	// obstacles: new routes avoid them by default but may cross them at a
	// penalty where a junction is acceptable.
	CellWire
)

// cell is the canonical integer grid key: canvas coordinate / gridSize.
// Keying on cell indices rather than raw coordinates avoids any equality
// trouble with snapped positions.
type cell struct {
	Col, Row int
}

// Grid is the rasterized obstacle map for one diagram. It is rebuilt in full
// on every SetObstacles call; wire markings are layered on top and can be
// cleared per wire.
type Grid struct {
	gridSize int
	buffer   int // obstacle buffer in canvas units
	bounds   core.Rect
	cols     int
	rows     int
	blocked  map[cell]bool
	// wires maps each occupied cell to the ids of the wires passing through
	// it, and perWire remembers every cell a wire touched so clearing is O(n)
	// in the wire's own length. segments keeps each wire's geometry so marks
	// can be re-derived when the canvas origin or size changes.
	wires    map[cell][]string
	perWire  map[string][]cell
	segments map[string][]core.WireSegment
}

// New creates an empty grid. SetObstacles must be called before routing.
func New(gridSize, buffer int) *Grid {
	if gridSize < 1 {
		gridSize = 1
	}
	return &Grid{
		gridSize: gridSize,
		buffer:   buffer,
		blocked:  make(map[cell]bool),
		wires:    make(map[cell][]string),
		perWire:  make(map[string][]cell),
		segments: make(map[string][]core.WireSegment),
	}
}

// GridSize returns the cell resolution in canvas units.
func (g *Grid) GridSize() int { return g.gridSize }

// Bounds returns the canvas rectangle the grid spans.
func (g *Grid) Bounds() core.Rect { return g.bounds }

// SetObstacles rebuilds the obstacle layer from a component snapshot. Each
// component's bounds, expanded by the obstacle buffer, is rasterized as
// blocked. Zero-area bounds are skipped. Existing wire markings survive the
// rebuild: they are re-rasterized from each wire's retained segments, so the
// marks stay put even when the canvas origin moves between snapshots.
func (g *Grid) SetObstacles(components []core.ComponentBounds, canvasBounds core.Rect) {
	g.bounds = canvasBounds
	g.cols = canvasBounds.Width/g.gridSize + 1
	g.rows = canvasBounds.Height/g.gridSize + 1
	g.blocked = make(map[cell]bool)

	for _, comp := range components {
		if comp.Bounds.Empty() {
			continue
		}
		g.rasterize(comp.Bounds.Expand(g.buffer))
	}

	// Clear and re-mark wires so stale cells from a previous canvas size or
	// origin cannot linger.
	remark := g.segments
	g.wires = make(map[cell][]string)
	g.perWire = make(map[string][]cell)
	g.segments = make(map[string][]core.WireSegment)
	for id, segs := range remark {
		g.MarkWire(id, segs)
	}
}

// rasterize marks every cell covered by the rectangle as blocked.
func (g *Grid) rasterize(r core.Rect) {
	minC := g.cellOf(core.Point{X: r.X, Y: r.Y})
	maxC := g.cellOf(core.Point{X: r.X + r.Width - 1, Y: r.Y + r.Height - 1})
	for row := geometry.Max(minC.Row, 0); row <= geometry.Min(maxC.Row, g.rows-1); row++ {
		for col := geometry.Max(minC.Col, 0); col <= geometry.Min(maxC.Col, g.cols-1); col++ {
			g.blocked[cell{Col: col, Row: row}] = true
		}
	}
}

// MarkWire rasterizes a wire's segments as soft wire cells. Any previous
// marking for the same id is cleared first.
func (g *Grid) MarkWire(id string, segments []core.WireSegment) {
	g.ClearWire(id)
	for _, seg := range segments {
		g.walkSegment(seg, func(c cell) {
			g.markCell(id, c)
		})
	}
	g.segments[id] = append([]core.WireSegment(nil), segments...)
}

// ClearWire removes a single wire's cells from the grid.
func (g *Grid) ClearWire(id string) {
	for _, c := range g.perWire[id] {
		ids := g.wires[c]
		for i, wid := range ids {
			if wid == id {
				g.wires[c] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
		if len(g.wires[c]) == 0 {
			delete(g.wires, c)
		}
	}
	delete(g.perWire, id)
	delete(g.segments, id)
}

// ClearAllWires drops every wire marking, leaving only component obstacles.
func (g *Grid) ClearAllWires() {
	g.wires = make(map[cell][]string)
	g.perWire = make(map[string][]cell)
	g.segments = make(map[string][]core.WireSegment)
}

// Snap rounds a canvas point to the nearest grid multiple, clamped into the
// canvas when it falls outside. When the canvas dimension is not itself a
// grid multiple, the nearest multiple for an edge-adjacent point can land
// one cell past the lattice; that coordinate is pulled back a step so
// snapping never produces an unroutable endpoint.
func (g *Grid) Snap(p core.Point) core.Point {
	if g.bounds.Empty() {
		return geometry.SnapPoint(p, g.gridSize)
	}
	if !g.bounds.Contains(p) {
		p = geometry.ClampToRect(p, g.bounds)
	}
	s := geometry.SnapPoint(p, g.gridSize)
	c := g.cellOf(s)
	if c.Col >= g.cols {
		s.X -= g.gridSize
	} else if c.Col < 0 {
		s.X += g.gridSize
	}
	if c.Row >= g.rows {
		s.Y -= g.gridSize
	} else if c.Row < 0 {
		s.Y += g.gridSize
	}
	return s
}

// StateAt returns what occupies the cell containing the given canvas point.
// Points outside the canvas report CellObstacle.
func (g *Grid) StateAt(p core.Point) CellState {
	c, ok := g.cellInBounds(p)
	if !ok {
		return CellObstacle
	}
	if g.blocked[c] {
		return CellObstacle
	}
	if len(g.wires[c]) > 0 {
		return CellWire
	}
	return CellFree
}

// WireAt reports whether any wire other than exceptID occupies the cell
// containing p.
func (g *Grid) WireAt(p core.Point, exceptID string) bool {
	c, ok := g.cellInBounds(p)
	if !ok {
		return false
	}
	for _, id := range g.wires[c] {
		if id != exceptID {
			return true
		}
	}
	return false
}

// BlockedHard returns an obstacle checker over component cells and the
// canvas boundary. Rectangles in exempt are ignored so a wire may start and
// end inside its own endpoints' components. Wire cells do not block.
func (g *Grid) BlockedHard(exempt []core.Rect) func(core.Point) bool {
	return func(p core.Point) bool {
		c, ok := g.cellInBounds(p)
		if !ok {
			return true
		}
		return g.blocked[c] && !inAny(p, exempt)
	}
}

// BlockedWithWires returns an obstacle checker that additionally treats
// other wires' cells as blocked. The direct strategies use it so a new route
// avoids existing wires outright rather than crossing them.
func (g *Grid) BlockedWithWires(exceptID string, exempt []core.Rect) func(core.Point) bool {
	hard := g.BlockedHard(exempt)
	return func(p core.Point) bool {
		return hard(p) || g.WireAt(p, exceptID)
	}
}

// CrossingForWire returns a soft-obstacle checker over other wires' cells,
// used by search strategies to charge a crossing penalty.
func (g *Grid) CrossingForWire(exceptID string) func(core.Point) bool {
	return func(p core.Point) bool {
		return g.WireAt(p, exceptID)
	}
}

func inAny(p core.Point, rects []core.Rect) bool {
	for _, r := range rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// walkSegment visits every cell along an orthogonal segment, stepping one
// grid unit at a time. Diagonal fallback segments are visited by their cell
// bounding staircase.
func (g *Grid) walkSegment(seg core.WireSegment, visit func(cell)) {
	cur := seg.Start
	end := seg.End

	dx := step(end.X - cur.X)
	dy := step(end.Y - cur.Y)

	for {
		if c, ok := g.cellInBounds(cur); ok {
			visit(c)
		}
		if cur == end {
			return
		}
		if cur.X != end.X {
			cur.X += dx * geometry.Min(g.gridSize, geometry.Abs(end.X-cur.X))
		}
		if cur.Y != end.Y {
			cur.Y += dy * geometry.Min(g.gridSize, geometry.Abs(end.Y-cur.Y))
		}
	}
}

func (g *Grid) markCell(id string, c cell) {
	for _, wid := range g.wires[c] {
		if wid == id {
			return
		}
	}
	g.wires[c] = append(g.wires[c], id)
	g.perWire[id] = append(g.perWire[id], c)
}

// cellOf maps a canvas point to its cell index without bounds checking.
func (g *Grid) cellOf(p core.Point) cell {
	return cell{
		Col: floorDiv(p.X-g.bounds.X, g.gridSize),
		Row: floorDiv(p.Y-g.bounds.Y, g.gridSize),
	}
}

func (g *Grid) cellInBounds(p core.Point) (cell, bool) {
	c := g.cellOf(p)
	if c.Col < 0 || c.Col >= g.cols || c.Row < 0 || c.Row >= g.rows {
		return cell{}, false
	}
	return c, true
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func step(d int) int {
	if d > 0 {
		return 1
	}
	if d < 0 {
		return -1
	}
	return 0
}

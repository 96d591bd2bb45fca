// Package core contains the fundamental types used throughout the wiregrid
// routing engine.
package core

// Point represents a 2D coordinate on the canvas, in canvas units.
// Planner inputs and outputs are always grid-aligned.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Expand grows the rectangle by the given amount on every side.
func (r Rect) Expand(by int) Rect {
	return Rect{
		X:      r.X - by,
		Y:      r.Y - by,
		Width:  r.Width + 2*by,
		Height: r.Height + 2*by,
	}
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// SegmentDirection is the orientation of a wire segment.
type SegmentDirection int

const (
	Horizontal SegmentDirection = iota
	Vertical
)

// String returns the string representation of a SegmentDirection.
func (d SegmentDirection) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// WireSegment is a single straight run of wire. Direction and length are
// derived from the endpoints, never set independently.
type WireSegment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Direction infers the orientation of the segment. A degenerate
// (single-point) segment reports Horizontal.
func (s WireSegment) Direction() SegmentDirection {
	if s.Start.X == s.End.X && s.Start.Y != s.End.Y {
		return Vertical
	}
	return Horizontal
}

// Length returns the Manhattan distance between the segment endpoints.
func (s WireSegment) Length() int {
	return abs(s.End.X-s.Start.X) + abs(s.End.Y-s.Start.Y)
}

// ConnectionType identifies the electrical class of a connection. It only
// affects rendering style upstream, never routing behaviour.
type ConnectionType string

const (
	ConnectionAC     ConnectionType = "ac"
	ConnectionDC     ConnectionType = "dc"
	ConnectionGround ConnectionType = "ground"
	ConnectionData   ConnectionType = "data"
)

// WireState tracks where a wire sits in its routing lifecycle.
type WireState int

const (
	StateUnrouted WireState = iota
	StateRouted
	StateColliding
	StateUnresolvable
	StateRemoved
)

// String returns the string representation of a WireState.
func (s WireState) String() string {
	switch s {
	case StateUnrouted:
		return "unrouted"
	case StateRouted:
		return "routed"
	case StateColliding:
		return "colliding"
	case StateUnresolvable:
		return "unresolvable"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// RoutedWire is a computed orthogonal route between two points.
//
// Invariants: Path begins at Start and ends at End, TotalLength is the sum of
// the segment lengths, and BendCount is the number of direction changes
// between consecutive segments.
type RoutedWire struct {
	ID          string         `json:"id"`
	Start       Point          `json:"start"`
	End         Point          `json:"end"`
	Path        []Point        `json:"path"`
	Segments    []WireSegment  `json:"segments"`
	TotalLength int            `json:"totalLength"`
	BendCount   int            `json:"bendCount"`
	Quality     float64        `json:"quality"`
	Type        ConnectionType `json:"type,omitempty"`
	State       WireState      `json:"-"`
}

// Clone returns a deep copy of the wire. Engine operations hand out copies so
// callers can never alias registry state.
func (w RoutedWire) Clone() RoutedWire {
	c := w
	c.Path = append([]Point(nil), w.Path...)
	c.Segments = append([]WireSegment(nil), w.Segments...)
	return c
}

// SegmentsFromPath collapses a path into maximal straight segments.
func SegmentsFromPath(path []Point) []WireSegment {
	if len(path) < 2 {
		return nil
	}

	segments := []WireSegment{}
	segStart := path[0]
	prev := path[0]

	for i := 1; i < len(path); i++ {
		p := path[i]
		if i > 1 && !aligned(segStart, prev, p) {
			segments = append(segments, WireSegment{Start: segStart, End: prev})
			segStart = prev
		}
		prev = p
	}
	segments = append(segments, WireSegment{Start: segStart, End: prev})

	return segments
}

// BendCountOf counts direction changes between consecutive segments.
func BendCountOf(segments []WireSegment) int {
	bends := 0
	for i := 1; i < len(segments); i++ {
		if segments[i].Direction() != segments[i-1].Direction() {
			bends++
		}
	}
	return bends
}

// TotalLengthOf sums the lengths of the given segments.
func TotalLengthOf(segments []WireSegment) int {
	total := 0
	for _, s := range segments {
		total += s.Length()
	}
	return total
}

// ComponentBounds is the geometry snapshot of a placed component. It is owned
// by the diagram editor; the engine only reads it.
type ComponentBounds struct {
	ID               string  `json:"id"`
	Bounds           Rect    `json:"bounds"`
	ConnectionPoints []Point `json:"connectionPoints,omitempty"`
	Type             string  `json:"type,omitempty"`
}

// Severity classifies how serious a collision is.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// String returns the string representation of a Severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// CollisionResult reports one detected collision.
type CollisionResult struct {
	HasCollision  bool     `json:"hasCollision"`
	Points        []Point  `json:"collisionPoints"`
	AffectedWires []string `json:"affectedWires"`
	Severity      Severity `json:"-"`
	Description   string   `json:"description"`
}

// IntersectionType classifies how two wires meet.
type IntersectionType string

const (
	IntersectionCrossing IntersectionType = "crossing"
	IntersectionOverlap  IntersectionType = "overlap"
	IntersectionJunction IntersectionType = "junction"
)

// WireIntersection describes a geometric meeting of two wires. Severity is a
// 0-1 scale where shared-endpoint junctions score lowest and collinear
// overlaps score highest.
type WireIntersection struct {
	WireID1  string           `json:"wireId1"`
	WireID2  string           `json:"wireId2"`
	Point    Point            `json:"point"`
	Type     IntersectionType `json:"type"`
	Severity float64          `json:"severity"`
}

// JunctionType classifies a joint by how many wires meet there.
type JunctionType string

const (
	JunctionCorner   JunctionType = "corner"
	JunctionTee      JunctionType = "T"
	JunctionCross    JunctionType = "cross"
	JunctionTerminal JunctionType = "terminal"
)

// JunctionStyle selects the marker drawn at a joint.
type JunctionStyle string

const (
	StyleCircle  JunctionStyle = "circle"
	StyleSquare  JunctionStyle = "square"
	StyleDiamond JunctionStyle = "diamond"
)

// Junction records where two or more wires meet.
//
// Invariant: a junction with fewer than two connected wires is pruned.
type Junction struct {
	ID             string        `json:"id"`
	Position       Point         `json:"position"`
	ConnectedWires []string      `json:"connectedWires"`
	Type           JunctionType  `json:"junctionType"`
	Style          JunctionStyle `json:"style"`
	Locked         bool          `json:"locked"`
}

// Path represents a raw route through the canvas as produced by a
// pathfinding strategy, before it is promoted to a RoutedWire.
type Path struct {
	Points []Point
	Cost   int // Used by pathfinding algorithms
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// aligned checks if three points are collinear along an axis.
func aligned(p1, p2, p3 Point) bool {
	if p1.Y == p2.Y && p2.Y == p3.Y {
		return true
	}
	if p1.X == p2.X && p2.X == p3.X {
		return true
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

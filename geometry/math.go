// Package geometry provides the integer math primitives used by the grid,
// planner and collision detector.
package geometry

import "wiregrid/core"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(p1, p2 core.Point) int {
	return Abs(p1.X-p2.X) + Abs(p1.Y-p2.Y)
}

// WithinDistance reports whether two points lie within the given Euclidean
// distance of each other. Computed on squared integers, no floats involved.
func WithinDistance(p1, p2 core.Point, dist int) bool {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return dx*dx+dy*dy <= dist*dist
}

// Cross returns the 2D cross product of vectors (a->b) and (a->c). Zero means
// the three points are collinear; the sign gives the winding.
func Cross(a, b, c core.Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SnapToGrid rounds a coordinate to the nearest multiple of gridSize.
func SnapToGrid(v, gridSize int) int {
	if gridSize <= 1 {
		return v
	}
	half := gridSize / 2
	if v >= 0 {
		return ((v + half) / gridSize) * gridSize
	}
	return -(((-v + half) / gridSize) * gridSize)
}

// SnapPoint rounds both coordinates of a point to the nearest grid multiple.
func SnapPoint(p core.Point, gridSize int) core.Point {
	return core.Point{
		X: SnapToGrid(p.X, gridSize),
		Y: SnapToGrid(p.Y, gridSize),
	}
}

// ClampToRect moves a point to the nearest position inside the rectangle.
// Points already inside are returned unchanged.
func ClampToRect(p core.Point, r core.Rect) core.Point {
	if p.X < r.X {
		p.X = r.X
	}
	if p.X >= r.X+r.Width {
		p.X = r.X + r.Width - 1
	}
	if p.Y < r.Y {
		p.Y = r.Y
	}
	if p.Y >= r.Y+r.Height {
		p.Y = r.Y + r.Height - 1
	}
	return p
}

package geometry

import "wiregrid/core"

// SegmentIntersection computes the single intersection point of two line
// segments using the parametric form. It returns false when the segments are
// parallel (no single intersection point exists) or when they do not meet
// within both segments' extents. Collinear overlaps are handled separately by
// CollinearOverlap.
func SegmentIntersection(a, b core.WireSegment) (core.Point, bool) {
	d1x := a.End.X - a.Start.X
	d1y := a.End.Y - a.Start.Y
	d2x := b.End.X - b.Start.X
	d2y := b.End.Y - b.Start.Y

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		// Parallel or collinear - no single intersection point.
		return core.Point{}, false
	}

	sx := b.Start.X - a.Start.X
	sy := b.Start.Y - a.Start.Y

	tNum := sx*d2y - sy*d2x
	uNum := sx*d1y - sy*d1x

	// t = tNum/denom and u = uNum/denom must both lie in [0,1].
	if denom > 0 {
		if tNum < 0 || tNum > denom || uNum < 0 || uNum > denom {
			return core.Point{}, false
		}
	} else {
		if tNum > 0 || tNum < denom || uNum > 0 || uNum < denom {
			return core.Point{}, false
		}
	}

	// For orthogonal segments the division is exact; for the general case we
	// round to the nearest canvas unit.
	px := a.Start.X + roundDiv(tNum*d1x, denom)
	py := a.Start.Y + roundDiv(tNum*d1y, denom)

	return core.Point{X: px, Y: py}, true
}

// CollinearOverlap reports whether two segments are collinear with
// overlapping extents, returning the midpoint of the shared region.
func CollinearOverlap(a, b core.WireSegment) (core.Point, bool) {
	d1x := a.End.X - a.Start.X
	d1y := a.End.Y - a.Start.Y
	d2x := b.End.X - b.Start.X
	d2y := b.End.Y - b.Start.Y

	// Must be parallel and on the same line.
	if d1x*d2y-d1y*d2x != 0 {
		return core.Point{}, false
	}
	if Cross(a.Start, a.End, b.Start) != 0 {
		return core.Point{}, false
	}

	// Project onto the line's axis and intersect the 1D extents.
	vertical := (d1x == 0 && d1y != 0) || (d2x == 0 && d2y != 0)
	if !vertical {
		lo := Max(Min(a.Start.X, a.End.X), Min(b.Start.X, b.End.X))
		hi := Min(Max(a.Start.X, a.End.X), Max(b.Start.X, b.End.X))
		if lo > hi {
			return core.Point{}, false
		}
		mid := (lo + hi) / 2
		return pointOnSegmentAtX(a, mid), true
	}

	lo := Max(Min(a.Start.Y, a.End.Y), Min(b.Start.Y, b.End.Y))
	hi := Min(Max(a.Start.Y, a.End.Y), Max(b.Start.Y, b.End.Y))
	if lo > hi {
		return core.Point{}, false
	}
	mid := (lo + hi) / 2
	return pointOnSegmentAtY(a, mid), true
}

// SegmentIntersectsRect clips the segment against the rectangle and returns a
// representative collision point (the midpoint of the clipped portion).
// Only orthogonal segments are clipped exactly; a diagonal segment is tested
// by sampling its endpoints and midpoint.
func SegmentIntersectsRect(s core.WireSegment, r core.Rect) (core.Point, bool) {
	if r.Empty() {
		return core.Point{}, false
	}

	if s.Start.Y == s.End.Y {
		// Horizontal segment.
		y := s.Start.Y
		if y < r.Y || y >= r.Y+r.Height {
			return core.Point{}, false
		}
		lo := Max(Min(s.Start.X, s.End.X), r.X)
		hi := Min(Max(s.Start.X, s.End.X), r.X+r.Width-1)
		if lo > hi {
			return core.Point{}, false
		}
		return core.Point{X: (lo + hi) / 2, Y: y}, true
	}

	if s.Start.X == s.End.X {
		// Vertical segment.
		x := s.Start.X
		if x < r.X || x >= r.X+r.Width {
			return core.Point{}, false
		}
		lo := Max(Min(s.Start.Y, s.End.Y), r.Y)
		hi := Min(Max(s.Start.Y, s.End.Y), r.Y+r.Height-1)
		if lo > hi {
			return core.Point{}, false
		}
		return core.Point{X: x, Y: (lo + hi) / 2}, true
	}

	// Diagonal segments only appear in fallback routes; an approximate test
	// against three samples is enough to flag them.
	mid := core.Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
	for _, p := range []core.Point{s.Start, mid, s.End} {
		if r.Contains(p) {
			return p, true
		}
	}
	return core.Point{}, false
}

// PointOnSegment reports whether a point lies on an orthogonal segment.
func PointOnSegment(p core.Point, s core.WireSegment) bool {
	if s.Start.Y == s.End.Y {
		return p.Y == s.Start.Y &&
			p.X >= Min(s.Start.X, s.End.X) &&
			p.X <= Max(s.Start.X, s.End.X)
	}
	if s.Start.X == s.End.X {
		return p.X == s.Start.X &&
			p.Y >= Min(s.Start.Y, s.End.Y) &&
			p.Y <= Max(s.Start.Y, s.End.Y)
	}
	return false
}

// OrthogonalIntersection runs the fast axis-aligned test: a vertical and a
// horizontal segment intersect iff the vertical's x lies within the
// horizontal's x-range and the horizontal's y within the vertical's y-range.
// Returns false for any pair that is not one horizontal plus one vertical.
func OrthogonalIntersection(a, b core.WireSegment) (core.Point, bool) {
	var h, v core.WireSegment
	switch {
	case a.Direction() == core.Horizontal && b.Direction() == core.Vertical:
		h, v = a, b
	case a.Direction() == core.Vertical && b.Direction() == core.Horizontal:
		h, v = b, a
	default:
		return core.Point{}, false
	}

	if v.Start.X < Min(h.Start.X, h.End.X) || v.Start.X > Max(h.Start.X, h.End.X) {
		return core.Point{}, false
	}
	if h.Start.Y < Min(v.Start.Y, v.End.Y) || h.Start.Y > Max(v.Start.Y, v.End.Y) {
		return core.Point{}, false
	}

	return core.Point{X: v.Start.X, Y: h.Start.Y}, true
}

func pointOnSegmentAtX(s core.WireSegment, x int) core.Point {
	if s.Start.X == s.End.X {
		return core.Point{X: x, Y: s.Start.Y}
	}
	// y = y0 + (x-x0) * dy/dx; exact for axis-aligned segments (dy = 0).
	y := s.Start.Y + roundDiv((x-s.Start.X)*(s.End.Y-s.Start.Y), s.End.X-s.Start.X)
	return core.Point{X: x, Y: y}
}

func pointOnSegmentAtY(s core.WireSegment, y int) core.Point {
	if s.Start.Y == s.End.Y {
		return core.Point{X: s.Start.X, Y: y}
	}
	x := s.Start.X + roundDiv((y-s.Start.Y)*(s.End.X-s.Start.X), s.End.Y-s.Start.Y)
	return core.Point{X: x, Y: y}
}

// roundDiv divides num by denom rounding to the nearest integer.
func roundDiv(num, denom int) int {
	if denom < 0 {
		num, denom = -num, -denom
	}
	if num >= 0 {
		return (num + denom/2) / denom
	}
	return -((-num + denom/2) / denom)
}

package geometry

import (
	"testing"

	"wiregrid/core"
)

func seg(x1, y1, x2, y2 int) core.WireSegment {
	return core.WireSegment{
		Start: core.Point{X: x1, Y: y1},
		End:   core.Point{X: x2, Y: y2},
	}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name  string
		a, b  core.WireSegment
		point core.Point
		hit   bool
	}{
		{
			name:  "Perpendicular crossing",
			a:     seg(0, 5, 10, 5),
			b:     seg(5, 0, 5, 10),
			point: core.Point{X: 5, Y: 5},
			hit:   true,
		},
		{
			name: "Perpendicular but out of range",
			a:    seg(0, 5, 10, 5),
			b:    seg(20, 0, 20, 10),
			hit:  false,
		},
		{
			name: "Parallel horizontals never intersect",
			a:    seg(0, 0, 10, 0),
			b:    seg(0, 5, 10, 5),
			hit:  false,
		},
		{
			name: "Collinear segments have no single point",
			a:    seg(0, 0, 10, 0),
			b:    seg(5, 0, 15, 0),
			hit:  false,
		},
		{
			name:  "Touching at an endpoint",
			a:     seg(0, 0, 10, 0),
			b:     seg(10, 0, 10, 10),
			point: core.Point{X: 10, Y: 0},
			hit:   true,
		},
		{
			name:  "Diagonal fallback segment crossing",
			a:     seg(0, 0, 10, 10),
			b:     seg(0, 10, 10, 0),
			point: core.Point{X: 5, Y: 5},
			hit:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := SegmentIntersection(tt.a, tt.b)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if ok && p != tt.point {
				t.Errorf("point = %v, want %v", p, tt.point)
			}
		})
	}
}

func TestCollinearOverlap(t *testing.T) {
	tests := []struct {
		name  string
		a, b  core.WireSegment
		point core.Point
		hit   bool
	}{
		{
			name:  "Horizontal overlap",
			a:     seg(0, 0, 10, 0),
			b:     seg(5, 0, 15, 0),
			point: core.Point{X: 7, Y: 0}, // midpoint of [5,10]
			hit:   true,
		},
		{
			name:  "Vertical overlap",
			a:     seg(0, 0, 0, 10),
			b:     seg(0, 5, 0, 15),
			point: core.Point{X: 0, Y: 7},
			hit:   true,
		},
		{
			name: "Collinear but disjoint",
			a:    seg(0, 0, 5, 0),
			b:    seg(10, 0, 20, 0),
			hit:  false,
		},
		{
			name: "Parallel on different lines",
			a:    seg(0, 0, 10, 0),
			b:    seg(0, 5, 10, 5),
			hit:  false,
		},
		{
			name: "Perpendicular pair is not collinear",
			a:    seg(0, 0, 10, 0),
			b:    seg(5, -5, 5, 5),
			hit:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := CollinearOverlap(tt.a, tt.b)
			if ok != tt.hit {
				t.Fatalf("hit = %v, want %v", ok, tt.hit)
			}
			if ok && p != tt.point {
				t.Errorf("point = %v, want %v", p, tt.point)
			}
		})
	}
}

func TestOrthogonalIntersection(t *testing.T) {
	h := seg(0, 5, 10, 5)
	v := seg(3, 0, 3, 10)

	p, ok := OrthogonalIntersection(h, v)
	if !ok || p != (core.Point{X: 3, Y: 5}) {
		t.Errorf("got %v/%v, want (3,5)/true", p, ok)
	}

	// Argument order must not matter.
	p2, ok2 := OrthogonalIntersection(v, h)
	if !ok2 || p2 != p {
		t.Error("intersection is not symmetric in its arguments")
	}

	if _, ok := OrthogonalIntersection(h, seg(0, 8, 10, 8)); ok {
		t.Error("two horizontals should not report an orthogonal intersection")
	}
	if _, ok := OrthogonalIntersection(h, seg(20, 0, 20, 10)); ok {
		t.Error("vertical outside the horizontal's x-range should miss")
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := core.Rect{X: 10, Y: 10, Width: 10, Height: 10}

	tests := []struct {
		name string
		s    core.WireSegment
		hit  bool
	}{
		{"Horizontal through", seg(0, 15, 30, 15), true},
		{"Horizontal above", seg(0, 5, 30, 5), false},
		{"Vertical through", seg(15, 0, 15, 30), true},
		{"Vertical beside", seg(5, 0, 5, 30), false},
		{"Horizontal ending inside", seg(0, 15, 15, 15), true},
		{"Horizontal short of the rect", seg(0, 15, 5, 15), false},
		{"Diagonal through the middle", seg(10, 10, 20, 20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := SegmentIntersectsRect(tt.s, r)
			if ok != tt.hit {
				t.Errorf("hit = %v, want %v", ok, tt.hit)
			}
		})
	}

	if _, ok := SegmentIntersectsRect(seg(0, 0, 100, 0), core.Rect{}); ok {
		t.Error("empty rect should never intersect")
	}
}

func TestPointOnSegment(t *testing.T) {
	s := seg(0, 0, 10, 0)

	if !PointOnSegment(core.Point{X: 5, Y: 0}, s) {
		t.Error("interior point should lie on segment")
	}
	if !PointOnSegment(core.Point{X: 0, Y: 0}, s) || !PointOnSegment(core.Point{X: 10, Y: 0}, s) {
		t.Error("endpoints should lie on segment")
	}
	if PointOnSegment(core.Point{X: 11, Y: 0}, s) {
		t.Error("point beyond the end should not lie on segment")
	}
	if PointOnSegment(core.Point{X: 5, Y: 1}, s) {
		t.Error("point off the line should not lie on segment")
	}
}

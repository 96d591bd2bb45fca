package pathfinding

import (
	"strings"
	"testing"

	"wiregrid/core"
	"wiregrid/geometry"
)

// parseObstacleMap converts ASCII art to an obstacle function.
// '.' or ' ' = free, 'X' or '#' = obstacle. Points outside bounds are
// blocked, mirroring the grid's hard checker.
func parseObstacleMap(mapStr string, bounds core.Rect) func(core.Point) bool {
	lines := strings.Split(strings.TrimSpace(mapStr), "\n")
	obstacleSet := make(map[pointKey]bool)

	for y, line := range lines {
		for x, char := range line {
			if char == 'X' || char == '#' {
				obstacleSet[pointKey{x, y}] = true
			}
		}
	}

	return func(p core.Point) bool {
		if !bounds.Contains(p) {
			return true
		}
		return obstacleSet[pointKey{p.X, p.Y}]
	}
}

// testRequest builds a unit-step request over the given bounds.
func testRequest(start, end core.Point, bounds core.Rect, blocked func(core.Point) bool) Request {
	return Request{
		Start:       start,
		End:         end,
		Step:        1,
		Bounds:      bounds,
		Blocked:     blocked,
		BlockedSoft: blocked,
	}
}

func TestFindAStar_SimplePaths(t *testing.T) {
	bounds := core.Rect{Width: 5, Height: 5}

	tests := []struct {
		name      string
		start     core.Point
		end       core.Point
		obstacles string
		minPoints int
	}{
		{
			name:      "Direct horizontal path",
			start:     core.Point{X: 0, Y: 0},
			end:       core.Point{X: 4, Y: 0},
			minPoints: 5,
		},
		{
			name:      "Direct vertical path",
			start:     core.Point{X: 0, Y: 0},
			end:       core.Point{X: 0, Y: 4},
			minPoints: 5,
		},
		{
			name:      "L-shaped path",
			start:     core.Point{X: 0, Y: 0},
			end:       core.Point{X: 4, Y: 4},
			minPoints: 9,
		},
		{
			name:  "Path around obstacle",
			start: core.Point{X: 0, Y: 2},
			end:   core.Point{X: 4, Y: 2},
			obstacles: `
.....
.....
.XX..
.....
.....`,
			minPoints: 7, // Must go around
		},
		{
			name:  "Path through maze",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 4, Y: 4},
			obstacles: `
.XXX.
...X.
.X...
.XXX.
.....`,
			minPoints: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked := parseObstacleMap(tt.obstacles, bounds)
			req := testRequest(tt.start, tt.end, bounds, blocked)

			path, ok := findAStar(req, DefaultPathCost, 50000)
			if !ok {
				t.Fatal("findAStar found no path")
			}

			if len(path.Points) < tt.minPoints {
				t.Errorf("path too short: got %d points, want at least %d",
					len(path.Points), tt.minPoints)
			}
			if path.Points[0] != tt.start {
				t.Errorf("path doesn't start at %v", tt.start)
			}
			if path.Points[len(path.Points)-1] != tt.end {
				t.Errorf("path doesn't end at %v", tt.end)
			}

			// Verify path is continuous
			for i := 1; i < len(path.Points); i++ {
				if geometry.ManhattanDistance(path.Points[i-1], path.Points[i]) != 1 {
					t.Errorf("path not continuous at %d: %v -> %v",
						i, path.Points[i-1], path.Points[i])
				}
			}

			// Verify no obstacles in path
			for _, p := range path.Points {
				if blocked(p) {
					t.Errorf("path goes through obstacle at %v", p)
				}
			}
		})
	}
}

func TestFindAStar_NoPath(t *testing.T) {
	bounds := core.Rect{Width: 5, Height: 5}

	tests := []struct {
		name      string
		start     core.Point
		end       core.Point
		obstacles string
	}{
		{
			name:  "End blocked",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 2, Y: 0},
			obstacles: `
..X`,
		},
		{
			name:  "Start blocked",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 2, Y: 0},
			obstacles: `
X..`,
		},
		{
			name:  "Completely enclosed target",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 2, Y: 2},
			obstacles: `
.....
.XXX.
.X.X.
.XXX.
.....`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked := parseObstacleMap(tt.obstacles, bounds)
			req := testRequest(tt.start, tt.end, bounds, blocked)

			if _, ok := findAStar(req, DefaultPathCost, 50000); ok {
				t.Error("expected no path, got one")
			}
		})
	}
}

func TestFindAStar_BendPenalty(t *testing.T) {
	// With a high bend cost the search should produce an L-shaped route
	// with a single turn rather than a staircase.
	costs := PathCost{StraightCost: 10, BendCost: 50}
	bounds := core.Rect{Width: 10, Height: 10}
	blocked := parseObstacleMap("", bounds)

	req := testRequest(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, bounds, blocked)
	path, ok := findAStar(req, costs, 50000)
	if !ok {
		t.Fatal("findAStar found no path")
	}

	turns := 0
	for i := 2; i < len(path.Points); i++ {
		dir1 := GetDirection(path.Points[i-2], path.Points[i-1])
		dir2 := GetDirection(path.Points[i-1], path.Points[i])
		if dir1 != dir2 {
			turns++
		}
	}
	if turns > 1 {
		t.Errorf("path has %d turns, expected 1 with high bend cost", turns)
	}
}

func TestFindAStar_IterationCap(t *testing.T) {
	bounds := core.Rect{Width: 50, Height: 50}
	blocked := parseObstacleMap("", bounds)

	req := testRequest(core.Point{X: 0, Y: 0}, core.Point{X: 49, Y: 49}, bounds, blocked)
	if _, ok := findAStar(req, DefaultPathCost, 10); ok {
		t.Error("search should give up when the iteration cap is hit")
	}
}

func TestFindAStar_CrossingPenalty(t *testing.T) {
	// A corridor of wire cells along y=1 between the endpoints: the search
	// should route around it when crossing is expensive relative to the
	// detour, but still reach the goal.
	bounds := core.Rect{Width: 7, Height: 5}
	blocked := parseObstacleMap("", bounds)

	wire := func(p core.Point) bool { return p.Y == 2 && p.X >= 1 && p.X <= 5 }

	req := testRequest(core.Point{X: 3, Y: 0}, core.Point{X: 3, Y: 4}, bounds, blocked)
	req.Crossing = wire

	path, ok := findAStar(req, DefaultPathCost, 50000)
	if !ok {
		t.Fatal("findAStar found no path")
	}

	crossings := 0
	for _, p := range path.Points {
		if wire(p) {
			crossings++
		}
	}
	// The corridor cannot be avoided for free; the search must cross it
	// exactly once rather than running along it.
	if crossings != 1 {
		t.Errorf("path crosses the wire corridor %d times, want 1", crossings)
	}
}

func BenchmarkFindAStar(b *testing.B) {
	bounds := core.Rect{Width: 100, Height: 100}
	obstacleSet := make(map[pointKey]bool)
	for i := 0; i < 100; i++ {
		x := (i * 7) % 97
		y := (i * 13) % 97
		if (x != 0 || y != 0) && (x != 95 || y != 95) {
			obstacleSet[pointKey{x, y}] = true
		}
	}
	blocked := func(p core.Point) bool {
		if !bounds.Contains(p) {
			return true
		}
		return obstacleSet[pointKey{p.X, p.Y}]
	}
	req := testRequest(core.Point{X: 0, Y: 0}, core.Point{X: 95, Y: 95}, bounds, blocked)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := findAStar(req, DefaultPathCost, 100000); !ok {
			b.Fatal("no path")
		}
	}
}

package pathfinding

import (
	"testing"

	"wiregrid/core"
	"wiregrid/geometry"
)

func TestFindDijkstra(t *testing.T) {
	bounds := core.Rect{Width: 5, Height: 5}

	tests := []struct {
		name       string
		start, end core.Point
		obstacles  string
		wantOK     bool
		wantPoints int // exact optimal point count, 0 to skip
	}{
		{
			name:       "Straight line",
			start:      core.Point{X: 0, Y: 0},
			end:        core.Point{X: 4, Y: 0},
			wantOK:     true,
			wantPoints: 5,
		},
		{
			name:  "Optimal detour around obstacle",
			start: core.Point{X: 0, Y: 2},
			end:   core.Point{X: 4, Y: 2},
			obstacles: `
.....
.....
.XX..
.....
.....`,
			wantOK:     true,
			wantPoints: 7,
		},
		{
			name:  "Enclosed target",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 2, Y: 2},
			obstacles: `
.....
.XXX.
.X.X.
.XXX.
.....`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked := parseObstacleMap(tt.obstacles, bounds)
			req := testRequest(tt.start, tt.end, bounds, blocked)

			path, ok := findDijkstra(req, ShortestPathCost, 10)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}

			if tt.wantPoints > 0 && len(path.Points) != tt.wantPoints {
				t.Errorf("got %d points, want %d: %v", len(path.Points), tt.wantPoints, path.Points)
			}
			if path.Points[0] != tt.start || path.Points[len(path.Points)-1] != tt.end {
				t.Errorf("endpoints wrong: %v", path.Points)
			}
			for i := 1; i < len(path.Points); i++ {
				if geometry.ManhattanDistance(path.Points[i-1], path.Points[i]) != 1 {
					t.Errorf("path not continuous at %d", i)
				}
			}
		})
	}
}

func TestPlannerRun_PrefersDirect(t *testing.T) {
	bounds := core.Rect{Width: 20, Height: 20}
	blocked := parseObstacleMap("", bounds)
	planner := NewPlanner(DefaultConfig())

	req := testRequest(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 10}, bounds, blocked)

	cand, ok := planner.Run(SetBalanced, req)
	if !ok {
		t.Fatal("planner found no route")
	}

	// On an open field every strategy reaches the same quality; the tie
	// must resolve to the first strategy in priority order.
	if cand.Strategy != StrategyDirect {
		t.Errorf("winning strategy = %v, want %v", cand.Strategy, StrategyDirect)
	}
	segments := core.SegmentsFromPath(cand.Path.Points)
	if bends := core.BendCountOf(segments); bends != 1 {
		t.Errorf("open-field L route should have 1 bend, got %d", bends)
	}
	if q := cand.Quality; q < 0.89 || q > 0.91 {
		t.Errorf("quality = %v, want 0.9", q)
	}
}

func TestPlannerRun_Deterministic(t *testing.T) {
	bounds := core.Rect{Width: 12, Height: 12}
	blocked := parseObstacleMap(`
............
............
............
...XXXXX....
...X........
...X........
............
............
............
............
............
............`, bounds)
	planner := NewPlanner(DefaultConfig())
	req := testRequest(core.Point{X: 0, Y: 0}, core.Point{X: 11, Y: 11}, bounds, blocked)

	first, ok := planner.Run(SetBalanced, req)
	if !ok {
		t.Fatal("planner found no route")
	}

	for i := 0; i < 5; i++ {
		again, ok := planner.Run(SetBalanced, req)
		if !ok {
			t.Fatal("planner found no route on repeat")
		}
		if again.Strategy != first.Strategy || again.Quality != first.Quality {
			t.Fatalf("run %d diverged: %v/%v vs %v/%v",
				i, again.Strategy, again.Quality, first.Strategy, first.Quality)
		}
		if len(again.Path.Points) != len(first.Path.Points) {
			t.Fatalf("run %d produced a different path", i)
		}
		for j := range again.Path.Points {
			if again.Path.Points[j] != first.Path.Points[j] {
				t.Fatalf("run %d path diverged at %d", i, j)
			}
		}
	}
}

func TestPlannerRun_NoRoute(t *testing.T) {
	bounds := core.Rect{Width: 5, Height: 5}
	blocked := parseObstacleMap(`
.....
.XXX.
.X.X.
.XXX.
.....`, bounds)
	planner := NewPlanner(DefaultConfig())
	req := testRequest(core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 2}, bounds, blocked)

	if _, ok := planner.Run(SetBalanced, req); ok {
		t.Error("enclosed target should defeat every strategy")
	}
}

func TestStrategySets(t *testing.T) {
	tests := []struct {
		set  StrategySet
		want []Strategy
	}{
		{SetMinimalBends, []Strategy{StrategyDirect, StrategyAStar}},
		{SetShortest, []Strategy{StrategyDijkstra, StrategyAStar}},
		{SetBalanced, []Strategy{StrategyDirect, StrategyAStar, StrategyDijkstra, StrategyGridAligned}},
	}

	for _, tt := range tests {
		got := strategiesFor(tt.set)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %v, want %v", tt.set, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s[%d] = %v, want %v", tt.set, i, got[i], tt.want[i])
			}
		}
	}
}

func TestCostsFor(t *testing.T) {
	base := DefaultPathCost

	if c := costsFor(SetMinimalBends, base); c.BendCost <= base.BendCost {
		t.Error("minimal_bends should raise the bend cost")
	}
	if c := costsFor(SetShortest, base); c.BendCost != 0 {
		t.Error("shortest should zero the bend cost")
	}
	if c := costsFor(SetBalanced, base); c != base {
		t.Error("balanced should keep the base costs")
	}
}

func TestStrategyString(t *testing.T) {
	names := map[Strategy]string{
		StrategyDirect:      "direct",
		StrategyAStar:       "astar",
		StrategyDijkstra:    "dijkstra",
		StrategyGridAligned: "grid-aligned",
	}
	for s, want := range names {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}

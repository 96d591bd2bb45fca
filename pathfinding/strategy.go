package pathfinding

import (
	"wiregrid/core"
	"wiregrid/geometry"
)

// Strategy is a closed set of routing algorithms. Strategies share a uniform
// evaluate signature and are tried in priority order; the planner keeps the
// highest-quality candidate.
type Strategy int

const (
	// StrategyDirect tries L-shaped and Z-shaped few-bend shortcuts.
	StrategyDirect Strategy = iota
	// StrategyAStar runs 4-directional A* with a bend penalty.
	StrategyAStar
	// StrategyDijkstra runs the uniform-cost shortest-path baseline.
	StrategyDijkstra
	// StrategyGridAligned re-snaps the endpoints toward interior grid
	// intersections and delegates to A*.
	StrategyGridAligned
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyAStar:
		return "astar"
	case StrategyDijkstra:
		return "dijkstra"
	case StrategyGridAligned:
		return "grid-aligned"
	default:
		return "unknown"
	}
}

// StrategySet names a preconfigured bundle of strategies and costs.
type StrategySet string

const (
	// SetMinimalBends prefers few turns over raw length.
	SetMinimalBends StrategySet = "minimal_bends"
	// SetShortest prefers raw length and ignores turns.
	SetShortest StrategySet = "shortest"
	// SetBalanced runs every strategy with the default cost model.
	SetBalanced StrategySet = "balanced"
)

// strategiesFor returns the strategies of a set in priority order.
func strategiesFor(set StrategySet) []Strategy {
	switch set {
	case SetMinimalBends:
		return []Strategy{StrategyDirect, StrategyAStar}
	case SetShortest:
		return []Strategy{StrategyDijkstra, StrategyAStar}
	default:
		return []Strategy{StrategyDirect, StrategyAStar, StrategyDijkstra, StrategyGridAligned}
	}
}

// costsFor returns the cost model of a set.
func costsFor(set StrategySet, base PathCost) PathCost {
	switch set {
	case SetMinimalBends:
		return PathCost{
			StraightCost: base.StraightCost,
			BendCost:     MinimalBendPathCost.BendCost,
			CrossingCost: base.CrossingCost,
		}
	case SetShortest:
		return PathCost{
			StraightCost: base.StraightCost,
			BendCost:     0,
			CrossingCost: base.CrossingCost,
		}
	default:
		return base
	}
}

// Candidate is one scored routing result.
type Candidate struct {
	Path     core.Path
	Quality  float64
	Strategy Strategy
}

// Planner evaluates routing strategies against a request and scores the
// results. It holds no per-diagram state; the grid closures in the request
// carry all obstacle knowledge.
type Planner struct {
	cfg Config
}

// NewPlanner creates a planner with the given configuration.
func NewPlanner(cfg Config) *Planner {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig().MaxIterations
	}
	if cfg.DijkstraMargin <= 0 {
		cfg.DijkstraMargin = DefaultConfig().DijkstraMargin
	}
	return &Planner{cfg: cfg}
}

// Run evaluates every strategy in the set and returns the highest-quality
// candidate. The comparison is strict, so ties resolve to the earlier
// strategy in priority order and results stay deterministic.
func (p *Planner) Run(set StrategySet, req Request) (Candidate, bool) {
	costs := costsFor(set, p.cfg.Costs)

	best := Candidate{Quality: -1}
	found := false

	for _, strategy := range strategiesFor(set) {
		raw, ok := p.evaluate(strategy, req, costs)
		if !ok {
			continue
		}
		simplified := SimplifyPath(raw)
		segments := core.SegmentsFromPath(simplified.Points)
		q := Quality(req.Start, req.End, segments, p.cfg.BendPenalty)
		if q > best.Quality {
			best = Candidate{Path: simplified, Quality: q, Strategy: strategy}
			found = true
		}
	}

	return best, found
}

// evaluate dispatches one strategy.
func (p *Planner) evaluate(s Strategy, req Request, costs PathCost) (core.Path, bool) {
	switch s {
	case StrategyDirect:
		return findDirect(req)
	case StrategyAStar:
		return findAStar(req, costs, p.cfg.MaxIterations)
	case StrategyDijkstra:
		return findDijkstra(req, costs, p.cfg.DijkstraMargin)
	case StrategyGridAligned:
		return findGridAligned(req, costs, p.cfg.MaxIterations)
	default:
		return core.Path{}, false
	}
}

// findGridAligned biases the endpoints toward interior grid intersections:
// each endpoint is re-snapped one step toward the other, the interior route
// is found with A*, and the original endpoints are stitched back on with
// validated straight legs.
func findGridAligned(req Request, costs PathCost, maxIterations int) (core.Path, bool) {
	aligned := req
	aligned.Start = snapToward(req.Start, req.End, req.Step)
	aligned.End = snapToward(req.End, req.Start, req.Step)

	if aligned.Start == req.Start && aligned.End == req.End {
		// Nothing to re-snap; identical to plain A*.
		return core.Path{}, false
	}
	if req.Blocked(aligned.Start) || req.Blocked(aligned.End) {
		return core.Path{}, false
	}

	inner, ok := findAStar(aligned, costs, maxIterations)
	if !ok {
		return core.Path{}, false
	}

	points := inner.Points
	if aligned.Start != req.Start {
		if !segmentClear(req.Start, aligned.Start, req.Step, req.Blocked) {
			return core.Path{}, false
		}
		points = append([]core.Point{req.Start}, points...)
	}
	if aligned.End != req.End {
		if !segmentClear(aligned.End, req.End, req.Step, req.Blocked) {
			return core.Path{}, false
		}
		points = append(points, req.End)
	}

	return core.Path{Points: points, Cost: inner.Cost}, true
}

// snapToward moves a point one grid step along its dominant axis toward the
// target, keeping it grid-aligned.
func snapToward(p, toward core.Point, step int) core.Point {
	dx := toward.X - p.X
	dy := toward.Y - p.Y
	if dx == 0 && dy == 0 {
		return p
	}
	if geometry.Abs(dx) >= geometry.Abs(dy) {
		return core.Point{X: p.X + sign(dx)*step, Y: p.Y}
	}
	return core.Point{X: p.X, Y: p.Y + sign(dy)*step}
}

package pathfinding

import (
	"container/heap"

	"wiregrid/core"
	"wiregrid/geometry"
)

// aStarNode represents a state in the A* search.
type aStarNode struct {
	Point     core.Point
	GCost     int // Cost from start
	HCost     int // Heuristic cost to goal
	FCost     int // GCost + HCost
	Parent    *aStarNode
	Direction Direction // Direction we entered this node from
	Index     int       // Index in the heap
}

// nodeQueue is a priority queue for A* nodes.
type nodeQueue []*aStarNode

func (nq nodeQueue) Len() int { return len(nq) }

func (nq nodeQueue) Less(i, j int) bool {
	if nq[i].FCost != nq[j].FCost {
		return nq[i].FCost < nq[j].FCost
	}
	// Tie-breaker 1: prefer nodes closer to the goal.
	if nq[i].HCost != nq[j].HCost {
		return nq[i].HCost < nq[j].HCost
	}
	// Tie-breaker 2: position-based ordering for deterministic, symmetric
	// behaviour on equal-cost frontiers.
	return symmetricOrder(nq[i].Point, nq[j].Point)
}

// symmetricOrder provides a deterministic ordering that promotes symmetry.
func symmetricOrder(p1, p2 core.Point) bool {
	sum1 := p1.X + p1.Y
	sum2 := p2.X + p2.Y
	if sum1 != sum2 {
		return sum1 < sum2
	}
	if p1.X != p2.X {
		return p1.X < p2.X
	}
	return p1.Y < p2.Y
}

func (nq nodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].Index = i
	nq[j].Index = j
}

func (nq *nodeQueue) Push(x interface{}) {
	n := len(*nq)
	node := x.(*aStarNode)
	node.Index = n
	*nq = append(*nq, node)
}

func (nq *nodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil  // avoid memory leak
	node.Index = -1 // for safety
	*nq = old[0 : n-1]
	return node
}

// pointKey is used for efficient map lookups. Coordinates are snapped
// integers, so equality is exact.
type pointKey struct {
	X, Y int
}

// findAStar runs 4-directional A* between the snapped endpoints. Edge cost is
// one straight step plus a bend penalty whenever the direction changes, plus
// a crossing penalty when the step lands on another wire's cell. The search
// gives up after maxIterations node expansions.
func findAStar(req Request, costs PathCost, maxIterations int) (core.Path, bool) {
	if req.Start == req.End {
		return core.Path{Points: []core.Point{req.Start}}, true
	}
	if req.Blocked(req.Start) || req.Blocked(req.End) {
		return core.Path{}, false
	}

	openSet := &nodeQueue{}
	heap.Init(openSet)
	closedSet := make(map[pointKey]bool)
	nodeMap := make(map[pointKey]*aStarNode)

	startNode := &aStarNode{
		Point:     req.Start,
		HCost:     heuristic(req.Start, req.End, req.Step, costs),
		Direction: DirNone,
	}
	startNode.FCost = startNode.HCost

	heap.Push(openSet, startNode)
	nodeMap[pointKey{req.Start.X, req.Start.Y}] = startNode

	expanded := 0
	for openSet.Len() > 0 {
		expanded++
		if expanded > maxIterations {
			return core.Path{}, false
		}

		current := heap.Pop(openSet).(*aStarNode)
		if current.Point == req.End {
			return reconstructPath(current), true
		}
		closedSet[pointKey{current.Point.X, current.Point.Y}] = true

		for _, neighbor := range neighborsToward(current.Point, req.End, req.Step) {
			key := pointKey{neighbor.X, neighbor.Y}
			if closedSet[key] {
				continue
			}
			if req.Blocked(neighbor) {
				continue
			}

			dir := GetDirection(current.Point, neighbor)
			stepCost := costs.StraightCost
			if current.Direction != DirNone && current.Direction != dir {
				stepCost += costs.BendCost
				// Extra penalty for a second turn right after the first:
				// suppresses staircase jitter.
				if current.Parent != nil && current.Parent.Direction != DirNone &&
					current.Parent.Direction != current.Direction {
					stepCost += costs.BendCost
				}
			}
			if req.Crossing != nil && req.Crossing(neighbor) {
				stepCost += costs.CrossingCost
			}
			tentativeG := current.GCost + stepCost

			existing, seen := nodeMap[key]
			if !seen {
				node := &aStarNode{
					Point:     neighbor,
					GCost:     tentativeG,
					HCost:     heuristic(neighbor, req.End, req.Step, costs),
					Parent:    current,
					Direction: dir,
				}
				node.FCost = node.GCost + node.HCost
				heap.Push(openSet, node)
				nodeMap[key] = node
			} else if tentativeG < existing.GCost {
				existing.GCost = tentativeG
				existing.FCost = existing.GCost + existing.HCost
				existing.Parent = current
				existing.Direction = dir
				heap.Fix(openSet, existing.Index)
			}
		}
	}

	return core.Path{}, false
}

// heuristic estimates the remaining cost: Manhattan distance in grid steps,
// plus one minimum bend when both axes still need covering. Admissible, so
// the search stays optimal.
func heuristic(current, goal core.Point, step int, costs PathCost) int {
	dx := geometry.Abs(goal.X - current.X)
	dy := geometry.Abs(goal.Y - current.Y)

	h := (dx + dy) / step * costs.StraightCost
	if dx > 0 && dy > 0 {
		h += costs.BendCost
	}
	return h
}

// reconstructPath builds the final path from the goal node.
func reconstructPath(goalNode *aStarNode) core.Path {
	n := 0
	for cur := goalNode; cur != nil; cur = cur.Parent {
		n++
	}
	points := make([]core.Point, n)
	for cur := goalNode; cur != nil; cur = cur.Parent {
		n--
		points[n] = cur.Point
	}
	return core.Path{Points: points, Cost: goalNode.GCost}
}

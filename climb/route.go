package climb

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Route is a sequence of committed moves leading from a start square to a
// goal, as a climber holding either leading corner would take them.
type Route struct {
	Moves []Move
	Cost  int
}

func (r Route) Len() int {
	return len(r.Moves)
}

// End returns the square the route finishes on.
func (r Route) End() Square {
	if len(r.Moves) == 0 {
		return Square{}
	}
	return r.Moves[len(r.Moves)-1].Target
}

type routeNode struct {
	key cellKey
	sq  Square
}

// PlanRoute finds the cheapest sequence of moves from start to a square whose
// center lies within HalfWidth of goal. Ordinary moves cost one, jumps add
// their step count. maxNodes bounds the number of squares expanded.
func PlanRoute(p *Pathfinder, start Square, goal cp.Vector, maxNodes int) (Route, bool) {
	startCenter, ok := start.Center(p.Geometry)
	if !ok {
		return Route{}, false
	}
	if startCenter.Distance(goal) < p.Geometry.HalfWidth {
		return Route{}, true
	}
	goalKey := squareKey(p.Geometry, goal)
	startKey := squareKey(p.Geometry, startCenter)

	open := make([]routeNode, 0, 64)
	open = append(open, routeNode{key: startKey, sq: start})
	openSet := map[cellKey]bool{startKey: true}

	cameFrom := make(map[cellKey]Move, 128)
	gScore := map[cellKey]int{startKey: 0}
	fScore := map[cellKey]float64{startKey: routeHeuristic(startKey, goalKey)}

	iterations := 0
	for len(open) > 0 && iterations < maxNodes {
		iterations++
		bestIdx := 0
		bestScore := math.MaxFloat64
		for i, n := range open {
			if f := fScore[n.key]; f < bestScore {
				bestScore = f
				bestIdx = i
			}
		}
		current := open[bestIdx]
		open = append(open[:bestIdx], open[bestIdx+1:]...)
		delete(openSet, current.key)

		if current.key == goalKey {
			return reconstructRoute(cameFrom, current.key, startKey, p.Geometry), true
		}

		for _, m := range p.Candidates(current.sq) {
			side, ok := m.UsableSide()
			if !ok {
				continue
			}
			m = m.WithSide(side)
			center, _ := m.Target.Center(p.Geometry)
			next := squareKey(p.Geometry, center)
			cost := 1
			if m.JumpRequired {
				cost += m.JumpSteps
			}
			tentative := gScore[current.key] + cost
			prev, seen := gScore[next]
			if !seen || tentative < prev {
				cameFrom[next] = m
				gScore[next] = tentative
				fScore[next] = float64(tentative) + routeHeuristic(next, goalKey)
				if !openSet[next] {
					open = append(open, routeNode{key: next, sq: m.Target})
					openSet[next] = true
				}
			}
		}
	}
	return Route{}, false
}

func reconstructRoute(cameFrom map[cellKey]Move, current, start cellKey, geom Geometry) Route {
	var route Route
	for current != start {
		m, ok := cameFrom[current]
		if !ok {
			return Route{}
		}
		route.Moves = append(route.Moves, m)
		route.Cost++
		if m.JumpRequired {
			route.Cost += m.JumpSteps
		}
		fromCenter, _ := m.From.Center(geom)
		current = squareKey(geom, fromCenter)
	}
	for i, j := 0, len(route.Moves)-1; i < j; i, j = i+1, j-1 {
		route.Moves[i], route.Moves[j] = route.Moves[j], route.Moves[i]
	}
	return route
}

// squareKey identifies a square by the grid node of its lower-left corner.
func squareKey(geom Geometry, center cp.Vector) cellKey {
	half := geom.Spacing / 2
	col, row := geom.Cell(cp.Vector{X: center.X - half, Y: center.Y - half})
	return cellKey{col: col, row: row}
}

func routeHeuristic(a, b cellKey) float64 {
	return math.Abs(float64(a.col-b.col)) + math.Abs(float64(a.row-b.row))
}

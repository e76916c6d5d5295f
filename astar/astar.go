package astar

import (
	"github.com/arrakis-eda/gridrouter/grid"
	"github.com/arrakis-eda/gridrouter/netlist"
)

// RouteNet runs the incremental multi-pin A* for net n against g, and on
// success stores the accumulated route and total cost on n and marks it
// into g via MarkPath. On failure n is left untouched and ErrUnroutable
// is returned; the grid is never partially marked.
//
// Algorithm:
//
//  1. S := {n.Pins[0]}, T := n.Pins[1:].
//  2. While T is non-empty, run an A* (searchOne) whose
//     open set starts with every s in S at g(s)=0, f(s)=min manhattan
//     distance (x,y only) to any t in T. The first member of T popped
//     from the open set is the goal.
//  3. Append the found path to the accumulated route (dropping the
//     leading cell on every segment after the first, since it duplicates
//     the junction already in the route), add every cell of the path to
//     S, and remove from T every pin now covered by S (a path may pass
//     through more than one remaining pin).
//  4. If any sub-search's open set empties before reaching a member of
//     T, the whole net fails.
//
// A net with a single pin is trivially routed: its one-cell route is
// just that pin, at cost 0, and must never be reported as a failure
// (see DESIGN.md for why a one-cell route rather than an empty one was
// chosen).
func RouteNet(g *grid.Grid, n *netlist.Net, fr *frontier) error {
	if len(n.Pins) < 2 {
		route := []grid.Coordinate{n.Pins[0]}
		g.MarkPath(route, n.Name)
		n.Route = route
		n.Cost = 0

		return nil
	}

	sourceSet := map[grid.Coordinate]struct{}{n.Pins[0]: {}}
	sources := []grid.Coordinate{n.Pins[0]}
	targets := make(map[grid.Coordinate]struct{}, len(n.Pins)-1)
	for _, p := range n.Pins[1:] {
		targets[p] = struct{}{}
	}

	var route []grid.Coordinate
	var totalCost int64

	for len(targets) > 0 {
		path, cost, ok := searchOne(g, fr, sources, targets, n.Name)
		if !ok {
			return ErrUnroutable
		}

		totalCost += int64(cost)
		if len(route) == 0 {
			route = append(route, path...)
		} else {
			route = append(route, path[1:]...)
		}

		for _, c := range path {
			if _, exists := sourceSet[c]; !exists {
				sourceSet[c] = struct{}{}
				sources = append(sources, c)
			}
			delete(targets, c)
		}
	}

	g.MarkPath(route, n.Name)
	n.Route = route
	n.Cost = totalCost

	return nil
}

// Frontier is reusable per-search scratch space sized for a grid.
// Callers that route many nets against the same grid pass one Frontier to
// every RouteNet call rather than allocate one per net; routerall keeps a
// single Frontier for its whole run, across all attempts.
type Frontier = frontier

// NewFrontier constructs a Frontier for g. See Frontier's doc comment.
func NewFrontier(g *grid.Grid) *Frontier {
	return newFrontier(g)
}

// minHeuristic returns the minimum Manhattan (x,y) distance from c to
// any coordinate in targets — admissible because every step contributes
// at least 1 to (x,y) movement cost while a via contributes 0 to (x,y)
// distance but cost >= 0.
func minHeuristic(c grid.Coordinate, targets map[grid.Coordinate]struct{}) int {
	best := -1
	for t := range targets {
		d := c.ManhattanXY(t)
		if best < 0 || d < best {
			best = d
		}
	}

	return best
}

// searchOne runs a single multi-source, multi-target A* from sources to
// the nearest coordinate in targets, reusing fr's dense state. Returns
// the path from the reached source to the reached target (inclusive),
// its cost, and ok=false if the open set emptied first.
func searchOne(
	g *grid.Grid,
	fr *frontier,
	sources []grid.Coordinate,
	targets map[grid.Coordinate]struct{},
	netName string,
) ([]grid.Coordinate, int, bool) {
	fr.reset()

	for _, s := range sources {
		fr.discover(s, 0, grid.Coordinate{}, false)
		fr.push(s, minHeuristic(s, targets))
	}

	for {
		cur, ok := fr.pop()
		if !ok {
			return nil, 0, false
		}

		curG, _ := fr.discovered(cur)

		if _, isTarget := targets[cur]; isTarget {
			return reconstructPath(fr, cur), curG, true
		}

		if fr.closed(cur) {
			continue
		}
		fr.markClosed(cur)

		for _, step := range g.Neighbours(cur, nil, netName) {
			candidate := curG + step.Cost
			if existing, known := fr.discovered(step.To); !known || candidate < existing {
				fr.discover(step.To, candidate, cur, true)
				fr.push(step.To, candidate+minHeuristic(step.To, targets))
			}
		}
	}
}

// reconstructPath walks predecessor links from goal back to its source
// and returns the path in source-to-goal order.
func reconstructPath(fr *frontier, goal grid.Coordinate) []grid.Coordinate {
	path := []grid.Coordinate{goal}
	cur := goal
	for {
		pred, ok := fr.predecessor(cur)
		if !ok {
			break
		}
		path = append(path, pred)
		cur = pred
	}

	// path was built goal-to-source; reverse it in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

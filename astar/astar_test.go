package astar_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrakis-eda/gridrouter/astar"
	"github.com/arrakis-eda/gridrouter/grid"
	"github.com/arrakis-eda/gridrouter/netlist"
)

// ExampleRouteNet shows a two-pin net detouring around a single obstacle.
// The via penalty is set high enough that detouring around the obstacle
// in-plane is cheaper than routing around it through the other layer.
func ExampleRouteNet() {
	g, _ := grid.NewGrid(5, 5, grid.Options{BendPenalty: 0, ViaPenalty: 3})
	_ = g.AddObstacle(grid.M0, 2, 0)

	n, _ := netlist.New("n1", []netlist.Pin{{X: 0, Y: 0}, {X: 4, Y: 0}})
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	if err := astar.RouteNet(g, n, fr); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(n.Cost)
	// Output: 6
}

func newGrid(t *testing.T, w, h, bend, via int) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(w, h, grid.Options{BendPenalty: bend, ViaPenalty: via})
	require.NoError(t, err)

	return g
}

// Scenario 1: trivial two-pin, same layer, clear path.
func TestRouteNet_TrivialSameLayer(t *testing.T) {
	g := newGrid(t, 5, 5, 0, 0)
	n, err := netlist.New("n1", []netlist.Pin{{X: 0, Y: 0}, {X: 3, Y: 0}})
	require.NoError(t, err)
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	require.NoError(t, astar.RouteNet(g, n, fr))

	assert.EqualValues(t, 3, n.Cost)
	assert.Len(t, n.Route, 4)
	assert.Equal(t, grid.Coordinate{X: 0, Y: 0}, n.Route[0])
	assert.Equal(t, grid.Coordinate{X: 3, Y: 0}, n.Route[3])
}

// Scenario 2: bend penalty dominates. The via penalty is set high enough
// that a pair of vias (which would let the route travel on M1's
// preferred vertical direction instead of bending on M0) is never
// cheaper than paying the bend penalty in-plane.
func TestRouteNet_BendPenaltyDominates(t *testing.T) {
	g := newGrid(t, 5, 5, 10, 50)
	n, err := netlist.New("n1", []netlist.Pin{{X: 0, Y: 0}, {X: 2, Y: 2}})
	require.NoError(t, err)
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	require.NoError(t, astar.RouteNet(g, n, fr))

	// 2 horizontal on M0 (cost 2) + 2 vertical on M0 (cost 2*(1+10)=22) = 24.
	assert.EqualValues(t, 24, n.Cost)
}

// Scenario 3: a via is cheaper than paying the bend penalty twice.
func TestRouteNet_ViaCheaperThanBend(t *testing.T) {
	g := newGrid(t, 5, 5, 10, 1)
	n, err := netlist.New("n1", []netlist.Pin{{X: 0, Y: 0}, {X: 0, Y: 3}})
	require.NoError(t, err)
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	require.NoError(t, astar.RouteNet(g, n, fr))

	assert.EqualValues(t, 5, n.Cost)
}

// Scenario 4: an obstacle forces a two-step detour. The via penalty is
// set high enough that detouring around the obstacle in-plane (two extra
// steps) beats routing around it via the other layer (two vias).
func TestRouteNet_ObstacleDetour(t *testing.T) {
	g := newGrid(t, 5, 5, 0, 3)
	require.NoError(t, g.AddObstacle(grid.M0, 2, 0))
	n, err := netlist.New("n1", []netlist.Pin{{X: 0, Y: 0}, {X: 4, Y: 0}})
	require.NoError(t, err)
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	require.NoError(t, astar.RouteNet(g, n, fr))

	assert.EqualValues(t, 6, n.Cost)
	for _, c := range n.Route {
		assert.False(t, c.X == 2 && c.Y == 0)
	}
}

// Scenario 5: multi-pin Steiner-like routing shares a trunk.
func TestRouteNet_MultiPinSteiner(t *testing.T) {
	g := newGrid(t, 10, 10, 0, 0)
	n, err := netlist.New("n1", []netlist.Pin{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 5, Y: 5}})
	require.NoError(t, err)
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	require.NoError(t, astar.RouteNet(g, n, fr))

	// 10 cells along y=0 to (9,0), then 5 more from the junction (5,0) up
	// to (5,5); the junction is counted once.
	assert.Len(t, n.Route, 15)

	seen := map[grid.Coordinate]bool{}
	for _, c := range n.Route {
		seen[c] = true
	}
	for _, p := range n.Pins {
		assert.True(t, seen[p], "route must contain pin %v", p)
	}
}

// Two pins that coincide yield a one-cell route at zero cost.
func TestRouteNet_CoincidentPins(t *testing.T) {
	g := newGrid(t, 5, 5, 0, 0)
	n, err := netlist.New("n1", []netlist.Pin{{X: 2, Y: 2}, {X: 2, Y: 2}})
	require.NoError(t, err)
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	require.NoError(t, astar.RouteNet(g, n, fr))

	assert.EqualValues(t, 0, n.Cost)
	assert.Equal(t, []grid.Coordinate{{X: 2, Y: 2}}, n.Route)
}

// A single-pin net routes trivially and is never reported as a failure.
func TestRouteNet_SinglePin(t *testing.T) {
	g := newGrid(t, 5, 5, 0, 0)
	n, err := netlist.New("n1", []netlist.Pin{{X: 1, Y: 1}})
	require.NoError(t, err)
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	require.NoError(t, astar.RouteNet(g, n, fr))

	assert.True(t, n.Routed())
	assert.Equal(t, []grid.Coordinate{{X: 1, Y: 1}}, n.Route)
}

// Pins separated only by obstacles on both layers fail to route.
func TestRouteNet_UnroutableBehindObstacles(t *testing.T) {
	g := newGrid(t, 3, 3, 0, 0)
	for y := 0; y < 3; y++ {
		require.NoError(t, g.AddObstacle(grid.M0, 1, y))
		require.NoError(t, g.AddObstacle(grid.M1, 1, y))
	}
	n, err := netlist.New("n1", []netlist.Pin{{X: 0, Y: 1}, {X: 2, Y: 1}})
	require.NoError(t, err)
	g.ReservePins(netlist.List{n}.PinOwners())

	fr := astar.NewFrontier(g)
	err = astar.RouteNet(g, n, fr)
	assert.ErrorIs(t, err, astar.ErrUnroutable)
	assert.False(t, n.Routed())
}

package routerall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrakis-eda/gridrouter/grid"
	"github.com/arrakis-eda/gridrouter/netlist"
	"github.com/arrakis-eda/gridrouter/routerall"
)

func newGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(w, h, grid.DefaultOptions())
	require.NoError(t, err)

	return g
}

func TestRouteAll_EmptyNetlist(t *testing.T) {
	g := newGrid(t, 3, 3)
	err := routerall.RouteAll(g, nil)
	assert.ErrorIs(t, err, routerall.ErrNoNets)
}

func TestRouteAll_SingleNetSucceedsFirstAttempt(t *testing.T) {
	g := newGrid(t, 5, 5)
	n, err := netlist.New("n1", []netlist.Pin{{X: 0, Y: 0}, {X: 4, Y: 4}})
	require.NoError(t, err)
	nets := netlist.List{n}
	g.ReservePins(nets.PinOwners())

	var events []routerall.EventKind
	var routedNet *netlist.Net
	err = routerall.RouteAll(g, nets, routerall.WithProgress(func(e routerall.Event) {
		events = append(events, e.Kind)
		if e.Kind == routerall.NetRouted {
			routedNet = e.Net
		}
	}))
	require.NoError(t, err)
	assert.True(t, n.Routed())
	assert.Contains(t, events, routerall.AttemptSucceeded)
	require.NotNil(t, routedNet)
	assert.Same(t, n, routedNet)
}

// Two nets whose straight-line routes collide in a single fixed order
// must still succeed within enough attempts, since shuffling finds an
// ordering where the first net is forced to detour around the second.
// With M1 fully blocked, routing a first takes (1,1) and walls in b's pin
// at (1,0); routing b first makes a detour through y=2..3. Seed 4 routes
// a first on attempt 0, so success needs at least one reshuffle.
func TestRouteAll_RipUpViaReshuffle(t *testing.T) {
	g := newGrid(t, 3, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			require.NoError(t, g.AddObstacle(grid.M1, x, y))
		}
	}
	require.NoError(t, g.AddObstacle(grid.M0, 0, 0))
	require.NoError(t, g.AddObstacle(grid.M0, 2, 0))
	a, err := netlist.New("a", []netlist.Pin{{X: 0, Y: 1}, {X: 2, Y: 1}})
	require.NoError(t, err)
	b, err := netlist.New("b", []netlist.Pin{{X: 1, Y: 0}, {X: 1, Y: 2}})
	require.NoError(t, err)
	nets := netlist.List{a, b}
	g.ReservePins(nets.PinOwners())

	var events []routerall.EventKind
	err = routerall.RouteAll(g, nets, routerall.WithMaxAttempts(20), routerall.WithSeed(4),
		routerall.WithProgress(func(e routerall.Event) { events = append(events, e.Kind) }))
	require.NoError(t, err)
	assert.True(t, a.Routed())
	assert.True(t, b.Routed())
	assert.Contains(t, events, routerall.AttemptFailed)
}

func TestRouteAll_ExhaustsAttemptsOnUnroutableNet(t *testing.T) {
	g := newGrid(t, 3, 3)
	for y := 0; y < 3; y++ {
		require.NoError(t, g.AddObstacle(grid.M0, 1, y))
		require.NoError(t, g.AddObstacle(grid.M1, 1, y))
	}
	n, err := netlist.New("n1", []netlist.Pin{{X: 0, Y: 1}, {X: 2, Y: 1}})
	require.NoError(t, err)
	nets := netlist.List{n}
	g.ReservePins(nets.PinOwners())

	err = routerall.RouteAll(g, nets, routerall.WithMaxAttempts(3))
	assert.ErrorIs(t, err, routerall.ErrAllAttemptsFailed)
	assert.False(t, n.Routed())
}

func TestRouteAll_DeterministicGivenSameSeed(t *testing.T) {
	build := func() (*grid.Grid, netlist.List) {
		g := newGrid(t, 6, 6)
		a, err := netlist.New("a", []netlist.Pin{{X: 0, Y: 0}, {X: 5, Y: 0}})
		require.NoError(t, err)
		b, err := netlist.New("b", []netlist.Pin{{X: 0, Y: 5}, {X: 5, Y: 5}})
		require.NoError(t, err)
		nets := netlist.List{a, b}
		g.ReservePins(nets.PinOwners())

		return g, nets
	}

	g1, nets1 := build()
	require.NoError(t, routerall.RouteAll(g1, nets1, routerall.WithSeed(42)))

	g2, nets2 := build()
	require.NoError(t, routerall.RouteAll(g2, nets2, routerall.WithSeed(42)))

	for i := range nets1 {
		assert.Equal(t, nets1[i].Route, nets2[i].Route)
		assert.Equal(t, nets1[i].Cost, nets2[i].Cost)
	}
}

func TestWithMaxAttempts_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() {
		routerall.WithMaxAttempts(0)(&routerall.Options{})
	})
}

package netlist

import (
	"fmt"
	"math"
	"strings"

	"github.com/arrakis-eda/gridrouter/grid"
)

// Pin is a fixed Coordinate a Net must include in its route. A Pin
// belongs permanently to exactly one Net.
type Pin = grid.Coordinate

// CostUndefined is the sentinel cost of a Net before it has been routed,
// or immediately after a rip-up: route is empty and cost is undefined.
const CostUndefined = math.MaxInt64

// Net is a named collection of Pins that must be electrically connected
// by a single routed tree. Route and Cost are populated by a successful
// call into package astar and cleared by ClearRoute.
type Net struct {
	// Name is the net's stable identity, taken verbatim from the input
	// file's net token.
	Name string
	// Pins is the ordered list of pin coordinates parsed for this net.
	Pins []Pin
	// Route is the ordered cell sequence produced by the last
	// successful route, or nil before routing / after a rip-up.
	Route []grid.Coordinate
	// Cost is the total routing cost of Route, or CostUndefined before
	// routing / after a rip-up.
	Cost int64
}

// New constructs a Net with the given name and pins. Returns ErrEmptyName
// or ErrNoPins for invalid input. The returned Net is unrouted.
func New(name string, pins []Pin) (*Net, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(pins) == 0 {
		return nil, ErrNoPins
	}

	return &Net{
		Name:  name,
		Pins:  append([]Pin(nil), pins...),
		Route: nil,
		Cost:  CostUndefined,
	}, nil
}

// Routed reports whether Net currently holds a successful route, that is,
// whether Cost is set. A single-pin net reports false until package astar
// gives it its one-cell route at cost 0.
func (n *Net) Routed() bool {
	return n.Cost != CostUndefined
}

// ClearRoute discards Route and resets Cost to CostUndefined, the Net
// side of a rip-up.
func (n *Net) ClearRoute() {
	n.Route = nil
	n.Cost = CostUndefined
}

// String renders a short debug summary of the net's routing status.
func (n *Net) String() string {
	if n.Routed() {
		return fmt.Sprintf("%s: %d pins, cost=%d", n.Name, len(n.Pins), n.Cost)
	}

	return fmt.Sprintf("%s: %d pins, cost=undefined", n.Name, len(n.Pins))
}

// RouteString renders Route as "(layer,x,y) (layer,x,y) ...", the cell
// sequence format used by package netfile's writer.
func (n *Net) RouteString() string {
	parts := make([]string, len(n.Route))
	for i, c := range n.Route {
		parts[i] = fmt.Sprintf("(%d,%d,%d)", c.Layer, c.X, c.Y)
	}

	return strings.Join(parts, " ")
}

// List is an ordered collection of Nets, the unit the routerall package
// clears, shuffles, and routes one attempt at a time.
type List []*Net

// PinOwners builds the reserved-pin map grid.Grid.ReservePins expects:
// every pin of every net in l, mapped to that net's name.
func (l List) PinOwners() map[grid.Coordinate]string {
	owners := make(map[grid.Coordinate]string)
	for _, n := range l {
		for _, p := range n.Pins {
			owners[p] = n.Name
		}
	}

	return owners
}

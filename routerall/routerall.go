package routerall

import (
	"github.com/arrakis-eda/gridrouter/astar"
	"github.com/arrakis-eda/gridrouter/grid"
	"github.com/arrakis-eda/gridrouter/netlist"
)

// RouteAll routes every net in nets against g, retrying up to
// opts.MaxAttempts times. On success every net in nets holds a route and
// RouteAll returns nil. On exhaustion it returns ErrAllAttemptsFailed;
// the nets and g are left exactly as the last (failed) attempt left
// them, with at least one net unrouted.
//
// g must already have ReservePins called with nets.PinOwners(); RouteAll
// does not call it, since the pin-to-net mapping does not change between
// attempts and the caller may be reusing g across multiple netlists.
func RouteAll(g *grid.Grid, nets netlist.List, opts ...Option) error {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if len(nets) == 0 {
		return ErrNoNets
	}

	fr := astar.NewFrontier(g)

	for attempt := 0; attempt < o.MaxAttempts; attempt++ {
		o.emit(Event{Kind: AttemptStarted, Attempt: attempt})

		for _, n := range nets {
			g.ClearPath(n.Name)
			n.ClearRoute()
		}

		order := shuffledOrder(len(nets), o.Seed, attempt)

		succeeded := true
		for _, idx := range order {
			n := nets[idx]
			if err := astar.RouteNet(g, n, fr); err != nil {
				o.emit(Event{Kind: NetFailed, Attempt: attempt, NetName: n.Name, Net: n})
				succeeded = false

				break
			}
			o.emit(Event{Kind: NetRouted, Attempt: attempt, NetName: n.Name, Net: n})
		}

		if succeeded {
			o.emit(Event{Kind: AttemptSucceeded, Attempt: attempt})

			return nil
		}
		o.emit(Event{Kind: AttemptFailed, Attempt: attempt})
	}

	return ErrAllAttemptsFailed
}

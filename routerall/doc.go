// Package routerall orchestrates routing every net in a netlist.List
// against a shared grid.Grid: it clears all state, shuffles net order,
// and routes nets one at a time via package astar, retrying the whole
// attempt from scratch whenever any net fails to route.
//
// The only recovery mechanism is reordering — there is no per-segment
// rip-up, no cost-based negotiated congestion, and no history-based
// penalty. Easy nets routed first can block hard nets; a randomised
// reshuffle between attempts is the one cheap corrective available.
//
// Routing is single-threaded and synchronous: nets within an attempt
// are routed strictly serially in shuffled order, and the single-net
// router sees the cumulative occupancy left behind by every net routed
// earlier in that same attempt.
package routerall

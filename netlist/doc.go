// Package netlist defines Pin and Net, the passive value aggregates of a
// routing problem: a Pin is a fixed Coordinate a net must include in its
// route; a Net owns an ordered list of Pins and, once routed, the
// ordered cell sequence that connects them and its total cost.
//
// Net and Pin carry no behaviour beyond construction, route bookkeeping,
// and string rendering; the routing algorithms live in astar and
// routerall.
package netlist

// Package netfile reads and writes the plain-text netlist format
// consumed and produced by the gridroute command: a grid header, zero or
// more obstacle lines, and zero or more net lines, in any order after the
// header; and, for output, one line per successfully routed net.
//
// Parsing and writing are decoupled from the routing core in grid,
// netlist, astar, and routerall — this package is the only thing that
// knows the textual wire format.
package netfile

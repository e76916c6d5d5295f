// Package gridrouter implements a two-layer grid maze router for VLSI
// net lists.
//
// It brings together:
//
//   - grid      — the two-layer occupancy grid, move model, and legality rules
//   - netlist   — Pin and Net value types
//   - astar     — the single-net multi-pin router (incremental Steiner-like A*)
//   - routerall — the attempt/shuffle/retry loop over an entire netlist
//   - netfile   — the plain-text netlist format and an optional YAML config
//
// The command-line driver lives in cmd/gridroute.
//
//	go get github.com/arrakis-eda/gridrouter
package gridrouter

// Package grid implements the two-layer routing grid: per-cell obstacle
// bitmaps for metal layers M0 and M1, per-net cell occupancy, and the move
// model (same-layer steps plus vias) that the astar and routerall packages
// search over.
//
// A Grid is created once from parsed input (see netfile), obstacles are
// added once at setup, and never mutated afterward. Occupancy is mutated
// only by MarkPath and ClearPath, always from the single routing goroutine
// that owns a given Grid (see routerall's concurrency notes).
package grid

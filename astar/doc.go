// Package astar implements the single-net multi-pin router: an
// incremental, Steiner-like A* that grows a connected source set S
// toward the remaining target pins T, one nearest-target sub-search at a
// time, until T is empty or a sub-search exhausts its open set.
//
// This is deliberately not a minimum Steiner tree solver; later
// sub-searches merely start cheap from any cell already claimed by
// earlier ones, encouraging shared trunks. See RouteNet's doc comment
// for the precise algorithm.
//
// The open set is a binary heap in the lazy-decrease-key style:
// duplicates are pushed rather than reprioritized, and stale entries are
// skipped on pop. Per-search state (g-scores, predecessors) lives in
// dense arrays indexed by grid.Grid.Index, tagged with a per-search
// generation counter so a Frontier can be reused across a net's
// sub-searches and across nets without reallocating — a dense-array
// alternative to a hash-map predecessor table, workable for any grid
// small enough to fit 2*Width*Height in memory.
package astar

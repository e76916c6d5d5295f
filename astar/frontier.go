package astar

import (
	"container/heap"

	"github.com/arrakis-eda/gridrouter/grid"
)

// queueItem is a candidate Coordinate and its A* priority (f = g + h).
// Stored in frontier.open, a min-heap ordered on priority.
type queueItem struct {
	coord    grid.Coordinate
	priority int
}

// openHeap is a binary min-heap of *queueItem, ordered by priority
// ascending. Ties are broken by the heap's natural pop order.
type openHeap []*queueItem

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(*queueItem)) }
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return it
}

// frontier holds the per-search state for the incremental A*: dense
// g-scores and predecessor links tagged with a generation counter, plus
// the open-set heap. A single frontier is reused across every sub-search
// of every net in an attempt, amortising allocation.
type frontier struct {
	g *grid.Grid

	gen      []uint32
	curGen   uint32
	gScore   []int
	cameFrom []grid.Coordinate
	hasPred  []bool
	closedAt []uint32

	open openHeap
}

// newFrontier allocates a frontier sized for g. The arrays are sized
// once and reused; reset() only bumps the generation counter.
func newFrontier(g *grid.Grid) *frontier {
	n := g.NumCells()

	return &frontier{
		g:        g,
		gen:      make([]uint32, n),
		gScore:   make([]int, n),
		cameFrom: make([]grid.Coordinate, n),
		hasPred:  make([]bool, n),
		closedAt: make([]uint32, n),
	}
}

// reset starts a new sub-search: all previously discovered/closed state
// becomes stale without being rewritten, since every lookup compares
// against curGen.
func (f *frontier) reset() {
	f.curGen++
	f.open = f.open[:0]
}

// discovered reports the current best g-score for c in this sub-search,
// if any.
func (f *frontier) discovered(c grid.Coordinate) (int, bool) {
	idx := f.g.Index(c)
	if f.gen[idx] != f.curGen {
		return 0, false
	}

	return f.gScore[idx], true
}

// discover records (or improves) c's g-score and predecessor for the
// current sub-search.
func (f *frontier) discover(c grid.Coordinate, score int, pred grid.Coordinate, hasPred bool) {
	idx := f.g.Index(c)
	f.gen[idx] = f.curGen
	f.gScore[idx] = score
	f.cameFrom[idx] = pred
	f.hasPred[idx] = hasPred
}

// predecessor returns c's predecessor in the current sub-search, if c
// was discovered with one (sources have none).
func (f *frontier) predecessor(c grid.Coordinate) (grid.Coordinate, bool) {
	idx := f.g.Index(c)
	if f.gen[idx] != f.curGen || !f.hasPred[idx] {
		return grid.Coordinate{}, false
	}

	return f.cameFrom[idx], true
}

// closed reports whether c has already been expanded in this sub-search.
func (f *frontier) closed(c grid.Coordinate) bool {
	idx := f.g.Index(c)

	return f.closedAt[idx] == f.curGen
}

// markClosed records c as expanded for the current sub-search.
func (f *frontier) markClosed(c grid.Coordinate) {
	f.closedAt[f.g.Index(c)] = f.curGen
}

// push adds c to the open heap with the given priority.
func (f *frontier) push(c grid.Coordinate, priority int) {
	heap.Push(&f.open, &queueItem{coord: c, priority: priority})
}

// pop removes and returns the lowest-priority open item, or ok=false if
// the open set is empty.
func (f *frontier) pop() (grid.Coordinate, bool) {
	if len(f.open) == 0 {
		return grid.Coordinate{}, false
	}
	it := heap.Pop(&f.open).(*queueItem)

	return it.coord, true
}

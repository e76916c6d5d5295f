package grid

// Grid owns the obstacle bitmaps for both metal layers and the per-net
// occupancy of a two-layer routing grid. It exposes move legality,
// neighbour generation with costs, and path mark/clear operations to the
// astar and routerall packages.
//
// Grid does not reach back into a list of Nets to check pin
// reservations; instead, the owner of a routing attempt precomputes a
// reserved-pin map once (ReservePins) and Grid consults it in O(1) per
// neighbour instead of scanning every net.
type Grid struct {
	Width, Height int
	BendPenalty   int
	ViaPenalty    int

	obstacles [2][]bool // obstacles[layer][y*Width+x]

	// cellOwner maps an occupied Coordinate to the name of the net that
	// currently occupies it. A cell appears here only while some net's
	// route includes it.
	cellOwner map[Coordinate]string

	// occupancy mirrors cellOwner grouped by net name, for ClearPath and
	// for exposing the occupancy set of a given net to callers.
	occupancy map[string]map[Coordinate]struct{}

	// pinOwner maps every pin of every net to that net's name. It is
	// populated once via ReservePins and never mutated by routing.
	pinOwner map[Coordinate]string
}

// NewGrid constructs an empty Grid of the given dimensions with no
// obstacles and no occupancy. Returns ErrBadDimensions if width or height
// is not positive, or ErrNegativePenalty if either penalty is negative.
func NewGrid(width, height int, opts Options) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	if opts.BendPenalty < 0 || opts.ViaPenalty < 0 {
		return nil, ErrNegativePenalty
	}

	g := &Grid{
		Width:       width,
		Height:      height,
		BendPenalty: opts.BendPenalty,
		ViaPenalty:  opts.ViaPenalty,
		cellOwner:   make(map[Coordinate]string),
		occupancy:   make(map[string]map[Coordinate]struct{}),
		pinOwner:    make(map[Coordinate]string),
	}
	g.obstacles[M0] = make([]bool, width*height)
	g.obstacles[M1] = make([]bool, width*height)

	return g, nil
}

// InBounds reports whether (x,y) lies within [0,Width) x [0,Height).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// cellIndex maps (x,y) to a row-major index into a per-layer obstacle slice.
func (g *Grid) cellIndex(x, y int) int {
	return y*g.Width + x
}

// Index returns a compact index for c in [0, 2*Width*Height), suitable
// for dense per-search arrays (see astar's frontier). Callers must only
// use this with in-bounds coordinates.
func (g *Grid) Index(c Coordinate) int {
	return int(c.Layer)*g.Width*g.Height + g.cellIndex(c.X, c.Y)
}

// NumCells returns 2*Width*Height, the size of the dense index space.
func (g *Grid) NumCells() int {
	return 2 * g.Width * g.Height
}

// AddObstacle marks (layer,x,y) as permanently unroutable. Must only be
// called during setup, before any routing. Returns ErrBadLayer or
// ErrOutOfBounds for invalid input.
func (g *Grid) AddObstacle(layer Layer, x, y int) error {
	if layer != M0 && layer != M1 {
		return ErrBadLayer
	}
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.obstacles[layer][g.cellIndex(x, y)] = true

	return nil
}

// IsObstacle reports whether (layer,x,y) was marked by AddObstacle.
// Out-of-bounds coordinates are reported as obstacles.
func (g *Grid) IsObstacle(c Coordinate) bool {
	if !g.InBounds(c.X, c.Y) {
		return true
	}

	return g.obstacles[c.Layer][g.cellIndex(c.X, c.Y)]
}

// ReservePins records, for every net, which coordinates are its pins.
// owners maps a pin Coordinate to the owning net's name. It must be
// called once after all nets are known (and before routing begins) and
// is not mutated afterward; a net's pins do not change across attempts.
func (g *Grid) ReservePins(owners map[Coordinate]string) {
	g.pinOwner = owners
}

// PinOwner returns the name of the net that owns pin c, and whether c is
// a pin of any net at all.
func (g *Grid) PinOwner(c Coordinate) (string, bool) {
	name, ok := g.pinOwner[c]

	return name, ok
}

// IsLegal reports whether c is a legal cell for net netName: in bounds,
// not an obstacle, not occupied by a different net, and not a pin of a
// different net.
func (g *Grid) IsLegal(c Coordinate, netName string) bool {
	if !g.InBounds(c.X, c.Y) {
		return false
	}
	if g.obstacles[c.Layer][g.cellIndex(c.X, c.Y)] {
		return false
	}
	if owner, ok := g.cellOwner[c]; ok && owner != netName {
		return false
	}
	if owner, ok := g.pinOwner[c]; ok && owner != netName {
		return false
	}

	return true
}

// Step is a candidate next Coordinate together with its step cost.
type Step struct {
	To   Coordinate
	Cost int
}

// Neighbours returns every legal candidate reachable from pos in a
// single move for net netName, with its step cost. prev is accepted for
// symmetry with the move model but, per the simpler cost rule this grid
// uses (see DESIGN.md, Open Question decision 2), does not affect the
// returned costs.
//
// Same-layer moves are emitted preferred-direction-first (M0: +-x then
// +-y; M1: +-y then +-x), followed by the via, stabilising tie-breaks
// in the A* open set.
func (g *Grid) Neighbours(pos Coordinate, prev *Coordinate, netName string) []Step {
	_ = prev // not used by the current cost model.

	steps := make([]Step, 0, 5)

	var horizontal, vertical [2][2]int
	horizontal = [2][2]int{{1, 0}, {-1, 0}}
	vertical = [2][2]int{{0, 1}, {0, -1}}

	var primary, secondary [2][2]int
	if pos.Layer == M0 {
		primary, secondary = horizontal, vertical
	} else {
		primary, secondary = vertical, horizontal
	}

	appendMove := func(dx, dy int) {
		cand := Coordinate{Layer: pos.Layer, X: pos.X + dx, Y: pos.Y + dy}
		if !g.IsLegal(cand, netName) {
			return
		}

		cost := 1
		isHorizontal := dx != 0
		if (pos.Layer == M0 && !isHorizontal) || (pos.Layer == M1 && isHorizontal) {
			cost += g.BendPenalty
		}
		steps = append(steps, Step{To: cand, Cost: cost})
	}

	for _, d := range primary {
		appendMove(d[0], d[1])
	}
	for _, d := range secondary {
		appendMove(d[0], d[1])
	}

	via := Coordinate{Layer: pos.Layer.Other(), X: pos.X, Y: pos.Y}
	if g.IsLegal(via, netName) {
		steps = append(steps, Step{To: via, Cost: g.ViaPenalty})
	}

	return steps
}

// MarkPath inserts every Coordinate in cells into occupancy[netName] and
// records netName as each cell's owner.
func (g *Grid) MarkPath(cells []Coordinate, netName string) {
	set, ok := g.occupancy[netName]
	if !ok {
		set = make(map[Coordinate]struct{}, len(cells))
		g.occupancy[netName] = set
	}
	for _, c := range cells {
		set[c] = struct{}{}
		g.cellOwner[c] = netName
	}
}

// ClearPath removes the occupancy entry for netName entirely, releasing
// every cell it owned.
func (g *Grid) ClearPath(netName string) {
	set, ok := g.occupancy[netName]
	if !ok {
		return
	}
	for c := range set {
		if g.cellOwner[c] == netName {
			delete(g.cellOwner, c)
		}
	}
	delete(g.occupancy, netName)
}

// Occupancy returns the set of Coordinates currently owned by netName.
// The returned map must not be mutated by the caller.
func (g *Grid) Occupancy(netName string) map[Coordinate]struct{} {
	return g.occupancy[netName]
}

package hexgrid

// Grid2D is a dense width x height scratch grid of int32, used by the
// flood-fill helpers and by King.Evaluate.
type Grid2D struct {
	width, height int
	data          [][]int32
}

// NewGrid2D allocates a zeroed scratch grid matching g's dimensions.
func NewGrid2D(g *Grid) *Grid2D {
	return NewGrid2DSize(g.Width(), g.Height())
}

// NewGrid2DSize allocates a zeroed w x h scratch grid.
func NewGrid2DSize(w, h int) *Grid2D {
	data := make([][]int32, w)
	for x := range data {
		data[x] = make([]int32, h)
	}
	return &Grid2D{width: w, height: h, data: data}
}

// At returns the value at pos, or 0 if pos is out of bound.
func (g *Grid2D) At(pos Pos) int32 {
	if pos.X < 0 || int(pos.X) >= g.width || pos.Y < 0 || int(pos.Y) >= g.height {
		return 0
	}
	return g.data[pos.X][pos.Y]
}

// Set assigns the value at pos; a no-op if pos is out of bound.
func (g *Grid2D) Set(pos Pos, v int32) {
	if pos.X < 0 || int(pos.X) >= g.width || pos.Y < 0 || int(pos.Y) >= g.height {
		return
	}
	g.data[pos.X][pos.Y] = v
}

// Zero resets every cell to 0.
func (g *Grid2D) Zero() {
	for x := range g.data {
		for y := range g.data[x] {
			g.data[x][y] = 0
		}
	}
}

// FloodfillClosest writes (val, dist) onto habitable tiles reachable
// from pos, keeping whichever source reaches a tile with the smallest
// dist (ties keep the first writer). d is the distance scratch grid (initialize to a
// large sentinel before the first call across sources); u receives the
// winning source id.
func FloodfillClosest(g *Grid, u, d *Grid2D, pos Pos, val int32, dist int32) {
	if !g.InBound(pos) {
		return
	}
	t := g.MustAt(pos)
	if t.Kind != Habitable {
		return
	}
	if dist >= d.At(pos) {
		return
	}
	u.Set(pos, val)
	d.Set(pos, dist)
	for _, n := range pos.Neighbors() {
		FloodfillClosest(g, u, d, n, val, dist+1)
	}
}

// Floodfill paints habitable tiles reachable from pos with val,
// skipping any tile u already has a nonzero paint on. Used for
// connectedness-style reachability sweeps distinct from Grid.IsConnected
// (which walks all non-Void tiles, not just habitable ones).
func Floodfill(g *Grid, u *Grid2D, pos Pos, val int32) {
	if !g.InBound(pos) {
		return
	}
	t := g.MustAt(pos)
	if t.Kind != Habitable {
		return
	}
	if u.At(pos) != 0 {
		return
	}
	u.Set(pos, val)
	for _, n := range pos.Neighbors() {
		Floodfill(g, u, n, val)
	}
}

package hexgrid

// Shape selects the stencil used to carve the generated rectangle
// into a playable silhouette and to produce the candidate starting
// locations conflict placement ranks against.
type Shape int

const (
	ShapeRhombus Shape = iota
	ShapeRect
	ShapeHex
)

// Stencil masks out-of-shape cells to Void and hands back a fixed
// candidate-location array (4 for Rhombus/Rect, 6 for Hex) that
// conflict rotates through when assigning starting positions.
type Stencil interface {
	// InShape reports whether pos lies inside the playable silhouette.
	InShape(pos Pos, width, height int) bool
	// Locations returns the fixed candidate starting positions for a
	// width x height grid.
	Locations(width, height int) []Pos
}

// RhombusStencil keeps the whole dense rectangle — in axial
// coordinates a width x height block is already a rhombus — and
// starts candidates at its four corners.
type RhombusStencil struct{}

func (RhombusStencil) InShape(Pos, int, int) bool { return true }

func (RhombusStencil) Locations(width, height int) []Pos {
	return []Pos{
		{X: 1, Y: 1},
		{X: int32(width - 2), Y: 1},
		{X: 1, Y: int32(height - 2)},
		{X: int32(width - 2), Y: int32(height - 2)},
	}
}

// RectStencil carves the parallelogram down to an axis-aligned
// rectangle by voiding the two triangular wedges that a rhombus grid
// would otherwise show in screen space.
type RectStencil struct{}

func (RectStencil) InShape(pos Pos, width, height int) bool {
	lo := int32(pos.Y) / 2
	hi := int32(width) - 1 - (int32(height)-1-pos.Y)/2
	return pos.X >= lo && pos.X <= hi
}

func (s RectStencil) Locations(width, height int) []Pos {
	return []Pos{
		{X: int32(height)/2 + 1, Y: 1},
		{X: int32(width) - 2, Y: 1},
		{X: 1, Y: int32(height) - 2},
		{X: int32(width) - int32(height)/2 - 2, Y: int32(height) - 2},
	}
}

// HexStencil carves a hexagonal silhouette of radius
// min(width,height)/2 - 1 (at least 0) centered on the grid, with six
// candidate locations at the ring's corners.
type HexStencil struct{}

func hexCenter(width, height int) Pos {
	return Pos{X: int32(width / 2), Y: int32(height / 2)}
}

func hexRadius(width, height int) int32 {
	r := int32(width / 2)
	if int32(height/2) < r {
		r = int32(height / 2)
	}
	if r < 1 {
		r = 1
	}
	return r - 1
}

func (HexStencil) InShape(pos Pos, width, height int) bool {
	return hexDistance(pos, hexCenter(width, height)) <= hexRadius(width, height)
}

func hexDistance(a, b Pos) int32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	ds := (a.X + a.Y) - (b.X + b.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if ds < 0 {
		ds = -ds
	}
	max := dx
	if dy > max {
		max = dy
	}
	if ds > max {
		max = ds
	}
	return max
}

func (HexStencil) Locations(width, height int) []Pos {
	center := hexCenter(width, height)
	radius := hexRadius(width, height)
	locs := make([]Pos, 6)
	for k := 0; k < 6; k++ {
		locs[k] = center.Add(Directions[k].Scale(radius))
	}
	return locs
}

// NewStencil returns the Stencil implementation for shape.
func NewStencil(shape Shape) Stencil {
	switch shape {
	case ShapeRect:
		return RectStencil{}
	case ShapeHex:
		return HexStencil{}
	default:
		return RhombusStencil{}
	}
}

// ApplyShape overwrites every out-of-shape cell to Void.
func ApplyShape(g *Grid, s Stencil) {
	g.Each(func(pos Pos, t Tile) {
		if !s.InShape(pos, g.Width(), g.Height()) {
			_ = g.Set(pos, VoidTile())
		}
	})
}

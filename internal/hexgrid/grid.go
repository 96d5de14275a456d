package hexgrid

import "github.com/lukev/curse-of-war/internal/gameerrors"

// Grid is the dense hex tile store. Dimensions are fixed after
// construction.
type Grid struct {
	width, height int
	tiles         [][]Tile // tiles[x][y]
}

// NewGrid allocates a width x height grid of Void tiles.
func NewGrid(width, height int) *Grid {
	if width > MaxWidth {
		width = MaxWidth
	}
	if height > MaxHeight {
		height = MaxHeight
	}
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = VoidTile()
		}
	}
	return &Grid{width: width, height: height, tiles: tiles}
}

// Width returns the grid's fixed width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's fixed height.
func (g *Grid) Height() int { return g.height }

// InBound reports whether pos addresses a live cell.
func (g *Grid) InBound(pos Pos) bool {
	return pos.X >= 0 && int(pos.X) < g.width && pos.Y >= 0 && int(pos.Y) < g.height
}

// At returns the tile at pos.
func (g *Grid) At(pos Pos) (Tile, error) {
	if !g.InBound(pos) {
		return Tile{}, &gameerrors.PosOutOfBoundError{X: int(pos.X), Y: int(pos.Y)}
	}
	return g.tiles[pos.X][pos.Y], nil
}

// MustAt panics on out-of-bound access; used internally where pos has
// already been bound-checked by the caller (e.g. during a Neighbors()
// walk over an already-validated grid).
func (g *Grid) MustAt(pos Pos) Tile {
	return g.tiles[pos.X][pos.Y]
}

// Set overwrites the tile at pos.
func (g *Grid) Set(pos Pos, t Tile) error {
	if !g.InBound(pos) {
		return &gameerrors.PosOutOfBoundError{X: int(pos.X), Y: int(pos.Y)}
	}
	g.tiles[pos.X][pos.Y] = t
	return nil
}

// Mutate calls fn with a pointer to the tile at pos, allowing in-place
// edits without a Set round trip.
func (g *Grid) Mutate(pos Pos, fn func(*Tile)) error {
	if !g.InBound(pos) {
		return &gameerrors.PosOutOfBoundError{X: int(pos.X), Y: int(pos.Y)}
	}
	fn(&g.tiles[pos.X][pos.Y])
	return nil
}

// Each visits every in-bound position, in X-major then Y-minor order.
func (g *Grid) Each(fn func(Pos, Tile)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(Pos{X: int32(x), Y: int32(y)}, g.tiles[x][y])
		}
	}
}

// UpgradeCost validates a prospective build by player at pos and
// returns the gold cost without mutating anything.
func (g *Grid) UpgradeCost(pos Pos, player int) (uint64, error) {
	t, err := g.At(pos)
	if err != nil {
		return 0, err
	}
	if t.Kind != Habitable {
		return 0, &gameerrors.TileNotHabitableError{X: int(pos.X), Y: int(pos.Y)}
	}
	if t.Owner != player {
		return 0, &gameerrors.NotOwnerError{Operator: player, Owner: t.Owner, X: int(pos.X), Y: int(pos.Y)}
	}
	if t.Land == Fortress {
		return 0, gameerrors.ErrUpgradeTopLevelBuilding
	}
	return t.Land.UpgradeCost(), nil
}

// Build upgrades the tile at pos one land level, assuming the caller
// has already paid (or will pay) UpgradeCost. It re-validates
// ownership/habitability itself so it is safe to call standalone.
func (g *Grid) Build(pos Pos, player int) error {
	t, err := g.At(pos)
	if err != nil {
		return err
	}
	if t.Kind != Habitable {
		return &gameerrors.TileNotHabitableError{X: int(pos.X), Y: int(pos.Y)}
	}
	if t.Owner != player {
		return &gameerrors.NotOwnerError{Operator: player, Owner: t.Owner, X: int(pos.X), Y: int(pos.Y)}
	}
	next, ok := t.Land.Upgrade()
	if !ok {
		return gameerrors.ErrUpgradeTopLevelBuilding
	}
	return g.Mutate(pos, func(tile *Tile) { tile.Land = next })
}

// DegradeOneStep drops the tile at pos one land level (used by city
// burning). Returns false and ErrDegradeGrassland if pos is already
// Grassland.
func (g *Grid) DegradeOneStep(pos Pos) (bool, error) {
	t, err := g.At(pos)
	if err != nil {
		return false, err
	}
	if t.Kind != Habitable {
		return false, &gameerrors.TileNotHabitableError{X: int(pos.X), Y: int(pos.Y)}
	}
	prev, ok := t.Land.Degrade()
	if !ok {
		return false, gameerrors.ErrDegradeGrassland
	}
	return true, g.Mutate(pos, func(tile *Tile) { tile.Land = prev })
}

// IsConnected reports whether every non-Void tile (habitable, mine or
// mountain, whatever its owner) belongs to a single connected
// component under six-direction adjacency.
func (g *Grid) IsConnected() bool {
	seen := make(map[Pos]bool)
	var start Pos
	found := false
	ownedCount := 0
	g.Each(func(p Pos, t Tile) {
		if t.Kind == Void {
			return
		}
		ownedCount++
		if !found {
			start = p
			found = true
		}
	})
	if !found {
		return true
	}
	queue := []Pos{start}
	seen[start] = true
	visited := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		visited++
		for _, n := range p.Neighbors() {
			if seen[n] || !g.InBound(n) {
				continue
			}
			t := g.MustAt(n)
			if t.Kind == Void {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return visited == ownedCount
}

// Package flag implements the per-player flag attraction field (spec
// §4.2): the call field that drives population migration.
package flag

import "github.com/lukev/curse-of-war/internal/hexgrid"

// FlagPower is the fixed power used for user-placed flags; AI
// strategies reuse the same constant.
const FlagPower = 8

// Grid holds one player's flag set and the call field it produces.
type Grid struct {
	grid *hexgrid.Grid
	flags [][]bool
	call  [][]int32
}

// New allocates an empty FlagGrid sized to g.
func New(g *hexgrid.Grid) *Grid {
	w, h := g.Width(), g.Height()
	flags := make([][]bool, w)
	call := make([][]int32, w)
	for x := 0; x < w; x++ {
		flags[x] = make([]bool, h)
		call[x] = make([]int32, h)
	}
	return &Grid{grid: g, flags: flags, call: call}
}

// IsFlagged reports whether pos currently carries a flag.
func (fg *Grid) IsFlagged(pos hexgrid.Pos) bool {
	if !fg.grid.InBound(pos) {
		return false
	}
	return fg.flags[pos.X][pos.Y]
}

// Call returns the attraction value at pos (0 if out of bound).
func (fg *Grid) Call(pos hexgrid.Pos) int32 {
	if !fg.grid.InBound(pos) {
		return 0
	}
	return fg.call[pos.X][pos.Y]
}

// Add sets a flag at pos with the given power, if pos is habitable and
// not already flagged.
func (fg *Grid) Add(pos hexgrid.Pos, power int32) {
	if !fg.grid.InBound(pos) {
		return
	}
	t := fg.grid.MustAt(pos)
	if t.Kind != hexgrid.Habitable || fg.flags[pos.X][pos.Y] {
		return
	}
	fg.flags[pos.X][pos.Y] = true
	fg.spread(pos, power, 1)
}

// Remove clears the flag at pos, if set, unspreading its contribution.
func (fg *Grid) Remove(pos hexgrid.Pos, power int32) {
	if !fg.grid.InBound(pos) || !fg.flags[pos.X][pos.Y] {
		return
	}
	fg.flags[pos.X][pos.Y] = false
	fg.spread(pos, power, -1)
}

// RemoveWithProb removes each currently-flagged tile independently
// with probability p (draw from rng); used for "clear all" (p=1) and
// "clear half" (p=0.5).
func (fg *Grid) RemoveWithProb(p float64, power int32, rnd func() float64) {
	w, h := fg.grid.Width(), fg.grid.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !fg.flags[x][y] {
				continue
			}
			if rnd() < p {
				fg.Remove(hexgrid.Pos{X: int32(x), Y: int32(y)}, power)
			}
		}
	}
}

// spread implements the recursive call-field update from spec §4.2: a
// fresh scratch grid u tracks how much of val has already been
// accounted for at each visited tile within this single call, so the
// halving recursion can't double-count a tile reached via two paths.
func (fg *Grid) spread(pos hexgrid.Pos, val int32, factor int32) {
	u := hexgrid.NewGrid2D(fg.grid)
	fg.spreadRec(u, pos, val, factor)
}

func (fg *Grid) spreadRec(u *hexgrid.Grid2D, pos hexgrid.Pos, val int32, factor int32) {
	if !fg.grid.InBound(pos) {
		return
	}
	t := fg.grid.MustAt(pos)
	if t.Kind != hexgrid.Habitable {
		return
	}
	d := val - u.At(pos)
	if d <= 0 {
		return
	}
	cur := fg.call[pos.X][pos.Y] + d*factor
	if cur < 0 {
		cur = 0
	}
	fg.call[pos.X][pos.Y] = cur
	u.Set(pos, u.At(pos)+d)

	for _, n := range pos.Neighbors() {
		fg.spreadRec(u, n, val/2, factor)
	}
}

// Recompute rebuilds call from scratch off the currently-set flags,
// for the round-trip invariant: call must always equal the
// superposition of currently-set flags' contributions.
func (fg *Grid) Recompute(power int32) {
	w, h := fg.grid.Width(), fg.grid.Height()
	flagged := make([]hexgrid.Pos, 0)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if fg.flags[x][y] {
				flagged = append(flagged, hexgrid.Pos{X: int32(x), Y: int32(y)})
			}
		}
	}
	fg.call = make([][]int32, w)
	for x := 0; x < w; x++ {
		fg.call[x] = make([]int32, h)
	}
	for _, pos := range flagged {
		fg.spread(pos, power, 1)
	}
}

// Snapshot returns a copy of the call field, for tests and
// diagnostics; the wire encoder reads flags through IsFlagged instead.
func (fg *Grid) Snapshot() [][]int32 {
	w, h := fg.grid.Width(), fg.grid.Height()
	out := make([][]int32, w)
	for x := 0; x < w; x++ {
		out[x] = make([]int32, h)
		copy(out[x], fg.call[x])
	}
	return out
}

// AllZero reports whether every call cell is zero, used by the
// add/remove round-trip invariant test.
func (fg *Grid) AllZero() bool {
	for x := range fg.call {
		for y := range fg.call[x] {
			if fg.call[x][y] != 0 {
				return false
			}
		}
	}
	return true
}

package hexgrid

import (
	"math"
	"testing"
)

func allHabitableGrid(w, h int) *Grid {
	g := NewGrid(w, h)
	g.Each(func(pos Pos, _ Tile) {
		_ = g.Set(pos, NewHabitable(Grassland))
	})
	return g
}

func TestFloodfillPaintsEveryReachableTileOnce(t *testing.T) {
	g := allHabitableGrid(3, 3)
	u := NewGrid2D(g)

	Floodfill(g, u, Pos{0, 0}, 7)

	g.Each(func(pos Pos, _ Tile) {
		if u.At(pos) != 7 {
			t.Errorf("At(%v) = %d, want 7", pos, u.At(pos))
		}
	})
}

func TestFloodfillClosestPicksNearerSource(t *testing.T) {
	g := allHabitableGrid(5, 1)
	u := NewGrid2D(g)
	d := NewGrid2DSize(g.Width(), g.Height())
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			d.Set(Pos{int32(x), int32(y)}, math.MaxInt32)
		}
	}

	FloodfillClosest(g, u, d, Pos{0, 0}, 1, 0)
	FloodfillClosest(g, u, d, Pos{4, 0}, 2, 0)

	if got := u.At(Pos{0, 0}); got != 1 {
		t.Errorf("owner of (0,0) = %d, want 1", got)
	}
	if got := u.At(Pos{4, 0}); got != 2 {
		t.Errorf("owner of (4,0) = %d, want 2", got)
	}
	// (2,0) is equidistant from both sources; whichever call ran first
	// (source 1) should keep it since FloodfillClosest only overwrites
	// on a strictly smaller distance.
	if got := u.At(Pos{2, 0}); got != 1 {
		t.Errorf("owner of midpoint (2,0) = %d, want 1 (first writer keeps ties)", got)
	}
}

package king

import (
	"testing"

	"github.com/lukev/curse-of-war/internal/hexgrid"
)

type fakeGold struct {
	gold uint64
}

func (f *fakeGold) Gold() uint64 { return f.gold }
func (f *fakeGold) Spend(amount uint64) bool {
	if amount > f.gold {
		return false
	}
	f.gold -= amount
	return true
}

func ownedHabitableGrid(w, h, owner int) *hexgrid.Grid {
	g := hexgrid.NewGrid(w, h)
	g.Each(func(pos hexgrid.Pos, _ hexgrid.Tile) {
		t := hexgrid.NewHabitable(hexgrid.Grassland)
		t.Units[owner] = 10
		t.RefreshOwner()
		_ = g.Set(pos, t)
	})
	return g
}

func TestBuildUpgradesWhenFullySurroundedAndAffordable(t *testing.T) {
	g := ownedHabitableGrid(9, 9, 1)
	k := New(1, StrategyNone, g)
	gold := &fakeGold{gold: 1000}

	built := k.Build(g, gold)
	if !built {
		t.Fatalf("Build() = false, want true")
	}

	upgraded := false
	g.Each(func(_ hexgrid.Pos, t hexgrid.Tile) {
		if t.Land == hexgrid.Village {
			upgraded = true
		}
	})
	if !upgraded {
		t.Errorf("no tile was upgraded to Village")
	}
}

func TestBuildFailsWhenGoldInsufficient(t *testing.T) {
	g := ownedHabitableGrid(9, 9, 1)
	k := New(1, StrategyNone, g)
	gold := &fakeGold{gold: 0}

	if built := k.Build(g, gold); built {
		t.Errorf("Build() = true with 0 gold, want false")
	}
}

func TestBuildSkipsTilesWithUnownedNeighbor(t *testing.T) {
	g := hexgrid.NewGrid(3, 1)
	owned := hexgrid.NewHabitable(hexgrid.Grassland)
	owned.Units[1] = 10
	owned.RefreshOwner()
	_ = g.Set(hexgrid.Pos{X: 1, Y: 0}, owned)
	// neighbors at x=0 and x=2 stay Void: not owned+habitable.

	k := New(1, StrategyNone, g)
	gold := &fakeGold{gold: 1000}

	if built := k.Build(g, gold); built {
		t.Errorf("Build() = true for a tile with a non-habitable neighbor, want false")
	}
}

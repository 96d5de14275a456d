package hexgrid

import (
	"errors"
	"testing"

	"github.com/lukev/curse-of-war/internal/gameerrors"
)

func newTestGrid() *Grid {
	g := NewGrid(3, 3)
	_ = g.Set(Pos{0, 0}, NewHabitable(Grassland))
	return g
}

func TestBuildUpgradesOwnedTile(t *testing.T) {
	g := newTestGrid()
	pos := Pos{0, 0}
	_ = g.Mutate(pos, func(tile *Tile) { tile.Owner = 1 })

	if err := g.Build(pos, 1); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	tile := g.MustAt(pos)
	if tile.Land != Village {
		t.Errorf("Land = %v, want Village", tile.Land)
	}
}

func TestBuildRejectsNonOwner(t *testing.T) {
	g := newTestGrid()
	pos := Pos{0, 0}
	_ = g.Mutate(pos, func(tile *Tile) { tile.Owner = 1 })

	err := g.Build(pos, 2)
	var notOwner *gameerrors.NotOwnerError
	if !errors.As(err, &notOwner) {
		t.Fatalf("Build error = %v, want *NotOwnerError", err)
	}
}

func TestBuildRejectsTopLevel(t *testing.T) {
	g := newTestGrid()
	pos := Pos{0, 0}
	_ = g.Mutate(pos, func(tile *Tile) { tile.Owner = 1; tile.Land = Fortress })

	if err := g.Build(pos, 1); !errors.Is(err, gameerrors.ErrUpgradeTopLevelBuilding) {
		t.Errorf("Build error = %v, want ErrUpgradeTopLevelBuilding", err)
	}
}

func TestUpgradeCostMatchesLandTable(t *testing.T) {
	g := newTestGrid()
	pos := Pos{0, 0}
	_ = g.Mutate(pos, func(tile *Tile) { tile.Owner = 1 })

	cost, err := g.UpgradeCost(pos, 1)
	if err != nil {
		t.Fatalf("UpgradeCost failed: %v", err)
	}
	if cost != Grassland.UpgradeCost() {
		t.Errorf("UpgradeCost = %d, want %d", cost, Grassland.UpgradeCost())
	}
}

func TestDegradeOneStepStopsAtGrassland(t *testing.T) {
	g := newTestGrid()
	pos := Pos{0, 0}

	ok, err := g.DegradeOneStep(pos)
	if !errors.Is(err, gameerrors.ErrDegradeGrassland) {
		t.Fatalf("DegradeOneStep error = %v, want ErrDegradeGrassland", err)
	}
	if ok {
		t.Errorf("DegradeOneStep on Grassland reported ok=true")
	}
}

func TestIsConnectedOnSingleComponent(t *testing.T) {
	g := NewGrid(3, 1)
	_ = g.Set(Pos{0, 0}, NewHabitable(Grassland))
	_ = g.Set(Pos{1, 0}, NewHabitable(Grassland))
	_ = g.Set(Pos{2, 0}, NewHabitable(Grassland))
	if !g.IsConnected() {
		t.Errorf("IsConnected() = false, want true")
	}
}

func TestIsConnectedDetectsSplitComponents(t *testing.T) {
	g := NewGrid(5, 1)
	_ = g.Set(Pos{0, 0}, NewHabitable(Grassland))
	_ = g.Set(Pos{4, 0}, NewHabitable(Grassland))
	// positions 1..3 stay Void, splitting the grid into two islands.
	if g.IsConnected() {
		t.Errorf("IsConnected() = true, want false (disjoint islands)")
	}
}

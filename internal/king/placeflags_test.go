package king

import (
	"testing"

	"github.com/lukev/curse-of-war/internal/flag"
	"github.com/lukev/curse-of-war/internal/hexgrid"
)

func contestedGrid(w, h, owner, enemy int) (*hexgrid.Grid, hexgrid.Pos) {
	g := hexgrid.NewGrid(w, h)
	pos := hexgrid.Pos{X: int32(w / 2), Y: int32(h / 2)}
	t := hexgrid.NewHabitable(hexgrid.Grassland)
	t.Units[owner] = 10
	t.Units[enemy] = 90
	t.RefreshOwner()
	_ = g.Set(pos, t)
	return g, pos
}

func TestPlaceFlagsNoneAndMidasPlaceNothing(t *testing.T) {
	g, _ := contestedGrid(5, 5, 1, 2)
	fg := flag.New(g)

	for _, s := range []Strategy{StrategyNone, StrategyMidas} {
		k := New(1, s, g)
		k.values.Set(hexgrid.Pos{X: 2, Y: 2}, 9999)
		k.PlaceFlags(g, fg)
		if !fg.AllZero() {
			t.Errorf("strategy %v placed flags, want none", s)
		}
	}
}

func TestPlaceAggrGreedyFlagsHighScoreTile(t *testing.T) {
	g, pos := contestedGrid(5, 5, 1, 2)
	fg := flag.New(g)
	k := New(1, StrategyAggrGreedy, g)
	k.values.Set(pos, 1000)

	k.PlaceFlags(g, fg)

	if !fg.IsFlagged(pos) {
		t.Errorf("aggr-greedy did not flag heavily-contested owned tile")
	}
}

func TestPlaceOneGreedyFlagsAtMostOneTile(t *testing.T) {
	g := hexgrid.NewGrid(9, 1)
	var positions []hexgrid.Pos
	for x := 0; x < 9; x++ {
		p := hexgrid.Pos{X: int32(x), Y: 0}
		tile := hexgrid.NewHabitable(hexgrid.Grassland)
		tile.Units[1] = 10
		tile.Units[2] = 90
		tile.RefreshOwner()
		_ = g.Set(p, tile)
		positions = append(positions, p)
	}
	fg := flag.New(g)
	k := New(1, StrategyOneGreedy, g)
	for _, p := range positions {
		k.values.Set(p, 1000)
	}

	k.PlaceFlags(g, fg)

	count := 0
	for _, p := range positions {
		if fg.IsFlagged(p) {
			count++
		}
	}
	if count > 1 {
		t.Errorf("one-greedy flagged %d tiles, want at most 1", count)
	}
}

func TestPlaceNobleCapsAtFiveFlags(t *testing.T) {
	g := hexgrid.NewGrid(12, 1)
	var positions []hexgrid.Pos
	for x := 0; x < 12; x++ {
		p := hexgrid.Pos{X: int32(x), Y: 0}
		tile := hexgrid.NewHabitable(hexgrid.Grassland)
		tile.Units[1] = 5
		tile.Units[2] = 95
		tile.RefreshOwner()
		_ = g.Set(p, tile)
		positions = append(positions, p)
	}
	fg := flag.New(g)
	k := New(1, StrategyNoble, g)
	for _, p := range positions {
		k.values.Set(p, 1000)
	}

	k.PlaceFlags(g, fg)

	count := 0
	for _, p := range positions {
		if fg.IsFlagged(p) {
			count++
		}
	}
	if count > 5 {
		t.Errorf("noble flagged %d tiles, want at most 5", count)
	}
}

func TestPlaceOpportunistOnlyFlagsWhenOutnumbered(t *testing.T) {
	g := hexgrid.NewGrid(2, 1)
	winning := hexgrid.NewHabitable(hexgrid.Grassland)
	winning.Units[1] = 90
	winning.Units[2] = 10
	winning.RefreshOwner()
	_ = g.Set(hexgrid.Pos{X: 0, Y: 0}, winning)

	losing := hexgrid.NewHabitable(hexgrid.Grassland)
	losing.Units[1] = 10
	losing.Units[2] = 90
	losing.RefreshOwner()
	_ = g.Set(hexgrid.Pos{X: 1, Y: 0}, losing)

	fg := flag.New(g)
	k := New(1, StrategyOpportunist, g)
	k.values.Set(hexgrid.Pos{X: 0, Y: 0}, 1000)
	k.values.Set(hexgrid.Pos{X: 1, Y: 0}, 1000)

	k.PlaceFlags(g, fg)

	if fg.IsFlagged(hexgrid.Pos{X: 0, Y: 0}) {
		t.Errorf("opportunist flagged a tile where the army is winning")
	}
	if !fg.IsFlagged(hexgrid.Pos{X: 1, Y: 0}) {
		t.Errorf("opportunist did not flag an outnumbered tile")
	}
}

package server

import (
	"errors"
	"testing"

	"github.com/lukev/curse-of-war/internal/flag"
	"github.com/lukev/curse-of-war/internal/gameerrors"
	"github.com/lukev/curse-of-war/internal/hexgrid"
	"github.com/lukev/curse-of-war/internal/options"
	"github.com/lukev/curse-of-war/internal/protocol"
	"github.com/lukev/curse-of-war/internal/state"
)

func newTestStateForServer() *state.State {
	opts := options.New(
		options.WithSeed(1),
		options.WithDimensions(15, 15),
		options.WithShape(hexgrid.ShapeRect),
		options.WithNumPlayers(2),
	)
	st, err := state.New(opts, nil)
	if err != nil {
		panic(err)
	}
	return st
}

func TestApplyC2SPauseThenUnpauseRestoresSpeed(t *testing.T) {
	st := newTestStateForServer()
	st.Speed = options.SpeedFast

	if err := ApplyC2S(st, st.Controlled, protocol.C2SPause, 0, 0, 0); err != nil {
		t.Fatalf("pause failed: %v", err)
	}
	if st.Speed != 0 {
		t.Fatalf("Speed after pause = %v, want 0", st.Speed)
	}

	if err := ApplyC2S(st, st.Controlled, protocol.C2SUnpause, 0, 0, 0); err != nil {
		t.Fatalf("unpause failed: %v", err)
	}
	if st.Speed != options.SpeedFast {
		t.Fatalf("Speed after unpause = %v, want SpeedFast", st.Speed)
	}
}

func TestApplyC2SFlagOnThenOffRoundTrips(t *testing.T) {
	st := newTestStateForServer()
	player := st.Controlled
	var pos hexgrid.Pos
	st.Grid.Each(func(p hexgrid.Pos, tile hexgrid.Tile) {
		if tile.Kind == hexgrid.Habitable {
			pos = p
		}
	})

	if err := ApplyC2S(st, player, protocol.C2SFlagOn, byte(pos.X), byte(pos.Y), 0); err != nil {
		t.Fatalf("flag-on failed: %v", err)
	}
	if !st.Flags[player].IsFlagged(pos) {
		t.Fatalf("IsFlagged after flag-on = false")
	}

	if err := ApplyC2S(st, player, protocol.C2SFlagOff, byte(pos.X), byte(pos.Y), 0); err != nil {
		t.Fatalf("flag-off failed: %v", err)
	}
	if st.Flags[player].IsFlagged(pos) {
		t.Fatalf("IsFlagged after flag-off = true")
	}
}

func TestApplyC2SFlagOffAllClearsEveryFlag(t *testing.T) {
	st := newTestStateForServer()
	player := st.Controlled
	var placed []hexgrid.Pos
	st.Grid.Each(func(p hexgrid.Pos, tile hexgrid.Tile) {
		if tile.Kind == hexgrid.Habitable && len(placed) < 3 {
			placed = append(placed, p)
		}
	})
	for _, p := range placed {
		st.Flags[player].Add(p, flag.FlagPower)
	}

	if err := ApplyC2S(st, player, protocol.C2SFlagOffAll, 0, 0, 0); err != nil {
		t.Fatalf("flag-off-all failed: %v", err)
	}
	for _, p := range placed {
		if st.Flags[player].IsFlagged(p) {
			t.Errorf("IsFlagged(%v) still true after flag-off-all", p)
		}
	}
}

func TestApplyC2SBuildRejectsInsufficientGold(t *testing.T) {
	st := newTestStateForServer()
	player := st.Controlled
	st.Countries[player] = &state.Country{}

	pos := hexgrid.Pos{X: 0, Y: 0}
	_ = st.Grid.Mutate(pos, func(tile *hexgrid.Tile) {
		*tile = hexgrid.NewHabitable(hexgrid.Grassland)
		tile.Owner = player
	})

	err := ApplyC2S(st, player, protocol.C2SBuild, byte(pos.X), byte(pos.Y), 0)
	var insufficient *gameerrors.InsufficientGoldError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Build error = %v, want *InsufficientGoldError", err)
	}
}

func TestApplyC2SUnknownMessageReturnsErrUnknownC2SMsg(t *testing.T) {
	st := newTestStateForServer()
	err := ApplyC2S(st, st.Controlled, protocol.C2SMsg(250), 0, 0, 0)
	if !errors.Is(err, gameerrors.ErrUnknownC2SMsg) {
		t.Fatalf("error = %v, want ErrUnknownC2SMsg", err)
	}
}

package server

import (
	"math/rand"

	"github.com/lukev/curse-of-war/internal/flag"
	"github.com/lukev/curse-of-war/internal/gameerrors"
	"github.com/lukev/curse-of-war/internal/hexgrid"
	"github.com/lukev/curse-of-war/internal/protocol"
	"github.com/lukev/curse-of-war/internal/state"
)

// ApplyC2S applies one decoded client intent to st on behalf of
// player. Build/flag mutations are re-validated here against the
// current grid (never trusting the client's view of ownership or
// affordability).
func ApplyC2S(st *state.State, player int, msg protocol.C2SMsg, x, y, info byte) error {
	pos := hexgrid.Pos{X: int32(x), Y: int32(y)}

	switch msg {
	case protocol.C2SConnect, protocol.C2SIsAlive:
		return nil

	case protocol.C2SPause:
		if st.Speed != 0 {
			st.PrevSpeed = st.Speed
			st.Speed = 0
		}
		return nil

	case protocol.C2SUnpause:
		if st.Speed == 0 {
			st.Speed = st.PrevSpeed
		}
		return nil

	case protocol.C2SBuild:
		return applyBuild(st, player, pos)

	case protocol.C2SFlagOn:
		st.Flags[player].Add(pos, flag.FlagPower)
		return nil

	case protocol.C2SFlagOff:
		st.Flags[player].Remove(pos, flag.FlagPower)
		return nil

	case protocol.C2SFlagOffAll:
		st.Flags[player].RemoveWithProb(1, flag.FlagPower, rand.Float64)
		return nil

	case protocol.C2SFlagOffHalf:
		st.Flags[player].RemoveWithProb(0.5, flag.FlagPower, rand.Float64)
		return nil

	default:
		return gameerrors.ErrUnknownC2SMsg
	}
}

func applyBuild(st *state.State, player int, pos hexgrid.Pos) error {
	cost, err := st.Grid.UpgradeCost(pos, player)
	if err != nil {
		return err
	}
	country := st.Countries[player]
	if !country.Spend(cost) {
		return &gameerrors.InsufficientGoldError{Required: cost, Owning: country.Gold()}
	}
	if err := st.Grid.Build(pos, player); err != nil {
		country.AddGold(cost)
		return err
	}
	return nil
}

// Package state owns the authoritative game State and its tick
// simulation (spec §3, §4.4).
package state

import (
	"math/rand"

	"github.com/lukev/curse-of-war/internal/flag"
	"github.com/lukev/curse-of-war/internal/hexgrid"
	"github.com/lukev/curse-of-war/internal/king"
	"github.com/lukev/curse-of-war/internal/options"
)

// aiStrategyRotation is the fixed order new AI kings are assigned a
// strategy from; which strategy each AI player ultimately gets is an
// Open Question the spec leaves to the implementer (see DESIGN.md),
// resolved here by shuffling this rotation with the same generation
// RNG so the assignment stays reproducible for a given seed.
var aiStrategyRotation = []king.Strategy{
	king.StrategyAggrGreedy,
	king.StrategyOneGreedy,
	king.StrategyPersistentGreedy,
	king.StrategyOpportunist,
	king.StrategyNoble,
	king.StrategyMidas,
}

// State is the single mutable authority a running game has: one Grid,
// one FlagGrid and Country per player slot, the AI Kings, a Timeline,
// and the clock/options that produced it.
type State struct {
	Grid       *hexgrid.Grid
	Flags      [hexgrid.MaxPlayers]*flag.Grid
	Countries  [hexgrid.MaxPlayers]*Country
	Kings      []*king.King
	Timeline   *Timeline
	Time       uint64
	Seed       uint64
	Controlled int
	Speed      options.Speed
	PrevSpeed  options.Speed
	Difficulty options.Difficulty
	NumPlayers int

	rng *rand.Rand
}

// New generates a fresh map from opts.Seed and assembles a ready-to-
// simulate State. tickRNG drives all subsequent tick-time randomness
// (combat, growth, migration, coin flips); per Design Note "RNG
// determinism" it is independent of the generation RNG, which is
// always seeded from opts.Seed.
func New(opts options.Options, tickRNG *rand.Rand) (*State, error) {
	genRNG := rand.New(rand.NewSource(int64(opts.Seed)))

	result, err := hexgrid.Generate(opts.ToGenParams(), genRNG)
	if err != nil {
		return nil, err
	}

	st := &State{
		Grid:       result.Grid,
		Timeline:   NewTimeline(),
		Seed:       opts.Seed,
		Controlled: result.HumanPlayer,
		Speed:      opts.Speed,
		PrevSpeed:  opts.Speed,
		Difficulty: opts.Difficulty,
		NumPlayers: opts.NumPlayers,
		rng:        tickRNG,
	}

	for p := 0; p < hexgrid.MaxPlayers; p++ {
		st.Flags[p] = flag.New(st.Grid)
		st.Countries[p] = &Country{}
	}

	rotation := append([]king.Strategy(nil), aiStrategyRotation...)
	genRNG.Shuffle(len(rotation), func(i, j int) { rotation[i], rotation[j] = rotation[j], rotation[i] })
	for i, player := range result.AIPlayers {
		strat := rotation[i%len(rotation)]
		k := king.New(player, strat, st.Grid)
		k.Evaluate(st.Grid, st.Difficulty, st.rng)
		st.Kings = append(st.Kings, k)
	}

	return st, nil
}

// KingFor returns the King controlling player, or nil if player is
// the human or NEUTRAL.
func (s *State) KingFor(player int) *king.King {
	for _, k := range s.Kings {
		if k.Player == player {
			return k
		}
	}
	return nil
}

// KingsMove runs every AI king's flag placement and build decision,
// re-evaluating strategic value when a build lands (spec §4.7 step 1).
func (s *State) KingsMove() {
	for _, k := range s.Kings {
		k.PlaceFlags(s.Grid, s.Flags[k.Player])
		if k.Build(s.Grid, s.Countries[k.Player]) {
			k.Evaluate(s.Grid, s.Difficulty, s.rng)
		}
	}
}

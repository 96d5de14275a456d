// Package king implements the AI controller: strategic map evaluation,
// build decisions, and flag placement (spec §4.5).
package king

import (
	"math/rand"

	"github.com/lukev/curse-of-war/internal/hexgrid"
	"github.com/lukev/curse-of-war/internal/options"
)

// King owns one AI player's strategic evaluation grid.
type King struct {
	Player   int
	Strategy Strategy
	values   *hexgrid.Grid2D
}

// New creates a King for player under strategy, sized to g.
func New(player int, strategy Strategy, g *hexgrid.Grid) *King {
	return &King{Player: player, Strategy: strategy, values: hexgrid.NewGrid2D(g)}
}

// Value returns the current strategic desirability at pos.
func (k *King) Value(pos hexgrid.Pos) int32 {
	return k.values.At(pos)
}

// GoldAccount is the minimal view of a player's treasury King.Build
// needs. internal/state.Country satisfies this.
type GoldAccount interface {
	Gold() uint64
	Spend(amount uint64) bool
}

// spreadValues recurses exactly like flag.Grid.spread, but writes into
// k.values instead of a call field; see spec §4.2/§4.5 and Design Note
// "Recursive spread/flood-fill".
func spreadValues(g *hexgrid.Grid, values *hexgrid.Grid2D, u *hexgrid.Grid2D, pos hexgrid.Pos, val int32, factor int32) {
	if !g.InBound(pos) {
		return
	}
	t := g.MustAt(pos)
	if t.Kind != hexgrid.Habitable {
		return
	}
	d := val - u.At(pos)
	if d <= 0 {
		return
	}
	cur := values.At(pos) + d*factor
	if cur < 0 {
		cur = 0
	}
	values.Set(pos, cur)
	u.Set(pos, u.At(pos)+d)
	for _, n := range pos.Neighbors() {
		spreadValues(g, values, u, n, val/2, factor)
	}
}

// Evaluate recomputes k.values from scratch per spec §4.5.
func (k *King) Evaluate(g *hexgrid.Grid, difficulty options.Difficulty, rng *rand.Rand) {
	k.values.Zero()
	c := k.Strategy.consts()

	g.Each(func(pos hexgrid.Pos, t hexgrid.Tile) {
		switch t.Kind {
		case hexgrid.Habitable:
			k.values.Set(pos, k.values.At(pos)+c.habitAdd)
			u := hexgrid.NewGrid2D(g)
			spreadValues(g, k.values, u, pos, c.citySpreadVal(t.Land), 1)
		case hexgrid.Mine:
			for _, n := range pos.Neighbors() {
				u := hexgrid.NewGrid2D(g)
				spreadValues(g, k.values, u, n, c.mineSpread, 1)
			}
		}
	})

	applyDifficultyDumbing(k.values, g, difficulty, rng)
}

func applyDifficultyDumbing(values *hexgrid.Grid2D, g *hexgrid.Grid, difficulty options.Difficulty, rng *rand.Rand) {
	switch difficulty {
	case options.DifficultyEasiest:
		g.Each(func(pos hexgrid.Pos, _ hexgrid.Tile) {
			v := values.At(pos)/4 + int32(rng.Intn(8)) - 3
			values.Set(pos, v)
		})
	case options.DifficultyEasy:
		g.Each(func(pos hexgrid.Pos, _ hexgrid.Tile) {
			v := values.At(pos)/2 + int32(rng.Intn(4)) - 1
			values.Set(pos, v)
		})
	}
}

package king

import "github.com/lukev/curse-of-war/internal/hexgrid"

// Build evaluates every tile this King owns that is fully surrounded
// by own-owned habitable tiles, picks the single highest-scoring
// upgrade, and attempts it. Returns whether anything was built.
func (k *King) Build(g *hexgrid.Grid, gold GoldAccount) bool {
	var bestPos hexgrid.Pos
	var bestScore int64 = 0
	found := false

	g.Each(func(pos hexgrid.Pos, t hexgrid.Tile) {
		if t.Kind != hexgrid.Habitable || t.Owner != k.Player {
			return
		}
		if !allNeighborsOwnedHabitable(g, pos, k.Player) {
			return
		}
		base := int64(buildBase(t.Land))
		if base == 0 {
			return
		}
		if k.Strategy.consts().midasMultiplier {
			base *= int64(k.Value(pos) + 10)
		}
		army := int64(t.Units[k.Player])
		score := base * (int64(hexgrid.MaxPopulation) - army)
		if score > 0 && score > bestScore {
			bestScore = score
			bestPos = pos
			found = true
		}
	})

	if !found {
		return false
	}

	cost, err := g.UpgradeCost(bestPos, k.Player)
	if err != nil {
		return false
	}
	if !gold.Spend(cost) {
		return false
	}
	if err := g.Build(bestPos, k.Player); err != nil {
		return false
	}
	return true
}

func allNeighborsOwnedHabitable(g *hexgrid.Grid, pos hexgrid.Pos, player int) bool {
	for _, n := range pos.Neighbors() {
		t, err := g.At(n)
		if err != nil {
			return false
		}
		if t.Kind != hexgrid.Habitable || t.Owner != player {
			return false
		}
	}
	return true
}

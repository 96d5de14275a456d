package king

import (
	"math"
	"sort"

	"github.com/lukev/curse-of-war/internal/flag"
	"github.com/lukev/curse-of-war/internal/hexgrid"
)

// PlaceFlags runs this King's flag-placement policy over every
// habitable tile on the grid (spec §4.5). Midas and None place no
// flags.
func (k *King) PlaceFlags(g *hexgrid.Grid, fg *flag.Grid) {
	switch k.Strategy {
	case StrategyAggrGreedy:
		k.placeAggrGreedy(g, fg)
	case StrategyOneGreedy:
		k.placeOneGreedy(g, fg)
	case StrategyPersistentGreedy:
		k.placePersistentGreedy(g, fg)
	case StrategyOpportunist:
		k.placeOpportunist(g, fg)
	case StrategyNoble:
		k.placeNoble(g, fg)
	default: // Midas, None
	}
}

type tileSignals struct {
	pos   hexgrid.Pos
	army  float64
	enemy float64
	val   float64
}

func (k *King) eachHabitable(g *hexgrid.Grid, fn func(tileSignals)) {
	g.Each(func(pos hexgrid.Pos, t hexgrid.Tile) {
		if t.Kind != hexgrid.Habitable {
			return
		}
		army := float64(t.Units[k.Player])
		total := float64(t.TotalPopulation())
		fn(tileSignals{pos: pos, army: army, enemy: total - army, val: float64(k.Value(pos))})
	})
}

func (k *King) placeAggrGreedy(g *hexgrid.Grid, fg *flag.Grid) {
	k.eachHabitable(g, func(s tileSignals) {
		score := s.val * (2*s.enemy - s.army) * math.Sqrt(s.army)
		if score > 5000 {
			fg.Add(s.pos, flag.FlagPower)
		} else {
			fg.Remove(s.pos, flag.FlagPower)
		}
	})
}

func (k *King) placeOneGreedy(g *hexgrid.Grid, fg *flag.Grid) {
	g.Each(func(pos hexgrid.Pos, t hexgrid.Tile) {
		if t.Kind == hexgrid.Habitable {
			fg.Remove(pos, flag.FlagPower)
		}
	})

	var bestPos hexgrid.Pos
	bestScore := math.Inf(-1)
	found := false
	k.eachHabitable(g, func(s tileSignals) {
		score := s.val * (5*s.enemy - s.army) * math.Sqrt(s.army)
		if score > bestScore {
			bestScore = score
			bestPos = s.pos
			found = true
		}
	})
	if found && bestScore > 5000 {
		fg.Add(bestPos, flag.FlagPower)
	}
}

func (k *King) placePersistentGreedy(g *hexgrid.Grid, fg *flag.Grid) {
	k.eachHabitable(g, func(s tileSignals) {
		a := s.val * (2.5*s.enemy - s.army) * math.Pow(s.army, 0.7)
		b := s.val * (float64(hexgrid.MaxPopulation) - s.enemy + s.army) * math.Pow(s.army, 0.7)
		score := math.Max(a, b)
		flagged := fg.IsFlagged(s.pos)
		if flagged && score < 1000 {
			fg.Remove(s.pos, flag.FlagPower)
		} else if score > 9000 {
			fg.Add(s.pos, flag.FlagPower)
		}
	})
}

func (k *King) placeOpportunist(g *hexgrid.Grid, fg *flag.Grid) {
	k.eachHabitable(g, func(s tileSignals) {
		if s.enemy > s.army {
			score := s.val * (float64(hexgrid.MaxPopulation) - s.enemy + s.army) * math.Sqrt(s.army)
			if score > 7000 {
				fg.Add(s.pos, flag.FlagPower)
				return
			}
		}
		fg.Remove(s.pos, flag.FlagPower)
	})
}

func (k *King) placeNoble(g *hexgrid.Grid, fg *flag.Grid) {
	type candidate struct {
		pos   hexgrid.Pos
		score float64
	}
	var candidates []candidate
	k.eachHabitable(g, func(s tileSignals) {
		if s.enemy <= s.army {
			return
		}
		score := s.val * (float64(hexgrid.MaxPopulation) - s.enemy + s.army) * math.Sqrt(s.army)
		if score > 7000 {
			candidates = append(candidates, candidate{pos: s.pos, score: score})
		}
	})
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}
	for _, c := range candidates {
		fg.Add(c.pos, flag.FlagPower)
	}
}

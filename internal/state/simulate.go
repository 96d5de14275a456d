package state

import (
	"math"

	"github.com/lukev/curse-of-war/internal/hexgrid"
	"github.com/lukev/curse-of-war/internal/options"
)

const (
	move     = 0.05
	callMove = 0.10

	// burnThreshold is 2*MAX_POPULATION*0.1 (spec §4.4).
	burnThreshold = 2 * hexgrid.MaxPopulation * 0.1
)

// roundRandom implements spec's round_random(x) = floor(x) + (1 if
// rand() < fract(x) else 0).
func roundRandom(rng interface{ Float64() float64 }, x float64) int32 {
	if x <= 0 {
		return 0
	}
	whole := math.Floor(x)
	frac := x - whole
	v := int32(whole)
	if rng.Float64() < frac {
		v++
	}
	return v
}

// Simulate advances time by one tick per spec §4.4: mine ownership,
// combat, city burning, ownership refresh, growth, migration, final
// ownership + unit-zero invariant, AI reevaluation, AI gold subsidy.
func (s *State) Simulate() {
	s.Time++

	s.resolveMineOwnership()

	needReeval := s.combatAndBurnAndGrowth()

	s.migrate()
	s.finalizeOwnership()

	if needReeval {
		for _, k := range s.Kings {
			k.Evaluate(s.Grid, s.Difficulty, s.rng)
		}
	}

	s.applyAIGoldSubsidy()

	if s.Time%10 == 0 {
		s.recordTimelineSample()
	}
}

func (s *State) resolveMineOwnership() {
	s.Grid.Each(func(pos hexgrid.Pos, t hexgrid.Tile) {
		if t.Kind != hexgrid.Mine {
			return
		}
		owner := 0
		mixed := false
		for _, n := range pos.Neighbors() {
			nt, err := s.Grid.At(n)
			if err != nil || nt.Kind != hexgrid.Habitable || nt.Owner == hexgrid.Neutral {
				continue
			}
			if owner == 0 {
				owner = nt.Owner
			} else if owner != nt.Owner {
				mixed = true
			}
		}
		if mixed {
			owner = hexgrid.Neutral
		}
		s.Grid.Mutate(pos, func(tile *hexgrid.Tile) { tile.Owner = owner })
		if owner != hexgrid.Neutral {
			s.Countries[owner].AddGold(1)
		}
	})
}

// combatAndBurnAndGrowth runs the per-tile combat/burn/growth pass and
// reports whether any city degraded (triggering AI reevaluation).
func (s *State) combatAndBurnAndGrowth() bool {
	needReeval := false
	s.Grid.Each(func(pos hexgrid.Pos, t hexgrid.Tile) {
		if t.Kind != hexgrid.Habitable {
			return
		}

		total := t.TotalPopulation()
		var dmg [hexgrid.MaxPlayers]int32
		if total > 0 {
			for p := 1; p < hexgrid.MaxPlayers; p++ {
				enemy := total - t.Units[p]
				dmg[p] = roundRandom(s.rng, float64(enemy)*float64(t.Units[p])/float64(total))
			}
		}

		ownerAtStart := t.Owner
		var defenderDmg int32
		if ownerAtStart != hexgrid.Neutral {
			defenderDmg = dmg[ownerAtStart]
		}

		if float64(defenderDmg) > burnThreshold && t.Land != hexgrid.Grassland && s.rng.Float64() < 0.5 {
			if ok, _ := s.Grid.DegradeOneStep(pos); ok {
				needReeval = true
			}
		}

		s.Grid.Mutate(pos, func(tile *hexgrid.Tile) {
			for p := 1; p < hexgrid.MaxPlayers; p++ {
				u := tile.Units[p] - dmg[p]
				if u < 0 {
					u = 0
				}
				tile.Units[p] = u
			}
			tile.RefreshOwner()
		})

		s.Grid.Mutate(pos, func(tile *hexgrid.Tile) {
			if tile.Land == hexgrid.Grassland || tile.Owner == hexgrid.Neutral {
				return
			}
			grown := roundRandom(s.rng, float64(tile.Units[tile.Owner])*tile.Land.GrowthRate())
			if grown > hexgrid.MaxPopulation {
				grown = hexgrid.MaxPopulation
			}
			tile.Units[tile.Owner] = grown
			tile.RefreshOwner()
		})
	})
	return needReeval
}

func (s *State) migrate() {
	dirX := 1
	if s.rng.Intn(2) == 0 {
		dirX = -1
	}
	dirY := 1
	if s.rng.Intn(2) == 0 {
		dirY = -1
	}

	xs := scanOrder(s.Grid.Width(), dirX)
	ys := scanOrder(s.Grid.Height(), dirY)

	for _, x := range xs {
		for _, y := range ys {
			pos := hexgrid.Pos{X: int32(x), Y: int32(y)}
			t, err := s.Grid.At(pos)
			if err != nil || t.Kind != hexgrid.Habitable {
				continue
			}
			for p := 1; p < hexgrid.MaxPlayers; p++ {
				initial := t.Units[p]
				if initial <= 0 {
					continue
				}
				s.migrateFromTile(pos, p, initial)
			}
		}
	}
}

func (s *State) migrateFromTile(pos hexgrid.Pos, p int, initial int32) {
	kShift := s.rng.Intn(6)
	for k := 0; k < 6; k++ {
		dir := (k + kShift) % 6
		n := pos.Neighbor(dir)
		nt, err := s.Grid.At(n)
		if err != nil || nt.Kind != hexgrid.Habitable {
			continue
		}

		callHere := s.Flags[p].Call(pos)
		callNeighbor := s.Flags[p].Call(n)
		dcall := callNeighbor - callHere
		if dcall < 0 {
			dcall = 0
		}

		moveWant := roundRandom(s.rng, move*float64(initial)+callMove*float64(dcall)*float64(initial))

		curHere := s.Grid.MustAt(pos).Units[p]
		room := hexgrid.MaxPopulation - s.Grid.MustAt(n).Units[p]

		dpop := moveWant
		if curHere < dpop {
			dpop = curHere
		}
		if room < dpop {
			dpop = room
		}
		if dpop <= 0 {
			continue
		}

		s.Grid.Mutate(pos, func(tile *hexgrid.Tile) {
			u := tile.Units[p] - dpop
			if u < 0 {
				u = 0
			}
			tile.Units[p] = u
		})
		s.Grid.Mutate(n, func(tile *hexgrid.Tile) {
			tile.Units[p] += dpop
		})
	}
}

func scanOrder(n, dir int) []int {
	out := make([]int, n)
	if dir >= 0 {
		for i := 0; i < n; i++ {
			out[i] = i
		}
	} else {
		for i := 0; i < n; i++ {
			out[i] = n - 1 - i
		}
	}
	return out
}

func (s *State) finalizeOwnership() {
	s.Grid.Each(func(pos hexgrid.Pos, _ hexgrid.Tile) {
		s.Grid.Mutate(pos, func(tile *hexgrid.Tile) { tile.RefreshOwner() })
	})
}

func (s *State) applyAIGoldSubsidy() {
	var bonus uint64
	switch s.Difficulty {
	case options.DifficultyHard:
		bonus = 1
	case options.DifficultyHardest:
		bonus = 2
	default:
		return
	}
	for _, k := range s.Kings {
		if k.Player == s.Controlled {
			continue
		}
		c := s.Countries[k.Player]
		if c.Gold() > 0 {
			c.AddGold(bonus)
		}
	}
}

func (s *State) recordTimelineSample() {
	var sample TimelineSample
	sample.Time = s.Time
	s.Grid.Each(func(_ hexgrid.Pos, t hexgrid.Tile) {
		if t.Kind != hexgrid.Habitable {
			return
		}
		for p := 1; p < hexgrid.MaxPlayers; p++ {
			sample.Pop[p] += int64(t.Units[p])
		}
	})
	s.Timeline.Record(sample)
}

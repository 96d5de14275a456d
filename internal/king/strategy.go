package king

import "github.com/lukev/curse-of-war/internal/hexgrid"

// Strategy selects a King's evaluation constants and flag-placement
// policy (spec §4.5).
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyAggrGreedy
	StrategyOneGreedy
	StrategyPersistentGreedy
	StrategyOpportunist
	StrategyNoble
	StrategyMidas
)

func (s Strategy) String() string {
	switch s {
	case StrategyAggrGreedy:
		return "aggr-greedy"
	case StrategyOneGreedy:
		return "one-greedy"
	case StrategyPersistentGreedy:
		return "persistent-greedy"
	case StrategyOpportunist:
		return "opportunist"
	case StrategyNoble:
		return "noble"
	case StrategyMidas:
		return "midas"
	default:
		return "none"
	}
}

// evalConsts bundles the per-strategy evaluation constants from the
// spec's table.
type evalConsts struct {
	habitAdd                                 int32
	villageSpread, townSpread, fortressSpread int32
	mineSpread                                int32
	midasMultiplier                           bool
}

func (s Strategy) consts() evalConsts {
	switch s {
	case StrategyPersistentGreedy:
		return evalConsts{habitAdd: 2, villageSpread: 4, townSpread: 8, fortressSpread: 16, mineSpread: 4}
	case StrategyNoble:
		return evalConsts{habitAdd: 1, villageSpread: 2, townSpread: 8, fortressSpread: 32, mineSpread: 4}
	case StrategyMidas:
		return evalConsts{habitAdd: 1, villageSpread: 4, townSpread: 8, fortressSpread: 16, mineSpread: 8, midasMultiplier: true}
	default: // AggrGreedy, OneGreedy, Opportunist, None
		return evalConsts{habitAdd: 1, villageSpread: 4, townSpread: 8, fortressSpread: 16, mineSpread: 4}
	}
}

func (c evalConsts) citySpreadVal(land hexgrid.Land) int32 {
	switch land {
	case hexgrid.Village:
		return c.villageSpread
	case hexgrid.Town:
		return c.townSpread
	case hexgrid.Fortress:
		return c.fortressSpread
	default:
		return 0
	}
}

// buildBase returns the raw (pre-Midas-multiplier) build score base
// for land.
func buildBase(land hexgrid.Land) int32 {
	switch land {
	case hexgrid.Grassland:
		return 1
	case hexgrid.Village:
		return 8
	case hexgrid.Town:
		return 32
	default: // Fortress: nothing further to build
		return 0
	}
}

package king

import (
	"math/rand"
	"testing"

	"github.com/lukev/curse-of-war/internal/hexgrid"
	"github.com/lukev/curse-of-war/internal/options"
)

func allHabitableGrid(w, h int) *hexgrid.Grid {
	g := hexgrid.NewGrid(w, h)
	g.Each(func(pos hexgrid.Pos, _ hexgrid.Tile) {
		_ = g.Set(pos, hexgrid.NewHabitable(hexgrid.Grassland))
	})
	return g
}

func TestEvaluateRaisesValueNearOwnedCity(t *testing.T) {
	g := allHabitableGrid(9, 9)
	fort := hexgrid.NewHabitable(hexgrid.Fortress)
	fort.Units[1] = 10
	fort.RefreshOwner()
	center := hexgrid.Pos{X: 4, Y: 4}
	_ = g.Set(center, fort)

	k := New(1, StrategyNone, g)
	k.Evaluate(g, options.DifficultyNormal, rand.New(rand.NewSource(1)))

	far := hexgrid.Pos{X: 0, Y: 0}
	if k.Value(center) <= k.Value(far) {
		t.Errorf("Value(center)=%d should exceed Value(far)=%d", k.Value(center), k.Value(far))
	}
}

func TestEvaluateDifficultyDumbingShrinksMagnitude(t *testing.T) {
	g := allHabitableGrid(9, 9)
	fort := hexgrid.NewHabitable(hexgrid.Fortress)
	fort.Units[1] = 10
	fort.RefreshOwner()
	center := hexgrid.Pos{X: 4, Y: 4}
	_ = g.Set(center, fort)

	kNormal := New(1, StrategyNone, g)
	kNormal.Evaluate(g, options.DifficultyNormal, rand.New(rand.NewSource(2)))

	kEasiest := New(1, StrategyNone, g)
	kEasiest.Evaluate(g, options.DifficultyEasiest, rand.New(rand.NewSource(2)))

	if kEasiest.Value(center) >= kNormal.Value(center) {
		t.Errorf("easiest Value(center)=%d should be less than normal Value(center)=%d", kEasiest.Value(center), kNormal.Value(center))
	}
}

func TestStrategyConstsVaryByStrategy(t *testing.T) {
	persistent := StrategyPersistentGreedy.consts()
	noble := StrategyNoble.consts()
	if persistent.fortressSpread == noble.fortressSpread {
		t.Errorf("expected differing fortressSpread between persistent-greedy and noble strategies")
	}
	if !StrategyMidas.consts().midasMultiplier {
		t.Errorf("midas strategy should set midasMultiplier")
	}
	if StrategyNoble.consts().midasMultiplier {
		t.Errorf("noble strategy should not set midasMultiplier")
	}
}

func TestStrategyStringNames(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{StrategyNone, "none"},
		{StrategyAggrGreedy, "aggr-greedy"},
		{StrategyMidas, "midas"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

package state

import (
	"math/rand"
	"testing"

	"github.com/lukev/curse-of-war/internal/hexgrid"
	"github.com/lukev/curse-of-war/internal/king"
	"github.com/lukev/curse-of-war/internal/options"
)

func testOptions() options.Options {
	return options.New(
		options.WithSeed(1),
		options.WithDimensions(15, 15),
		options.WithShape(hexgrid.ShapeRect),
		options.WithNumPlayers(3),
	)
}

func TestNewAssignsOneKingPerAIPlayer(t *testing.T) {
	st, err := New(testOptions(), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(st.Kings) != 2 {
		t.Fatalf("len(Kings) = %d, want 2 (3 players minus the human)", len(st.Kings))
	}
	for _, k := range st.Kings {
		if k.Player == st.Controlled {
			t.Errorf("king assigned to the human-controlled player %d", k.Player)
		}
	}
}

func TestKingForReturnsNilForHuman(t *testing.T) {
	st, err := New(testOptions(), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if k := st.KingFor(st.Controlled); k != nil {
		t.Errorf("KingFor(human) = %v, want nil", k)
	}
	for _, k := range st.Kings {
		if got := st.KingFor(k.Player); got != k {
			t.Errorf("KingFor(%d) = %v, want %v", k.Player, got, k)
		}
	}
}

func TestKingsMoveDoesNotPanicOnFreshMap(t *testing.T) {
	st, err := New(testOptions(), rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	st.KingsMove()
}

func TestNewEveryAIGetsAStrategy(t *testing.T) {
	st, err := New(testOptions(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, k := range st.Kings {
		if k.Strategy == king.Strategy(-1) {
			t.Errorf("king for player %d has an invalid strategy", k.Player)
		}
	}
}

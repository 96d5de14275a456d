package hexgrid

import "testing"

func TestNeighborWraps(t *testing.T) {
	p := NewPos(0, 0)
	tests := []struct {
		name string
		k    int
		want Pos
	}{
		{"direction 0", 0, Pos{X: 1, Y: 0}},
		{"direction 5", 5, Pos{X: -1, Y: 1}},
		{"wraps forward", 6, Pos{X: 1, Y: 0}},
		{"wraps negative", -1, Pos{X: -1, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Neighbor(tt.k); got != tt.want {
				t.Errorf("Neighbor(%d) = %v, want %v", tt.k, got, tt.want)
			}
		})
	}
}

func TestNeighborsAreSixDistinctAdjacentTiles(t *testing.T) {
	p := NewPos(5, 5)
	ns := p.Neighbors()
	seen := map[Pos]bool{}
	for _, n := range ns {
		if seen[n] {
			t.Fatalf("duplicate neighbor %v", n)
		}
		seen[n] = true
		if n == p {
			t.Fatalf("neighbor equals self: %v", n)
		}
	}
}

func TestScale(t *testing.T) {
	p := Pos{X: 1, Y: -1}
	got := p.Scale(3)
	want := Pos{X: 3, Y: -3}
	if got != want {
		t.Errorf("Scale(3) = %v, want %v", got, want)
	}
}

func TestAdd(t *testing.T) {
	a := Pos{X: 2, Y: 3}
	b := Pos{X: -1, Y: 4}
	if got, want := a.Add(b), (Pos{X: 1, Y: 7}); got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

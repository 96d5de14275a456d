// Package hexgrid implements the hex tile map: positions, tiles, the
// dense grid store, shape stencils, map generation, and the
// flood-fill utilities shared by generation and the AI.
package hexgrid

import "fmt"

// MaxPlayers is the number of player slots, including NEUTRAL at 0.
const MaxPlayers = 8

// Neutral is the player id meaning "no owner".
const Neutral = 0

// MaxPopulation is the population cap for a single player on a single
// tile.
const MaxPopulation = 499

// MaxWidth and MaxHeight bound grid dimensions.
const (
	MaxWidth  = 40
	MaxHeight = 29
)

// Pos is a hex-axial coordinate.
type Pos struct {
	X, Y int32
}

// NewPos constructs a Pos.
func NewPos(x, y int32) Pos {
	return Pos{X: x, Y: y}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p+o.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Directions holds the six hex-axial unit vectors, in the order the
// spec enumerates them: east, west, north, south, and the two
// diagonal "long" steps that close the hex ring.
var Directions = [6]Pos{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
}

// Neighbor returns p's neighbor in direction k (0..5), wrapping k into
// range.
func (p Pos) Neighbor(k int) Pos {
	return p.Add(Directions[((k%6)+6)%6])
}

// Scale returns p scaled by k.
func (p Pos) Scale(k int32) Pos {
	return Pos{X: p.X * k, Y: p.Y * k}
}

// Neighbors returns all six neighbors of p in Directions order.
func (p Pos) Neighbors() [6]Pos {
	var out [6]Pos
	for k := 0; k < 6; k++ {
		out[k] = p.Neighbor(k)
	}
	return out
}

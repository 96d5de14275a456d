// Package snapshot bridges the authoritative internal/state.State and
// the wire internal/protocol frames. It is the only package that
// imports both, keeping state and protocol themselves free of a
// dependency on each other (see the internal/snapshot section of
// DESIGN.md).
package snapshot

import (
	"github.com/lukev/curse-of-war/internal/hexgrid"
	"github.com/lukev/curse-of-war/internal/protocol"
	"github.com/lukev/curse-of-war/internal/state"
)

// BuildS2C renders the full-state snapshot addressed to player (spec
// §4.6): every tile's per-player flag bitmask (bit p set iff player p
// has flagged that tile), owner, population of that tile's owner, and
// class, plus every country's gold.
func BuildS2C(s *state.State, player int) *protocol.S2CData {
	d := &protocol.S2CData{
		Player: byte(player),
		Time:   uint32(s.Time),
		Width:  byte(s.Grid.Width()),
		Height: byte(s.Grid.Height()),
	}
	if s.Speed == 0 {
		d.PauseRequest = 1
	}
	for p := 0; p < hexgrid.MaxPlayers && p < 8; p++ {
		d.Gold[p] = uint32(s.Countries[p].Gold())
	}

	s.Grid.Each(func(pos hexgrid.Pos, t hexgrid.Tile) {
		x, y := int(pos.X), int(pos.Y)
		if x < 0 || x >= protocol.GridW || y < 0 || y >= protocol.GridH {
			return
		}
		for p := range s.Flags {
			if s.Flags[p] != nil && s.Flags[p].IsFlagged(pos) {
				d.Flag[x][y] |= 1 << uint(p)
			}
		}
		d.Owner[x][y] = byte(t.Owner)
		pop := t.Units[t.Owner]
		if pop > 0xFFFF {
			pop = 0xFFFF
		}
		d.Pop[x][y] = uint16(pop)
		d.Tile[x][y] = byte(t.Class())
	})
	return d
}

// ClientView is the client-side rendering of a decoded S2CData: a
// read-only picture of the game a connected player can draw without
// running any simulation.
type ClientView struct {
	Player int
	Paused bool
	Gold   [8]uint64
	Time   uint64
	Width  int
	Height int
	// Flag holds the raw per-tile bitmask from the wire: bit p set iff
	// player p has flagged that tile (spec §4.6).
	Flag  [][]byte
	Owner [][]int
	Pop   [][]int32
	Tile  [][]hexgrid.TileClass
}

// Flagged reports whether player p has a flag on tile (x, y).
func (v *ClientView) Flagged(x, y, p int) bool {
	return v.Flag[x][y]&(1<<uint(p)) != 0
}

// ApplyS2C turns a decoded frame into a ClientView. Only the Width x
// Height sub-rectangle of the wire-fixed GridW x GridH arrays is kept.
func ApplyS2C(d *protocol.S2CData) *ClientView {
	v := &ClientView{
		Player: int(d.Player),
		Paused: d.PauseRequest != 0,
		Time:   uint64(d.Time),
		Width:  int(d.Width),
		Height: int(d.Height),
	}
	for p := range d.Gold {
		v.Gold[p] = uint64(d.Gold[p])
	}

	v.Flag = make([][]byte, v.Width)
	v.Owner = make([][]int, v.Width)
	v.Pop = make([][]int32, v.Width)
	v.Tile = make([][]hexgrid.TileClass, v.Width)
	for x := 0; x < v.Width; x++ {
		v.Flag[x] = make([]byte, v.Height)
		v.Owner[x] = make([]int, v.Height)
		v.Pop[x] = make([]int32, v.Height)
		v.Tile[x] = make([]hexgrid.TileClass, v.Height)
		for y := 0; y < v.Height; y++ {
			v.Flag[x][y] = d.Flag[x][y]
			v.Owner[x][y] = int(d.Owner[x][y])
			v.Pop[x][y] = int32(d.Pop[x][y])
			v.Tile[x][y] = hexgrid.TileClass(d.Tile[x][y])
		}
	}
	return v
}

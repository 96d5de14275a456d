// Package protocol implements the fixed-size binary C2S/S2C wire
// frames (spec §4.6, §6). Frames are built with an explicit
// byte-layout writer rather than a struct-tag marshaler, per Design
// Note "Packed big-endian wire struct" — no compiler packing is
// involved and offsets are guaranteed stable across platforms.
package protocol

import (
	"encoding/binary"

	"github.com/lukev/curse-of-war/internal/gameerrors"
)

// C2SMsg identifies a client-to-server message.
type C2SMsg byte

const (
	C2SConnect     C2SMsg = 1
	C2SBuild       C2SMsg = 20
	C2SFlagOn      C2SMsg = 21
	C2SFlagOff     C2SMsg = 22
	C2SFlagOffAll  C2SMsg = 23
	C2SFlagOffHalf C2SMsg = 24
	C2SIsAlive     C2SMsg = 30
	C2SPause       C2SMsg = 40
	C2SUnpause     C2SMsg = 41
)

func (m C2SMsg) String() string {
	switch m {
	case C2SConnect:
		return "connect"
	case C2SBuild:
		return "build"
	case C2SFlagOn:
		return "flag_on"
	case C2SFlagOff:
		return "flag_off"
	case C2SFlagOffAll:
		return "flag_off_all"
	case C2SFlagOffHalf:
		return "flag_off_half"
	case C2SIsAlive:
		return "is_alive"
	case C2SPause:
		return "pause"
	case C2SUnpause:
		return "unpause"
	default:
		return "unknown-c2s"
	}
}

// S2CMsg identifies a server-to-client message.
type S2CMsg byte

// S2CState is the only S2C message kind this engine's core emits: a
// full-state snapshot.
const S2CState S2CMsg = 1

// C2SSize is the fixed size of a C2S frame.
const C2SSize = 4

// EncodeC2S packs a C2S frame.
func EncodeC2S(msg C2SMsg, x, y, info byte) []byte {
	return []byte{byte(msg), x, y, info}
}

// DecodeC2S unpacks a C2S frame; buf must be at least C2SSize bytes,
// and any bytes past the first C2SSize are ignored.
func DecodeC2S(buf []byte) (msg C2SMsg, x, y, info byte, err error) {
	if len(buf) < C2SSize {
		return 0, 0, 0, 0, gameerrors.ErrShortRead
	}
	return C2SMsg(buf[0]), buf[1], buf[2], buf[3], nil
}

// GridW and GridH are the wire-fixed grid dimensions (spec §3's
// Grid invariant bounds: width<=40, height<=29). S2C arrays are always
// full-size regardless of the live game's actual Width()/Height().
const (
	GridW = 40
	GridH = 29
)

// S2CData is the full-state snapshot payload, field-for-field with
// spec §4.6.
type S2CData struct {
	Player       byte
	PauseRequest byte
	Gold         [8]uint32
	Time         uint32
	Width        byte
	Height       byte
	Flag         [GridW][GridH]byte
	Owner        [GridW][GridH]byte
	Pop          [GridW][GridH]uint16
	Tile         [GridW][GridH]byte
}

// S2CDataSize is the encoded size of S2CData (excluding the leading
// message byte).
const S2CDataSize = 1 + 1 + 8*4 + 4 + 1 + 1 +
	GridW*GridH + GridW*GridH + GridW*GridH*2 + GridW*GridH

// S2CFrameSize is the total frame size: [msg][S2CData].
const S2CFrameSize = 1 + S2CDataSize

// EncodeS2C packs msg+data into a fresh S2CFrameSize buffer.
func EncodeS2C(msg S2CMsg, d *S2CData) []byte {
	buf := make([]byte, S2CFrameSize)
	off := 0
	putByte := func(b byte) { buf[off] = b; off++ }

	putByte(byte(msg))
	putByte(d.Player)
	putByte(d.PauseRequest)
	for _, g := range d.Gold {
		binary.BigEndian.PutUint32(buf[off:off+4], g)
		off += 4
	}
	binary.BigEndian.PutUint32(buf[off:off+4], d.Time)
	off += 4
	putByte(d.Width)
	putByte(d.Height)
	for x := 0; x < GridW; x++ {
		for y := 0; y < GridH; y++ {
			putByte(d.Flag[x][y])
		}
	}
	for x := 0; x < GridW; x++ {
		for y := 0; y < GridH; y++ {
			putByte(d.Owner[x][y])
		}
	}
	for x := 0; x < GridW; x++ {
		for y := 0; y < GridH; y++ {
			binary.BigEndian.PutUint16(buf[off:off+2], d.Pop[x][y])
			off += 2
		}
	}
	for x := 0; x < GridW; x++ {
		for y := 0; y < GridH; y++ {
			putByte(d.Tile[x][y])
		}
	}
	return buf
}

// DecodeS2C unpacks a frame into (msg, data); buf must be at least
// S2CFrameSize bytes.
func DecodeS2C(buf []byte) (S2CMsg, *S2CData, error) {
	if len(buf) < S2CFrameSize {
		return 0, nil, gameerrors.ErrShortRead
	}
	off := 0
	getByte := func() byte { b := buf[off]; off++; return b }

	msg := S2CMsg(getByte())
	d := &S2CData{}
	d.Player = getByte()
	d.PauseRequest = getByte()
	for i := range d.Gold {
		d.Gold[i] = binary.BigEndian.Uint32(buf[off : off+4])
		off += 4
	}
	d.Time = binary.BigEndian.Uint32(buf[off : off+4])
	off += 4
	d.Width = getByte()
	d.Height = getByte()
	for x := 0; x < GridW; x++ {
		for y := 0; y < GridH; y++ {
			d.Flag[x][y] = getByte()
		}
	}
	for x := 0; x < GridW; x++ {
		for y := 0; y < GridH; y++ {
			d.Owner[x][y] = getByte()
		}
	}
	for x := 0; x < GridW; x++ {
		for y := 0; y < GridH; y++ {
			d.Pop[x][y] = binary.BigEndian.Uint16(buf[off : off+2])
			off += 2
		}
	}
	for x := 0; x < GridW; x++ {
		for y := 0; y < GridH; y++ {
			d.Tile[x][y] = getByte()
		}
	}
	return msg, d, nil
}

// Package client implements the connect/heartbeat/decode loop a
// Curse of War client runs against a server.Loop (spec §4.8, formerly
// a one-line stub in the distilled spec).
package client

import (
	"context"
	"time"

	"github.com/lukev/curse-of-war/internal/gameerrors"
	"github.com/lukev/curse-of-war/internal/logging"
	"github.com/lukev/curse-of-war/internal/netgame"
	"github.com/lukev/curse-of-war/internal/protocol"
	"github.com/lukev/curse-of-war/internal/snapshot"
)

const heartbeatEvery = 50

// Loop connects to a running game over a netgame.Conn, keeps it alive,
// and exposes decoded snapshots for an external renderer (out of scope
// per spec §1) to consume.
type Loop struct {
	conn    netgame.Conn
	intents chan intent
	Views   chan *snapshot.ClientView

	haveFrame bool
	lastTime  uint64
}

type intent struct {
	msg      protocol.C2SMsg
	x, y, nfo byte
}

// New wraps an already-dialed connection.
func New(conn netgame.Conn) *Loop {
	return &Loop{
		conn:    conn,
		intents: make(chan intent, 16),
		Views:   make(chan *snapshot.ClientView, 4),
	}
}

// Enqueue queues a local intent (BUILD, FLAG_ON, ...) to be sent on
// the next Run iteration.
func (l *Loop) Enqueue(msg protocol.C2SMsg, x, y, info byte) {
	l.intents <- intent{msg: msg, x: x, y: y, nfo: info}
}

// Run sends CONNECT, then alternates between forwarding queued local
// intents, sending IS_ALIVE every heartbeatEvery of its own ticks, and
// decoding inbound S2C frames onto Views, until ctx is cancelled or the
// connection drops.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.conn.WriteFrame(protocol.EncodeC2S(protocol.C2SConnect, 0, 0, 0)); err != nil {
		return err
	}

	frames := make(chan []byte, 4)
	errs := make(chan error, 1)
	go func() {
		for {
			data, err := l.conn.ReadFrame()
			if err != nil {
				errs <- err
				return
			}
			buf := make([]byte, len(data))
			copy(buf, data)
			frames <- buf
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	var ticks uint64

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-errs:
			return err

		case in := <-l.intents:
			if err := l.conn.WriteFrame(protocol.EncodeC2S(in.msg, in.x, in.y, in.nfo)); err != nil {
				return err
			}

		case data := <-frames:
			_, d, err := protocol.DecodeS2C(data)
			if err != nil {
				continue
			}
			// Spec §4.6: reject a frame whose time is not strictly newer
			// than the last one applied (§8 scenario 5 treats equal time
			// as stale too); drop it rather than tearing down the loop.
			if l.haveFrame && uint64(d.Time) <= l.lastTime {
				logging.Get().Warn().
					Err(&gameerrors.DeprecatedMsgError{Time: uint64(d.Time)}).
					Uint64("local_time", l.lastTime).
					Msg("dropping stale S2C frame")
				continue
			}
			l.haveFrame = true
			l.lastTime = uint64(d.Time)

			view := snapshot.ApplyS2C(d)
			select {
			case l.Views <- view:
			default:
			}

		case <-ticker.C:
			ticks++
			if ticks%heartbeatEvery == 0 {
				if err := l.conn.WriteFrame(protocol.EncodeC2S(protocol.C2SIsAlive, 0, 0, 0)); err != nil {
					return err
				}
			}
		}
	}
}

// Package server runs the authoritative Curse of War tick loop: one
// goroutine owns the live *state.State, client goroutines only ever
// hand it decoded intents over a channel (spec §4.7/§5's "single-task
// cooperative scheduler" rendered with goroutines and channels instead
// of locks around State).
package server

import (
	"context"
	"time"

	"github.com/lukev/curse-of-war/internal/logging"
	"github.com/lukev/curse-of-war/internal/protocol"
	"github.com/lukev/curse-of-war/internal/snapshot"
	"github.com/lukev/curse-of-war/internal/state"
)

const tickInterval = 10 * time.Millisecond

type inboundFrame struct {
	player int
	msg    protocol.C2SMsg
	x, y   byte
	info   byte
}

// Loop is the single tick driver for one running game.
type Loop struct {
	hub     *Hub
	st      *state.State
	inbound chan inboundFrame
}

// NewLoop builds a Loop over an already-generated state and a fresh
// Hub; callers must run Hub.Run in its own goroutine alongside Run.
func NewLoop(hub *Hub, st *state.State) *Loop {
	return &Loop{hub: hub, st: st, inbound: make(chan inboundFrame, 256)}
}

// Run drives ticks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.Get()
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	var counter uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case f := <-l.inbound:
			if err := ApplyC2S(l.st, f.player, f.msg, f.x, f.y, f.info); err != nil {
				log.Warn().Err(err).Int("player", f.player).Stringer("msg", f.msg).Msg("rejected client intent")
			}

		case <-ticker.C:
			counter++
			slow := l.st.Speed.Slowdown()
			if slow <= 0 || counter%uint64(slow) != 0 {
				continue
			}
			l.st.KingsMove()
			l.st.Simulate()
			l.broadcast()
		}
	}
}

func (l *Loop) broadcast() {
	for _, c := range l.hub.Clients() {
		d := snapshot.BuildS2C(l.st, c.player)
		frame := protocol.EncodeS2C(protocol.S2CState, d)
		select {
		case c.send <- frame:
		default:
		}
	}
}

// State exposes the loop's live state, for admin/debug endpoints.
func (l *Loop) State() *state.State { return l.st }

// Enqueue is called by a client's reader goroutine with a decoded
// intent; it never blocks the tick loop for longer than the channel
// buffer allows.
func (l *Loop) Enqueue(player int, msg protocol.C2SMsg, x, y, info byte) {
	l.inbound <- inboundFrame{player: player, msg: msg, x: x, y: y, info: info}
}

package server

import (
	"time"

	"github.com/lukev/curse-of-war/internal/netgame"
	"github.com/lukev/curse-of-war/internal/protocol"
)

const (
	readTimeout  = 90 * time.Second
	readSemSlots = 2
)

// Serve admits conn as player and runs its read/write pumps until a
// read from the connection fails. It's meant to be called in its own
// goroutine per accepted connection.
func Serve(loop *Loop, hub *Hub, conn netgame.Conn, player int) {
	c := &client{conn: conn, send: make(chan []byte, 16), player: player}

	hub.register <- c
	defer func() { hub.unregister <- c }()

	done := make(chan struct{})
	go writePump(conn, c.send, done)
	readPump(loop, conn, c)
	close(done)
}

// readPump decodes frames sequentially off conn and hands each decoded
// intent to the tick loop from its own goroutine; a small semaphore
// bounds how many of those hand-offs are in flight at once (spec §5's
// per-client read concurrency cap).
func readPump(loop *Loop, conn netgame.Conn, c *client) {
	sem := make(chan struct{}, readSemSlots)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		data, err := conn.ReadFrame()
		if err != nil {
			return
		}
		msg, x, y, info, err := protocol.DecodeC2S(data)
		if err != nil {
			continue
		}

		sem <- struct{}{}
		go func() {
			defer func() { <-sem }()
			loop.Enqueue(c.player, msg, x, y, info)
		}()
	}
}

func writePump(conn netgame.Conn, send <-chan []byte, done <-chan struct{}) {
	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return
			}
			if err := conn.WriteFrame(msg); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

package server

import (
	"sync"

	"github.com/lukev/curse-of-war/internal/logging"
	"github.com/lukev/curse-of-war/internal/netgame"
)

// client is one admitted player's socket plus its outbound queue.
// Every admitted client sits in the one running game, so unlike the
// teacher's per-room websocket.Client this carries no game/seat
// bookkeeping beyond its player slot.
type client struct {
	conn   netgame.Conn
	send   chan []byte
	player int
}

// Hub owns the connected-client set. Register/unregister/broadcast
// keep the teacher's channel shape verbatim (internal/websocket.Hub);
// only the per-room subscriber maps are dropped since Curse of War has
// a single room.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool

	register   chan *client
	unregister chan *client
	broadcast  chan []byte
}

// NewHub allocates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte),
	}
}

// Run drives the hub's register/unregister/broadcast loop. It never
// returns; callers run it in its own goroutine.
func (h *Hub) Run() {
	log := logging.Get()
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			log.Info().Int("player", c.player).Int("clients", h.ClientCount()).Msg("client connected")

		case c := <-h.unregister:
			h.mu.Lock()
			h.unregisterLocked(c)
			h.mu.Unlock()
			log.Info().Int("player", c.player).Int("clients", h.ClientCount()).Msg("client disconnected")

		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				h.sendLocked(c, msg)
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) unregisterLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) sendLocked(c *client, msg []byte) {
	select {
	case c.send <- msg:
	default:
		close(c.send)
		delete(h.clients, c)
	}
}

// ClientCount reports the number of currently connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Clients returns a snapshot of the connected clients, for the tick
// loop to address per-player S2C frames.
func (h *Hub) Clients() []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}

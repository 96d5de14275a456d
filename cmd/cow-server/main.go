// Command cow-server runs one authoritative Curse of War game: it
// generates a map, accepts client connections over the chosen
// transport, and drives the tick loop until interrupted.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"math/rand"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lukev/curse-of-war/internal/logging"
	"github.com/lukev/curse-of-war/internal/netgame"
	"github.com/lukev/curse-of-war/internal/options"
	"github.com/lukev/curse-of-war/internal/server"
	"github.com/lukev/curse-of-war/internal/state"
)

func main() {
	addr := flag.String("addr", ":19140", "game socket address")
	adminAddr := flag.String("admin-addr", ":8080", "admin HTTP address (/health, /debug/clients)")
	transportName := flag.String("transport", "ws", "transport: tcp, udp, or ws")
	seed := flag.Uint64("seed", 0, "map seed (0 picks a random one)")
	flag.Parse()

	log := logging.Get()

	transport, err := netgame.ParseTransport(*transportName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid transport")
	}

	if *seed == 0 {
		*seed = uint64(uuid.New().ID())
	}
	opts := options.New(options.WithSeed(*seed))

	st, err := state.New(opts, rand.New(rand.NewSource(int64(*seed)+1)))
	if err != nil {
		log.Fatal().Err(err).Msg("map generation failed")
	}

	hub := server.NewHub()
	go hub.Run()

	loop := server.NewLoop(hub, st)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("tick loop stopped")
		}
	}()

	go serveAdmin(*adminAddr, hub, log)

	log.Info().Str("transport", transport.String()).Str("addr", *addr).Uint64("seed", *seed).Msg("starting game socket")
	if err := listenAndAccept(ctx, transport, *addr, loop, hub); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("listener stopped")
	}
}

var (
	playerMu   sync.Mutex
	nextPlayer = 1
)

func listenAndAccept(ctx context.Context, transport netgame.Transport, addr string, loop *server.Loop, hub *server.Hub) error {
	switch transport {
	case netgame.TransportTCP:
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}
		go func() { <-ctx.Done(); _ = ln.Close() }()
		for {
			c, err := ln.Accept()
			if err != nil {
				return err
			}
			player := claimPlayer()
			go server.Serve(loop, hub, netgame.NewTCPConn(c), player)
		}

	case netgame.TransportUDP:
		udpAddr, err := net.ResolveUDPAddr("udp", addr)
		if err != nil {
			return err
		}
		pc, err := net.ListenUDP("udp", udpAddr)
		if err != nil {
			return err
		}
		go func() { <-ctx.Done(); _ = pc.Close() }()
		// UDP has no accept step: the first datagram from a new remote
		// address spins up a dedicated connected socket for that peer.
		buf := make([]byte, 64*1024)
		seen := map[string]bool{}
		for {
			_, remote, err := pc.ReadFromUDP(buf)
			if err != nil {
				return err
			}
			key := remote.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			peer, err := net.DialUDP("udp", nil, remote)
			if err != nil {
				continue
			}
			player := claimPlayer()
			conn := netgame.NewUDPConn(peer)
			go server.Serve(loop, hub, conn, player)
		}

	case netgame.TransportWS:
		upgrader := websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		}
		wsMux := http.NewServeMux()
		wsMux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			c, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			player := claimPlayer()
			go server.Serve(loop, hub, netgame.NewWSConn(c), player)
		})
		srv := &http.Server{Addr: addr, Handler: wsMux}
		go func() { <-ctx.Done(); _ = srv.Close() }()
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil

	default:
		panic("unreachable")
	}
}

func claimPlayer() int {
	playerMu.Lock()
	defer playerMu.Unlock()
	p := nextPlayer
	nextPlayer++
	if nextPlayer > 7 {
		nextPlayer = 1
	}
	return p
}

func serveAdmin(addr string, hub *server.Hub, log zerolog.Logger) {
	router := adminRouter(hub)
	if err := http.ListenAndServe(addr, router); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("admin endpoint stopped")
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func adminRouter(hub *server.Hub) *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	router.HandleFunc("/debug/clients", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"clients": hub.ClientCount(),
			"time":    time.Now().UTC(),
		})
	})

	return router
}

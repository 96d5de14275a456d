// Command cow-client connects to a running cow-server and prints each
// decoded state snapshot; it is a headless demo of internal/client,
// not a renderer (spec §1 leaves the UI out of scope).
package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/lukev/curse-of-war/internal/client"
	"github.com/lukev/curse-of-war/internal/logging"
	"github.com/lukev/curse-of-war/internal/netgame"
)

func main() {
	addr := flag.String("addr", "localhost:19140", "server address (host:port)")
	transportName := flag.String("transport", "ws", "transport: tcp, udp, or ws")
	flag.Parse()

	log := logging.Get()

	transport, err := netgame.ParseTransport(*transportName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid transport")
	}

	conn, err := dial(transport, *addr)
	if err != nil {
		log.Fatal().Err(err).Msg("dial failed")
	}
	defer conn.Close()

	loop := client.New(conn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case view := <-loop.Views:
				log.Info().
					Int("player", view.Player).
					Uint64("time", view.Time).
					Bool("paused", view.Paused).
					Uint64("gold", view.Gold[view.Player]).
					Msg("snapshot")
			}
		}
	}()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("client loop stopped")
	}
}

func dial(transport netgame.Transport, addr string) (netgame.Conn, error) {
	switch transport {
	case netgame.TransportTCP:
		c, err := net.Dial("tcp", addr)
		if err != nil {
			return nil, err
		}
		return netgame.NewTCPConn(c), nil

	case netgame.TransportUDP:
		udpAddr, err := net.ResolveUDPAddr("udp", addr)
		if err != nil {
			return nil, err
		}
		c, err := net.DialUDP("udp", nil, udpAddr)
		if err != nil {
			return nil, err
		}
		return netgame.NewUDPConn(c), nil

	case netgame.TransportWS:
		url := "ws://" + addr + "/ws"
		c, _, err := websocket.DefaultDialer.Dial(url, http.Header{})
		if err != nil {
			return nil, err
		}
		return netgame.NewWSConn(c), nil

	default:
		return nil, net.UnknownNetworkError(transport.String())
	}
}

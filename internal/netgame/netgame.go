// Package netgame provides a transport-neutral framing layer over
// TCP, UDP, and WebSocket sockets, so internal/server and
// internal/client never need to know which one carries a given
// connection (spec §4.7's "build feature" toggle, realized here as a
// Transport enum picked at startup rather than a Go build tag).
package netgame

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

// Transport selects which socket kind a Conn is built on.
type Transport int

const (
	TransportTCP Transport = iota
	TransportUDP
	TransportWS
)

func (t Transport) String() string {
	switch t {
	case TransportTCP:
		return "tcp"
	case TransportUDP:
		return "udp"
	case TransportWS:
		return "ws"
	default:
		return "unknown-transport"
	}
}

// ParseTransport maps a -transport flag value to a Transport.
func ParseTransport(s string) (Transport, error) {
	switch s {
	case "tcp":
		return TransportTCP, nil
	case "udp":
		return TransportUDP, nil
	case "ws", "websocket":
		return TransportWS, nil
	default:
		return 0, fmt.Errorf("unknown transport %q", s)
	}
}

// Conn is one framed game connection, regardless of the socket kind
// underneath it.
type Conn interface {
	// ReadFrame blocks for the next whole frame and returns it. The
	// returned slice is only valid until the next ReadFrame call.
	ReadFrame() ([]byte, error)
	WriteFrame(data []byte) error
	RemoteAddr() string
	SetReadDeadline(t time.Time) error
	Close() error
}

const maxFrameSize = 64 * 1024

// tcpConn length-prefixes frames with a big-endian uint32, since a
// raw TCP stream carries no message boundaries of its own.
type tcpConn struct {
	c   net.Conn
	buf []byte
}

// NewTCPConn wraps an already-established TCP connection.
func NewTCPConn(c net.Conn) Conn {
	return &tcpConn{c: c, buf: make([]byte, maxFrameSize)}
}

func (t *tcpConn) ReadFrame() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(t.c, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n == 0 || int(n) > maxFrameSize {
		return nil, fmt.Errorf("netgame: invalid frame length %d", n)
	}
	if _, err := io.ReadFull(t.c, t.buf[:n]); err != nil {
		return nil, err
	}
	return t.buf[:n], nil
}

func (t *tcpConn) WriteFrame(data []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := t.c.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := t.c.Write(data)
	return err
}

func (t *tcpConn) RemoteAddr() string { return t.c.RemoteAddr().String() }

func (t *tcpConn) SetReadDeadline(deadline time.Time) error { return t.c.SetReadDeadline(deadline) }

func (t *tcpConn) Close() error { return t.c.Close() }

// udpConn wraps a UDP socket bound to a single remote peer (obtained
// via net.DialUDP on the client, or per-peer demuxing on the server);
// each datagram already is exactly one frame.
type udpConn struct {
	c   *net.UDPConn
	buf []byte
}

// NewUDPConn wraps a UDP connection already connected to its peer.
func NewUDPConn(c *net.UDPConn) Conn {
	return &udpConn{c: c, buf: make([]byte, maxFrameSize)}
}

func (u *udpConn) ReadFrame() ([]byte, error) {
	n, err := u.c.Read(u.buf)
	if err != nil {
		return nil, err
	}
	return u.buf[:n], nil
}

func (u *udpConn) WriteFrame(data []byte) error {
	_, err := u.c.Write(data)
	return err
}

func (u *udpConn) RemoteAddr() string {
	if addr := u.c.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return ""
}

func (u *udpConn) SetReadDeadline(deadline time.Time) error { return u.c.SetReadDeadline(deadline) }

func (u *udpConn) Close() error { return u.c.Close() }

// wsConn wraps a gorilla/websocket connection, the teacher's own
// transport. Each WebSocket message is one frame.
type wsConn struct {
	c *websocket.Conn
}

// NewWSConn wraps an already-upgraded websocket connection.
func NewWSConn(c *websocket.Conn) Conn {
	return &wsConn{c: c}
}

func (w *wsConn) ReadFrame() ([]byte, error) {
	_, data, err := w.c.ReadMessage()
	return data, err
}

func (w *wsConn) WriteFrame(data []byte) error {
	return w.c.WriteMessage(websocket.BinaryMessage, data)
}

func (w *wsConn) RemoteAddr() string { return w.c.RemoteAddr().String() }

func (w *wsConn) SetReadDeadline(deadline time.Time) error { return w.c.SetReadDeadline(deadline) }

func (w *wsConn) Close() error { return w.c.Close() }

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"redlight/internal/protocol"
	"redlight/internal/room"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 25 * time.Second
	helloWait    = 5 * time.Second
	maxFrameSize = 1 << 16
	sendQueue    = 64
)

var errSlowClient = errors.New("client send queue full")

// wsConn adapts a websocket to room.Conn. Sends are queued so a slow client
// never stalls the room goroutine; a full queue drops the client.
type wsConn struct {
	conn *websocket.Conn
	out  chan []byte
	done chan struct{}
	once sync.Once
}

func newWSConn(conn *websocket.Conn) *wsConn {
	c := &wsConn{
		conn: conn,
		out:  make(chan []byte, sendQueue),
		done: make(chan struct{}),
	}
	go c.writeLoop()
	return c
}

func (c *wsConn) Send(b []byte) error {
	select {
	case <-c.done:
		return net.ErrClosed
	default:
	}
	select {
	case c.out <- b:
		return nil
	default:
		return errSlowClient
	}
}

func (c *wsConn) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

func (c *wsConn) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case b := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
				log.Printf("failed to write to client: %v", err)
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}

type hub struct {
	ctx      context.Context
	room     *room.Room
	upgrader websocket.Upgrader
}

func newHub(ctx context.Context, r *room.Room) *hub {
	return &hub{
		ctx:  ctx,
		room: r,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// submit hands a command to the room unless the server is shutting down.
func (h *hub) submit(cmd any) bool {
	select {
	case h.room.Inbox <- cmd:
		return true
	case <-h.ctx.Done():
		return false
	}
}

func (h *hub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade failed: %v", err)
			return
		}
		conn.SetReadLimit(maxFrameSize)

		hello, err := readHello(conn)
		if err != nil {
			log.Printf("handshake failed: %v", err)
			conn.Close()
			return
		}

		wc := newWSConn(conn)
		reply := make(chan room.JoinResult, 1)
		if !h.submit(room.Join{Conn: wc, Name: hello.Name, Reply: reply}) {
			wc.Close()
			return
		}
		var res room.JoinResult
		select {
		case res = <-reply:
		case <-h.ctx.Done():
			wc.Close()
			return
		}
		defer h.submit(room.Leave{ClientID: res.ClientID})

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				log.Printf("client %s read error: %v", res.ClientID, err)
				return
			}
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))

			env, err := protocol.DecodeEnvelope(data)
			if err != nil {
				log.Printf("unable to decode frame from %s: %v", res.ClientID, err)
				continue
			}
			cmd, err := command(res.ClientID, env)
			if err != nil {
				log.Printf("client %s: %v", res.ClientID, err)
				continue
			}
			if cmd != nil && !h.submit(cmd) {
				return
			}
		}
	}
}

func readHello(conn *websocket.Conn) (protocol.Hello, error) {
	_ = conn.SetReadDeadline(time.Now().Add(helloWait))
	_, data, err := conn.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(data)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, fmt.Errorf("expected %s, got %q", protocol.MsgHello, env.T)
	}
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		return protocol.Hello{}, err
	}
	if hello.V != protocol.Version {
		return protocol.Hello{}, fmt.Errorf("unsupported protocol version %d", hello.V)
	}
	return hello, nil
}

// command turns a client frame into a room command. Unknown message types
// are ignored.
func command(clientID string, env protocol.Envelope) (any, error) {
	switch env.T {
	case protocol.MsgInput:
		in, err := protocol.DecodePayload[protocol.Input](env)
		if err != nil {
			return nil, err
		}
		return room.Input{ClientID: clientID, Input: in}, nil
	case protocol.MsgResize:
		rs, err := protocol.DecodePayload[protocol.Resize](env)
		if err != nil {
			return nil, err
		}
		return room.Resize{ClientID: clientID, Width: rs.Width, Height: rs.Height}, nil
	}
	return nil, nil
}

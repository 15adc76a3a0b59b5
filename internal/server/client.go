package server

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendBufferSize = 64
	writeTimeout   = 10 * time.Second
	readTimeout    = 60 * time.Second
	pingInterval   = 25 * time.Second
	maxFrameSize   = 1 << 16
)

var errSendBufferFull = errors.New("send buffer full")

// wsClient wraps one gorilla connection with a buffered outbound channel and
// a writer goroutine, so broadcasts from the sim loop never block. A full
// buffer drops the message instead of stalling the simulation.
type wsClient struct {
	id        string
	conn      *websocket.Conn
	send      chan any
	done      chan struct{}
	closeOnce sync.Once
}

func newWSClient(id string, conn *websocket.Conn) *wsClient {
	return &wsClient{
		id:   id,
		conn: conn,
		send: make(chan any, sendBufferSize),
		done: make(chan struct{}),
	}
}

// Send queues one outbound message, fire-and-forget.
func (c *wsClient) Send(payload any) error {
	select {
	case <-c.done:
		return errors.New("connection closed")
	case c.send <- payload:
		return nil
	default:
		return errSendBufferFull
	}
}

func (c *wsClient) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// writeLoop owns all writes on the connection, including keepalive pings.
func (c *wsClient) writeLoop() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteJSON(payload); err != nil {
				log.Printf("ws: write error %s: %v", c.id, err)
				c.close()
				return
			}
		case <-ping.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		}
	}
}

// readLoop feeds inbound frames to the sim until the connection dies, then
// reports the disconnect. Runs on the handler goroutine.
func (c *wsClient) readLoop(sim *Sim) {
	defer func() {
		c.close()
		sim.Disconnect(c.id)
	}()
	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			log.Printf("ws: read closed %s: %v", c.id, err)
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))
		sim.Message(c.id, raw)
	}
}

package server

import (
	"encoding/json"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer = 256
	writeWait  = 10 * time.Second
)

// Connection wraps a websocket with a buffered outbound queue drained by
// WritePump.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
	log  logr.Logger
}

// MessageHandler handles one inbound frame.
type MessageHandler interface {
	HandleMessage(c *Connection, message []byte)
}

// NewConnection creates a new connection wrapper.
func NewConnection(ws *websocket.Conn, log logr.Logger) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, sendBuffer),
		log:  log,
	}
}

// ReadPump delivers frames to h until the socket closes. It is the only
// goroutine that calls h.
func (c *Connection) ReadPump(h MessageHandler) {
	defer func() {
		close(c.send)
		c.ws.Close()
	}()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Error(err, "read failed")
			}
			return
		}
		h.HandleMessage(c, message)
	}
}

// WritePump sends queued frames until the queue is closed.
func (c *Connection) WritePump() {
	defer c.ws.Close()

	for message := range c.send {
		c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			c.log.V(1).Info("write failed", "err", err.Error())
			return
		}
	}
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// SendMessage queues msg as JSON. A full queue means the client is not
// keeping up, and the connection is dropped.
func (c *Connection) SendMessage(msg BaseMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
	default:
		c.log.Info("send queue full, closing")
		c.ws.Close()
	}
	return nil
}

// CloseSend ends the outbound queue for a connection whose ReadPump never
// started. WritePump flushes what is queued and closes the socket.
func (c *Connection) CloseSend() {
	close(c.send)
}

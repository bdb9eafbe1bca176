package feed

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// sendBuffer is how many frames a client may fall behind before it is dropped
	sendBuffer = 256

	// Time allowed to write one frame to the peer
	defaultWriteWait = 10 * time.Second
)

// client wraps one spectator connection
type client struct {
	id        uuid.UUID
	ws        *websocket.Conn
	send      chan []byte
	writeWait time.Duration
}

func newClient(ws *websocket.Conn, writeWait time.Duration) *client {
	return &client{
		id:        uuid.New(),
		ws:        ws,
		send:      make(chan []byte, sendBuffer),
		writeWait: writeWait,
	}
}

// readPump discards incoming messages; it returns when the peer goes away
func (c *client) readPump() {
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("feed client %s: read: %v", c.id, err)
			}
			return
		}
	}
}

// writePump writes queued frames to the connection until send is closed.
// A peer that stalls a write past writeWait is disconnected.
func (c *client) writePump() {
	defer c.ws.Close()

	for message := range c.send {
		c.ws.SetWriteDeadline(time.Now().Add(c.writeWait))
		w, err := c.ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	c.ws.SetWriteDeadline(time.Now().Add(c.writeWait))
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// Package feed mirrors the game to read-only spectators over websockets.
// Every drawn snapshot is sent as one JSON text message.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mazeraid/pkg/game/snapshot"
)

// Path is where the feed is served
const Path = "/ws"

var upgrader = websocket.Upgrader{
	// Spectator pages may be served from anywhere
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub tracks the connected spectators
type Hub struct {
	mu        sync.RWMutex
	clients   map[*client]struct{}
	last      []byte // Most recent frame, sent to clients as they join
	writeWait time.Duration
}

// NewHub creates a hub with no clients
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*client]struct{}),
		writeWait: defaultWriteWait,
	}
}

// ServeHTTP upgrades the request and registers the connection
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("feed: upgrade: %v", err)
		return
	}

	c := newClient(ws, h.writeWait)
	h.register(c)
	go c.writePump()

	c.readPump()
	h.unregister(c)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	log.Printf("feed client %s connected (%d watching)", c.id, len(h.clients))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	log.Printf("feed client %s disconnected (%d watching)", c.id, len(h.clients))
}

// Broadcast sends a snapshot to every client. A client whose buffer is full
// is disconnected rather than slowing the game down.
func (h *Hub) Broadcast(snap snapshot.Snapshot) error {
	message, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = message
	for c := range h.clients {
		select {
		case c.send <- message:
		default:
			log.Printf("feed client %s too slow, dropping", c.id)
			delete(h.clients, c)
			close(c.send)
		}
	}
	return nil
}

// Len returns the number of connected clients
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Handler returns a mux serving the hub at Path
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Path, h)
	return mux
}

// ListenAndServe serves the feed on addr until ctx is cancelled
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	log.Printf("feed listening on %s%s", addr, Path)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("feed: %w", err)
	}
	return nil
}

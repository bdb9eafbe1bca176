package feed

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"mazeraid/pkg/engine/world"
	"mazeraid/pkg/game/snapshot"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + Path
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Len() != n {
		if time.Now().After(deadline) {
			t.Fatalf("Len() = %d, want %d", h.Len(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readSnapshot(t *testing.T, ws *websocket.Conn) snapshot.Snapshot {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var snap snapshot.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return snap
}

func TestBroadcast_ReachesClients(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	waitForClients(t, h, 2)

	sent := snapshot.Snapshot{Level: 2, Tiles: []string{"#EX#"}, Player: snapshot.Player{Pos: world.Pt(1, 0), HP: 70}}
	if err := h.Broadcast(sent); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	for _, ws := range []*websocket.Conn{a, b} {
		got := readSnapshot(t, ws)
		if got.Level != 2 || got.Player.HP != 70 || got.Player.Pos != world.Pt(1, 0) {
			t.Errorf("received %+v, want level 2 with the player at (1,0) on 70 HP", got)
		}
	}
}

func TestLateJoinerGetsLastFrame(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	h.Broadcast(snapshot.Snapshot{Level: 4})

	ws := dial(t, srv)
	if got := readSnapshot(t, ws); got.Level != 4 {
		t.Errorf("late joiner got level %d, want 4", got.Level)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	ws := dial(t, srv)
	waitForClients(t, h, 1)
	ws.Close()
	waitForClients(t, h, 0)
}

func TestBroadcast_DropsSlowClient(t *testing.T) {
	h := NewHub()
	slow := &client{id: uuid.New(), send: make(chan []byte, 1)}
	h.register(slow)

	h.Broadcast(snapshot.Snapshot{Level: 0})
	if h.Len() != 1 {
		t.Fatalf("Len() = %d after one frame, want 1", h.Len())
	}
	h.Broadcast(snapshot.Snapshot{Level: 1})
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want the slow client dropped", h.Len())
	}
	if _, ok := <-slow.send; !ok {
		t.Error("buffered frame lost")
	}
	if _, ok := <-slow.send; ok {
		t.Error("send channel not closed after drop")
	}
}

func TestStalledWriteDisconnects(t *testing.T) {
	h := NewHub()
	h.writeWait = -time.Second // every write is already past its deadline
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	ws := dial(t, srv)
	waitForClients(t, h, 1)

	h.Broadcast(snapshot.Snapshot{Level: 1})

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := ws.ReadMessage(); err == nil {
		t.Error("received a frame that should have timed out")
	}
	waitForClients(t, h, 0)
}

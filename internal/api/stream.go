package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/talgya/cubicle/internal/engine"
)

const (
	maxStreamConns = 32
	streamBuffer   = 8
	writeTimeout   = 5 * time.Second
	readTimeout    = 60 * time.Second
)

// Frame is one message on the observer stream.
type Frame struct {
	Type  string             `json:"type"` // "snapshot"
	Tick  uint64             `json:"tick"`
	World *engine.WorldState `json:"world"`
	Stats *engine.Stats      `json:"stats,omitempty"`
}

// Hub fans world snapshots out to websocket observers. Slow observers drop
// frames rather than stall the tick loop.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[uint64]chan []byte
	nextID  uint64
	closed  bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[uint64]chan []byte),
	}
}

// Clients returns the number of connected observers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast encodes w once and queues it for every observer.
func (h *Hub) Broadcast(w *engine.WorldState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}
	msg, err := encodeFrame(w, nil)
	if err != nil {
		slog.Error("encode stream frame", "error", err)
		return
	}
	for _, ch := range h.clients {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Close disconnects every observer and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, ch := range h.clients {
		close(ch)
		delete(h.clients, id)
	}
}

func (h *Hub) join() (uint64, chan []byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || len(h.clients) >= maxStreamConns {
		return 0, nil, false
	}
	h.nextID++
	ch := make(chan []byte, streamBuffer)
	h.clients[h.nextID] = ch
	return h.nextID, ch, true
}

func (h *Hub) leave(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.clients[id]; ok {
		close(ch)
		delete(h.clients, id)
	}
}

func encodeFrame(w *engine.WorldState, stats *engine.Stats) ([]byte, error) {
	return json.Marshal(Frame{Type: "snapshot", Tick: w.Tick, World: w, Stats: stats})
}

// handleStream upgrades to a websocket, sends the current state, then one
// frame per tick.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	id, ch, ok := s.hub.join()
	if !ok {
		http.Error(w, "too many stream connections", http.StatusServiceUnavailable)
		return
	}
	defer s.hub.leave(id)

	conn, err := s.hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	slog.Info("stream client connected", "id", id)

	stats := s.Sim.CurrentStats()
	first, err := encodeFrame(s.Sim.State(), &stats)
	if err != nil {
		return
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, first); err != nil {
		return
	}

	// Reader: observers send nothing meaningful; reading detects disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case msg, ok := <-ch:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(time.Second))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}

package realtime

import (
	"sync"
)

// Conn is one live client connection. Send must be safe for concurrent use.
type Conn interface {
	ID() string
	Send(event string, data interface{}) error
	Close() error
}

// Hub tracks which connections are joined to which rooms. A room id is a
// chat id; a connection may sit in any number of rooms at once. The hub is
// owned by the server, not package state, so its lifetime matches the
// server's.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[Conn]struct{}
	conns map[Conn]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Conn]struct{}),
		conns: make(map[Conn]map[string]struct{}),
	}
}

// Join adds the connection to the room. Rejoining is a no-op.
func (h *Hub) Join(c Conn, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rs, ok := h.rooms[roomID]
	if !ok {
		rs = make(map[Conn]struct{})
		h.rooms[roomID] = rs
	}
	rs[c] = struct{}{}

	cs, ok := h.conns[c]
	if !ok {
		cs = make(map[string]struct{})
		h.conns[c] = cs
	}
	cs[roomID] = struct{}{}
}

// Drop removes the connection from every room it joined. Called once when
// the connection closes; no persisted state changes with it.
func (h *Hub) Drop(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for roomID := range h.conns[c] {
		if rs, ok := h.rooms[roomID]; ok {
			delete(rs, c)
			if len(rs) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	delete(h.conns, c)
}

// Broadcast delivers the event to every connection in the room, best
// effort. A connection that already went away simply misses it.
func (h *Hub) Broadcast(roomID, event string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[roomID] {
		_ = c.Send(event, data)
	}
}

// BroadcastExcept is Broadcast with the sender left out, used for typing
// indicators.
func (h *Hub) BroadcastExcept(roomID string, sender Conn, event string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[roomID] {
		if c == sender {
			continue
		}
		_ = c.Send(event, data)
	}
}

// RoomSize reports how many connections are joined to the room.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

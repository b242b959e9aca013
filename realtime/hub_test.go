package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeConn records everything sent to it.
type fakeConn struct {
	id string

	mu     sync.Mutex
	events []sentEvent
	closed bool
}

type sentEvent struct {
	Event string
	Data  interface{}
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Send(event string, data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, sentEvent{Event: event, Data: data})
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) sent() []sentEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]sentEvent, len(c.events))
	copy(out, c.events)
	return out
}

func TestHubJoin(t *testing.T) {
	t.Run("rejoining is a no-op", func(t *testing.T) {
		hub := NewHub()
		conn := newFakeConn("c1")

		hub.Join(conn, "room-a")
		hub.Join(conn, "room-a")
		assert.Equal(t, 1, hub.RoomSize("room-a"))
	})

	t.Run("a connection may sit in several rooms", func(t *testing.T) {
		hub := NewHub()
		conn := newFakeConn("c1")

		hub.Join(conn, "room-a")
		hub.Join(conn, "room-b")

		hub.Broadcast("room-a", "message", "a")
		hub.Broadcast("room-b", "message", "b")
		assert.Len(t, conn.sent(), 2)
	})
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	inRoom1 := newFakeConn("c1")
	inRoom2 := newFakeConn("c2")
	outside := newFakeConn("c3")

	hub.Join(inRoom1, "room-a")
	hub.Join(inRoom2, "room-a")
	hub.Join(outside, "room-b")

	hub.Broadcast("room-a", "message", "hello")

	assert.Len(t, inRoom1.sent(), 1)
	assert.Len(t, inRoom2.sent(), 1)
	assert.Empty(t, outside.sent(), "connections outside the room receive nothing")

	hub.Broadcast("no-such-room", "message", "void")
	assert.Len(t, inRoom1.sent(), 1)
}

func TestHubBroadcastExcept(t *testing.T) {
	hub := NewHub()
	sender := newFakeConn("c1")
	other := newFakeConn("c2")

	hub.Join(sender, "room-a")
	hub.Join(other, "room-a")

	hub.BroadcastExcept("room-a", sender, "typing", "1")

	assert.Empty(t, sender.sent(), "sender must not get its own typing event")
	assert.Len(t, other.sent(), 1)
}

func TestHubDrop(t *testing.T) {
	hub := NewHub()
	conn := newFakeConn("c1")
	stays := newFakeConn("c2")

	hub.Join(conn, "room-a")
	hub.Join(conn, "room-b")
	hub.Join(stays, "room-a")

	hub.Drop(conn)

	assert.Equal(t, 1, hub.RoomSize("room-a"))
	assert.Equal(t, 0, hub.RoomSize("room-b"))

	hub.Broadcast("room-a", "message", "hello")
	assert.Empty(t, conn.sent())
	assert.Len(t, stays.sent(), 1)

	// dropping twice is harmless
	hub.Drop(conn)
}

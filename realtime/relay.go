package realtime

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/obiwandrew/sociagram/services"
	"github.com/sirupsen/logrus"
)

const (
	maxFrameSize = 1 << 20
	pingEvery    = 15 * time.Second
)

// Relay bridges the websocket channel and the message store: it consumes
// inbound events from connections, persists messages, and fans the results
// back out through the hub. Malformed or failing events never crash the
// connection; they are dropped and logged.
type Relay struct {
	hub            *Hub
	messageService services.MessageService
	log            *logrus.Logger
}

func NewRelay(hub *Hub, messageService services.MessageService, log *logrus.Logger) *Relay {
	return &Relay{
		hub:            hub,
		messageService: messageService,
		log:            log,
	}
}

// Hub exposes the room registry, mainly so tests and the server can
// inspect it.
func (r *Relay) Hub() *Hub {
	return r.hub
}

// ServeConn drives an upgraded websocket connection until it closes, then
// removes it from every room it joined.
func (r *Relay) ServeConn(conn *websocket.Conn, userID uint) {
	c := newWSConn(conn, userID)
	r.log.WithFields(logrus.Fields{
		"conn": c.ID(),
		"user": c.userID,
	}).Debug("websocket connected")
	defer func() {
		r.hub.Drop(c)
		_ = c.Close()
		r.log.WithField("conn", c.ID()).Debug("websocket disconnected")
	}()

	go r.pingLoop(c)

	conn.SetReadLimit(maxFrameSize)
	conn.SetReadDeadline(time.Now().Add(2 * pingEvery))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(2 * pingEvery))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		r.HandleEvent(c, data)
	}
}

// HandleEvent processes one inbound frame.
func (r *Relay) HandleEvent(c Conn, raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		r.log.WithField("conn", c.ID()).Debug("dropping unparseable frame")
		return
	}

	switch env.Event {
	case EventJoinRoom:
		r.handleJoinRoom(c, env.Data)
	case EventMessage:
		r.handleMessage(c, env.Data)
	case EventTyping:
		r.handleTyping(c, env.Data)
	default:
		r.log.WithFields(logrus.Fields{
			"conn":  c.ID(),
			"event": env.Event,
		}).Debug("ignoring unknown event")
	}
}

func (r *Relay) handleJoinRoom(c Conn, data json.RawMessage) {
	var chatID string
	if err := json.Unmarshal(data, &chatID); err != nil {
		var payload JoinRoomPayload
		if err := json.Unmarshal(data, &payload); err != nil || payload.ChatID == "" {
			r.log.WithField("conn", c.ID()).Debug("dropping joinRoom with bad payload")
			return
		}
		chatID = payload.ChatID
	}

	// TODO: verify the connected user is a member of this chat before
	// joining; today any authenticated connection can join any room.
	r.hub.Join(c, chatID)
}

// handleMessage persists the message and rebroadcasts the stored record to
// the chat's room, sender included. The event is dropped on any parse or
// persistence failure; the sender gets no error back.
func (r *Relay) handleMessage(c Conn, data json.RawMessage) {
	payload, ok := r.decodeMessagePayload(data)
	if !ok {
		r.log.WithField("conn", c.ID()).Warn("dropping malformed message event")
		return
	}

	chatID, err := uuid.Parse(payload.ChatID)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"conn": c.ID(),
			"chat": payload.ChatID,
		}).Warn("dropping message event with bad chat id")
		return
	}
	senderID, err := strconv.ParseUint(string(payload.SenderID), 10, 64)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"conn":   c.ID(),
			"sender": string(payload.SenderID),
		}).Warn("dropping message event with bad sender id")
		return
	}

	message, err := r.messageService.AddMessage(chatID, uint(senderID), payload.Content)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"conn": c.ID(),
			"chat": payload.ChatID,
		}).WithError(err).Warn("dropping message event, persist failed")
		return
	}

	r.hub.Broadcast(payload.ChatID, EventMessage, message)
}

func (r *Relay) handleTyping(c Conn, data json.RawMessage) {
	var payload TypingPayload
	if err := json.Unmarshal(data, &payload); err != nil || payload.ChatID == "" || payload.SenderID == "" {
		r.log.WithField("conn", c.ID()).Debug("dropping typing with bad payload")
		return
	}

	r.hub.BroadcastExcept(payload.ChatID, c, EventTyping, string(payload.SenderID))
}

// decodeMessagePayload accepts the structured payload and, for older
// clients, the delimited string framing.
func (r *Relay) decodeMessagePayload(data json.RawMessage) (MessagePayload, bool) {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		return parseLegacyFrame(raw)
	}

	var payload MessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return MessagePayload{}, false
	}
	if payload.ChatID == "" || payload.SenderID == "" || payload.Content == "" {
		return MessagePayload{}, false
	}
	return payload, true
}

func (r *Relay) pingLoop(c *wsConn) {
	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		case <-c.closed:
			return
		}
	}
}

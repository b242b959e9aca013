package realtime

import (
	"encoding/json"
	"strings"
)

// Wire event names, client<->server.
const (
	EventJoinRoom = "joinRoom"
	EventMessage  = "message"
	EventTyping   = "typing"
)

// Envelope is the frame every websocket event travels in.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// flexID accepts either a JSON string or a bare number, since clients have
// historically sent ids both ways.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	*f = flexID(string(b))
	return nil
}

// MessagePayload is the structured form of the inbound "message" event.
type MessagePayload struct {
	ChatID   string `json:"chatId"`
	SenderID flexID `json:"senderId"`
	Content  string `json:"content"`
}

// TypingPayload is the inbound "typing" event.
type TypingPayload struct {
	ChatID   string `json:"chatId"`
	SenderID flexID `json:"senderId"`
}

// JoinRoomPayload is the object form of the inbound "joinRoom" event; a
// bare chat-id string is also accepted.
type JoinRoomPayload struct {
	ChatID string `json:"chatId"`
}

// parseLegacyFrame decodes the delimited string framing older clients send
// for the "message" event: `chatId=<id>, senderId=<id>, content=<text>`.
// Content is everything after the first two fields with exactly one
// trailing character stripped, matching the sender-side framing.
func parseLegacyFrame(raw string) (MessagePayload, bool) {
	parts := strings.SplitN(raw, ", ", 3)
	if len(parts) != 3 {
		return MessagePayload{}, false
	}

	chatID, ok := strings.CutPrefix(parts[0], "chatId=")
	if !ok {
		return MessagePayload{}, false
	}
	senderID, ok := strings.CutPrefix(parts[1], "senderId=")
	if !ok {
		return MessagePayload{}, false
	}
	content, ok := strings.CutPrefix(parts[2], "content=")
	if !ok || content == "" {
		return MessagePayload{}, false
	}
	content = content[:len(content)-1]

	return MessagePayload{
		ChatID:   chatID,
		SenderID: flexID(senderID),
		Content:  content,
	}, true
}

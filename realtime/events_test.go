package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLegacyFrame(t *testing.T) {
	t.Run("splits the three fields", func(t *testing.T) {
		payload, ok := parseLegacyFrame("chatId=c1, senderId=12, content=hi there.")
		assert.True(t, ok)
		assert.Equal(t, "c1", payload.ChatID)
		assert.Equal(t, flexID("12"), payload.SenderID)
		assert.Equal(t, "hi there", payload.Content)
	})

	t.Run("strips exactly one trailing character", func(t *testing.T) {
		payload, ok := parseLegacyFrame("chatId=c1, senderId=12, content=hello!!")
		assert.True(t, ok)
		assert.Equal(t, "hello!", payload.Content)
	})

	t.Run("content keeps interior commas", func(t *testing.T) {
		payload, ok := parseLegacyFrame("chatId=c1, senderId=12, content=well, well, well.")
		assert.True(t, ok)
		assert.Equal(t, "well, well, well", payload.Content)
	})

	t.Run("rejects frames missing a field", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"chatId=c1",
			"chatId=c1, senderId=12",
			"senderId=12, chatId=c1, content=out of order.",
			"chatId=c1, senderId=12, body=wrong key.",
			"chatId=c1, senderId=12, content=",
		} {
			_, ok := parseLegacyFrame(raw)
			assert.False(t, ok, "expected %q to be rejected", raw)
		}
	})
}

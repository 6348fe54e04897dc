package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, h http.HandlerFunc) *TelebotAdapter {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	bot, err := NewBot("123:abc", srv.URL, time.Second)
	require.NoError(t, err)
	return NewTelebotAdapter(bot)
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	var gotPath, gotChatID, gotText string
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var params map[string]any
		if err := json.NewDecoder(r.Body).Decode(&params); err == nil {
			gotChatID, _ = params["chat_id"].(string)
			gotText, _ = params["text"].(string)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"hi"}}`))
	})

	err := adapter.SendMessage(42, "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "42", gotChatID)
	assert.Equal(t, "hi", gotText)
}

func TestTelebotAdapter_SendMessageError(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	err := adapter.SendMessage(42, "hi", nil)
	assert.Error(t, err)
}

func TestNewBot_UnreachableAPIFailsOnSendOnly(t *testing.T) {
	bot, err := NewBot("123:abc", "http://127.0.0.1:1", 200*time.Millisecond)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(42, "hi", nil)
	assert.Error(t, err)
}

func TestNewBot_NoStartupRequest(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewBot("123:abc", srv.URL, time.Second)
	require.NoError(t, err)
	assert.Zero(t, hits)
}

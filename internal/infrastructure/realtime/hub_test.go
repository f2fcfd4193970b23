package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T, origins []string) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(origins)
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, &Event{Type: "theme", Data: map[string]string{"primary": "#00D4FF"}})
	}))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	return ev
}

func TestHub_InitialThenBroadcast(t *testing.T) {
	hub, srv := startHub(t, nil)
	conn := dial(t, srv, nil)

	ev := readEvent(t, conn)
	assert.Equal(t, "theme", ev.Type)

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast("theme:update", map[string]string{"primary": "#FF0000"})
	ev = readEvent(t, conn)
	assert.Equal(t, "theme:update", ev.Type)
	assert.Equal(t, "#FF0000", ev.Data.(map[string]interface{})["primary"])
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub, srv := startHub(t, nil)
	conn := dial(t, srv, nil)
	readEvent(t, conn)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_RejectsUnknownOrigin(t *testing.T) {
	_, srv := startHub(t, []string{"https://qbrain.in"})
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn := dial(t, srv, http.Header{"Origin": {"https://qbrain.in"}})
	assert.Equal(t, "theme", readEvent(t, conn).Type)
}

func TestHub_NilBroadcastIsSafe(t *testing.T) {
	var h *Hub
	assert.NotPanics(t, func() { h.Broadcast("x", nil) })
}

package spectator

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tank-arena/internal/event"

	"github.com/coder/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, ctx context.Context, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.CloseNow() })

	select {
	case <-h.joined:
	case <-ctx.Done():
		t.Fatal("spectator never subscribed")
	}
	return conn
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) map[string]any {
	t.Helper()
	typ, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, websocket.MessageText, typ)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestHub_StreamsFramesWithMatchID(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := NewHub(zerolog.Nop())
	conn := dial(t, ctx, h)
	require.Equal(t, 1, h.Subscribers())

	h.OnEvent(event.Event{Type: event.MatchReset, Data: event.MatchPayload{Match: "abc"}})
	h.OnEvent(event.Event{Type: event.ScoreChanged, Time: 1.5, Data: event.ScorePayload{Player: 2, Score: 3}})

	first := readFrame(t, ctx, conn)
	assert.Equal(t, "MatchReset", first["type"])
	assert.Equal(t, "abc", first["match"])

	second := readFrame(t, ctx, conn)
	assert.Equal(t, "ScoreChanged", second["type"])
	assert.Equal(t, "abc", second["match"])
	assert.Equal(t, 1.5, second["time"])
	data := second["data"].(map[string]any)
	assert.Equal(t, 2.0, data["player"])
	assert.Equal(t, 3.0, data["score"])
}

func TestHub_ClientCloseUnsubscribes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	h := NewHub(zerolog.Nop())
	conn := dial(t, ctx, h)
	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))

	assert.Eventually(t, func() bool { return h.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_NoSubscribersIsCheap(t *testing.T) {
	h := NewHub(zerolog.Nop())
	h.OnEvent(event.Event{Type: event.MatchReset, Data: event.MatchPayload{Match: "m"}})
	h.OnEvent(event.Event{Type: event.BulletFired, Data: event.FirePayload{Player: 1, Bullets: 1}})
	assert.Equal(t, "m", h.match)
	assert.Zero(t, h.Subscribers())
}

func TestHub_ServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(zerolog.Nop())

	done := make(chan error, 1)
	go func() { done <- h.Serve(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHub_ServeBusyPortLogsAndReturnsNil(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	var buf bytes.Buffer
	h := NewHub(zerolog.New(&buf))

	done := make(chan error, 1)
	go func() { done <- h.Serve(context.Background(), busy.Addr().String()) }()

	select {
	case err := <-done:
		assert.NoError(t, err, "a failed stream must not stop other workers")
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return on a busy port")
	}
	assert.Contains(t, buf.String(), "spectator stream stopped")
}

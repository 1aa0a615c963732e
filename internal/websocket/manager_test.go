package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) (*WebSocketManager, *httptest.Server) {
	t.Helper()
	wm := NewWebSocketManager(AllowedOrigins{"http://allowed.example"}, nil, opts...)
	srv := httptest.NewServer(http.HandlerFunc(wm.HandleWebSocket))
	t.Cleanup(func() {
		_ = wm.Shutdown(context.Background())
		srv.Close()
	})
	return wm, srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitForClients(t *testing.T, wm *WebSocketManager, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return wm.GetConnectedClients() == n },
		2*time.Second, 10*time.Millisecond)
}

func TestAllowedOrigins(t *testing.T) {
	assert.True(t, AllowedOrigins{"*"}.IsAllowedOrigin("http://any.example"))
	assert.True(t, AllowedOrigins{"http://a.example"}.IsAllowedOrigin("http://a.example"))
	assert.False(t, AllowedOrigins{"http://a.example"}.IsAllowedOrigin("http://b.example"))
	assert.False(t, AllowedOrigins(nil).IsAllowedOrigin("http://a.example"))
}

func TestBroadcastReachesClients(t *testing.T) {
	wm, srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.CloseNow()
	waitForClients(t, wm, 1)

	wm.BroadcastMessage(UpdateMessage{Type: MessageRendered, Target: "docs/post.md", Content: "<p>hi</p>"})

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg UpdateMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, MessageRendered, msg.Type)
	assert.Equal(t, "docs/post.md", msg.Target)
	assert.Equal(t, "<p>hi</p>", msg.Content)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestOriginValidation(t *testing.T) {
	_, srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := websocket.Dial(ctx, wsURL(srv), &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{"http://evil.example"}},
	})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.Dial(ctx, wsURL(srv), &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{"http://allowed.example"}},
	})
	require.NoError(t, err)
	conn.CloseNow()
}

func TestConnectionsPerIPAreCapped(t *testing.T) {
	wm, srv := newTestServer(t, WithMaxConnectionsPerIP(1))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	first, _, err := websocket.Dial(ctx, wsURL(srv), nil)
	require.NoError(t, err)
	waitForClients(t, wm, 1)

	_, resp, err := websocket.Dial(ctx, wsURL(srv), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	require.NoError(t, first.Close(websocket.StatusNormalClosure, ""))
	waitForClients(t, wm, 0)

	second, _, err := websocket.Dial(ctx, wsURL(srv), nil)
	require.NoError(t, err)
	second.CloseNow()
}

func TestShutdown(t *testing.T) {
	wm, srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.CloseNow()
	waitForClients(t, wm, 1)

	require.NoError(t, wm.Shutdown(ctx))
	require.NoError(t, wm.Shutdown(ctx))
	assert.True(t, wm.IsShutdown())
	waitForClients(t, wm, 0)

	_, _, err = conn.Read(ctx)
	assert.Error(t, err)

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

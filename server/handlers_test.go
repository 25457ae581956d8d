// File: server/handlers_test.go
package server

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/pongvolley/bollywood"
	"github.com/lguibr/pongvolley/game"
	"github.com/lguibr/pongvolley/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

// --- Test Setup ---
func setupTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	engine := bollywood.NewEngine()
	server := New(engine)
	require.NotNil(t, server.GetBroadcasterPID(), "broadcaster PID should not be nil")

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(func() {
		engine.Shutdown(time.Second)
		httpServer.Close()
	})
	return server, httpServer
}

func newSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	match := game.NewMatch(utils.DefaultConfig(), rand.New(rand.NewSource(1)))
	match.Tick(game.Input{Down: true})
	return match.Snapshot()
}

func clientCount(t *testing.T, s *Server) int {
	t.Helper()
	reply := make(chan int, 1)
	s.GetEngine().Send(s.GetBroadcasterPID(), game.ClientCountRequest{Reply: reply}, nil)
	select {
	case n := <-reply:
		return n
	case <-time.After(time.Second):
		return -1
	}
}

func dialSubscribe(t *testing.T, httpServer *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/subscribe"
	conn, err := websocket.Dial(url, "", httpServer.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHandleGetSit_BeforeFirstSnapshot(t *testing.T) {
	_, httpServer := setupTestServer(t)

	resp, err := http.Get(httpServer.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{}`, string(body))
}

func TestHandleGetSit_ReturnsLatestSnapshot(t *testing.T) {
	server, httpServer := setupTestServer(t)
	snapshot := newSnapshot(t)
	server.Publish(snapshot)

	resp, err := http.Get(httpServer.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got game.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, snapshot, got)
}

func TestHandleGetSit_RejectsOtherMethodsAndPaths(t *testing.T) {
	_, httpServer := setupTestServer(t)

	resp, err := http.Post(httpServer.URL+"/", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(httpServer.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleSubscribe_StreamsSnapshots(t *testing.T) {
	server, httpServer := setupTestServer(t)
	conn := dialSubscribe(t, httpServer)

	assert.Eventually(t, func() bool { return clientCount(t, server) == 1 }, 2*time.Second, 10*time.Millisecond)

	snapshot := newSnapshot(t)
	server.Publish(snapshot)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got game.Snapshot
	require.NoError(t, websocket.JSON.Receive(conn, &got))
	assert.Equal(t, snapshot, got)
}

func TestHandleSubscribe_IgnoresClientMessages(t *testing.T) {
	server, httpServer := setupTestServer(t)
	conn := dialSubscribe(t, httpServer)
	assert.Eventually(t, func() bool { return clientCount(t, server) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, websocket.Message.Send(conn, `{"direction":"ArrowUp"}`))
	server.Publish(newSnapshot(t))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got game.Snapshot
	require.NoError(t, websocket.JSON.Receive(conn, &got))
	assert.Equal(t, "matchSnapshot", got.MessageType)
}

func TestHandleSubscribe_ClientLeaving(t *testing.T) {
	server, httpServer := setupTestServer(t)
	conn := dialSubscribe(t, httpServer)
	assert.Eventually(t, func() bool { return clientCount(t, server) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return clientCount(t, server) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServer_StartAndShutdown(t *testing.T) {
	server := New(bollywood.NewEngine())
	addr, err := server.Start("127.0.0.1:0")
	require.NoError(t, err)

	resp, err := http.Get("http://" + addr.String() + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(ctx))
	assert.Eventually(t, func() bool { return !server.GetEngine().Alive(server.GetBroadcasterPID()) }, time.Second, 5*time.Millisecond)
}

func TestServer_PublishMatchOver(t *testing.T) {
	server, httpServer := setupTestServer(t)
	conn := dialSubscribe(t, httpServer)
	assert.Eventually(t, func() bool { return clientCount(t, server) == 1 }, 2*time.Second, 10*time.Millisecond)

	snapshot := newSnapshot(t)
	snapshot.Winner = game.SidePlayer
	snapshot.PlayerScore = 3
	server.PublishMatchOver(snapshot)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got game.MatchOverMessage
	require.NoError(t, websocket.JSON.Receive(conn, &got))
	assert.Equal(t, game.SidePlayer, got.Winner)
	assert.Equal(t, 3, got.PlayerScore)
}

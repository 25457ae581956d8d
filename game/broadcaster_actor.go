// File: game/broadcaster_actor.go
package game

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/lguibr/pongvolley/bollywood"
	"golang.org/x/net/websocket"
)

// BroadcasterActor fans match snapshots out to spectator connections. It is
// the only owner of the client set, so no locking is needed.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	selfPID *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
		}

	case RemoveClient:
		if msg.Conn != nil {
			delete(a.clients, msg.Conn)
		}

	case BroadcastSnapshot:
		snapshot := msg.Snapshot
		a.broadcast(&snapshot)

	case BroadcastMatchOver:
		fmt.Printf("Broadcaster %s: %s won %d-%d (best of %d).\n",
			a.selfPID, msg.Message.Winner, msg.Message.PlayerScore, msg.Message.AIScore, msg.Message.BestOf)
		message := msg.Message
		a.broadcast(&message)

	case ClientCountRequest:
		if msg.Reply != nil {
			select {
			case msg.Reply <- len(a.clients):
			default:
			}
		}

	case bollywood.Stopping:
		if len(a.clients) > 0 {
			fmt.Printf("Broadcaster %s: Stopping. Closing %d connections.\n", a.selfPID, len(a.clients))
		}
		for conn := range a.clients {
			_ = conn.Close()
		}
		a.clients = make(map[*websocket.Conn]bool)

	case bollywood.Stopped:

	default:
		fmt.Printf("BroadcasterActor %s: Received unknown message type: %T\n", a.selfPID, msg)
	}
}

// broadcast sends v as JSON to every client and drops the ones whose write
// fails.
func (a *BroadcasterActor) broadcast(v interface{}) {
	for conn := range a.clients {
		err := websocket.JSON.Send(conn, v)
		if err == nil {
			continue
		}
		if !isClosedConnError(err) {
			fmt.Printf("ERROR: BroadcasterActor %s: Failed to write to client %s: %v\n", a.selfPID, conn.RemoteAddr(), err)
		}
		delete(a.clients, conn)
		_ = conn.Close()
	}
}

func isClosedConnError(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "use of closed network connection") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset by peer") ||
		strings.Contains(errStr, "EOF")
}

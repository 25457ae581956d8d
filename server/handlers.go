// File: server/handlers.go
package server

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/lguibr/pongvolley/game"
	"golang.org/x/net/websocket"
)

// HandleSubscribe registers the connection with the broadcaster and keeps it
// open until the spectator goes away.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.Request().RemoteAddr

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			s.engine.Send(s.broadcasterPID, game.RemoveClient{Conn: ws}, nil)
			_ = ws.Close()
		}()

		fmt.Printf("HandleSubscribe: Spectator connected from %s\n", connectionAddr)
		s.engine.Send(s.broadcasterPID, game.AddClient{Conn: ws}, nil)

		s.readLoop(ws)
		fmt.Printf("HandleSubscribe: Spectator %s left.\n", connectionAddr)
	}
}

// readLoop drains and discards anything the spectator sends; the feed is
// read-only. It returns when the connection fails or closes.
func (s *Server) readLoop(ws *websocket.Conn) {
	for {
		var ignored []byte
		if err := websocket.Message.Receive(ws, &ignored); err != nil {
			if err != io.EOF {
				fmt.Printf("ReadLoop: Error receiving from %s: %v\n", ws.Request().RemoteAddr, err)
			}
			return
		}
	}
}

// HandleGetSit returns the latest match snapshot as JSON.
func (s *Server) HandleGetSit() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fmt.Printf("PANIC recovered in HandleGetSit: %v\nStack trace:\n%s\n", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(s.Latest()); err != nil {
			fmt.Println("Error writing HTTP match snapshot:", err)
		}
	}
}

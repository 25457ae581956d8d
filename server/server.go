package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/lguibr/pongvolley/bollywood"
	"github.com/lguibr/pongvolley/game"
	"golang.org/x/net/websocket"
)

// Server exposes a running match to spectators: a websocket feed of
// snapshots on /subscribe and the latest snapshot as JSON on GET /.
type Server struct {
	engine         *bollywood.Engine
	broadcasterPID *bollywood.PID

	mu     sync.RWMutex
	latest []byte

	httpServer *http.Server
}

// New spawns the broadcaster actor on engine.
func New(engine *bollywood.Engine) *Server {
	return &Server{
		engine:         engine,
		broadcasterPID: engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer())),
	}
}

func (s *Server) GetEngine() *bollywood.Engine       { return s.engine }
func (s *Server) GetBroadcasterPID() *bollywood.PID { return s.broadcasterPID }

// Publish stores snapshot as the latest state and forwards it to every
// spectator. It never blocks the caller on network I/O.
func (s *Server) Publish(snapshot game.Snapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		fmt.Println("Error Marshaling the match snapshot:", err)
		return
	}
	s.mu.Lock()
	s.latest = data
	s.mu.Unlock()

	s.engine.Send(s.broadcasterPID, game.BroadcastSnapshot{Snapshot: snapshot}, nil)
}

// PublishMatchOver announces a finished match to every spectator.
func (s *Server) PublishMatchOver(snapshot game.Snapshot) {
	s.engine.Send(s.broadcasterPID, game.BroadcastMatchOver{Message: game.NewMatchOverMessage(snapshot)}, nil)
}

// Latest returns the JSON of the most recent snapshot, or "{}".
func (s *Server) Latest() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.latest) == 0 {
		return []byte("{}")
	}
	out := make([]byte, len(s.latest))
	copy(out, s.latest)
	return out
}

// Handler routes the spectator endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleGetSit())
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	return mux
}

// Start listens on addr and serves in the background. It returns the bound
// address, which differs from addr when addr uses port 0.
func (s *Server) Start(addr string) (net.Addr, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("spectator server listen on %s: %w", addr, err)
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Printf("Spectator server stopped: %v\n", err)
		}
	}()
	fmt.Printf("Spectator server listening on %s\n", listener.Addr())
	return listener.Addr(), nil
}

// Shutdown stops the HTTP server and the broadcaster, which closes every
// spectator connection.
func (s *Server) Shutdown(ctx context.Context) error {
	s.engine.Stop(s.broadcasterPID)
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("spectator server shutdown: %w", err)
	}
	return nil
}

// File: game/messages.go
package game

import (
	"golang.org/x/net/websocket"
)

// --- Message Header ---
// Used for identifying message types after unmarshalling from JSON
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

// --- WebSocket Messages (Server -> Spectator) ---

// Snapshot is a read-only copy of the match state handed to adapters and
// spectators. It shares nothing with the live Match.
type Snapshot struct {
	MessageType            string `json:"messageType"` // "matchSnapshot"
	ScreenWidth            int    `json:"screenWidth"`
	ScreenHeight           int    `json:"screenHeight"`
	Player                 Rect   `json:"player"`
	AI                     Rect   `json:"ai"`
	Ball                   Rect   `json:"ball"`
	PlayerScore            int    `json:"playerScore"`
	AIScore                int    `json:"aiScore"`
	BestOf                 int    `json:"bestOf"`
	TargetScore            int    `json:"targetScore"`
	Phase                  Phase  `json:"phase"`
	GameOver               bool   `json:"gameOver"`
	Winner                 Side   `json:"winner"`
	WaitingForReplayChoice bool   `json:"waitingForReplayChoice"`
	Tick                   uint64 `json:"tick"`
	Cues                   []Cue  `json:"cues"` // Cues raised by the most recent tick
}

// MatchOverMessage is sent to spectators once when a match ends.
type MatchOverMessage struct {
	MessageType string `json:"messageType"` // "matchOver"
	Winner      Side   `json:"winner"`
	PlayerScore int    `json:"playerScore"`
	AIScore     int    `json:"aiScore"`
	BestOf      int    `json:"bestOf"`
}

// Snapshot copies the current state of the match.
func (m *Match) Snapshot() Snapshot {
	cues := make([]Cue, len(m.lastCues))
	copy(cues, m.lastCues)
	return Snapshot{
		MessageType:            "matchSnapshot",
		ScreenWidth:            m.config.ScreenWidth,
		ScreenHeight:           m.config.ScreenHeight,
		Player:                 m.PlayerRect(),
		AI:                     m.AIRect(),
		Ball:                   m.BallRect(),
		PlayerScore:            m.playerScore,
		AIScore:                m.aiScore,
		BestOf:                 m.bestOf,
		TargetScore:            m.targetScore,
		Phase:                  m.phase,
		GameOver:               m.GameOver(),
		Winner:                 m.winner,
		WaitingForReplayChoice: m.WaitingForReplayChoice(),
		Tick:                   m.ticks,
		Cues:                   cues,
	}
}

// NewMatchOverMessage builds the end-of-match notice from a snapshot.
func NewMatchOverMessage(s Snapshot) MatchOverMessage {
	return MatchOverMessage{
		MessageType: "matchOver",
		Winner:      s.Winner,
		PlayerScore: s.PlayerScore,
		AIScore:     s.AIScore,
		BestOf:      s.BestOf,
	}
}

// --- Actor Messages (Internal Communication) ---

// AddClient registers a spectator connection with the BroadcasterActor.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient unregisters a spectator connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastSnapshot asks the BroadcasterActor to fan a snapshot out.
type BroadcastSnapshot struct {
	Snapshot Snapshot
}

// BroadcastMatchOver asks the BroadcasterActor to announce a finished match.
type BroadcastMatchOver struct {
	Message MatchOverMessage
}

// ClientCountRequest asks for the number of connected spectators; the reply
// is sent on Reply.
type ClientCountRequest struct {
	Reply chan int
}

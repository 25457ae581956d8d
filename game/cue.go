// File: game/cue.go
package game

import "fmt"

// Cue signals that a sound effect should play. The core only emits cues;
// playing them is up to the adapter.
type Cue int

const (
	CueWallBounce Cue = iota + 1
	CuePaddleHit
	CueScore
)

var cueNames = map[Cue]string{
	CueWallBounce: "wall_bounce",
	CuePaddleHit:  "paddle_hit",
	CueScore:      "score",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

func (c Cue) MarshalText() ([]byte, error) {
	if _, ok := cueNames[c]; !ok {
		return nil, fmt.Errorf("unknown cue %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Cue) UnmarshalText(text []byte) error {
	for cue, name := range cueNames {
		if name == string(text) {
			*c = cue
			return nil
		}
	}
	return fmt.Errorf("unknown cue %q", string(text))
}

// Side identifies one of the two competitors.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAI:
		return "AI"
	}
	return ""
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Player":
		*s = SidePlayer
	case "AI":
		*s = SideAI
	case "":
		*s = SideNone
	default:
		return fmt.Errorf("unknown side %q", string(text))
	}
	return nil
}

// Phase is the state of the match state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	// PhaseGameOver holds until a replay choice starts a new match.
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "gameOver"
	}
	return "playing"
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "playing":
		*p = PhasePlaying
	case "gameOver":
		*p = PhaseGameOver
	default:
		return fmt.Errorf("unknown phase %q", string(text))
	}
	return nil
}

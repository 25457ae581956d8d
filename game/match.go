// File: game/match.go
package game

import (
	"fmt"
	"math/rand"

	"github.com/lguibr/pongvolley/utils"
)

// Input is the movement intent held down during a tick.
type Input struct {
	Up   bool `json:"up"`
	Down bool `json:"down"`
}

// TickResult is what a single Tick produced.
type TickResult struct {
	Cues     []Cue `json:"cues"`
	Scored   Side  `json:"scored"`   // SideNone when nobody scored
	GameOver bool  `json:"gameOver"` // True only on the tick that ended the match
}

// Match owns the two paddles and the ball and runs the score / round-win
// state machine. It is not safe for concurrent use: the adapter drives it
// from a single game loop and hands out Snapshot values to anyone else.
type Match struct {
	config utils.Config

	player *Paddle
	ai     *Paddle
	ball   *Ball

	playerScore int
	aiScore     int
	bestOf      int
	targetScore int
	phase       Phase
	winner      Side

	ticks    uint64
	lastCues []Cue
}

// TargetScore is the number of points needed to win a best-of-N match.
func TargetScore(bestOf int) int {
	return bestOf/2 + 1
}

// NewMatch builds a match from cfg. rng drives every ball reset; pass a
// seeded source for reproducible play. It panics on an invalid config.
func NewMatch(cfg utils.Config, rng *rand.Rand) *Match {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("game: invalid config: %v", err))
	}
	if rng == nil {
		panic("game: NewMatch requires a random source")
	}

	paddleY := cfg.ScreenHeight/2 - cfg.PaddleHeight/2
	match := &Match{
		config: cfg,
		player: NewPaddle(cfg.PaddleOffset, paddleY, cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed),
		ai: NewPaddle(
			cfg.ScreenWidth-cfg.PaddleOffset-cfg.PaddleWidth, paddleY,
			cfg.PaddleWidth, cfg.PaddleHeight, cfg.PaddleSpeed,
		),
		ball:        NewBall(cfg, rng),
		bestOf:      cfg.DefaultBestOf,
		targetScore: TargetScore(cfg.DefaultBestOf),
		phase:       PhasePlaying,
	}
	return match
}

// Tick advances the match by one step. While the match is over it changes
// nothing and returns an empty result.
func (m *Match) Tick(input Input) TickResult {
	result := TickResult{}
	if m.phase == PhaseGameOver {
		m.lastCues = nil
		return result
	}
	m.ticks++

	m.HandleInput(input)

	result.Cues = m.ball.Move(m.player, m.ai)

	if scorer := m.evaluateScore(); scorer != SideNone {
		result.Scored = scorer
		result.Cues = append(result.Cues, CueScore)
		m.ball.Reset()
	}

	if m.checkWinner() {
		result.GameOver = true
	}

	m.ai.AutoTrack(m.ball, m.config.ScreenHeight, m.config.AIDeadZone)

	m.lastCues = result.Cues
	return result
}

// HandleInput moves the player paddle. Up and down held together cancel out.
func (m *Match) HandleInput(input Input) {
	if m.phase == PhaseGameOver {
		return
	}
	if input.Up {
		m.player.Move(-m.player.Speed, m.config.ScreenHeight)
	}
	if input.Down {
		m.player.Move(m.player.Speed, m.config.ScreenHeight)
	}
}

// evaluateScore awards a point when the ball leaves through a side. The two
// checks are exclusive, so at most one side scores per tick.
func (m *Match) evaluateScore() Side {
	switch {
	case m.ball.X <= 0:
		m.aiScore++
		return SideAI
	case m.ball.X >= m.config.ScreenWidth:
		m.playerScore++
		return SidePlayer
	}
	return SideNone
}

func (m *Match) checkWinner() bool {
	switch {
	case m.playerScore >= m.targetScore:
		m.winner = SidePlayer
	case m.aiScore >= m.targetScore:
		m.winner = SideAI
	default:
		return false
	}
	m.phase = PhaseGameOver
	return true
}

// ApplyReplayChoice starts a new best-of-N match if the match is over and
// bestOf is one of the configured choices. Anything else is ignored.
func (m *Match) ApplyReplayChoice(bestOf int) bool {
	if m.phase != PhaseGameOver || !m.config.IsReplayChoice(bestOf) {
		return false
	}
	m.StartNewMatch(bestOf)
	return true
}

// StartNewMatch resets scores and the ball for a best-of-N match. Paddles
// keep their positions.
func (m *Match) StartNewMatch(bestOf int) {
	m.bestOf = bestOf
	m.targetScore = TargetScore(bestOf)
	m.playerScore = 0
	m.aiScore = 0
	m.winner = SideNone
	m.phase = PhasePlaying
	m.lastCues = nil
	m.ball.Reset()
}

func (m *Match) Config() utils.Config { return m.config }

func (m *Match) PlayerRect() Rect { return m.player.Rect() }
func (m *Match) AIRect() Rect     { return m.ai.Rect() }
func (m *Match) BallRect() Rect   { return m.ball.Rect() }

func (m *Match) PlayerScore() int { return m.playerScore }
func (m *Match) AIScore() int     { return m.aiScore }
func (m *Match) BestOf() int      { return m.bestOf }
func (m *Match) TargetScore() int { return m.targetScore }
func (m *Match) Phase() Phase     { return m.phase }
func (m *Match) GameOver() bool   { return m.phase == PhaseGameOver }
func (m *Match) Winner() Side     { return m.winner }
func (m *Match) Ticks() uint64    { return m.ticks }

// WaitingForReplayChoice is true for the whole game-over phase.
func (m *Match) WaitingForReplayChoice() bool { return m.phase == PhaseGameOver }

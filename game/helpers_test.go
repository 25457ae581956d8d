// File: game/test_utils.go
package game

import (
	"math/rand"

	"github.com/lguibr/pongvolley/utils"
)

// --- Test Helpers ---

// newSeededMatch builds a match on the default 800x600 config with a fixed
// random source.
func newSeededMatch(seed int64) *Match {
	return NewMatch(utils.DefaultConfig(), rand.New(rand.NewSource(seed)))
}

// placeBall positions the ball with an explicit velocity.
func placeBall(b *Ball, x, y, vx, vy int) {
	b.X, b.Y, b.Vx, b.Vy = x, y, vx, vy
}

// scorePoint places the ball past the given side's goal line so the next
// tick awards the opposing side a point.
func scorePoint(m *Match, scorer Side) TickResult {
	switch scorer {
	case SideAI:
		placeBall(m.ball, 6, m.config.ScreenHeight/2, -6, 4)
	case SidePlayer:
		placeBall(m.ball, m.config.ScreenWidth-6, m.config.ScreenHeight/2, 6, 4)
	}
	return m.Tick(Input{})
}

package game

import (
	"math/rand"

	"github.com/lguibr/pongvolley/utils"
)

type Ball struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Vx     int `json:"vx"`
	Vy     int `json:"vy"`
	Width  int `json:"width"`
	Height int `json:"height"`

	screenWidth  int
	screenHeight int
	speedsX      []int
	speedsY      []int
	rng          *rand.Rand
}

// NewBall creates a ball for the configured screen and immediately resets it
// to the center with a random diagonal velocity drawn from rng.
func NewBall(cfg utils.Config, rng *rand.Rand) *Ball {
	ball := &Ball{
		Width:        cfg.BallSize,
		Height:       cfg.BallSize,
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.ScreenHeight,
		speedsX:      cfg.BallSpeedsX,
		speedsY:      cfg.BallSpeedsY,
		rng:          rng,
	}
	ball.Reset()
	return ball
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Move advances the ball one tick and resolves wall and paddle contacts in
// that order: walls, then the left (player) paddle, then the right (AI)
// paddle. It returns the cues raised during the tick. Either paddle may be
// nil.
func (b *Ball) Move(player, ai *Paddle) []Cue {
	var cues []Cue

	b.X += b.Vx
	b.Y += b.Vy

	if b.CollideWalls() {
		b.Vy = -b.Vy
		cues = append(cues, CueWallBounce)
	}

	if player != nil && b.Rect().Intersects(player.Rect()) {
		b.HandleCollideLeftPaddle(player)
		cues = append(cues, CuePaddleHit)
	}

	if ai != nil && b.Rect().Intersects(ai.Rect()) {
		b.HandleCollideRightPaddle(ai)
		cues = append(cues, CuePaddleHit)
	}

	return cues
}

// CollideWalls reports whether the ball touches or overshoots the top or
// bottom edge. The position is not pulled back inside.
func (b *Ball) CollideWalls() bool {
	return b.Y <= 0 || b.Y+b.Height >= b.screenHeight
}

// HandleCollideLeftPaddle snaps the ball to the paddle's right face and sends
// it rightwards.
func (b *Ball) HandleCollideLeftPaddle(paddle *Paddle) {
	b.X = paddle.X + paddle.Width
	b.Vx = utils.Abs(b.Vx)
}

// HandleCollideRightPaddle snaps the ball to the paddle's left face and sends
// it leftwards.
func (b *Ball) HandleCollideRightPaddle(paddle *Paddle) {
	b.X = paddle.X - b.Width
	b.Vx = -utils.Abs(b.Vx)
}

// Reset puts the ball at the screen center with a fresh random velocity.
func (b *Ball) Reset() {
	b.X = b.screenWidth / 2
	b.Y = b.screenHeight / 2
	b.Vx = utils.SignedChoice(b.rng, b.speedsX)
	b.Vy = utils.SignedChoice(b.rng, b.speedsY)
}

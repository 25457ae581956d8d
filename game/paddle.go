// File: game/paddle.go
package game

import (
	"github.com/lguibr/pongvolley/utils"
)

type Paddle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Speed  int `json:"speed"` // Units per tick
}

func NewPaddle(x, y, width, height, speed int) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// Move shifts the paddle vertically by dy and clamps it to
// [0, screenHeight-Height].
func (p *Paddle) Move(dy, screenHeight int) {
	p.Y = utils.Clamp(p.Y+dy, 0, screenHeight-p.Height)
}

func (p *Paddle) CenterY() int { return p.Y + p.Height/2 }

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// AutoTrack steers the paddle one Speed step toward the ball's y, holding
// still while the ball is within deadZone of the paddle's center. No
// prediction: the AI only chases where the ball is now.
func (p *Paddle) AutoTrack(ball *Ball, screenHeight, deadZone int) {
	center := p.CenterY()
	if utils.Abs(center-ball.Y) <= deadZone {
		return
	}
	if ball.Y < center {
		p.Move(-p.Speed, screenHeight)
	} else {
		p.Move(p.Speed, screenHeight)
	}
}

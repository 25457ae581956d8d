// File: utils/config.go
package utils

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config holds all configurable game parameters.
type Config struct {
	// Screen & Timing
	ScreenWidth  int `json:"screenWidth"`  // Window width in pixels
	ScreenHeight int `json:"screenHeight"` // Window height in pixels
	TickRate     int `json:"tickRate"`     // Simulation ticks per second

	// Paddle Properties
	PaddleWidth  int `json:"paddleWidth"`  // Thickness of both paddles
	PaddleHeight int `json:"paddleHeight"` // Length of both paddles
	PaddleSpeed  int `json:"paddleSpeed"`  // Units moved per tick
	PaddleOffset int `json:"paddleOffset"` // Gap between a paddle and its screen edge
	AIDeadZone   int `json:"aiDeadZone"`   // AI holds still while |center - ball.y| <= this

	// Ball Physics & Properties
	BallSize    int   `json:"ballSize"`    // Width and height of the ball
	BallSpeedsX []int `json:"ballSpeedsX"` // Horizontal speed magnitudes drawn on reset (sign is random)
	BallSpeedsY []int `json:"ballSpeedsY"` // Vertical speed magnitudes drawn on reset (sign is random)

	// Match
	DefaultBestOf int   `json:"defaultBestOf"` // Match length of the first match
	ReplayChoices []int `json:"replayChoices"` // Match lengths offered by the replay menu

	// Sound cues
	SoundDir        string `json:"soundDir"`
	PaddleHitSound  string `json:"paddleHitSound"`
	WallBounceSound string `json:"wallBounceSound"`
	ScoreSound      string `json:"scoreSound"`

	// Spectator feed
	SpectatorAddr   string `json:"spectatorAddr"`   // Empty disables the spectator server
	SpectatorPeriod int    `json:"spectatorPeriod"` // Publish a snapshot every N ticks
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		TickRate:     60,

		PaddleWidth:  10,
		PaddleHeight: 100,
		PaddleSpeed:  7,
		PaddleOffset: 10,
		AIDeadZone:   10,

		BallSize:    10,
		BallSpeedsX: []int{6},
		BallSpeedsY: []int{4},

		DefaultBestOf: 5, // 3 wins
		ReplayChoices: []int{3, 5, 7},

		SoundDir:        filepath.Join("game", "sounds"),
		PaddleHitSound:  "hit.wav",
		WallBounceSound: "wall.wav",
		ScoreSound:      "score.wav",

		SpectatorAddr:   "",
		SpectatorPeriod: 2,
	}
}

// TickPeriod is the wall-clock duration of one tick.
func (c Config) TickPeriod() time.Duration {
	if c.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TickRate)
}

// SoundPath joins SoundDir with a sound file name.
func (c Config) SoundPath(name string) string {
	return filepath.Join(c.SoundDir, name)
}

// IsReplayChoice reports whether bestOf is one of the offered match lengths.
func (c Config) IsReplayChoice(bestOf int) bool {
	for _, choice := range c.ReplayChoices {
		if choice == bestOf {
			return true
		}
	}
	return false
}

// Validate checks the geometric and match settings for consistency.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return fmt.Errorf("paddle size must be positive, got %dx%d", c.PaddleWidth, c.PaddleHeight)
	}
	if c.PaddleHeight > c.ScreenHeight {
		return fmt.Errorf("paddle height %d exceeds screen height %d", c.PaddleHeight, c.ScreenHeight)
	}
	if c.PaddleSpeed <= 0 {
		return fmt.Errorf("paddle speed must be positive, got %d", c.PaddleSpeed)
	}
	if c.AIDeadZone < 0 {
		return fmt.Errorf("AI dead zone must not be negative, got %d", c.AIDeadZone)
	}
	if c.BallSize <= 0 {
		return fmt.Errorf("ball size must be positive, got %d", c.BallSize)
	}
	if err := validateSpeeds("ballSpeedsX", c.BallSpeedsX); err != nil {
		return err
	}
	if err := validateSpeeds("ballSpeedsY", c.BallSpeedsY); err != nil {
		return err
	}
	if !isBestOf(c.DefaultBestOf) {
		return fmt.Errorf("default best-of must be a positive odd number, got %d", c.DefaultBestOf)
	}
	if len(c.ReplayChoices) == 0 {
		return fmt.Errorf("at least one replay choice is required")
	}
	for _, choice := range c.ReplayChoices {
		if !isBestOf(choice) {
			return fmt.Errorf("replay choice must be a positive odd number, got %d", choice)
		}
	}
	if c.SpectatorPeriod <= 0 {
		return fmt.Errorf("spectator period must be positive, got %d", c.SpectatorPeriod)
	}
	return nil
}

func validateSpeeds(name string, speeds []int) error {
	if len(speeds) == 0 {
		return fmt.Errorf("%s must not be empty", name)
	}
	for _, speed := range speeds {
		if speed <= 0 {
			return fmt.Errorf("%s entries must be positive magnitudes, got %d", name, speed)
		}
	}
	return nil
}

func isBestOf(n int) bool {
	return n > 0 && n%2 == 1
}

// File: utils/config_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.ScreenWidth)
	assert.Equal(t, 600, cfg.ScreenHeight)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, 7, cfg.PaddleSpeed)
	assert.Equal(t, 10, cfg.AIDeadZone)
	assert.Equal(t, []int{6}, cfg.BallSpeedsX)
	assert.Equal(t, []int{4}, cfg.BallSpeedsY)
	assert.Equal(t, 5, cfg.DefaultBestOf)
	assert.Equal(t, []int{3, 5, 7}, cfg.ReplayChoices)
	assert.Empty(t, cfg.SpectatorAddr, "spectator feed must be off by default")
}

func TestConfig_TickPeriod(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Second/60, cfg.TickPeriod())

	cfg.TickRate = 0
	assert.Equal(t, time.Duration(0), cfg.TickPeriod())
}

func TestConfig_IsReplayChoice(t *testing.T) {
	cfg := DefaultConfig()
	for _, n := range []int{3, 5, 7} {
		assert.True(t, cfg.IsReplayChoice(n), "best of %d", n)
	}
	for _, n := range []int{0, 1, 4, 9} {
		assert.False(t, cfg.IsReplayChoice(n), "best of %d", n)
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{"ZeroWidth", func(c *Config) { c.ScreenWidth = 0 }},
		{"NegativeHeight", func(c *Config) { c.ScreenHeight = -1 }},
		{"ZeroTickRate", func(c *Config) { c.TickRate = 0 }},
		{"PaddleTallerThanScreen", func(c *Config) { c.PaddleHeight = c.ScreenHeight + 1 }},
		{"ZeroPaddleSpeed", func(c *Config) { c.PaddleSpeed = 0 }},
		{"NegativeDeadZone", func(c *Config) { c.AIDeadZone = -1 }},
		{"ZeroBallSize", func(c *Config) { c.BallSize = 0 }},
		{"EmptySpeedsX", func(c *Config) { c.BallSpeedsX = nil }},
		{"ZeroSpeedY", func(c *Config) { c.BallSpeedsY = []int{4, 0} }},
		{"EvenBestOf", func(c *Config) { c.DefaultBestOf = 4 }},
		{"NoReplayChoices", func(c *Config) { c.ReplayChoices = nil }},
		{"EvenReplayChoice", func(c *Config) { c.ReplayChoices = []int{3, 6} }},
		{"ZeroSpectatorPeriod", func(c *Config) { c.SpectatorPeriod = 0 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

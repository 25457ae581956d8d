// Package display runs a match in an ebiten window: it turns key state into
// match input, plays cue sounds, draws the court and feeds the spectator
// server.
package display

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lguibr/pongvolley/game"
	"github.com/lguibr/pongvolley/utils"
)

const WindowTitle = "Ping Pong - Replay Version"

// CuePlayer makes a cue audible.
type CuePlayer interface {
	Play(cue game.Cue)
}

// Publisher receives snapshots for spectators.
type Publisher interface {
	Publish(snapshot game.Snapshot)
	PublishMatchOver(snapshot game.Snapshot)
}

// Game adapts a Match to ebiten.Game. The match is only touched from the
// ebiten update goroutine.
type Game struct {
	match     *game.Match
	sounds    CuePlayer
	publisher Publisher
	period    uint64

	justPressed []ebiten.Key
	pressed     []ebiten.Key
}

// NewGame wraps match. sounds and publisher may be nil.
func NewGame(match *game.Match, sounds CuePlayer, publisher Publisher) *Game {
	period := match.Config().SpectatorPeriod
	if period <= 0 {
		period = 1
	}
	return &Game{
		match:     match,
		sounds:    sounds,
		publisher: publisher,
		period:    uint64(period),
	}
}

func (g *Game) Match() *game.Match { return g.match }

// Update reads the keyboard and advances the match by one tick.
func (g *Game) Update() error {
	g.justPressed = inpututil.AppendJustPressedKeys(g.justPressed[:0])
	g.pressed = inpututil.AppendPressedKeys(g.pressed[:0])

	if g.step(keyNames(g.justPressed), keyNames(g.pressed)) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.match.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}

// step applies one frame of key state. justPressed holds keys that went down
// this frame, pressed holds every key currently down. It reports whether the
// player asked to quit.
func (g *Game) step(justPressed, pressed []string) bool {
	for _, key := range justPressed {
		if utils.IsQuitKey(key) {
			return true
		}
	}

	if g.match.GameOver() {
		for _, key := range justPressed {
			choice := utils.ReplayChoiceFromKey(key)
			if choice != 0 && g.match.ApplyReplayChoice(choice) {
				fmt.Printf("Display: starting a best of %d match.\n", choice)
				g.publish()
				break
			}
		}
		return false
	}

	result := g.match.Tick(inputFromKeys(pressed))
	if g.sounds != nil {
		for _, cue := range result.Cues {
			g.sounds.Play(cue)
		}
	}

	switch {
	case result.GameOver:
		snapshot := g.match.Snapshot()
		fmt.Printf("Display: %s wins %d-%d.\n", snapshot.Winner, snapshot.PlayerScore, snapshot.AIScore)
		if g.publisher != nil {
			g.publisher.Publish(snapshot)
			g.publisher.PublishMatchOver(snapshot)
		}
	case g.match.Ticks()%g.period == 0:
		g.publish()
	}
	return false
}

func (g *Game) publish() {
	if g.publisher != nil {
		g.publisher.Publish(g.match.Snapshot())
	}
}

func inputFromKeys(pressed []string) game.Input {
	input := game.Input{}
	for _, key := range pressed {
		switch utils.IntentFromKey(key) {
		case utils.IntentUp:
			input.Up = true
		case utils.IntentDown:
			input.Down = true
		}
	}
	return input
}

func keyNames(keys []ebiten.Key) []string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key.String())
	}
	return names
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(g *Game) error {
	cfg := g.match.Config()
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game window: %w", err)
	}
	return nil
}

// Package sound turns the match's cue events into audible effects. A cue
// whose file is missing or unreadable is silent; it is never an error.
package sound

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/lguibr/pongvolley/game"
	"github.com/lguibr/pongvolley/utils"
)

const SampleRate = 44100

// Bank holds decoded PCM data per cue.
type Bank struct {
	clips map[game.Cue][]byte
}

// PathsFromConfig maps each cue to its configured sound file.
func PathsFromConfig(cfg utils.Config) map[game.Cue]string {
	return map[game.Cue]string{
		game.CuePaddleHit:  cfg.SoundPath(cfg.PaddleHitSound),
		game.CueWallBounce: cfg.SoundPath(cfg.WallBounceSound),
		game.CueScore:      cfg.SoundPath(cfg.ScoreSound),
	}
}

// LoadBank decodes every file in paths. Files that cannot be opened or
// decoded are logged and left out.
func LoadBank(paths map[game.Cue]string, sampleRate int) *Bank {
	bank := &Bank{clips: make(map[game.Cue][]byte, len(paths))}
	for cue, path := range paths {
		data, err := decodeFile(path, sampleRate)
		if err != nil {
			fmt.Printf("Sound: %s unavailable: %v. Continuing without it.\n", cue, err)
			continue
		}
		bank.clips[cue] = data
	}
	return bank
}

func decodeFile(path string, sampleRate int) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s has no samples", path)
	}
	return data, nil
}

func (b *Bank) Has(cue game.Cue) bool {
	if b == nil {
		return false
	}
	_, ok := b.clips[cue]
	return ok
}

func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.clips)
}

// Player plays cues from a Bank on an audio context. A nil Player, or one
// without a context, is silent.
type Player struct {
	context *audio.Context
	bank    *Bank
}

func NewPlayer(context *audio.Context, bank *Bank) *Player {
	return &Player{context: context, bank: bank}
}

func (p *Player) Play(cue game.Cue) {
	if p == nil || p.context == nil || !p.bank.Has(cue) {
		return
	}
	p.context.NewPlayerFromBytes(p.bank.clips[cue]).Play()
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(game.Cue) {}

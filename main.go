package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/lguibr/pongvolley/bollywood"
	"github.com/lguibr/pongvolley/display"
	"github.com/lguibr/pongvolley/game"
	"github.com/lguibr/pongvolley/server"
	"github.com/lguibr/pongvolley/sound"
	"github.com/lguibr/pongvolley/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := utils.DefaultConfig()

	spectate := flag.String("spectate", cfg.SpectatorAddr, "serve the spectator feed on this address (e.g. :3001); empty disables it")
	seed := flag.Int64("seed", 0, "seed for ball serves; 0 picks one from the clock")
	soundDir := flag.String("sounds", cfg.SoundDir, "directory holding hit.wav, wall.wav and score.wav")
	bestOf := flag.Int("best-of", cfg.DefaultBestOf, "length of the first match")
	flag.Parse()

	cfg.SpectatorAddr = *spectate
	cfg.SoundDir = *soundDir
	cfg.DefaultBestOf = *bestOf
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	fmt.Printf("Match seed: %d\n", *seed)
	match := game.NewMatch(cfg, rand.New(rand.NewSource(*seed)))

	var publisher display.Publisher
	if cfg.SpectatorAddr != "" {
		engine := bollywood.NewEngine()
		spectatorServer := server.New(engine)
		addr, err := spectatorServer.Start(cfg.SpectatorAddr)
		if err != nil {
			return err
		}
		fmt.Printf("Spectator feed on ws://%s/subscribe\n", addr)
		publisher = spectatorServer
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := spectatorServer.Shutdown(ctx); err != nil {
				fmt.Println("Error stopping spectator server:", err)
			}
			engine.Shutdown(2 * time.Second)
		}()
	}

	bank := sound.LoadBank(sound.PathsFromConfig(cfg), sound.SampleRate)
	var sounds display.CuePlayer = sound.Silent{}
	if bank.Len() > 0 {
		sounds = sound.NewPlayer(audio.NewContext(sound.SampleRate), bank)
	}

	return display.Run(display.NewGame(match, sounds, publisher))
}

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/tatianab/text-rooms/internal/config"
	"github.com/tatianab/text-rooms/internal/console"
	"github.com/tatianab/text-rooms/internal/engine"
	"github.com/tatianab/text-rooms/internal/logger"
	"github.com/tatianab/text-rooms/internal/models"
	"github.com/tatianab/text-rooms/internal/room"
)

const (
	maxTurns = 40
	seed     = 7
)

// errOutOfTurns ends the game the way the quit option does, so the engine
// reports a normal end instead of an aborted game.
var errOutOfTurns = fmt.Errorf("%w: simulation ran out of turns", room.ErrQuit)

// randomPlayer picks options at random and now and then answers with a
// number that belongs to no option.
type randomPlayer struct {
	*console.Console
	rng        *rand.Rand
	maxTurns   int
	turn       int
	outOfTurns bool
}

func newRandomPlayer(narrator *console.Console, seed uint64, maxTurns int) *randomPlayer {
	return &randomPlayer{Console: narrator, rng: rand.New(rand.NewPCG(seed, seed)), maxTurns: maxTurns}
}

func (p *randomPlayer) Prompt(_ context.Context, roomName string, options []string) (int, error) {
	if p.turn >= p.maxTurns {
		p.outOfTurns = true
		return 0, errOutOfTurns
	}
	p.turn++

	choice := p.rng.IntN(len(options))
	if p.rng.IntN(10) == 0 {
		choice = len(options)
	}

	fmt.Printf("--- Turn %d in %s ---\n", p.turn, roomName)
	fmt.Printf("Options: %s\n", strings.Join(options, " | "))
	fmt.Printf("Player chose: %d\n", choice)
	return choice, nil
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	slogger := logger.Setup(cfg, os.Stderr)

	world, err := models.LoadWorld(cfg.WorldPath)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}
	if err := world.Validate(); err != nil {
		log.Fatalf("World is invalid: %v", err)
	}

	narrator := console.New(strings.NewReader(""), os.Stdout, console.Options{
		Language:  cfg.Language,
		WrapWidth: cfg.WrapWidth,
	})
	labels := narrator.Labels()
	player := newRandomPlayer(narrator, seed, maxTurns)

	eng, err := engine.NewEngine(world, player, engine.Options{
		MaxItems: cfg.MaxItems,
		Logger:   slogger,
		BackText: labels.Back,
		QuitText: labels.Quit,
	})
	if err != nil {
		log.Fatalf("Failed to build game: %v", err)
	}

	if err := eng.Start(ctx); err != nil {
		log.Fatalf("Game aborted: %v", err)
	}
	if player.outOfTurns {
		fmt.Printf("Game Ended: stopped after %d turns\n", player.turn)
	} else {
		fmt.Printf("Game Ended: player quit after %d turns\n", player.turn)
	}
	fmt.Printf("Inventory: %v\n", eng.Items())
}

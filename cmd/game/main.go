package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/tatianab/text-rooms/internal/config"
	"github.com/tatianab/text-rooms/internal/console"
	"github.com/tatianab/text-rooms/internal/engine"
	"github.com/tatianab/text-rooms/internal/logger"
	"github.com/tatianab/text-rooms/internal/models"
	"github.com/tatianab/text-rooms/internal/room"
	"github.com/tatianab/text-rooms/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.Setup(cfg, os.Stderr)

	world, err := models.LoadWorld(cfg.WorldPath)
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}
	if err := world.Validate(); err != nil {
		return err
	}

	lines := console.New(os.Stdin, os.Stdout, console.Options{
		Language:  cfg.Language,
		WrapWidth: cfg.WrapWidth,
	})
	defer lines.Close()
	labels := lines.Labels()

	menu, err := useTUI(cfg.UI)
	if err != nil {
		return err
	}
	var con room.Console = lines
	if menu {
		log.Debug("using terminal menu")
		con = tui.NewConsole(lines, tui.NewPrompter(tui.Options{
			Title: labels.Choose,
			Hint:  labels.Hint,
		}))
	}

	eng, err := engine.NewEngine(world, con, engine.Options{
		MaxItems: cfg.MaxItems,
		Logger:   log,
		BackText: labels.Back,
		QuitText: labels.Quit,
	})
	if err != nil {
		return fmt.Errorf("building game: %w", err)
	}

	return eng.Start(ctx)
}

var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// useTUI reports whether the menu UI runs. The menu needs a terminal on stdin,
// it cannot see the end of piped input.
func useTUI(mode string) (bool, error) {
	switch mode {
	case config.UITUI:
		if !isTerminal(os.Stdin) {
			return false, errors.New("TEXTROOMS_UI=tui needs a terminal on stdin, use line for piped input")
		}
		return true, nil
	case config.UILine:
		return false, nil
	default:
		return isTerminal(os.Stdin) && isTerminal(os.Stdout), nil
	}
}

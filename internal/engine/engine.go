package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tatianab/text-rooms/internal/logger"
	"github.com/tatianab/text-rooms/internal/models"
	"github.com/tatianab/text-rooms/internal/room"
)

// Options tune an Engine. Zero values fall back to the world definition or the
// package defaults.
type Options struct {
	MaxItems int
	Logger   *slog.Logger
	BackText string
	QuitText string
}

// Engine is one play session. It builds the room graph of a world and is the
// item picker, room switcher and action handler of every room in it.
type Engine struct {
	id        uuid.UUID
	world     *models.World
	console   room.Console
	logger    *slog.Logger
	inventory *Inventory
	registry  *Registry
	start     *room.Room
}

func NewEngine(w *models.World, con room.Console, opts Options) (*Engine, error) {
	if w == nil {
		return nil, errors.New("engine needs a world")
	}
	if con == nil {
		return nil, errors.New("engine needs a console")
	}

	maxItems := opts.MaxItems
	if maxItems < 1 {
		maxItems = w.MaxItems
	}

	id := uuid.New()
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	e := &Engine{
		id:        id,
		world:     w,
		console:   con,
		logger:    log.With("session_id", id.String()),
		inventory: NewInventory(maxItems),
		registry:  NewRegistry(),
	}

	if err := e.buildRooms(opts); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) buildRooms(opts Options) error {
	for _, def := range e.world.Rooms {
		b := room.NewBuilder(e, e, e).
			Name(def.Name).
			BackOption(def.BackOption).
			QuitOption(def.QuitOption)
		if opts.BackText != "" {
			b.BackText(opts.BackText)
		}
		if opts.QuitText != "" {
			b.QuitText(opts.QuitText)
		}

		for _, o := range def.Options {
			kind, data := optionTarget(o)
			if o.When == nil {
				b.AddOption(o.Text, data, kind)
			} else {
				b.AddConditionalOption(o.Text, data, kind, condition(*o.When))
			}
		}

		r, err := b.Build()
		if err != nil {
			return err
		}
		if err := e.registry.Register(r); err != nil {
			return err
		}
	}

	if e.world.Start == "" {
		e.start = e.registry.First()
		if e.start == nil {
			return errors.New("world has no rooms")
		}
	} else {
		start, err := e.registry.Resolve(e.world.Start)
		if err != nil {
			return fmt.Errorf("start room: %w", err)
		}
		e.start = start
	}

	e.logger.Debug("rooms built", "world", e.world.Title, "rooms", e.registry.Len(), "max_items", e.inventory.Capacity())
	return nil
}

func optionTarget(o models.OptionDef) (room.Kind, string) {
	switch {
	case o.Item != "":
		return room.PickItem, o.Item
	case o.Action != "":
		return room.Custom, o.Action
	default:
		return room.ChangeRoom, o.Room
	}
}

func condition(w models.When) room.Condition {
	conds := make([]room.Condition, 0, len(w.HasItems)+len(w.LacksItems))
	for _, item := range w.HasItems {
		conds = append(conds, room.HasItem(item))
	}
	for _, item := range w.LacksItems {
		conds = append(conds, room.LacksItem(item))
	}
	return room.All(conds...)
}

// Start visits the start room and keeps following transitions until the player
// quits or something fatal happens. Quitting returns nil.
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("game started", "world", e.world.Title, "room", e.start.Name())

	current, viaTransition := e.start, false
	for {
		next, err := current.Visit(ctx, e.console, viaTransition)
		if err != nil {
			if errors.Is(err, room.ErrQuit) {
				e.logger.Info("player quit", "room", current.Name(), "items", len(e.inventory.items))
				return nil
			}
			logger.WithError(e.logger, err).Error("game aborted", "room", current.Name())
			return err
		}
		current, viaTransition = next, true
	}
}

func (e *Engine) ID() uuid.UUID { return e.id }

// Room returns the registered room called name.
func (e *Engine) Room(name string) (*room.Room, error) {
	return e.registry.Resolve(name)
}

// PickItem implements room.ItemPicker. A full inventory is reported to the
// operator log and the item is dropped.
func (e *Engine) PickItem(item string) error {
	if err := e.inventory.PickItem(item); err != nil {
		e.logger.Warn("item dropped", "item", item, "error", err)
		return err
	}
	return nil
}

func (e *Engine) Items() []string { return e.inventory.Items() }

// Resolve implements room.RoomSwitcher.
func (e *Engine) Resolve(name string) (*room.Room, error) {
	return e.registry.Resolve(name)
}

func (e *Engine) RecordTransition(departed *room.Room) {
	e.logger.Debug("leaving room", "room", departed.Name())
	e.registry.RecordTransition(departed)
}

func (e *Engine) Previous() *room.Room { return e.registry.Previous() }

// HandleAction implements room.ActionHandler by narrating the text configured
// for token. Unknown tokens are ignored.
func (e *Engine) HandleAction(_ context.Context, token string) error {
	text, ok := e.world.Actions[token]
	if !ok {
		e.logger.Debug("unhandled action", "token", token)
		return nil
	}
	e.console.Say(text)
	return nil
}

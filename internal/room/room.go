package room

import (
	"context"
	"errors"
	"fmt"
)

// ItemPicker stores the items the player picks up.
type ItemPicker interface {
	// PickItem adds item. Picking an item twice is a no-op. A full inventory
	// returns ErrCapacityExceeded and drops the item.
	PickItem(item string) error
	// Items returns a copy of the held items in pickup order.
	Items() []string
}

// RoomSwitcher resolves rooms by name and remembers the last room left.
type RoomSwitcher interface {
	Resolve(name string) (*Room, error)
	// RecordTransition is called once per hop, before the next room renders.
	RecordTransition(departed *Room)
	// Previous returns nil until the first transition.
	Previous() *Room
}

// ActionHandler runs the side effect of a Custom option.
type ActionHandler interface {
	HandleAction(ctx context.Context, token string) error
}

// Prompter renders a zero-indexed menu and returns the index the player chose.
// The index is not range checked. Non-numeric input returns ErrInvalidInput, a
// dead input stream ErrInputClosed.
type Prompter interface {
	Prompt(ctx context.Context, room string, options []string) (int, error)
}

// Narrator tells the player what happened.
type Narrator interface {
	Welcome(room string)
	PickedUp(item string, inventory []string)
	Stay(room string)
	Transition(from, to string)
	InvalidChoice(err error, count int)
	Say(text string)
}

// Console is the player facing side of a visit.
type Console interface {
	Prompter
	Narrator
}

// Room is a node of the navigation graph. Rooms are built once by a Builder and
// shared by reference; their options never change afterwards.
type Room struct {
	name     string
	options  []Option
	picker   ItemPicker
	switcher RoomSwitcher
	handler  ActionHandler
}

func (r *Room) Name() string { return r.name }

// Options returns every configured option, visible or not.
func (r *Room) Options() []Option {
	return append([]Option(nil), r.options...)
}

// VisibleOptions returns the options whose condition holds for the current
// inventory, in their configured order.
func (r *Room) VisibleOptions() []Option {
	items := r.picker.Items()
	visible := make([]Option, 0, len(r.options))
	for _, o := range r.options {
		if o.Visible(items) {
			visible = append(visible, o)
		}
	}
	return visible
}

// Visit runs the menu loop of the room until the player picks a ChangeRoom
// option and returns the room to enter next. The transition is already recorded
// and announced when Visit returns. viaTransition suppresses the welcome banner.
func (r *Room) Visit(ctx context.Context, con Console, viaTransition bool) (*Room, error) {
	if !viaTransition {
		con.Welcome(r.name)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		visible := r.VisibleOptions()
		if len(visible) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoVisibleOptions, r.name)
		}

		texts := make([]string, len(visible))
		for i, o := range visible {
			texts[i] = o.Text()
		}

		choice, err := con.Prompt(ctx, r.name, texts)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				con.InvalidChoice(err, len(visible))
				continue
			}
			return nil, err
		}
		if choice < 0 || choice >= len(visible) {
			con.InvalidChoice(fmt.Errorf("%w: %d", ErrOutOfRange, choice), len(visible))
			continue
		}

		option := visible[choice]
		switch option.Kind() {
		case PickItem:
			if err := r.picker.PickItem(option.Data()); err != nil {
				if errors.Is(err, ErrCapacityExceeded) {
					continue
				}
				return nil, err
			}
			con.PickedUp(option.Data(), r.picker.Items())
			con.Stay(r.name)
		case Custom:
			if err := r.handler.HandleAction(ctx, option.Data()); err != nil {
				return nil, err
			}
		case ChangeRoom:
			next, err := r.switcher.Resolve(option.Data())
			if err != nil {
				return nil, fmt.Errorf("room %q, option %q: %w", r.name, option.Text(), err)
			}
			r.switcher.RecordTransition(r)
			con.Transition(r.name, next.name)
			return next, nil
		default:
			return nil, fmt.Errorf("room %q, option %q: %w", r.name, option.Text(), ErrInvalidOption)
		}
	}
}

package room

import (
	"context"
	"errors"
	"fmt"
)

const (
	// PrevToken is the ChangeRoom data of the synthetic back option.
	PrevToken = "PREV"
	// QuitToken is the Custom data of the synthetic quit option.
	QuitToken = "QUIT"

	DefaultBackText = "Go back to the previous room"
	DefaultQuitText = "Quit"
)

// Builder assembles a Room. Slot 0 of the option list is reserved for the back
// option, which is dropped at Build unless BackOption(true) was set.
type Builder struct {
	name     string
	options  []Option
	back     bool
	quit     bool
	backText string
	quitText string

	picker   ItemPicker
	switcher RoomSwitcher
	handler  ActionHandler

	err error
}

// NewBuilder returns a builder whose rooms pick items through picker, resolve
// rooms through switcher and hand custom actions to handler. handler may be nil.
func NewBuilder(picker ItemPicker, switcher RoomSwitcher, handler ActionHandler) *Builder {
	return &Builder{
		options:  make([]Option, 1, 8),
		backText: DefaultBackText,
		quitText: DefaultQuitText,
		picker:   picker,
		switcher: switcher,
		handler:  handler,
	}
}

func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// BackOption offers a "go back" option while a previous room exists.
func (b *Builder) BackOption(include bool) *Builder {
	b.back = include
	return b
}

// QuitOption appends a quit option as the last entry of the menu.
func (b *Builder) QuitOption(include bool) *Builder {
	b.quit = include
	return b
}

func (b *Builder) BackText(text string) *Builder {
	b.backText = text
	return b
}

func (b *Builder) QuitText(text string) *Builder {
	b.quitText = text
	return b
}

// Add appends o. Options with empty data make Build fail.
func (b *Builder) Add(o Option) *Builder {
	if err := o.validate(); err != nil && b.err == nil {
		b.err = err
	}
	b.options = append(b.options, o)
	return b
}

func (b *Builder) AddOption(text, data string, kind Kind) *Builder {
	return b.Add(NewOption(text, data, kind))
}

// AddRoomOption adds a ChangeRoom option that leads to target.
func (b *Builder) AddRoomOption(text string, target *Room) *Builder {
	if target == nil {
		if b.err == nil {
			b.err = fmt.Errorf("%w: option %q points to a nil room", ErrInvalidOption, text)
		}
		return b
	}
	return b.AddOption(text, target.Name(), ChangeRoom)
}

func (b *Builder) AddConditionalOption(text, data string, kind Kind, cond Condition) *Builder {
	return b.Add(NewConditionalOption(text, data, kind, cond))
}

// AddItemOptionIfNotPicked adds a PickItem option that disappears once the
// item is in the inventory.
func (b *Builder) AddItemOptionIfNotPicked(text, item string) *Builder {
	return b.AddConditionalOption(text, item, PickItem, LacksItem(item))
}

// Build returns the room. The builder must not be reused afterwards.
func (b *Builder) Build() (*Room, error) {
	if b.err != nil {
		return nil, fmt.Errorf("room %q: %w", b.name, b.err)
	}
	if b.name == "" {
		return nil, errors.New("room has no name")
	}
	if b.picker == nil || b.switcher == nil {
		return nil, fmt.Errorf("room %q: builder needs an item picker and a room switcher", b.name)
	}

	switcher := &backSwitcher{RoomSwitcher: b.switcher}

	if b.quit {
		b.options = append(b.options, NewOption(b.quitText, QuitToken, Custom))
	}
	if b.back {
		b.options[0] = NewConditionalOption(b.backText, PrevToken, ChangeRoom, switcher.hasPrevious())
	} else {
		b.options = b.options[1:]
	}
	if len(b.options) == 0 {
		return nil, fmt.Errorf("room %q: %w", b.name, ErrNoVisibleOptions)
	}

	return &Room{
		name:     b.name,
		options:  append([]Option(nil), b.options...),
		picker:   b.picker,
		switcher: switcher,
		handler:  &quitHandler{next: b.handler},
	}, nil
}

// backSwitcher resolves PrevToken to the previous room and passes every other
// name on.
type backSwitcher struct {
	RoomSwitcher
}

func (s *backSwitcher) Resolve(name string) (*Room, error) {
	if name != PrevToken {
		return s.RoomSwitcher.Resolve(name)
	}
	prev := s.Previous()
	if prev == nil {
		return nil, ErrNoPreviousRoom
	}
	return prev, nil
}

// hasPrevious is evaluated at render time, not at build time.
func (s *backSwitcher) hasPrevious() Condition {
	return ConditionFunc(func([]string) bool {
		return s.Previous() != nil
	})
}

// quitHandler turns QuitToken into ErrQuit before the game's handler sees it.
type quitHandler struct {
	next ActionHandler
}

func (h *quitHandler) HandleAction(ctx context.Context, token string) error {
	if token == QuitToken {
		return ErrQuit
	}
	if h.next == nil {
		return nil
	}
	return h.next.HandleAction(ctx, token)
}

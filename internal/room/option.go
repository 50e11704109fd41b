package room

import "fmt"

// Kind decides what choosing an option does.
type Kind int

const (
	// ChangeRoom moves the player to the room named by the option data.
	ChangeRoom Kind = iota
	// PickItem adds the item named by the option data to the inventory.
	PickItem
	// Custom hands the option data to the ActionHandler.
	Custom
)

func (k Kind) String() string {
	switch k {
	case ChangeRoom:
		return "change_room"
	case PickItem:
		return "pick_item"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Option is one selectable entry of a room menu. The zero value is not usable;
// build options with NewOption or NewConditionalOption.
type Option struct {
	text      string
	data      string
	kind      Kind
	condition Condition
}

// NewOption returns an option that is always visible.
func NewOption(text, data string, kind Kind) Option {
	return Option{text: text, data: data, kind: kind}
}

// NewConditionalOption returns an option that is visible only while cond holds.
func NewConditionalOption(text, data string, kind Kind, cond Condition) Option {
	return Option{text: text, data: data, kind: kind, condition: cond}
}

func (o Option) Text() string { return o.text }
func (o Option) Data() string { return o.data }
func (o Option) Kind() Kind   { return o.kind }

// Visible reports whether the option should be offered for the given items.
func (o Option) Visible(items []string) bool {
	if o.condition == nil {
		return true
	}
	return o.condition.Evaluate(items)
}

func (o Option) validate() error {
	if o.data == "" {
		return fmt.Errorf("%w: option %q has no data", ErrInvalidOption, o.text)
	}
	switch o.kind {
	case ChangeRoom, PickItem, Custom:
		return nil
	default:
		return fmt.Errorf("%w: option %q has unknown kind %v", ErrInvalidOption, o.text, o.kind)
	}
}

package models

// World is the static definition of a game: its rooms, their options and the
// narration of custom actions.
type World struct {
	Title    string            `yaml:"title"`
	Start    string            `yaml:"start,omitempty"`   // defaults to the first room
	MaxItems int               `yaml:"max_items,omitempty"`
	Actions  map[string]string `yaml:"actions,omitempty"` // custom action token -> narration
	Rooms    []RoomDef         `yaml:"rooms"`
}

// RoomDef describes one room.
type RoomDef struct {
	Name       string      `yaml:"name"`
	BackOption bool        `yaml:"back_option,omitempty"`
	QuitOption bool        `yaml:"quit_option,omitempty"`
	Options    []OptionDef `yaml:"options"`
}

// OptionDef describes one menu entry. Exactly one of Room, Item and Action
// must be set; it decides the option kind.
type OptionDef struct {
	Text   string `yaml:"text"`
	Room   string `yaml:"room,omitempty"`
	Item   string `yaml:"item,omitempty"`
	Action string `yaml:"action,omitempty"`
	When   *When  `yaml:"when,omitempty"` // nil means always visible
}

// When gates an option on the inventory. All listed constraints must hold.
type When struct {
	HasItems   []string `yaml:"has_items,omitempty"`
	LacksItems []string `yaml:"lacks_items,omitempty"`
}

// IsEmpty reports whether w has no constraints at all.
func (w When) IsEmpty() bool {
	return len(w.HasItems) == 0 && len(w.LacksItems) == 0
}

// StartRoom returns the name of the room the game begins in.
func (w *World) StartRoom() string {
	if w.Start != "" {
		return w.Start
	}
	if len(w.Rooms) == 0 {
		return ""
	}
	return w.Rooms[0].Name
}

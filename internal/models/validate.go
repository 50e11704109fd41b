package models

import (
	"fmt"
	"strings"
)

// Tokens reserved by the room builder for the synthetic back and quit options.
const (
	reservedPrev = "PREV"
	reservedQuit = "QUIT"
)

// ValidationError collects every problem found in a world definition.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid world:\n  - " + strings.Join(e.Problems, "\n  - ")
}

// Validate checks the room graph before a game is built from it: room names
// are unique, every option has exactly one target, every ChangeRoom target
// exists, no room is a dead end and the start room can be left on the first
// turn.
func (w *World) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(w.Rooms) == 0 {
		add("world has no rooms")
	}

	names := make(map[string]bool, len(w.Rooms))
	for i, r := range w.Rooms {
		if r.Name == "" {
			add("room #%d has no name", i)
			continue
		}
		if names[r.Name] {
			add("room %q is defined more than once", r.Name)
		}
		names[r.Name] = true
	}

	start := w.StartRoom()
	if start != "" && !names[start] {
		add("start room %q does not exist", start)
	}

	for _, r := range w.Rooms {
		canLeave := r.BackOption
		// The back option stays hidden until the first transition.
		leavesAtStart := false
		for i, o := range r.Options {
			where := fmt.Sprintf("room %q option #%d (%q)", r.Name, i, o.Text)
			if o.Text == "" {
				add("%s has no text", where)
			}

			set := 0
			for _, v := range []string{o.Room, o.Item, o.Action} {
				if v != "" {
					set++
				}
			}
			if set != 1 {
				add("%s must set exactly one of room, item or action", where)
				continue
			}

			switch {
			case o.Room != "":
				canLeave = true
				if o.Room != reservedPrev && o.When == nil {
					leavesAtStart = true
				}
				if o.Room == reservedPrev {
					add("%s uses the reserved room name %s, use back_option instead", where, reservedPrev)
				} else if !names[o.Room] {
					add("%s leads to unknown room %q", where, o.Room)
				}
			case o.Action == reservedQuit:
				add("%s uses the reserved action %s, use quit_option instead", where, reservedQuit)
			}

			if o.When != nil && o.When.IsEmpty() {
				add("%s has an empty 'when' clause", where)
			}
		}
		if !canLeave {
			add("room %q is a dead end: it has no room option and no back option", r.Name)
		} else if r.Name == start && !leavesAtStart {
			add("start room %q needs a room option without a 'when' clause", r.Name)
		}
	}

	if w.MaxItems < 0 {
		add("max_items must not be negative")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}


// Warnings lists questionable but playable parts of the world, such as custom
// actions without narration. The engine ignores those actions.
func (w *World) Warnings() []string {
	var warnings []string
	for _, r := range w.Rooms {
		for i, o := range r.Options {
			if o.Action == "" || o.Action == reservedQuit {
				continue
			}
			if _, ok := w.Actions[o.Action]; !ok {
				warnings = append(warnings, fmt.Sprintf("room %q option #%d (%q) triggers action %q which has no narration", r.Name, i, o.Text, o.Action))
			}
		}
	}
	return warnings
}

package engine

import (
	"fmt"

	"github.com/tatianab/text-rooms/internal/room"
)

// Registry owns the rooms of a game and remembers the room the player left
// last. It keeps exactly one level of history.
type Registry struct {
	rooms    map[string]*room.Room
	order    []*room.Room
	previous *room.Room
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*room.Room),
	}
}

// Register adds rooms in order. Names must be unique.
func (r *Registry) Register(rooms ...*room.Room) error {
	for _, rm := range rooms {
		if _, exists := r.rooms[rm.Name()]; exists {
			return fmt.Errorf("room %q already registered", rm.Name())
		}
		r.rooms[rm.Name()] = rm
		r.order = append(r.order, rm)
	}
	return nil
}

// Resolve returns the room called name or an error wrapping room.ErrUnknownRoom.
func (r *Registry) Resolve(name string) (*room.Room, error) {
	rm, ok := r.rooms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", room.ErrUnknownRoom, name)
	}
	return rm, nil
}

func (r *Registry) RecordTransition(departed *room.Room) {
	r.previous = departed
}

func (r *Registry) Previous() *room.Room {
	return r.previous
}

// First returns the first registered room, or nil.
func (r *Registry) First() *room.Room {
	if len(r.order) == 0 {
		return nil
	}
	return r.order[0]
}

func (r *Registry) Len() int { return len(r.order) }

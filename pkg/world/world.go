package world

import "fmt"

// World holds the canonical item, NPC and room tables for one game
// session. It is built once per new game; loading a save patches the
// mutable fields of these tables rather than reconstructing them.
type World struct {
	Items map[string]*Item
	NPCs  map[string]*NPC
	Rooms map[string]*Room
}

// Room returns the room for an id, or nil.
func (w *World) Room(id string) *Room {
	return w.Rooms[id]
}

// Item returns the canonical item definition for a normalized name, or nil.
func (w *World) Item(name string) *Item {
	return w.Items[Normalize(name)]
}

// Validate checks the integrity of the authored content:
// every exit edge resolves to an existing room, every room item points at
// a canonical definition, and every NPC dialogue has a default line.
func (w *World) Validate() error {
	for id, room := range w.Rooms {
		if room.Name != id {
			return fmt.Errorf("room %q keyed as %q", room.Name, id)
		}
		for dir, target := range room.Exits {
			if _, ok := w.Rooms[target]; !ok {
				return fmt.Errorf("room %q exit %q points at undefined room %q", id, dir, target)
			}
		}
		for _, item := range room.Items {
			if w.Items[item.Name] != item {
				return fmt.Errorf("room %q holds non-canonical item %q", id, item.Name)
			}
		}
		for _, npc := range room.NPCs {
			if _, ok := npc.Dialogue[DefaultTopic]; !ok {
				return fmt.Errorf("npc %q in room %q has no default dialogue", npc.Name, id)
			}
		}
	}
	for name, item := range w.Items {
		if item.Name != name {
			return fmt.Errorf("item %q keyed as %q", item.Name, name)
		}
	}
	return nil
}

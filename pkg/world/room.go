package world

// Room is a node in the directed room graph. Name is the stable internal
// id; exits map direction labels to target room ids and may be added at
// runtime (unlocking a door creates an edge that did not exist before).
type Room struct {
	Name         string            `json:"name"`
	DisplayName  string            `json:"display_name"`
	Description  string            `json:"description"`             // mutable: may change to reflect state
	Exits        map[string]string `json:"exits,omitempty"`
	Items        []*Item           `json:"items,omitempty"`         // order = discovery order
	NPCs         []*NPC            `json:"npcs,omitempty"`
	Monsters     []*NPC            `json:"monsters,omitempty"`
	Properties   map[string]bool   `json:"properties,omitempty"`    // puzzle flags, mostly one-shot
	ArtOnEnter   string            `json:"art_on_enter,omitempty"`
	AmbientSound string            `json:"ambient_sound,omitempty"`

	// VisitedArtShown gates the one-time entry art per game session.
	VisitedArtShown bool `json:"visited_art_shown,omitempty"`
}

// AddExit registers a directed edge. Direction labels are normalized so
// that parsing and lookup agree.
func (r *Room) AddExit(direction, roomID string) {
	if r.Exits == nil {
		r.Exits = make(map[string]string)
	}
	r.Exits[Normalize(direction)] = roomID
}

// HasExit reports whether the direction is an edge of this room.
func (r *Room) HasExit(direction string) bool {
	_, ok := r.Exits[Normalize(direction)]
	return ok
}

// AddItem appends an item to the room's contents.
func (r *Room) AddItem(item *Item) {
	r.Items = append(r.Items, item)
}

// RemoveItem removes and returns the named item, or nil if absent.
func (r *Room) RemoveItem(name string) *Item {
	for i, item := range r.Items {
		if item.Matches(name) {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// FindItem returns the named item without removing it, or nil.
func (r *Room) FindItem(name string) *Item {
	for _, item := range r.Items {
		if item.Matches(name) {
			return item
		}
	}
	return nil
}

// HasItem reports whether the named item is in the room.
func (r *Room) HasItem(name string) bool {
	return r.FindItem(name) != nil
}

// FindNPC returns the named NPC present in the room, or nil.
func (r *Room) FindNPC(name string) *NPC {
	for _, npc := range r.NPCs {
		if npc.Matches(name) {
			return npc
		}
	}
	return nil
}

// FindMonster returns the named monster, or the first one when name is
// empty, or nil when none match.
func (r *Room) FindMonster(name string) *NPC {
	if len(r.Monsters) == 0 {
		return nil
	}
	if name == "" {
		return r.Monsters[0]
	}
	for _, m := range r.Monsters {
		if m.Matches(name) {
			return m
		}
	}
	return nil
}

// RemoveMonster drops a defeated monster from the room.
func (r *Room) RemoveMonster(target *NPC) {
	for i, m := range r.Monsters {
		if m == target {
			r.Monsters = append(r.Monsters[:i], r.Monsters[i+1:]...)
			return
		}
	}
}

// Prop reads a property flag, defaulting to false when unset.
func (r *Room) Prop(name string) bool {
	return r.Properties[name]
}

// SetProp sets a property flag.
func (r *Room) SetProp(name string, v bool) {
	if r.Properties == nil {
		r.Properties = make(map[string]bool)
	}
	r.Properties[name] = v
}

// Package save defines the persisted game-state document and the
// capture/apply operations between it and the in-memory world.
//
// Loading never reconstructs the world: the canonical tables are rebuilt
// first and a snapshot then overwrites their mutable fields. Optional
// fields are pointers so a key missing from an older document simply
// leaves the freshly-initialized default in place, and saved item or
// room names that no longer exist silently drop.
package save

import (
	"time"

	"github.com/google/uuid"
	"github.com/xlzhou/treasure-hunter/pkg/actor"
	"github.com/xlzhou/treasure-hunter/pkg/world"
)

// RoomState is the saved mutable portion of one room.
type RoomState struct {
	ItemsInRoom     []string          `json:"items_in_room"`
	Properties      map[string]bool   `json:"properties"`
	Exits           map[string]string `json:"exits"`
	Description     *string           `json:"description,omitempty"`
	VisitedArtShown *bool             `json:"visited_art_shown,omitempty"`
	AmbientSound    *string           `json:"ambient_sound"`
}

// Snapshot is the full save document for one slot.
type Snapshot struct {
	ID      uuid.UUID `json:"id"`
	SavedAt time.Time `json:"saved_at"`

	PlayerRoomID       string   `json:"player_room_id"`
	PlayerInventory    []string `json:"player_inventory"`
	PlayerHealth       *int     `json:"player_health,omitempty"`
	PlayerMaxHealth    *int     `json:"player_max_health,omitempty"`
	PlayerScore        *int     `json:"player_score,omitempty"`
	PlayerLevel        *int     `json:"player_level,omitempty"`
	PlayerExperience   *int     `json:"player_experience,omitempty"`
	PlayerStrength     *int     `json:"player_strength,omitempty"`
	PlayerDefense      *int     `json:"player_defense,omitempty"`
	PlayerIntelligence *int     `json:"player_intelligence,omitempty"`
	PlayerGold         *int     `json:"player_gold,omitempty"`
	PlayerVisitedRooms []string `json:"player_visited_rooms"`
	PlayerActionsCount *int     `json:"player_actions_count,omitempty"`
	PlayerHistory      []string `json:"player_history"`

	RoomStates map[string]RoomState `json:"room_states"`
}

// Capture builds a snapshot of the current mutable state.
func Capture(w *world.World, p *actor.Player) *Snapshot {
	snap := &Snapshot{
		ID:      uuid.New(),
		SavedAt: time.Now(),

		PlayerRoomID:       p.RoomID,
		PlayerInventory:    itemNames(p.Inventory),
		PlayerHealth:       intp(p.Health),
		PlayerMaxHealth:    intp(p.MaxHealth),
		PlayerScore:        intp(p.Score),
		PlayerLevel:        intp(p.Level),
		PlayerExperience:   intp(p.Experience),
		PlayerStrength:     intp(p.Strength),
		PlayerDefense:      intp(p.Defense),
		PlayerIntelligence: intp(p.Intelligence),
		PlayerGold:         intp(p.Gold),
		PlayerVisitedRooms: append([]string(nil), p.VisitedRooms...),
		PlayerActionsCount: intp(p.ActionsCount),
		PlayerHistory:      append([]string(nil), p.History...),

		RoomStates: make(map[string]RoomState, len(w.Rooms)),
	}

	for id, room := range w.Rooms {
		props := make(map[string]bool, len(room.Properties))
		for k, v := range room.Properties {
			props[k] = v
		}
		exits := make(map[string]string, len(room.Exits))
		for k, v := range room.Exits {
			exits[k] = v
		}
		var ambient *string
		if room.AmbientSound != "" {
			ambient = strp(room.AmbientSound)
		}
		snap.RoomStates[id] = RoomState{
			ItemsInRoom:     itemNames(room.Items),
			Properties:      props,
			Exits:           exits,
			Description:     strp(room.Description),
			VisitedArtShown: boolp(room.VisitedArtShown),
			AmbientSound:    ambient,
		}
	}
	return snap
}

// Apply overwrites the mutable fields of an already-constructed world
// and player from the snapshot. Fields absent from the document keep
// their defaults; item and room names that do not resolve against the
// canonical tables are dropped.
func (s *Snapshot) Apply(w *world.World, p *actor.Player) {
	if s.PlayerRoomID != "" {
		p.RoomID = s.PlayerRoomID
	}
	setInt(&p.Health, s.PlayerHealth)
	setInt(&p.MaxHealth, s.PlayerMaxHealth)
	setInt(&p.Score, s.PlayerScore)
	setInt(&p.Level, s.PlayerLevel)
	setInt(&p.Experience, s.PlayerExperience)
	setInt(&p.Strength, s.PlayerStrength)
	setInt(&p.Defense, s.PlayerDefense)
	setInt(&p.Intelligence, s.PlayerIntelligence)
	setInt(&p.Gold, s.PlayerGold)
	setInt(&p.ActionsCount, s.PlayerActionsCount)
	if s.PlayerVisitedRooms != nil {
		p.VisitedRooms = append([]string(nil), s.PlayerVisitedRooms...)
	}
	if s.PlayerHistory != nil {
		p.History = append([]string(nil), s.PlayerHistory...)
	}
	if s.PlayerInventory != nil {
		p.Inventory = resolveItems(w, s.PlayerInventory)
	}

	for id, room := range w.Rooms {
		rs, ok := s.RoomStates[id]
		if !ok {
			continue
		}
		if rs.ItemsInRoom != nil {
			room.Items = resolveItems(w, rs.ItemsInRoom)
		}
		if rs.Properties != nil {
			room.Properties = rs.Properties
		}
		if rs.Exits != nil {
			room.Exits = rs.Exits
		}
		if rs.Description != nil {
			room.Description = *rs.Description
		}
		if rs.VisitedArtShown != nil {
			room.VisitedArtShown = *rs.VisitedArtShown
		}
		if rs.AmbientSound != nil {
			room.AmbientSound = *rs.AmbientSound
		}
	}
}

func resolveItems(w *world.World, names []string) []*world.Item {
	items := make([]*world.Item, 0, len(names))
	for _, name := range names {
		if item := w.Item(name); item != nil {
			items = append(items, item)
		}
	}
	return items
}

func itemNames(items []*world.Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
func boolp(v bool) *bool    { return &v }

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

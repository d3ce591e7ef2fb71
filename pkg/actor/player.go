package actor

import (
	"fmt"

	"github.com/jwebster45206/d20"
	"github.com/xlzhou/treasure-hunter/pkg/world"
)

// HistoryLimit bounds the player's action journal.
const HistoryLimit = 30

// Player is the player character. All fields are plain values so the
// save layer can snapshot them field-by-field; the d20 sheet is derived
// on demand via Sheet.
type Player struct {
	RoomID       string   `json:"room_id"`
	Health       int      `json:"health"`
	MaxHealth    int      `json:"max_health"`
	Score        int      `json:"score"`
	Strength     int      `json:"strength"`
	Intelligence int      `json:"intelligence"`
	Defense      int      `json:"defense"`
	Experience   int      `json:"experience"`
	Level        int      `json:"level"`
	Gold         int      `json:"gold"`
	VisitedRooms []string `json:"visited_rooms"` // insertion order kept for travel menus
	ActionsCount int      `json:"actions_count"`
	History      []string `json:"history"` // most recent HistoryLimit actions

	Inventory []*world.Item `json:"-"` // canonical item refs, serialized by name
}

// NewPlayer creates a level-1 player in the given room.
func NewPlayer(roomID string) *Player {
	return &Player{
		RoomID:       roomID,
		Health:       100,
		MaxHealth:    100,
		Strength:     10,
		Intelligence: 10,
		Defense:      5,
		Level:        1,
	}
}

// Sheet builds the player's d20 stat block from current values.
// The sheet is read-only; combat and leveling mutate the Player fields
// and a fresh sheet reflects them.
func (p *Player) Sheet() (*d20.Actor, error) {
	a, err := d20.NewActor("player").
		WithHP(p.MaxHealth).
		WithAC(10 + p.Defense).
		WithAttributes(map[string]int{
			"strength":     p.Strength,
			"intelligence": p.Intelligence,
			"defense":      p.Defense,
		}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor: %w", err)
	}
	if p.Health != p.MaxHealth && p.Health > 0 {
		if err := a.SetHP(p.Health); err != nil {
			return nil, fmt.Errorf("failed to set HP: %w", err)
		}
	}
	return a, nil
}

// AddToInventory appends an item and counts the action.
func (p *Player) AddToInventory(item *world.Item) {
	p.Inventory = append(p.Inventory, item)
	p.ActionsCount++
}

// RemoveFromInventory removes and returns the named item, or nil.
func (p *Player) RemoveFromInventory(name string) *world.Item {
	for i, item := range p.Inventory {
		if item.Matches(name) {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return item
		}
	}
	return nil
}

// FindItem returns the named inventory item without removing it, or nil.
func (p *Player) FindItem(name string) *world.Item {
	for _, item := range p.Inventory {
		if item.Matches(name) {
			return item
		}
	}
	return nil
}

// HasItem reports whether the named item is in the inventory.
func (p *Player) HasItem(name string) bool {
	return p.FindItem(name) != nil
}

// TakeDamage reduces health by the already-computed damage amount.
// Health never drops below 0.
func (p *Player) TakeDamage(damage int) {
	if damage <= 0 {
		return
	}
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal restores health up to the max-health ceiling.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// AddExperience grants experience and applies as many level-up steps as
// the threshold rule allows (xp >= level * 100).
func (p *Player) AddExperience(exp int) {
	p.Experience += exp
	for p.Experience >= p.Level*100 {
		p.levelUp()
	}
}

func (p *Player) levelUp() {
	p.Level++
	p.MaxHealth += 10
	p.Health = p.MaxHealth
	p.Strength += 2
	p.Defense++
	p.Intelligence++
}

// AddGold grants gold.
func (p *Player) AddGold(amount int) {
	p.Gold += amount
}

// SpendGold deducts gold if the player can afford it.
func (p *Player) SpendGold(amount int) bool {
	if p.Gold < amount {
		return false
	}
	p.Gold -= amount
	return true
}

// RecordAction counts an action and appends it to the bounded journal.
func (p *Player) RecordAction(description string) {
	p.ActionsCount++
	p.History = append(p.History, description)
	if len(p.History) > HistoryLimit {
		p.History = p.History[len(p.History)-HistoryLimit:]
	}
}

// VisitRoom marks a room as visited and logs the arrival.
func (p *Player) VisitRoom(roomID, label string) {
	visited := false
	for _, id := range p.VisitedRooms {
		if id == roomID {
			visited = true
			break
		}
	}
	if !visited {
		p.VisitedRooms = append(p.VisitedRooms, roomID)
	}
	if label == "" {
		label = roomID
	}
	p.RecordAction("抵达 " + label)
}

// HasVisited reports whether the room id is in the visited set.
func (p *Player) HasVisited(roomID string) bool {
	for _, id := range p.VisitedRooms {
		if id == roomID {
			return true
		}
	}
	return false
}

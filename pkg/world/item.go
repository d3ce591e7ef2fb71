package world

import (
	"strings"

	"golang.org/x/text/width"
)

// Item categories used by the inventory view and crafting.
const (
	ItemTypeKey        = "key"
	ItemTypeTool       = "tool"
	ItemTypeDocument   = "document"
	ItemTypeConsumable = "consumable"
	ItemTypeTreasure   = "treasure"
	ItemTypeMisc       = "misc"
)

// Item is a canonical item definition. A given name maps to at most one
// Item; rooms and the player inventory hold pointers to the same
// definition, and transfer between containers is a move.
type Item struct {
	Name              string `json:"name"` // normalized, stable id
	DisplayName       string `json:"display_name"`
	Description       string `json:"description"`
	Takeable          bool   `json:"takeable"`
	UseOn             string `json:"use_on,omitempty"`             // declarative use-target name
	EffectDescription string `json:"effect_description,omitempty"` // shown when UseOn matches
	ArtName           string `json:"art_name,omitempty"`           // presentation cue
	Type              string `json:"type,omitempty"`
	Value             int    `json:"value,omitempty"`
}

// Normalize folds an item, room or NPC name for matching: lowercased,
// with fullwidth ASCII narrowed so "ＡＢＣ" and "abc" compare equal.
func Normalize(name string) string {
	return strings.ToLower(width.Narrow.String(strings.TrimSpace(name)))
}

// Matches reports whether the given user text names this item, comparing
// against both the canonical name and the display name.
func (i *Item) Matches(name string) bool {
	n := Normalize(name)
	return n == i.Name || n == Normalize(i.DisplayName)
}

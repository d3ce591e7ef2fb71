package world

// DefaultTopic is the dialogue key every NPC must carry. Unknown topics
// fall back to it instead of erroring.
const DefaultTopic = "default"

// NPC represents a non-player character in the game. Hostile NPCs carry
// combat stats and are listed in a room's Monsters rather than its NPCs.
type NPC struct {
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Dialogue     map[string]string `json:"dialogue,omitempty"` // topic -> response, "default" required
	Voice        string            `json:"voice,omitempty"`    // presentation cue for text-to-speech
	Health       int               `json:"health,omitempty"`
	MaxHealth    int               `json:"max_health,omitempty"`
	AttackPower  int               `json:"attack_power,omitempty"`
	DefensePower int               `json:"defense_power,omitempty"`
	Hostile      bool              `json:"hostile,omitempty"`
}

// Talk returns the NPC's response for a topic, falling back to the
// default line when the topic is unknown.
func (n *NPC) Talk(topic string) string {
	if line, ok := n.Dialogue[Normalize(topic)]; ok {
		return line
	}
	if line, ok := n.Dialogue[DefaultTopic]; ok {
		return line
	}
	return "嗯？我不明白你的意思。"
}

// Matches reports whether the given user text names this NPC.
func (n *NPC) Matches(name string) bool {
	return Normalize(name) == Normalize(n.Name)
}

// IsDefeated returns true if the NPC's health is 0 or less.
func (n *NPC) IsDefeated() bool {
	return n.Health <= 0
}

// TakeDamage reduces health by n, floored at 0.
func (n *NPC) TakeDamage(dmg int) {
	if dmg <= 0 {
		return
	}
	n.Health -= dmg
	if n.Health < 0 {
		n.Health = 0
	}
}

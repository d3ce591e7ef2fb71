package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorld_Validate(t *testing.T) {
	w := NewWorld()
	require.NoError(t, w.Validate())

	assert.Len(t, w.Rooms, 7)
	assert.Len(t, w.Items, 9)
	assert.Len(t, w.NPCs, 1)
}

func TestNewWorld_ExitClosure(t *testing.T) {
	w := NewWorld()
	for id, room := range w.Rooms {
		for dir, target := range room.Exits {
			assert.NotNil(t, w.Room(target), "room %s exit %s points at undefined room %s", id, dir, target)
		}
	}
}

func TestNewWorld_StartingLayout(t *testing.T) {
	w := NewWorld()

	cabin := w.Room(RoomCabin)
	require.NotNil(t, cabin)
	assert.True(t, cabin.HasItem(ItemTorch))
	assert.True(t, cabin.HasItem(ItemOldMap))
	assert.NotNil(t, cabin.FindNPC("斗桨先生"))

	// The rusty key and crowbar only appear after searching.
	forestPath := w.Room(RoomForestPath)
	require.NotNil(t, forestPath)
	assert.False(t, forestPath.HasItem(ItemRustyKey))
	cellar := w.Room(RoomCellar)
	require.NotNil(t, cellar)
	assert.False(t, cellar.HasItem(ItemCrowbar))

	// The cellar entrance starts locked with no way down.
	entrance := w.Room(RoomCellarEntrance)
	require.NotNil(t, entrance)
	assert.True(t, entrance.Prop(PropDoorLocked))
	assert.False(t, entrance.HasExit("下"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase passthrough", "torch", "torch"},
		{"uppercase folds", "TORCH", "torch"},
		{"whitespace trims", "  火把  ", "火把"},
		{"fullwidth latin folds", "ｔａｋｅ", "take"},
		{"cjk unchanged", "生锈的钥匙", "生锈的钥匙"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestItem_Matches(t *testing.T) {
	item := &Item{Name: Normalize("生锈的钥匙"), DisplayName: "生锈的钥匙"}
	assert.True(t, item.Matches("生锈的钥匙"))
	assert.True(t, item.Matches(" 生锈的钥匙 "))
	assert.False(t, item.Matches("钥匙"))
}

func TestNPC_Talk(t *testing.T) {
	w := NewWorld()
	npc := w.NPCs["斗桨先生"]
	require.NotNil(t, npc)

	assert.Contains(t, npc.Talk("宝藏"), "秘宝")
	// Unknown topics fall back to the default line.
	assert.Equal(t, npc.Dialogue[DefaultTopic], npc.Talk("不存在的话题"))
	assert.Equal(t, npc.Dialogue[DefaultTopic], npc.Talk(""))
}

func TestNPC_Combat(t *testing.T) {
	m := &NPC{Name: "测试怪", Health: 10, MaxHealth: 10, Hostile: true}

	m.TakeDamage(4)
	assert.Equal(t, 6, m.Health)
	assert.False(t, m.IsDefeated())

	m.TakeDamage(100)
	assert.Equal(t, 0, m.Health)
	assert.True(t, m.IsDefeated())

	m.TakeDamage(-5)
	assert.Equal(t, 0, m.Health)
}

func TestRoom_Items(t *testing.T) {
	r := &Room{Name: "test"}
	item := &Item{Name: Normalize("火把"), DisplayName: "火把"}

	r.AddItem(item)
	assert.True(t, r.HasItem("火把"))
	assert.Same(t, item, r.FindItem("火把"))

	removed := r.RemoveItem("火把")
	assert.Same(t, item, removed)
	assert.False(t, r.HasItem("火把"))
	assert.Nil(t, r.RemoveItem("火把"))
}

func TestRoom_Exits(t *testing.T) {
	r := &Room{Name: "test"}
	r.AddExit("北", "other")
	assert.True(t, r.HasExit("北"))
	assert.True(t, r.HasExit(" 北 "))
	assert.False(t, r.HasExit("南"))
}

func TestRoom_FindMonster(t *testing.T) {
	wolf := &NPC{Name: "森林狼", Hostile: true, Health: 35}
	bat := &NPC{Name: "洞穴蝙蝠", Hostile: true, Health: 20}
	r := &Room{Name: "test", Monsters: []*NPC{wolf, bat}}

	assert.Same(t, wolf, r.FindMonster(""))
	assert.Same(t, bat, r.FindMonster("洞穴蝙蝠"))
	assert.Nil(t, r.FindMonster("骷髅守卫"))

	r.RemoveMonster(wolf)
	assert.Same(t, bat, r.FindMonster(""))
	assert.Len(t, r.Monsters, 1)
}

func TestWorld_ItemLookup(t *testing.T) {
	w := NewWorld()
	assert.NotNil(t, w.Item("火把"))
	assert.NotNil(t, w.Item(" 火把 "))
	assert.Nil(t, w.Item("不存在的物品"))
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlzhou/treasure-hunter/pkg/actor"
	"github.com/xlzhou/treasure-hunter/pkg/world"
)

func TestQuest_Objectives(t *testing.T) {
	q := NewQuest("test", "测试任务", "desc", []string{"一", "二"}, nil)

	assert.Equal(t, "0/2", q.Progress())
	assert.True(t, q.CompleteObjective(0))
	assert.False(t, q.CompleteObjective(0), "re-completing reports no change")
	assert.False(t, q.Completed)

	assert.True(t, q.CompleteObjective(1))
	assert.True(t, q.Completed)
	assert.Equal(t, "2/2", q.Progress())

	assert.False(t, q.CompleteObjective(5), "out of range is a no-op")
}

func TestQuestSystem_CompletePaysRewards(t *testing.T) {
	qs := NewQuestSystem()
	p := actor.NewPlayer(world.RoomCabin)
	q := NewQuest("test", "测试任务", "desc", []string{"一"},
		map[string]int{"experience": 40, "score": 15, "gold": 50})
	qs.Add(q)

	assert.False(t, qs.Complete("test", p), "an unfinished quest does not complete")

	q.CompleteObjective(0)
	assert.True(t, qs.Complete("test", p))
	assert.Equal(t, 40, p.Experience)
	assert.Equal(t, 15, p.Score)
	assert.Equal(t, 50, p.Gold)
	assert.Empty(t, qs.Active)
	require.Len(t, qs.Completed, 1)

	assert.False(t, qs.Complete("test", p), "a quest pays out once")
}

func TestAchievementSystem_UnlockOnce(t *testing.T) {
	as := NewAchievementSystem()

	assert.True(t, as.Unlock("first_steps"))
	assert.False(t, as.Unlock("first_steps"), "second unlock reports false")
	assert.False(t, as.Unlock("unknown_id"))
	assert.Equal(t, 1, as.UnlockedCount())
	assert.NotEmpty(t, as.All())
}

func TestCraftingSystem_Craft(t *testing.T) {
	cs := NewCraftingSystem()
	w := world.NewWorld()
	p := actor.NewPlayer(world.RoomCabin)

	// Lockpick needs wire and crowbar.
	var lockpick *Recipe
	for _, r := range cs.Recipes {
		if r.ID == "lockpick" {
			lockpick = r
		}
	}
	require.NotNil(t, lockpick)

	assert.False(t, cs.CanCraft(lockpick, p))
	assert.Nil(t, cs.Craft(lockpick, p, w))

	p.AddToInventory(w.Item(world.ItemCrowbar))
	p.AddToInventory(&world.Item{Name: world.Normalize("铁丝"), DisplayName: "铁丝", Takeable: true})
	require.True(t, cs.CanCraft(lockpick, p))

	result := cs.Craft(lockpick, p, w)
	require.NotNil(t, result)
	assert.Equal(t, "开锁工具", result.DisplayName)
	assert.False(t, p.HasItem(world.ItemCrowbar), "materials are consumed")
	assert.False(t, p.HasItem("铁丝"))
	assert.Equal(t, 1, cs.CraftedCount)
	assert.NotNil(t, w.Item("开锁工具"), "ad hoc results join the canonical table")
}

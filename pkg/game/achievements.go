package game

// Achievement is a one-shot unlockable.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Unlocked    bool
	Hidden      bool
}

// AchievementSystem tracks unlock state. Unlocks are one-shot: a second
// unlock of the same id reports false.
type AchievementSystem struct {
	byID  map[string]*Achievement
	order []string
}

func NewAchievementSystem() *AchievementSystem {
	as := &AchievementSystem{byID: make(map[string]*Achievement)}
	for _, a := range []*Achievement{
		{ID: "first_steps", Name: "初次探险", Description: "开始你的冒险之旅"},
		{ID: "explorer", Name: "探险家", Description: "探索所有房间"},
		{ID: "collector", Name: "收藏家", Description: "收集10个物品"},
		{ID: "treasure_hunter", Name: "寻宝猎人", Description: "找到远古神像"},
		{ID: "puzzle_master", Name: "解谜大师", Description: "解开所有谜题"},
		{ID: "survivor", Name: "幸存者", Description: "生命值降至10以下后存活"},
		{ID: "monster_hunter", Name: "怪物猎人", Description: "击败三只怪物"},
		{ID: "level_5", Name: "进阶冒险者", Description: "达到5级"},
		{ID: "rich", Name: "富有", Description: "拥有100金币"},
		{ID: "crafter", Name: "工匠", Description: "合成5个物品"},
		{ID: "social", Name: "社交达人", Description: "与所有NPC对话"},
	} {
		as.byID[a.ID] = a
		as.order = append(as.order, a.ID)
	}
	return as
}

// Unlock marks an achievement unlocked; returns true only on the first
// unlock.
func (as *AchievementSystem) Unlock(id string) bool {
	a, ok := as.byID[id]
	if !ok || a.Unlocked {
		return false
	}
	a.Unlocked = true
	return true
}

// All returns visible achievements in definition order.
func (as *AchievementSystem) All() []*Achievement {
	out := make([]*Achievement, 0, len(as.order))
	for _, id := range as.order {
		if a := as.byID[id]; !a.Hidden {
			out = append(out, a)
		}
	}
	return out
}

// UnlockedCount counts unlocked achievements.
func (as *AchievementSystem) UnlockedCount() int {
	n := 0
	for _, a := range as.byID {
		if a.Unlocked {
			n++
		}
	}
	return n
}

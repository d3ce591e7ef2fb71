package game

import (
	"github.com/xlzhou/treasure-hunter/pkg/actor"
	"github.com/xlzhou/treasure-hunter/pkg/world"
)

// Recipe combines inventory materials into a result item.
type Recipe struct {
	ID        string
	Name      string
	Materials []string
	Result    string
}

// CraftingSystem holds the recipe book and a crafted counter for the
// crafter achievement.
type CraftingSystem struct {
	Recipes      []*Recipe
	CraftedCount int
}

func NewCraftingSystem() *CraftingSystem {
	return &CraftingSystem{
		Recipes: []*Recipe{
			{ID: "torch_oil", Name: "长效火把", Materials: []string{"火把", "油"}, Result: "长效火把"},
			{ID: "grappling_hook", Name: "抓钩", Materials: []string{"绳子", "钩子"}, Result: "抓钩"},
			{ID: "healing_potion_strong", Name: "强效治疗药水", Materials: []string{"治疗药水", "草药"}, Result: "强效治疗药水"},
			{ID: "lockpick", Name: "开锁工具", Materials: []string{"铁丝", "撬棍"}, Result: "开锁工具"},
			{ID: "map_enhanced", Name: "详细地图", Materials: []string{"古老的地图", "墨水"}, Result: "详细地图"},
		},
	}
}

// CanCraft reports whether the player holds every material.
func (cs *CraftingSystem) CanCraft(r *Recipe, p *actor.Player) bool {
	for _, m := range r.Materials {
		if !p.HasItem(m) {
			return false
		}
	}
	return true
}

// Craft consumes the materials and returns the result item, resolving
// it against the canonical table when possible and minting an ad hoc
// item otherwise. Returns nil when materials are missing.
func (cs *CraftingSystem) Craft(r *Recipe, p *actor.Player, w *world.World) *world.Item {
	if !cs.CanCraft(r, p) {
		return nil
	}
	for _, m := range r.Materials {
		p.RemoveFromInventory(m)
	}
	result := w.Item(r.Result)
	if result == nil {
		result = &world.Item{
			Name:        world.Normalize(r.Result),
			DisplayName: r.Result,
			Description: "合成的" + r.Result,
			Takeable:    true,
		}
		w.Items[result.Name] = result
	}
	cs.CraftedCount++
	return result
}

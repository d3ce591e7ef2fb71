package game

import (
	"fmt"

	"github.com/xlzhou/treasure-hunter/pkg/actor"
)

// Quest is a fixed list of objectives with rewards granted when all of
// them complete.
type Quest struct {
	ID          string
	Name        string
	Description string
	Objectives  []string
	Done        []bool
	Rewards     map[string]int // "experience", "score", "gold"
	Completed   bool
}

func NewQuest(id, name, description string, objectives []string, rewards map[string]int) *Quest {
	return &Quest{
		ID:          id,
		Name:        name,
		Description: description,
		Objectives:  objectives,
		Done:        make([]bool, len(objectives)),
		Rewards:     rewards,
	}
}

// CompleteObjective marks one objective done and returns true when that
// changed its state.
func (q *Quest) CompleteObjective(index int) bool {
	if index < 0 || index >= len(q.Done) || q.Done[index] {
		return false
	}
	q.Done[index] = true
	all := true
	for _, d := range q.Done {
		if !d {
			all = false
			break
		}
	}
	q.Completed = all
	return true
}

// Progress formats the done/total counter.
func (q *Quest) Progress() string {
	done := 0
	for _, d := range q.Done {
		if d {
			done++
		}
	}
	return fmt.Sprintf("%d/%d", done, len(q.Objectives))
}

// QuestSystem tracks active and completed quests.
type QuestSystem struct {
	Active    []*Quest
	Completed []*Quest
}

func NewQuestSystem() *QuestSystem {
	return &QuestSystem{}
}

func (qs *QuestSystem) Add(q *Quest) {
	qs.Active = append(qs.Active, q)
}

// Complete moves a finished quest out of the active list and pays its
// rewards. Returns false when the quest is unknown or not yet finished.
func (qs *QuestSystem) Complete(id string, p *actor.Player) bool {
	for i, q := range qs.Active {
		if q.ID != id || !q.Completed {
			continue
		}
		qs.Active = append(qs.Active[:i], qs.Active[i+1:]...)
		qs.Completed = append(qs.Completed, q)

		if exp, ok := q.Rewards["experience"]; ok {
			p.AddExperience(exp)
		}
		if score, ok := q.Rewards["score"]; ok {
			p.Score += score
		}
		if gold, ok := q.Rewards["gold"]; ok {
			p.AddGold(gold)
		}
		return true
	}
	return false
}

func newGameQuests() []*Quest {
	return []*Quest{
		NewQuest("intro_path", "重燃火种", "点亮光源并找到地下室的秘密。",
			[]string{"点燃火把", "解锁地下室", "取得远古神像"},
			map[string]int{"experience": 60, "score": 20}),
		NewQuest("forest_explorer", "森林探险者", "探索森林的每一个角落。",
			[]string{"探索森林小径", "进入森林深处", "发现隐藏的洞穴"},
			map[string]int{"experience": 40, "score": 15, "gold": 50}),
		NewQuest("monster_hunter", "怪物猎人", "击败游荡在这片土地上的危险生物。",
			[]string{"击败洞穴蝙蝠", "击败森林狼", "击败骷髅守卫"},
			map[string]int{"experience": 100, "score": 30, "gold": 100}),
	}
}

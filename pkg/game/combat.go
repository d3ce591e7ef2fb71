package game

import (
	"fmt"

	"github.com/xlzhou/treasure-hunter/pkg/ui"
	"github.com/xlzhou/treasure-hunter/pkg/world"
)

// CombatState is a fight in progress. While it is non-nil the engine
// routes every input line to combatRound instead of the verb parser,
// so one line resolves one round.
type CombatState struct {
	Enemy *world.NPC
	Room  *world.Room
}

func (e *Engine) startCombat(monsterName string) {
	if e.combat != nil {
		e.warn("战斗正在进行中！输入 [攻击/逃跑]")
		return
	}
	room := e.currentRoom()
	if len(room.Monsters) == 0 {
		e.warn("这里没有可以攻击的怪物。")
		return
	}

	target := room.FindMonster(monsterName)
	if target == nil {
		e.errorMsg(fmt.Sprintf("找不到怪物 '%s'", monsterName))
		return
	}

	e.combat = &CombatState{Enemy: target, Room: room}
	e.errorMsg(fmt.Sprintf("战斗开始！你遭遇了 %s！", target.Name))
	e.combatStatus()
	e.say("[攻击/逃跑] >")
}

// combatRound resolves one round from one input line. Fleeing rolls
// 50/50; a failed flee still eats the round, so the enemy strikes back.
func (e *Engine) combatRound(input string) {
	cs := e.combat
	enemy := cs.Enemy
	p := e.Player

	action := world.Normalize(input)
	switch action {
	case "逃跑", "flee", "run":
		if e.rng.Float64() < 0.5 {
			e.success("你成功逃跑了！")
			e.combat = nil
			return
		}
		e.warn("逃跑失败！")
	case "攻击", "attack", "a", "":
		// Falls through to the round below.
	default:
		e.warn("输入 [攻击/逃跑]")
		return
	}

	playerDamage := e.damageRoll(p.Strength, enemy.DefensePower)
	enemy.TakeDamage(playerDamage)
	e.success(fmt.Sprintf("你对 %s 造成了 %d 点伤害！", enemy.Name, playerDamage))
	e.pres.Play("combat_hit")

	if enemy.IsDefeated() {
		e.victory(enemy)
		return
	}

	enemyDamage := e.damageRoll(enemy.AttackPower, p.Defense)
	p.TakeDamage(enemyDamage)
	e.errorMsg(fmt.Sprintf("%s 对你造成了 %d 点伤害！", enemy.Name, enemyDamage))

	if p.Health <= 0 {
		e.errorMsg("你被击败了...")
		e.combat = nil
		return
	}

	if p.Health < 10 && e.achievements.Unlock("survivor") {
		e.success("🏆 成就解锁：幸存者")
	}

	e.combatStatus()
	e.say("[攻击/逃跑] >")
}

func (e *Engine) victory(enemy *world.NPC) {
	p := e.Player
	expReward := enemy.AttackPower * 10
	goldReward := enemy.AttackPower * 5

	e.success(fmt.Sprintf("你击败了 %s！", enemy.Name))
	e.say(fmt.Sprintf("获得 %d 点经验！", expReward))

	oldLevel := p.Level
	p.AddExperience(expReward)
	if p.Level > oldLevel {
		e.success(fmt.Sprintf("升级了！你现在是 %d 级！", p.Level))
		e.pres.Play("level_up")
	}
	if p.Level >= 5 && e.achievements.Unlock("level_5") {
		e.success("🏆 成就解锁：进阶冒险者")
	}

	p.AddGold(goldReward)
	e.success(fmt.Sprintf("获得 %d 金币！", goldReward))
	if p.Gold >= 100 && e.achievements.Unlock("rich") {
		e.success("🏆 成就解锁：富有")
	}

	e.combat.Room.RemoveMonster(enemy)
	e.logAction("击败了 " + enemy.Name)
	e.pres.Play("puzzle_solve")

	e.monstersDefeated++
	switch enemy.Name {
	case "洞穴蝙蝠":
		e.completeObjective("monster_hunter", 0)
	case "森林狼":
		e.completeObjective("monster_hunter", 1)
	case "骷髅守卫":
		e.completeObjective("monster_hunter", 2)
	}
	if e.monstersDefeated >= 3 && e.achievements.Unlock("monster_hunter") {
		e.success("🏆 成就解锁：怪物猎人")
	}

	e.combat = nil
}

func (e *Engine) combatStatus() {
	cs := e.combat
	e.pres.Message(fmt.Sprintf("你: %d/%d HP  |  %s: %d/%d HP",
		e.Player.Health, e.Player.MaxHealth,
		cs.Enemy.Name, cs.Enemy.Health, cs.Enemy.MaxHealth),
		ui.StyleCombat)
}

// damageRoll is attack minus half defense with a ±2 swing, floored at 1.
func (e *Engine) damageRoll(attack, defense int) int {
	base := attack - defense/2
	if base < 1 {
		base = 1
	}
	damage := base + e.rng.Intn(5) - 2
	if damage < 1 {
		damage = 1
	}
	return damage
}

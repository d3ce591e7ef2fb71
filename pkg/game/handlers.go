package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlzhou/treasure-hunter/pkg/ui"
	"github.com/xlzhou/treasure-hunter/pkg/world"
)

// currentRoom resolves the player's room. Callers run after Execute has
// already verified it, so a nil here is unreachable in practice.
func (e *Engine) currentRoom() *world.Room {
	return e.World.Room(e.Player.RoomID)
}

func (e *Engine) lookAround() {
	room := e.currentRoom()
	if room == nil {
		e.errorMsg(fmt.Sprintf("错误：当前房间 '%s' 未找到！", e.Player.RoomID))
		return
	}

	if room.AmbientSound != "" {
		e.pres.Play(room.AmbientSound)
	}
	if room.ArtOnEnter != "" && !room.VisitedArtShown {
		e.pres.Art(room.ArtOnEnter)
		room.VisitedArtShown = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "【%s】\n%s", room.DisplayName, room.Description)
	if len(room.Items) > 0 {
		names := make([]string, 0, len(room.Items))
		for _, item := range room.Items {
			names = append(names, item.DisplayName)
		}
		fmt.Fprintf(&b, "\n物品: %s", strings.Join(names, ", "))
	}
	if len(room.NPCs) > 0 {
		names := make([]string, 0, len(room.NPCs))
		for _, npc := range room.NPCs {
			names = append(names, npc.Name)
		}
		fmt.Fprintf(&b, "\n人物: %s", strings.Join(names, ", "))
	}
	exits := make([]string, 0, len(room.Exits))
	for dir := range room.Exits {
		exits = append(exits, dir)
	}
	sort.Strings(exits)
	fmt.Fprintf(&b, "\n出路: %s", strings.Join(exits, ", "))
	e.say(b.String())

	if len(room.Monsters) > 0 {
		names := make([]string, 0, len(room.Monsters))
		for _, m := range room.Monsters {
			names = append(names, m.Name)
		}
		e.warn("⚔️ 怪物: " + strings.Join(names, ", "))
	}

	e.maybeFlavorEvent(room)
	e.noticeMonsters(room)
}

// maybeFlavorEvent shows occasional flavor text to keep areas lively.
func (e *Engine) maybeFlavorEvent(room *world.Room) {
	events := e.flavor[room.Name]
	if len(events) > 0 && e.rng.Float64() < 0.35 {
		e.dim(events[e.rng.Intn(len(events))])
	}
}

func (e *Engine) noticeMonsters(room *world.Room) {
	for _, m := range room.Monsters {
		if m.Hostile {
			e.warn(fmt.Sprintf("⚔️ 警告：%s 注意到了你！", m.Name))
			e.say("你可以输入 'attack' 进行攻击，或尝试 'go [方向]' 逃离。")
			return
		}
	}
}

func (e *Engine) movePlayer(direction string) {
	room := e.currentRoom()
	dir := world.Normalize(direction)
	nextID, ok := room.Exits[dir]
	if !ok {
		e.errorMsg(fmt.Sprintf("不能往 %s 走。", direction))
		e.pres.Play("action_fail")
		return
	}
	next := e.World.Room(nextID)
	if next == nil {
		e.errorMsg(fmt.Sprintf("错误：目标房间 '%s' 未定义！", nextID))
		return
	}

	if room.Name == world.RoomCellarEntrance && dir == "下" {
		if room.Prop(world.PropDoorLocked) {
			e.warn("门是锁着的。")
			e.pres.Play("action_fail")
			return
		}
		if !e.Player.HasItem(world.ItemLitTorch) {
			e.warn("太暗了，需要光源。")
			e.pres.Play("action_fail")
			return
		}
	}

	if room.Name == world.RoomDeepForest && dir == "进入洞穴" && room.Prop(world.PropCaveHidden) {
		e.warn("这里没什么特别的。")
		return
	}

	e.pres.Play("footsteps_stone")
	e.Player.RoomID = nextID
	e.Player.VisitRoom(nextID, next.DisplayName)

	if len(e.Player.VisitedRooms) >= len(e.World.Rooms) && e.achievements.Unlock("explorer") {
		e.success("🏆 成就解锁：探险家")
	}
	switch next.Name {
	case world.RoomForestPath:
		e.completeObjective("forest_explorer", 0)
	case world.RoomDeepForest:
		e.completeObjective("forest_explorer", 1)
	}

	e.logAction("移动至 " + next.DisplayName)
	e.lookAround()

	if next.Name == world.RoomDeepForest && next.Prop(world.PropCaveHidden) {
		e.success("仔细观察后，你注意到一个被藤蔓遮掩的[洞穴入口]！")
		next.SetProp(world.PropCaveHidden, false)
		e.pres.Play("puzzle_solve")
		e.completeObjective("forest_explorer", 2)
	}
}

func (e *Engine) takeItem(name string) {
	room := e.currentRoom()
	item := room.FindItem(name)
	if item == nil {
		e.errorMsg(fmt.Sprintf("这里没有 '%s'。", name))
		e.pres.Play("action_fail")
		return
	}
	if !item.Takeable {
		e.warn(fmt.Sprintf("不能拾取 [%s].", item.DisplayName))
		return
	}

	room.RemoveItem(item.Name)
	e.Player.AddToInventory(item)
	e.success(fmt.Sprintf("你将 [%s] 加入了物品栏。", item.DisplayName))
	e.logAction("拾取 " + item.DisplayName)

	if len(e.Player.Inventory) >= 10 && e.achievements.Unlock("collector") {
		e.success("🏆 成就解锁：收藏家")
	}
	if item.Name == world.Normalize(world.ItemIdol) {
		if e.achievements.Unlock("treasure_hunter") {
			e.success("🏆 成就解锁：寻宝猎人")
		}
		e.completeObjective("intro_path", 2)
	}
	e.pres.Play("item_pickup")
}

func (e *Engine) dropItem(name string) {
	room := e.currentRoom()
	item := e.Player.RemoveFromInventory(name)
	if item == nil {
		e.errorMsg(fmt.Sprintf("物品栏里没有 '%s'。", name))
		return
	}
	room.AddItem(item)
	e.say(fmt.Sprintf("你丢下了 [%s].", item.DisplayName))
	e.logAction(fmt.Sprintf("丢弃 %s 在 %s", item.DisplayName, room.DisplayName))
}

func (e *Engine) useItem(name, target string) {
	if name == "" {
		e.warn("用什么物品？")
		return
	}
	room := e.currentRoom()
	item := e.Player.FindItem(name)
	if item == nil {
		e.errorMsg(fmt.Sprintf("你没有 [%s].", name))
		e.pres.Play("action_fail")
		return
	}

	targetNorm := world.Normalize(target)

	if item.Name == world.Normalize(world.ItemTorch) && strings.Contains(targetNorm, "壁炉") {
		if room.Name == world.RoomCabin && !room.Prop(world.PropFireplaceLit) {
			e.success("你用[壁炉]点燃了[火把]！")
			room.SetProp(world.PropFireplaceLit, true)
			e.Player.RemoveFromInventory(item.Name)
			e.Player.AddToInventory(e.World.Item(world.ItemLitTorch))
			e.logAction("点燃了火把")
			e.completeObjective("intro_path", 0)
			e.pres.Play("fire_crackle")
			return
		}
	}

	if item.Name == world.Normalize(world.ItemPotion) {
		e.Player.Heal(50)
		e.success("你喝下治疗药水，好多了！")
		e.say(fmt.Sprintf("生命值: %d/%d", e.Player.Health, e.Player.MaxHealth))
		e.Player.RemoveFromInventory(item.Name)
		e.logAction("使用治疗药水")
		e.pres.Play("item_pickup")
		return
	}

	if item.Name == world.Normalize(world.ItemCrowbar) && strings.Contains(targetNorm, "石棺") {
		if room.Name == world.RoomCaveChamber && !room.Prop(world.PropCoffinOpened) {
			e.success("你用[撬棍]撬开了[石棺]！")
			e.say("里面是空的！旁边有些[金币]。")
			room.SetProp(world.PropCoffinOpened, true)
			e.logAction("撬开石棺")
			e.pres.Play("puzzle_solve")
			return
		}
	}

	e.warn(fmt.Sprintf("使用了 [%s]. 没什么反应。", item.DisplayName))
}

func (e *Engine) examineTarget(target string) {
	room := e.currentRoom()

	if item := e.Player.FindItem(target); item != nil {
		e.say(fmt.Sprintf("你仔细检查了 [%s]:", item.DisplayName))
		e.say(item.Description)
		if item.ArtName != "" {
			e.pres.Art(item.ArtName)
		}
		return
	}
	if item := room.FindItem(target); item != nil {
		e.say(fmt.Sprintf("你看到一个 [%s]:", item.DisplayName))
		e.say(item.Description)
		if item.ArtName != "" {
			e.pres.Art(item.ArtName)
		}
		return
	}
	if npc := room.FindNPC(target); npc != nil {
		e.say(fmt.Sprintf("你仔细观察 %s:", npc.Name))
		e.say(npc.Description)
		return
	}
	if monster := room.FindMonster(target); monster != nil && target != "" {
		e.say(fmt.Sprintf("你仔细观察 %s:", monster.Name))
		e.say(monster.Description)
		return
	}

	e.warn(fmt.Sprintf("这里没有 '%s' 可以检查。", target))
}

func (e *Engine) searchTarget(target string) {
	room := e.currentRoom()
	targetNorm := world.Normalize(target)

	if room.Name == world.RoomForestPath && strings.Contains(targetNorm, "枯叶") {
		if room.Prop(world.PropLeavesSearched) {
			e.warn("你已经搜索过枯叶堆了。")
			return
		}
		e.say("你在枯叶堆里翻找...")
		room.SetProp(world.PropLeavesSearched, true)
		key := e.World.Item(world.ItemRustyKey)
		if key != nil && !room.HasItem(key.Name) && !e.Player.HasItem(key.Name) {
			room.AddItem(key)
			e.success("在枯叶下，你发现了一把[生锈的钥匙]！")
			e.logAction("在枯叶堆找到生锈的钥匙")
			e.pres.Play("item_pickup")
		}
		return
	}

	if room.Name == world.RoomCellar && strings.Contains(targetNorm, "木箱") {
		if room.Prop(world.PropCratesSearched) {
			e.warn("你已经搜索过木箱了。")
			return
		}
		e.say("你搜索了木箱...")
		room.SetProp(world.PropCratesSearched, true)
		crowbar := e.World.Item(world.ItemCrowbar)
		if crowbar != nil && !room.HasItem(crowbar.Name) && !e.Player.HasItem(crowbar.Name) {
			room.AddItem(crowbar)
			e.success("在一个箱子里找到了一根[撬棍]！")
			e.logAction("在地下室木箱找到撬棍")
			e.pres.Play("item_pickup")
		}
		return
	}

	e.warn(fmt.Sprintf("你搜索了 %s，但什么也没找到。", target))
}

func (e *Engine) talkToNPC(name, topic string) {
	if name == "" {
		e.warn("和谁说话？格式: talk to [NPC] (about [话题])")
		return
	}
	room := e.currentRoom()
	npc := room.FindNPC(name)
	if npc == nil {
		e.errorMsg(fmt.Sprintf("这里没有 '%s' 可以对话。", name))
		return
	}

	line := npc.Talk(topic)
	e.dialogue(npc.Name, line)
	e.logAction("与 " + npc.Name + " 对话")
	e.pres.Speak(line, npc.Voice)

	if e.talkedNPCs == nil {
		e.talkedNPCs = make(map[string]bool)
	}
	e.talkedNPCs[npc.Name] = true
	if len(e.talkedNPCs) >= len(e.World.NPCs) && e.achievements.Unlock("social") {
		e.success("🏆 成就解锁：社交达人")
	}
}

func (e *Engine) unlockTarget(target, itemName string) {
	if target == "" || itemName == "" {
		e.warn("用什么解锁？格式: unlock [目标] with [物品]")
		return
	}
	room := e.currentRoom()
	item := e.Player.FindItem(itemName)
	if item == nil {
		e.errorMsg(fmt.Sprintf("你没有 [%s].", itemName))
		return
	}

	if room.Name == world.RoomCellarEntrance && strings.Contains(world.Normalize(target), "门") {
		if !room.Prop(world.PropDoorLocked) {
			e.warn("门已开。")
			return
		}
		if item.Name == world.Normalize(world.ItemRustyKey) {
			e.success("你用[生锈的钥匙]打开了[门]！")
			room.SetProp(world.PropDoorLocked, false)
			room.AddExit("下", world.RoomCellar)
			e.logAction("解锁地下室入口")
			e.completeObjective("intro_path", 1)
			e.pres.Play("door_unlock")
		} else {
			e.errorMsg(fmt.Sprintf("[%s] 打不开这扇门。", item.DisplayName))
		}
		return
	}

	e.errorMsg(fmt.Sprintf("不能用 [%s] 解锁 '%s'。", item.DisplayName, target))
}

func (e *Engine) openTarget(target string) {
	room := e.currentRoom()

	if room.Name == world.RoomCellarEntrance && strings.Contains(world.Normalize(target), "门") {
		if room.Prop(world.PropDoorLocked) {
			e.warn("门锁着。")
		} else {
			e.say("门已开。")
			e.pres.Play("door_open")
		}
		return
	}

	e.errorMsg(fmt.Sprintf("尝试打开 '%s' 失败。", target))
}

func (e *Engine) showInventory() {
	if len(e.Player.Inventory) == 0 {
		e.warn("你的物品栏是空的。")
		return
	}
	var b strings.Builder
	b.WriteString("物品栏:")
	for _, item := range e.Player.Inventory {
		fmt.Fprintf(&b, "\n  [%s] %s", item.DisplayName, item.Description)
	}
	fmt.Fprintf(&b, "\n生命值: %d/%d  等级: %d  经验: %d",
		e.Player.Health, e.Player.MaxHealth, e.Player.Level, e.Player.Experience)
	e.say(b.String())
}

func (e *Engine) showStats() {
	p := e.Player
	var b strings.Builder
	b.WriteString("=== 角色属性 ===")
	fmt.Fprintf(&b, "\n等级: %d  经验: %d/%d", p.Level, p.Experience, p.Level*100)
	fmt.Fprintf(&b, "\n生命: %d/%d", p.Health, p.MaxHealth)
	fmt.Fprintf(&b, "\n力量: %d  智力: %d  防御: %d", p.Strength, p.Intelligence, p.Defense)
	fmt.Fprintf(&b, "\n金币: %d  得分: %d", p.Gold, p.Score)
	if sheet, err := p.Sheet(); err == nil {
		fmt.Fprintf(&b, "\n护甲等级: %d", sheet.AC())
	} else {
		e.logger.Warn("character sheet unavailable", "error", err)
	}
	e.say(b.String())
}

func (e *Engine) showQuests() {
	if len(e.quests.Active) == 0 && len(e.quests.Completed) == 0 {
		e.warn("当前没有任务。")
		return
	}
	var b strings.Builder
	b.WriteString("=== 任务 ===")
	for _, q := range e.quests.Active {
		fmt.Fprintf(&b, "\n[进行中] %s (%s)\n  %s", q.Name, q.Progress(), q.Description)
		for i, obj := range q.Objectives {
			mark := "□"
			if q.Done[i] {
				mark = "■"
			}
			fmt.Fprintf(&b, "\n  %s %s", mark, obj)
		}
	}
	for _, q := range e.quests.Completed {
		fmt.Fprintf(&b, "\n[已完成] %s", q.Name)
	}
	e.say(b.String())
}

func (e *Engine) showHint() {
	room := e.currentRoom()
	hints := e.hints[room.Name]
	if len(hints) == 0 {
		hints = []string{"探索周围环境，寻找线索"}
	}
	e.pres.Message("提示: "+hints[e.rng.Intn(len(hints))], ui.StyleHint)
}

// mapOrder fixes the display order of rooms on the mini-map.
var mapOrder = []string{
	world.RoomCabin,
	world.RoomForestPath,
	world.RoomDeepForest,
	world.RoomCaveEntrance,
	world.RoomCaveChamber,
	world.RoomCellarEntrance,
	world.RoomCellar,
}

func (e *Engine) showMap() {
	var b strings.Builder
	b.WriteString("=== 地图 ===")
	for _, id := range mapOrder {
		room := e.World.Room(id)
		if room == nil {
			continue
		}
		switch {
		case id == e.Player.RoomID:
			fmt.Fprintf(&b, "\n▶ %s (当前位置)", room.DisplayName)
		case e.Player.HasVisited(id):
			fmt.Fprintf(&b, "\n  %s", room.DisplayName)
		default:
			b.WriteString("\n  ???")
		}
	}
	e.say(b.String())
}

func (e *Engine) showAchievements() {
	all := e.achievements.All()
	var b strings.Builder
	b.WriteString("=== 成就 ===")
	for _, a := range all {
		mark := "🔒"
		if a.Unlocked {
			mark = "🏆"
		}
		fmt.Fprintf(&b, "\n%s %s - %s", mark, a.Name, a.Description)
	}
	e.say(b.String())
	e.say(fmt.Sprintf("已解锁: %d/%d", e.achievements.UnlockedCount(), len(all)))
}

func (e *Engine) craftItem(arg string) {
	recipes := e.crafting.Recipes
	if arg == "" {
		var b strings.Builder
		b.WriteString("=== 合成配方 ===")
		for i, r := range recipes {
			ready := " "
			if e.crafting.CanCraft(r, e.Player) {
				ready = "✓"
			}
			fmt.Fprintf(&b, "\n[%d]%s %s: %s → %s", i+1, ready, r.Name,
				strings.Join(r.Materials, " + "), r.Result)
		}
		e.say(b.String())
		e.say("输入 'craft [编号]' 进行合成")
		return
	}

	idx := -1
	if _, err := fmt.Sscanf(arg, "%d", &idx); err != nil || idx < 1 || idx > len(recipes) {
		e.errorMsg("无效的选择")
		return
	}
	recipe := recipes[idx-1]
	result := e.crafting.Craft(recipe, e.Player, e.World)
	if result == nil {
		e.errorMsg("合成失败！缺少必要材料。")
		return
	}
	e.Player.AddToInventory(result)
	e.success(fmt.Sprintf("成功合成了 [%s]！", result.DisplayName))
	e.logAction("合成了 " + result.DisplayName)
	if e.crafting.CraftedCount >= 5 && e.achievements.Unlock("crafter") {
		e.success("🏆 成就解锁：工匠")
	}
	e.pres.Play("puzzle_solve")
}

func (e *Engine) showJournal() {
	entries := e.Player.History
	if len(entries) > 10 {
		entries = entries[len(entries)-10:]
	}
	if len(entries) == 0 {
		e.warn("暂时没有可显示的冒险记录。")
		return
	}
	var b strings.Builder
	b.WriteString("=== 冒险日志 ===")
	for _, entry := range entries {
		fmt.Fprintf(&b, "\n· %s", entry)
	}
	e.say(b.String())
}

func (e *Engine) rest() {
	room := e.currentRoom()
	if len(room.Monsters) > 0 {
		e.warn("有怪物在附近，无法休息！")
		return
	}
	if room.Name != world.RoomCabin {
		e.warn("这里不安全，无法放心休息。")
		return
	}

	healAmount := 15
	if room.Prop(world.PropFireplaceLit) {
		healAmount = 25
	}
	before := e.Player.Health
	e.Player.Heal(healAmount)
	e.success(fmt.Sprintf("你休息片刻，恢复了 %d 点生命值。", e.Player.Health-before))
	e.logAction("在小屋休息恢复体力")
	e.pres.Play("fire_crackle")
}

func (e *Engine) travel(arg string) {
	if arg == "" {
		var b strings.Builder
		b.WriteString("=== 快速旅行 ===\n已解锁的地点：")
		for i, id := range e.Player.VisitedRooms {
			if room := e.World.Room(id); room != nil {
				fmt.Fprintf(&b, "\n  [%d] %s", i+1, room.DisplayName)
			}
		}
		e.say(b.String())
		e.say("输入 'travel [编号或地点]' 进行传送")
		return
	}

	targetID := e.resolveTravelTarget(arg)
	if targetID == "" {
		e.errorMsg("你还没有去过那个地方！")
		return
	}
	if targetID == e.Player.RoomID {
		e.warn("你已经在这里了！")
		return
	}
	target := e.World.Room(targetID)
	if target == nil {
		e.errorMsg("目标地点不存在！")
		return
	}

	e.say("传送中...")
	e.Player.RoomID = targetID
	e.Player.VisitRoom(targetID, target.DisplayName)
	e.success("已传送到 " + target.DisplayName)
	e.logAction("快速旅行到 " + target.DisplayName)
	e.pres.Play("puzzle_solve")
	e.lookAround()
}

// resolveTravelTarget accepts a 1-based index into the visited list, a
// room id, or a room display name. Only visited rooms resolve.
func (e *Engine) resolveTravelTarget(arg string) string {
	var idx int
	if _, err := fmt.Sscanf(arg, "%d", &idx); err == nil {
		if idx >= 1 && idx <= len(e.Player.VisitedRooms) {
			return e.Player.VisitedRooms[idx-1]
		}
		return ""
	}
	norm := world.Normalize(arg)
	for _, id := range e.Player.VisitedRooms {
		room := e.World.Room(id)
		if room == nil {
			continue
		}
		if id == norm || world.Normalize(room.DisplayName) == norm {
			return id
		}
	}
	return ""
}

func (e *Engine) showHelp() {
	lines := []string{
		"=== 指令 ===",
		"go [方向] / n/s/e/w  向指定方向移动",
		"look / l             查看当前环境",
		"examine [目标] / x   仔细检查物品或NPC",
		"search [目标]        搜索特定位置",
		"take [物品] / t      拾取物品",
		"drop [物品] / d      丢弃物品",
		"inventory / i        查看物品栏",
		"use [物品] (on [目标]) / u  使用物品",
		"unlock [目标] with [物品]   用物品解锁",
		"open [目标]          打开某物",
		"attack [怪物]        攻击房间内的怪物",
		"talk to [NPC] (about [话题])  与NPC对话",
		"stats                查看角色属性",
		"quests               查看任务",
		"hint                 获取当前位置的提示",
		"map                  查看地图",
		"achievements         查看成就",
		"craft [编号]         查看配方或合成",
		"journal              查看最近的冒险记录",
		"rest                 在安全的地方休息恢复生命",
		"travel [地点]        快速旅行",
		"save [槽位]          保存游戏",
		"load [槽位]          读取游戏",
		"help / h             显示帮助",
		"quit / q             退出游戏",
	}
	e.say(strings.Join(lines, "\n"))
}

package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/xlzhou/treasure-hunter/internal/storage"
	"github.com/xlzhou/treasure-hunter/pkg/actor"
	"github.com/xlzhou/treasure-hunter/pkg/save"
	"github.com/xlzhou/treasure-hunter/pkg/ui"
	"github.com/xlzhou/treasure-hunter/pkg/world"
)

// Status is the session's terminal state.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
	StatusQuit
)

const autoSaveInterval = 10 // actions between auto-saves

// Engine drives one game session: it parses input lines, mutates the
// world/player state, and reports outcomes through the Presenter.
// It is single-threaded; one Execute call runs one command to
// completion before the next is accepted.
type Engine struct {
	World  *world.World
	Player *actor.Player

	pres   ui.Presenter
	store  storage.Storage
	logger *slog.Logger
	rng    *rand.Rand

	quests       *QuestSystem
	achievements *AchievementSystem
	crafting     *CraftingSystem

	status           Status
	combat           *CombatState
	lastAutoSave     int
	monstersDefeated int
	talkedNPCs       map[string]bool

	hints  map[string][]string
	flavor map[string][]string
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the random source, for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// NewEngine builds the canonical world and a fresh player. The store
// may be nil, in which case save/load/auto-save are unavailable.
func NewEngine(pres ui.Presenter, store storage.Storage, logger *slog.Logger, opts ...Option) (*Engine, error) {
	w := world.NewWorld()
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("world validation failed: %w", err)
	}

	e := &Engine{
		World:        w,
		Player:       actor.NewPlayer(world.RoomCabin),
		pres:         pres,
		store:        store,
		logger:       logger,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		quests:       NewQuestSystem(),
		achievements: NewAchievementSystem(),
		crafting:     NewCraftingSystem(),
		hints:        roomHints(),
		flavor:       flavorEvents(),
	}
	for _, opt := range opts {
		opt(e)
	}

	start := w.Room(world.RoomCabin)
	e.Player.VisitRoom(world.RoomCabin, start.DisplayName)
	for _, q := range newGameQuests() {
		e.quests.Add(q)
	}
	return e, nil
}

// SessionStatus returns the session's terminal state.
func (e *Engine) SessionStatus() Status {
	return e.status
}

// Running reports whether the session accepts more commands.
func (e *Engine) Running() bool {
	return e.status == StatusRunning
}

// InCombat reports whether a combat round prompt is pending.
func (e *Engine) InCombat() bool {
	return e.combat != nil
}

// Start shows the opening sequence: title, intro quest, the starting
// room, and the hermit's greeting.
func (e *Engine) Start() {
	e.say("=== 迷失的宝藏猎人 (The Lost Treasure Hunter) ===")
	e.success("欢迎来到《迷失的宝藏猎人》！输入 'help' 查看指令。")
	e.achievements.Unlock("first_steps")
	for _, q := range e.quests.Active {
		e.success("新任务：" + q.Name)
		e.say(q.Description)
	}
	e.lookAround()

	// The hermit opens with his worldview line.
	room := e.World.Room(e.Player.RoomID)
	if room != nil {
		if npc := room.FindNPC("斗桨先生"); npc != nil {
			e.say(fmt.Sprintf("%s站在小屋的阴影中，他缓缓开口：", npc.Name))
			line := npc.Talk("世界观")
			e.dialogue(npc.Name, line)
			e.pres.Speak(line, npc.Voice)
		}
	}
}

// Execute runs one input line to completion. User mistakes are reported
// through the presenter and return nil; only integrity failures (a
// dangling room id) surface as errors. A panic inside a handler is
// recovered so a content bug cannot crash the session.
func (e *Engine) Execute(ctx context.Context, line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("command panicked", "input", line, "panic", r)
			e.errorMsg("发生错误，指令未完成。")
		}
	}()

	if e.status != StatusRunning {
		e.warn("游戏已结束。")
		return nil
	}

	room := e.World.Room(e.Player.RoomID)
	if room == nil {
		e.errorMsg(fmt.Sprintf("错误：当前房间 '%s' 未找到！", e.Player.RoomID))
		e.status = StatusLost
		return fmt.Errorf("current room %q does not resolve", e.Player.RoomID)
	}

	if e.combat != nil {
		e.combatRound(line)
		e.checkGameState()
		e.maybeAutoSave(ctx)
		return nil
	}

	cmd := Parse(line, room)
	if cmd.Problem != "" {
		e.warn(cmd.Problem)
		return nil
	}

	switch cmd.Verb {
	case VerbNone:
		// Empty input re-prompts without side effects.
	case VerbGo:
		if cmd.Arg == "" {
			e.warn("去哪个方向？")
		} else {
			e.movePlayer(cmd.Arg)
		}
	case VerbLook:
		if cmd.Arg == "" {
			e.lookAround()
		} else {
			e.examineTarget(cmd.Arg)
		}
	case VerbExamine:
		if cmd.Arg == "" {
			e.warn("检查什么？")
		} else {
			e.examineTarget(cmd.Arg)
		}
	case VerbTake:
		if cmd.Arg == "" {
			e.warn("拿什么？")
		} else {
			e.takeItem(cmd.Arg)
		}
	case VerbDrop:
		if cmd.Arg == "" {
			e.warn("丢什么？")
		} else {
			e.dropItem(cmd.Arg)
		}
	case VerbUse:
		e.useItem(cmd.Arg, cmd.Object)
	case VerbInventory:
		e.showInventory()
	case VerbSearch:
		if cmd.Arg == "" {
			e.warn("搜索什么？")
		} else {
			e.searchTarget(cmd.Arg)
		}
	case VerbTalk:
		e.talkToNPC(cmd.Arg, cmd.Object)
	case VerbUnlock:
		e.unlockTarget(cmd.Arg, cmd.Object)
	case VerbOpen:
		if cmd.Arg == "" {
			e.warn("打开什么？")
		} else {
			e.openTarget(cmd.Arg)
		}
	case VerbAttack:
		e.startCombat(cmd.Arg)
	case VerbStats:
		e.showStats()
	case VerbQuests:
		e.showQuests()
	case VerbHint:
		e.showHint()
	case VerbMap:
		e.showMap()
	case VerbAchievements:
		e.showAchievements()
	case VerbCraft:
		e.craftItem(cmd.Arg)
	case VerbJournal:
		e.showJournal()
	case VerbRest:
		e.rest()
	case VerbTravel:
		e.travel(cmd.Arg)
	case VerbSave:
		e.saveGame(ctx, cmd.Arg)
	case VerbLoad:
		e.loadGame(ctx, cmd.Arg)
	case VerbHelp:
		e.showHelp()
	case VerbQuit:
		e.say("感谢游玩！再见。")
		e.status = StatusQuit
	case VerbUnknown:
		e.errorMsg(fmt.Sprintf("我不明白 '%s'. 输入 'help' 查看指令。", cmd.Raw))
	}

	e.checkGameState()
	e.maybeAutoSave(ctx)
	return nil
}

// checkGameState evaluates the win and loss conditions by re-reading
// current state. Called after every command.
func (e *Engine) checkGameState() {
	if e.status != StatusRunning {
		return
	}
	if e.Player.Health <= 0 {
		e.errorMsg("你的生命值耗尽了...游戏结束。")
		e.pres.Art("game_over")
		e.status = StatusLost
		return
	}
	if e.winConditionMet() {
		e.success("恭喜！你找到了远古神像并打开了石棺，揭开了宝藏的秘密！游戏胜利！")
		e.pres.Art("treasure_chest_open")
		e.pres.Play("puzzle_solve")
		e.status = StatusWon
	}
}

// winConditionMet is a pure conjunction over current state: standing in
// the treasure chamber, coffin opened, idol in hand.
func (e *Engine) winConditionMet() bool {
	room := e.World.Room(world.RoomCaveChamber)
	return e.Player.RoomID == world.RoomCaveChamber &&
		room != nil && room.Prop(world.PropCoffinOpened) &&
		e.Player.HasItem(world.ItemIdol)
}

func (e *Engine) maybeAutoSave(ctx context.Context) {
	if e.store == nil || e.status != StatusRunning {
		return
	}
	if e.Player.ActionsCount-e.lastAutoSave < autoSaveInterval {
		return
	}
	snap := save.Capture(e.World, e.Player)
	if err := e.store.Save(ctx, storage.AutoSaveSlot, snap); err != nil {
		e.logger.Warn("auto-save failed", "error", err)
		return
	}
	e.lastAutoSave = e.Player.ActionsCount
	e.dim("游戏已自动保存")
}

func (e *Engine) saveGame(ctx context.Context, arg string) {
	if e.store == nil {
		e.warn("存档不可用。")
		return
	}
	slot, ok := parseSlot(arg)
	if !ok {
		e.errorMsg("无效的槽位编号，可用槽位: 1-3")
		return
	}
	snap := save.Capture(e.World, e.Player)
	if err := e.store.Save(ctx, slot, snap); err != nil {
		e.logger.Error("save failed", "slot", slot, "error", err)
		e.errorMsg("保存失败！")
		return
	}
	e.success(fmt.Sprintf("游戏进度已保存到槽位 %d", slot))
	e.pres.Play("puzzle_solve")
}

func (e *Engine) loadGame(ctx context.Context, arg string) {
	if e.store == nil {
		e.warn("存档不可用。")
		return
	}
	slot, ok := parseSlot(arg)
	if !ok {
		e.errorMsg("无效的槽位编号，可用槽位: 1-3")
		return
	}
	snap, err := e.store.Load(ctx, slot)
	if err != nil {
		e.logger.Error("load failed", "slot", slot, "error", err)
		e.errorMsg("读取失败！")
		return
	}
	if snap == nil {
		e.warn(fmt.Sprintf("槽位 %d 没有可用的存档", slot))
		return
	}
	snap.Apply(e.World, e.Player)
	e.lastAutoSave = e.Player.ActionsCount
	e.success("游戏进度已成功读取！")
	e.pres.Play("puzzle_solve")
	e.lookAround()
}

func parseSlot(arg string) (int, bool) {
	if arg == "" {
		return storage.MinSlot, true
	}
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < storage.MinSlot || slot > storage.MaxSlot {
		return 0, false
	}
	return slot, true
}

// completeObjective advances a quest objective and pays out when the
// quest finishes.
func (e *Engine) completeObjective(questID string, index int) {
	for _, q := range e.quests.Active {
		if q.ID != questID {
			continue
		}
		if !q.CompleteObjective(index) {
			return
		}
		e.logAction(fmt.Sprintf("任务进度：%s - %s", q.Name, q.Objectives[index]))
		if q.Completed && e.quests.Complete(questID, e.Player) {
			e.success("任务完成：" + q.Name)
			if exp, ok := q.Rewards["experience"]; ok {
				e.say(fmt.Sprintf("获得 %d 点经验！", exp))
			}
			if gold, ok := q.Rewards["gold"]; ok {
				e.say(fmt.Sprintf("获得 %d 金币！", gold))
			}
			e.logAction("任务完成：" + q.Name)
		}
		return
	}
}

func (e *Engine) logAction(description string) {
	e.Player.RecordAction(description)
}

// Presenter shorthands.

func (e *Engine) say(text string)      { e.pres.Message(text, ui.StyleNormal) }
func (e *Engine) success(text string)  { e.pres.Message(text, ui.StyleSuccess) }
func (e *Engine) warn(text string)     { e.pres.Message(text, ui.StyleWarning) }
func (e *Engine) errorMsg(text string) { e.pres.Message(text, ui.StyleError) }
func (e *Engine) dim(text string)      { e.pres.Message(text, ui.StyleDim) }

func (e *Engine) dialogue(speaker, line string) {
	e.pres.Message(fmt.Sprintf("%s：「%s」", speaker, line), ui.StyleDialogue)
}

func roomHints() map[string][]string {
	return map[string][]string{
		world.RoomCabin:          {"尝试检查壁炉和桌子", "和斗桨先生对话了解更多信息", "别忘了拿走有用的物品"},
		world.RoomForestPath:     {"仔细搜索枯叶堆", "森林深处可能有秘密"},
		world.RoomCellarEntrance: {"你需要钥匙和光源", "门可以用钥匙解锁"},
		world.RoomCellar:         {"搜索木箱可能有惊喜", "神像看起来很重要"},
		world.RoomDeepForest:     {"仔细观察周围环境", "洞穴入口可能被隐藏了"},
		world.RoomCaveEntrance:   {"洞穴深处可能有宝藏", "注意墙上的符号"},
		world.RoomCaveChamber:    {"石棺需要工具才能打开", "这里就是最终目标"},
	}
}

func flavorEvents() map[string][]string {
	return map[string][]string{
		world.RoomForestPath: {
			"一阵风吹过，枯叶沙沙作响，隐约露出斑驳的石板。",
			"远处传来鸟鸣，又很快归于寂静。",
		},
		world.RoomCabin: {
			"尘土从屋梁落下，仿佛在催促你快些行动。",
			"斗桨先生的目光似乎在关注你的举动。",
		},
		world.RoomCaveEntrance: {
			"洞壁上的符号仿佛在微微发光，像是在呼吸。",
			"一股凉风拂过，你听到似有若无的回声。",
		},
		world.RoomCaveChamber: {
			"石棺旁的尘埃上有划痕，似乎有人来过。",
			"金币闪着暗淡的光，隐约映出你的身影。",
		},
	}
}

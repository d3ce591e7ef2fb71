package game

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlzhou/treasure-hunter/internal/storage"
	"github.com/xlzhou/treasure-hunter/pkg/ui"
	"github.com/xlzhou/treasure-hunter/pkg/world"
)

func newTestEngine(t *testing.T, store storage.Storage) (*Engine, *ui.Transcript) {
	t.Helper()
	tr := ui.NewTranscript()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := NewEngine(tr, store, log, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return e, tr
}

func run(t *testing.T, e *Engine, commands ...string) {
	t.Helper()
	ctx := context.Background()
	for _, c := range commands {
		require.NoError(t, e.Execute(ctx, c), "command %q", c)
	}
}

func TestEngine_Start(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	e.Start()

	assert.True(t, tr.Contains("迷失的宝藏猎人"))
	assert.True(t, tr.Contains("新任务：重燃火种"))
	assert.True(t, tr.Contains("废弃小屋"))
	assert.True(t, tr.Contains("斗桨先生"), "hermit greets on start")
	assert.True(t, e.Running())
}

func TestEngine_TakeAndDrop(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "take 火把")
	assert.True(t, e.Player.HasItem("火把"))
	assert.False(t, e.World.Room(world.RoomCabin).HasItem("火把"))
	assert.True(t, tr.Contains("你将 [火把] 加入了物品栏。"))

	run(t, e, "drop 火把")
	assert.False(t, e.Player.HasItem("火把"))
	assert.True(t, e.World.Room(world.RoomCabin).HasItem("火把"))

	run(t, e, "take 不存在的东西")
	assert.True(t, tr.Contains("这里没有 '不存在的东西'。"))
}

func TestEngine_LightTorch(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "take 火把", "use 火把 on 壁炉")

	assert.False(t, e.Player.HasItem(world.ItemTorch))
	assert.True(t, e.Player.HasItem(world.ItemLitTorch))
	assert.True(t, e.World.Room(world.RoomCabin).Prop(world.PropFireplaceLit))
	assert.True(t, tr.Contains("你用[壁炉]点燃了[火把]！"))

	// Lighting again is impossible: the unlit torch is gone.
	run(t, e, "use 点燃的火把 on 壁炉")
	assert.True(t, tr.Contains("没什么反应"))
}

func TestEngine_UseWithoutEffect(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "take 古老的地图", "use 古老的地图")
	assert.True(t, tr.Contains("使用了 [古老的地图]. 没什么反应。"))

	run(t, e, "use 撬棍")
	assert.True(t, tr.Contains("你没有 [撬棍]."))
}

func TestEngine_HealingPotion(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	e.Player.Health = 40

	run(t, e, "北", "北", "take 治疗药水", "use 治疗药水")

	assert.Equal(t, 90, e.Player.Health)
	assert.False(t, e.Player.HasItem(world.ItemPotion))
	assert.True(t, tr.Contains("你喝下治疗药水，好多了！"))
}

func TestEngine_CellarGates(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	// The way down is not an exit until the door is unlocked.
	run(t, e, "东", "下")
	assert.Equal(t, world.RoomCellarEntrance, e.Player.RoomID)
	assert.True(t, tr.Contains("我不明白 '下'"))
	_, ok := e.World.Room(world.RoomCellarEntrance).Exits["下"]
	assert.False(t, ok)

	// Fetch the key and unlock, but bring no light.
	run(t, e,
		"西", "北", "search 枯叶", "take 生锈的钥匙",
		"南", "东", "unlock 门 with 生锈的钥匙")
	assert.False(t, e.World.Room(world.RoomCellarEntrance).Prop(world.PropDoorLocked))
	assert.True(t, tr.Contains("你用[生锈的钥匙]打开了[门]！"))

	run(t, e, "下")
	assert.Equal(t, world.RoomCellarEntrance, e.Player.RoomID)
	assert.True(t, tr.Contains("太暗了，需要光源。"))

	// With the lit torch the way down opens.
	run(t, e, "西", "take 火把", "use 火把 on 壁炉", "东", "下")
	assert.Equal(t, world.RoomCellar, e.Player.RoomID)
}

func TestEngine_UnlockWrongItem(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "take 古老的地图", "东", "unlock 门 with 古老的地图")
	assert.True(t, tr.Contains("[古老的地图] 打不开这扇门。"))
	assert.True(t, e.World.Room(world.RoomCellarEntrance).Prop(world.PropDoorLocked))
}

func TestEngine_UnlockIdempotent(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e,
		"北", "search 枯叶", "take 生锈的钥匙", "南",
		"东", "unlock 门 with 生锈的钥匙", "unlock 门 with 生锈的钥匙")
	assert.True(t, tr.Contains("门已开。"))
}

func TestEngine_SearchOnce(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "北", "search 枯叶")
	assert.True(t, e.World.Room(world.RoomForestPath).HasItem(world.ItemRustyKey))
	assert.True(t, tr.Contains("在枯叶下，你发现了一把[生锈的钥匙]！"))

	run(t, e, "take 生锈的钥匙", "search 枯叶")
	assert.True(t, tr.Contains("你已经搜索过枯叶堆了。"))
	assert.False(t, e.World.Room(world.RoomForestPath).HasItem(world.ItemRustyKey),
		"the key does not respawn")
}

func TestEngine_SearchNothing(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	run(t, e, "search 桌子")
	assert.True(t, tr.Contains("你搜索了 桌子，但什么也没找到。"))
}

func TestEngine_Talk(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "talk to 斗桨先生 about 宝藏")
	assert.True(t, tr.Contains("秘宝"))

	tr.Reset()
	run(t, e, "talk to 斗桨先生 about 奇怪话题")
	assert.True(t, tr.Contains("心有所向"), "unknown topic falls back to default line")

	run(t, e, "talk to 无名氏")
	assert.True(t, tr.Contains("这里没有 '无名氏' 可以对话。"))
}

func TestEngine_CaveReveal(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "北", "进入洞穴")
	assert.Equal(t, world.RoomForestPath, e.Player.RoomID, "hidden cave is not an exit yet")

	run(t, e, "北")
	assert.True(t, tr.Contains("仔细观察后，你注意到一个被藤蔓遮掩的[洞穴入口]！"))
	assert.False(t, e.World.Room(world.RoomDeepForest).Prop(world.PropCaveHidden))

	run(t, e, "进入洞穴")
	assert.Equal(t, world.RoomCaveEntrance, e.Player.RoomID)
}

func TestEngine_Rest(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	e.Player.Health = 50

	run(t, e, "rest")
	assert.Equal(t, 65, e.Player.Health, "cold fireplace heals 15")

	run(t, e, "take 火把", "use 火把 on 壁炉", "rest")
	assert.Equal(t, 90, e.Player.Health, "lit fireplace heals 25")

	run(t, e, "北", "rest")
	assert.True(t, tr.Contains("这里不安全，无法放心休息。"))

	run(t, e, "北", "rest")
	assert.True(t, tr.Contains("有怪物在附近，无法休息！"))
}

func TestEngine_Travel(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "北", "travel 废弃小屋")
	assert.Equal(t, world.RoomCabin, e.Player.RoomID)
	assert.True(t, tr.Contains("已传送到 废弃小屋"))

	run(t, e, "travel 2")
	assert.Equal(t, world.RoomForestPath, e.Player.RoomID)

	run(t, e, "travel 阴暗的地下室")
	assert.True(t, tr.Contains("你还没有去过那个地方！"))

	run(t, e, "travel 森林小径")
	assert.True(t, tr.Contains("你已经在这里了！"))
}

func TestEngine_WinWalkthrough(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	e.Start()

	run(t, e,
		"take 火把",
		"use 火把 on 壁炉",
		"北",
		"search 枯叶",
		"take 生锈的钥匙",
		"南",
		"东",
		"unlock 门 with 生锈的钥匙",
		"下",
		"take 远古神像",
		"search 木箱",
		"take 撬棍",
		"上",
		"西",
		"北",
		"北",
		"进入洞穴",
		"深入洞穴",
		"use 撬棍 on 石棺",
	)

	assert.Equal(t, StatusWon, e.SessionStatus())
	assert.True(t, tr.Contains("游戏胜利"))
	assert.False(t, e.Running())

	// The session accepts no further commands.
	tr.Reset()
	run(t, e, "look")
	assert.True(t, tr.Contains("游戏已结束。"))
}

func TestEngine_WinNeedsAllConditions(t *testing.T) {
	e, _ := newTestEngine(t, nil)

	// In the chamber with the coffin open but no idol: not a win.
	e.Player.RoomID = world.RoomCaveChamber
	e.World.Room(world.RoomCaveChamber).SetProp(world.PropCoffinOpened, true)
	run(t, e, "look")
	assert.Equal(t, StatusRunning, e.SessionStatus())

	// Idol in hand completes the conjunction.
	e.Player.AddToInventory(e.World.Item(world.ItemIdol))
	run(t, e, "look")
	assert.Equal(t, StatusWon, e.SessionStatus())
}

func TestEngine_IntroQuestCompletes(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e,
		"take 火把", "use 火把 on 壁炉",
		"北", "search 枯叶", "take 生锈的钥匙", "南",
		"东", "unlock 门 with 生锈的钥匙", "下", "take 远古神像")

	assert.True(t, tr.Contains("任务完成：重燃火种"))
	require.Len(t, e.quests.Completed, 1)
	assert.Equal(t, "intro_path", e.quests.Completed[0].ID)
	assert.GreaterOrEqual(t, e.Player.Experience, 60)
	assert.GreaterOrEqual(t, e.Player.Score, 20)
}

func TestEngine_CombatVictory(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "北", "北")
	goldBefore := e.Player.Gold // includes the forest quest payout

	run(t, e, "attack 森林狼")
	assert.True(t, e.InCombat())
	assert.True(t, tr.Contains("战斗开始！你遭遇了 森林狼！"))

	for i := 0; e.InCombat() && i < 20; i++ {
		run(t, e, "攻击")
	}

	require.False(t, e.InCombat(), "the wolf falls within a bounded number of rounds")
	assert.True(t, e.Running(), "the player survives the wolf at full health")
	assert.Nil(t, e.World.Room(world.RoomDeepForest).FindMonster("森林狼"))
	assert.Equal(t, goldBefore+50, e.Player.Gold, "gold reward is attack power x5")
	assert.GreaterOrEqual(t, e.Player.Level, 2, "100 xp levels the player")
	assert.True(t, tr.Contains("你击败了 森林狼！"))
}

func TestEngine_CombatDefeat(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	e.Player.RoomID = world.RoomCaveChamber
	e.Player.Health = 1

	run(t, e, "attack 骷髅守卫")
	require.True(t, e.InCombat())
	run(t, e, "攻击")

	assert.Equal(t, StatusLost, e.SessionStatus())
	assert.True(t, tr.Contains("你被击败了..."))
	assert.True(t, tr.Contains("你的生命值耗尽了...游戏结束。"))
}

func TestEngine_CombatFlee(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	e.Player.Health = 10000 // survive any number of failed flee rounds
	e.Player.MaxHealth = 10000

	run(t, e, "北", "北", "attack")
	require.True(t, e.InCombat())

	for i := 0; e.InCombat() && i < 100; i++ {
		run(t, e, "逃跑")
	}
	assert.False(t, e.InCombat(), "a 50/50 flee succeeds within 100 attempts")
	assert.True(t, e.Running())
}

func TestEngine_CombatRoutesInput(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "北", "北", "attack")
	require.True(t, e.InCombat())

	// Ordinary verbs are not dispatched during combat.
	run(t, e, "inventory")
	assert.True(t, e.InCombat())
	assert.True(t, tr.Contains("输入 [攻击/逃跑]"))

	run(t, e, "attack")
	assert.False(t, tr.Contains("这里没有可以攻击的怪物。"),
		"attack inside combat resolves a round instead of re-dispatching")
}

func TestEngine_AttackNothing(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "attack")
	assert.True(t, tr.Contains("这里没有可以攻击的怪物。"))
	assert.False(t, e.InCombat())

	run(t, e, "北", "北", "attack 骷髅守卫")
	assert.True(t, tr.Contains("找不到怪物 '骷髅守卫'"))
	assert.False(t, e.InCombat())
}

func TestEngine_SaveLoadSlots(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewFileStorage(t.TempDir(), log)
	require.NoError(t, err)
	e, tr := newTestEngine(t, store)

	run(t, e, "take 火把", "save 2")
	assert.True(t, tr.Contains("游戏进度已保存到槽位 2"))

	run(t, e, "drop 火把", "北")
	assert.False(t, e.Player.HasItem("火把"))

	run(t, e, "load 2")
	assert.True(t, tr.Contains("游戏进度已成功读取！"))
	assert.True(t, e.Player.HasItem("火把"))
	assert.Equal(t, world.RoomCabin, e.Player.RoomID)

	run(t, e, "load 3")
	assert.True(t, tr.Contains("槽位 3 没有可用的存档"))

	run(t, e, "save 9")
	assert.True(t, tr.Contains("无效的槽位编号，可用槽位: 1-3"))
}

func TestEngine_AutoSave(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewFileStorage(t.TempDir(), log)
	require.NoError(t, err)
	e, tr := newTestEngine(t, store)

	// Each take counts twice (inventory + journal), each drop once.
	for i := 0; i < 4; i++ {
		run(t, e, "take 火把", "drop 火把")
	}

	assert.True(t, tr.Contains("游戏已自动保存"))
	snap, err := store.Load(context.Background(), storage.AutoSaveSlot)
	require.NoError(t, err)
	assert.NotNil(t, snap)
}

func TestEngine_SaveUnavailableWithoutStore(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	run(t, e, "save")
	assert.True(t, tr.Contains("存档不可用。"))
}

func TestEngine_Quit(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	run(t, e, "quit")
	assert.Equal(t, StatusQuit, e.SessionStatus())
	assert.False(t, e.Running())
}

func TestEngine_UnknownCommand(t *testing.T) {
	e, tr := newTestEngine(t, nil)
	run(t, e, "dance")
	assert.True(t, tr.Contains("我不明白 'dance'. 输入 'help' 查看指令。"))
}

func TestEngine_StatusCommands(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "stats")
	assert.True(t, tr.Contains("角色属性"))

	run(t, e, "quests")
	assert.True(t, tr.Contains("重燃火种"))

	run(t, e, "map")
	assert.True(t, tr.Contains("废弃小屋"))
	assert.True(t, tr.Contains("???"))

	run(t, e, "achievements")
	assert.True(t, tr.Contains("探险家"))

	run(t, e, "hint")
	assert.True(t, tr.Contains("提示: "))

	run(t, e, "journal")
	assert.True(t, tr.Contains("冒险日志"))

	run(t, e, "inventory")
	assert.True(t, tr.Contains("你的物品栏是空的。"))

	run(t, e, "help")
	assert.True(t, tr.Contains("指令"))
}

func TestEngine_Craft(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e, "craft")
	assert.True(t, tr.Contains("合成配方"))

	run(t, e, "craft 99")
	assert.True(t, tr.Contains("无效的选择"))

	run(t, e, "craft 2")
	assert.True(t, tr.Contains("合成失败！缺少必要材料。"))
}

func TestEngine_ExplorerAchievement(t *testing.T) {
	e, tr := newTestEngine(t, nil)

	run(t, e,
		"北", "search 枯叶", "take 生锈的钥匙", "南",
		"take 火把", "use 火把 on 壁炉",
		"东", "unlock 门 with 生锈的钥匙", "下", "上",
		"西", "北", "北", "进入洞穴", "深入洞穴")

	assert.True(t, tr.Contains("🏆 成就解锁：探险家"))
}

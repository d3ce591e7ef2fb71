package world

// Authored game content for 迷失的宝藏猎人 (The Lost Treasure Hunter).

// Canonical item and room names referenced by the engine's puzzle rules.
const (
	ItemRustyKey  = "生锈的钥匙"
	ItemOldMap    = "古老的地图"
	ItemTorch     = "火把"
	ItemLitTorch  = "点燃的火把"
	ItemCrowbar   = "撬棍"
	ItemPotion    = "治疗药水"
	ItemIdol      = "远古神像"
	ItemRope      = "绳子"
	ItemDustyBook = "布满灰尘的书"

	RoomCabin          = "cabin"
	RoomForestPath     = "forest_path"
	RoomCellarEntrance = "dark_cellar_entrance"
	RoomCellar         = "cellar"
	RoomDeepForest     = "deep_forest"
	RoomCaveEntrance   = "cave_entrance"
	RoomCaveChamber    = "cave_chamber"
)

// Room property flags.
const (
	PropFireplaceLit   = "fireplace_lit"
	PropTableSearched  = "table_searched"
	PropLeavesSearched = "leaves_searched"
	PropCratesSearched = "crates_searched"
	PropDoorLocked     = "door_locked"
	PropRequiresLight  = "requires_light"
	PropCaveHidden     = "cave_hidden"
	PropCoffinOpened   = "coffin_opened"
	PropTreasureFound  = "treasure_found"
	PropSymbolsRead    = "symbols_deciphered"
)

// NewWorld builds the canonical seven-room world. Called once per new
// game; a loaded save overwrites the mutable fields of this graph.
func NewWorld() *World {
	w := &World{
		Items: make(map[string]*Item),
		NPCs:  make(map[string]*NPC),
		Rooms: make(map[string]*Room),
	}

	for _, item := range []*Item{
		{Name: ItemRustyKey, DisplayName: "生锈的钥匙", Description: "一把看起来很旧的生锈铁钥匙。", Takeable: true, Type: ItemTypeKey},
		{Name: ItemOldMap, DisplayName: "古老的地图", Description: "一张羊皮纸地图。", Takeable: true, Type: ItemTypeDocument},
		{Name: ItemTorch, DisplayName: "火把", Description: "一个未点燃的火把。", Takeable: true,
			UseOn: "壁炉", EffectDescription: "火把被点燃了！", ArtName: "torch_art", Type: ItemTypeTool},
		{Name: ItemLitTorch, DisplayName: "点燃的火把", Description: "一个燃烧着的火把。",
			ArtName: "lit_torch_art", Type: ItemTypeTool},
		{Name: ItemCrowbar, DisplayName: "撬棍", Description: "一根结实的金属撬棍。", Takeable: true, Type: ItemTypeTool},
		{Name: ItemPotion, DisplayName: "治疗药水", Description: "一瓶红色发光的液体。", Takeable: true, Type: ItemTypeConsumable, Value: 50},
		{Name: ItemIdol, DisplayName: "远古神像", Description: "一个黑色石头雕刻的小神像。", Takeable: true, Type: ItemTypeTreasure, Value: 1000},
		{Name: ItemRope, DisplayName: "绳子", Description: "一捆结实的绳子。", Takeable: true, Type: ItemTypeTool},
		{Name: ItemDustyBook, DisplayName: "布满灰尘的书", Description: "一本厚重的古书。", Takeable: true, Type: ItemTypeDocument},
	} {
		item.Name = Normalize(item.Name)
		w.Items[item.Name] = item
	}

	mrDoujiang := &NPC{
		Name:        "斗桨先生",
		Description: "一位头戴斗笠、身披蓑衣的老者。他眼神深邃，手中总是稳稳地握着一根看似普通的船桨。",
		Voice:       "Ting-Ting",
		Dialogue: map[string]string{
			DefaultTopic: "年轻人，此地凶险，亦藏机缘。心有所向，不妨一问。",
			"世界观":        "这片土地，曾是古代文明的摇篮，星辰之力曾在此交汇。然盛极而衰，一场未知的灾变使得辉煌化为尘土，只余下被遗忘的传说和守护着秘密的遗迹。",
			"金句":         "流斗桨，莫问何处是归航；风波恶，心有航灯破万浪。年轻人，愿你的智慧如星辰指引，勇气如磐石坚定。",
			"宝藏":         "那远古的秘宝？呵呵，它既是无上智慧的钥匙，也可能是开启疯狂的魔盒。传说它藏匿于洞穴最深处，被复杂的机关和扭曲的意志所守护。",
			"关于你自己":      "吾乃此间一孤舟，一斗桨，渡人亦渡己。名号早已随风逝，唤我'斗桨'足矣。",
			"此地危险":       "危险？此地危机四伏，不仅有失落文明遗留的致命机关，更有因秘宝力量而扭曲的生灵徘徊。",
			"线索提示":       "万物皆有言，只待有心人。一卷古图，残破石碑，乃至风中低语，皆可能藏着通往真相的丝缕。",
			"火种的重要性":     "在这伸手不见五指的黑暗中，即便是微弱的火光，亦能成为指引方向的希望。",
			"星辰的低语":      "我曾于星夜静观天象，古老的星辰低语着一些被遗忘的名字，和即将到来的时代。或许是'张本意涵'？时间的长河会揭示一切奥秘。",
			"再见":         "去吧，愿你好运，年轻人。若有缘，自会再见。记住，选择比寻找更重要。",
		},
	}
	w.NPCs[mrDoujiang.Name] = mrDoujiang

	cabin := &Room{
		Name:        RoomCabin,
		DisplayName: "废弃小屋",
		Description: "你发现自己在一个摇摇欲坠的废弃小屋里。尘土飞扬，空气中弥漫着霉味。角落里有一个冰冷的[壁炉]。一张破旧的[桌子]放在房间中央。",
		Items:       []*Item{w.Items[ItemTorch], w.Items[ItemOldMap]},
		NPCs:        []*NPC{mrDoujiang},
		Properties: map[string]bool{
			"has_fireplace":   true,
			PropTableSearched: false,
			PropFireplaceLit:  false,
		},
		AmbientSound: "ambient_windy",
	}
	cabin.AddExit("北", RoomForestPath)
	cabin.AddExit("东", RoomCellarEntrance)
	w.Rooms[RoomCabin] = cabin

	forestPath := &Room{
		Name:        RoomForestPath,
		DisplayName: "森林小径",
		Description: "你来到一条蜿蜒的森林小径。高大的树木遮天蔽日。地上散落着一些[枯叶]。",
		Properties: map[string]bool{
			PropLeavesSearched: false,
			"key_found_here":   true,
		},
		AmbientSound: "ambient_forest",
	}
	forestPath.AddExit("南", RoomCabin)
	forestPath.AddExit("北", RoomDeepForest)
	w.Rooms[RoomForestPath] = forestPath

	cellarEntrance := &Room{
		Name:        RoomCellarEntrance,
		DisplayName: "黑暗的地下室入口",
		Description: "这是一段通往地下的楼梯，非常黑暗。你需要[光源]才能下去。一扇[木门]紧闭着。",
		Properties: map[string]bool{
			PropRequiresLight: true,
			PropDoorLocked:    true,
		},
	}
	cellarEntrance.AddExit("西", RoomCabin)
	w.Rooms[RoomCellarEntrance] = cellarEntrance

	cellar := &Room{
		Name:        RoomCellar,
		DisplayName: "阴暗的地下室",
		Description: "地下室里阴冷潮湿。墙角堆放着一些破旧的[木箱]。一个[远古神像]放在一个石台上。",
		Items:       []*Item{w.Items[ItemIdol]},
		Properties: map[string]bool{
			PropCratesSearched:   false,
			"crowbar_found_here": true,
		},
		AmbientSound: "ambient_cave",
	}
	cellar.AddExit("上", RoomCellarEntrance)
	w.Rooms[RoomCellar] = cellar

	deepForest := &Room{
		Name:        RoomDeepForest,
		DisplayName: "森林深处",
		Description: "你越往森林深处走，光线就越暗。这里似乎有一个隐蔽的[洞穴入口]。",
		Items:       []*Item{w.Items[ItemPotion]},
		Properties: map[string]bool{
			PropCaveHidden: true,
		},
		Monsters:     []*NPC{newMonster("森林狼", "一头眼露凶光的灰狼，在树影间徘徊。", 35, 10, 4)},
		AmbientSound: "ambient_forest",
	}
	deepForest.AddExit("南", RoomForestPath)
	deepForest.AddExit("进入洞穴", RoomCaveEntrance)
	w.Rooms[RoomDeepForest] = deepForest

	caveEntrance := &Room{
		Name:        RoomCaveEntrance,
		DisplayName: "洞穴入口",
		Description: "这是一个黑暗的洞穴入口，里面吹出阵阵冷风。洞壁上刻着一些奇怪的[符号]。",
		Items:       []*Item{w.Items[ItemDustyBook]},
		Properties: map[string]bool{
			PropSymbolsRead: false,
		},
		Monsters:     []*NPC{newMonster("洞穴蝙蝠", "一只巨大的蝙蝠倒挂在洞顶，发出尖锐的叫声。", 20, 6, 2)},
		ArtOnEnter:   "cave_entrance",
		AmbientSound: "ambient_cave",
	}
	caveEntrance.AddExit("离开洞穴", RoomDeepForest)
	caveEntrance.AddExit("深入洞穴", RoomCaveChamber)
	w.Rooms[RoomCaveEntrance] = caveEntrance

	caveChamber := &Room{
		Name:        RoomCaveChamber,
		DisplayName: "洞穴密室",
		Description: "在洞穴的深处，你发现了一个宽敞的密室。密室中央有一个古老的[石棺]。旁边散落着一些[金币]。",
		Properties: map[string]bool{
			PropTreasureFound: false,
			PropCoffinOpened:  false,
		},
		Monsters:     []*NPC{newMonster("骷髅守卫", "一具披着残甲的骷髅，手持锈蚀的长剑守在石棺旁。", 50, 12, 6)},
		AmbientSound: "ambient_cave",
	}
	caveChamber.AddExit("离开密室", RoomCaveEntrance)
	w.Rooms[RoomCaveChamber] = caveChamber

	return w
}

func newMonster(name, description string, health, attack, defense int) *NPC {
	return &NPC{
		Name:         name,
		Description:  description,
		Health:       health,
		MaxHealth:    health,
		AttackPower:  attack,
		DefensePower: defense,
		Hostile:      true,
	}
}

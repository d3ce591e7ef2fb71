package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xlzhou/treasure-hunter/pkg/world"
)

func TestParse(t *testing.T) {
	room := &world.Room{Name: "test"}
	room.AddExit("北", "other")
	room.AddExit("进入洞穴", "cave")

	tests := []struct {
		name     string
		input    string
		expected Command
	}{
		{
			name:     "empty input",
			input:    "   ",
			expected: Command{Verb: VerbNone},
		},
		{
			name:     "go with direction",
			input:    "go 北",
			expected: Command{Verb: VerbGo, Arg: "北"},
		},
		{
			name:     "direction alias",
			input:    "n",
			expected: Command{Verb: VerbGo, Arg: "北"},
		},
		{
			name:     "bare exit label is implicit go",
			input:    "北",
			expected: Command{Verb: VerbGo, Arg: "北"},
		},
		{
			name:     "multiword exit label",
			input:    "进入洞穴",
			expected: Command{Verb: VerbGo, Arg: "进入洞穴"},
		},
		{
			name:     "take with item",
			input:    "take 火把",
			expected: Command{Verb: VerbTake, Arg: "火把"},
		},
		{
			name:     "take alias",
			input:    "t 火把",
			expected: Command{Verb: VerbTake, Arg: "火把"},
		},
		{
			name:     "get synonym",
			input:    "get 火把",
			expected: Command{Verb: VerbTake, Arg: "火把"},
		},
		{
			name:     "uppercase verb folds",
			input:    "TAKE 火把",
			expected: Command{Verb: VerbTake, Arg: "火把"},
		},
		{
			name:     "use with on clause",
			input:    "use 火把 on 壁炉",
			expected: Command{Verb: VerbUse, Arg: "火把", Object: "壁炉"},
		},
		{
			name:     "use without target",
			input:    "use 治疗药水",
			expected: Command{Verb: VerbUse, Arg: "治疗药水"},
		},
		{
			name:     "use with nothing",
			input:    "use",
			expected: Command{Verb: VerbUse, Problem: "用什么物品？"},
		},
		{
			name:     "use on without target",
			input:    "use 火把 on",
			expected: Command{Verb: VerbUse, Arg: "火把", Problem: "要用在什么上面？"},
		},
		{
			name:     "talk to npc",
			input:    "talk to 斗桨先生",
			expected: Command{Verb: VerbTalk, Arg: "斗桨先生", Object: "default"},
		},
		{
			name:     "talk to npc about topic",
			input:    "talk to 斗桨先生 about 宝藏",
			expected: Command{Verb: VerbTalk, Arg: "斗桨先生", Object: "宝藏"},
		},
		{
			name:     "talk without to",
			input:    "talk 斗桨先生",
			expected: Command{Verb: VerbTalk, Problem: "和谁说话？格式: talk to [NPC] (about [话题])"},
		},
		{
			name:     "unlock with item",
			input:    "unlock 门 with 生锈的钥匙",
			expected: Command{Verb: VerbUnlock, Arg: "门", Object: "生锈的钥匙"},
		},
		{
			name:     "unlock missing with",
			input:    "unlock 门",
			expected: Command{Verb: VerbUnlock, Problem: "用什么解锁？格式: unlock [目标] with [物品]"},
		},
		{
			name:     "bare look",
			input:    "look",
			expected: Command{Verb: VerbLook},
		},
		{
			name:     "look alias",
			input:    "l",
			expected: Command{Verb: VerbLook},
		},
		{
			name:     "examine alias with target",
			input:    "x 生锈的钥匙",
			expected: Command{Verb: VerbExamine, Arg: "生锈的钥匙"},
		},
		{
			name:     "inventory alias",
			input:    "i",
			expected: Command{Verb: VerbInventory},
		},
		{
			name:     "quit alias",
			input:    "q",
			expected: Command{Verb: VerbQuit},
		},
		{
			name:     "save with slot",
			input:    "save 2",
			expected: Command{Verb: VerbSave, Arg: "2"},
		},
		{
			name:     "unknown command",
			input:    "dance",
			expected: Command{Verb: VerbUnknown},
		},
		{
			name:     "fullwidth input folds",
			input:    "ｔａｋｅ 火把",
			expected: Command{Verb: VerbTake, Arg: "火把"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, room)
			assert.Equal(t, tt.expected.Verb, got.Verb)
			assert.Equal(t, tt.expected.Arg, got.Arg)
			assert.Equal(t, tt.expected.Object, got.Object)
			assert.Equal(t, tt.expected.Problem, got.Problem)
		})
	}
}

func TestParse_NilRoom(t *testing.T) {
	got := Parse("北", nil)
	assert.Equal(t, VerbUnknown, got.Verb)
}

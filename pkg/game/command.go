package game

import (
	"strings"

	"github.com/xlzhou/treasure-hunter/pkg/world"
)

// Verb identifies one of the fixed player actions. The dispatcher
// switches over this exhaustively, so an unknown verb cannot be
// silently ignored.
type Verb string

const (
	VerbNone Verb = "" // empty input, a no-op

	VerbGo           Verb = "go"
	VerbLook         Verb = "look"
	VerbExamine      Verb = "examine"
	VerbTake         Verb = "take"
	VerbDrop         Verb = "drop"
	VerbUse          Verb = "use"
	VerbInventory    Verb = "inventory"
	VerbSearch       Verb = "search"
	VerbTalk         Verb = "talk"
	VerbUnlock       Verb = "unlock"
	VerbOpen         Verb = "open"
	VerbAttack       Verb = "attack"
	VerbStats        Verb = "stats"
	VerbQuests       Verb = "quests"
	VerbHint         Verb = "hint"
	VerbMap          Verb = "map"
	VerbAchievements Verb = "achievements"
	VerbCraft        Verb = "craft"
	VerbJournal      Verb = "journal"
	VerbRest         Verb = "rest"
	VerbTravel       Verb = "travel"
	VerbSave         Verb = "save"
	VerbLoad         Verb = "load"
	VerbHelp         Verb = "help"
	VerbQuit         Verb = "quit"

	// VerbUnknown carries the raw input of an unrecognized command.
	VerbUnknown Verb = "unknown"
)

// Command is one parsed verb invocation. Arg is the primary operand
// (direction, item or NPC name); Object is the secondary operand of the
// keyword forms (use ... on, unlock ... with, talk to ... about).
// A non-empty Problem is a recoverable user error to show instead of
// dispatching.
type Command struct {
	Verb    Verb
	Arg     string
	Object  string
	Raw     string
	Problem string
}

// Short aliases expanded before parsing.
var aliases = map[string]string{
	"n": "go 北",
	"s": "go 南",
	"e": "go 东",
	"w": "go 西",
	"t": "take",
	"d": "drop",
	"u": "use",
	"x": "examine",
	"l": "look",
	"i": "inventory",
	"h": "help",
	"q": "quit",
}

var verbs = map[string]Verb{
	"go":           VerbGo,
	"move":         VerbGo,
	"look":         VerbLook,
	"examine":      VerbExamine,
	"take":         VerbTake,
	"get":          VerbTake,
	"drop":         VerbDrop,
	"use":          VerbUse,
	"inventory":    VerbInventory,
	"search":       VerbSearch,
	"talk":         VerbTalk,
	"unlock":       VerbUnlock,
	"open":         VerbOpen,
	"attack":       VerbAttack,
	"stats":        VerbStats,
	"quests":       VerbQuests,
	"hint":         VerbHint,
	"map":          VerbMap,
	"achievements": VerbAchievements,
	"craft":        VerbCraft,
	"journal":      VerbJournal,
	"rest":         VerbRest,
	"travel":       VerbTravel,
	"save":         VerbSave,
	"load":         VerbLoad,
	"help":         VerbHelp,
	"quit":         VerbQuit,
}

// Parse tokenizes one input line and resolves it to a Command. The
// current room lets a bare exit label act as an implicit "go". Input is
// width-folded and case-folded, so fullwidth letters and uppercase verbs
// both match.
func Parse(input string, room *world.Room) Command {
	raw := strings.TrimSpace(input)
	parts := strings.Fields(world.Normalize(raw))
	if len(parts) == 0 {
		return Command{Verb: VerbNone}
	}

	if expansion, ok := aliases[parts[0]]; ok {
		parts = append(strings.Fields(expansion), parts[1:]...)
	}

	action := parts[0]
	rest := parts[1:]

	// A bare exit label is an implicit "go".
	if room != nil && room.HasExit(action) {
		return Command{Verb: VerbGo, Arg: action, Raw: raw}
	}

	verb, ok := verbs[action]
	if !ok {
		return Command{Verb: VerbUnknown, Raw: raw}
	}

	cmd := Command{Verb: verb, Raw: raw}
	switch verb {
	case VerbUse:
		if len(rest) == 0 {
			cmd.Problem = "用什么物品？"
			return cmd
		}
		// Optional "on" clause: use <item> on <target>
		if idx := indexOf(rest, "on"); idx >= 0 {
			cmd.Arg = strings.Join(rest[:idx], " ")
			cmd.Object = strings.Join(rest[idx+1:], " ")
			if cmd.Arg == "" {
				cmd.Problem = "用什么物品？"
			} else if cmd.Object == "" {
				cmd.Problem = "要用在什么上面？"
			}
			return cmd
		}
		cmd.Arg = strings.Join(rest, " ")
		return cmd

	case VerbTalk:
		if len(rest) == 0 || rest[0] != "to" {
			cmd.Problem = "和谁说话？格式: talk to [NPC] (about [话题])"
			return cmd
		}
		rest = rest[1:]
		if idx := indexOf(rest, "about"); idx >= 0 {
			cmd.Arg = strings.Join(rest[:idx], " ")
			cmd.Object = strings.Join(rest[idx+1:], " ")
		} else {
			cmd.Arg = strings.Join(rest, " ")
			cmd.Object = world.DefaultTopic
		}
		if cmd.Arg == "" {
			cmd.Problem = "和谁说话？格式: talk to [NPC] (about [话题])"
		}
		return cmd

	case VerbUnlock:
		idx := indexOf(rest, "with")
		if idx < 0 {
			cmd.Problem = "用什么解锁？格式: unlock [目标] with [物品]"
			return cmd
		}
		cmd.Arg = strings.Join(rest[:idx], " ")
		cmd.Object = strings.Join(rest[idx+1:], " ")
		if cmd.Arg == "" || cmd.Object == "" {
			cmd.Problem = "用什么解锁？格式: unlock [目标] with [物品]"
		}
		return cmd

	default:
		cmd.Arg = strings.Join(rest, " ")
		return cmd
	}
}

func indexOf(tokens []string, keyword string) int {
	for i, t := range tokens {
		if t == keyword {
			return i
		}
	}
	return -1
}

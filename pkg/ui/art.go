package ui

// ASCII art shown for one-time room entries, item close-ups and game
// endings. Keyed by the art names the world content references.
var asciiArt = map[string]string{
	"cave_entrance": `
        .--""--.
       /        \
      |  O    O  |
      |   .__.   |
       \  ` + "`--'" + `  /
        ` + "`------'" + `
    一个深邃的洞穴入口若隐若现...
`,
	"treasure_chest_open": `
       ___________
      '._==_==_=_.'
      .-\:      /-.
     | (|:.     |) |
      '-|:.     |-'
        \::.    /
         '::. .'
           ) (
         _.' '._
        '-------'
    宝箱敞开着，闪耀着金光！
`,
	"game_over": `
    ██████╗  █████╗ ███╗   ███╗ ███████╗
    ██╔══██╗██╔══██╗████╗ ████║ ██╔════╝
    ██║  ██║███████║██╔████╔██║ █████╗
    ██║  ██║██╔══██║██║╚██╔╝██║ ██╔══╝
    ██████╔╝██║  ██║██║ ╚═╝ ██║ ███████╗
    ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝ ╚══════╝
`,
	"torch_art": `
          ()
         ▐▐▐▐
        ▐▐███▌▌
        ███████
         █████
          ███
          ███
           V
    这是一支普通的火把。
`,
	"lit_torch_art": `
      _(火焰)_
     (火焰)(_(火焰)_)(火焰)
    (火焰)(火焰)(火焰)(火焰)(火焰)
      ▐▐▐▐▐
      █████
      █████
     VVVVV
    火把熊熊燃烧着，发出噼啪声。
`,
	"door_closed_art": `
    ┎-----┒
    ┃  == ┃
    ┃  || ┃
    ┃  == ┃
    ┖-----┚
    一扇紧闭的门。
`,
	"fireplace_cold_art": `
      ,--''''--.
     /          \
    |            |
     \  ______  /
      ` + "`-|____|-'" + `
    一个冰冷的壁炉。
`,
	"fireplace_lit_art": `
     _(火焰)_
    (火焰)(_(火焰)_)(火焰)
   ,--''''--.
  /          \
 | (火焰)(火焰)(火焰)  |
  \  ______  /
   ` + "`-|____|-'" + `
    壁炉里火焰跳动，很暖和。
`,
}

// LookupArt returns the art block for a name, or "" when unknown.
func LookupArt(name string) string {
	return asciiArt[name]
}

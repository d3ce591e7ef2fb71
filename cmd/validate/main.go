// Command validate checks the authored world content for structural
// problems: exits pointing at undefined rooms, items placed outside
// the canonical table, NPCs without a default dialogue line. CI runs
// it so a content edit cannot ship a broken graph.
package main

import (
	"fmt"
	"os"

	"github.com/xlzhou/treasure-hunter/pkg/world"
)

func main() {
	w := world.NewWorld()
	if err := w.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("World content is valid: %d rooms, %d items, %d NPCs\n",
		len(w.Rooms), len(w.Items), len(w.NPCs))
}

package ui

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_RecordsInOrder(t *testing.T) {
	tr := NewTranscript()
	tr.Message("你好", StyleNormal)
	tr.Play("footsteps_stone")
	tr.Speak("台词", "Ting-Ting")
	tr.Art("cave_entrance")
	tr.Message("再见", StyleDim)

	assert.Len(t, tr.Entries, 5)
	assert.Equal(t, []string{"你好", "再见"}, tr.Messages())
	assert.True(t, tr.Contains("你好"))
	assert.False(t, tr.Contains("不存在"))

	tr.Reset()
	assert.Empty(t, tr.Entries)
}

func TestTerminal_WrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	term := NewTerminal(&buf, 20, log)

	term.Message("a long line of english words that must wrap somewhere", StyleNormal)
	out := buf.String()
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60, "wrapped lines stay near the width budget")
	}
	assert.Greater(t, strings.Count(out, "\n"), 1, "the line wrapped")
}

func TestLookupArt(t *testing.T) {
	assert.NotEmpty(t, LookupArt("cave_entrance"))
	assert.NotEmpty(t, LookupArt("game_over"))
	assert.Empty(t, LookupArt("no_such_art"))
}

package ui

import "strings"

// Entry is one recorded presenter call.
type Entry struct {
	Kind  string // "message", "play", "speak", "art"
	Text  string
	Style Style
	Cue   string
	Voice string
}

// Transcript records presenter calls in order. The TUI reads it to build
// its viewport content; tests read it to assert on game output.
type Transcript struct {
	Entries []Entry
}

var _ Presenter = (*Transcript)(nil)

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (tr *Transcript) Message(text string, style Style) {
	tr.Entries = append(tr.Entries, Entry{Kind: "message", Text: text, Style: style})
}

func (tr *Transcript) Play(cue string) {
	tr.Entries = append(tr.Entries, Entry{Kind: "play", Cue: cue})
}

func (tr *Transcript) Speak(text, voice string) {
	tr.Entries = append(tr.Entries, Entry{Kind: "speak", Text: text, Voice: voice})
}

func (tr *Transcript) Art(name string) {
	tr.Entries = append(tr.Entries, Entry{Kind: "art", Cue: name})
}

// Messages returns just the message texts, in order.
func (tr *Transcript) Messages() []string {
	var out []string
	for _, e := range tr.Entries {
		if e.Kind == "message" {
			out = append(out, e.Text)
		}
	}
	return out
}

// Contains reports whether any recorded message contains the substring.
func (tr *Transcript) Contains(substr string) bool {
	for _, e := range tr.Entries {
		if e.Kind == "message" && strings.Contains(e.Text, substr) {
			return true
		}
	}
	return false
}

// Reset clears the recorded entries.
func (tr *Transcript) Reset() {
	tr.Entries = tr.Entries[:0]
}

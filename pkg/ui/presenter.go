package ui

// Style names a rendering treatment for a message. The engine picks the
// style; what it looks like is entirely up to the Presenter.
type Style string

const (
	StyleNormal   Style = "normal"
	StyleSuccess  Style = "success"
	StyleWarning  Style = "warning"
	StyleError    Style = "error"
	StyleDim      Style = "dim"
	StyleDialogue Style = "dialogue"
	StyleHint     Style = "hint"
	StyleCombat   Style = "combat"
)

// Presenter is the boundary between the game core and any rendering or
// audio backend. All calls are fire-and-forget: nothing returns a value
// the core depends on, and ordering is the only guarantee the core
// expects.
type Presenter interface {
	// Message displays one line of game text with a style.
	Message(text string, style Style)
	// Play triggers a named sound cue.
	Play(cue string)
	// Speak reads text aloud in the named voice.
	Speak(text, voice string)
	// Art shows a named piece of static art.
	Art(name string)
}

package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))               // green
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))              // yellow
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))              // red
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dialogueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))               // teal
	combatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	artStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

func styleFor(s Style) lipgloss.Style {
	switch s {
	case StyleSuccess:
		return successStyle
	case StyleWarning:
		return warningStyle
	case StyleError:
		return errorStyle
	case StyleDim:
		return dimStyle
	case StyleDialogue:
		return dialogueStyle
	case StyleHint:
		return hintStyle
	case StyleCombat:
		return combatStyle
	default:
		return normalStyle
	}
}

// Styled renders text with the lipgloss treatment mapped to s. The TUI
// uses it to render transcript entries with the same palette as the
// plain terminal presenter.
func Styled(text string, s Style) string {
	return styleFor(s).Render(text)
}

// StyledArt renders a named piece of art, or "" when unknown.
func StyledArt(name string) string {
	art := LookupArt(name)
	if art == "" {
		return ""
	}
	return artStyle.Render(art)
}

// Terminal renders game output to a writer with lipgloss styling.
// Sound and speech cues have no terminal rendering; they are logged at
// debug level so scripted runs can still observe them.
type Terminal struct {
	w      io.Writer
	width  int
	logger *slog.Logger
}

var _ Presenter = (*Terminal)(nil)

// NewTerminal creates a terminal presenter wrapping text at width.
func NewTerminal(w io.Writer, width int, logger *slog.Logger) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{w: w, width: width, logger: logger}
}

func (t *Terminal) Message(text string, style Style) {
	wrapped := wordwrap.String(text, t.width)
	fmt.Fprintln(t.w, styleFor(style).Render(wrapped))
}

func (t *Terminal) Play(cue string) {
	t.logger.Debug("sound cue", "cue", cue)
}

func (t *Terminal) Speak(text, voice string) {
	t.logger.Debug("speech cue", "voice", voice, "chars", len(text))
}

func (t *Terminal) Art(name string) {
	if art := LookupArt(name); art != "" {
		fmt.Fprintln(t.w, artStyle.Render(art))
	}
}

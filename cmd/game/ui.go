package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/xlzhou/treasure-hunter/pkg/game"
	"github.com/xlzhou/treasure-hunter/pkg/ui"
)

const placeholderText = "输入指令..."

// GameUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	engine     *game.Engine
	transcript *ui.Transcript
	logger     *slog.Logger

	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int

	showQuitModal bool
}

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

// NewGameUI wires the engine to a transcript the viewport renders from.
// The engine's opening sequence has already run, so the transcript
// starts non-empty.
func NewGameUI(engine *game.Engine, transcript *ui.Transcript, logger *slog.Logger) GameUI {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return GameUI{
		engine:       engine,
		transcript:   transcript,
		logger:       logger,
		textarea:     ta,
		gameViewport: gameVp,
		metaViewport: metaVp,
	}
}

// writeGameContent renders the transcript into the viewport at the
// current width. Entries carry their style; user input lines were
// recorded as dim messages prefixed with "> ".
func (m *GameUI) writeGameContent() {
	gameWidth := m.gameViewport.Width - 6
	if gameWidth < 20 {
		gameWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("迷失的宝藏猎人") + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", gameWidth-6)) + "\n\n")

	for _, entry := range m.transcript.Entries {
		switch entry.Kind {
		case "message":
			if strings.HasPrefix(entry.Text, "> ") {
				content.WriteString(playerStyle.Render(entry.Text) + "\n")
				continue
			}
			content.WriteString(ui.Styled(wordwrap.String(entry.Text, gameWidth), entry.Style) + "\n")
		case "art":
			if art := ui.StyledArt(entry.Cue); art != "" {
				content.WriteString(art + "\n")
			}
		}
	}

	m.gameViewport.SetContent(content.String())
	m.gameViewport.GotoBottom()
}

func (m *GameUI) writeMetadata() {
	p := m.engine.Player
	room := m.engine.World.Room(p.RoomID)

	var content strings.Builder
	content.WriteString(titleStyle.Render("冒险者") + "\n\n")
	if room != nil {
		content.WriteString("位置:\n" + room.DisplayName + "\n\n")
	}
	content.WriteString(fmt.Sprintf("生命: %d/%d\n", p.Health, p.MaxHealth))
	content.WriteString(fmt.Sprintf("等级: %d  经验: %d\n", p.Level, p.Experience))
	content.WriteString(fmt.Sprintf("金币: %d  得分: %d\n\n", p.Gold, p.Score))
	content.WriteString(fmt.Sprintf("物品: %d 件\n\n", len(p.Inventory)))

	content.WriteString("按键:\n")
	content.WriteString("• Enter: 执行指令\n")
	content.WriteString("• Ctrl+C / Esc: 退出\n")
	content.WriteString("• help: 指令一览\n")

	m.metaViewport.SetContent(content.String())
}

func (m GameUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.gameViewport, vpCmd = m.gameViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		gameWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - gameWidth - 6

		m.gameViewport.Width = gameWidth - 2
		m.gameViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(gameWidth - 4)

		m.ready = true
		m.writeGameContent()
		m.writeMetadata()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}

			m.transcript.Message("> "+input, ui.StyleDim)
			if err := m.engine.Execute(context.Background(), input); err != nil {
				m.logger.Error("command failed", "error", err)
			}
			m.writeGameContent()
			m.writeMetadata()

			if m.engine.SessionStatus() == game.StatusQuit {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y", "是":
				return m, tea.Quit
			case "n", "N", "否":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("退出游戏？"))
	content.WriteString("\n\n")
	content.WriteString("你确定要退出游戏吗？未保存的进度会丢失。")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Y 退出，N 继续，Ctrl+C 强制退出"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	gameWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - gameWidth - 6

	gamePanel := gamePanelStyle.Width(gameWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.gameViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", gameWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, metaPanel)
}

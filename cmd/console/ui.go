package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/character-sim/internal/config"
	"github.com/jwebster45206/character-sim/pkg/command"
	"github.com/muesli/reflow/wordwrap"
)

const (
	Title           = "TRAINING GROUNDS"
	PlaceHolderText = "attack, defence, special or skip..."
)

type entryKind int

const (
	entryUser entryKind = iota
	entryResult
	entrySystem
)

type logEntry struct {
	kind entryKind
	text string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config       *config.Config
	session      *command.Session
	logViewport  viewport.Model
	statViewport viewport.Model
	textarea     textarea.Model
	entries      []logEntry
	ready        bool
	width        int
	height       int

	// Quit confirmation state
	showQuitModal bool
}

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	statPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

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

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewConsoleUI(cfg *config.Config, session *command.Session) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 64
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	statVp := viewport.New(20, 20)

	m := ConsoleUI{
		config:       cfg,
		session:      session,
		textarea:     ta,
		logViewport:  logVp,
		statViewport: statVp,
		entries: []logEntry{
			{kind: entrySystem, text: session.Character.Describe()},
			{kind: entrySystem, text: command.Help()},
		},
	}
	if cfg != nil && cfg.Seed != 0 {
		m.entries = append(m.entries, logEntry{kind: entrySystem, text: fmt.Sprintf("Dice are seeded with %d.", cfg.Seed)})
	}
	m.writeLogContent()
	m.statViewport.SetContent(writeStats(session))
	return m
}

func writeStats(s *command.Session) string {
	c := s.Character
	a := c.Archetype()
	attack := a.AttackSpan()
	defence := a.DefenceSpan()

	var content strings.Builder
	content.WriteString(titleStyle.Render("CHARACTER") + "\n\n")

	content.WriteString("Name:\n")
	content.WriteString(c.Name() + "\n\n")

	content.WriteString("Class:\n")
	content.WriteString(a.Name + "\n\n")

	content.WriteString("Stamina:\n")
	content.WriteString(fmt.Sprintf("%d/%d\n\n", c.Actor().HP(), c.Actor().MaxHP()))

	content.WriteString("Attack:\n")
	content.WriteString(fmt.Sprintf("%d to %d\n\n", attack.Lo, attack.Hi))

	content.WriteString("Defence:\n")
	content.WriteString(fmt.Sprintf("%d to %d\n\n", defence.Lo, defence.Hi))

	content.WriteString("Special:\n")
	content.WriteString(fmt.Sprintf("%s %d\n\n", a.SpecialSkill, a.SpecialBonus))

	content.WriteString("Actions:\n")
	content.WriteString(fmt.Sprintf("%d total\n", s.Turns))
	if s.Last != command.CmdNone {
		content.WriteString(fmt.Sprintf("last: %s\n", s.Last))
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /help: Help\n")

	return content.String()
}

// writeLogContent rebuilds the log for the current viewport width
func (m *ConsoleUI) writeLogContent() {
	logWidth := m.logViewport.Width - 6 // Account for left(3) + right(3) padding
	if logWidth < 10 {
		logWidth = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(Title) + "\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", logWidth)) + "\n\n")

	for _, e := range m.entries {
		switch e.kind {
		case entryUser:
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(e.text, logWidth-5) + "\n\n")
		case entryResult:
			content.WriteString(resultStyle.Render(wordwrap.String(e.text, logWidth)) + "\n\n")
		case entrySystem:
			content.WriteString(systemStyle.Render(wordwrap.String(e.text, logWidth)) + "\n\n")
		}
	}

	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logWidth := int(float64(m.width)*0.75) - 4
		statWidth := m.width - logWidth - 6

		m.logViewport.Width = logWidth - 2
		m.logViewport.Height = m.height - 5
		m.statViewport.Width = statWidth - 2
		m.statViewport.Height = m.height - 4
		m.textarea.SetWidth(logWidth - 4)

		m.ready = true
		m.writeLogContent()

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
			if strings.HasPrefix(input, "/") {
				return m.handleSlashCommand(input)
			}
			return m.dispatch(input)
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// dispatch runs input through the command loop. Unknown input is dropped
// without output, matching the plain console.
func (m ConsoleUI) dispatch(input string) (tea.Model, tea.Cmd) {
	res := command.Dispatch(m.session, input)
	if !res.Handled {
		return m, nil
	}
	if res.Done {
		return m, tea.Quit
	}

	m.entries = append(m.entries,
		logEntry{kind: entryUser, text: input},
		logEntry{kind: entryResult, text: res.Message},
	)
	m.writeLogContent()
	m.statViewport.SetContent(writeStats(m.session))
	return m, nil
}

func (m ConsoleUI) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/help":
		m.entries = append(m.entries, logEntry{kind: entrySystem, text: command.Help()})
		m.writeLogContent()
	case "/quit", "/skip":
		return m, tea.Quit
	}
	return m, nil
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Stop Training?"))
	content.WriteString("\n\n")
	content.WriteString(fmt.Sprintf("%s has trained %d times.", m.session.Character.Name(), m.session.Turns))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	logWidth := int(float64(m.width)*0.75) - 4
	statWidth := m.width - logWidth - 6

	logPanel := logPanelStyle.Width(logWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.logViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(logWidth-4, 1))),
			m.textarea.View(),
		),
	)

	statPanel := statPanelStyle.Width(statWidth).Height(m.height - 2).Render(
		m.statViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, statPanel)
}

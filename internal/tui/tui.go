package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/balatro-advisor/internal/advisor"
	"github.com/lox/balatro-advisor/internal/display"
	"github.com/lox/balatro-advisor/internal/scenario"
	"github.com/lox/balatro-advisor/poker"
)

// Mode is the screen the demo is showing
type Mode int

const (
	ModeMenu Mode = iota
	ModeResult
	ModeCustomHand
)

// alternativesShown is how many ranked plays an analysis lists
const alternativesShown = 5

const menuText = `1. Quick Test - Random Hand
2. Scenario 1: Easy Win (Flush available)
3. Scenario 2: Tough Decision (Multiple options)
4. Scenario 3: Critical Situation (Last hand)
5. Scenario 4: Enhanced Cards (Glass, Mult, etc.)
6. Custom Hand Entry
7. View Scoring Reference
8. Exit`

// Model is the Bubble Tea model for the interactive demo menu
type Model struct {
	advisor   *advisor.Advisor
	logger    *log.Logger
	rng       *rand.Rand
	scenarios []scenario.Scenario

	// UI components
	input    textinput.Model
	viewport viewport.Model

	// State
	mode     Mode
	content  string
	status   string
	quitting bool

	// Dimensions
	width  int
	height int
}

// NewModel creates the demo model. Scenarios are analysed with adv, random
// hands are dealt from rng.
func NewModel(adv *advisor.Advisor, rng *rand.Rand, logger *log.Logger) *Model {
	vp := viewport.New(80, 20)
	vp.SetContent("")

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		advisor:   adv,
		logger:    logger.WithPrefix("tui"),
		rng:       rng,
		scenarios: scenario.Builtins(),
		input:     ti,
		viewport:  vp,
	}
	m.showMenu()
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-2, 1)
		m.viewport.Height = max(msg.Height-6, 1)
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if m.mode == ModeMenu {
				m.quitting = true
				return m, tea.Quit
			}
			m.showMenu()
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			return m, m.submit(value)
		}

		if m.mode == ModeResult {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit acts on a line entered in the current mode
func (m *Model) submit(value string) tea.Cmd {
	switch m.mode {
	case ModeResult:
		m.showMenu()
		return nil
	case ModeCustomHand:
		m.analyseCustomHand(value)
		return nil
	}

	m.status = ""
	switch value {
	case "1":
		s := scenario.Random(m.rng, scenario.DefaultHandSize)
		m.showAnalysis("🎲 Random hand", s)
	case "2", "3", "4", "5":
		s := m.scenarios[int(value[0]-'2')]
		m.showAnalysis(fmt.Sprintf("📖 SCENARIO %c: %s", value[0]-1, s.Name), s)
	case "6":
		m.mode = ModeCustomHand
		m.input.Placeholder = "Ks Kh 7d 3c 2s (modifiers: As:glass, Kd:poly)"
	case "7":
		m.showResult(display.ScoringReference(m.advisor.Calculator().Levels()))
	case "8":
		m.quitting = true
		return tea.Quit
	default:
		m.status = "❌ Invalid option. Please select 1-8."
	}
	return nil
}

func (m *Model) analyseCustomHand(value string) {
	hand, err := poker.ParseCards(value)
	if err == nil && len(hand) == 0 {
		err = fmt.Errorf("enter at least one card")
	}
	if err != nil {
		m.status = display.ErrorStyle.Render(err.Error())
		return
	}

	s := scenario.Scenario{
		Name:              "custom",
		Hand:              hand,
		TargetScore:       scenario.DefaultTargetScore,
		HandsRemaining:    scenario.DefaultHandsRemaining,
		DiscardsRemaining: scenario.DefaultDiscardsRemaining,
		Ante:              scenario.DefaultAnte,
		Money:             scenario.DefaultMoney,
	}
	m.showAnalysis("🛠 Custom hand", s)
}

// showAnalysis renders the game state, recommendation and top plays for s
func (m *Model) showAnalysis(title string, s scenario.Scenario) {
	state := s.GameState()
	rec, err := m.advisor.Recommend(state.Hand, state.TargetScore, state.HandsRemaining, state.DiscardsRemaining)
	if err != nil {
		m.logger.Error("Failed to analyse hand", "scenario", s.Name, "error", err)
		m.status = display.ErrorStyle.Render(err.Error())
		m.showMenu()
		return
	}
	plays, err := m.advisor.Alternatives(state.Hand)
	if err != nil {
		m.status = display.ErrorStyle.Render(err.Error())
		m.showMenu()
		return
	}

	var b strings.Builder
	b.WriteString(display.HeaderStyle.Render(title) + "\n")
	if s.Description != "" {
		b.WriteString(display.InfoStyle.Render(s.Description) + "\n")
	}
	b.WriteString("\n" + display.GameState(state) + "\n")
	b.WriteString(display.Recommendation(rec) + "\n\n")
	b.WriteString(display.LabelStyle.Render(fmt.Sprintf("📊 TOP %d ALTERNATIVE PLAYS:", alternativesShown)) + "\n\n")
	b.WriteString(display.Plays(plays, alternativesShown))
	m.showResult(b.String())
}

func (m *Model) showResult(content string) {
	m.mode = ModeResult
	m.content = content
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	m.input.Placeholder = "Press Enter to continue..."
}

func (m *Model) showMenu() {
	m.mode = ModeMenu
	m.content = menuText
	m.input.Placeholder = "Select option (1-8)"
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return "👋 Thanks for trying the Balatro advisor!\n"
	}

	header := display.HeaderStyle.Render("🃏 BALATRO ADVISOR")
	var body string
	switch m.mode {
	case ModeResult:
		body = m.viewport.View()
	case ModeCustomHand:
		body = display.LabelStyle.Render("🛠 CUSTOM HAND ENTRY") + "\nEnter cards separated by spaces."
	default:
		body = display.LabelStyle.Render("MAIN MENU") + "\n\n" + m.content
	}

	parts := []string{header, "", body, "", m.input.View()}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Mode returns the screen currently shown
func (m *Model) Mode() Mode {
	return m.mode
}

// Content returns the text of the current screen without the chrome
func (m *Model) Content() string {
	return m.content
}

// Status returns the last status or error message
func (m *Model) Status() string {
	return m.status
}

// Quitting reports whether the user asked to leave
func (m *Model) Quitting() bool {
	return m.quitting
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))
)

// confirmModel is a one-question yes/no prompt.
type confirmModel struct {
	prompt   string
	answer   bool
	answered bool
}

func newConfirmModel(prompt string) confirmModel {
	return confirmModel{prompt: prompt}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.answer = true
		m.answered = true
		return m, tea.Quit
	case "n", "N", "esc", "q":
		m.answer = false
		m.answered = true
		return m, tea.Quit
	case "ctrl+c":
		m.answer = false
		m.answered = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("y/Enter to confirm, n/Esc to decline."))
	b.WriteString("\n")
	return b.String()
}

// Prompter asks the operator interactive questions. It satisfies the
// checkpoint.Confirmer interface.
type Prompter struct{}

// Confirm shows a yes/no prompt and blocks until the operator answers.
func (Prompter) Confirm(prompt string) (bool, error) {
	p := tea.NewProgram(newConfirmModel(prompt))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected prompt model %T", final)
	}
	return m.answer, nil
}

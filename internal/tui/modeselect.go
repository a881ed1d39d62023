package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/praxis-engineering/retrofit/internal/classify"
)

// modeItem implements list.Item for mode selection.
type modeItem struct {
	mode classify.Mode
	desc string
}

func (m modeItem) Title() string       { return string(m.mode) }
func (m modeItem) Description() string { return m.desc }
func (m modeItem) FilterValue() string { return string(m.mode) }

// modeSelectModel lets the operator accept the computed mode or
// override it.
type modeSelectModel struct {
	list      list.Model
	chosen    classify.Mode
	done      bool
	cancelled bool
}

func newModeSelectModel(computed classify.Mode, score int) modeSelectModel {
	items := []list.Item{
		modeItem{mode: classify.ModeLight, desc: "Minimal, production-safe install"},
		modeItem{mode: classify.ModeFull, desc: "Complete scaffolding for active development"},
	}
	// Computed mode first so Enter accepts the recommendation.
	if computed == classify.ModeFull {
		items[0], items[1] = items[1], items[0]
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 60, 10)
	l.Title = fmt.Sprintf("Install mode (score %d, computed %s)", score, computed)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return modeSelectModel{list: l}
}

func (m modeSelectModel) Init() tea.Cmd { return nil }

func (m modeSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(modeItem); ok {
				m.chosen = item.mode
				m.done = true
				return m, tea.Quit
			}
		case "esc", "q", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modeSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Enter to accept, arrows to override, Esc to abort."))
	b.WriteString("\n")
	return b.String()
}

// SelectMode presents the computed mode for confirmation or override.
// The returned bool is false when the operator aborted.
func (Prompter) SelectMode(computed classify.Mode, score int) (classify.Mode, bool, error) {
	p := tea.NewProgram(newModeSelectModel(computed, score))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("mode selection failed: %w", err)
	}

	m, ok := final.(modeSelectModel)
	if !ok {
		return "", false, fmt.Errorf("unexpected selection model %T", final)
	}
	if m.cancelled || !m.done {
		return "", false, nil
	}
	return m.chosen, true, nil
}

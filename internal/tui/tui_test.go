package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/praxis-engineering/retrofit/internal/classify"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestConfirmModel_Yes(t *testing.T) {
	m := newConfirmModel("Initialize repository?")

	updated, cmd := m.Update(keyMsg("y"))
	cm := updated.(confirmModel)

	if !cm.answered || !cm.answer {
		t.Errorf("answered=%v answer=%v, want true/true", cm.answered, cm.answer)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestConfirmModel_No(t *testing.T) {
	for _, key := range []string{"n", "esc", "q"} {
		t.Run(key, func(t *testing.T) {
			m := newConfirmModel("Stash changes?")
			updated, _ := m.Update(keyMsg(key))
			cm := updated.(confirmModel)

			if !cm.answered || cm.answer {
				t.Errorf("key %q: answered=%v answer=%v, want true/false", key, cm.answered, cm.answer)
			}
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	m := newConfirmModel("Proceed?")
	updated, _ := m.Update(keyMsg("x"))
	cm := updated.(confirmModel)

	if cm.answered {
		t.Error("unrelated key should not answer the prompt")
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := newConfirmModel("Proceed?")
	if m.View() == "" {
		t.Error("unanswered prompt should render")
	}

	updated, _ := m.Update(keyMsg("y"))
	if updated.(confirmModel).View() != "" {
		t.Error("answered prompt should render nothing")
	}
}

func TestModeSelect_AcceptComputed(t *testing.T) {
	m := newModeSelectModel(classify.ModeLight, 3)

	updated, _ := m.Update(keyMsg("enter"))
	mm := updated.(modeSelectModel)

	if !mm.done {
		t.Fatal("enter should complete selection")
	}
	if mm.chosen != classify.ModeLight {
		t.Errorf("chosen = %s, want computed mode first", mm.chosen)
	}
}

func TestModeSelect_ComputedFullFirst(t *testing.T) {
	m := newModeSelectModel(classify.ModeFull, 0)

	updated, _ := m.Update(keyMsg("enter"))
	mm := updated.(modeSelectModel)

	if mm.chosen != classify.ModeFull {
		t.Errorf("chosen = %s, want full", mm.chosen)
	}
}

func TestModeSelect_Override(t *testing.T) {
	m := newModeSelectModel(classify.ModeLight, 2)

	// Move to the second item, then accept.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, _ = updated.(modeSelectModel).Update(keyMsg("enter"))
	mm := updated.(modeSelectModel)

	if !mm.done {
		t.Fatal("selection should complete")
	}
	if mm.chosen != classify.ModeFull {
		t.Errorf("chosen = %s, want override full", mm.chosen)
	}
}

func TestModeSelect_Abort(t *testing.T) {
	m := newModeSelectModel(classify.ModeFull, 1)

	updated, _ := m.Update(keyMsg("esc"))
	mm := updated.(modeSelectModel)

	if !mm.cancelled {
		t.Error("esc should cancel selection")
	}
}

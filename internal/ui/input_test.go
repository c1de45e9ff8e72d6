package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/dragmenu/internal/menutree"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := NewModel(menutree.DefaultSeed(), Options{})
	handled := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("opt")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if m.sidebar.Filter != "opt" {
		t.Fatalf("expected filter 'opt', got %q", m.sidebar.Filter)
	}
	if pos := m.sidebar.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
	if !m.filterCursorDirty {
		t.Fatalf("expected caret move to be noted")
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := NewModel(menutree.DefaultSeed(), Options{})
	m.sidebar.SetFilter("abc", 3)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := m.sidebar.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := m.sidebar.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestArrowsFallThroughWithoutFilter(t *testing.T) {
	m := NewModel(menutree.DefaultSeed(), Options{})
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("left without a filter belongs to navigation")
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("right without a filter belongs to navigation")
	}
}

func TestFilterEditingKeys(t *testing.T) {
	h := newSeedHarness(t, Options{})
	h.Type("team 2")
	m := h.Model()
	if m.sidebar.Filter != "team 2" {
		t.Fatalf("expected filter 'team 2', got %q", m.sidebar.Filter)
	}

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.sidebar.Filter != "team " {
		t.Fatalf("expected ctrl+w to drop the last word, got %q", m.sidebar.Filter)
	}
	h.Keys(tea.KeyBackspace)
	if m.sidebar.Filter != "team" {
		t.Fatalf("expected backspace to drop one rune, got %q", m.sidebar.Filter)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	if m.sidebar.Filter != "" {
		t.Fatalf("expected ctrl+u to clear, got %q", m.sidebar.Filter)
	}
}

func TestFilterRevealsChildrenOfCollapsedGroups(t *testing.T) {
	h := newSeedHarness(t, Options{})
	h.Type("bill")

	m := h.Model()
	if m.sidebar.IndexOf("4") < 0 {
		t.Fatalf("expected Bill to be shown while filtering")
	}
	if m.sidebar.IndexOf("sub1") < 0 {
		t.Fatalf("expected Bill's group to stay visible")
	}

	h.Keys(tea.KeyEsc)
	if m.sidebar.Filter != "" || len(m.sidebar.Rows) != 5 {
		t.Fatalf("expected escape to clear the filter, rows=%d", len(m.sidebar.Rows))
	}
	if h.Quit() {
		t.Fatalf("escape that clears a filter must not quit")
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := NewModel(menutree.DefaultSeed(), Options{})
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}

package ui

import (
	"unicode"

	"github.com/atomicstack/dragmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.sidebar.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput offers a key press to the filter editor and reports whether
// it was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	s := m.sidebar
	switch msg.String() {
	case "ctrl+u":
		if s.Filter == "" {
			return false
		}
		before := s.FilterCursorPos()
		s.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.Cleared()
		m.syncViewport()
		return true
	case "ctrl+w":
		before := s.FilterCursorPos()
		if !s.DeleteFilterWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.WordBackspace(s.Filter)
		m.syncViewport()
		return true
	case "ctrl+a":
		before := s.FilterCursorPos()
		if !s.MoveFilterCursorStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(s.FilterCursor)
		return true
	case "ctrl+e":
		before := s.FilterCursorPos()
		if !s.MoveFilterCursorEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(s.FilterCursor)
		return true
	case "alt+b":
		before := s.FilterCursorPos()
		if !s.MoveFilterCursorWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(s.FilterCursor)
		return true
	case "alt+f":
		before := s.FilterCursorPos()
		if !s.MoveFilterCursorWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(s.FilterCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		if s.Filter == "" {
			return false
		}
		before := s.FilterCursorPos()
		if !s.MoveFilterCursorRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(s.FilterCursor)
		return true
	case tea.KeyRight:
		if s.Filter == "" {
			return false
		}
		before := s.FilterCursorPos()
		if !s.MoveFilterCursorRuneForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(s.FilterCursor)
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" {
		return false
	}
	before := m.sidebar.FilterCursorPos()
	if !m.sidebar.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(m.sidebar.Filter)
	m.syncViewport()
	return true
}

func (m *Model) removeFilterRune() bool {
	before := m.sidebar.FilterCursorPos()
	if !m.sidebar.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Backspace(m.sidebar.Filter)
	m.syncViewport()
	return true
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.sidebar.Filter
	if text == "" {
		runes := []rune("(type to search)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := m.sidebar.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

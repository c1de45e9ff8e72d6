package ui

import (
	"github.com/atomicstack/dragmenu/internal/logging/events"
	"github.com/atomicstack/dragmenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyTab {
		m.handleDragKey()
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "right":
		m.setCurrentOpen(true)
	case "left":
		m.setCurrentOpen(false)
	case "up":
		m.moveCursor(m.sidebar.MoveCursorStep(-1))
	case "down":
		m.moveCursor(m.sidebar.MoveCursorStep(1))
	case "pgup":
		m.moveCursor(m.sidebar.MoveCursorPageUp(m.maxVisibleItems()))
	case "pgdown":
		m.moveCursor(m.sidebar.MoveCursorPageDown(m.maxVisibleItems()))
	case "home":
		m.moveCursor(m.sidebar.MoveCursorHome())
	case "end":
		m.moveCursor(m.sidebar.MoveCursorEnd())
	}
	return nil
}

// handleEscapeKey unwinds one layer of state: an active drag, then the
// filter, and finally the program itself.
func (m *Model) handleEscapeKey() tea.Cmd {
	s := m.sidebar
	if drag, ok := s.EndDrag(); ok {
		events.Reorder.Cancel(drag.Key, events.CancelEscape)
		m.forceClearInfo()
		return nil
	}
	if s.Filter != "" {
		before := s.FilterCursorPos()
		s.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		events.Filter.Cleared()
		m.syncViewport()
		return nil
	}
	return tea.Quit
}

// handleEnterKey toggles the group under the cursor, or selects the leaf.
func (m *Model) handleEnterKey() tea.Cmd {
	row, ok := m.sidebar.Current()
	if !ok {
		return nil
	}
	if row.Group {
		m.toggleGroup(row.Key)
		return nil
	}
	events.UI.MenuSelect(row.Key, row.Title, m.sidebar.Filter)
	m.errMsg = ""
	return m.bus.Execute(command.Request{Key: row.Key, Label: row.Title, Handler: m.onSelect, Row: row})
}

func (m *Model) toggleGroup(key string) {
	if m.sidebar.Toggle(key) {
		events.UI.MenuToggle(key, m.sidebar.IsOpen(key))
		m.syncViewport()
	}
}

// setCurrentOpen expands or collapses the group under the cursor. On a child
// row, collapsing closes the owning group.
func (m *Model) setCurrentOpen(open bool) {
	s := m.sidebar
	row, ok := s.Current()
	if !ok {
		return
	}
	key := row.Key
	if !row.Group {
		parent := s.ParentIndex()
		if open || parent < 0 {
			return
		}
		key = s.Rows[parent].Key
	}
	if s.SetOpen(key, open) {
		events.UI.MenuToggle(key, open)
		m.syncViewport()
	}
}

func (m *Model) moveCursor(moved bool) {
	s := m.sidebar
	if moved {
		if row, ok := s.Current(); ok {
			events.UI.MenuCursor(s.Cursor, row.Key)
		}
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.sidebar.EnsureCursorVisible(m.maxVisibleItems())
}

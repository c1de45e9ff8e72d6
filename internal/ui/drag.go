package ui

import (
	"fmt"

	"github.com/atomicstack/dragmenu/internal/logging/events"
	"github.com/atomicstack/dragmenu/internal/menutree"
	tea "github.com/charmbracelet/bubbletea"
)

// handleDragKey picks up the row under the cursor, or drops the carried row
// onto it.
func (m *Model) handleDragKey() {
	if _, dragging := m.sidebar.Dragging(); dragging {
		if row, ok := m.sidebar.Current(); ok {
			m.dropOn(row.Key)
		}
		return
	}
	m.beginDrag()
}

func (m *Model) beginDrag() {
	drag, ok := m.sidebar.BeginDrag()
	if !ok {
		return
	}
	m.metrics.Drag()
	events.Reorder.Drag(drag.Key)
	m.errMsg = ""
	m.forceClearInfo()
}

// dropOn ends the drag over hoverKey and hands the gesture to the reorder
// engine. Drops the engine refuses leave the tree untouched.
func (m *Model) dropOn(hoverKey string) {
	drag, ok := m.sidebar.EndDrag()
	if !ok {
		return
	}
	if drag.Key == hoverKey {
		events.Reorder.Cancel(drag.Key, events.CancelSameRow)
		return
	}
	move := menutree.Plan(m.tree, drag.Key, hoverKey)
	m.lastMove = move
	m.metrics.Drop(move.Kind.String())
	if !move.Changes() {
		events.Reorder.Reject(drag.Key, hoverKey, move.Kind.String())
		return
	}
	events.Reorder.Drop(drag.Key, hoverKey, move.Kind.String())

	target := ""
	switch move.Kind {
	case menutree.MoveIntoEmptyGroup, menutree.MoveDemote, menutree.MoveAcrossGroups:
		target = m.tree[move.Drop.Top].Key
	}
	m.tree = menutree.Apply(m.tree, move)
	if target != "" {
		m.sidebar.Open[target] = true
	}
	m.sidebar.UpdateRows(m.tree.Rows(nil))
	m.sidebar.Focus(drag.Key)
	m.syncViewport()
	if m.verbose {
		m.setInfo(fmt.Sprintf("Moved %s (%s)", drag.Title, move.Kind))
	}
}

// handleMouseMsg maps a pointer drag onto the same gesture as the keyboard:
// press picks up, motion hovers, release drops.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(m.sidebar.MoveCursorStep(-1))
		return nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.sidebar.MoveCursorStep(1))
		return nil
	}
	idx := m.rowAt(ev.Y)
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft || idx < 0 {
			return nil
		}
		m.sidebar.Cursor = idx
		m.beginDrag()
	case tea.MouseActionMotion:
		if _, dragging := m.sidebar.Dragging(); dragging && idx >= 0 && idx != m.sidebar.Cursor {
			m.sidebar.Cursor = idx
			m.moveCursor(true)
		}
	case tea.MouseActionRelease:
		drag, dragging := m.sidebar.Dragging()
		if !dragging {
			return nil
		}
		if idx < 0 {
			m.sidebar.EndDrag()
			events.Reorder.Cancel(drag.Key, events.CancelOutside)
			return nil
		}
		if m.sidebar.Rows[idx].Key == drag.Key {
			// A press and release on the same row is a click.
			m.sidebar.EndDrag()
			m.sidebar.Cursor = idx
			return m.handleEnterKey()
		}
		m.dropOn(m.sidebar.Rows[idx].Key)
	}
	return nil
}

// rowAt returns the index of the row drawn on screen line y, or -1.
func (m *Model) rowAt(y int) int {
	if m.menuHeader() != "" {
		y--
	}
	if y < 0 {
		return -1
	}
	start, visible := m.visibleWindow()
	if y >= len(visible) {
		return -1
	}
	return start + y
}

package ui

import (
	"fmt"

	"github.com/atomicstack/dragmenu/internal/logging/events"
	"github.com/atomicstack/dragmenu/internal/menutree"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectedMsg reports that a leaf was chosen. A non-nil Err is shown on the
// status line instead.
type SelectedMsg struct {
	Key   string
	Title string
	Info  string
	Err   error
	Quit  bool
}

// selectInPlace marks the row as the active entry without leaving the menu.
func selectInPlace(row menutree.Row) tea.Cmd {
	return func() tea.Msg {
		return SelectedMsg{Key: row.Key, Title: row.Title, Info: fmt.Sprintf("Selected %s", row.Title)}
	}
}

// SelectAndQuit is a selection handler that records the row and exits.
func SelectAndQuit(row menutree.Row) tea.Cmd {
	return func() tea.Msg {
		return SelectedMsg{Key: row.Key, Title: row.Title, Quit: true}
	}
}

func (m *Model) handleSelectedMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(SelectedMsg)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	m.active = result.Key
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	if result.Quit {
		return tea.Quit
	}
	return nil
}

// Active returns the key of the most recently selected leaf.
func (m *Model) Active() string {
	return m.active
}

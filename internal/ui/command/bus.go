package command

import (
	"fmt"

	"github.com/atomicstack/dragmenu/internal/logging/events"
	"github.com/atomicstack/dragmenu/internal/menutree"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler reacts to a row being selected.
type Handler func(menutree.Row) tea.Cmd

// Request encapsulates a selection callback invocation.
type Request struct {
	Key     string
	Label   string
	Handler Handler
	Row     menutree.Row
}

// Bus coordinates the execution of selection callbacks.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a selection callback into a Bubble Tea command while
// emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Key, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.Key, req.Label)
			return nil
		}
		cmd := req.Handler(req.Row)
		if cmd == nil {
			events.Command.NoOp(req.Key, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.Key, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

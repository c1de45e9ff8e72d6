package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/dragmenu/internal/menutree"
	"github.com/atomicstack/dragmenu/internal/metrics"
	"github.com/atomicstack/dragmenu/internal/theme"
	"github.com/atomicstack/dragmenu/internal/ui/command"
	uistate "github.com/atomicstack/dragmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "menu"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	// OnSelect runs when a leaf is chosen. Nil selects the row in place.
	OnSelect command.Handler
	Metrics  metrics.Recorder
}

// Model implements the Bubble Tea model for the sidebar menu.
type Model struct {
	tree    menutree.Tree
	sidebar *uistate.Sidebar
	active  string

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorFocused     bool

	handlers map[reflect.Type]msgHandler

	bus      *command.Bus
	onSelect command.Handler
	metrics  metrics.Recorder
	lastMove menutree.Move
}

// NewModel initialises the UI state with the provided arrangement.
func NewModel(tree menutree.Tree, opts Options) *Model {
	m := &Model{
		tree:       tree,
		sidebar:    uistate.NewSidebar(tree),
		bus:        command.New(),
		onSelect:   opts.OnSelect,
		metrics:    opts.Metrics,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	if m.onSelect == nil {
		m.onSelect = selectInPlace
	}
	if m.metrics == nil {
		m.metrics = metrics.Nop{}
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Tree returns the current arrangement.
func (m *Model) Tree() menutree.Tree {
	return m.tree
}

// LastMove returns the most recent drop as classified by the reorder engine.
func (m *Model) LastMove() menutree.Move {
	return m.lastMove
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.cursorFocused = true
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(SelectedMsg{}):       m.handleSelectedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if m.cursorFocused {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

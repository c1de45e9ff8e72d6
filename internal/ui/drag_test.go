package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/dragmenu/internal/menutree"
	"github.com/atomicstack/dragmenu/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

type recordingMetrics struct {
	drags int
	drops []string
}

func (r *recordingMetrics) Drag()            { r.drags++ }
func (r *recordingMetrics) Drop(kind string) { r.drops = append(r.drops, kind) }

func newSeedHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	if opts.Width == 0 {
		opts.Width = 60
	}
	if opts.Height == 0 {
		opts.Height = 24
	}
	return NewHarness(NewModel(menutree.DefaultSeed(), opts))
}

func TestKeyboardDropIntoEmptyGroup(t *testing.T) {
	rec := &recordingMetrics{}
	h := newSeedHarness(t, Options{Metrics: rec})

	h.Keys(tea.KeyTab, tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyTab)

	m := h.Model()
	if got := testutil.Sketch(m.Tree()); got != "[2, sub1{3,4,5}, sub2{6,8}, 9{1}]" {
		t.Fatalf("unexpected tree %s", got)
	}
	if m.LastMove().Kind != menutree.MoveIntoEmptyGroup {
		t.Fatalf("expected into-empty-group, got %s", m.LastMove().Kind)
	}
	if !m.sidebar.IsOpen("9") {
		t.Fatalf("expected target group to be expanded")
	}
	if row, _ := m.sidebar.Current(); row.Key != "1" {
		t.Fatalf("expected cursor to follow the dropped row, got %q", row.Key)
	}
	if rec.drags != 1 || len(rec.drops) != 1 || rec.drops[0] != "into-empty-group" {
		t.Fatalf("unexpected metrics %+v", rec)
	}
}

func TestKeyboardDemoteIntoOpenedGroup(t *testing.T) {
	h := newSeedHarness(t, Options{})

	h.Keys(tea.KeyDown, tea.KeyTab, tea.KeyDown, tea.KeyRight, tea.KeyDown, tea.KeyDown, tea.KeyTab)

	m := h.Model()
	if got := testutil.Sketch(m.Tree()); got != "[1, sub1{3,2,4,5}, sub2{6,8}, 9{}]" {
		t.Fatalf("unexpected tree %s", got)
	}
	if m.sidebar.Cursor != 3 {
		t.Fatalf("expected cursor on dropped row at 3, got %d", m.sidebar.Cursor)
	}
}

func TestPromoteChildThroughUI(t *testing.T) {
	tree := testutil.Tree(testutil.Leaf("A"), testutil.Leaf("B"), testutil.Group("G", "C", "D"))
	h := NewHarness(NewModel(tree, Options{Width: 40, Height: 20}))

	// open G, move to D, pick it up, hover B and drop.
	h.Keys(tea.KeyDown, tea.KeyDown, tea.KeyEnter, tea.KeyDown, tea.KeyDown, tea.KeyTab)
	h.Keys(tea.KeyUp, tea.KeyUp, tea.KeyUp, tea.KeyTab)

	if got := testutil.Sketch(h.Model().Tree()); got != "[A, D, B, G{C}]" {
		t.Fatalf("unexpected tree %s", got)
	}
	if h.Model().LastMove().Kind != menutree.MovePromote {
		t.Fatalf("expected promote, got %s", h.Model().LastMove().Kind)
	}
}

func TestRejectedDropLeavesTreeUnchanged(t *testing.T) {
	rec := &recordingMetrics{}
	h := newSeedHarness(t, Options{Metrics: rec})
	before := testutil.Sketch(h.Model().Tree())

	h.Keys(tea.KeyTab, tea.KeyDown, tea.KeyDown, tea.KeyTab)

	m := h.Model()
	if got := testutil.Sketch(m.Tree()); got != before {
		t.Fatalf("expected tree unchanged, got %s", got)
	}
	if m.LastMove().Kind != menutree.MoveRejected {
		t.Fatalf("expected rejected, got %s", m.LastMove().Kind)
	}
	if _, dragging := m.sidebar.Dragging(); dragging {
		t.Fatalf("expected drag to end after drop")
	}
	if m.errMsg != "" {
		t.Fatalf("rejected drops should not surface an error, got %q", m.errMsg)
	}
	if len(rec.drops) != 1 || rec.drops[0] != "rejected" {
		t.Fatalf("unexpected drops %v", rec.drops)
	}
}

func TestDropOnSameRowCancels(t *testing.T) {
	rec := &recordingMetrics{}
	h := newSeedHarness(t, Options{Metrics: rec})
	before := testutil.Sketch(h.Model().Tree())

	h.Keys(tea.KeyTab, tea.KeyTab)

	if got := testutil.Sketch(h.Model().Tree()); got != before {
		t.Fatalf("expected tree unchanged, got %s", got)
	}
	if _, dragging := h.Model().sidebar.Dragging(); dragging {
		t.Fatalf("expected drag to end")
	}
	if len(rec.drops) != 0 {
		t.Fatalf("same-row drops are not counted, got %v", rec.drops)
	}
}

func TestEscapeCancelsDragBeforeQuitting(t *testing.T) {
	h := newSeedHarness(t, Options{})

	h.Keys(tea.KeyTab, tea.KeyEsc)
	if _, dragging := h.Model().sidebar.Dragging(); dragging {
		t.Fatalf("expected escape to cancel the drag")
	}
	if h.Quit() {
		t.Fatalf("escape during a drag must not quit")
	}

	h.Keys(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected second escape to quit")
	}
}

func TestVerboseDropReportsMove(t *testing.T) {
	h := newSeedHarness(t, Options{Verbose: true})

	h.Keys(tea.KeyDown, tea.KeyTab, tea.KeyUp, tea.KeyTab)

	if got := testutil.Sketch(h.Model().Tree()); !strings.HasPrefix(got, "[2, 1,") {
		t.Fatalf("unexpected tree %s", got)
	}
	if view := h.View(); !strings.Contains(view, "Moved Option 2 (top-level)") {
		t.Fatalf("expected move info in view, got:\n%s", view)
	}
}

func TestMouseDragAndDrop(t *testing.T) {
	h := newSeedHarness(t, Options{})

	h.Send(tea.MouseMsg{X: 2, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if drag, ok := h.Model().sidebar.Dragging(); !ok || drag.Key != "1" {
		t.Fatalf("expected press to pick up row 1, got %+v %v", drag, ok)
	}
	h.Send(tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if row, _ := h.Model().sidebar.Current(); row.Key != "9" {
		t.Fatalf("expected pointer to hover group3, got %q", row.Key)
	}
	h.Send(tea.MouseMsg{X: 2, Y: 5, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease})

	if got := testutil.Sketch(h.Model().Tree()); got != "[2, sub1{3,4,5}, sub2{6,8}, 9{1}]" {
		t.Fatalf("unexpected tree %s", got)
	}
}

func TestMouseClickSelects(t *testing.T) {
	h := newSeedHarness(t, Options{})

	h.Send(tea.MouseMsg{X: 2, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.Send(tea.MouseMsg{X: 2, Y: 2, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease})

	if got := h.Model().Active(); got != "2" {
		t.Fatalf("expected click to select row 2, got %q", got)
	}
	if _, dragging := h.Model().sidebar.Dragging(); dragging {
		t.Fatalf("expected click to leave no drag behind")
	}
}

func TestMouseReleaseOutsideRowsCancels(t *testing.T) {
	h := newSeedHarness(t, Options{})
	before := testutil.Sketch(h.Model().Tree())

	h.Send(tea.MouseMsg{X: 2, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.Send(tea.MouseMsg{X: 2, Y: 20, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease})

	if got := testutil.Sketch(h.Model().Tree()); got != before {
		t.Fatalf("expected tree unchanged, got %s", got)
	}
	if _, dragging := h.Model().sidebar.Dragging(); dragging {
		t.Fatalf("expected drag to be cancelled")
	}
}

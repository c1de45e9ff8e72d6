package state

import "github.com/atomicstack/dragmenu/internal/menutree"

// Sidebar tracks the rows of the menu along with cursor, filter, viewport,
// expanded groups and drag state. Full holds every row with all groups
// expanded; Rows is what is currently displayed.
type Sidebar struct {
	Rows           []menutree.Row
	Full           []menutree.Row
	Open           map[string]bool
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	drag           *Drag
}

// NewSidebar constructs a Sidebar over the rows of the provided tree.
func NewSidebar(tree menutree.Tree) *Sidebar {
	s := &Sidebar{
		Open:       make(map[string]bool),
		LastCursor: -1,
	}
	s.UpdateRows(tree.Rows(nil))
	return s
}

// IndexOf returns the displayed index of the row with key, or -1.
func (s *Sidebar) IndexOf(key string) int {
	if key == "" {
		return -1
	}
	for i, row := range s.Rows {
		if row.Key == key {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (s *Sidebar) Current() (menutree.Row, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Rows) {
		return menutree.Row{}, false
	}
	return s.Rows[s.Cursor], true
}

// UpdateRows replaces the full row set and re-applies expansion and filter.
func (s *Sidebar) UpdateRows(rows []menutree.Row) {
	prevOffset := s.ViewportOffset
	s.Full = CloneRows(rows)
	s.applyFilter()
	if len(s.Rows) == 0 {
		s.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(s.Rows)-1 {
		s.ViewportOffset = 0
		return
	}
	s.ViewportOffset = prevOffset
}

// Focus moves the cursor onto key when it is displayed.
func (s *Sidebar) Focus(key string) bool {
	idx := s.IndexOf(key)
	if idx < 0 {
		return false
	}
	s.Cursor = idx
	return true
}

// IsOpen reports whether the group with key is expanded.
func (s *Sidebar) IsOpen(key string) bool {
	return s.Open[key]
}

// SetOpen expands or collapses a group and reports whether that changed
// anything. The cursor stays on the row it was on, or moves to the group
// when its child disappears.
func (s *Sidebar) SetOpen(key string, open bool) bool {
	if s.Open == nil {
		s.Open = make(map[string]bool)
	}
	if s.Open[key] == open || !s.isGroup(key) {
		return false
	}
	focus := ""
	if row, ok := s.Current(); ok {
		focus = row.Key
		if row.Depth > 0 && !open {
			if parent := s.ParentIndex(); parent >= 0 && s.Rows[parent].Key == key {
				focus = key
			}
		}
	}
	if open {
		s.Open[key] = true
	} else {
		delete(s.Open, key)
	}
	s.applyFilter()
	if focus != "" {
		s.Focus(focus)
	}
	return true
}

// Toggle flips the expansion of the group with key.
func (s *Sidebar) Toggle(key string) bool {
	return s.SetOpen(key, !s.IsOpen(key))
}

func (s *Sidebar) isGroup(key string) bool {
	for _, row := range s.Full {
		if row.Key == key {
			return row.Group
		}
	}
	return false
}

// visibleRows hides the children of collapsed groups.
func (s *Sidebar) visibleRows() []menutree.Row {
	rows := make([]menutree.Row, 0, len(s.Full))
	parentOpen := false
	for _, row := range s.Full {
		if row.Depth == 0 {
			row.Open = row.Group && s.Open[row.Key]
			parentOpen = row.Open
			rows = append(rows, row)
			continue
		}
		if parentOpen {
			rows = append(rows, row)
		}
	}
	return rows
}

// CloneRows produces a shallow copy of the provided rows.
func CloneRows(rows []menutree.Row) []menutree.Row {
	dup := make([]menutree.Row, len(rows))
	copy(dup, rows)
	return dup
}

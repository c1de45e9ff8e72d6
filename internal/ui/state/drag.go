package state

// Drag is the payload carried between picking up a row and dropping it.
type Drag struct {
	Key   string
	Title string
}

// BeginDrag starts carrying the row under the cursor. It returns false when
// the cursor is not on a row.
func (s *Sidebar) BeginDrag() (Drag, bool) {
	row, ok := s.Current()
	if !ok {
		return Drag{}, false
	}
	d := Drag{Key: row.Key, Title: row.Title}
	s.drag = &d
	return d, true
}

// Dragging reports the payload of an active drag.
func (s *Sidebar) Dragging() (Drag, bool) {
	if s.drag == nil {
		return Drag{}, false
	}
	return *s.drag, true
}

// IsDragged reports whether key is the row being carried.
func (s *Sidebar) IsDragged(key string) bool {
	return s.drag != nil && s.drag.Key == key
}

// EndDrag clears the drag payload and returns it.
func (s *Sidebar) EndDrag() (Drag, bool) {
	d, ok := s.Dragging()
	s.drag = nil
	return d, ok
}

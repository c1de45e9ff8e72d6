package menutree

// Position locates an entry. Inner is -1 for top-level entries.
type Position struct {
	Top   int
	Inner int
}

// Nested reports whether the position addresses a group child.
func (p Position) Nested() bool {
	return p.Inner >= 0
}

// Locate resolves key at the top level or one level of nesting. The first
// match wins.
func (t Tree) Locate(key string) (Position, bool) {
	for i, entry := range t {
		if entry.Key == key {
			return Position{Top: i, Inner: -1}, true
		}
		for j, child := range entry.Children {
			if child.Key == key {
				return Position{Top: i, Inner: j}, true
			}
		}
	}
	return Position{Top: -1, Inner: -1}, false
}

// At returns the entry at a position previously produced by Locate.
func (t Tree) At(p Position) Entry {
	entry := t[p.Top]
	if p.Nested() {
		return entry.Children[p.Inner]
	}
	return entry
}

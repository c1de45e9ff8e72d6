// Package menutree holds the sidebar menu arrangement and the reorder engine
// that relocates entries between the top level and one level of groups.
//
// Trees are values: every operation that changes the arrangement returns a
// new Tree and never writes through the receiver's backing arrays.
package menutree

// Kind distinguishes leaf items from groups.
type Kind int

const (
	KindItem Kind = iota
	KindGroup
)

func (k Kind) String() string {
	if k == KindGroup {
		return "group"
	}
	return "item"
}

// Entry is one row of the menu, either a leaf item or a group of leaves.
type Entry struct {
	Key      string
	Title    string
	Icon     string
	Kind     Kind
	Children []Entry
}

// IsGroup reports whether the entry is a group, empty or not.
func (e Entry) IsGroup() bool {
	return e.Kind == KindGroup
}

// Empty reports whether the entry is a group without children.
func (e Entry) Empty() bool {
	return e.IsGroup() && len(e.Children) == 0
}

func (e Entry) withChildren(children []Entry) Entry {
	e.Children = children
	return e
}

// Tree is the ordered top level of the menu.
type Tree []Entry

// Clone returns a deep copy of the tree.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, entry := range t {
		out[i] = entry
		if entry.Children != nil {
			out[i].Children = append([]Entry(nil), entry.Children...)
		}
	}
	return out
}

// Keys lists entry keys in display order with children following their group.
func (t Tree) Keys() []string {
	keys := make([]string, 0, t.Count())
	for _, entry := range t {
		keys = append(keys, entry.Key)
		for _, child := range entry.Children {
			keys = append(keys, child.Key)
		}
	}
	return keys
}

// Count returns the number of entries including group children.
func (t Tree) Count() int {
	n := len(t)
	for _, entry := range t {
		n += len(entry.Children)
	}
	return n
}

// Find returns the entry for key along with its position.
func (t Tree) Find(key string) (Entry, Position, bool) {
	pos, ok := t.Locate(key)
	if !ok {
		return Entry{}, pos, false
	}
	return t.At(pos), pos, true
}

func removeAt(entries []Entry, idx int) []Entry {
	out := make([]Entry, 0, len(entries)-1)
	out = append(out, entries[:idx]...)
	return append(out, entries[idx+1:]...)
}

func insertAt(entries []Entry, idx int, entry Entry) []Entry {
	if idx < 0 {
		idx = 0
	}
	if idx > len(entries) {
		idx = len(entries)
	}
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, entries[:idx]...)
	out = append(out, entry)
	return append(out, entries[idx:]...)
}

func moveWithin(entries []Entry, from, to int) []Entry {
	moved := entries[from]
	return insertAt(removeAt(entries, from), to, moved)
}

package menutree

// MoveKind classifies a drag/drop gesture.
type MoveKind int

const (
	// MoveNone covers identical keys and keys that do not resolve.
	MoveNone MoveKind = iota
	// MoveRejected is a structurally invalid drop: a group onto a child
	// position, or a leaf onto a group that already has children.
	MoveRejected
	MoveIntoEmptyGroup
	MoveTopLevel
	MoveWithinGroup
	MoveAcrossGroups
	MovePromote
	MoveDemote
)

var moveKindNames = map[MoveKind]string{
	MoveNone:           "none",
	MoveRejected:       "rejected",
	MoveIntoEmptyGroup: "into-empty-group",
	MoveTopLevel:       "top-level",
	MoveWithinGroup:    "within-group",
	MoveAcrossGroups:   "across-groups",
	MovePromote:        "promote",
	MoveDemote:         "demote",
}

func (k MoveKind) String() string {
	if name, ok := moveKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Move is a classified gesture ready to be applied to the tree it was
// planned against.
type Move struct {
	Kind     MoveKind
	DragKey  string
	HoverKey string
	Drag     Position
	Drop     Position
}

// Changes reports whether applying the move relocates an entry.
func (m Move) Changes() bool {
	return m.Kind != MoveNone && m.Kind != MoveRejected
}

// role is the shape of one side of a gesture.
type role int

const (
	roleTopItem role = iota
	roleTopGroup
	roleChild
)

func roleOf(entry Entry, pos Position) role {
	switch {
	case pos.Nested():
		return roleChild
	case entry.IsGroup():
		return roleTopGroup
	default:
		return roleTopItem
	}
}

// Plan classifies dragging dragKey onto hoverKey in t.
func Plan(t Tree, dragKey, hoverKey string) Move {
	move := Move{DragKey: dragKey, HoverKey: hoverKey, Kind: MoveNone}
	if dragKey == hoverKey {
		return move
	}
	dragEntry, dragPos, ok := t.Find(dragKey)
	if !ok {
		return move
	}
	dropEntry, dropPos, ok := t.Find(hoverKey)
	if !ok {
		return move
	}
	move.Drag, move.Drop = dragPos, dropPos

	drag, drop := roleOf(dragEntry, dragPos), roleOf(dropEntry, dropPos)
	switch {
	case drag == roleTopItem && drop == roleTopGroup:
		if dropEntry.Empty() {
			move.Kind = MoveIntoEmptyGroup
		} else {
			move.Kind = MoveRejected
		}
	case drag == roleTopGroup && drop == roleChild:
		move.Kind = MoveRejected
	case drag != roleChild && drop != roleChild:
		move.Kind = MoveTopLevel
	case drag == roleChild && drop == roleChild && dragPos.Top == dropPos.Top:
		move.Kind = MoveWithinGroup
	case drag == roleChild && drop == roleChild:
		move.Kind = MoveAcrossGroups
	case drag == roleChild:
		move.Kind = MovePromote
	case drop == roleChild:
		move.Kind = MoveDemote
	}
	return move
}

// Apply performs a planned move. Moves that do not change the arrangement
// return t itself.
func Apply(t Tree, m Move) Tree {
	if !m.Changes() {
		return t
	}
	dragged := t.At(m.Drag)
	switch m.Kind {
	case MoveIntoEmptyGroup:
		out := replaceAt(t, m.Drop.Top, t[m.Drop.Top].withChildren([]Entry{dragged}))
		return removeAt(out, m.Drag.Top)
	case MoveTopLevel:
		return moveWithin(t, m.Drag.Top, m.Drop.Top)
	case MoveWithinGroup:
		group := t[m.Drag.Top]
		return replaceAt(t, m.Drag.Top, group.withChildren(moveWithin(group.Children, m.Drag.Inner, m.Drop.Inner)))
	case MoveAcrossGroups:
		src, dst := t[m.Drag.Top], t[m.Drop.Top]
		out := replaceAt(t, m.Drag.Top, src.withChildren(removeAt(src.Children, m.Drag.Inner)))
		out[m.Drop.Top] = dst.withChildren(insertAt(dst.Children, m.Drop.Inner, dragged))
		return out
	case MovePromote:
		src := t[m.Drag.Top]
		out := replaceAt(t, m.Drag.Top, src.withChildren(removeAt(src.Children, m.Drag.Inner)))
		return insertAt(out, m.Drop.Top, dragged)
	case MoveDemote:
		dst := t[m.Drop.Top]
		out := replaceAt(t, m.Drop.Top, dst.withChildren(insertAt(dst.Children, m.Drop.Inner, dragged)))
		return removeAt(out, m.Drag.Top)
	}
	return t
}

// Reorder drags dragKey onto hoverKey. Invalid or ambiguous gestures
// return t unchanged.
func Reorder(t Tree, dragKey, hoverKey string) Tree {
	return Apply(t, Plan(t, dragKey, hoverKey))
}

func replaceAt(t Tree, idx int, entry Entry) Tree {
	out := make(Tree, len(t))
	copy(out, t)
	out[idx] = entry
	return out
}

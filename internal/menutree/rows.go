package menutree

// Row is a flattened, display-ready view of one entry.
type Row struct {
	Key   string
	Title string
	Icon  string
	Depth int
	Group bool
	Open  bool
	Count int
}

// Rows flattens the tree into display rows. Children are emitted only for
// groups that open reports as expanded; a nil open func expands every group.
func (t Tree) Rows(open func(key string) bool) []Row {
	rows := make([]Row, 0, t.Count())
	for _, entry := range t {
		expanded := entry.IsGroup() && (open == nil || open(entry.Key))
		rows = append(rows, Row{
			Key:   entry.Key,
			Title: entry.Title,
			Icon:  entry.Icon,
			Group: entry.IsGroup(),
			Open:  expanded,
			Count: len(entry.Children),
		})
		if !expanded {
			continue
		}
		for _, child := range entry.Children {
			rows = append(rows, Row{
				Key:   child.Key,
				Title: child.Title,
				Icon:  child.Icon,
				Depth: 1,
			})
		}
	}
	return rows
}

package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/dragmenu/internal/format/table"
	"github.com/atomicstack/dragmenu/internal/logging/events"
	"github.com/atomicstack/dragmenu/internal/menutree"
)

// Print applies the configured moves and writes the resulting arrangement
// as a table.
func Print(w io.Writer, cfg Config) error {
	tree, err := LoadTree(cfg.SeedPath)
	if err != nil {
		return err
	}
	tree = applyMoves(tree, cfg.Moves, func(m Move, kind menutree.MoveKind) {
		fmt.Fprintf(w, "move %s: %s\n", m, kind)
	})
	for _, line := range renderTable(tree) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	return nil
}

func applyMoves(tree menutree.Tree, moves []Move, report func(Move, menutree.MoveKind)) menutree.Tree {
	for _, m := range moves {
		move := menutree.Plan(tree, m.Drag, m.Hover)
		if move.Changes() {
			events.Reorder.Drop(m.Drag, m.Hover, move.Kind.String())
		} else {
			events.Reorder.Reject(m.Drag, m.Hover, move.Kind.String())
		}
		tree = menutree.Apply(tree, move)
		if report != nil {
			report(m, move.Kind)
		}
	}
	return tree
}

func renderTable(tree menutree.Tree) []string {
	rows := [][]string{{"KEY", "ENTRY", "KIND", "CHILDREN"}}
	for _, row := range tree.Rows(nil) {
		label := strings.Repeat("  ", row.Depth)
		if row.Icon != "" {
			label += row.Icon + " "
		}
		label += row.Title
		kind := menutree.KindItem.String()
		children := ""
		if row.Group {
			kind = menutree.KindGroup.String()
			children = strconv.Itoa(row.Count)
		}
		rows = append(rows, []string{row.Key, label, kind, children})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight})
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

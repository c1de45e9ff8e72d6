// Package testutil provides compact tree fixtures shared by package tests.
package testutil

import (
	"strings"

	"github.com/atomicstack/dragmenu/internal/menutree"
)

// Leaf builds an item whose title equals its key.
func Leaf(key string) menutree.Entry {
	return menutree.Entry{Key: key, Title: key}
}

// Group builds a group holding one leaf per child key.
func Group(key string, children ...string) menutree.Entry {
	entry := menutree.Entry{Key: key, Title: key, Kind: menutree.KindGroup}
	for _, child := range children {
		entry.Children = append(entry.Children, Leaf(child))
	}
	return entry
}

// Tree assembles entries into a tree.
func Tree(entries ...menutree.Entry) menutree.Tree {
	return menutree.Tree(entries)
}

// Sketch renders a tree as "[A, B, G{C,D}]" for readable assertions.
func Sketch(t menutree.Tree) string {
	parts := make([]string, 0, len(t))
	for _, entry := range t {
		if !entry.IsGroup() {
			parts = append(parts, entry.Key)
			continue
		}
		children := make([]string, 0, len(entry.Children))
		for _, child := range entry.Children {
			children = append(children, child.Key)
		}
		parts = append(parts, entry.Key+"{"+strings.Join(children, ",")+"}")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

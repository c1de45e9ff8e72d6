package menutree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyKey     = errors.New("entry key is empty")
	ErrDuplicateKey = errors.New("duplicate entry key")
	ErrLeafChildren = errors.New("leaf entry has children")
	ErrTooDeep      = errors.New("group nested inside a group")
)

// Validate checks the structural invariants the reorder engine relies on:
// unique non-empty keys, leaves without children and at most one level of
// grouping.
func Validate(t Tree) error {
	seen := make(map[string]struct{}, t.Count())
	check := func(e Entry) error {
		if strings.TrimSpace(e.Key) == "" {
			return fmt.Errorf("%w (title %q)", ErrEmptyKey, e.Title)
		}
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}
		seen[e.Key] = struct{}{}
		return nil
	}
	for _, entry := range t {
		if err := check(entry); err != nil {
			return err
		}
		if !entry.IsGroup() && len(entry.Children) > 0 {
			return fmt.Errorf("%w: %q", ErrLeafChildren, entry.Key)
		}
		for _, child := range entry.Children {
			if err := check(child); err != nil {
				return err
			}
			if child.IsGroup() || len(child.Children) > 0 {
				return fmt.Errorf("%w: %q in %q", ErrTooDeep, child.Key, entry.Key)
			}
		}
	}
	return nil
}

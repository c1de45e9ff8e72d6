package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/dragmenu/internal/menutree"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter updates the filter query and cursor position.
func (s *Sidebar) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(s.Filter)
	restore := -1
	s.Filter = query
	runes := []rune(s.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	s.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			s.LastCursor = s.Cursor
		}
		s.Cursor = 0
	} else if prevTrimmed != "" {
		restore = s.LastCursor
	}
	s.applyFilter()
	if trimmed != "" && len(s.Rows) > 0 {
		if idx := BestMatchIndex(s.Rows, trimmed); idx >= 0 {
			s.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(s.Rows) {
			s.Cursor = restore
		} else if len(s.Rows) > 0 {
			s.Cursor = len(s.Rows) - 1
		}
		s.LastCursor = -1
	}
}

func (s *Sidebar) applyFilter() {
	if strings.TrimSpace(s.Filter) == "" {
		s.Rows = s.visibleRows()
	} else {
		s.Rows = FilterRows(s.Full, s.Filter)
	}
	if len(s.Rows) == 0 {
		s.Cursor = 0
		s.ViewportOffset = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = len(s.Rows) - 1
		return
	}
	if s.Cursor >= len(s.Rows) {
		s.Cursor = len(s.Rows) - 1
	}
	if s.ViewportOffset > len(s.Rows)-1 {
		s.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (s *Sidebar) FilterCursorPos() int {
	runes := []rune(s.Filter)
	if s.FilterCursor < 0 {
		return 0
	}
	if s.FilterCursor > len(runes) {
		return len(runes)
	}
	return s.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (s *Sidebar) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (s *Sidebar) DeleteFilterRuneBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	s.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (s *Sidebar) DeleteFilterWordBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	s.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (s *Sidebar) MoveFilterCursorStart() bool {
	if s.FilterCursorPos() == 0 {
		return false
	}
	s.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (s *Sidebar) MoveFilterCursorEnd() bool {
	end := len([]rune(s.Filter))
	if s.FilterCursorPos() == end {
		return false
	}
	s.FilterCursor = end
	return true
}

// MoveFilterCursorWordBackward moves the filter cursor one word backward.
func (s *Sidebar) MoveFilterCursorWordBackward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == pos {
		return false
	}
	s.FilterCursor = i
	return true
}

// MoveFilterCursorWordForward moves the filter cursor one word forward.
func (s *Sidebar) MoveFilterCursorWordForward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	s.FilterCursor = i
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (s *Sidebar) MoveFilterCursorRuneBackward() bool {
	if s.FilterCursorPos() == 0 {
		return false
	}
	s.FilterCursor = s.FilterCursorPos() - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (s *Sidebar) MoveFilterCursorRuneForward() bool {
	runes := []rune(s.Filter)
	pos := s.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	s.FilterCursor = pos + 1
	return true
}

// FilterRows returns rows whose title or key matches query. A matching child
// keeps its group row so the result still reads as a tree.
func FilterRows(rows []menutree.Row, query string) []menutree.Row {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneRows(rows)
	}
	matches := fuzzyMatches(rows, trimmed)
	if len(matches) == 0 {
		lower := strings.ToLower(trimmed)
		for idx, row := range rows {
			if strings.Contains(strings.ToLower(row.Title), lower) || strings.Contains(strings.ToLower(row.Key), lower) {
				matches[idx] = struct{}{}
			}
		}
	}
	filtered := make([]menutree.Row, 0, len(matches))
	parent := -1
	for idx, row := range rows {
		if row.Depth == 0 {
			parent = idx
		}
		if _, ok := matches[idx]; !ok {
			continue
		}
		if row.Depth > 0 && parent >= 0 {
			if _, kept := matches[parent]; !kept {
				matches[parent] = struct{}{}
				filtered = append(filtered, rows[parent])
			}
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func fuzzyMatches(rows []menutree.Row, query string) map[int]struct{} {
	titles := make([]string, len(rows))
	for i, row := range rows {
		titles[i] = row.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	return matches
}

// BestMatchIndex returns the best index for the query among the provided rows.
func BestMatchIndex(rows []menutree.Row, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(rows) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row.Title, trimmed) || strings.EqualFold(row.Key, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Title), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.Contains(strings.ToLower(row.Title), lower) {
			return i
		}
	}
	titles := make([]string, len(rows))
	for i, row := range rows {
		titles[i] = row.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(rows) {
		return 0
	}
	return best.OriginalIndex
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/dragmenu/internal/menutree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const footerHint = "↑/↓ move  enter open/select  tab drag/drop  esc cancel  ctrl+c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	s := m.sidebar
	m.syncViewport()
	start, visible := m.visibleWindow()
	if len(s.Rows) == 0 {
		msg := "(no entries)"
		if s.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", s.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		for i, row := range visible {
			lines = append(lines, m.buildRowLine(row, start+i))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{statusLine}, m.width)
	prompt := m.filterPrompt()
	if m.width > 0 && ansi.StringWidth(prompt) > m.width {
		prompt = ansi.Truncate(prompt, m.width, "…")
	}
	return renderLines(append(lines, bottomLines...)) + "\n" + prompt
}

// visibleWindow returns the rows that fit on screen and the index of the
// first one.
func (m *Model) visibleWindow() (int, []menutree.Row) {
	s := m.sidebar
	rows := s.Rows
	maxItems := m.maxVisibleItems()
	if maxItems <= 0 || len(rows) <= maxItems {
		return 0, rows
	}
	start := s.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start+maxItems > len(rows) {
		start = len(rows) - maxItems
		if start < 0 {
			start = 0
		}
		s.ViewportOffset = start
	}
	return start, rows[start : start+maxItems]
}

// buildRowLine constructs the styledLine for one sidebar row. The selected
// row is padded so its background spans the full width.
func (m *Model) buildRowLine(row menutree.Row, idx int) styledLine {
	s := m.sidebar
	lineStyle := styles.Item
	if row.Group {
		lineStyle = styles.Group
	}
	if row.Key == m.active {
		lineStyle = styles.ActiveItem
	}
	indicatorStyle := styles.ItemIndicator
	drag, dragging := s.Dragging()
	switch {
	case dragging && row.Key == drag.Key:
		lineStyle = styles.DragSource
		if idx == s.Cursor {
			indicatorStyle = styles.SelectedItemIndicator
		}
	case dragging && idx == s.Cursor:
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.DropTarget
		if !menutree.Plan(m.tree, drag.Key, row.Key).Changes() {
			lineStyle = styles.DropRejected
		}
	case idx == s.Cursor:
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + rowLabel(row)
	if m.width > 0 {
		if pad := m.width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func rowLabel(row menutree.Row) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", row.Depth))
	switch {
	case row.Group && row.Open:
		b.WriteString("▾ ")
	case row.Group:
		b.WriteString("▸ ")
	case row.Depth == 0:
		b.WriteString("  ")
	}
	if row.Icon != "" {
		b.WriteString(row.Icon)
		b.WriteString(" ")
	}
	b.WriteString(row.Title)
	if row.Group {
		fmt.Fprintf(&b, " (%d)", row.Count)
	}
	return b.String()
}

func (m *Model) menuHeader() string {
	segments := []string{defaultRootTitle}
	if drag, ok := m.sidebar.Dragging(); ok {
		segments = append(segments, "moving "+drag.Title)
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // status line + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return ansi.Truncate(text, width-1, "") + "…"
}

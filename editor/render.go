package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/draftmark/document"
)

// cell is one rendered grapheme. key identifies its style composition so
// neighbouring cells with equal keys render as one run.
type cell struct {
	text  string
	width int
	style lipgloss.Style
	key   string
	focus bool
}

func (m *Model) renderContent() string {
	c := m.state.Content()
	sel := c.ClampSelection(m.state.Selection())
	start, end := c.SelectionBounds(sel)
	hasSel := !sel.Collapsed()
	st := m.cfg.Style

	m.focusRow = 0

	if !c.HasText() && m.cfg.Placeholder != "" {
		var sb strings.Builder
		if m.focused {
			sb.WriteString(st.Cursor.Render(" "))
		}
		sb.WriteString(st.Placeholder.Render(m.cfg.Placeholder))
		return sb.String()
	}

	var out []string
	ordinal := 0
	for _, b := range c.Blocks() {
		if b.Type() == document.OrderedListItem {
			ordinal++
		} else {
			ordinal = 0
		}
		prefix := blockPrefix(b, ordinal)
		prefixWidth := lipgloss.Width(prefix)
		base := st.blockStyle(b.Type())

		cells := make([]cell, 0, b.Len()+1)
		for off := 0; off < b.Len(); off++ {
			pos := document.Pos{Key: b.Key(), Offset: off}
			styles := b.StyleAt(off)
			ch := b.CharAt(off)
			cl := cell{
				text:  ch,
				width: cellWidth(ch),
				style: m.inlineStyle(base, styles),
				key:   styleKey(styles),
				focus: pos == sel.Focus,
			}
			if hasSel && c.ComparePos(pos, start) >= 0 && c.ComparePos(pos, end) < 0 {
				cl.style = st.Selection.Inherit(cl.style)
				cl.key += "|sel"
			}
			if m.focused && !hasSel && cl.focus {
				cl.style = st.Cursor.Inherit(cl.style)
				cl.key += "|cur"
			}
			cells = append(cells, cl)
		}
		if sel.Focus.Key == b.Key() && sel.Focus.Offset == b.Len() {
			eol := cell{text: "", focus: true}
			if m.focused && !hasSel {
				eol = cell{text: " ", width: 1, style: st.Cursor.Inherit(base), key: "|cur", focus: true}
			}
			cells = append(cells, eol)
		}

		pad := strings.Repeat(" ", prefixWidth)
		for i, line := range wrapCells(cells, m.viewport.Width-prefixWidth) {
			p := pad
			if i == 0 {
				p = prefix
			}
			var sb strings.Builder
			if p != "" {
				sb.WriteString(st.Prefix.Render(p))
			}
			sb.WriteString(renderRuns(line))
			for _, cl := range line {
				if cl.focus {
					m.focusRow = len(out)
				}
			}
			out = append(out, sb.String())
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) inlineStyle(base lipgloss.Style, styles document.StyleSet) lipgloss.Style {
	var st lipgloss.Style
	found := false
	for _, s := range styles.Styles() {
		cs, ok := m.cfg.CustomStyles[s]
		if !ok {
			continue
		}
		if !found {
			st, found = cs, true
			continue
		}
		st = st.Inherit(cs)
	}
	if !found {
		return base
	}
	return st.Inherit(base)
}

func styleKey(styles document.StyleSet) string {
	parts := make([]string, 0, styles.Len())
	for _, s := range styles.Styles() {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}

func blockPrefix(b document.Block, ordinal int) string {
	indent := strings.Repeat("  ", b.Depth())
	switch b.Type() {
	case document.UnorderedListItem:
		return indent + "• "
	case document.OrderedListItem:
		return indent + fmt.Sprintf("%d. ", ordinal)
	case document.Blockquote:
		return "│ "
	default:
		return ""
	}
}

// renderRuns renders consecutive cells sharing a style key as one string.
func renderRuns(cells []cell) string {
	var sb strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run strings.Builder
		for j < len(cells) && cells[j].key == cells[i].key {
			run.WriteString(cells[j].text)
			j++
		}
		if run.Len() > 0 {
			sb.WriteString(cells[i].style.Render(run.String()))
		}
		i = j
	}
	return sb.String()
}

// wrapCells breaks cells into lines of at most width terminal cells,
// preferring to break after whitespace. A non-positive width disables
// wrapping.
func wrapCells(cells []cell, width int) [][]cell {
	if width <= 0 || len(cells) == 0 {
		return [][]cell{cells}
	}
	var lines [][]cell
	start, used := 0, 0
	for i := 0; i < len(cells); i++ {
		w := cells[i].width
		if used > 0 && used+w > width {
			br := i
			for k := i - 1; k > start; k-- {
				if isSpace(cells[k].text) {
					br = k + 1
					break
				}
			}
			lines = append(lines, cells[start:br])
			start = br
			used = 0
			for k := start; k < i; k++ {
				used += cells[k].width
			}
		}
		used += w
	}
	return append(lines, cells[start:])
}

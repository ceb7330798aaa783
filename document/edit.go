package document

import "strings"

// InsertCharacters types text at the selection using CurrentInlineStyle.
// It is the default behavior for a keystroke no handler consumed.
func InsertCharacters(s EditorState, text string) EditorState {
	if text == "" {
		return s
	}
	change := ChangeInsertCharacters
	if strings.ContainsAny(text, "\r\n") {
		change = ChangeInsertFragment
	}
	c := ReplaceText(s.content, s.selection, text, CurrentInlineStyle(s))
	return Push(s, c, change)
}

// Paste inserts text with the style at the caret. Line breaks start new
// blocks.
func Paste(s EditorState, text string) EditorState {
	if text == "" {
		return s
	}
	c := ReplaceText(s.content, s.selection, text, CurrentInlineStyle(s))
	return Push(s, c, ChangeInsertFragment)
}

// SplitBlockDefault splits the caret block, keeping the block type for both
// halves.
func SplitBlockDefault(s EditorState) EditorState {
	return Push(s, SplitBlock(s.content, s.selection), ChangeSplitBlock)
}

// Backspace removes the selection, or the character before the caret, or
// joins the caret block with the previous one. It reports false when there
// was nothing to delete.
func Backspace(s EditorState) (EditorState, bool) {
	c := s.content
	if !s.selection.Collapsed() {
		return Push(s, RemoveRange(c, s.selection), ChangeRemoveRange), true
	}
	p := c.ClampPos(s.selection.Focus)
	target := Selection{Anchor: p, Focus: p}
	switch {
	case p.Offset > 0:
		target.Anchor = Pos{Key: p.Key, Offset: p.Offset - 1}
	default:
		prev, ok := c.BlockBefore(p.Key)
		if !ok {
			return s, false
		}
		target.Anchor = Pos{Key: prev.key, Offset: prev.Len()}
	}
	return Push(s, RemoveRange(c, target), ChangeBackspace), true
}

// Delete removes the selection, or the character after the caret, or joins
// the next block into the caret block. It reports false when there was
// nothing to delete.
func Delete(s EditorState) (EditorState, bool) {
	c := s.content
	if !s.selection.Collapsed() {
		return Push(s, RemoveRange(c, s.selection), ChangeRemoveRange), true
	}
	p := c.ClampPos(s.selection.Focus)
	b, _ := c.BlockForKey(p.Key)
	target := Selection{Anchor: p, Focus: p}
	switch {
	case p.Offset < b.Len():
		target.Focus = Pos{Key: p.Key, Offset: p.Offset + 1}
	default:
		next, ok := c.BlockAfter(p.Key)
		if !ok {
			return s, false
		}
		target.Focus = Pos{Key: next.key, Offset: 0}
	}
	return Push(s, RemoveRange(c, target), ChangeDelete), true
}

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start
	DirEnd  // block end
	DirDocStart
	DirDocEnd
)

type Move struct {
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the focus
}

// MoveSelection moves the caret (or the selection focus when m.Extend is
// set). A non-extending horizontal move collapses an active selection to its
// corresponding edge.
func MoveSelection(s EditorState, m Move) EditorState {
	c := s.content
	sel := c.ClampSelection(s.selection)

	if !m.Extend && !sel.Collapsed() && (m.Dir == DirLeft || m.Dir == DirRight) {
		start, end := c.SelectionBounds(sel)
		if m.Dir == DirLeft {
			return ForceSelection(s, Caret(start.Key, start.Offset))
		}
		return ForceSelection(s, Caret(end.Key, end.Offset))
	}

	focus := movePos(c, sel.Focus, m.Dir)
	if m.Extend {
		return ForceSelection(s, Selection{Anchor: sel.Anchor, Focus: focus})
	}
	return ForceSelection(s, Selection{Anchor: focus, Focus: focus})
}

func movePos(c Content, p Pos, dir MoveDir) Pos {
	i := c.blockIndex(p.Key)
	b := c.blocks[i]
	switch dir {
	case DirLeft:
		if p.Offset > 0 {
			return Pos{Key: p.Key, Offset: p.Offset - 1}
		}
		if i > 0 {
			prev := c.blocks[i-1]
			return Pos{Key: prev.key, Offset: prev.Len()}
		}
	case DirRight:
		if p.Offset < b.Len() {
			return Pos{Key: p.Key, Offset: p.Offset + 1}
		}
		if i+1 < len(c.blocks) {
			return Pos{Key: c.blocks[i+1].key, Offset: 0}
		}
	case DirUp:
		if i > 0 {
			prev := c.blocks[i-1]
			return Pos{Key: prev.key, Offset: min(p.Offset, prev.Len())}
		}
		return Pos{Key: p.Key, Offset: 0}
	case DirDown:
		if i+1 < len(c.blocks) {
			next := c.blocks[i+1]
			return Pos{Key: next.key, Offset: min(p.Offset, next.Len())}
		}
		return Pos{Key: p.Key, Offset: b.Len()}
	case DirHome:
		return Pos{Key: p.Key, Offset: 0}
	case DirEnd:
		return Pos{Key: p.Key, Offset: b.Len()}
	case DirDocStart:
		return Pos{Key: c.FirstBlock().key, Offset: 0}
	case DirDocEnd:
		last := c.LastBlock()
		return Pos{Key: last.key, Offset: last.Len()}
	}
	return p
}

// SelectAll selects the whole document.
func SelectAll(s EditorState) EditorState {
	c := s.content
	last := c.LastBlock()
	return ForceSelection(s, Selection{
		Anchor: Pos{Key: c.FirstBlock().key, Offset: 0},
		Focus:  Pos{Key: last.key, Offset: last.Len()},
	})
}

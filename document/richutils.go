package document

// KeyCommand names an editing command produced by a key binding.
type KeyCommand string

const (
	CommandBold          KeyCommand = "bold"
	CommandItalic        KeyCommand = "italic"
	CommandUnderline     KeyCommand = "underline"
	CommandCode          KeyCommand = "code"
	CommandStrikethrough KeyCommand = "strikethrough"
	CommandBackspace     KeyCommand = "backspace"
	CommandDelete        KeyCommand = "delete"
	CommandSplitBlock    KeyCommand = "split-block"
	CommandUndo          KeyCommand = "undo"
	CommandRedo          KeyCommand = "redo"
)

// CurrentBlockType returns the type of the block holding the selection
// start.
func CurrentBlockType(s EditorState) BlockType {
	start, _ := s.content.SelectionBounds(s.selection)
	b, _ := s.content.BlockForKey(start.Key)
	return b.Type()
}

// ToggleBlockType sets typ on the selected blocks, or resets them to
// Unstyled when the selection start already has typ. Selections touching
// an atomic block are left alone.
func ToggleBlockType(s EditorState, typ BlockType) EditorState {
	c := s.content
	start, end := c.SelectionBounds(s.selection)
	for i := c.blockIndex(start.Key); i <= c.blockIndex(end.Key); i++ {
		if c.blocks[i].typ == Atomic {
			return s
		}
	}
	next := typ
	if CurrentBlockType(s) == typ {
		next = Unstyled
	}
	return Push(s, SetBlockType(c, s.selection, next), ChangeBlockType)
}

// ToggleInlineStyle flips style on the selected text. With a collapsed
// selection it flips style in the pending override instead.
func ToggleInlineStyle(s EditorState, style InlineStyle) EditorState {
	if s.selection.Collapsed() {
		return SetInlineStyleOverride(s, CurrentInlineStyle(s).Toggle(style))
	}

	c := s.content
	sel := s.selection
	var next Content
	if selectionHasStyle(c, sel, style) {
		next = RemoveInlineStyle(c, sel, style)
	} else {
		next = ApplyInlineStyle(c, sel, style)
	}
	return Push(s, next, ChangeInlineStyle)
}

func selectionHasStyle(c Content, sel Selection, style InlineStyle) bool {
	start, end := c.SelectionBounds(sel)
	si, ei := c.blockIndex(start.Key), c.blockIndex(end.Key)
	found := false
	for i := si; i <= ei; i++ {
		b := c.blocks[i]
		from, to := 0, b.Len()
		if i == si {
			from = start.Offset
		}
		if i == ei {
			to = end.Offset
		}
		for j := from; j < to; j++ {
			if !b.styles[j].Has(style) {
				return false
			}
			found = true
		}
	}
	return found
}

// HandleKeyCommand applies the rich-text meaning of cmd. It reports false
// when cmd has no rich-text meaning in the current state, in which case
// the caller falls back to plain editing. Undo and redo report false when
// the history is empty.
func HandleKeyCommand(s EditorState, cmd KeyCommand) (EditorState, bool) {
	switch cmd {
	case CommandBold:
		return ToggleInlineStyle(s, Bold), true
	case CommandItalic:
		return ToggleInlineStyle(s, Italic), true
	case CommandUnderline:
		return ToggleInlineStyle(s, Underline), true
	case CommandCode:
		return ToggleInlineStyle(s, Code), true
	case CommandStrikethrough:
		return ToggleInlineStyle(s, Strikethrough), true
	case CommandBackspace:
		return onBackspace(s)
	case CommandDelete:
		return onDelete(s)
	case CommandSplitBlock:
		return SplitBlockDefault(s), true
	case CommandUndo:
		return Undo(s)
	case CommandRedo:
		return Redo(s)
	default:
		return s, false
	}
}

// onBackspace handles backspace at the very start of a block: it removes a
// preceding atomic block, or resets a styled block to Unstyled.
func onBackspace(s EditorState) (EditorState, bool) {
	c := s.content
	sel := s.selection
	if !sel.Collapsed() || sel.Anchor.Offset != 0 {
		return s, false
	}
	key := sel.Anchor.Key
	if before, ok := c.BlockBefore(key); ok && before.typ == Atomic {
		target := Selection{
			Anchor: Pos{Key: before.key, Offset: 0},
			Focus:  Pos{Key: key, Offset: 0},
		}
		cur, _ := c.BlockForKey(key)
		asCurrent := SetBlockType(c, Caret(before.key, 0), cur.typ)
		return Push(s, RemoveRange(asCurrent, target), ChangeRemoveRange), true
	}
	return tryToRemoveBlockStyle(s)
}

func tryToRemoveBlockStyle(s EditorState) (EditorState, bool) {
	c := s.content
	key := s.selection.Anchor.Key
	b, ok := c.BlockForKey(key)
	if !ok {
		return s, false
	}
	if b.Len() > 0 && b.key != c.FirstBlock().key {
		return s, false
	}
	if b.typ == CodeBlock {
		if before, ok := c.BlockBefore(key); ok && before.typ == CodeBlock && before.Len() != 0 {
			return s, false
		}
	}
	if b.typ == Unstyled {
		return s, false
	}
	return Push(s, SetBlockType(c, s.selection, Unstyled), ChangeBlockType), true
}

// onDelete handles delete at the very end of a block followed by an atomic
// block, removing the atomic block.
func onDelete(s EditorState) (EditorState, bool) {
	c := s.content
	sel := s.selection
	if !sel.Collapsed() {
		return s, false
	}
	b, ok := c.BlockForKey(sel.Anchor.Key)
	if !ok || sel.Anchor.Offset != b.Len() {
		return s, false
	}
	after, ok := c.BlockAfter(b.key)
	if !ok || after.typ != Atomic {
		return s, false
	}
	target := Selection{
		Anchor: Pos{Key: b.key, Offset: b.Len()},
		Focus:  Pos{Key: after.key, Offset: after.Len()},
	}
	return Push(s, RemoveRange(c, target), ChangeRemoveRange), true
}

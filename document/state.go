package document

// ChangeType tags a pushed Content with the kind of edit that produced it.
type ChangeType string

const (
	ChangeInsertCharacters ChangeType = "insert-characters"
	ChangeInsertFragment   ChangeType = "insert-fragment"
	ChangeRemoveRange      ChangeType = "remove-range"
	ChangeSplitBlock       ChangeType = "split-block"
	ChangeBlockType        ChangeType = "change-block-type"
	ChangeInlineStyle      ChangeType = "change-inline-style"
	ChangeBackspace        ChangeType = "backspace-character"
	ChangeDelete           ChangeType = "delete-character"
	ChangeUndo             ChangeType = "undo"
	ChangeRedo             ChangeType = "redo"
)

// coalesces reports whether consecutive pushes of t share one undo step.
func (t ChangeType) coalesces() bool {
	return t == ChangeInsertCharacters || t == ChangeBackspace || t == ChangeDelete
}

type Options struct {
	HistoryLimit int // default: 1000
}

// EditorState is an immutable editor snapshot: content, selection, pending
// inline style override, and undo/redo history.
//
// All operations return a new EditorState; the receiver is never modified.
type EditorState struct {
	content   Content
	selection Selection

	override    StyleSet
	hasOverride bool

	undo []Content
	redo []Content

	lastChange ChangeType
	version    uint64
	edits      uint64

	opt Options
}

// NewEmpty returns a state holding a single empty block.
func NewEmpty(opt Options) EditorState {
	return NewWithContent(EmptyContent(), opt)
}

// NewWithContent returns a state holding c with the caret at the start of
// the first block.
func NewWithContent(c Content, opt Options) EditorState {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if len(c.blocks) == 0 {
		c = EmptyContent()
	}
	caret := Caret(c.FirstBlock().Key(), 0)
	c.selectionBefore = caret
	c.selectionAfter = caret
	return EditorState{
		content:   c,
		selection: caret,
		opt:       opt,
	}
}

func (s EditorState) Content() Content { return s.content }

func (s EditorState) Selection() Selection { return s.selection }

func (s EditorState) LastChangeType() ChangeType { return s.lastChange }

// Version increases on every transition, including selection changes.
func (s EditorState) Version() uint64 { return s.version }

// ContentVersion increases only when the content changes: on Push, Undo and
// Redo.
func (s EditorState) ContentVersion() uint64 { return s.edits }

func (s EditorState) CanUndo() bool { return len(s.undo) > 0 }

func (s EditorState) CanRedo() bool { return len(s.redo) > 0 }

// InlineStyleOverride returns the pending style override, if any.
func (s EditorState) InlineStyleOverride() (StyleSet, bool) {
	return s.override, s.hasOverride
}

// SetInlineStyleOverride makes style govern the next typed characters.
func SetInlineStyleOverride(s EditorState, style StyleSet) EditorState {
	s.override = style
	s.hasOverride = true
	s.version++
	return s
}

// ClearInlineStyleOverride drops any pending override.
func ClearInlineStyleOverride(s EditorState) EditorState {
	if !s.hasOverride {
		return s
	}
	s.override = StyleSet{}
	s.hasOverride = false
	s.version++
	return s
}

// CurrentInlineStyle returns the style the next typed character receives:
// the override if set, otherwise the style of the text at the caret.
func CurrentInlineStyle(s EditorState) StyleSet {
	if s.hasOverride {
		return s.override
	}
	c := s.content
	start, _ := c.SelectionBounds(s.selection)
	b, _ := c.BlockForKey(start.Key)

	if !s.selection.Collapsed() {
		if start.Offset < b.Len() {
			return b.StyleAt(start.Offset)
		}
		return b.StyleAt(start.Offset - 1)
	}
	if start.Offset > 0 {
		return b.StyleAt(start.Offset - 1)
	}
	if b.Len() > 0 {
		return b.StyleAt(0)
	}
	for i := c.blockIndex(b.key) - 1; i >= 0; i-- {
		if prev := c.blocks[i]; prev.Len() > 0 {
			return prev.StyleAt(prev.Len() - 1)
		}
	}
	return StyleSet{}
}

// ForceSelection moves the selection. A pending override is cleared.
func ForceSelection(s EditorState, sel Selection) EditorState {
	sel = s.content.ClampSelection(sel)
	if sel == s.selection {
		return s
	}
	s.selection = sel
	s.override = StyleSet{}
	s.hasOverride = false
	s.version++
	return s
}

// Push adopts c as the current content, tagged with change. The selection
// becomes c's selection-after and any pending override is cleared.
//
// An undo step is recorded unless change continues a run of the same
// coalescing change type with the caret where the previous edit left it.
func Push(s EditorState, c Content, change ChangeType) EditorState {
	boundary := s.selection != s.content.selectionAfter ||
		change != s.lastChange ||
		!change.coalesces()

	if boundary {
		c.selectionBefore = s.selection
		s.undo = appendHistory(s.undo, s.content, s.opt.HistoryLimit)
	} else {
		c.selectionBefore = s.content.selectionBefore
	}

	s.content = c
	s.selection = c.selectionAfter
	s.redo = nil
	s.override = StyleSet{}
	s.hasOverride = false
	s.lastChange = change
	s.version++
	s.edits++
	return s
}

// Undo restores the content before the most recent undo step.
func Undo(s EditorState) (EditorState, bool) {
	if len(s.undo) == 0 {
		return s, false
	}
	i := len(s.undo) - 1
	prev := s.undo[i]
	sel := s.content.selectionBefore

	s.redo = append(s.redo[:len(s.redo):len(s.redo)], s.content)
	s.undo = s.undo[:i:i]
	s.content = prev
	s.selection = prev.ClampSelection(sel)
	s.override = StyleSet{}
	s.hasOverride = false
	s.lastChange = ChangeUndo
	s.version++
	s.edits++
	return s, true
}

// Redo re-applies the most recently undone content.
func Redo(s EditorState) (EditorState, bool) {
	if len(s.redo) == 0 {
		return s, false
	}
	i := len(s.redo) - 1
	next := s.redo[i]

	s.undo = appendHistory(s.undo, s.content, s.opt.HistoryLimit)
	s.redo = s.redo[:i:i]
	s.content = next
	s.selection = next.selectionAfter
	s.override = StyleSet{}
	s.hasOverride = false
	s.lastChange = ChangeRedo
	s.version++
	s.edits++
	return s, true
}

func appendHistory(stack []Content, c Content, limit int) []Content {
	if limit <= 0 {
		return nil
	}
	out := append(stack[:len(stack):len(stack)], c)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

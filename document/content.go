package document

import "strings"

// Content is an immutable document: an ordered sequence of Blocks plus the
// entity map referenced by block characters.
//
// Each Content also records the selection before and after the edit that
// produced it; EditorState uses these to place the caret on push and undo.
type Content struct {
	blocks []Block
	index  map[string]int

	entities map[string]RawEntity

	selectionBefore Selection
	selectionAfter  Selection
}

// NewContent builds a Content from blocks. Blocks with empty or duplicate
// keys receive fresh keys. An empty list yields one empty unstyled block.
func NewContent(blocks ...Block) Content {
	out := make([]Block, 0, len(blocks))
	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if b.key == "" || seen[b.key] {
			b = b.withKey(newKey(func(k string) bool { return seen[k] }))
		}
		seen[b.key] = true
		out = append(out, b)
	}
	if len(out) == 0 {
		out = append(out, NewBlock(newKey(nil), Unstyled, ""))
	}
	c := Content{blocks: out}
	c.reindex()
	caret := Caret(out[0].key, 0)
	c.selectionBefore = caret
	c.selectionAfter = caret
	return c
}

// EmptyContent returns a Content with a single empty unstyled block.
func EmptyContent() Content { return NewContent() }

// ContentFromText builds unstyled blocks, one per line of text.
func ContentFromText(text string) Content {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, NewBlock("", Unstyled, line))
	}
	return NewContent(blocks...)
}

func (c *Content) reindex() {
	c.index = make(map[string]int, len(c.blocks))
	for i, b := range c.blocks {
		c.index[b.key] = i
	}
}

// Blocks returns the blocks in document order.
func (c Content) Blocks() []Block { return append([]Block(nil), c.blocks...) }

func (c Content) BlockCount() int { return len(c.blocks) }

func (c Content) BlockForKey(key string) (Block, bool) {
	i, ok := c.index[key]
	if !ok {
		return Block{}, false
	}
	return c.blocks[i], true
}

func (c Content) blockIndex(key string) int {
	i, ok := c.index[key]
	if !ok {
		return -1
	}
	return i
}

func (c Content) BlockBefore(key string) (Block, bool) {
	i := c.blockIndex(key)
	if i <= 0 {
		return Block{}, false
	}
	return c.blocks[i-1], true
}

func (c Content) BlockAfter(key string) (Block, bool) {
	i := c.blockIndex(key)
	if i < 0 || i+1 >= len(c.blocks) {
		return Block{}, false
	}
	return c.blocks[i+1], true
}

func (c Content) FirstBlock() Block {
	if len(c.blocks) == 0 {
		return Block{}
	}
	return c.blocks[0]
}

func (c Content) LastBlock() Block {
	if len(c.blocks) == 0 {
		return Block{}
	}
	return c.blocks[len(c.blocks)-1]
}

// HasText reports whether the content holds anything beyond a single empty
// block.
func (c Content) HasText() bool {
	if len(c.blocks) > 1 {
		return true
	}
	if len(c.blocks) == 0 {
		return false
	}
	return strings.ReplaceAll(c.blocks[0].Text(), "\u200b", "") != ""
}

// PlainText joins block texts with '\n'.
func (c Content) PlainText() string {
	var sb strings.Builder
	for i, b := range c.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// Entity returns the entity stored under key.
func (c Content) Entity(key string) (RawEntity, bool) {
	e, ok := c.entities[key]
	return e, ok
}

func (c Content) SelectionBefore() Selection { return c.selectionBefore }

func (c Content) SelectionAfter() Selection { return c.selectionAfter }

// ComparePos orders two positions by block order, then offset.
func (c Content) ComparePos(a, b Pos) int {
	ai, bi := c.blockIndex(a.Key), c.blockIndex(b.Key)
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	default:
		return 0
	}
}

// ClampPos moves p into document bounds. Unknown keys resolve to the first
// block.
func (c Content) ClampPos(p Pos) Pos {
	b, ok := c.BlockForKey(p.Key)
	if !ok {
		b = c.FirstBlock()
	}
	return Pos{Key: b.key, Offset: clampInt(p.Offset, 0, b.Len())}
}

// ClampSelection clamps both ends of sel into document bounds.
func (c Content) ClampSelection(sel Selection) Selection {
	return Selection{Anchor: c.ClampPos(sel.Anchor), Focus: c.ClampPos(sel.Focus)}
}

// SelectionBounds returns the clamped endpoints of sel in document order.
func (c Content) SelectionBounds(sel Selection) (start, end Pos) {
	sel = c.ClampSelection(sel)
	if c.ComparePos(sel.Anchor, sel.Focus) <= 0 {
		return sel.Anchor, sel.Focus
	}
	return sel.Focus, sel.Anchor
}

// IsBackward reports whether sel's focus precedes its anchor.
func (c Content) IsBackward(sel Selection) bool {
	return c.ComparePos(sel.Anchor, sel.Focus) > 0
}

func (c Content) hasKey(key string) bool {
	_, ok := c.index[key]
	return ok
}

// withBlocks returns a copy of c holding blocks and recording the selection
// transition.
func (c Content) withBlocks(blocks []Block, before, after Selection) Content {
	next := Content{
		blocks:          blocks,
		entities:        c.entities,
		selectionBefore: before,
		selectionAfter:  after,
	}
	next.reindex()
	return next
}

// TextInSelection returns the text covered by sel, with '\n' between blocks.
func (c Content) TextInSelection(sel Selection) string {
	start, end := c.SelectionBounds(sel)
	si, ei := c.blockIndex(start.Key), c.blockIndex(end.Key)
	var sb strings.Builder
	for i := si; i <= ei; i++ {
		b := c.blocks[i]
		from, to := 0, b.Len()
		if i == si {
			from = start.Offset
		}
		if i == ei {
			to = end.Offset
		}
		if i > si {
			sb.WriteByte('\n')
		}
		for j := from; j < to; j++ {
			sb.WriteString(b.chars[j])
		}
	}
	return sb.String()
}

package document

import "strings"

// RemoveRange deletes the text covered by sel, joining the first and last
// block of a multi-block range. The merged block keeps the first block's key
// and type.
func RemoveRange(c Content, sel Selection) Content {
	before := c.ClampSelection(sel)
	blocks, caret := removeRange(c, sel)
	return c.withBlocks(blocks, before, Caret(caret.Key, caret.Offset))
}

// ReplaceText replaces the text covered by sel with text. Inserted
// characters carry style. Line breaks in text start new blocks.
func ReplaceText(c Content, sel Selection, text string, style StyleSet) Content {
	before := c.ClampSelection(sel)
	blocks, caret := removeRange(c, sel)
	cur := c.withBlocks(blocks, before, before)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			blocks, caret = splitAt(cur, caret)
			cur = cur.withBlocks(blocks, before, before)
		}
		if part == "" {
			continue
		}
		blocks, caret = insertAt(cur, caret, newFragment(part, style))
		cur = cur.withBlocks(blocks, before, before)
	}
	return cur.withBlocks(cur.blocks, before, Caret(caret.Key, caret.Offset))
}

// InsertText inserts text at a collapsed sel. A non-collapsed sel is
// replaced.
func InsertText(c Content, sel Selection, text string, style StyleSet) Content {
	return ReplaceText(c, sel, text, style)
}

// SplitBlock removes the text covered by sel and splits the block at the
// resulting caret. The trailing block gets a fresh key and the same type
// and depth; the caret lands at its start.
func SplitBlock(c Content, sel Selection) Content {
	before := c.ClampSelection(sel)
	blocks, caret := removeRange(c, sel)
	cur := c.withBlocks(blocks, before, before)
	blocks, caret = splitAt(cur, caret)
	return cur.withBlocks(blocks, before, Caret(caret.Key, caret.Offset))
}

// SetBlockType sets the type of every block touched by sel.
func SetBlockType(c Content, sel Selection, typ BlockType) Content {
	if !typ.Valid() {
		return c
	}
	sel = c.ClampSelection(sel)
	start, end := c.SelectionBounds(sel)
	si, ei := c.blockIndex(start.Key), c.blockIndex(end.Key)

	blocks := append([]Block(nil), c.blocks...)
	for i := si; i <= ei; i++ {
		blocks[i] = blocks[i].withType(typ)
	}
	return c.withBlocks(blocks, sel, sel)
}

// ApplyInlineStyle adds style to every character covered by sel.
func ApplyInlineStyle(c Content, sel Selection, style InlineStyle) Content {
	return mapStyles(c, sel, func(s StyleSet) StyleSet { return s.Add(style) })
}

// RemoveInlineStyle removes style from every character covered by sel.
func RemoveInlineStyle(c Content, sel Selection, style InlineStyle) Content {
	return mapStyles(c, sel, func(s StyleSet) StyleSet { return s.Remove(style) })
}

func mapStyles(c Content, sel Selection, fn func(StyleSet) StyleSet) Content {
	sel = c.ClampSelection(sel)
	start, end := c.SelectionBounds(sel)
	si, ei := c.blockIndex(start.Key), c.blockIndex(end.Key)

	blocks := append([]Block(nil), c.blocks...)
	for i := si; i <= ei; i++ {
		b := blocks[i]
		from, to := 0, b.Len()
		if i == si {
			from = start.Offset
		}
		if i == ei {
			to = end.Offset
		}
		if from >= to {
			continue
		}
		styles := append([]StyleSet(nil), b.styles...)
		for j := from; j < to; j++ {
			styles[j] = fn(styles[j])
		}
		b.styles = styles
		blocks[i] = b
	}
	return c.withBlocks(blocks, sel, sel)
}

func removeRange(c Content, sel Selection) ([]Block, Pos) {
	start, end := c.SelectionBounds(sel)
	if start == end {
		return c.blocks, start
	}
	si, ei := c.blockIndex(start.Key), c.blockIndex(end.Key)
	first, last := c.blocks[si], c.blocks[ei]
	merged := first.withChars(first.slice(0, start.Offset).concat(last.slice(end.Offset, last.Len())))

	blocks := make([]Block, 0, len(c.blocks)-(ei-si))
	blocks = append(blocks, c.blocks[:si]...)
	blocks = append(blocks, merged)
	blocks = append(blocks, c.blocks[ei+1:]...)
	return blocks, start
}

func insertAt(c Content, p Pos, frag fragment) ([]Block, Pos) {
	p = c.ClampPos(p)
	i := c.blockIndex(p.Key)
	b := c.blocks[i]
	joined := b.slice(0, p.Offset).concat(frag, b.slice(p.Offset, b.Len()))

	blocks := append([]Block(nil), c.blocks...)
	blocks[i] = b.withChars(joined)
	return blocks, Pos{Key: p.Key, Offset: p.Offset + len(frag.chars)}
}

func splitAt(c Content, p Pos) ([]Block, Pos) {
	p = c.ClampPos(p)
	i := c.blockIndex(p.Key)
	b := c.blocks[i]

	head := b.withChars(b.slice(0, p.Offset))
	tail := Block{
		key:   newKey(c.hasKey),
		typ:   b.typ,
		depth: b.depth,
	}.withChars(b.slice(p.Offset, b.Len()))

	blocks := make([]Block, 0, len(c.blocks)+1)
	blocks = append(blocks, c.blocks[:i]...)
	blocks = append(blocks, head, tail)
	blocks = append(blocks, c.blocks[i+1:]...)
	return blocks, Pos{Key: tail.key, Offset: 0}
}

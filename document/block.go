package document

import (
	"maps"

	"github.com/iw2rmb/draftmark/internal/grapheme"
)

// Block is a paragraph-like unit of a Content: a key, a type tag, and text
// with per-character inline styles.
//
// Blocks are values; every modifier returns new Blocks.
type Block struct {
	key   string
	typ   BlockType
	depth int

	chars    []string
	styles   []StyleSet
	entities []string

	data map[string]any
}

// NewBlock returns an unstyled-text block. An invalid typ becomes Unstyled.
func NewBlock(key string, typ BlockType, text string) Block {
	if !typ.Valid() {
		typ = Unstyled
	}
	chars := grapheme.Split(text)
	return Block{
		key:      key,
		typ:      typ,
		chars:    chars,
		styles:   make([]StyleSet, len(chars)),
		entities: make([]string, len(chars)),
	}
}

func (b Block) Key() string { return b.key }

func (b Block) Type() BlockType { return b.typ }

func (b Block) Depth() int { return b.depth }

// Len returns the block length in grapheme clusters.
func (b Block) Len() int { return len(b.chars) }

func (b Block) Text() string { return grapheme.Join(b.chars) }

// TextBefore returns the text from offset 0 up to offset.
func (b Block) TextBefore(offset int) string {
	offset = clampInt(offset, 0, len(b.chars))
	return grapheme.Join(b.chars[:offset])
}

// CharAt returns the grapheme cluster at offset, or "" when out of range.
func (b Block) CharAt(offset int) string {
	if offset < 0 || offset >= len(b.chars) {
		return ""
	}
	return b.chars[offset]
}

// StyleAt returns the inline styles of the character at offset.
func (b Block) StyleAt(offset int) StyleSet {
	if offset < 0 || offset >= len(b.styles) {
		return StyleSet{}
	}
	return b.styles[offset]
}

// EntityAt returns the entity key of the character at offset, or "".
func (b Block) EntityAt(offset int) string {
	if offset < 0 || offset >= len(b.entities) {
		return ""
	}
	return b.entities[offset]
}

// Data returns a copy of the block metadata.
func (b Block) Data() map[string]any {
	if len(b.data) == 0 {
		return nil
	}
	return maps.Clone(b.data)
}

func (b Block) withType(typ BlockType) Block {
	b.typ = typ
	return b
}

func (b Block) withKey(key string) Block {
	b.key = key
	return b
}

// slice returns the characters in [start, end) as a detached fragment.
func (b Block) slice(start, end int) fragment {
	start = clampInt(start, 0, len(b.chars))
	end = clampInt(end, start, len(b.chars))
	return fragment{
		chars:    append([]string(nil), b.chars[start:end]...),
		styles:   append([]StyleSet(nil), b.styles[start:end]...),
		entities: append([]string(nil), b.entities[start:end]...),
	}
}

// withChars replaces the block text with frag, keeping key, type, and data.
func (b Block) withChars(frag fragment) Block {
	b.chars = frag.chars
	b.styles = frag.styles
	b.entities = frag.entities
	return b
}

// fragment is a run of characters with their styles and entities.
type fragment struct {
	chars    []string
	styles   []StyleSet
	entities []string
}

func newFragment(text string, style StyleSet) fragment {
	chars := grapheme.Split(text)
	f := fragment{
		chars:    chars,
		styles:   make([]StyleSet, len(chars)),
		entities: make([]string, len(chars)),
	}
	for i := range f.styles {
		f.styles[i] = style
	}
	return f
}

func (f fragment) concat(parts ...fragment) fragment {
	out := fragment{
		chars:    append([]string(nil), f.chars...),
		styles:   append([]StyleSet(nil), f.styles...),
		entities: append([]string(nil), f.entities...),
	}
	for _, p := range parts {
		out.chars = append(out.chars, p.chars...)
		out.styles = append(out.styles, p.styles...)
		out.entities = append(out.entities, p.entities...)
	}
	return out
}

package document

import "sort"

// BlockType tags a block with its block-level formatting.
type BlockType string

const (
	Unstyled          BlockType = "unstyled"
	HeaderOne         BlockType = "header-one"
	HeaderTwo         BlockType = "header-two"
	HeaderThree       BlockType = "header-three"
	HeaderFour        BlockType = "header-four"
	HeaderFive        BlockType = "header-five"
	HeaderSix         BlockType = "header-six"
	Blockquote        BlockType = "blockquote"
	CodeBlock         BlockType = "code-block"
	UnorderedListItem BlockType = "unordered-list-item"
	OrderedListItem   BlockType = "ordered-list-item"
	Atomic            BlockType = "atomic"
)

// Valid reports whether t belongs to the closed set of block types.
func (t BlockType) Valid() bool {
	switch t {
	case Unstyled, HeaderOne, HeaderTwo, HeaderThree, HeaderFour, HeaderFive, HeaderSix,
		Blockquote, CodeBlock, UnorderedListItem, OrderedListItem, Atomic:
		return true
	default:
		return false
	}
}

// IsHeader reports whether t is one of the six header levels.
func (t BlockType) IsHeader() bool {
	switch t {
	case HeaderOne, HeaderTwo, HeaderThree, HeaderFour, HeaderFive, HeaderSix:
		return true
	default:
		return false
	}
}

// InlineStyle names a character-level style.
type InlineStyle string

const (
	Bold          InlineStyle = "BOLD"
	Italic        InlineStyle = "ITALIC"
	Underline     InlineStyle = "UNDERLINE"
	Code          InlineStyle = "CODE"
	Strikethrough InlineStyle = "STRIKETHROUGH"
	RedLine       InlineStyle = "RED_LINE"
)

// StyleSet is an immutable, ordered set of inline styles.
type StyleSet struct {
	styles []InlineStyle
}

// NewStyleSet returns the set containing styles.
func NewStyleSet(styles ...InlineStyle) StyleSet {
	var s StyleSet
	for _, st := range styles {
		s = s.Add(st)
	}
	return s
}

func (s StyleSet) index(style InlineStyle) (int, bool) {
	i := sort.Search(len(s.styles), func(i int) bool { return s.styles[i] >= style })
	return i, i < len(s.styles) && s.styles[i] == style
}

func (s StyleSet) Has(style InlineStyle) bool {
	_, ok := s.index(style)
	return ok
}

func (s StyleSet) Add(style InlineStyle) StyleSet {
	if style == "" {
		return s
	}
	i, ok := s.index(style)
	if ok {
		return s
	}
	out := make([]InlineStyle, 0, len(s.styles)+1)
	out = append(out, s.styles[:i]...)
	out = append(out, style)
	out = append(out, s.styles[i:]...)
	return StyleSet{styles: out}
}

func (s StyleSet) Remove(style InlineStyle) StyleSet {
	i, ok := s.index(style)
	if !ok {
		return s
	}
	out := make([]InlineStyle, 0, len(s.styles)-1)
	out = append(out, s.styles[:i]...)
	out = append(out, s.styles[i+1:]...)
	return StyleSet{styles: out}
}

func (s StyleSet) Toggle(style InlineStyle) StyleSet {
	if s.Has(style) {
		return s.Remove(style)
	}
	return s.Add(style)
}

func (s StyleSet) Len() int { return len(s.styles) }

func (s StyleSet) IsEmpty() bool { return len(s.styles) == 0 }

// Styles returns the styles in sorted order.
func (s StyleSet) Styles() []InlineStyle {
	return append([]InlineStyle(nil), s.styles...)
}

func (s StyleSet) Equal(o StyleSet) bool {
	if len(s.styles) != len(o.styles) {
		return false
	}
	for i := range s.styles {
		if s.styles[i] != o.styles[i] {
			return false
		}
	}
	return true
}

// Pos is a block-local location: a block key and a grapheme offset.
type Pos struct {
	Key    string
	Offset int
}

// Selection is an (anchor, focus) pair. Anchor and Focus may be in any
// document order; use Content.SelectionBounds for ordered endpoints.
type Selection struct {
	Anchor Pos
	Focus  Pos
}

// Caret returns a collapsed selection at (key, offset).
func Caret(key string, offset int) Selection {
	p := Pos{Key: key, Offset: offset}
	return Selection{Anchor: p, Focus: p}
}

// Collapsed reports whether the selection is a caret with no text selected.
func (s Selection) Collapsed() bool { return s.Anchor == s.Focus }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package document

import (
	"reflect"
	"testing"
)

func TestBlockType_Valid(t *testing.T) {
	for _, typ := range []BlockType{Unstyled, HeaderOne, HeaderSix, Blockquote, CodeBlock, Atomic} {
		if !typ.Valid() {
			t.Fatalf("%q must be valid", typ)
		}
	}
	for _, typ := range []BlockType{"", "header-seven", "HEADER-ONE"} {
		if typ.Valid() {
			t.Fatalf("%q must be invalid", typ)
		}
	}
	if !HeaderThree.IsHeader() || Blockquote.IsHeader() {
		t.Fatalf("IsHeader mismatch")
	}
}

func TestStyleSet_AddRemoveToggle(t *testing.T) {
	s := NewStyleSet(Underline, Bold, Bold)
	if got, want := s.Styles(), []InlineStyle{Bold, Underline}; !reflect.DeepEqual(got, want) {
		t.Fatalf("styles: got %v, want %v", got, want)
	}

	s2 := s.Remove(Bold)
	if s2.Has(Bold) || !s.Has(Bold) {
		t.Fatalf("Remove must not mutate the receiver")
	}
	if got := s2.Toggle(RedLine); !got.Has(RedLine) || got.Len() != 2 {
		t.Fatalf("toggle on: got %v", got.Styles())
	}
	if got := s.Toggle(Bold); got.Has(Bold) {
		t.Fatalf("toggle off: got %v", got.Styles())
	}
	if !NewStyleSet(Bold, Italic).Equal(NewStyleSet(Italic, Bold)) {
		t.Fatalf("sets with same members must be equal")
	}
	if !(StyleSet{}).IsEmpty() {
		t.Fatalf("zero StyleSet must be empty")
	}
}

func TestSelection_Collapsed(t *testing.T) {
	if !Caret("a", 2).Collapsed() {
		t.Fatalf("caret must be collapsed")
	}
	sel := Selection{Anchor: Pos{Key: "a", Offset: 0}, Focus: Pos{Key: "a", Offset: 1}}
	if sel.Collapsed() {
		t.Fatalf("range must not be collapsed")
	}
}

func TestContent_SelectionBoundsOrdersBackwardSelection(t *testing.T) {
	c := ContentFromText("ab\ncd")
	blocks := c.Blocks()
	sel := Selection{
		Anchor: Pos{Key: blocks[1].Key(), Offset: 1},
		Focus:  Pos{Key: blocks[0].Key(), Offset: 99},
	}
	start, end := c.SelectionBounds(sel)
	if got, want := start, (Pos{Key: blocks[0].Key(), Offset: 2}); got != want {
		t.Fatalf("start: got %v, want %v", got, want)
	}
	if got, want := end, (Pos{Key: blocks[1].Key(), Offset: 1}); got != want {
		t.Fatalf("end: got %v, want %v", got, want)
	}
	if !c.IsBackward(sel) {
		t.Fatalf("expected backward selection")
	}
}

func TestContent_HasText(t *testing.T) {
	if EmptyContent().HasText() {
		t.Fatalf("empty content must not have text")
	}
	if !ContentFromText("x").HasText() {
		t.Fatalf("single non-empty block must have text")
	}
	if !ContentFromText("\n").HasText() {
		t.Fatalf("two blocks count as text")
	}
}

func TestNewContent_AssignsUniqueKeys(t *testing.T) {
	c := NewContent(NewBlock("k", Unstyled, "a"), NewBlock("k", Unstyled, "b"), NewBlock("", Unstyled, "c"))
	seen := map[string]bool{}
	for _, b := range c.Blocks() {
		if b.Key() == "" || seen[b.Key()] {
			t.Fatalf("duplicate or empty key %q", b.Key())
		}
		seen[b.Key()] = true
	}
	if got, want := c.FirstBlock().Key(), "k"; got != want {
		t.Fatalf("first key: got %q, want %q", got, want)
	}
}

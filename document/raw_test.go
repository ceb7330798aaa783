package document

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestRaw_RoundTripPreservesBlocksAndStyles(t *testing.T) {
	s := NewEmpty(Options{})
	s = typeText(t, s, "Title")
	s = ToggleBlockType(s, HeaderOne)
	s = SplitBlockDefault(s)
	s = ToggleBlockType(s, HeaderOne)
	s = SetInlineStyleOverride(s, NewStyleSet(RedLine))
	s = typeText(t, s, "red")
	s = ForceSelection(s, s.Selection())
	s = ToggleInlineStyle(s, Bold)
	s = typeText(t, s, "b")

	data, err := MarshalRaw(s.Content())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalRaw(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.BlockCount() != s.Content().BlockCount() {
		t.Fatalf("block count: got %d, want %d", got.BlockCount(), s.Content().BlockCount())
	}
	if !reflect.DeepEqual(blockTypes(got), blockTypes(s.Content())) {
		t.Fatalf("types: got %v, want %v", blockTypes(got), blockTypes(s.Content()))
	}
	if !reflect.DeepEqual(blockTexts(got), blockTexts(s.Content())) {
		t.Fatalf("texts: got %q, want %q", blockTexts(got), blockTexts(s.Content()))
	}
	for i, b := range got.Blocks() {
		want := s.Content().Blocks()[i]
		if b.Key() != want.Key() {
			t.Fatalf("block %d key: got %q, want %q", i, b.Key(), want.Key())
		}
		for j := 0; j < b.Len(); j++ {
			if !b.StyleAt(j).Equal(want.StyleAt(j)) {
				t.Fatalf("block %d char %d styles: got %v, want %v", i, j, b.StyleAt(j).Styles(), want.StyleAt(j).Styles())
			}
		}
	}

	again, err := MarshalRaw(got)
	if err != nil {
		t.Fatalf("marshal again: %v", err)
	}
	if string(again) != string(data) {
		t.Fatalf("second round trip differs:\n%s\n%s", again, data)
	}
}

func TestConvertToRaw_StyleRanges(t *testing.T) {
	c := ContentFromText("abcd")
	key := c.FirstBlock().Key()
	c = ApplyInlineStyle(c, Selection{Anchor: Pos{Key: key, Offset: 1}, Focus: Pos{Key: key, Offset: 3}}, Underline)
	c = ApplyInlineStyle(c, Selection{Anchor: Pos{Key: key, Offset: 0}, Focus: Pos{Key: key, Offset: 1}}, Bold)
	c = ApplyInlineStyle(c, Selection{Anchor: Pos{Key: key, Offset: 3}, Focus: Pos{Key: key, Offset: 4}}, Bold)

	raw := ConvertToRaw(c)
	want := []RawInlineStyleRange{
		{Offset: 0, Length: 1, Style: Bold},
		{Offset: 3, Length: 1, Style: Bold},
		{Offset: 1, Length: 2, Style: Underline},
	}
	if got := raw.Blocks[0].InlineStyleRanges; !reflect.DeepEqual(got, want) {
		t.Fatalf("ranges: got %+v, want %+v", got, want)
	}
	if raw.Blocks[0].Data == nil || raw.Blocks[0].EntityRanges == nil {
		t.Fatalf("data and entity ranges must encode as empty, not null")
	}
}

func TestUnmarshalRaw_DraftPayload(t *testing.T) {
	payload := `{"blocks":[
		{"key":"9u1k0","text":"Hello","type":"header-one","depth":0,"inlineStyleRanges":[],"entityRanges":[],"data":{}},
		{"key":"b2c3d","text":"link here","type":"unstyled","depth":0,
		 "inlineStyleRanges":[{"offset":0,"length":4,"style":"RED_LINE"}],
		 "entityRanges":[{"offset":5,"length":4,"key":0}],"data":{}}],
		"entityMap":{"0":{"type":"LINK","mutability":"MUTABLE","data":{"url":"https://example.com"}}}}`

	c, err := UnmarshalRaw([]byte(payload))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got, want := blockTypes(c), []BlockType{HeaderOne, Unstyled}; !reflect.DeepEqual(got, want) {
		t.Fatalf("types: got %v, want %v", got, want)
	}
	second := c.Blocks()[1]
	if !second.StyleAt(3).Has(RedLine) || second.StyleAt(4).Has(RedLine) {
		t.Fatalf("red range misplaced")
	}
	if got := second.EntityAt(5); got != "0" {
		t.Fatalf("entity at 5: got %q, want %q", got, "0")
	}
	if e, ok := c.Entity("0"); !ok || e.Type != "LINK" {
		t.Fatalf("entity map not preserved: %+v", e)
	}

	raw := ConvertToRaw(c)
	if got, want := raw.Blocks[1].EntityRanges, []RawEntityRange{{Offset: 5, Length: 4, Key: 0}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("entity ranges: got %+v, want %+v", got, want)
	}
	if _, ok := raw.EntityMap["0"]; !ok {
		t.Fatalf("entity map must carry referenced entity")
	}
}

func TestUnmarshalRaw_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":       `{"blocks":`,
		"no blocks":      `{"blocks":[],"entityMap":{}}`,
		"unknown type":   `{"blocks":[{"key":"a","text":"x","type":"header-nine"}]}`,
		"negative depth": `{"blocks":[{"key":"a","text":"x","type":"unstyled","depth":-1}]}`,
		"duplicate key":  `{"blocks":[{"key":"a","text":"x"},{"key":"a","text":"y"}]}`,
		"style overflow": `{"blocks":[{"key":"a","text":"x","inlineStyleRanges":[{"offset":0,"length":2,"style":"BOLD"}]}]}`,
		"missing entity": `{"blocks":[{"key":"a","text":"x","entityRanges":[{"offset":0,"length":1,"key":3}]}],"entityMap":{}}`,
	}
	for name, payload := range cases {
		_, err := UnmarshalRaw([]byte(payload))
		if !errors.Is(err, ErrMalformedRaw) {
			t.Fatalf("%s: got %v, want ErrMalformedRaw", name, err)
		}
	}
}

func TestUnmarshalRaw_DefaultsMissingTypeAndKey(t *testing.T) {
	c, err := UnmarshalRaw([]byte(`{"blocks":[{"text":"plain"}]}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b := c.FirstBlock()
	if b.Type() != Unstyled || strings.TrimSpace(b.Key()) == "" {
		t.Fatalf("got type %q key %q", b.Type(), b.Key())
	}
}

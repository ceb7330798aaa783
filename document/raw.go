package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strconv"
)

// ErrMalformedRaw reports raw content that cannot form a valid Content.
var ErrMalformedRaw = errors.New("malformed raw content")

// RawContent is the portable block-list form of a Content.
type RawContent struct {
	Blocks    []RawBlock           `json:"blocks"`
	EntityMap map[string]RawEntity `json:"entityMap"`
}

type RawBlock struct {
	Key               string                `json:"key"`
	Text              string                `json:"text"`
	Type              BlockType             `json:"type"`
	Depth             int                   `json:"depth"`
	InlineStyleRanges []RawInlineStyleRange `json:"inlineStyleRanges"`
	EntityRanges      []RawEntityRange      `json:"entityRanges"`
	Data              map[string]any        `json:"data"`
}

// RawInlineStyleRange marks [Offset, Offset+Length) with Style.
type RawInlineStyleRange struct {
	Offset int         `json:"offset"`
	Length int         `json:"length"`
	Style  InlineStyle `json:"style"`
}

// RawEntityRange links [Offset, Offset+Length) to EntityMap[Key].
type RawEntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

// RawEntity is non-text content referenced by entity ranges. It is carried
// through edits unchanged.
type RawEntity struct {
	Type       string         `json:"type"`
	Mutability string         `json:"mutability"`
	Data       map[string]any `json:"data"`
}

// ConvertToRaw returns the portable form of c. Entity keys are renumbered in
// order of first reference; unreferenced entities are dropped.
func ConvertToRaw(c Content) RawContent {
	raw := RawContent{
		Blocks:    make([]RawBlock, 0, len(c.blocks)),
		EntityMap: map[string]RawEntity{},
	}
	renumber := map[string]int{}

	for _, b := range c.blocks {
		rb := RawBlock{
			Key:               b.key,
			Text:              b.Text(),
			Type:              b.typ,
			Depth:             b.depth,
			InlineStyleRanges: encodeStyleRanges(b),
			EntityRanges:      []RawEntityRange{},
			Data:              b.Data(),
		}
		if rb.Data == nil {
			rb.Data = map[string]any{}
		}

		for _, run := range entityRuns(b) {
			n, ok := renumber[run.key]
			if !ok {
				n = len(renumber)
				renumber[run.key] = n
				raw.EntityMap[strconv.Itoa(n)] = c.entities[run.key]
			}
			rb.EntityRanges = append(rb.EntityRanges, RawEntityRange{
				Offset: run.offset,
				Length: run.length,
				Key:    n,
			})
		}
		raw.Blocks = append(raw.Blocks, rb)
	}
	return raw
}

// ConvertFromRaw validates raw and builds a Content from it.
func ConvertFromRaw(raw RawContent) (Content, error) {
	if len(raw.Blocks) == 0 {
		return Content{}, fmt.Errorf("%w: no blocks", ErrMalformedRaw)
	}

	blocks := make([]Block, 0, len(raw.Blocks))
	seen := make(map[string]bool, len(raw.Blocks))
	for i, rb := range raw.Blocks {
		typ := rb.Type
		if typ == "" {
			typ = Unstyled
		}
		if !typ.Valid() {
			return Content{}, fmt.Errorf("%w: block %d: unknown type %q", ErrMalformedRaw, i, rb.Type)
		}
		if rb.Depth < 0 {
			return Content{}, fmt.Errorf("%w: block %d: negative depth", ErrMalformedRaw, i)
		}
		if rb.Key != "" && seen[rb.Key] {
			return Content{}, fmt.Errorf("%w: block %d: duplicate key %q", ErrMalformedRaw, i, rb.Key)
		}
		seen[rb.Key] = true

		b := NewBlock(rb.Key, typ, rb.Text)
		b.depth = rb.Depth
		if len(rb.Data) > 0 {
			b.data = maps.Clone(rb.Data)
		}

		for _, r := range rb.InlineStyleRanges {
			if r.Style == "" || !validRange(r.Offset, r.Length, b.Len()) {
				return Content{}, fmt.Errorf("%w: block %d: bad style range %+v", ErrMalformedRaw, i, r)
			}
			for j := r.Offset; j < r.Offset+r.Length; j++ {
				b.styles[j] = b.styles[j].Add(r.Style)
			}
		}
		for _, r := range rb.EntityRanges {
			key := strconv.Itoa(r.Key)
			if _, ok := raw.EntityMap[key]; !ok || !validRange(r.Offset, r.Length, b.Len()) {
				return Content{}, fmt.Errorf("%w: block %d: bad entity range %+v", ErrMalformedRaw, i, r)
			}
			for j := r.Offset; j < r.Offset+r.Length; j++ {
				b.entities[j] = key
			}
		}
		blocks = append(blocks, b)
	}

	c := NewContent(blocks...)
	if len(raw.EntityMap) > 0 {
		c.entities = maps.Clone(raw.EntityMap)
	}
	return c, nil
}

// MarshalRaw encodes c as raw JSON.
func MarshalRaw(c Content) ([]byte, error) {
	return json.Marshal(ConvertToRaw(c))
}

// UnmarshalRaw decodes raw JSON into a Content.
func UnmarshalRaw(data []byte) (Content, error) {
	var raw RawContent
	if err := json.Unmarshal(data, &raw); err != nil {
		return Content{}, fmt.Errorf("%w: %v", ErrMalformedRaw, err)
	}
	return ConvertFromRaw(raw)
}

func validRange(offset, length, n int) bool {
	return offset >= 0 && length >= 0 && offset+length <= n
}

// encodeStyleRanges emits one range per contiguous run of each style,
// styles ordered by first appearance.
func encodeStyleRanges(b Block) []RawInlineStyleRange {
	out := []RawInlineStyleRange{}
	var order []InlineStyle
	seen := map[InlineStyle]bool{}
	for _, set := range b.styles {
		for _, st := range set.styles {
			if !seen[st] {
				seen[st] = true
				order = append(order, st)
			}
		}
	}
	for _, st := range order {
		start := -1
		for i := 0; i <= len(b.styles); i++ {
			has := i < len(b.styles) && b.styles[i].Has(st)
			switch {
			case has && start < 0:
				start = i
			case !has && start >= 0:
				out = append(out, RawInlineStyleRange{Offset: start, Length: i - start, Style: st})
				start = -1
			}
		}
	}
	return out
}

type entityRun struct {
	key    string
	offset int
	length int
}

func entityRuns(b Block) []entityRun {
	var out []entityRun
	start := -1
	for i := 0; i <= len(b.entities); i++ {
		cur := ""
		if i < len(b.entities) {
			cur = b.entities[i]
		}
		if start >= 0 && cur != b.entities[start] {
			out = append(out, entityRun{key: b.entities[start], offset: start, length: i - start})
			start = -1
		}
		if start < 0 && cur != "" {
			start = i
		}
	}
	return out
}

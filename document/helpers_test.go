package document

import "testing"

func blockTexts(c Content) []string {
	out := make([]string, 0, c.BlockCount())
	for _, b := range c.Blocks() {
		out = append(out, b.Text())
	}
	return out
}

func blockTypes(c Content) []BlockType {
	out := make([]BlockType, 0, c.BlockCount())
	for _, b := range c.Blocks() {
		out = append(out, b.Type())
	}
	return out
}

func typeText(t *testing.T, s EditorState, text string) EditorState {
	t.Helper()
	for _, ch := range text {
		s = InsertCharacters(s, string(ch))
	}
	return s
}

func caretAt(t *testing.T, s EditorState, blockIdx, offset int) EditorState {
	t.Helper()
	blocks := s.Content().Blocks()
	if blockIdx >= len(blocks) {
		t.Fatalf("block %d out of range (have %d)", blockIdx, len(blocks))
	}
	return ForceSelection(s, Caret(blocks[blockIdx].Key(), offset))
}

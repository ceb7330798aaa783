package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/draftmark/document"
)

func TestRender_CursorProducesPaddingWhenFocused(t *testing.T) {
	m := New(Config{
		State: stateWithText("ab"),
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtBlockEnd(t *testing.T) {
	s := stateWithText("ab")
	s = document.MoveSelection(s, document.Move{Dir: document.DirEnd})
	m := New(Config{
		State: s,
		Style: Style{Cursor: lipgloss.NewStyle().SetString("|")},
	})

	got := m.renderContent()
	if !strings.HasPrefix(got, "ab") || len(got) <= 2 {
		t.Fatalf("end-of-block cursor: got %q", got)
	}
}

func TestRender_CustomStylesUseColorProfile(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{Text: r.NewStyle()}
	red := r.NewStyle().Foreground(lipgloss.Color("#ff0000"))

	c := document.NewContent(document.NewBlock("k", document.Unstyled, "ab"))
	c = document.ApplyInlineStyle(c, document.Selection{
		Anchor: document.Pos{Key: "k", Offset: 0},
		Focus:  document.Pos{Key: "k", Offset: 1},
	}, document.RedLine)

	m := New(Config{
		State:        document.NewWithContent(c, document.Options{}),
		Style:        st,
		CustomStyles: map[document.InlineStyle]lipgloss.Style{document.RedLine: red},
	})
	m = m.Blur()

	got := m.renderContent()
	want := red.Inherit(st.Text).Render("a") + st.Text.Render("b")
	if got != want {
		t.Fatalf("unexpected styled render:\n got: %q\nwant: %q", got, want)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI color in %q", got)
	}
}

func TestRender_ListPrefixes(t *testing.T) {
	c := document.NewContent(
		document.NewBlock("a", document.OrderedListItem, "one"),
		document.NewBlock("b", document.OrderedListItem, "two"),
		document.NewBlock("c", document.UnorderedListItem, "dot"),
		document.NewBlock("d", document.Blockquote, "quote"),
		document.NewBlock("e", document.OrderedListItem, "again"),
	)
	m := New(Config{State: document.NewWithContent(c, document.Options{})}).Blur()

	got := strings.Split(m.renderContent(), "\n")
	want := []string{"1. one", "2. two", "• dot", "│ quote", "1. again"}
	if len(got) != len(want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRender_Placeholder(t *testing.T) {
	m := New(Config{Placeholder: "Start typing"}).Blur()
	if got := m.renderContent(); got != "Start typing" {
		t.Fatalf("placeholder: got %q, want %q", got, "Start typing")
	}
}

func TestRender_WrapsAtWidth(t *testing.T) {
	m := New(Config{State: stateWithText("ab cd")}).Blur()
	m = m.SetSize(3, 5)

	got := m.renderContent()
	if want := "ab \ncd"; got != want {
		t.Fatalf("wrapped render: got %q, want %q", got, want)
	}
}

func TestWrapCells(t *testing.T) {
	mk := func(s string) []cell {
		var out []cell
		for _, r := range s {
			out = append(out, cell{text: string(r), width: 1})
		}
		return out
	}
	join := func(lines [][]cell) []string {
		var out []string
		for _, l := range lines {
			var sb strings.Builder
			for _, c := range l {
				sb.WriteString(c.text)
			}
			out = append(out, sb.String())
		}
		return out
	}

	cases := []struct {
		in    string
		width int
		want  []string
	}{
		{"abcdef", 2, []string{"ab", "cd", "ef"}},
		{"ab cd", 3, []string{"ab ", "cd"}},
		{"ab cd", 0, []string{"ab cd"}},
		{"", 4, []string{""}},
	}
	for _, tc := range cases {
		got := join(wrapCells(mk(tc.in), tc.width))
		if strings.Join(got, "|") != strings.Join(tc.want, "|") {
			t.Fatalf("wrap %q at %d: got %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestCellWidth(t *testing.T) {
	if got := cellWidth("a"); got != 1 {
		t.Fatalf("width of a: got %d, want 1", got)
	}
	if got := cellWidth("世"); got != 2 {
		t.Fatalf("width of wide rune: got %d, want 2", got)
	}
}

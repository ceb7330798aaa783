package autoformat

import (
	"testing"

	"github.com/iw2rmb/draftmark/document"
)

func TestMatch_DefaultTable(t *testing.T) {
	cases := []struct {
		name      string
		chars     string
		preceding string
		collapsed bool
		want      string
		wantOK    bool
	}{
		{name: "heading", chars: " ", preceding: "#", collapsed: true, want: "#", wantOK: true},
		{name: "bold", chars: " ", preceding: "*", collapsed: true, want: "*", wantOK: true},
		{name: "red", chars: " ", preceding: "**", collapsed: true, want: "**", wantOK: true},
		{name: "underline", chars: " ", preceding: "***", collapsed: true, want: "***", wantOK: true},
		{name: "suffix only", chars: " ", preceding: "x#", collapsed: true},
		{name: "trailing text", chars: " ", preceding: "# ", collapsed: true},
		{name: "four stars", chars: " ", preceding: "****", collapsed: true},
		{name: "not a space", chars: "x", preceding: "#", collapsed: true},
		{name: "tab", chars: "\t", preceding: "#", collapsed: true},
		{name: "range selected", chars: " ", preceding: "#", collapsed: false},
		{name: "empty", chars: " ", preceding: "", collapsed: true},
		{name: "case sensitive", chars: " ", preceding: "＃", collapsed: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Match(tc.chars, tc.preceding, tc.collapsed)
			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if ok && got.Trigger != tc.want {
				t.Fatalf("trigger: got %q, want %q", got.Trigger, tc.want)
			}
		})
	}
}

func TestMatch_Actions(t *testing.T) {
	r, _ := Match(" ", "#", true)
	if r.Action.Kind != ActionBlockType || r.Action.BlockType != document.HeaderOne {
		t.Fatalf("heading action: %+v", r.Action)
	}
	r, _ = Match(" ", "***", true)
	if r.Action.Kind != ActionStyleOverride || r.Action.Style != document.Underline {
		t.Fatalf("underline action: %+v", r.Action)
	}
	r, _ = Match(" ", "**", true)
	if r.Action.Style != document.RedLine {
		t.Fatalf("red action: %+v", r.Action)
	}
	r, _ = Match(" ", "*", true)
	if r.Action.Style != document.Bold {
		t.Fatalf("bold action: %+v", r.Action)
	}
}

func TestSortRules_LongestFirst(t *testing.T) {
	e := New(WithRules(
		StyleRule("*", document.Bold),
		StyleRule("**", document.RedLine),
		BlockRule("##", document.HeaderTwo),
		StyleRule("***", document.Underline),
		StyleRule("", document.Italic),
	))
	rules := e.Rules()
	var got []string
	for _, r := range rules {
		got = append(got, r.Trigger)
	}
	want := []string{"***", "**", "##", "*"}
	if len(got) != len(want) {
		t.Fatalf("rules: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rules: got %q, want %q", got, want)
		}
	}
}

func TestEngineMatch_CustomRules(t *testing.T) {
	e := New(WithRules(BlockRule("##", document.HeaderTwo), StyleRule("_", document.Italic)))
	if _, ok := e.Match(" ", "#", true); ok {
		t.Fatalf("default heading rule must be replaced")
	}
	r, ok := e.Match(" ", "##", true)
	if !ok || r.Action.BlockType != document.HeaderTwo {
		t.Fatalf("custom heading: %+v ok=%v", r, ok)
	}
}

func TestDefaultRules_ReturnsCopy(t *testing.T) {
	rules := DefaultRules()
	rules[0].Trigger = "!"
	if _, ok := Match(" ", "#", true); !ok {
		t.Fatalf("mutating DefaultRules result must not affect matching")
	}
}

package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/draftmark/document"
)

func TestOnChange_FiresOnTransitionsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		State: stateWithText("ab"),
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if events[0].ContentChanged {
		t.Fatalf("move reported a content change")
	}
	if got := events[0].Selection.Focus.Offset; got != 1 {
		t.Fatalf("event caret after move: got %d, want %d", got, 1)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // to end of block
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	ev := events[2]
	if !ev.ContentChanged {
		t.Fatalf("insert did not report a content change")
	}
	if got := ev.Content.PlainText(); got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if got := ev.Change; got != document.ChangeInsertCharacters {
		t.Fatalf("event change type: got %q, want %q", got, document.ChangeInsertCharacters)
	}
}

type savedMsg struct{ text string }

func TestOnSave_ReturnsHostCommand(t *testing.T) {
	var saved []SaveEvent
	m := New(Config{
		State: stateWithText("hello"),
		OnSave: func(ev SaveEvent) tea.Cmd {
			saved = append(saved, ev)
			return func() tea.Msg { return savedMsg{text: ev.Content.PlainText()} }
		},
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(saved) != 1 {
		t.Fatalf("save events: got %d, want %d", len(saved), 1)
	}
	if cmd == nil {
		t.Fatalf("expected a command from save")
	}
	msg, ok := cmd().(savedMsg)
	if !ok || msg.text != "hello" {
		t.Fatalf("save command message: got %#v", msg)
	}
}

package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/draftmark/autoformat"
	"github.com/iw2rmb/draftmark/document"
	"github.com/iw2rmb/draftmark/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	before := m.state

	// Paste events insert literal text and never trigger shortcuts or
	// autoformat rules.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.state = document.Paste(m.state, normalizeNewlines(string(msg.Runes)))
		}
		m.commit(before)
		return m, nil
	}

	km := m.cfg.KeyMap
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, km.Save):
		if m.cfg.OnSave != nil {
			cmd = m.cfg.OnSave(SaveEvent{Version: m.state.Version(), Content: m.state.Content()})
		}

	case key.Matches(msg, km.Left):
		m.move(document.DirLeft, false)
	case key.Matches(msg, km.Right):
		m.move(document.DirRight, false)
	case key.Matches(msg, km.Up):
		m.move(document.DirUp, false)
	case key.Matches(msg, km.Down):
		m.move(document.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		m.move(document.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		m.move(document.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		m.move(document.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		m.move(document.DirDown, true)

	case key.Matches(msg, km.Home):
		m.move(document.DirHome, false)
	case key.Matches(msg, km.End):
		m.move(document.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		m.move(document.DirDocStart, false)
	case key.Matches(msg, km.DocEnd):
		m.move(document.DirDocEnd, false)
	case key.Matches(msg, km.SelectAll):
		m.state = document.SelectAll(m.state)

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.backspace()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.delete()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.splitBlock()
		}

	case key.Matches(msg, km.Bold):
		m.keyCommand(document.CommandBold)
	case key.Matches(msg, km.Italic):
		m.keyCommand(document.CommandItalic)
	case key.Matches(msg, km.Underline):
		m.keyCommand(document.CommandUnderline)
	case key.Matches(msg, km.Code):
		m.keyCommand(document.CommandCode)
	case key.Matches(msg, km.Strikethrough):
		m.keyCommand(document.CommandStrikethrough)

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			m.state, _ = document.Undo(m.state)
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			m.state, _ = document.Redo(m.state)
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.cfg.ReadOnly {
			break
		}
		switch {
		case msg.Type == tea.KeySpace:
			m.insert(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.insert(string(msg.Runes))
		}
	}

	m.commit(before)
	return m, cmd
}

func (m *Model) move(dir document.MoveDir, extend bool) {
	m.state = document.MoveSelection(m.state, document.Move{Dir: dir, Extend: extend})
}

// insert offers each grapheme to the handler before typing it.
func (m *Model) insert(text string) {
	for _, g := range grapheme.Split(text) {
		if m.cfg.Handler != nil {
			if next, res := m.cfg.Handler.HandleBeforeInput(g, m.state); res == autoformat.Handled {
				m.state = next
				continue
			}
		}
		m.state = document.InsertCharacters(m.state, g)
	}
}

func (m *Model) splitBlock() {
	if m.cfg.Handler != nil {
		if next, res := m.cfg.Handler.HandleReturn(m.state); res == autoformat.Handled {
			m.state = next
			return
		}
	}
	m.state = document.SplitBlockDefault(m.state)
}

func (m *Model) backspace() {
	if m.handleKeyCommand(document.CommandBackspace) {
		return
	}
	m.state, _ = document.Backspace(m.state)
}

func (m *Model) delete() {
	if m.handleKeyCommand(document.CommandDelete) {
		return
	}
	m.state, _ = document.Delete(m.state)
}

// keyCommand runs a style command. Without a handler the document's own
// command handler is used.
func (m *Model) keyCommand(cmd document.KeyCommand) {
	if m.cfg.ReadOnly {
		return
	}
	if m.handleKeyCommand(cmd) {
		return
	}
	if m.cfg.Handler == nil {
		m.state, _ = document.HandleKeyCommand(m.state, cmd)
	}
}

func (m *Model) handleKeyCommand(cmd document.KeyCommand) bool {
	if m.cfg.Handler == nil {
		return false
	}
	next, res := m.cfg.Handler.HandleKeyCommand(cmd, m.state)
	if res != autoformat.Handled {
		return false
	}
	m.state = next
	return true
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	sel := m.state.Selection()
	if sel.Collapsed() {
		return
	}
	s := m.state.Content().TextInSelection(sel)
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m *Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.state.Selection().Collapsed() {
		return
	}
	m.copySelection()
	m.state, _ = document.Backspace(m.state)
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.state = document.Paste(m.state, normalizeNewlines(s))
}

// normalizeNewlines converts external line endings to '\n'.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/draftmark/document"
)

// Model is a Bubble Tea component that renders and edits a rich-text
// document.
type Model struct {
	cfg   Config
	state document.EditorState

	focused bool

	viewport viewport.Model

	// Visual row of the selection focus in the last render.
	focusRow int
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	state := cfg.State
	if state.Content().BlockCount() == 0 {
		state = document.NewEmpty(document.Options{HistoryLimit: cfg.HistoryLimit})
	}
	m := Model{
		cfg:      cfg,
		state:    state,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

// State returns the current editor state.
func (m Model) State() document.EditorState { return m.state }

// SetState replaces the editor state without firing OnChange.
func (m Model) SetState(s document.EditorState) Model {
	if s.Content().BlockCount() == 0 {
		s = document.NewEmpty(document.Options{HistoryLimit: m.cfg.HistoryLimit})
	}
	m.state = s
	m.rebuildContent()
	m.followFocus()
	return m
}

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followFocus()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followFocus()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followFocus() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if m.focusRow < y {
		m.viewport.SetYOffset(m.focusRow)
		return
	}
	if m.focusRow >= y+h {
		m.viewport.SetYOffset(m.focusRow - h + 1)
	}
}

// commit adopts the state reached by an update and fires OnChange when it
// differs from before.
func (m *Model) commit(before document.EditorState) {
	if m.state.Version() == before.Version() {
		return
	}
	m.rebuildContent()
	m.followFocus()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(before, m.state))
	}
}

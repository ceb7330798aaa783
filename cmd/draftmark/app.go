package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/draftmark/autoformat"
	"github.com/iw2rmb/draftmark/config"
	"github.com/iw2rmb/draftmark/document"
	"github.com/iw2rmb/draftmark/editor"
	"github.com/iw2rmb/draftmark/persist"
)

const maxEditorWidth = 80

type appKeys struct {
	Quit key.Binding
	Help key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("ctrl+q", "quit")),
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	}
}

// savedMsg reports the outcome of a manual save.
type savedMsg struct {
	bytes int
	err   error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type app struct {
	title  string
	editor editor.Model
	help   help.Model
	keys   appKeys

	status    string
	statusErr bool

	width, height int
}

func newApp(ctx context.Context, cfg config.Config, p *persist.Persister, log *slog.Logger) app {
	state := p.Load(ctx, document.Options{HistoryLimit: cfg.HistoryLimit})

	var onChange func(editor.ChangeEvent)
	if cfg.Autosave {
		onChange = func(ev editor.ChangeEvent) {
			if !ev.ContentChanged {
				return
			}
			// Failures are logged by the persister; editing continues.
			_ = p.Autosave(ctx, ev.Content)
		}
	}

	ed := editor.New(editor.Config{
		State:        state,
		Handler:      autoformat.New(),
		Style:        editor.DefaultStyle(),
		Placeholder:  "Type # for a heading; *, ** or *** for bold, red or underline",
		OnChange:     onChange,
		HistoryLimit: cfg.HistoryLimit,
		// Writes stay on the update loop; the command only reports.
		OnSave: func(ev editor.SaveEvent) tea.Cmd {
			out, err := p.Save(ctx, ev.Content)
			if err != nil {
				log.Error("manual save failed", "error", err)
			}
			msg := savedMsg{bytes: len(out), err: err}
			return func() tea.Msg { return msg }
		},
	})

	return app{
		title:  cfg.Title,
		editor: ed,
		help:   help.New(),
		keys:   defaultAppKeys(),
	}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(a.editorSize())
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.editor = a.editor.SetSize(a.editorSize())
			return a, nil
		}
	case savedMsg:
		if msg.err != nil {
			a.status, a.statusErr = fmt.Sprintf("save failed: %v", msg.err), true
		} else {
			a.status, a.statusErr = fmt.Sprintf("saved (%d bytes)", msg.bytes), false
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) editorSize() (int, int) {
	w := a.width
	if w > maxEditorWidth {
		w = maxEditorWidth
	}
	w -= boxStyle.GetHorizontalFrameSize()

	h := a.height - boxStyle.GetVerticalFrameSize()
	h -= lipgloss.Height(titleStyle.Render(a.title))
	h -= lipgloss.Height(a.help.View(a.helpKeys())) + 1
	if h < 1 {
		h = 1
	}
	return w, h
}

func (a app) View() string {
	status := statusStyle.Render(a.status)
	if a.statusErr {
		status = errorStyle.Render(a.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(a.title),
		boxStyle.Render(a.editor.View()),
		status,
		a.help.View(a.helpKeys()),
	)
}

// helpKeys merges editor bindings with the application's own.
func (a app) helpKeys() help.KeyMap {
	return appHelp{editor: a.editor.KeyMap(), app: a.keys}
}

type appHelp struct {
	editor editor.KeyMap
	app    appKeys
}

func (h appHelp) ShortHelp() []key.Binding {
	return append(h.editor.ShortHelp(), h.app.Help, h.app.Quit)
}

func (h appHelp) FullHelp() [][]key.Binding {
	return append(h.editor.FullHelp(), []key.Binding{h.app.Help, h.app.Quit})
}

package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/draftmark/autoformat"
	"github.com/iw2rmb/draftmark/document"
)

// InputHandler intercepts input before the editor's default behavior runs.
// *autoformat.Engine implements it.
type InputHandler interface {
	HandleBeforeInput(chars string, s document.EditorState) (document.EditorState, autoformat.Result)
	HandleReturn(s document.EditorState) (document.EditorState, autoformat.Result)
	HandleKeyCommand(cmd document.KeyCommand, s document.EditorState) (document.EditorState, autoformat.Result)
}

var _ InputHandler = (*autoformat.Engine)(nil)

// Config configures the editor Model.
type Config struct {
	// Initial editor state. A zero state starts an empty document.
	State document.EditorState

	// Handler intercepts input. Nil means plain editing only.
	Handler InputHandler

	KeyMap KeyMap
	Style  Style

	// CustomStyles maps inline styles to their rendering. Nil uses
	// DefaultCustomStyles.
	CustomStyles map[document.InlineStyle]lipgloss.Style

	// Placeholder is shown while the document has no text.
	Placeholder string

	// OnChange is called after every update that produced a new state.
	OnChange func(ChangeEvent)

	// OnSave is called when the save binding is pressed. The returned
	// command is returned from Update.
	OnSave func(SaveEvent) tea.Cmd

	Clipboard Clipboard

	ReadOnly bool

	// Used for a zero State; forwarded to document.Options.
	HistoryLimit int
}

func (cfg Config) withDefaults() Config {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.CustomStyles == nil {
		cfg.CustomStyles = DefaultCustomStyles()
	}
	return cfg
}

package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/draftmark/document"
)

// Style controls the editor's rendering.
//
// A zero Style renders plain text.
type Style struct {
	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style

	// Prefix renders list bullets, numbers and quote bars.
	Prefix lipgloss.Style

	// Blocks holds per block type styles. Missing types use Text.
	Blocks map[document.BlockType]lipgloss.Style
}

func DefaultStyle() Style {
	header := lipgloss.NewStyle().Bold(true)
	return Style{
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Prefix:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Blocks: map[document.BlockType]lipgloss.Style{
			document.HeaderOne:   header.Foreground(lipgloss.Color("212")).Underline(true),
			document.HeaderTwo:   header.Foreground(lipgloss.Color("212")),
			document.HeaderThree: header.Foreground(lipgloss.Color("177")),
			document.HeaderFour:  header,
			document.HeaderFive:  header,
			document.HeaderSix:   header.Faint(true),
			document.Blockquote:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
			document.CodeBlock:   lipgloss.NewStyle().Background(lipgloss.Color("236")),
		},
	}
}

// DefaultCustomStyles returns the inline style rendering map. RED_LINE is
// red text.
func DefaultCustomStyles() map[document.InlineStyle]lipgloss.Style {
	return map[document.InlineStyle]lipgloss.Style{
		document.Bold:          lipgloss.NewStyle().Bold(true),
		document.Italic:        lipgloss.NewStyle().Italic(true),
		document.Underline:     lipgloss.NewStyle().Underline(true),
		document.Code:          lipgloss.NewStyle().Background(lipgloss.Color("236")),
		document.Strikethrough: lipgloss.NewStyle().Strikethrough(true),
		document.RedLine:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (st Style) blockStyle(t document.BlockType) lipgloss.Style {
	if s, ok := st.Blocks[t]; ok {
		return s.Inherit(st.Text)
	}
	return st.Text
}

package editor

import "github.com/iw2rmb/draftmark/document"

// ChangeEvent describes the state after an update that changed it.
type ChangeEvent struct {
	Version   uint64
	Change    document.ChangeType
	Selection document.Selection

	// ContentChanged is false for selection or style-override only updates.
	ContentChanged bool

	Content document.Content
}

// SaveEvent carries the document when the save binding is pressed.
type SaveEvent struct {
	Version uint64
	Content document.Content
}

func buildChangeEvent(before, after document.EditorState) ChangeEvent {
	return ChangeEvent{
		Version:        after.Version(),
		Change:         after.LastChangeType(),
		Selection:      after.Selection(),
		ContentChanged: before.ContentVersion() != after.ContentVersion(),
		Content:        after.Content(),
	}
}

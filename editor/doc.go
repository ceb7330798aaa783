// Package editor provides a Bubble Tea rich-text editor component backed by
// the document package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering of block types and inline styles, and host
// integration hooks (input handlers, change events, save requests).
//
// Typed characters, paragraph breaks and key commands are first offered to
// the configured InputHandler. When the handler does not consume an event
// the editor falls back to the document package's default editing.
package editor

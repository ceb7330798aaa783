// Package document implements the immutable rich-text document model for
// draftmark.
//
// A Content is an ordered list of Blocks. Every edit produces a new Content;
// nothing is mutated in place. EditorState pairs a Content with a Selection,
// a pending inline style override, and undo/redo stacks.
//
// Offsets are 0-based and counted in grapheme clusters within a block.
// Selections are (anchor, focus) pairs of block-local positions.
package document

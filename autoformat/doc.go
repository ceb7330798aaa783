// Package autoformat turns markdown-style prefixes into rich-text
// formatting as the user types.
//
// When a space is typed and the text before the caret in its block is
// exactly a registered trigger, the trigger text is removed and the rule's
// action is applied:
//
//	"# "    block becomes header-one
//	"*** "  next characters are underlined
//	"** "   next characters are red
//	"* "    next characters are bold
//
// Pressing Enter inside a header-one block starts an unstyled block instead
// of a second heading.
//
// All handlers are pure: they take an EditorState and return the next one
// along with a Result telling the caller whether default handling must be
// skipped.
package autoformat

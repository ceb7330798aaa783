// Command draftmark is a terminal rich-text editor with markdown-style
// autoformat shortcuts.
//
// Typing "# " at the start of a paragraph makes it a heading; "* ", "** " and
// "*** " switch the next typed text to bold, red, or underlined. The document
// is saved to a local SQLite database as it changes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

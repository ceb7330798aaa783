package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cellWidth returns the terminal-cell width of one grapheme cluster.
func cellWidth(g string) int {
	w := runewidth.StringWidth(g)
	if w <= 0 {
		w = uniseg.StringWidth(g)
	}
	if w < 0 {
		w = 0
	}
	return w
}

func isSpace(g string) bool {
	return g == " " || g == "\t" || g == "\u00a0"
}

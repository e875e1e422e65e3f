package virtualterm

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// StringWidth returns the number of columns s occupies on a terminal.
// Only single-column text maps one to one onto the byte cells of a VirtualTerminal.
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

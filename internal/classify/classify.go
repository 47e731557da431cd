// Package classify provides the byte classification used by the counting
// state machine.
//
// A word boundary and a display column are both decided by classifying
// single bytes as printable or whitespace. The classification depends on the
// character set of the active locale, so it is modeled as an explicit Table
// value selected once at startup and threaded into the counter, never as
// ambient process state. Strict ASCII (the C/POSIX classification) is the
// baseline; ISO 8859-1 locales get a Latin-1 table.
package classify

import (
	"strings"
	"unicode"
)

// Table holds per-byte printable and whitespace classifications.
type Table struct {
	print [256]bool
	space [256]bool
}

// IsPrint reports whether b is a printable character, including space.
func (t *Table) IsPrint(b byte) bool {
	return t.print[b]
}

// IsSpace reports whether b is a whitespace character.
func (t *Table) IsSpace(b byte) bool {
	return t.space[b]
}

// ASCII classifies bytes per the C/POSIX locale: printable is 0x20–0x7E,
// whitespace is HT, LF, VT, FF, CR, and space. Bytes above 0x7F are neither.
var ASCII = newASCII()

// Latin1 extends ASCII with the ISO 8859-1 upper half: graphic characters
// in 0xA1–0xFF become printable, and NEL (0x85) and NBSP (0xA0) join the
// whitespace set.
var Latin1 = newLatin1()

func newASCII() *Table {
	var t Table
	for b := 0x20; b <= 0x7E; b++ {
		t.print[b] = true
	}
	for _, b := range []byte{'\t', '\n', '\v', '\f', '\r', ' '} {
		t.space[b] = true
	}
	return &t
}

func newLatin1() *Table {
	t := *newASCII()
	// Latin-1 bytes map directly to the first 256 Unicode code points.
	for b := 0x80; b <= 0xFF; b++ {
		t.print[b] = unicode.IsPrint(rune(b))
		t.space[b] = t.space[b] || unicode.IsSpace(rune(b))
	}
	return &t
}

// ForLocale selects the classification table for a locale name such as
// "en_US.UTF-8", "de_DE.ISO-8859-1", "C", or "". The empty, C, and POSIX
// locales use ASCII. UTF-8 locales also use ASCII, because the bytes of a
// multibyte sequence are not independently printable. Locales whose charset
// names an 8859 or latin variant get the Latin-1 table.
func ForLocale(locale string) *Table {
	name := strings.ToLower(locale)
	switch name {
	case "", "c", "posix":
		return ASCII
	}
	if strings.Contains(name, "8859") || strings.Contains(name, "latin") {
		return Latin1
	}
	return ASCII
}

// Package render provides text measurement and shaping utilities for
// widget layout.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/rivo/uniseg"
)

// Sanitize removes control characters and replaces invalid UTF-8 so
// caller-supplied titles cannot break terminal rendering.
func Sanitize(s string) string {
	clean := true
	for i := range len(s) {
		if s[i] < 0x20 || (s[i] >= 0x80 && s[i] <= 0x9f) {
			clean = false
			break
		}
	}
	if clean && utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if unicode.IsControl(r) {
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// Width returns the display width of a string in cells, counting
// grapheme clusters rather than runes so emoji and combining marks
// measure correctly.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Wrap breaks text into lines no wider than limit cells. Word wrapping
// is attempted first; words longer than the limit are hard-wrapped.
// Returns nil for empty input.
func Wrap(s string, limit int) []string {
	s = Sanitize(strings.TrimSpace(s))
	if s == "" || limit <= 0 {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(s, limit), limit)
	return strings.Split(wrapped, "\n")
}

// Truncate shortens a string to maxWidth cells with a single-character
// ellipsis.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills a string with trailing spaces to exactly width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

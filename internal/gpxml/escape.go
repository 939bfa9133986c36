package gpxml

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Escape makes s safe for use in a double-quoted attribute value.
//
// The five predefined entities are always used. Tab, line feed and carriage
// return pass through. Other control characters, code points outside the
// XML Char production and invalid UTF-8 bytes (as U+FFFD) are written as
// upper-case hexadecimal character references.
func Escape(s string) string {
	if !needsEscape(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		case '\t', '\n', '\r':
			b.WriteRune(r)
		default:
			if passThrough(r) {
				b.WriteRune(r)
				continue
			}
			b.WriteString("&#x")
			b.WriteString(strings.ToUpper(strconv.FormatInt(int64(r), 16)))
			b.WriteByte(';')
		}
	}
	return b.String()
}

func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= utf8.RuneSelf:
			return true
		case c == '&', c == '<', c == '>', c == '"', c == '\'':
			return true
		case c < 0x20 && c != '\t' && c != '\n' && c != '\r', c == 0x7F:
			return true
		}
	}
	return false
}

// passThrough reports whether r can be written literally
func passThrough(r rune) bool {
	switch {
	case r < 0x20, r >= 0x7F && r <= 0x9F:
		return false
	case r == utf8.RuneError:
		return false
	case r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	default:
		return false
	}
}

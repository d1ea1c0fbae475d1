package spayd

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// needsEscape reports whether a byte of UTF-8 text must be percent-escaped
// in serialized output: the two reserved delimiters, the percent sign
// itself, ASCII control bytes, and everything outside printable ASCII
// (serialized descriptors are ASCII-printable end to end).
func needsEscape(b byte) bool {
	switch b {
	case fieldSeparator, valueSeparator, '%':
		return true
	}
	return b < 0x20 || b >= 0x7F
}

// escapeText percent-encodes s byte-wise over its UTF-8 representation,
// using uppercase two-digit hex escapes. It never fails.
func escapeText(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if !needsEscape(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[b>>4])
		sb.WriteByte(upperhex[b&0x0F])
	}
	return sb.String()
}

// unescapeText reverses percent-escapes in s and interprets the resulting
// bytes as UTF-8. Malformed escape sequences and non-UTF-8 results are
// rejected with an Encoding error carrying the offending fragment.
func unescapeText(s string) (string, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '%' {
			out = append(out, b)
			continue
		}
		if i+2 >= len(s) {
			return "", fragmentError(KindEncoding, "SPD-ENC-001", "truncated percent escape", s[i:])
		}
		hi, okHi := unhex(s[i+1])
		lo, okLo := unhex(s[i+2])
		if !okHi || !okLo {
			return "", fragmentError(KindEncoding, "SPD-ENC-001", "malformed percent escape", s[i:i+3])
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	if !utf8.Valid(out) {
		return "", fragmentError(KindEncoding, "SPD-ENC-002", "decoded bytes are not valid UTF-8", s)
	}
	return string(out), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

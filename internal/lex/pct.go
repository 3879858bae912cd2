package lex

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// HexDecode returns the value 0-15 of hex digit r, or ok=false if r is not
// a hex digit.
func HexDecode(r rune) (v int, ok bool) {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0'), true
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// HexEncode returns the uppercase hex digit for v, which must be in [0,15].
func HexEncode(v int) byte {
	return hexDigits[v&0xF]
}

// IsPctEncoded reports whether s[offset:] begins with a well-formed
// pct-encoded triplet ("%" HEXDIG HEXDIG).
func IsPctEncoded(s string, offset int) bool {
	if offset < 0 || offset+2 >= len(s) || s[offset] != '%' {
		return false
	}
	_, ok1 := HexDecode(rune(s[offset+1]))
	_, ok2 := HexDecode(rune(s[offset+2]))
	return ok1 && ok2
}

// PctEncodeCodePoint emits the canonical percent-encoded UTF-8 byte
// sequence for cp ("%XX" repeated once per UTF-8 byte, uppercase hex).
func PctEncodeCodePoint(cp rune) string {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], cp)
	var sb strings.Builder
	sb.Grow(n * 3)
	for _, b := range buf[:n] {
		sb.WriteByte('%')
		sb.WriteByte(HexEncode(int(b >> 4)))
		sb.WriteByte(HexEncode(int(b & 0xF)))
	}
	return sb.String()
}

// PctEncode percent-encodes s, passing through unencoded every scalar value
// allowed by tag (in ASCII-only mode, i.e. the IRI flag is always false for
// this operation per spec §4.1: "pctEncode(s, charset) ... with the IRI
// flag false"). Every other scalar value's UTF-8 bytes are percent-encoded.
// The result contains only ASCII bytes.
func PctEncode(s string, tag CharTag) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if IsUriChar(r, tag, false) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(PctEncodeCodePoint(r))
	}
	return sb.String()
}

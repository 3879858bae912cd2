package uri

import "github.com/basiliskorg/uriref/internal/lex"

// CharTag names one of the closed set of character classes spec.md §4.1
// defines. Re-exported from internal/lex so a consumer configuring its
// own scanner does not need to import the internal package directly.
type CharTag = lex.CharTag

const (
	Unreserved = lex.Unreserved
	Reserved   = lex.Reserved
	Userinfo   = lex.Userinfo
	Host       = lex.Host
	Path       = lex.Path
	Query      = lex.Query
	Fragment   = lex.Fragment
	Form       = lex.Form
)

// IsAlpha reports whether r is an ASCII letter.
func IsAlpha(r rune) bool { return lex.IsAlpha(r) }

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return lex.IsDigit(r) }

// IsHexChar reports whether r is an ASCII hex digit.
func IsHexChar(r rune) bool { return lex.IsHexChar(r) }

// IsUnreservedChar reports whether r is in the RFC 3986 unreserved set.
func IsUnreservedChar(r rune) bool { return lex.IsUnreservedChar(r) }

// IsReservedChar reports whether r is in the RFC 3986 reserved set.
func IsReservedChar(r rune) bool { return lex.IsReservedChar(r) }

// IsSchemeChar reports whether r may appear in a URI scheme after its
// mandatory leading ALPHA.
func IsSchemeChar(r rune) bool { return lex.IsSchemeChar(r) }

// IsUcsChar reports whether r is one of RFC 3987's ucschar code points.
func IsUcsChar(r rune) bool { return lex.IsUcsChar(r) }

// IsIPrivateChar reports whether r is one of RFC 3987's iprivate code
// points.
func IsIPrivateChar(r rune) bool { return lex.IsIPrivateChar(r) }

// IsUserinfoChar reports whether r may appear unencoded in a userinfo
// component; iri additionally admits ucschar.
func IsUserinfoChar(r rune, iri bool) bool { return lex.IsUserinfoChar(r, iri) }

// IsHostChar reports whether r may appear unencoded in a reg-name host;
// iri additionally admits ucschar.
func IsHostChar(r rune, iri bool) bool { return lex.IsHostChar(r, iri) }

// IsPathChar reports whether r may appear unencoded in a path segment;
// iri additionally admits ucschar.
func IsPathChar(r rune, iri bool) bool { return lex.IsPathChar(r, iri) }

// IsQueryChar reports whether r may appear unencoded in a query
// component; iri additionally admits ucschar and iprivate.
func IsQueryChar(r rune, iri bool) bool { return lex.IsQueryChar(r, iri) }

// IsFragmentChar reports whether r may appear unencoded in a fragment
// component; iri additionally admits ucschar.
func IsFragmentChar(r rune, iri bool) bool { return lex.IsFragmentChar(r, iri) }

// IsFormChar reports whether r is in RFC 6570's form-char set.
func IsFormChar(r rune) bool { return lex.IsFormChar(r) }

// IsUriChar reports whether r is allowed unencoded in the component tag
// identifies, in IRI mode when iri is true.
func IsUriChar(r rune, tag CharTag, iri bool) bool { return lex.IsUriChar(r, tag, iri) }

// HexDecode returns the value 0-15 of hex digit r, or ok=false if r is
// not a hex digit.
func HexDecode(r rune) (v int, ok bool) { return lex.HexDecode(r) }

// HexEncode returns the uppercase hex digit for v, which must be in
// [0,15].
func HexEncode(v int) byte { return lex.HexEncode(v) }

// IsPctEncoded reports whether s[offset:] begins with a well-formed
// pct-encoded triplet.
func IsPctEncoded(s string, offset int) bool { return lex.IsPctEncoded(s, offset) }

// PctEncodeUtf8 emits the canonical percent-encoded UTF-8 byte sequence
// for cp.
func PctEncodeUtf8(cp rune) string { return lex.PctEncodeCodePoint(cp) }

// PctEncode percent-encodes s, passing through unencoded every scalar
// value tag allows.
func PctEncode(s string, tag CharTag) string { return lex.PctEncode(s, tag) }

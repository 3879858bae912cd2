// Package uri implements RFC 3986 URI and RFC 3987 IRI grammar-conformant
// parsing, formatting, and RFC 3986 §5 reference resolution.
//
// Parsing never normalises: every string field of Uri holds the exact
// substring of the original input, verbatim, with no case folding, no
// percent-decoding, and no dot-segment removal (that transform is applied
// only by ResolveUri, per RFC 3986 §5.2.4). See the package-level
// discussion in SPEC_FULL.md for the full ambient/domain stack this
// package carries alongside the grammar work.
package uri

import "strings"

// Uri is the parsed component record spec §3.1 describes. Href and Path
// are always present (Path may be empty); every other field is paired with
// a HasX flag when its presence is ambiguous with its zero value. Scheme
// needs no such flag: the grammar never allows an empty scheme, so an
// empty Scheme unambiguously means "this is a relative reference".
type Uri struct {
	// Href is the whole parsed source substring.
	Href string

	// Scheme is the scheme identifier without its trailing ':'. Empty
	// means the value is a relative reference.
	Scheme string

	// Relative is the substring from the start of the relative-part
	// through the end of the path.
	Relative string

	// Authority is the substring between "//" and the next "/", "?", or
	// "#". HasAuthority is true iff "//" was present, even if Authority
	// itself is empty (e.g. "file:///path").
	Authority    string
	HasAuthority bool

	// Userinfo is the substring of Authority before "@". HasUserinfo is
	// true iff "@" was present.
	Userinfo    string
	HasUserinfo bool

	// Host is "hostname[:port]"; Hostname excludes the port. Both are set
	// whenever HasAuthority is true (they may be empty strings).
	Hostname string
	Host     string

	// Exactly one of IPv4, IPv6, IPvFuture classifies Hostname when it is
	// an IP literal; all three are empty for a registered name.
	IPv4      string
	IPv6      string
	IPvFuture string

	// Port is the decimal digits after ":" in the authority.
	Port    string
	HasPort bool

	// Path is always present, and may be empty.
	Path string

	// Query is the substring after "?" and before "#".
	Query    string
	HasQuery bool

	// Fragment is the substring after "#".
	Fragment    string
	HasFragment bool
}

// FormatUri composes a URI string from u's scheme, authority, path, query,
// and fragment, using the fixed literal delimiters ":", "//", "?", "#".
// Omitted components yield omitted delimiters. It performs no validation
// and no normalisation; it is the exact inverse of the substrings a
// successful parse populates.
func FormatUri(u *Uri) string {
	var sb strings.Builder
	sb.Grow(len(u.Href))

	if u.Scheme != "" {
		sb.WriteString(u.Scheme)
		sb.WriteByte(':')
	}
	if u.HasAuthority {
		sb.WriteString("//")
		sb.WriteString(u.Authority)
	}
	sb.WriteString(u.Path)
	if u.HasQuery {
		sb.WriteByte('?')
		sb.WriteString(u.Query)
	}
	if u.HasFragment {
		sb.WriteByte('#')
		sb.WriteString(u.Fragment)
	}
	return sb.String()
}

// IsAbsoluteUri reports whether u has a scheme and no fragment (or an
// empty one). Per
// spec §4.2 this is independent of IsRelativeUri, not its complement: a
// scheme-less reference is neither absolute nor (by this definition)
// disqualified from being relative, and a scheme-and-fragment URI is
// neither.
func IsAbsoluteUri(u *Uri) bool {
	return u.Scheme != "" && (!u.HasFragment || u.Fragment == "")
}

// IsRelativeUri reports whether u has no scheme.
func IsRelativeUri(u *Uri) bool {
	return u.Scheme == ""
}

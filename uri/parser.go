package uri

import "github.com/basiliskorg/uriref/internal/lex"

// ParseUri parses input as a strict absolute URI: scheme ":" hier-part
// [ "?" query ] [ "#" fragment ]. The scheme is mandatory; a value with no
// scheme is a parse error here (use ParseUriReference for that).
func ParseUri(input string) (*Uri, error) {
	return parse(input, false, false, ParseOptions{})
}

// TryParseUri is ParseUri without the error return; ok is false on any
// parse failure.
func TryParseUri(input string) (u *Uri, ok bool) {
	u, err := ParseUri(input)
	return u, err == nil
}

// IsValidUri reports whether input parses as a strict absolute URI.
func IsValidUri(input string) bool {
	_, err := ParseUri(input)
	return err == nil
}

// ParseUriReference parses input as a URI-reference: URI / relative-ref.
// A leading scheme-like prefix is spared a full scheme parse commitment —
// it is matched speculatively, and only kept if followed immediately by
// ":"; otherwise input is parsed as a relative reference from its start.
func ParseUriReference(input string) (*Uri, error) {
	return parse(input, false, true, ParseOptions{})
}

// TryParseUriReference is ParseUriReference without the error return.
func TryParseUriReference(input string) (u *Uri, ok bool) {
	u, err := ParseUriReference(input)
	return u, err == nil
}

// IsValidUriReference reports whether input parses as a URI-reference.
func IsValidUriReference(input string) bool {
	_, err := ParseUriReference(input)
	return err == nil
}

// ParseIri is ParseUri with RFC 3987's additional ucschar/iprivate code
// points admitted in userinfo, host, path, query, and fragment.
func ParseIri(input string) (*Uri, error) {
	return parse(input, true, false, ParseOptions{})
}

// TryParseIri is ParseIri without the error return.
func TryParseIri(input string) (u *Uri, ok bool) {
	u, err := ParseIri(input)
	return u, err == nil
}

// IsValidIri reports whether input parses as a strict absolute IRI.
func IsValidIri(input string) bool {
	_, err := ParseIri(input)
	return err == nil
}

// ParseIriReference is ParseUriReference with RFC 3987's additional
// ucschar/iprivate code points admitted.
//
// Per SPEC_FULL.md's Open Question decision, this does not delegate to
// ParseIri and layer a second "was everything consumed" check on top —
// that check already lives once, inside parse itself, so an IRI-reference
// and its residual-input rejection are both handled by the same code path
// a plain URI-reference uses.
func ParseIriReference(input string) (*Uri, error) {
	return parse(input, true, true, ParseOptions{})
}

// TryParseIriReference is ParseIriReference without the error return.
func TryParseIriReference(input string) (u *Uri, ok bool) {
	u, err := ParseIriReference(input)
	return u, err == nil
}

// IsValidIriReference reports whether input parses as an IRI-reference.
func IsValidIriReference(input string) bool {
	_, err := ParseIriReference(input)
	return err == nil
}

// parse is the recursive-descent entry point every ParseX function above
// delegates to. Grounded on jplu-trident/iri/iri_parser.go's iriParser
// state functions (parseSchemeStart/parseScheme/parsePathStart/...), kept
// in spirit but rewritten from trident's normalising, output-buffer-based
// design to slice verbatim substrings of input directly, per spec §4.1's
// non-normalising contract.
func parse(input string, iri, allowRelative bool, opts ParseOptions) (*Uri, error) {
	c := newCursor(input, iri)
	c.unchecked = opts.Unchecked
	u := &Uri{}

	if allowRelative {
		schemeStart := c.offset
		if consumeSchemeSpeculative(c) {
			u.Scheme = c.sub(schemeStart, c.offset-1)
		} else {
			c.offset = schemeStart
		}
	} else if err := consumeSchemeRequired(c, u); err != nil {
		return nil, err
	}

	relStart := c.offset
	if err := parseRelativePart(c, u); err != nil {
		return nil, err
	}
	u.Relative = c.sub(relStart, c.offset)

	if c.consumeByte('?') {
		qStart := c.offset
		if err := parseComponentChars(c, lex.IsQueryChar, isQueryStop); err != nil {
			return nil, err
		}
		u.Query = c.sub(qStart, c.offset)
		u.HasQuery = true
	}

	if c.consumeByte('#') {
		fStart := c.offset
		if err := parseComponentChars(c, lex.IsFragmentChar, neverStop); err != nil {
			return nil, err
		}
		u.Fragment = c.sub(fStart, c.offset)
		u.HasFragment = true
	}

	if !c.eof() {
		return nil, c.newError("unexpected trailing input")
	}

	u.Href = input
	return u, nil
}

// consumeSchemeRequired consumes scheme ":" unconditionally, erroring if
// input does not begin with one.
func consumeSchemeRequired(c *cursor, u *Uri) error {
	start := c.offset
	r, _, ok := c.peekRune()
	if !ok || !lex.IsAlpha(r) {
		return c.newError("scheme must start with a letter")
	}
	c.nextRune()
	for {
		r, _, ok := c.peekRune()
		if !ok {
			return c.newErrorAt(c.offset, "expected colon after scheme")
		}
		if r == ':' {
			c.offset++
			u.Scheme = c.sub(start, c.offset-1)
			return nil
		}
		if !lex.IsSchemeChar(r) {
			return c.newError("invalid scheme character")
		}
		c.nextRune()
	}
}

// consumeSchemeSpeculative matches a scheme-shaped prefix, consuming it
// (including its trailing ":") only if the match completes; otherwise it
// rewinds the cursor to where it started and reports false.
func consumeSchemeSpeculative(c *cursor) bool {
	start := c.offset
	r, _, ok := c.peekRune()
	if !ok || !lex.IsAlpha(r) {
		return false
	}
	c.nextRune()
	for {
		r, _, ok := c.peekRune()
		if !ok {
			c.offset = start
			return false
		}
		if r == ':' {
			c.offset++
			return true
		}
		if !lex.IsSchemeChar(r) {
			c.offset = start
			return false
		}
		c.nextRune()
	}
}

// parseRelativePart consumes hier-part / relative-part: an optional
// "//" authority followed by path-abempty, or else a bare path. When
// there is neither a scheme nor an authority, the first path segment may
// not contain an unencoded ":" (path-noscheme), since that would make the
// reference ambiguous with an absolute URI's scheme.
func parseRelativePart(c *cursor, u *Uri) error {
	hasAuthority := false
	if c.hasPrefixByte('/') {
		save := c.offset
		c.offset++
		if c.hasPrefixByte('/') {
			c.offset++
			hasAuthority = true
			authStart := c.offset
			if err := parseAuthority(c, u); err != nil {
				return err
			}
			u.Authority = c.sub(authStart, c.offset)
			u.HasAuthority = true
		} else {
			c.offset = save
		}
	}

	pathStart := c.offset
	forbidColonFirstSeg := !hasAuthority && u.Scheme == ""
	if err := parsePathGeneric(c, forbidColonFirstSeg); err != nil {
		return err
	}
	u.Path = c.sub(pathStart, c.offset)
	return nil
}

// parsePathGeneric consumes a path production up to "?", "#", or EOF. A
// leading "//" is already ruled out by construction: parseRelativePart
// only reaches here with hasAuthority false when the remaining input does
// not start with "//" (that prefix is always consumed as an authority
// marker first). When forbidColonFirstSeg is true, an unencoded ":" in
// the first segment (before the first "/") is rejected.
func parsePathGeneric(c *cursor, forbidColonFirstSeg bool) error {
	firstSegment := true
	for {
		if c.eof() {
			return nil
		}
		b, _ := c.peekByte()
		switch b {
		case '?', '#':
			return nil
		case '/':
			c.offset++
			firstSegment = false
			continue
		}
		if forbidColonFirstSeg && firstSegment && b == ':' {
			return c.newError("invalid character in first path segment")
		}
		consumed, err := c.consumeCharOrPct(lex.IsPathChar)
		if err != nil {
			return err
		}
		if !consumed {
			return c.newError("invalid path character")
		}
	}
}

// parseComponentChars consumes valid characters (and pct-encoded triplets)
// until stop reports true for the next byte, or EOF.
func parseComponentChars(c *cursor, valid charPred, stop func(byte) bool) error {
	for {
		if c.eof() {
			return nil
		}
		b, _ := c.peekByte()
		if stop(b) {
			return nil
		}
		consumed, err := c.consumeCharOrPct(valid)
		if err != nil {
			return err
		}
		if !consumed {
			return c.newError("invalid character")
		}
	}
}

func isQueryStop(b byte) bool { return b == '#' }
func neverStop(byte) bool     { return false }

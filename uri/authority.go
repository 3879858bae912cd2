package uri

import "github.com/basiliskorg/uriref/internal/lex"

// parseAuthority consumes the authority production (userinfo, host, port)
// from c and populates u's Userinfo/Hostname/Host/IPv4/IPv6/IPvFuture/Port
// fields. It narrows c's limit to the authority span — up to the next "/",
// "?", "#", or EOF — so every sub-parser below it naturally stops at the
// authority's end without needing its own lookahead, grounded on
// jplu-trident/iri/autority.go's splitAuthority/parseHost/parsePort shape.
func parseAuthority(c *cursor, u *Uri) error {
	spanEnd := c.offset
	for spanEnd < c.limit {
		switch c.input[spanEnd] {
		case '/', '?', '#':
			goto foundSpan
		}
		spanEnd++
	}
foundSpan:
	saved := c.withLimit(spanEnd)
	defer c.restoreLimit(saved)

	atIdx := -1
	for i := c.offset; i < spanEnd; i++ {
		if c.input[i] == '@' {
			atIdx = i
			break
		}
	}

	if atIdx >= 0 {
		userinfoStart := c.offset
		for {
			consumed, err := c.consumeCharOrPct(lex.IsUserinfoChar)
			if err != nil {
				return err
			}
			if !consumed {
				break
			}
		}
		if c.offset != atIdx {
			return c.newError("invalid character in userinfo")
		}
		u.Userinfo = c.sub(userinfoStart, atIdx)
		u.HasUserinfo = true
		c.offset = atIdx + 1
	}

	hostStart := c.offset
	if err := parseHost(c, u); err != nil {
		return err
	}
	u.Hostname = c.sub(hostStart, c.offset)

	if c.consumeByte(':') {
		portStart := c.offset
		for {
			r, _, ok := c.peekRune()
			if !ok || !lex.IsDigit(r) {
				break
			}
			c.nextRune()
		}
		portStr := c.sub(portStart, c.offset)
		if portStr != "" {
			val := 0
			for _, ch := range portStr {
				val = val*10 + int(ch-'0')
				if val > 65535 {
					return c.newErrorAt(portStart, "invalid port")
				}
			}
		}
		u.Port = portStr
		u.HasPort = true
	}

	if c.offset != spanEnd {
		return c.newError("invalid character in authority")
	}
	u.Host = c.sub(hostStart, c.offset)
	return nil
}

// parseHost consumes the host production: an IP-literal in brackets, or a
// reg-name token that is additionally checked against the IPv4 grammar
// before being accepted as a registered name (spec §4.3: "attempt IPv4
// first; only a failed match falls through to reg-name").
func parseHost(c *cursor, u *Uri) error {
	if r, _, ok := c.peekRune(); ok && r == '[' {
		return parseIPLiteral(c, u)
	}

	tokenStart := c.offset
	for {
		consumed, err := c.consumeCharOrPct(lex.IsHostChar)
		if err != nil {
			return err
		}
		if !consumed {
			break
		}
	}
	token := c.sub(tokenStart, c.offset)
	if validateIPv4(token) {
		u.IPv4 = token
	}
	return nil
}

// parseIPLiteral consumes "[" (IPv6address / IPvFuture) "]", narrowing the
// cursor's limit to the bracketed span so the IPv6/IPvFuture sub-parsers
// need no bracket-awareness of their own.
func parseIPLiteral(c *cursor, u *Uri) error {
	c.offset++ // consume '['

	closeIdx := -1
	for i := c.offset; i < c.limit; i++ {
		if c.input[i] == ']' {
			closeIdx = i
			break
		}
	}
	if closeIdx == -1 {
		return c.newError("invalid IP literal: unterminated")
	}

	saved := c.withLimit(closeIdx)
	start := c.offset
	var err error
	if r, _, ok := c.peekRune(); ok && (r == 'v' || r == 'V') {
		err = parseIPvFutureAddress(c)
		if err == nil {
			u.IPvFuture = c.sub(start, c.offset)
		}
	} else {
		err = parseIPv6Address(c)
		if err == nil {
			u.IPv6 = c.sub(start, c.offset)
		}
	}
	c.restoreLimit(saved)
	if err != nil {
		return err
	}
	if c.offset != closeIdx {
		return c.newError("invalid IP literal")
	}
	c.offset = closeIdx + 1 // consume ']'
	return nil
}

// parseIPvFutureAddress consumes "v" 1*HEXDIG "." 1*( unreserved /
// sub-delims / ":" ), per RFC 3986's IPvFuture production.
func parseIPvFutureAddress(c *cursor) error {
	c.nextRune() // consume 'v' / 'V'

	verDigits := 0
	for c.consumeHexDigits(1) == 1 {
		verDigits++
	}
	if verDigits == 0 {
		return c.newError("expected hex digit")
	}
	if !c.consumeByte('.') {
		return c.newError("expected '.'")
	}

	n := 0
	for {
		r, size, ok := c.peekRune()
		if !ok || !lex.IsUserinfoChar(r, false) {
			break
		}
		c.offset += size
		n++
	}
	if n == 0 {
		return c.newError("expected IPvFuture address character")
	}
	return nil
}

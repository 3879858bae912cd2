package uri

// parseIPv6Address consumes an RFC 3986 IPv6address production from c, up
// to c.limit, as a phased backtracking scan: a single remembered
// offset (ipv4Start) is the only backtrack point the algorithm ever needs,
// set at the one place the grammar is genuinely ambiguous between a
// hextet and the first octet of a trailing embedded IPv4 address.
//
// Phase A consumes up to 8 colon-separated hextets, stopping early at a
// "::" compression marker. Phase B (only entered after compression) keeps
// consuming hextets up to a total of 7, leaving the IPv4-start mark in
// place whenever the production ends without a following ":". Step 3
// resolves that mark: first by trying to parse the remainder as IPv4 per
// spec §4.3.2, falling back to treating it as an ordinary trailing hextet
// when that fails (so "::1" is not mistaken for an incomplete IPv4 tail).
// Step 4 requires the scan to have reached c.limit exactly.
func parseIPv6Address(c *cursor) error {
	hextetCount := 0
	compression := false
	ipv4Start := -1

phaseA:
	for hextetCount < 8 {
		if c.hasPrefixByte(':') {
			c.offset++
			if c.hasPrefixByte(':') {
				c.offset++
				compression = true
				break phaseA
			}
			if hextetCount == 0 {
				return c.newError("expected colon")
			}
		} else if hextetCount > 0 {
			if ipv4Start != -1 {
				c.offset = ipv4Start
				break phaseA
			}
			return c.newError("expected colon")
		}

		if hextetCount == 6 {
			ipv4Start = c.offset
		}
		if c.consumeHexDigits(4) == 0 {
			if ipv4Start != -1 {
				c.offset = ipv4Start
				break phaseA
			}
			return c.newError("expected hex digit")
		}
		hextetCount++
	}

	if compression && !c.eof() {
		for hextetCount < 7 {
			pos := c.offset
			if c.consumeHexDigits(4) == 0 {
				break
			}
			if c.hasPrefixByte(':') {
				c.offset++
				hextetCount++
				continue
			}
			c.offset = pos
			ipv4Start = pos
			break
		}
	}

	if ipv4Start != -1 && c.offset == ipv4Start {
		save := c.offset
		if err := parseIPv4Address(c); err != nil || c.offset != c.limit {
			c.offset = save
			if c.consumeHexDigits(4) == 0 {
				return c.newError("invalid IPv6 address")
			}
		}
	}

	if c.offset != c.limit {
		return c.newError("invalid IPv6 address")
	}
	return nil
}

// ParseIpv6 validates that s is, in its entirety, a well-formed IPv6
// address (without the enclosing "[" "]") and returns s unchanged on
// success.
func ParseIpv6(s string) (string, error) {
	c := newCursor(s, false)
	if err := parseIPv6Address(c); err != nil {
		return "", err
	}
	if !c.eof() {
		return "", c.newError("invalid IPv6 address")
	}
	return s, nil
}

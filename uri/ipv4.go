package uri

import "github.com/basiliskorg/uriref/internal/lex"

// parseIPv4Address consumes exactly one dotted-quad IPv4 address (an octet
// and "." repeated three times, then a final octet) from c, up to c.limit, per
// spec §4.3.2: each octet is 1-3 DIGIT with value <= 255, and an octet with
// more than one digit may not start with "0".
func parseIPv4Address(c *cursor) error {
	for octet := 0; octet < 4; octet++ {
		if octet > 0 {
			if !c.consumeByte('.') {
				return c.newError("expected '.'")
			}
		}

		start := c.offset
		n := 0
		for n < 3 {
			r, _, ok := c.peekRune()
			if !ok || !lex.IsDigit(r) {
				break
			}
			c.nextRune()
			n++
		}
		if n == 0 {
			return c.newError("invalid IPv4 octet")
		}

		digits := c.sub(start, c.offset)
		if len(digits) > 1 && digits[0] == '0' {
			return c.newErrorAt(start, "invalid IPv4 octet")
		}

		val := 0
		for _, ch := range digits {
			val = val*10 + int(ch-'0')
		}
		if val > 255 {
			return c.newErrorAt(start, "invalid IPv4 octet")
		}
	}
	return nil
}

// validateIPv4 reports whether s is, in its entirety, a well-formed
// dotted-quad IPv4 address. Used to classify an already-scanned reg-name
// token as an IPv4 literal instead.
func validateIPv4(s string) bool {
	c := newCursor(s, false)
	if err := parseIPv4Address(c); err != nil {
		return false
	}
	return c.eof()
}

// ParseIpv4 validates that s is, in its entirety, a well-formed IPv4
// address and returns s unchanged on success.
func ParseIpv4(s string) (string, error) {
	c := newCursor(s, false)
	if err := parseIPv4Address(c); err != nil {
		return "", err
	}
	if !c.eof() {
		return "", c.newError("invalid IPv4 address")
	}
	return s, nil
}

package uri

import (
	"unicode/utf8"

	"github.com/basiliskorg/uriref/internal/lex"
)

// cursor is the mutable scan state the recursive-descent parser carries by
// reference through every production, grounded on
// jplu-trident/iri/input.go's parserInput. Two differences from trident's
// cursor: this one tracks a byte offset directly instead of wrapping a
// strings.Reader (the grammar here needs to slice the original string by
// value, not rebuild it through an output buffer), and it carries a limit
// and an iri flag, per spec §4.1/§9 — the limit lets parseAuthority's
// authority span, parseIPLiteral's bracket scan and parseIPv6Address's
// hextet scan reuse the same predicate machinery over a sub-range without
// allocating a substring. The uritemplate package does not use this
// cursor: it hands a "{...}" expression's body to its expression parser
// as a substring of the template.
type cursor struct {
	input     string
	offset    int
	limit     int // exclusive upper bound on offset, <= len(input)
	iri       bool
	unchecked bool
}

// newCursor returns a cursor scanning the whole of input.
func newCursor(input string, iri bool) *cursor {
	return &cursor{input: input, offset: 0, limit: len(input), iri: iri}
}

// eof reports whether the cursor has reached its limit.
func (c *cursor) eof() bool {
	return c.offset >= c.limit
}

// peekRune returns the rune at the cursor without advancing, and its size
// in bytes. ok is false at EOF or on invalid UTF-8.
func (c *cursor) peekRune() (r rune, size int, ok bool) {
	if c.eof() {
		return 0, 0, false
	}
	r, size = utf8.DecodeRuneInString(c.input[c.offset:c.limit])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, false
	}
	return r, size, true
}

// peekByte returns the byte at the cursor without advancing.
func (c *cursor) peekByte() (b byte, ok bool) {
	if c.eof() {
		return 0, false
	}
	return c.input[c.offset], true
}

// nextRune advances past and returns the rune at the cursor.
func (c *cursor) nextRune() (r rune, ok bool) {
	r, size, ok := c.peekRune()
	if !ok {
		return 0, false
	}
	c.offset += size
	return r, true
}

// hasPrefixByte reports whether the next unconsumed byte equals b.
func (c *cursor) hasPrefixByte(b byte) bool {
	pb, ok := c.peekByte()
	return ok && pb == b
}

// consumeByte advances past the next byte if it equals b, reporting
// whether it did.
func (c *cursor) consumeByte(b byte) bool {
	if !c.hasPrefixByte(b) {
		return false
	}
	c.offset++
	return true
}

// remaining returns the unconsumed portion of the input up to the limit.
func (c *cursor) remaining() string {
	return c.input[c.offset:c.limit]
}

// sub returns input[start:end], a verbatim slice of the original string.
func (c *cursor) sub(start, end int) string {
	return c.input[start:end]
}

// withLimit narrows the cursor's limit to newLimit and returns the
// previous limit, which the caller must restore once the sub-range scan is
// done. newLimit must not exceed the current limit.
func (c *cursor) withLimit(newLimit int) (old int) {
	old = c.limit
	c.limit = newLimit
	return old
}

// restoreLimit resets the cursor's limit to a value previously returned by
// withLimit.
func (c *cursor) restoreLimit(old int) {
	c.limit = old
}

// atPctEncoded reports whether the cursor sits on a well-formed pct-encoded
// triplet, honouring the cursor's limit rather than the full input length.
func (c *cursor) atPctEncoded() bool {
	if c.offset+2 >= c.limit || c.input[c.offset] != '%' {
		return false
	}
	_, ok1 := lex.HexDecode(rune(c.input[c.offset+1]))
	_, ok2 := lex.HexDecode(rune(c.input[c.offset+2]))
	return ok1 && ok2
}

// charPred classifies a rune as valid for some grammar production, given
// whether the cursor is scanning in IRI mode.
type charPred func(r rune, iri bool) bool

// consumeCharOrPct advances past one rune accepted by valid, or one
// pct-encoded triplet, returning consumed=false (no error) when the next
// byte is neither. It returns an error only when the next byte is "%" but
// does not begin a well-formed triplet.
func (c *cursor) consumeCharOrPct(valid charPred) (consumed bool, err error) {
	if c.eof() {
		return false, nil
	}
	if c.input[c.offset] == '%' {
		if c.atPctEncoded() {
			c.offset += 3
			return true, nil
		}
		if c.unchecked {
			// Trust the caller: a malformed triplet is consumed as a
			// literal "%" rather than rejected. This is the only thing
			// Unchecked relaxes — "%" is not a delimiter in any
			// production, and every other rune still goes through valid(),
			// so component boundaries are found exactly as in the checked
			// path.
			c.offset++
			return true, nil
		}
		return false, c.newError("invalid percent-encoding")
	}
	r, size, ok := c.peekRune()
	if !ok || !valid(r, c.iri) {
		return false, nil
	}
	c.offset += size
	return true, nil
}

// consumeHexDigits advances past up to max ASCII hex digits, returning the
// number consumed.
func (c *cursor) consumeHexDigits(max int) int {
	n := 0
	for n < max {
		r, _, ok := c.peekRune()
		if !ok || !lex.IsHexChar(r) {
			break
		}
		c.nextRune()
		n++
	}
	return n
}

package uri

import (
	"fmt"

	"braces.dev/errtrace"
)

// Error is the structured parse error spec §7 describes: a message, the
// original input, and the byte offset at which the parser stopped.
// It is returned by every strict entry point (ParseUri, ParseUriReference,
// ParseIri, ParseIriReference, ParseIpv4, ParseIpv6).
type Error struct {
	Message string
	Input   string
	Offset  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("uri: %s at offset %d", e.Message, e.Offset)
}

// newError builds an *Error anchored at the cursor's current offset and
// wraps it with errtrace so a caller chaining errtrace-aware tooling gets a
// frame trail, matching the convention ghettovoice-gosip applies at every
// package boundary.
func (c *cursor) newError(format string, args ...any) error {
	return errtrace.Wrap(&Error{
		Message: fmt.Sprintf(format, args...),
		Input:   c.input,
		Offset:  c.offset,
	})
}

// newErrorAt is like newError but anchors the offset explicitly, for the
// cases (e.g. an invalid port discovered only once the whole number has
// been scanned) where the reported offset is not the cursor's current
// position.
func (c *cursor) newErrorAt(offset int, format string, args ...any) error {
	return errtrace.Wrap(&Error{
		Message: fmt.Sprintf(format, args...),
		Input:   c.input,
		Offset:  offset,
	})
}

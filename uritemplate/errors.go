package uritemplate

import (
	"fmt"

	"braces.dev/errtrace"
)

// Error is the structured parse/expand error this package returns,
// mirroring uri.Error's shape (spec.md §7's UriTemplateError).
type Error struct {
	Message string
	Input   string
	Offset  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("uritemplate: %s at offset %d", e.Message, e.Offset)
}

func newError(input string, offset int, format string, args ...any) error {
	return errtrace.Wrap(&Error{
		Message: fmt.Sprintf(format, args...),
		Input:   input,
		Offset:  offset,
	})
}

package uritemplate

import (
	"strconv"
	"strings"
)

// FormatUriTemplate reconstructs a Template's textual form. For a
// Template returned by ParseUriTemplate this reproduces Raw exactly
// except that literal characters outside the URI character set appear
// percent-encoded (e.g. a "§" in the source becomes "%C2%A7"); for a
// Template built by hand it serializes Parts in order.
func FormatUriTemplate(t *Template) string {
	var sb strings.Builder
	for _, p := range t.Parts {
		if p.Expr != nil {
			sb.WriteString(FormatUriExpression(p.Expr))
		} else {
			sb.WriteString(p.Literal)
		}
	}
	return sb.String()
}

// FormatUriExpression reconstructs one "{...}" construct's textual form.
func FormatUriExpression(e *Expression) string {
	var sb strings.Builder
	sb.WriteByte('{')
	if e.Operator != 0 {
		sb.WriteByte(e.Operator)
	}
	for i, v := range e.Vars {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(FormatUriVariable(v))
	}
	sb.WriteByte('}')
	return sb.String()
}

// FormatUriVariable reconstructs one VarSpec's textual form (name plus at
// most one of "*" or ":N").
func FormatUriVariable(v VarSpec) string {
	switch {
	case v.Explode:
		return v.Name + "*"
	case v.MaxLength > 0:
		return v.Name + ":" + strconv.Itoa(v.MaxLength)
	default:
		return v.Name
	}
}

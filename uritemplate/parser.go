package uritemplate

import (
	"strings"
	"unicode/utf8"

	"github.com/basiliskorg/uriref/internal/lex"
)

// ParseUriTemplate parses raw into a Template: an alternating sequence of
// literal runs and "{...}" expressions, per spec.md §4.5.
func ParseUriTemplate(raw string) (*Template, error) {
	var parts []Part
	i, n := 0, len(raw)

	for i < n {
		if raw[i] == '{' {
			end := strings.IndexByte(raw[i+1:], '}')
			if end < 0 {
				return nil, newError(raw, i, "unterminated expression")
			}
			end += i + 1
			body := raw[i+1 : end]
			expr, err := parseExpression(body, raw, i+1)
			if err != nil {
				return nil, err
			}
			parts = append(parts, Part{Expr: expr})
			i = end + 1
			continue
		}

		start := i
		for i < n && raw[i] != '{' {
			if raw[i] == '}' {
				return nil, newError(raw, i, "unexpected '}'")
			}
			i++
		}
		lit, err := encodeLiteral(raw[start:i], raw, start)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{Literal: lit})
	}

	return &Template{Raw: raw, Parts: parts}, nil
}

// TryParseUriTemplate is ParseUriTemplate without the error return.
func TryParseUriTemplate(raw string) (t *Template, ok bool) {
	t, err := ParseUriTemplate(raw)
	return t, err == nil
}

// IsValidUriTemplate reports whether raw parses as a well-formed template.
func IsValidUriTemplate(raw string) bool {
	_, err := ParseUriTemplate(raw)
	return err == nil
}

// ParseUriExpression parses a single standalone "{...}" construct, such
// as one extracted from GetUriTemplateVariables' caller or authored by
// hand, independent of a surrounding Template.
func ParseUriExpression(raw string) (*Expression, error) {
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return nil, newError(raw, 0, "expected a '{...}' expression")
	}
	return parseExpression(raw[1:len(raw)-1], raw, 1)
}

// TryParseUriExpression is ParseUriExpression without the error return.
func TryParseUriExpression(raw string) (e *Expression, ok bool) {
	e, err := ParseUriExpression(raw)
	return e, err == nil
}

// ParseUriVariable parses a single standalone variable specifier, such as
// "list*" or "var:3", independent of a surrounding Expression.
func ParseUriVariable(raw string) (VarSpec, error) {
	return parseVarSpec(raw, raw, 0)
}

// TryParseUriVariable is ParseUriVariable without the error return.
func TryParseUriVariable(raw string) (vs VarSpec, ok bool) {
	vs, err := ParseUriVariable(raw)
	return vs, err == nil
}

// reservedOperators are the RFC 6570 §2.2 operators reserved for future
// extension; a template using one of them is rejected rather than
// silently treated as a variable-name character.
const reservedOperators = "=!@|"

// parseExpression parses the body of a "{...}" construct (without the
// braces): an optional operator followed by a comma-separated varspec
// list.
func parseExpression(body, raw string, bodyOffset int) (*Expression, error) {
	if body == "" {
		return nil, newError(raw, bodyOffset, "empty expression")
	}

	var operator byte
	idx := 0
	switch body[0] {
	case '+', '#', '.', '/', ';', '?', '&':
		operator = body[0]
		idx = 1
	default:
		if strings.IndexByte(reservedOperators, body[0]) >= 0 {
			return nil, newError(raw, bodyOffset, "operator %q is reserved", body[0])
		}
	}

	varlist := body[idx:]
	if varlist == "" {
		return nil, newError(raw, bodyOffset+idx, "expected a variable list")
	}

	rawVars := strings.Split(varlist, ",")
	vars := make([]VarSpec, 0, len(rawVars))
	offset := bodyOffset + idx
	for _, rv := range rawVars {
		vs, err := parseVarSpec(rv, raw, offset)
		if err != nil {
			return nil, err
		}
		vars = append(vars, vs)
		offset += len(rv) + 1
	}

	return &Expression{Operator: operator, Vars: vars, Raw: "{" + body + "}"}, nil
}

// parseVarSpec parses one comma-separated element of an expression's
// variable list: varname, optionally followed by "*" (explode) or ":N"
// (max-length prefix modifier, N in [1,9999]).
func parseVarSpec(s, raw string, offset int) (VarSpec, error) {
	if s == "" {
		return VarSpec{}, newError(raw, offset, "empty variable specifier")
	}

	if strings.HasSuffix(s, "*") {
		name := s[:len(s)-1]
		if err := validateVarname(name, raw, offset); err != nil {
			return VarSpec{}, err
		}
		return VarSpec{Name: name, Explode: true}, nil
	}

	if colon := strings.IndexByte(s, ':'); colon >= 0 {
		name := s[:colon]
		if err := validateVarname(name, raw, offset); err != nil {
			return VarSpec{}, err
		}
		digits := s[colon+1:]
		if digits == "" {
			return VarSpec{}, newError(raw, offset+colon, "expected digits after ':'")
		}
		val := 0
		for _, ch := range digits {
			if ch < '0' || ch > '9' {
				return VarSpec{}, newError(raw, offset+colon, "invalid max-length")
			}
			val = val*10 + int(ch-'0')
		}
		if val == 0 || val > 9999 {
			return VarSpec{}, newError(raw, offset+colon, "max-length out of range")
		}
		return VarSpec{Name: name, MaxLength: val}, nil
	}

	if err := validateVarname(s, raw, offset); err != nil {
		return VarSpec{}, err
	}
	return VarSpec{Name: s}, nil
}

// validateVarname checks name against RFC 6570's varname grammar: one or
// more ALPHA/DIGIT/"_" runs, separated by single "." characters, with no
// leading, trailing, or doubled "." (pct-encoded varname characters are
// not supported — no example in spec.md exercises them).
func validateVarname(name, raw string, offset int) error {
	if name == "" {
		return newError(raw, offset, "empty variable name")
	}
	prevDot := true
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '.' {
			if prevDot {
				return newError(raw, offset+i, "invalid variable name")
			}
			prevDot = true
			continue
		}
		prevDot = false
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return newError(raw, offset+i, "invalid character in variable name")
		}
	}
	if prevDot {
		return newError(raw, offset+len(name)-1, "variable name cannot end with '.'")
	}
	return nil
}

// encodeLiteral percent-encodes one literal run of raw (the substring
// s == raw[offset:offset+len(s)]) the way spec.md §4.5 requires: a rune
// already in the unreserved-or-reserved set passes through verbatim, a
// well-formed pct-encoded triplet already present in the source text
// passes through unchanged, and a rune in RFC 6570's "literals" class
// that is not a URI character is emitted as its canonical "%XX" UTF-8
// encoding (e.g. "§1" becomes "%C2%A71"). Anything else — a scalar value
// outside both the URI-char and literals classes, or a malformed "%" —
// is a parse error.
func encodeLiteral(s, raw string, offset int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '%' && lex.IsPctEncoded(s, i) {
			sb.WriteString(s[i : i+3])
			i += 3
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case lex.IsUriChar(r, lex.Reserved, false):
			sb.WriteRune(r)
		case isTemplateLiteralChar(r):
			sb.WriteString(lex.PctEncodeCodePoint(r))
		default:
			return "", newError(raw, offset+i, "character %q is not a valid template literal", r)
		}
		i += size
	}
	return sb.String(), nil
}

// isTemplateLiteralChar reports whether r is in RFC 6570's "literals"
// ABNF class: %x21 / %x23-24 / %x26 / %x28-3B / %x3D / %x3F-5B / %x5D /
// %x5F / %x61-7A / %x7E / ucschar / iprivate.
func isTemplateLiteralChar(r rune) bool {
	switch {
	case r == 0x21, r == 0x26, r == 0x3D, r == 0x5D, r == 0x5F, r == 0x7E:
		return true
	case r >= 0x23 && r <= 0x24:
		return true
	case r >= 0x28 && r <= 0x3B:
		return true
	case r >= 0x3F && r <= 0x5B:
		return true
	case r >= 0x61 && r <= 0x7A:
		return true
	}
	return lex.IsUcsChar(r) || lex.IsIPrivateChar(r)
}

package uritemplate

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/basiliskorg/uriref/internal/lex"
)

// opInfo holds the per-operator expansion parameters RFC 6570 §3.2.1
// defines: the text emitted before the expression's first contributed
// item, the separator between items, whether each item is emitted in
// "name=value" form, the text appended after "name" when a named item's
// value is empty, and whether reserved characters pass through unencoded
// (a "%" in a value is always encoded, see encodeValue).
type opInfo struct {
	first         string
	sep           byte
	named         bool
	ifemp         string
	allowReserved bool
}

var operatorTable = map[byte]opInfo{
	0:   {first: "", sep: ',', named: false, ifemp: "", allowReserved: false},
	'+': {first: "", sep: ',', named: false, ifemp: "", allowReserved: true},
	'#': {first: "#", sep: ',', named: false, ifemp: "", allowReserved: true},
	'.': {first: ".", sep: '.', named: false, ifemp: "", allowReserved: false},
	'/': {first: "/", sep: '/', named: false, ifemp: "", allowReserved: false},
	';': {first: ";", sep: ';', named: true, ifemp: "", allowReserved: false},
	'?': {first: "?", sep: '&', named: true, ifemp: "=", allowReserved: false},
	'&': {first: "&", sep: '&', named: true, ifemp: "=", allowReserved: false},
}

// ExpandUriTemplate substitutes every expression in t against b, per
// spec.md §4.6.
func ExpandUriTemplate(t *Template, b Bindings) (string, error) {
	var sb strings.Builder
	for _, p := range t.Parts {
		if p.Expr == nil {
			sb.WriteString(p.Literal)
			continue
		}
		s, err := expandExpression(p.Expr, b)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// ExpandUriExpression expands a single standalone Expression against b,
// independent of a surrounding Template.
func ExpandUriExpression(e *Expression, b Bindings) (string, error) {
	return expandExpression(e, b)
}

// ExpandUriVariable expands a single standalone VarSpec against val,
// under the expansion rules the given operator selects (see
// operatorTable). It returns "" both when val is absent-equivalent (an
// empty List or Object) and when the caller passes val == nil; callers
// that must distinguish the two should check val themselves before
// calling.
func ExpandUriVariable(vs VarSpec, val Value, operator byte) (string, error) {
	op, ok := operatorTable[operator]
	if !ok {
		return "", newError("", 0, "unknown operator %q", operator)
	}
	if val == nil {
		return "", nil
	}
	piece, ok, err := expandVarSpec(vs, val, op)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return piece, nil
}

// expandExpression expands one "{...}" construct. A varspec whose name is
// unbound contributes nothing at all, including no separator; an
// expression none of whose varspecs contribute anything expands to "".
func expandExpression(e *Expression, b Bindings) (string, error) {
	op := operatorTable[e.Operator]

	var sb strings.Builder
	wrote := false
	for _, vs := range e.Vars {
		val, bound := b.Lookup(vs.Name)
		if !bound || val == nil {
			continue
		}
		piece, ok, err := expandVarSpec(vs, val, op)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		if !wrote {
			sb.WriteString(op.first)
			wrote = true
		} else {
			sb.WriteByte(op.sep)
		}
		sb.WriteString(piece)
	}
	return sb.String(), nil
}

// expandVarSpec expands a single bound variable. ok is false when the
// value is an empty List or empty Object, which RFC 6570 §2.3 treats as
// equivalent to unbound.
func expandVarSpec(vs VarSpec, val Value, op opInfo) (piece string, ok bool, err error) {
	switch t := val.(type) {
	case List:
		if len(t) == 0 {
			return "", false, nil
		}
		if vs.Explode {
			s, err := expandExplodedList(vs, t, op)
			return s, true, err
		}
		s, err := expandUnexplodedList(vs, t, op)
		return s, true, err
	case Object:
		if len(t) == 0 {
			return "", false, nil
		}
		if vs.Explode {
			s, err := expandExplodedObject(vs, t, op)
			return s, true, err
		}
		s, err := expandUnexplodedObject(vs, t, op)
		return s, true, err
	default:
		s, err := scalarString(t)
		if err != nil {
			return "", false, err
		}
		return expandScalar(vs, s, op), true, nil
	}
}

func expandScalar(vs VarSpec, s string, op opInfo) string {
	truncated := truncateRunes(s, vs.MaxLength)
	encoded := encodeValue(truncated, op.allowReserved)
	if !op.named {
		return encoded
	}
	if truncated == "" {
		return vs.Name + op.ifemp
	}
	return vs.Name + "=" + encoded
}

func expandUnexplodedList(vs VarSpec, list List, op opInfo) (string, error) {
	items := make([]string, 0, len(list))
	for _, el := range list {
		s, err := scalarString(el)
		if err != nil {
			return "", err
		}
		items = append(items, encodeValue(s, op.allowReserved))
	}
	joined := strings.Join(items, ",")
	if !op.named {
		return joined, nil
	}
	if joined == "" {
		return vs.Name + op.ifemp, nil
	}
	return vs.Name + "=" + joined, nil
}

func expandExplodedList(vs VarSpec, list List, op opInfo) (string, error) {
	items := make([]string, 0, len(list))
	for _, el := range list {
		s, err := scalarString(el)
		if err != nil {
			return "", err
		}
		encoded := encodeValue(s, op.allowReserved)
		if !op.named {
			items = append(items, encoded)
			continue
		}
		if s == "" {
			items = append(items, vs.Name+op.ifemp)
		} else {
			items = append(items, vs.Name+"="+encoded)
		}
	}
	return strings.Join(items, string(op.sep)), nil
}

func expandUnexplodedObject(vs VarSpec, obj Object, op opInfo) (string, error) {
	items := make([]string, 0, len(obj)*2)
	for _, pair := range obj {
		s, err := scalarString(pair.Value)
		if err != nil {
			return "", err
		}
		items = append(items, encodeValue(pair.Key, op.allowReserved), encodeValue(s, op.allowReserved))
	}
	joined := strings.Join(items, ",")
	if !op.named {
		return joined, nil
	}
	return vs.Name + "=" + joined, nil
}

// expandExplodedObject additionally implements the deep-object extension
// spec.md §4.6 describes: a pair whose Value is itself an Object is
// flattened to one "name[k1][k2]=v" leaf per nested pair, recursively,
// rather than being JSON-serialized as a scalar.
func expandExplodedObject(vs VarSpec, obj Object, op opInfo) (string, error) {
	visited := map[uintptr]bool{}
	if ptr := sliceIdentity(obj); ptr != 0 {
		visited[ptr] = true
	}

	var items []string
	for _, pair := range obj {
		key := encodeValue(pair.Key, op.allowReserved)
		if nested, isObj := pair.Value.(Object); isObj {
			leaves, err := flattenDeepObject(vs.Name+"["+key+"]", nested, op.allowReserved, visited)
			if err != nil {
				return "", err
			}
			items = append(items, leaves...)
			continue
		}
		s, err := scalarString(pair.Value)
		if err != nil {
			return "", err
		}
		encoded := encodeValue(s, op.allowReserved)
		if !op.named {
			items = append(items, key+"="+encoded)
			continue
		}
		if s == "" {
			items = append(items, key+op.ifemp)
		} else {
			items = append(items, key+"="+encoded)
		}
	}
	return strings.Join(items, string(op.sep)), nil
}

// flattenDeepObject recurses into a deep-object's nested Objects,
// building one "prefix[key]...=value" leaf per terminal pair. visited
// guards against a cyclic Object graph (a pair whose Value is an
// ancestor of itself) by slice identity.
func flattenDeepObject(prefix string, v Value, allowReserved bool, visited map[uintptr]bool) ([]string, error) {
	switch t := v.(type) {
	case Object:
		if len(t) == 0 {
			return nil, nil
		}
		if ptr := sliceIdentity(t); ptr != 0 {
			if visited[ptr] {
				return nil, nil
			}
			visited[ptr] = true
			defer delete(visited, ptr)
		}
		var out []string
		for _, pair := range t {
			key := encodeValue(pair.Key, allowReserved)
			leaves, err := flattenDeepObject(prefix+"["+key+"]", pair.Value, allowReserved, visited)
			if err != nil {
				return nil, err
			}
			out = append(out, leaves...)
		}
		return out, nil
	case List:
		items := make([]string, 0, len(t))
		for _, el := range t {
			s, err := scalarString(el)
			if err != nil {
				return nil, err
			}
			items = append(items, encodeValue(s, allowReserved))
		}
		return []string{prefix + "=" + strings.Join(items, ",")}, nil
	default:
		s, err := scalarString(t)
		if err != nil {
			return nil, err
		}
		return []string{prefix + "=" + encodeValue(s, allowReserved)}, nil
	}
}

// sliceIdentity returns obj's backing-array address, or 0 for a nil
// Object, for use as a cycle-detection key.
func sliceIdentity(obj Object) uintptr {
	if obj == nil {
		return 0
	}
	return reflect.ValueOf(([]Pair)(obj)).Pointer()
}

// scalarString coerces a non-list, non-object binding value to its
// expansion text: strings pass through, common scalar kinds format via
// strconv, and anything else falls back to JSON serialization per
// spec.md §4.6's default coercion rule.
func scalarString(v Value) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// truncateRunes applies a ":N" prefix modifier by Unicode scalar count,
// not byte count. maxLength <= 0 means unset.
func truncateRunes(s string, maxLength int) string {
	if maxLength <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

// encodeValue percent-encodes s for substitution into the expanded
// result, per spec.md §4.1's pctEncode(s, charset): every scalar value in
// charset passes through unencoded, and every other scalar value's UTF-8
// bytes are percent-encoded, with no exception for a "%" that happens to
// begin what looks like an existing triplet. allowReserved selects
// RFC 3986 reserved-or-unreserved ("+" and "#") versus unreserved alone
// (every other operator).
func encodeValue(s string, allowReserved bool) string {
	if allowReserved {
		return lex.PctEncode(s, lex.Reserved)
	}
	return lex.PctEncode(s, lex.Unreserved)
}

// Package uritemplate implements RFC 6570 URI Template expansion at
// Level 4, plus the non-standard deep-object extension
// ("name[key1][key2]=value" flattening) spec.md §4.6 describes.
//
// Grounded on other_examples/adragomir-uritemplates__uritemplates.go, the
// one RFC 6570 implementation in the retrieved pack, generalized from its
// Level-3 regex-driven scanner and unordered map values to a hand-written
// ASCII-driven scanner over an explicit, insertion-ordered value model.
package uritemplate

// Value is the dynamically-typed binding value RFC 6570 expansion
// operates over: a string, bool, float64, json.Number, List, Object, or
// nil (absent).
type Value any

// List is an ordered sequence of Values, expanded per RFC 6570's "list"
// rules (comma-joined when not exploded, one sep-joined item per element
// when exploded).
type List []Value

// Pair is one entry of an Object.
type Pair struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered associative array, expanded per RFC
// 6570's "associative array" rules. Unlike a Go map, iteration order is
// exactly construction order — spec.md §9 requires this for deterministic
// expansion of examples like {semi:";",dot:".",comma:","}.
type Object []Pair

// Bindings resolves a template variable's name to its Value. Lookup's
// second return reports whether name is bound at all; an unbound name is
// "absent" per spec.md §4.6 and contributes nothing to expansion.
type Bindings interface {
	Lookup(name string) (Value, bool)
}

// MapBindings adapts a plain Go map to Bindings, for ergonomics. A
// variable whose own Value is a Go map rather than an Object is not
// expanded as an associative array: like any other non-List, non-Object
// value it is coerced to its JSON serialization. Associative-array
// expansion needs an Object.
type MapBindings map[string]Value

// Lookup implements Bindings.
func (m MapBindings) Lookup(name string) (Value, bool) {
	v, ok := m[name]
	return v, ok
}

// FuncBindings adapts a lookup closure to Bindings.
type FuncBindings func(name string) (Value, bool)

// Lookup implements Bindings.
func (f FuncBindings) Lookup(name string) (Value, bool) {
	return f(name)
}

// Template is a parsed URI Template: an ordered sequence of literal runs
// and variable expressions.
type Template struct {
	Raw   string
	Parts []Part
}

// Part is one element of a Template: either a literal run (Expr is nil)
// or a variable expression (Literal is empty).
type Part struct {
	Literal string
	Expr    *Expression
}

// Expression is one "{...}" construct: an optional operator and one or
// more comma-separated variable specifiers.
type Expression struct {
	// Operator is one of 0 (none), '+', '#', '.', '/', ';', '?', '&'.
	Operator byte
	Vars     []VarSpec
	Raw      string
}

// VarSpec is one variable specifier inside an expression: a name plus at
// most one of Explode ("*") or MaxLength (":N", N>=1; 0 means unset).
type VarSpec struct {
	Name      string
	Explode   bool
	MaxLength int
}

// VarOptions holds the optional modifiers NewUriVariable applies on top
// of a bare name. The zero value requests neither modifier.
type VarOptions struct {
	Explode   bool
	MaxLength int
}

// NewUriTemplate builds a Template directly from parts, bypassing
// ParseUriTemplate's scanner. Raw is reconstructed from parts via
// FormatUriTemplate.
func NewUriTemplate(parts []Part) *Template {
	t := &Template{Parts: append([]Part(nil), parts...)}
	t.Raw = FormatUriTemplate(t)
	return t
}

// NewUriExpression builds an Expression directly from an operator and
// variable list, bypassing ParseUriExpression's scanner. Raw is
// reconstructed via FormatUriExpression.
func NewUriExpression(operator byte, vars []VarSpec) *Expression {
	e := &Expression{Operator: operator, Vars: append([]VarSpec(nil), vars...)}
	e.Raw = FormatUriExpression(e)
	return e
}

// NewUriVariable builds a VarSpec directly from a name and options,
// bypassing ParseUriVariable's scanner.
func NewUriVariable(name string, opts VarOptions) VarSpec {
	return VarSpec{Name: name, Explode: opts.Explode, MaxLength: opts.MaxLength}
}

// GetUriTemplateVariables returns every VarSpec referenced anywhere in
// t's expressions, in template order.
func GetUriTemplateVariables(t *Template) []VarSpec {
	var vars []VarSpec
	for _, p := range t.Parts {
		if p.Expr != nil {
			vars = append(vars, p.Expr.Vars...)
		}
	}
	return vars
}

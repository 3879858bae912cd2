package uritemplate

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseUriTemplateLiteralAndExpression(t *testing.T) {
	tmpl, err := ParseUriTemplate("http://example.com/{path}/here?{?q,lang}")
	if err != nil {
		t.Fatalf("ParseUriTemplate: %v", err)
	}
	if len(tmpl.Parts) != 4 {
		t.Fatalf("got %d parts, want 4: %+v", len(tmpl.Parts), tmpl.Parts)
	}
	if tmpl.Parts[0].Literal != "http://example.com/" {
		t.Errorf("parts[0] = %q", tmpl.Parts[0].Literal)
	}
	if tmpl.Parts[1].Expr == nil || tmpl.Parts[1].Expr.Vars[0].Name != "path" {
		t.Errorf("parts[1] = %+v", tmpl.Parts[1])
	}
	if tmpl.Parts[3].Expr == nil || tmpl.Parts[3].Expr.Operator != '?' {
		t.Errorf("parts[3] = %+v", tmpl.Parts[3])
	}
}

func TestParseUriTemplateEncodesLiteralNonAscii(t *testing.T) {
	tmpl, err := ParseUriTemplate("/§1")
	if err != nil {
		t.Fatalf("ParseUriTemplate: %v", err)
	}
	got := FormatUriTemplate(tmpl)
	if got != "/%C2%A71" {
		t.Errorf("got %q, want %q", got, "/%C2%A71")
	}
}

func TestParseUriTemplateUnterminatedExpression(t *testing.T) {
	if IsValidUriTemplate("/{foo") {
		t.Error("expected unterminated expression to be invalid")
	}
}

func TestParseUriTemplateStrayCloseBrace(t *testing.T) {
	if IsValidUriTemplate("/foo}") {
		t.Error("expected stray '}' to be invalid")
	}
}

func TestParseUriTemplateReservedOperatorRejected(t *testing.T) {
	if IsValidUriTemplate("{=var}") {
		t.Error("expected reserved operator '=' to be rejected")
	}
}

func TestParseUriTemplateVarSpecModifiers(t *testing.T) {
	tmpl, ok := TryParseUriTemplate("{list*,var:3,x}")
	if !ok {
		t.Fatal("expected template to parse")
	}
	vars := tmpl.Parts[0].Expr.Vars
	if len(vars) != 3 {
		t.Fatalf("got %d vars", len(vars))
	}
	if !vars[0].Explode || vars[0].Name != "list" {
		t.Errorf("vars[0] = %+v", vars[0])
	}
	if vars[1].MaxLength != 3 || vars[1].Name != "var" {
		t.Errorf("vars[1] = %+v", vars[1])
	}
	if vars[2].Explode || vars[2].MaxLength != 0 || vars[2].Name != "x" {
		t.Errorf("vars[2] = %+v", vars[2])
	}
}

func TestParseUriTemplateInvalidVarname(t *testing.T) {
	cases := []string{"{x,.foo}", "{foo.}", "{foo..bar}", "{}"}
	for _, c := range cases {
		if IsValidUriTemplate(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestParseUriTemplateMaxLengthZeroRejected(t *testing.T) {
	if IsValidUriTemplate("{var:0}") {
		t.Error("expected ':0' max-length to be rejected")
	}
}

func TestFormatUriTemplateRoundTrip(t *testing.T) {
	raw := "http://example.com{/list*}{?q,lang:5}"
	tmpl, err := ParseUriTemplate(raw)
	if err != nil {
		t.Fatalf("ParseUriTemplate: %v", err)
	}
	if got := FormatUriTemplate(tmpl); got != raw {
		t.Errorf("got %q, want %q", got, raw)
	}
}

func TestParseUriTemplateRejectsNonLiteralChar(t *testing.T) {
	if IsValidUriTemplate("a<b") {
		t.Error("expected '<' to be rejected as an invalid template literal")
	}
	cases := []string{`a"b`, "a>b", `a\b`, "a^b", "a`b", "a|b"}
	for _, c := range cases {
		if IsValidUriTemplate(c) {
			t.Errorf("expected %q to be rejected as an invalid template literal", c)
		}
	}
}

func TestParseUriExpression(t *testing.T) {
	e, err := ParseUriExpression("{?q,lang:5}")
	if err != nil {
		t.Fatalf("ParseUriExpression: %v", err)
	}
	if e.Operator != '?' || len(e.Vars) != 2 {
		t.Fatalf("got %+v", e)
	}
	if e.Vars[0].Name != "q" || e.Vars[1].Name != "lang" || e.Vars[1].MaxLength != 5 {
		t.Errorf("vars = %+v", e.Vars)
	}

	if _, err := ParseUriExpression("q,lang"); err == nil {
		t.Error("expected missing braces to be rejected")
	}
	if _, ok := TryParseUriExpression("{=q}"); ok {
		t.Error("expected reserved operator to be rejected")
	}
}

func TestParseUriVariable(t *testing.T) {
	vs, err := ParseUriVariable("list*")
	if err != nil {
		t.Fatalf("ParseUriVariable: %v", err)
	}
	if vs.Name != "list" || !vs.Explode {
		t.Errorf("got %+v", vs)
	}

	if _, ok := TryParseUriVariable("foo."); ok {
		t.Error("expected trailing dot to be rejected")
	}
}

func TestNewUriTemplateConstructors(t *testing.T) {
	vs := NewUriVariable("lang", VarOptions{MaxLength: 5})
	if vs.Name != "lang" || vs.MaxLength != 5 || vs.Explode {
		t.Errorf("got %+v", vs)
	}

	e := NewUriExpression('?', []VarSpec{NewUriVariable("q", VarOptions{}), vs})
	if e.Raw != "{?q,lang:5}" {
		t.Errorf("got %q", e.Raw)
	}

	tmpl := NewUriTemplate([]Part{
		{Literal: "http://example.com"},
		{Expr: e},
	})
	if tmpl.Raw != "http://example.com{?q,lang:5}" {
		t.Errorf("got %q", tmpl.Raw)
	}

	vars := GetUriTemplateVariables(tmpl)
	if len(vars) != 2 || vars[0].Name != "q" || vars[1].Name != "lang" {
		t.Errorf("got %+v", vars)
	}
}

package uritemplate

import "testing"

func mustExpand(t *testing.T, raw string, b Bindings) string {
	t.Helper()
	tmpl, err := ParseUriTemplate(raw)
	if err != nil {
		t.Fatalf("ParseUriTemplate(%q): %v", raw, err)
	}
	got, err := ExpandUriTemplate(tmpl, b)
	if err != nil {
		t.Fatalf("ExpandUriTemplate(%q): %v", raw, err)
	}
	return got
}

func baseBindings() MapBindings {
	return MapBindings{
		"var":   "value",
		"hello": "Hello World!",
		"half":  "50%",
		"empty": "",
		"path":  "/foo/bar",
		"x":     "1024",
		"y":     "768",
		"list":  List{"red", "green", "blue"},
		"keys":  Object{{Key: "semi", Value: ";"}, {Key: "dot", Value: "."}, {Key: "comma", Value: ","}},
	}
}

func TestExpandSimpleStringExpansion(t *testing.T) {
	b := baseBindings()
	cases := map[string]string{
		"{var}":   "value",
		"{hello}": "Hello%20World%21",
		"{half}":  "50%25",
		"{empty}": "",
		"{undef}": "",
		"{x,y}":   "1024,768",
	}
	for raw, want := range cases {
		if got := mustExpand(t, raw, b); got != want {
			t.Errorf("%s: got %q, want %q", raw, got, want)
		}
	}
}

func TestExpandReservedExpansion(t *testing.T) {
	b := baseBindings()
	cases := map[string]string{
		"{+var}":        "value",
		"{+hello}":      "Hello%20World!",
		"{+path}/here":  "/foo/bar/here",
		"{+empty}x":     "x",
		"{+path,x}/here": "/foo/bar,1024/here",
	}
	for raw, want := range cases {
		if got := mustExpand(t, raw, b); got != want {
			t.Errorf("%s: got %q, want %q", raw, got, want)
		}
	}
}

func TestExpandFragmentExpansion(t *testing.T) {
	b := baseBindings()
	cases := map[string]string{
		"{#var}":   "#value",
		"{#hello}": "#Hello%20World!",
		"{#empty}": "#",
	}
	for raw, want := range cases {
		if got := mustExpand(t, raw, b); got != want {
			t.Errorf("%s: got %q, want %q", raw, got, want)
		}
	}
}

func TestExpandLabelExpansion(t *testing.T) {
	b := baseBindings()
	b["who"] = "fred"
	cases := map[string]string{
		"{.who}":    ".fred",
		"X{.var}":   "X.value",
		"X{.x,y}":   "X.1024.768",
		"X{.list}":  "X.red,green,blue",
		"X{.list*}": "X.red.green.blue",
	}
	for raw, want := range cases {
		if got := mustExpand(t, raw, b); got != want {
			t.Errorf("%s: got %q, want %q", raw, got, want)
		}
	}
}

func TestExpandPathSegmentExpansion(t *testing.T) {
	b := baseBindings()
	cases := map[string]string{
		"{/var}":        "/value",
		"{/var,x}/here": "/value/1024/here",
		"{/list}":       "/red,green,blue",
		"{/list*}":      "/red/green/blue",
	}
	for raw, want := range cases {
		if got := mustExpand(t, raw, b); got != want {
			t.Errorf("%s: got %q, want %q", raw, got, want)
		}
	}
}

func TestExpandPathStyleParameterExpansion(t *testing.T) {
	b := baseBindings()
	cases := map[string]string{
		"{;x,y}":     ";x=1024;y=768",
		"{;x,y,empty}": ";x=1024;y=768;empty",
		"{;list}":    ";list=red,green,blue",
		"{;list*}":   ";list=red;list=green;list=blue",
		"{;keys}":    ";keys=semi,%3B,dot,.,comma,%2C",
		"{;keys*}":   ";semi=%3B;dot=.;comma=%2C",
	}
	for raw, want := range cases {
		if got := mustExpand(t, raw, b); got != want {
			t.Errorf("%s: got %q, want %q", raw, got, want)
		}
	}
}

func TestExpandFormStyleQueryExpansion(t *testing.T) {
	b := baseBindings()
	cases := map[string]string{
		"{?x,y}":      "?x=1024&y=768",
		"{?x,y,empty}": "?x=1024&y=768&empty=",
		"{?list}":     "?list=red,green,blue",
		"{?list*}":    "?list=red&list=green&list=blue",
		"{?keys}":     "?keys=semi,%3B,dot,.,comma,%2C",
		"{?keys*}":    "?semi=%3B&dot=.&comma=%2C",
	}
	for raw, want := range cases {
		if got := mustExpand(t, raw, b); got != want {
			t.Errorf("%s: got %q, want %q", raw, got, want)
		}
	}
}

func TestExpandFormStyleQueryContinuation(t *testing.T) {
	b := baseBindings()
	cases := map[string]string{
		"{&x,y,empty}": "&x=1024&y=768&empty=",
		"{&x,y}":       "&x=1024&y=768",
	}
	for raw, want := range cases {
		if got := mustExpand(t, raw, b); got != want {
			t.Errorf("%s: got %q, want %q", raw, got, want)
		}
	}
}

func TestExpandPrefixModifier(t *testing.T) {
	b := MapBindings{"var": "value"}
	if got := mustExpand(t, "{var:3}", b); got != "val" {
		t.Errorf("got %q, want %q", got, "val")
	}
	if got := mustExpand(t, "{var:30}", b); got != "value" {
		t.Errorf("got %q, want %q", got, "value")
	}
}

func TestExpandNumericCoercion(t *testing.T) {
	b := MapBindings{"x": 1024, "pi": 3.25, "on": true}
	if got := mustExpand(t, "{x}", b); got != "1024" {
		t.Errorf("got %q", got)
	}
	if got := mustExpand(t, "{pi}", b); got != "3.25" {
		t.Errorf("got %q", got)
	}
	if got := mustExpand(t, "{on}", b); got != "true" {
		t.Errorf("got %q", got)
	}
}

func TestExpandNamedExplodedListWithEmptyElement(t *testing.T) {
	b := MapBindings{"list": List{"a", "", "c"}}
	got := mustExpand(t, "{;list*}", b)
	want := ";list=a;list;list=c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpandDeepObjectExtension(t *testing.T) {
	b := MapBindings{
		"filter": Object{
			{Key: "name", Value: Object{{Key: "eq", Value: "widget"}}},
			{Key: "price", Value: Object{{Key: "lt", Value: "10"}}},
		},
	}
	got := mustExpand(t, "{?filter*}", b)
	want := "?filter[name][eq]=widget&filter[price][lt]=10"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpandUriExpressionStandalone(t *testing.T) {
	e, err := ParseUriExpression("{?x,y}")
	if err != nil {
		t.Fatalf("ParseUriExpression: %v", err)
	}
	got, err := ExpandUriExpression(e, baseBindings())
	if err != nil {
		t.Fatalf("ExpandUriExpression: %v", err)
	}
	if got != "?x=1024&y=768" {
		t.Errorf("got %q", got)
	}
}

func TestExpandUriVariableStandalone(t *testing.T) {
	vs, err := ParseUriVariable("list*")
	if err != nil {
		t.Fatalf("ParseUriVariable: %v", err)
	}
	// ExpandUriVariable returns one variable's contribution to an
	// expression, not a full expression: the operator's leading "first"
	// marker (e.g. "/" here) is only emitted once per expression by
	// expandExpression, so it is absent from a standalone piece.
	got, err := ExpandUriVariable(vs, List{"red", "green", "blue"}, '/')
	if err != nil {
		t.Fatalf("ExpandUriVariable: %v", err)
	}
	if got != "red/green/blue" {
		t.Errorf("got %q", got)
	}

	got, err = ExpandUriVariable(vs, nil, '/')
	if err != nil {
		t.Fatalf("ExpandUriVariable(nil): %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}

	got, err = ExpandUriVariable(vs, List{}, '/')
	if err != nil {
		t.Fatalf("ExpandUriVariable(empty list): %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty for an empty list", got)
	}
}

func TestExpandReservedReencodesExistingPercent(t *testing.T) {
	b := MapBindings{"v": "100%41", "path": "/foo%2Fbar"}
	if got := mustExpand(t, "{+v}", b); got != "100%2541" {
		t.Errorf("got %q, want %q", got, "100%2541")
	}
	if got := mustExpand(t, "{+path}", b); got != "/foo%252Fbar" {
		t.Errorf("got %q, want %q", got, "/foo%252Fbar")
	}
	if got := mustExpand(t, "{path}", b); got != "%2Ffoo%252Fbar" {
		t.Errorf("got %q", got)
	}
}

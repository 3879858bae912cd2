package uri

import "testing"

func TestResolveUriRfc3986Examples(t *testing.T) {
	base, err := ParseUri("http://a/b/c/d;p?q")
	if err != nil {
		t.Fatalf("parsing base: %v", err)
	}

	cases := []struct {
		ref  string
		want string
	}{
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"", "http://a/b/c/d;p?q"},
		{"..", "http://a/b/"},
	}

	for _, tc := range cases {
		ref, err := ParseUriReference(tc.ref)
		if err != nil {
			t.Fatalf("parsing ref %q: %v", tc.ref, err)
		}
		got, err := ResolveUri(base, ref)
		if err != nil {
			t.Fatalf("ResolveUri(%q): %v", tc.ref, err)
		}
		if got.Href != tc.want {
			t.Errorf("ResolveUri(base, %q) = %q, want %q", tc.ref, got.Href, tc.want)
		}
	}
}

func TestResolveUriNilBase(t *testing.T) {
	ref, err := ParseUriReference("a/b/../c?q#f")
	if err != nil {
		t.Fatal(err)
	}
	got, err := ResolveUri(nil, ref)
	if err != nil {
		t.Fatalf("ResolveUri(nil, ref): %v", err)
	}
	if got.Href != "a/c?q#f" {
		t.Errorf("got %q, want %q", got.Href, "a/c?q#f")
	}
}

func TestResolveUriAbsoluteRefIgnoresBase(t *testing.T) {
	base, _ := ParseUri("http://a/b/c/d;p?q")
	ref, err := ParseUriReference("ftp://other/x")
	if err != nil {
		t.Fatal(err)
	}
	got, err := ResolveUri(base, ref)
	if err != nil {
		t.Fatal(err)
	}
	if got.Href != "ftp://other/x" {
		t.Errorf("got %q", got.Href)
	}
}

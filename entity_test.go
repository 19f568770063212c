package wikiextract

import "testing"

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, exp string
	}{
		{"&amp;", "&"},
		{"&#65;", "A"},
		{"&#x41;", "A"},
		{"&#X41;", "A"},
		{"&lt;b&gt;", "<b>"},
		{"&quot;quoted&quot;", `"quoted"`},
		{"mixed &amp; matched &#49;&#50;&#51;", "mixed & matched 123"},
		{"&bogusentity;", "&bogusentity;"},
		{"&#1114112;", ""}, // beyond the last code point
		{"&#55296;", ""},   // surrogate half
		{"no references", "no references"},
	}
	for _, test := range tests {
		if got := Unescape(test.in); got != test.exp {
			t.Errorf("Unescape(%q): expected %q, got %q", test.in, test.exp, got)
		}
	}
}

func TestUnescapeTwice(t *testing.T) {
	// A doubly escaped reference needs both passes.
	in := "&amp;amp;"
	if got := Unescape(in); got != "&amp;" {
		t.Fatalf("first pass: expected %q, got %q", "&amp;", got)
	}
	if got := Unescape(Unescape(in)); got != "&" {
		t.Fatalf("second pass: expected %q, got %q", "&", got)
	}
}

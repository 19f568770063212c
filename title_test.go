package wikiextract

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in         string
		namespaces []string
		exp        string
	}{
		{"foo_bar", nil, "Foo bar"},
		{"  category:  births", []string{"Category"}, "Category:Births"},
		{"w:internal link", []string{"w"}, "W:Internal link"},
		// Not a namespace, so the space after the colon stays.
		{"3001:   The_Final_Odyssey", []string{"w"}, "3001: The Final Odyssey"},
		{"__trimmed__title__", nil, "Trimmed title"},
		{"already Normal", nil, "Already Normal"},
		{"", nil, ""},
	}
	for _, test := range tests {
		if got := NormalizeTitle(test.in, test.namespaces); got != test.exp {
			t.Errorf("NormalizeTitle(%q): expected %q, got %q",
				test.in, test.exp, got)
		}
	}
}

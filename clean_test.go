package wikiextract

import (
	"strings"
	"testing"
)

func TestCleanTemplates(t *testing.T) {
	tests := []struct {
		name, in, exp string
	}{
		{"simple template", "a {{cite web|url=x}} b", "a b"},
		{"nested template", "a {{convert|8800|m|{{frac|1|2}}|abbr=on}} b", "a b"},
		{"table", "intro\n{| class=\"wikitable\"\n| cell\n|}\ntail", "intro\n\ntail"},
		{"unbalanced template", "a {{unclosed", "a {{unclosed"},
	}
	for _, test := range tests {
		if got := Clean(test.in); got != test.exp {
			t.Errorf("%v: expected %q, got %q", test.name, test.exp, got)
		}
	}
}

func TestCleanLinks(t *testing.T) {
	tests := []struct {
		name, in, exp string
	}{
		{"plain link", "see [[Sponge]] here", "see Sponge here"},
		{"piped link", "see [[Sponge|sponges]] here", "see sponges here"},
		{"plural suffix", "two [[sponge]]s here", "two sponges here"},
		{"inner expanded, outer dropped",
			"see [[File:x.jpg|thumb|[[Sponge|sponges]]]] here", "see here"},
		{"external with label", "at [http://example.com/x the site] now", "at the site now"},
		{"external footnote", "fact[1] stated", "fact stated"},
	}
	for _, test := range tests {
		if got := Clean(test.in); got != test.exp {
			t.Errorf("%v: expected %q, got %q", test.name, test.exp, got)
		}
	}
}

func TestCleanFormatting(t *testing.T) {
	tests := []struct {
		name, in, exp string
	}{
		{"bold italic", "'''''loud''''' text", "loud text"},
		{"bold", "'''Sponges''' are animals", "Sponges are animals"},
		{"italic", "called ''Porifera'' here", `called "Porifera" here`},
		{"italic quote", `he said ''"so"'' then`, `he said "so" then`},
		{"doubled quotes", `a ""quoted"" span`, "a quoted span"},
		{"leftover markers", "odd '''run", "odd run"},
	}
	for _, test := range tests {
		if got := Clean(test.in); got != test.exp {
			t.Errorf("%v: expected %q, got %q", test.name, test.exp, got)
		}
	}
}

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		name, in, exp string
	}{
		{"comment", "a<!-- hidden -->b", "ab"},
		{"multiline comment", "a<!-- one\ntwo -->b", "ab"},
		{"ignored tags stripped", "<b>bold</b> and <span class=\"x\">spanned</span>", "bold and spanned"},
		{"self closing", "one<br/>two", "onetwo"},
		{"discarded element", "a<ref>some citation</ref>b", "ab"},
		{"nested discard", "x<table><tr><td>cell</td></tr></table>y", "xy"},
		{"entities", "AT&amp;T &#65;&#x42;", "AT&T AB"},
		{"guillemets", "quote <<inner>> end", "quote «inner» end"},
	}
	for _, test := range tests {
		if got := Clean(test.in); got != test.exp {
			t.Errorf("%v: expected %q, got %q", test.name, test.exp, got)
		}
	}
}

func TestSubstPlaceholders(t *testing.T) {
	in := "<math>E=mc^2</math> and <math>a^2+b^2</math> plus <code>x := 1</code>"
	exp := "formula_1 and formula_2 plus codice_1"
	if got := substPlaceholders(in); got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestCleanPreformatted(t *testing.T) {
	// The emptied line survives Clean; Compact drops it later.
	in := "normal\n preformatted dump\nmore"
	exp := "normal\n\nmore"
	if got := Clean(in); got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestFinalCleanup(t *testing.T) {
	tests := []struct {
		name, in, exp string
	}{
		{"tabs and space runs", "a\t\tb  c", "a b c"},
		{"dot run", "wait....", "wait..."},
		{"space before punctuation", "end , here .", "end, here."},
		{"space after opening", "( start", "(start"},
		{"empty parens", "a () b", "a b"},
		{"dangling parenthetical comma", "x (, 1941) y", "x (1941) y"},
		{"doubled comma", "a,, b", "a, b"},
		{"comma before period", "done,.", "done."},
		{"magic word", "see __NOTOC__ here", "see here"},
		{"dash variants", "1914–1918", "1914-1918"},
		{"curly quotes", "“fine”", `"fine"`},
		{"placeholder markers", "was formula_12 there", "was there"},
	}
	for _, test := range tests {
		if got := finalCleanup(test.in); got != test.exp {
			t.Errorf("%v: expected %q, got %q", test.name, test.exp, got)
		}
	}
}

// The final cleanup must reach a fixed point: running it on its own output
// changes nothing.
func TestFinalCleanupIdempotent(t *testing.T) {
	inputs := []string{
		"a ()  b", "x (, ) y", "one,,,. two", "deep ((, inner) outer)",
		"plain text stays put",
	}
	for _, in := range inputs {
		once := finalCleanup(in)
		if twice := finalCleanup(once); twice != once {
			t.Errorf("%q: not a fixed point: %q then %q", in, once, twice)
		}
	}
}

func TestCleanIsTotal(t *testing.T) {
	// Pathological inputs must come back as some string, never panic.
	inputs := []string{
		"", "{{", "}}", "{{{{{{", "[[", "]]", "''", "<", ">", "<>",
		"<math>unclosed", strings.Repeat("{{x}}", 500),
	}
	for _, in := range inputs {
		_ = Clean(in)
	}
}

package wikiextract

import (
	"fmt"
	"regexp"
	"strings"
)

// Elements whose entire content is dropped from article text.
var discardElements = []string{
	"gallery", "timeline", "noinclude", "pre", "table", "tr", "td", "th",
	"caption", "form", "input", "select", "option", "textarea", "ul", "li",
	"ol", "dl", "dt", "dd", "menu", "dir", "ref", "references", "img",
	"imagemap", "source",
}

// Tags stripped while their content is kept.
var ignoredTags = []string{
	"a", "b", "big", "blockquote", "center", "cite", "div", "em",
	"font", "h1", "h2", "h3", "h4", "hiero", "i", "kbd", "nowiki",
	"p", "plaintext", "s", "small", "span", "strike", "strong",
	"sub", "sup", "tt", "u", "var",
}

var selfClosingTags = []string{"br", "hr", "nobr", "ref", "references"}

// Elements whose body is replaced by a numbered marker so later cleanup
// passes cannot mangle it.
var placeholderTags = []struct{ tag, marker string }{
	{"math", "formula"},
	{"code", "codice"},
}

var (
	templateOpenRE  = regexp.MustCompile(`\{\{`)
	templateCloseRE = regexp.MustCompile(`\}\}`)
	tableOpenRE     = regexp.MustCompile(`\{\|`)
	tableCloseRE    = regexp.MustCompile(`\|\}`)

	// First parameter is displayed, or the target when there is none;
	// trailing word characters (plural suffixes and the like) join the
	// displayed text.
	wikiLinkRE    = regexp.MustCompile(`\[\[([^[]*?)(?:\|([^[]*?))?]](\w*)`)
	bracketLinkRE = regexp.MustCompile(`\[\[.*?]]`)

	// A space separates an external target from its optional label.
	externalLinkRE         = regexp.MustCompile(`\[\w+.*? (.*?)]`)
	externalLinkNoAnchorRE = regexp.MustCompile(`\[\w+[&\]]*]`)

	boldItalicRE  = regexp.MustCompile(`'''''([^']*?)'''''`)
	boldRE        = regexp.MustCompile(`'''(.*?)'''`)
	italicQuoteRE = regexp.MustCompile(`''"(.*?)"''`)
	italicRE      = regexp.MustCompile(`''([^']*)''`)
	quoteQuoteRE  = regexp.MustCompile(`""(.*?)""`)

	commentRE      = regexp.MustCompile(`(?s)<!--.*?-->`)
	preformattedRE = regexp.MustCompile(`(?m)^ .*$`)
)

type placeholderPattern struct {
	re     *regexp.Regexp
	marker string
}

var (
	discardRE     []*regexp.Regexp
	ignoredRE     []*regexp.Regexp
	selfClosingRE []*regexp.Regexp
	placeholderRE []placeholderPattern
)

func init() {
	for _, tag := range discardElements {
		discardRE = append(discardRE, regexp.MustCompile(
			`(?is)<\s*`+tag+`\b[^>]*>.*?<\s*/\s*`+tag+`>`))
	}
	for _, tag := range ignoredTags {
		ignoredRE = append(ignoredRE,
			regexp.MustCompile(`(?i)<\s*`+tag+`\b[^>]*>`),
			regexp.MustCompile(`(?i)<\s*/\s*`+tag+`>`))
	}
	for _, tag := range selfClosingTags {
		selfClosingRE = append(selfClosingRE, regexp.MustCompile(
			`(?is)<\s*`+tag+`\b[^/]*/\s*>`))
	}
	for _, p := range placeholderTags {
		placeholderRE = append(placeholderRE, placeholderPattern{
			regexp.MustCompile(`(?is)<\s*` + p.tag + `(\s*| [^>]+?)>.*?<\s*/\s*` + p.tag + `\s*>`),
			p.marker,
		})
	}
}

// expandLink turns an internal link into its displayed text.
func expandLink(m string) string {
	g := wikiLinkRE.FindStringSubmatch(m)
	anchor := g[2]
	if anchor == "" {
		anchor = g[1]
	}
	return anchor + g[3]
}

// Clean turns raw wiki markup into normalized plain text. It never fails;
// markup it cannot make sense of is deleted or left as ordinary text. The
// step order is load-bearing: later steps assume the earlier ones ran.
func Clean(text string) string {
	// Transclusions are deleted, never expanded. Tables likewise.
	text = DropNested(text, templateOpenRE, templateCloseRE)
	text = DropNested(text, tableOpenRE, tableCloseRE)

	// Internal links become their display text; whatever bracket syntax
	// remains is dropped outright.
	text = wikiLinkRE.ReplaceAllStringFunc(text, expandLink)
	text = bracketLinkRE.ReplaceAllString(text, "")

	// External links keep only their label.
	text = externalLinkRE.ReplaceAllString(text, "${1}")
	text = externalLinkNoAnchorRE.ReplaceAllString(text, "")

	// Bold and italic markers.
	text = boldItalicRE.ReplaceAllString(text, "${1}")
	text = boldRE.ReplaceAllString(text, "${1}")
	text = italicQuoteRE.ReplaceAllString(text, "&quot;${1}&quot;")
	text = italicRE.ReplaceAllString(text, "&quot;${1}&quot;")
	text = quoteQuoteRE.ReplaceAllString(text, "${1}")
	text = strings.ReplaceAll(text, "'''", "")
	text = strings.ReplaceAll(text, "''", "&quot;")

	// Twice: &amp;nbsp; needs two passes.
	text = Unescape(text)
	text = Unescape(text)

	// Comments, self-closing tags and ignored tag pairs are matched
	// independently and dropped in one merged pass so their offsets stay
	// honest.
	var spans []Span
	for _, m := range commentRE.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{m[0], m[1]})
	}
	for _, re := range selfClosingRE {
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{m[0], m[1]})
		}
	}
	for _, re := range ignoredRE {
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{m[0], m[1]})
		}
	}
	text = DropSpans(spans, text)

	// Discarded elements may nest, so span dropping would tear them;
	// delete each whole element by substitution instead.
	for _, re := range discardRE {
		text = re.ReplaceAllString(text, "")
	}

	text = substPlaceholders(text)

	text = strings.ReplaceAll(text, "<<", "«")
	text = strings.ReplaceAll(text, ">>", "»")

	// Preformatted lines go last; earlier steps still needed the tags
	// these lines may carry.
	text = preformattedRE.ReplaceAllString(text, "")

	return finalCleanup(text)
}

// substPlaceholders replaces math and code bodies with numbered markers,
// counting repeats within the document.
func substPlaceholders(text string) string {
	for _, p := range placeholderRE {
		for i, m := range p.re.FindAllString(text, -1) {
			text = strings.ReplaceAll(text, m, fmt.Sprintf("%s_%d", p.marker, i+1))
		}
	}
	return text
}

var (
	spacesRE       = regexp.MustCompile(` {2,}`)
	dotsRE         = regexp.MustCompile(`\.{4,}`)
	closingPunctRE = regexp.MustCompile(` ([,:.)\]»])`)
	openingPunctRE = regexp.MustCompile(`([(\[«]) `)
	punctLineRE    = regexp.MustCompile(`\n\W+?\n`)
	magicWordRE    = regexp.MustCompile(`__[A-Z]+__`)

	emptyParenRE    = regexp.MustCompile(`\(\s*\)`)
	emptyBracketRE  = regexp.MustCompile(`\[\s*\]`)
	danglingOpenRE  = regexp.MustCompile(`\(\s*[,;]\s*`)
	danglingCloseRE = regexp.MustCompile(`\s*[,;]\s*\)`)

	markerRE = regexp.MustCompile(`(formula|codice)_\d+`)

	charVariants = strings.NewReplacer(
		"–", "-", "—", "-", "−", "-",
		"‘", "'", "’", "'", "‛", "'",
		"“", `"`, "”", `"`, "„", `"`,
	)
)

// finalCleanup normalizes dash and quote variants, strips placeholder
// markers, then reapplies the whole substitution set until the text stops
// shrinking. A single pass is not enough: deleting a nested parenthetical
// can expose a fresh run of spaces, a fresh empty bracket pair, and so on.
func finalCleanup(text string) string {
	text = charVariants.Replace(text)
	text = markerRE.ReplaceAllString(text, "")

	for {
		prev := len(text)
		text = strings.ReplaceAll(text, "\t", " ")
		text = spacesRE.ReplaceAllString(text, " ")
		text = dotsRE.ReplaceAllString(text, "...")
		text = closingPunctRE.ReplaceAllString(text, "${1}")
		text = openingPunctRE.ReplaceAllString(text, "${1}")
		text = emptyParenRE.ReplaceAllString(text, "")
		text = emptyBracketRE.ReplaceAllString(text, "")
		text = danglingOpenRE.ReplaceAllString(text, "(")
		text = danglingCloseRE.ReplaceAllString(text, ")")
		text = punctLineRE.ReplaceAllString(text, "\n")
		text = strings.ReplaceAll(text, ",,", ",")
		text = strings.ReplaceAll(text, ",.", ".")
		text = magicWordRE.ReplaceAllString(text, "")
		if len(text) == prev {
			break
		}
	}
	return text
}

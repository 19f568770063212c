package wikiextract

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var entityRE = regexp.MustCompile(`&#?(\w+);`)

// Unescape resolves HTML and XML character references in text. Decimal and
// hexadecimal references decode to their characters, named entities resolve
// through the HTML entity table, and anything unrecognized is left verbatim.
// References outside the valid character range resolve to nothing rather
// than failing the document.
func Unescape(text string) string {
	return entityRE.ReplaceAllStringFunc(text, func(ref string) string {
		if strings.HasPrefix(ref, "&#") {
			code := ref[2 : len(ref)-1]
			base := 10
			if len(code) > 1 && (code[0] == 'x' || code[0] == 'X') {
				code = code[1:]
				base = 16
			}
			n, err := strconv.ParseInt(code, base, 32)
			if err != nil {
				return ref
			}
			if n > utf8.MaxRune || (n >= 0xd800 && n <= 0xdfff) {
				return ""
			}
			return string(rune(n))
		}
		return html.UnescapeString(ref)
	})
}

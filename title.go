package wikiextract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	titleSpaceRE = regexp.MustCompile(`[\s_]+`)
	titleSplitRE = regexp.MustCompile(`([^:]*):(\s*)(\S(?:.*))`)
)

// capitalize uppercases the first character of s.
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// NormalizeTitle produces the canonical form of a page title: surrounding
// whitespace and underscores trimmed, internal runs of them collapsed to
// single spaces, and the first character capitalized. When the part before
// a colon names one of the accepted namespaces, whitespace after the colon
// is dropped and the page name capitalized too; any other colon keeps the
// remainder as written, since "3001: The Final Odyssey" is not a namespace.
func NormalizeTitle(title string, namespaces []string) string {
	title = strings.Trim(title, " _")
	title = titleSpaceRE.ReplaceAllString(title, " ")

	m := titleSplitRE.FindStringSubmatch(title)
	if m == nil {
		return capitalize(title)
	}
	prefix, rest := capitalize(m[1]), m[3]
	for _, ns := range namespaces {
		if strings.EqualFold(ns, prefix) {
			return prefix + ":" + capitalize(rest)
		}
	}
	ws := ""
	if m[2] != "" {
		ws = " "
	}
	return prefix + ":" + ws + rest
}

package wikiextract

import (
	"regexp"
)

var (
	linkTargetRE = regexp.MustCompile(`\[\[([^\|\]]+)`)
	nowikiRE     = regexp.MustCompile(`(?s)<nowiki>.*?</nowiki>`)
)

// FindLinks returns the internal link targets referenced from raw page
// markup, comments and nowiki sections excluded.
func FindLinks(markup string) []string {
	cleaned := nowikiRE.ReplaceAllString(commentRE.ReplaceAllString(markup, ""), "")
	matches := linkTargetRE.FindAllStringSubmatch(cleaned, -1)

	rv := make([]string, 0, len(matches))
	for _, m := range matches {
		rv = append(rv, m[1])
	}
	return rv
}

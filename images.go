package wikiextract

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"
)

var fileRE = regexp.MustCompile(`\[File:([^\|\]]+)`)

// FindFiles returns the File references from raw page markup. Commented-out
// references are included on purpose; plenty of real articles keep their
// images there.
func FindFiles(markup string) []string {
	cleaned := nowikiRE.ReplaceAllString(markup, "")
	matches := fileRE.FindAllStringSubmatch(cleaned, -1)

	rv := make([]string, 0, len(matches))
	for _, m := range matches {
		rv = append(rv, m[1])
	}
	return rv
}

// URLForFile returns the wikimedia commons URL for the named file.
func URLForFile(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	sum := md5.Sum([]byte(name))
	h := hex.EncodeToString(sum[:])

	return "http://upload.wikimedia.org/wikipedia/commons/" +
		h[0:1] + "/" + h[0:2] + "/" + url.QueryEscape(name)
}

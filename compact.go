package wikiextract

import (
	"sort"
	"strings"
)

// parseSection matches a section heading: a run of two or more leading =
// signs closed by a matching run later in the line. The close run must be
// the same length as the open run, so an asymmetric heading like ===B==
// resolves to the longest level both ends support (here 2, keeping the
// stray = in the title).
func parseSection(line string) (lev int, title string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '=' {
		n++
	}
	if n < 2 {
		return 0, "", false
	}
	for lev = n; lev >= 2; lev-- {
		rest := line[lev:]
		if i := strings.Index(rest, strings.Repeat("=", lev)); i >= 0 {
			return lev, strings.TrimSpace(rest[:i]), true
		}
	}
	return 0, "", false
}

// sentence terminates s with a period unless it already ends in sentence
// punctuation.
func sentence(s string) string {
	switch s[len(s)-1] {
	case '!', '?':
		return s
	}
	return s + "."
}

// Compact rebuilds cleaned text into a flat sequence of output lines.
// Section headers are held back and attached to the first body line that
// follows them; headers with no body, list items, and leftovers of tables
// contribute nothing.
func Compact(text string) []string {
	var page []string
	headers := map[int]string{} // pending header text by nesting level
	emptySection := false

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}

		if lev, title, ok := parseSection(line); ok {
			if title != "" {
				title = sentence(title)
			}
			headers[lev] = title
			// A new header closes out anything nested below it.
			for l := range headers {
				if l > lev {
					delete(headers, l)
				}
			}
			emptySection = true
			continue
		}

		first, last := line[0], line[len(line)-1]
		switch {
		case strings.HasPrefix(line, "++"):
			// Page-level title line.
			if len(line) > 4 {
				page = append(page, sentence(line[2:len(line)-2]))
			}
		case strings.IndexByte("*#:;", first) >= 0:
			// List items are not reproduced as prose.
		case first == '{' || first == '|' || last == '}':
			// Residue of tables and lists.
		case (first == '(' && last == ')') || strings.Trim(line, ".-") == "":
			// Parenthetical-only or punctuation-only line.
		case len(headers) > 0:
			levels := make([]int, 0, len(headers))
			for l := range headers {
				levels = append(levels, l)
			}
			sort.Ints(levels)
			for _, l := range levels {
				page = append(page, headers[l])
			}
			headers = map[int]string{}
			page = append(page, line)
			emptySection = false
		case !emptySection:
			page = append(page, line)
		}
	}

	return page
}

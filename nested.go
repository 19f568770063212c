package wikiextract

import (
	"regexp"
	"sort"
	"strings"
)

// A Span is a half-open [Start, End) byte range marking text to delete.
type Span struct {
	Start int
	End   int
}

// DropSpans deletes the marked ranges from text. Spans may arrive in any
// order; they are sorted by start offset and only the gaps between them
// survive.
func DropSpans(spans []Span, text string) string {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	b := strings.Builder{}
	b.Grow(len(text))
	pos := 0
	for _, s := range spans {
		if s.Start > pos {
			b.WriteString(text[pos:s.Start])
		}
		if s.End > pos {
			pos = s.End
		}
	}
	b.WriteString(text[pos:])
	return b.String()
}

// searchFrom finds the first match of re at or after offset from, returned
// as absolute offsets into text.
func searchFrom(re *regexp.Regexp, text string, from int) []int {
	if from > len(text) {
		return nil
	}
	loc := re.FindStringIndex(text[from:])
	if loc == nil {
		return nil
	}
	return []int{loc[0] + from, loc[1] + from}
}

// DropNested deletes every region bracketed by the open and close patterns,
// nested regions included. Balanced input partitions into top-level blocks,
// each deleted whole. Unbalanced input with more opens than closes collapses
// into a single deletion from the first unmatched open through the last
// close found.
func DropNested(text string, open, close *regexp.Regexp) string {
	start := searchFrom(open, text, 0)
	if start == nil {
		return text
	}

	var spans []Span
	nest := 0
	end := searchFrom(close, text, start[1])
	next := start
	for end != nil {
		next = searchFrom(open, text, next[1])
		if next == nil {
			// No further opens; unwind whatever nesting remains.
			for nest > 0 {
				nest--
				end0 := searchFrom(close, text, end[1])
				if end0 == nil {
					break
				}
				end = end0
			}
			spans = append(spans, Span{start[0], end[1]})
			break
		}
		for end != nil && end[1] < next[0] {
			if nest > 0 {
				nest--
				last := end[1]
				end = searchFrom(close, text, end[1])
				if end == nil {
					// More opens than closes: collapse everything
					// accumulated so far into one span.
					first := start[0]
					if len(spans) > 0 {
						first = spans[0].Start
					}
					spans = []Span{{first, last}}
					break
				}
			} else {
				// A complete top-level block; the next open begins a
				// new one.
				spans = append(spans, Span{start[0], end[1]})
				start = next
				end = searchFrom(close, text, next[1])
				break
			}
		}
		if next[0] != start[0] {
			nest++
		}
	}

	return DropSpans(spans, text)
}

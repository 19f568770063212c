package wikiextract

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// The one generic pattern standing in for an XML tokenizer: text before a
// tag, the tag name (with optional leading slash), and any text after it up
// to a following tag open. It assumes a structurally significant tag fits
// on a single line. Kept behind matchTag so it can be hardened without
// touching the state machine.
var tagRE = regexp.MustCompile(`(.*?)<(/?\w+)[^>]*>(?:([^<]*)(<.*?>)?)?`)

type structuralTag struct {
	name     string // includes the leading / on close tags
	lead     string // text on the line before the tag
	inner    string // text after the tag, up to a following tag open
	followed bool   // another tag follows the inner text on this line
}

func matchTag(line string) (structuralTag, bool) {
	idx := tagRE.FindStringSubmatchIndex(line)
	if idx == nil {
		return structuralTag{}, false
	}
	t := structuralTag{
		name: line[idx[4]:idx[5]],
		lead: line[idx[2]:idx[3]],
	}
	if idx[6] >= 0 {
		t.inner = line[idx[6]:idx[7]]
	}
	t.followed = idx[8] >= 0
	return t, true
}

// A Document is one extracted page: its id, normalized title, raw markup,
// and the cleaned, compacted body lines.
type Document struct {
	ID     string
	Title  string
	Markup string // raw wiki markup, before cleaning
	Lines  []string
}

// WriteTo writes the document in the output format: a <<<Title>>> marker
// line followed by the body lines, newline terminated.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var written int64
	n, err := fmt.Fprintf(w, "<<<%s>>>\n", d.Title)
	written += int64(n)
	if err != nil {
		return written, err
	}
	for _, line := range d.Lines {
		n, err = fmt.Fprintln(w, line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// A Scanner extracts cleaned documents from a dump, one page at a time. It
// reconstructs page records from raw input lines without a real XML parser:
// malformed lines simply fail to match and are ignored.
type Scanner struct {
	// Namespaces holds the title prefixes accepted for extraction,
	// compared case-insensitively. A page whose title carries any other
	// prefix is skipped, as is every redirect.
	Namespaces []string

	// MaxPages, when positive, ends the scan after that many page
	// records regardless of acceptance. The multistream reader uses it
	// to stay inside one stream of a concatenated dump.
	MaxPages int64

	r *bufio.Scanner

	pages  int64  // page records seen, accepted or not
	prefix string // link prefix from the site base declaration

	// state of the page being assembled
	buf      []string
	id       string
	title    string
	redirect bool
	inText   bool
}

// NewScanner returns a scanner reading dump lines from r.
func NewScanner(r io.Reader) *Scanner {
	br := bufio.NewScanner(r)
	// Article markup can carry very long lines.
	br.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &Scanner{
		Namespaces: []string{"w"},
		r:          br,
	}
}

// Pages returns the number of page records seen so far.
func (s *Scanner) Pages() int64 { return s.pages }

// Prefix returns the link-resolution prefix derived from the dump's site
// base declaration, if one was seen.
func (s *Scanner) Prefix() string { return s.prefix }

// Next returns the next accepted page as a cleaned document, and io.EOF at
// end of input.
func (s *Scanner) Next() (*Document, error) {
	for {
		if s.MaxPages > 0 && s.pages >= s.MaxPages {
			return nil, io.EOF
		}
		if !s.r.Scan() {
			break
		}
		if d := s.line(s.r.Text()); d != nil {
			return d, nil
		}
	}
	if err := s.r.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// line feeds one input line through the state machine, returning a document
// when it closes an accepted page. Dispatch order matters: a line inside
// the text body wins over /page and base handling, so stray markup cannot
// end a page early.
func (s *Scanner) line(line string) *Document {
	var t structuralTag
	if strings.Contains(line, "<") {
		t, _ = matchTag(line)
	}

	switch {
	case t.name == "page":
		s.buf = s.buf[:0]
		s.redirect = false
	case t.name == "id" && s.id == "":
		s.id = t.inner
	case t.name == "title":
		s.title = t.inner
	case t.name == "redirect":
		s.redirect = true
	case t.name == "text":
		s.inText = true
		s.buf = append(s.buf, t.inner+"\n")
		if t.followed {
			// Open and close on the same line.
			s.inText = false
		}
	case t.name == "/text":
		if t.lead != "" {
			s.buf = append(s.buf, t.lead+"\n")
		}
		s.inText = false
	case s.inText:
		s.buf = append(s.buf, line+"\n")
	case t.name == "/page":
		d := s.closePage()
		s.id = ""
		s.buf = s.buf[:0]
		if d != nil {
			return d
		}
	case t.name == "base":
		if i := strings.LastIndex(t.inner, "/"); i >= 0 {
			s.prefix = t.inner[:i]
		}
	}
	return nil
}

// closePage finalizes the current page record, producing a document when
// the page is accepted.
func (s *Scanner) closePage() *Document {
	s.pages++
	title := NormalizeTitle(s.title, s.Namespaces)
	if s.redirect || !s.accepted(title) {
		return nil
	}
	markup := strings.Join(s.buf, "")
	return &Document{
		ID:     s.id,
		Title:  title,
		Markup: markup,
		Lines:  Compact(Clean(markup)),
	}
}

// accepted reports whether a title's namespace prefix, if any, allows
// extraction.
func (s *Scanner) accepted(title string) bool {
	colon := strings.IndexByte(title, ':')
	if colon < 0 {
		return true
	}
	prefix := title[:colon]
	for _, ns := range s.Namespaces {
		if strings.EqualFold(ns, prefix) {
			return true
		}
	}
	return false
}

// Extract runs a scanner over r and writes every accepted document to w,
// returning the number of documents written. I/O failure is the only error
// outcome; malformed records are skipped, not fatal.
func Extract(r io.Reader, w io.Writer) (int64, error) {
	s := NewScanner(r)
	var docs int64
	for {
		d, err := s.Next()
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return docs, err
		}
		if _, err := d.WriteTo(w); err != nil {
			return docs, err
		}
		docs++
	}
}

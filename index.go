package wikiextract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// An IndexEntry is one article from a multistream index: the byte offset of
// its compressed stream, its page id, and its title.
type IndexEntry struct {
	StreamOffset int64
	PageOffset   int
	ArticleName  string
}

func (e IndexEntry) String() string {
	return fmt.Sprintf("%v:%v:%v", e.StreamOffset, e.PageOffset, e.ArticleName)
}

// An IndexReader reads a multistream index line by line. Offsets in older
// indexes were written as 32-bit values and wrap around; the reader assumes
// they were meant to be incremental and rebases on each wrap.
type IndexReader struct {
	r          *bufio.Scanner
	base       int64
	prevOffset int64
}

// NewIndexReader returns an index reader over the decoded index lines in r.
func NewIndexReader(r io.Reader) *IndexReader {
	return &IndexReader{r: bufio.NewScanner(r)}
}

// Next returns the next index entry, with io.EOF at end of input.
func (ir *IndexReader) Next() (IndexEntry, error) {
	if !ir.r.Scan() {
		err := ir.r.Err()
		if err == nil {
			err = io.EOF
		}
		return IndexEntry{}, err
	}

	parts := strings.SplitN(ir.r.Text(), ":", 3)
	if len(parts) != 3 {
		return IndexEntry{}, errors.New("bad index record")
	}

	offset, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return IndexEntry{}, err
	}
	pageOffset, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return IndexEntry{}, err
	}

	if offset < ir.prevOffset {
		ir.base += 1 << 32
	}
	ir.prevOffset = offset

	return IndexEntry{
		StreamOffset: offset + ir.base,
		PageOffset:   int(pageOffset),
		ArticleName:  parts[2],
	}, nil
}

// An IndexSummaryReader reduces an index to per-stream offsets and page
// counts, for callers that only need to know where the streams are.
type IndexSummaryReader struct {
	index      *IndexReader
	prevOffset int64
	count      int
}

// NewIndexSummaryReader returns a summary reader over the decoded index
// lines in r.
func NewIndexSummaryReader(r io.Reader) (*IndexSummaryReader, error) {
	rv := &IndexSummaryReader{index: NewIndexReader(r)}
	first, err := rv.index.Next()
	if err != nil {
		return nil, err
	}
	rv.prevOffset = first.StreamOffset
	rv.count = 1
	return rv, nil
}

// Next returns the offset of the next stream and the number of pages it
// holds. The last stream is returned together with io.EOF.
func (sr *IndexSummaryReader) Next() (offset int64, count int, err error) {
	for {
		e, err := sr.index.Next()
		if err != nil {
			offset, count = sr.prevOffset, sr.count
			sr.prevOffset, sr.count = 0, 0
			return offset, count, err
		}
		if e.StreamOffset != sr.prevOffset {
			offset, count = sr.prevOffset, sr.count
			sr.prevOffset, sr.count = e.StreamOffset, 1
			return offset, count, nil
		}
		sr.count++
	}
}

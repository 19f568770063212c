package wikiextract

import (
	"io"
	"strings"
	"testing"
)

// The third stream's offset is what a 32-bit writer produced after
// wrapping; its real offset is -2147480000 + 2^32 = 2147487296.
const indexData = `620:1:Astronomy
620:2:Basalt
620:3:Category:Physics
620:5:Chirality
2147481000:90001:Quartz
2147481000:90004:Radon
2147481000:90007:Saturn
-2147480000:90009:Tellurium
-2147480000:90012:Uranium
`

const lastStream = 2147487296

func TestIndexReader(t *testing.T) {
	ir := NewIndexReader(strings.NewReader(indexData))

	e, err := ir.Next()
	if err != nil {
		t.Fatalf("Error parsing first entry: %v", err)
	}
	if e.String() != "620:1:Astronomy" {
		t.Errorf("Error stringing first entry, got %v", e)
	}

	entries := []IndexEntry{e}
	for {
		e, err = ir.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Error reading index: %v", err)
		}
		entries = append(entries, e)
	}

	if len(entries) != 9 {
		t.Fatalf("Expected 9 entries, got %v", len(entries))
	}
	if entries[2].ArticleName != "Category:Physics" {
		t.Errorf("Expected colons kept in article names, got %q",
			entries[2].ArticleName)
	}
	last := entries[len(entries)-1]
	if last.StreamOffset != lastStream {
		t.Errorf("Expected rebased offset %v, got %v",
			int64(lastStream), last.StreamOffset)
	}
	if last.PageOffset != 90012 || last.ArticleName != "Uranium" {
		t.Errorf("Unexpected final entry: %v", last)
	}
}

func TestIndexReaderBadRecord(t *testing.T) {
	ir := NewIndexReader(strings.NewReader("broken line\n"))
	if _, err := ir.Next(); err == nil {
		t.Fatalf("Expected error on malformed index record")
	}
}

func TestIndexSummary(t *testing.T) {
	isr, err := NewIndexSummaryReader(strings.NewReader(indexData))
	if err != nil {
		t.Fatalf("Error initializing IndexSummaryReader: %v", err)
	}

	expected := []struct {
		offset int64
		count  int
		err    error
	}{
		{620, 4, nil},
		{2147481000, 3, nil},
		{lastStream, 2, io.EOF},
		{0, 0, io.EOF},
	}

	for _, e := range expected {
		offset, count, err := isr.Next()
		if offset != e.offset {
			t.Fatalf("Expected offset %v, got %v", e.offset, offset)
		}
		if count != e.count {
			t.Fatalf("Expected count %v, got %v", e.count, count)
		}
		if err != e.err {
			t.Fatalf("Expected err %v, got %v", e.err, err)
		}
	}
}

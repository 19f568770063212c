// Convert a wikipedia dump into a stream of plain text documents.
package main

import (
	"bufio"
	"compress/bzip2"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	wikiextract "github.com/tanl/go-wikiextract"
)

var (
	infile  = flag.String("i", "", "Path to the dump file (plain or bzip2).")
	outfile = flag.String("o", "wiki.txt", "Output filename for the extracted text.")
	dir     = flag.String("d", "data", "Data directory holding input and output.")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s -i dumpfile [opts]\n\nOptions:\n",
			os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if *infile == "" {
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(filepath.Join(*dir, *infile))
	if err != nil {
		log.Fatalf("Error opening dump: %v", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(*infile, ".bz2") {
		r = bzip2.NewReader(f)
	}

	out, err := os.Create(filepath.Join(*dir, *outfile))
	if err != nil {
		log.Fatalf("Error creating output file: %v", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	s := wikiextract.NewScanner(r)

	docs := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	for {
		d, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error reading dump: %v", err)
		}
		if _, err := d.WriteTo(w); err != nil {
			log.Fatalf("Error writing output: %v", err)
		}

		docs++
		if docs%reportfreq == 0 {
			now := time.Now()
			dur := now.Sub(prev)
			log.Printf("Extracted %s documents from %s pages (%.2f/s)",
				humanize.Comma(docs), humanize.Comma(s.Pages()),
				float64(reportfreq)/dur.Seconds())
			prev = now
		}
	}

	if err := w.Flush(); err != nil {
		log.Fatalf("Error flushing output: %v", err)
	}
	log.Printf("Extracted %s documents from %s pages in %v",
		humanize.Comma(docs), humanize.Comma(s.Pages()),
		time.Since(start))
}

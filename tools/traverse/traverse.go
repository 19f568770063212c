// Sample program that walks a dump counting extractable documents and
// auditing the geo data found along the way.
package main

import (
	"compress/bzip2"
	"encoding/gob"
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	wikiextract "github.com/tanl/go-wikiextract"
)

var (
	numWorkers  = flag.Int("workers", 8, "Number of document workers")
	multiStream = flag.Bool("multistream", false,
		"Treat the input as a multistream dump (requires -index)")
	indexFile  = flag.String("index", "", "Multistream index file (bz2)")
	auditGeo   = flag.Bool("geo", true, "Audit coordinate parsing")
	withCoords int64
)

var wg, errwg sync.WaitGroup

func auditDoc(d *wikiextract.Document, cherr chan<- *wikiextract.Document) {
	_, err := wikiextract.ParseCoords(d.Markup)
	switch err {
	case nil:
		atomic.AddInt64(&withCoords, 1)
	case wikiextract.ErrNoCoord:
		// nothing to audit
	default:
		cherr <- d
		log.Printf("Error parsing geo from %q: %v", d.Title, err)
	}
}

func docHandler(ch <-chan *wikiextract.Document, cherr chan<- *wikiextract.Document) {
	for d := range ch {
		if *auditGeo {
			auditDoc(d, cherr)
		}
		wg.Done()
	}
}

func errorHandler(ch <-chan *wikiextract.Document) {
	defer errwg.Done()
	f, err := os.Create("errors.gob")
	if err != nil {
		log.Fatalf("Error creating error file: %v", err)
	}
	defer f.Close()
	g := gob.NewEncoder(f)

	for d := range ch {
		if err := g.Encode(d); err != nil {
			log.Fatalf("Error gobbing document: %v\n%#v", err, d)
		}
	}
}

type source interface {
	Next() (*wikiextract.Document, error)
}

func process(p source) {
	ch := make(chan *wikiextract.Document, 1000)
	cherr := make(chan *wikiextract.Document, 10)

	for i := 0; i < *numWorkers; i++ {
		go docHandler(ch, cherr)
	}

	errwg.Add(1)
	go errorHandler(cherr)

	docs := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	var err error
	for err == nil {
		var d *wikiextract.Document
		d, err = p.Next()
		if err == nil {
			wg.Add(1)
			ch <- d
		}

		docs++
		if docs%reportfreq == 0 {
			now := time.Now()
			dur := now.Sub(prev)
			log.Printf("Traversed %s documents total (%.2f/s)",
				humanize.Comma(docs), float64(reportfreq)/dur.Seconds())
			prev = now
		}
	}
	wg.Wait()
	close(ch)
	close(cherr)
	errwg.Wait()

	dur := time.Since(start)
	if err != io.EOF {
		log.Printf("Scan ended abnormally: %v", err)
	}
	log.Printf("Traversed %s documents in %v (%.2f/s), %s with geo data",
		humanize.Comma(docs), dur, float64(docs)/dur.Seconds(),
		humanize.Comma(atomic.LoadInt64(&withCoords)))
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatalf("Dump file required.")
	}
	filename := flag.Arg(0)

	if *multiStream {
		if *indexFile == "" {
			log.Fatalf("-multistream requires -index")
		}
		p, err := wikiextract.NewIndexedScanner(*indexFile, filename,
			runtime.GOMAXPROCS(0))
		if err != nil {
			log.Fatalf("Error initializing multistream scanner: %v", err)
		}
		process(p)
		return
	}

	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer f.Close()
	process(wikiextract.NewScanner(bzip2.NewReader(f)))
}

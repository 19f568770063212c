// Load extracted wikipedia text into CouchBase.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/couchbase/go-couchbase"
	"github.com/dustin/go-humanize"
	wikiextract "github.com/tanl/go-wikiextract"
)

var numWorkers = flag.Int("numWorkers", 8, "Number of document workers")

var wg sync.WaitGroup

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage:\n  %s [opts] wikipedia.index.bz2 wikipedia.xml.bz2\n",
		os.Args[0])
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	os.Exit(1)
}

type Geo struct {
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Type string `json:"type"`
}

type Article struct {
	PageID string   `json:"pageid,omitempty"`
	Text   string   `json:"text"`
	Geo    *Geo     `json:"geo,omitempty"`
	Files  []string `json:"files,omitempty"`
	Links  []string `json:"links,omitempty"`
}

func doDoc(db *couchbase.Bucket, d *wikiextract.Document) {
	article := Article{
		PageID: d.ID,
		Text:   strings.Join(d.Lines, "\n"),
		Files:  wikiextract.FindFiles(d.Markup),
		Links:  wikiextract.FindLinks(d.Markup),
	}
	if gl, err := wikiextract.ParseCoords(d.Markup); err == nil {
		article.Geo = &Geo{Type: "Feature"}
		article.Geo.Geometry.Type = "Point"
		article.Geo.Geometry.Coordinates = []float64{gl.Lon, gl.Lat}
	}

	if err := db.Set(d.Title, 0, article); err != nil {
		log.Printf("Error setting %v: %v", d.Title, err)
	}
}

func docHandler(db *couchbase.Bucket, ch <-chan *wikiextract.Document) {
	defer wg.Done()
	for d := range ch {
		doDoc(db, d)
	}
}

func main() {
	couchbaseServer := flag.String("couchbase", "http://localhost:8091/",
		"Couchbase URL")
	couchbaseBucket := flag.String("bucket", "default", "Couchbase bucket")
	procs := flag.Int("cpus", runtime.NumCPU(), "Number of CPUS to use")
	flag.Parse()

	runtime.GOMAXPROCS(*procs)

	db, err := couchbase.GetBucket(*couchbaseServer,
		"default", *couchbaseBucket)
	if err != nil {
		log.Fatalf("Error connecting to couchbase: %v", err)
	}

	p, err := wikiextract.NewIndexedScanner(flag.Arg(0), flag.Arg(1),
		runtime.GOMAXPROCS(0))
	if err != nil {
		log.Fatalf("Error initializing multistream scanner: %v", err)
	}

	ch := make(chan *wikiextract.Document, 1000)

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go docHandler(db, ch)
	}

	docs := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	for err == nil {
		var d *wikiextract.Document
		d, err = p.Next()
		if err == nil {
			ch <- d
		}

		docs++
		if docs%reportfreq == 0 {
			now := time.Now()
			dur := now.Sub(prev)
			log.Printf("Loaded %s documents total (%.2f/s)",
				humanize.Comma(docs), float64(reportfreq)/dur.Seconds())
			prev = now
		}
	}
	close(ch)
	wg.Wait()
	if err != io.EOF {
		log.Printf("Scan ended abnormally: %v", err)
	}
	log.Printf("Loaded %s documents in %v",
		humanize.Comma(docs), time.Since(start))
}

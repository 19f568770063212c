// Load extracted wikipedia text into CouchDB.
package main

import (
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-couch"
	"github.com/dustin/go-humanize"
	"github.com/dustin/httputil"
	wikiextract "github.com/tanl/go-wikiextract"
)

var wg sync.WaitGroup

type Geo struct {
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Type string `json:"type"`
}

type Article struct {
	ID     string   `json:"_id"`
	Rev    string   `json:"_rev,omitempty"`
	PageID string   `json:"pageid,omitempty"`
	Text   string   `json:"text"`
	Geo    *Geo     `json:"geo,omitempty"`
	Files  []string `json:"files,omitempty"`
	Links  []string `json:"links,omitempty"`
}

func escapeTitle(in string) string {
	return strings.ReplaceAll(strings.ReplaceAll(in, "/", "%2f"),
		"+", "%2b")
}

func doDoc(db *couch.Database, d *wikiextract.Document) {
	defer wg.Done()
	article := Article{
		ID:     escapeTitle(d.Title),
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

	_, _, err := db.Insert(&article)
	switch {
	case err == nil:
		// yay
	case httputil.IsHTTPStatus(err, 409):
		// A dump carries each page once; an existing doc means this
		// load was restarted. Keep the first copy.
		log.Printf("Already have %s", article.ID)
	default:
		log.Printf("Error inserting %v: %v", article.ID, err)
	}
}

func docHandler(db couch.Database, ch <-chan *wikiextract.Document) {
	for d := range ch {
		doDoc(&db, d)
	}
}

func main() {
	dburl, idx, file := os.Args[1], os.Args[2], os.Args[3]

	db, err := couch.Connect(dburl)
	if err != nil {
		log.Fatalf("Error connecting to couchdb: %v", err)
	}

	p, err := wikiextract.NewIndexedScanner(idx, file, runtime.GOMAXPROCS(0))
	if err != nil {
		log.Fatalf("Error initializing multistream scanner: %v", err)
	}

	ch := make(chan *wikiextract.Document, 1000)

	for i := 0; i < 20; i++ {
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
			wg.Add(1)
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
	wg.Wait()
	close(ch)
	if err != io.EOF {
		log.Printf("Scan ended abnormally: %v", err)
	}
	log.Printf("Loaded %s documents in %v",
		humanize.Comma(docs), time.Since(start))
}

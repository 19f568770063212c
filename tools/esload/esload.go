// Load extracted wikipedia text into ElasticSearch.
package main

import (
	"compress/bzip2"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-elasticsearch"
	"github.com/dustin/go-humanize"
	wikiextract "github.com/tanl/go-wikiextract"
)

var wg = sync.WaitGroup{}

func docHandler(u string, ch <-chan *wikiextract.Document) {
	counter := 0
	es := elasticsearch.ElasticSearch{URL: u}
	bulkLoader := es.Bulk()

	for d := range ch {
		counter++
		if counter > 1000 {
			bulkLoader.SendBatch()
			counter = 0
		}
		ui := elasticsearch.UpdateInstruction{
			Id:    d.Title,
			Index: "wikitext",
			Type:  "article",
			Body: map[string]interface{}{
				"id":    d.ID,
				"text":  strings.Join(d.Lines, "\n"),
				"links": wikiextract.FindLinks(d.Markup),
			},
		}
		bulkLoader.Update(&ui)
		wg.Done()
	}
	bulkLoader.Quit()
}

func main() {
	filename, esurl := os.Args[1], os.Args[2]

	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer f.Close()

	s := wikiextract.NewScanner(bzip2.NewReader(f))

	ch := make(chan *wikiextract.Document, 1000)

	for i := 0; i < 4; i++ {
		go docHandler(esurl, ch)
	}

	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	docs := int64(0)
	for err == nil {
		var d *wikiextract.Document
		d, err = s.Next()
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

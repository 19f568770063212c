// Load extracted wikipedia text into MongoDB.
package main

import (
	"compress/bzip2"
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	wikiextract "github.com/tanl/go-wikiextract"
	"gopkg.in/mgo.v2"
)

var (
	proc       = flag.Int("proc", 8, "How many document workers to run.")
	file       = flag.String("file", "", "The bz2 dump file.")
	cpus       = flag.Int("cpus", runtime.NumCPU(), "Number of CPUs to use.")
	dburl      = flag.String("dburl", "localhost", "The dburl(s). I.e. localhost.")
	verbose    = flag.Bool("v", false, "Verbose logging?")
	collection = flag.String("collection", "articles", "The collection to store extracted articles in.")
	dbname     = flag.String("dbname", "wp", "The database name to use.")
)

var wg sync.WaitGroup

// Titles are unique since the title is the URL path in wikimedia:
// My Title => My_Title
var titleIndex = mgo.Index{
	Key:        []string{"title"},
	Unique:     true,
	DropDups:   true,
	Background: true,
	Sparse:     true,
}

type article struct {
	ID     string   `bson:"_id,omitempty"`
	Title  string   `bson:"title,omitempty"`
	PageID string   `bson:"pageid,omitempty"`
	Text   string   `bson:"text,omitempty"`
	Files  []string `bson:"files,omitempty"`
	Links  []string `bson:"links,omitempty"`
}

func docHandler(db *mgo.Database, ch <-chan *wikiextract.Document) {
	for d := range ch {
		makeArticle(db, d)
	}
}

func makeArticle(db *mgo.Database, d *wikiextract.Document) {
	a := article{
		Title:  d.Title,
		PageID: d.ID,
		Text:   strings.Join(d.Lines, "\n"),
		Links:  wikiextract.FindLinks(d.Markup),
		Files:  wikiextract.FindFiles(d.Markup),
	}
	if err := db.C(*collection).Insert(&a); err != nil {
		if mgo.IsDup(err) {
			if *verbose {
				log.Printf("Duplicate Key Error inserting %s", a.Title)
			}
		} else {
			log.Printf("Error inserting %s: %s", a.Title, err)
		}
	}
	wg.Done()
}

func processDump(s *wikiextract.Scanner, db *mgo.Database) {
	ch := make(chan *wikiextract.Document, 1000)
	for i := 0; i < *proc; i++ {
		go docHandler(db, ch)
	}

	docs := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(10000)
	var err error
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
			log.Printf("Loaded %s documents total (%.2f/s)\n",
				humanize.Comma(docs), float64(reportfreq)/dur.Seconds())
			prev = now
		}
	}
	wg.Wait()
	close(ch)

	dur := time.Since(start)
	if err != io.EOF {
		log.Printf("Scan ended abnormally: %v", err)
	}
	log.Printf("Loaded %s documents from %s pages in %v (%.2f docs/s)",
		humanize.Comma(docs), humanize.Comma(s.Pages()), dur,
		float64(docs)/dur.Seconds())
}

func main() {
	flag.Parse()
	if *file == "" {
		log.Fatal("You must supply a bz2 dump file.")
	}
	runtime.GOMAXPROCS(*cpus)

	session, err := mgo.Dial(*dburl)
	if err != nil {
		log.Fatalf("Error connecting to mongodb: %v", err)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	defer f.Close()

	s := wikiextract.NewScanner(bzip2.NewReader(f))

	err = session.DB(*dbname).C(*collection).EnsureIndex(titleIndex)
	if err != nil {
		log.Fatal("Error creating title index", err)
	}
	processDump(s, session.DB(*dbname))
}

package wikiextract

import (
	"compress/bzip2"
	"io"
	"log"
	"os"
	"sync"
)

type streamChunk struct {
	offset int64
	count  int
}

// An IndexedScanner extracts documents from a multistream dump, fanning
// worker goroutines out over the compressed streams named by the index.
// Documents arrive as streams complete, not in input order.
type IndexedScanner struct {
	chunks chan streamChunk
	docs   chan *Document
}

func indexWorker(indexfn string, p *IndexedScanner) {
	defer close(p.chunks)

	r, err := os.Open(indexfn)
	if err != nil {
		log.Fatalf("Error opening %v: %v", indexfn, err)
	}
	defer r.Close()

	sr, err := NewIndexSummaryReader(bzip2.NewReader(r))
	if err != nil {
		log.Fatalf("Error reading index summary: %v", err)
	}
	for {
		offset, count, err := sr.Next()
		p.chunks <- streamChunk{offset, count}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error reading index: %v", err)
		}
	}
}

func streamWorker(datafn string, wg *sync.WaitGroup, p *IndexedScanner) {
	defer wg.Done()

	r, err := os.Open(datafn)
	if err != nil {
		log.Fatalf("Error opening %v: %v", datafn, err)
	}
	defer r.Close()

	for chunk := range p.chunks {
		if _, err := r.Seek(chunk.offset, 0); err != nil {
			log.Fatalf("Error seeking to stream offset: %v", err)
		}

		s := NewScanner(bzip2.NewReader(r))
		// bzip2 reads concatenated streams right through; the page
		// budget keeps this worker inside its own.
		s.MaxPages = int64(chunk.count)
		for {
			d, err := s.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				log.Fatalf("Error scanning stream at %v: %v",
					chunk.offset, err)
			}
			p.docs <- d
		}
	}
}

// NewIndexedScanner extracts documents from the multistream dump datafn
// using the bzip2-compressed index indexfn, running numWorkers streams in
// parallel.
func NewIndexedScanner(indexfn, datafn string, numWorkers int) (*IndexedScanner, error) {
	// Fail early on an unreadable dump rather than from inside a worker.
	r, err := os.Open(datafn)
	if err != nil {
		return nil, err
	}
	r.Close()

	rv := &IndexedScanner{
		chunks: make(chan streamChunk, 1000),
		docs:   make(chan *Document, 1000),
	}

	wg := sync.WaitGroup{}
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go streamWorker(datafn, &wg, rv)
	}
	go indexWorker(indexfn, rv)
	go func() {
		wg.Wait()
		close(rv.docs)
	}()

	return rv, nil
}

// Next returns the next extracted document, and io.EOF once every stream
// has been drained.
func (p *IndexedScanner) Next() (*Document, error) {
	d, ok := <-p.docs
	if !ok {
		return nil, io.EOF
	}
	return d, nil
}

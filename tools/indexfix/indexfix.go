// Print a multistream index with offsets rebased past 32-bit wraparound.
package main

import (
	"compress/bzip2"
	"fmt"
	"io"
	"log"
	"os"

	wikiextract "github.com/tanl/go-wikiextract"
)

func main() {
	r, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Error opening %v: %v", os.Args[1], err)
	}
	defer r.Close()

	ir := wikiextract.NewIndexReader(bzip2.NewReader(r))
	for {
		e, err := ir.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error reading index: %v", err)
		}

		fmt.Println(e.String())
	}
}

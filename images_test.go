package wikiextract

import (
	"reflect"
	"testing"
)

const imageMarkup = `'''Sponges''' are animals of the phylum Porifera.
[[File:Aplysina archeri.jpg|thumb|250px|A stove-pipe sponge]]
Some text between images.
<!-- [[File:Commented out.jpg|thumb|still counts]] -->
<nowiki>[[File:Nowiki.jpg]]</nowiki>
[[File:Spongia officinalis.jpg|thumb|right|200px|The kitchen sponge]]
`

func TestImageSearch(t *testing.T) {
	exp := []string{
		"Aplysina archeri.jpg",
		"Commented out.jpg",
		"Spongia officinalis.jpg",
	}
	found := FindFiles(imageMarkup)
	if !reflect.DeepEqual(exp, found) {
		t.Fatalf("Expected %#v, got %#v", exp, found)
	}
}

func TestImageUrling(t *testing.T) {
	tests := []struct {
		src string
		exp string
	}{
		{
			"Aplysina archeri.jpg",
			"http://upload.wikimedia.org/wikipedia/commons/c/c0/Aplysina_archeri.jpg",
		},
		{
			"Stade de France.jpg",
			"http://upload.wikimedia.org/wikipedia/commons/f/f4/Stade_de_France.jpg",
		},
	}

	for _, test := range tests {
		if got := URLForFile(test.src); got != test.exp {
			t.Fatalf("Expected %v, got %v", test.exp, got)
		}
	}
}

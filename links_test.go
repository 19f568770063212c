package wikiextract

import (
	"reflect"
	"testing"
)

const linkMarkup = `'''Anchorage''' is a city in [[Alaska]], at the head of
[[Cook Inlet]].<!-- [[Hidden Link]] -->
It was named for [[Anchorage, Alaska|the anchorage]] nearby.
<nowiki>[[Not A Link]]</nowiki>
See also [[w:History of Alaska|its history]].
[[File:Anchorage skyline.jpg|thumb|Downtown]]
`

func TestFindLinks(t *testing.T) {
	exp := []string{
		"Alaska",
		"Cook Inlet",
		"Anchorage, Alaska",
		"w:History of Alaska",
		"File:Anchorage skyline.jpg",
	}
	got := FindLinks(linkMarkup)
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("Expected %#v, got %#v", exp, got)
	}
}

func TestFindLinksNone(t *testing.T) {
	if got := FindLinks("no links here"); len(got) != 0 {
		t.Fatalf("Expected no links, got %#v", got)
	}
}

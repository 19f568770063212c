// Package wikiextract converts wikipedia xml dumps into plain text, one
// document per accepted article, with templates, tables, links, formatting
// and html markup removed or normalized.
//
// The dumps are available from the wikimedia group here:
//    http://dumps.wikimedia.org/
//
// The package favors throughput over fidelity: it reconstructs pages from
// raw dump lines without a validating parser, and cleans markup with
// good-enough heuristics rather than a full wikitext engine. Templates are
// deleted, never expanded.
//
// See the programs under tools for ways of driving an extraction.
package wikiextract

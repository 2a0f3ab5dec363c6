package pagination

import (
	"net/http"
	"strings"
)

// Link header relation names understood by ParseLinks.
const (
	relNext     = "next"
	relPrevious = "previous"
)

// Links holds the pagination URLs extracted from a Link response header.
// An empty field means the corresponding page does not exist.
type Links struct {
	Next     string
	Previous string
}

// ParseLinks extracts pagination URLs from an RFC 5988 style Link header:
//
//	Link: <https://api.example.com/products.json?page_info=abc>; rel="next",
//	      <https://api.example.com/products.json?page_info=xyz>; rel="previous"
//
// Header key lookup is case-insensitive. A missing or empty header yields
// zero Links, not an error. Relations other than "next" and "previous" are
// ignored.
func ParseLinks(header http.Header) Links {
	var links Links
	raw := header.Get("Link")
	if raw == "" {
		return links
	}

	for _, field := range splitLinkFields(raw) {
		target, params, ok := strings.Cut(field, ";")
		if !ok {
			continue
		}
		target = strings.TrimSpace(target)
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		target = target[1 : len(target)-1]

		rel := strings.TrimSpace(params)
		rel = strings.TrimPrefix(rel, "rel=")
		rel = strings.Trim(rel, `"`)
		switch strings.ToLower(rel) {
		case relNext:
			links.Next = target
		case relPrevious:
			links.Previous = target
		}
	}
	return links
}

// splitLinkFields splits a Link header value into its link-value fields.
// Commas are legal inside the <...> target's query string (e.g.
// ?fields=id,title), so only commas outside the target delimit fields.
func splitLinkFields(raw string) []string {
	var fields []string
	inTarget := false
	start := 0
	for i, r := range raw {
		switch r {
		case '<':
			inTarget = true
		case '>':
			inTarget = false
		case ',':
			if !inTarget {
				fields = append(fields, raw[start:i])
				start = i + 1
			}
		}
	}
	return append(fields, raw[start:])
}

// Package scrape extracts company profile data from public company pages.
//
// Markup on these pages varies and changes over time, so every extractor in
// this package is best-effort: it either finds its signal, finds part of it,
// or silently yields nothing. None of them abort the rest of the pipeline.
package scrape

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a read-only, queryable view over one parsed company page plus
// the URL it was fetched from. Extractors only read it; callers own it.
type Document struct {
	doc *goquery.Document
	url *url.URL
	raw string
}

// ParseDocument parses HTML from r. pageURL is the absolute URL the document
// was fetched from; it is used to resolve relative links and recorded as the
// source URL of the scraped profile.
func ParseDocument(r io.Reader, pageURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		// Keep the raw string for traceability even if it does not parse;
		// relative links simply will not resolve.
		u = nil
	}
	return &Document{doc: doc, url: u, raw: pageURL}, nil
}

// ParseDocumentString is a convenience wrapper around ParseDocument.
func ParseDocumentString(s, pageURL string) (*Document, error) {
	return ParseDocument(strings.NewReader(s), pageURL)
}

// URL returns the source URL the document was parsed from.
func (d *Document) URL() string { return d.raw }

// resolve turns href into an absolute URL against the document URL. Absolute
// hrefs pass through unchanged; unresolvable ones come back as-is.
func (d *Document) resolve(href string) string {
	if d.url == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return d.url.ResolveReference(ref).String()
}

// collapseText returns the text content of the selection with leading and
// trailing whitespace trimmed and internal whitespace runs collapsed to a
// single space. Text from distinct nodes is joined with spaces so that
// adjacent inline elements do not run together.
func collapseText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return collapseSpaces(strings.Join(parts, " "))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// nodeText is collapseText for a single node.
func nodeText(n *html.Node) string {
	var parts []string
	collectText(n, &parts)
	return collapseSpaces(strings.Join(parts, " "))
}

// ownText is like collapseText but only considers direct text-node children,
// ignoring text nested in child elements.
func ownText(n *html.Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if t := strings.TrimSpace(c.Data); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return collapseSpaces(strings.Join(parts, " "))
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range strings.TrimSpace(s) {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\u00a0' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

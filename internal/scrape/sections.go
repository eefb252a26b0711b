package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minAboutChunkLen filters boilerplate fragments out of the about narrative;
// anything shorter is navigation text, button labels and the like.
const minAboutChunkLen = 30

// sectionFields holds everything the visible page sections can supply.
type sectionFields struct {
	About        string
	Headquarters string
	Founded      string
	CompanySize  string
	Industry     string
	Website      string
	Type         string
	Locations    []Location
}

// extractSections scrapes the visible parts of the page: the About
// narrative, the dt/dd fact list (Headquarters, Founded, ...), and office
// locations.
func extractSections(d *Document) sectionFields {
	out := sectionFields{About: extractAbout(d)}
	extractFactList(d, &out)
	out.Locations = extractLocations(d)
	return out
}

// extractAbout finds the first h2/h3 whose text mentions "about" and joins
// the long-enough paragraph and span texts inside that heading's container.
func extractAbout(d *Document) string {
	var about string
	d.doc.Find("h2, h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(collapseText(h)), "about") {
			return true
		}
		parent := h.Parent()
		if parent.Length() == 0 {
			return false
		}
		var chunks []string
		parent.Find("p, span").Each(func(_ int, s *goquery.Selection) {
			if txt := collapseText(s); len(txt) > minAboutChunkLen {
				chunks = append(chunks, txt)
			}
		})
		about = strings.Join(chunks, " ")
		return false
	})
	return about
}

// extractFactList walks dt/dd pairs. Labels are matched by substring after
// lower-casing; the match order matters since labels like "Company type"
// contain more than one keyword. Industry and website are kept from an
// earlier source when already set, everything else is overwritten by later
// lists, mirroring how the facts appear at most once per page.
func extractFactList(d *Document, out *sectionFields) {
	d.doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		terms := dl.Find("dt")
		defs := dl.Find("dd")
		if terms.Length() == 0 || terms.Length() != defs.Length() {
			return
		}
		for i := 0; i < terms.Length(); i++ {
			label := strings.ToLower(collapseText(terms.Eq(i)))
			dd := defs.Eq(i)
			value := collapseText(dd)
			if label == "" || value == "" {
				continue
			}
			switch {
			case strings.Contains(label, "headquarters"):
				out.Headquarters = value
			case strings.Contains(label, "founded"):
				out.Founded = value
			case strings.Contains(label, "company size"):
				out.CompanySize = value
			case strings.Contains(label, "industry"):
				if out.Industry == "" {
					out.Industry = value
				}
			case strings.Contains(label, "website"):
				if out.Website == "" {
					if href, ok := dd.Find("a[href]").First().Attr("href"); ok {
						out.Website = href
					} else {
						out.Website = value
					}
				}
			case strings.Contains(label, "type"):
				out.Type = value
			}
		}
	})
}

// extractLocations collects address elements, taking any embedded link as a
// map URL. Pages without address markup fall back to "get directions" links,
// whose aria-label usually carries the street address.
func extractLocations(d *Document) []Location {
	var locations []Location
	d.doc.Find("address").Each(func(_ int, addr *goquery.Selection) {
		text := collapseText(addr)
		if text == "" {
			return
		}
		loc := Location{Address: text}
		if href, ok := addr.Find("a[href]").First().Attr("href"); ok {
			loc.MapURL = href
		}
		locations = append(locations, loc)
	})
	if len(locations) > 0 {
		return locations
	}

	d.doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		label := collapseText(a)
		if !strings.Contains(strings.ToLower(label), "directions") {
			return
		}
		address := a.AttrOr("aria-label", label)
		locations = append(locations, Location{
			Address: address,
			MapURL:  a.AttrOr("href", ""),
		})
	})
	return locations
}

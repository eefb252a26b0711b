package scrape

import "strings"

// Default result caps, matching the public page layout where only a handful
// of employees and recent posts are visible without authentication.
const (
	DefaultMaxEmployees = 4
	DefaultMaxUpdates   = 5
)

// Options bounds the list-producing extractors. Zero values fall back to the
// package defaults.
type Options struct {
	MaxEmployees int
	MaxUpdates   int
}

func (o Options) maxEmployees() int {
	if o.MaxEmployees > 0 {
		return o.MaxEmployees
	}
	return DefaultMaxEmployees
}

func (o Options) maxUpdates() int {
	if o.MaxUpdates > 0 {
		return o.MaxUpdates
	}
	return DefaultMaxUpdates
}

// Location is one office address found on the page.
type Location struct {
	Address string
	MapURL  string
}

// Employee is a public profile link found on the page. Position may be empty
// when no plausible role text was found near the link.
type Employee struct {
	Name       string
	Position   string
	ProfileURL string
}

// Update is one post scraped from the page's activity feed.
type Update struct {
	Text       string
	PostedDate string
	TotalLikes string
}

// SimilarCompany is a related-company reference. Either field may be empty,
// but not both after normalization.
type SimilarCompany struct {
	Name string
	URL  string
}

// RawProfile is the loosely-shaped result of one extraction run, before
// normalization. String fields hold whatever text the page supplied,
// whitespace and all; FollowerCount in particular is raw text such as
// "1,234 followers". Empty string means the field was never found.
type RawProfile struct {
	CompanyName             string
	About                   string
	Tagline                 string
	Website                 string
	Industry                string
	Headquarters            string
	Founded                 string
	CompanySize             string
	Type                    string
	FollowerCount           string
	BackgroundCoverImageURL string
	Locations               []Location
	Employees               []Employee
	Updates                 []Update
	SimilarCompanies        []SimilarCompany
	SourceURL               string
}

// Scrape runs every extractor against the document and merges their partial
// results into one RawProfile.
//
// Merge precedence: JSON-LD wins for the fields it supplies; meta tags fill
// only still-unset fields; visible sections fill only still-unset fields;
// employee and update lists attach when non-empty. If no extractor produced
// a company name, the <title> text before the first "|" is used as a last
// resort.
func Scrape(d *Document, opts Options) RawProfile {
	p := RawProfile{SourceURL: d.URL()}

	ld := extractJSONLD(d)
	p.CompanyName = ld.Name
	p.About = ld.Description
	p.Website = ld.URL

	m := extractMeta(d)
	fill(&p.CompanyName, m.Title)
	fill(&p.Tagline, m.Description)
	fill(&p.BackgroundCoverImageURL, m.Image)
	fill(&p.FollowerCount, m.FollowerCount)
	fill(&p.Industry, m.Industry)

	s := extractSections(d)
	fill(&p.About, s.About)
	fill(&p.Headquarters, s.Headquarters)
	fill(&p.Founded, s.Founded)
	fill(&p.CompanySize, s.CompanySize)
	fill(&p.Industry, s.Industry)
	fill(&p.Website, s.Website)
	fill(&p.Type, s.Type)
	p.Locations = s.Locations

	p.Employees = extractEmployees(d, opts.maxEmployees())
	p.Updates = extractUpdates(d, opts.maxUpdates())
	p.SimilarCompanies = extractSimilar(d)

	if p.CompanyName == "" {
		p.CompanyName = titleFallback(d)
	}
	return p
}

// fill sets *dst to v only when *dst is still empty.
func fill(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

// titleFallback derives a company name from the document title. Page titles
// typically read "Acme Corp | <site name>", so everything after the first
// "|" is dropped.
func titleFallback(d *Document) string {
	title := collapseText(d.doc.Find("title").First())
	if title == "" {
		return ""
	}
	if i := strings.Index(title, "|"); i >= 0 {
		return strings.TrimSpace(title[:i])
	}
	return title
}

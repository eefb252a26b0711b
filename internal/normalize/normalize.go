// Package normalize converts raw scraped profiles into the canonical output
// schema: trimmed, whitespace-collapsed text, integer counts, filtered lists
// and a stable identifier derived from the source URL. Absent fields are
// omitted from the JSON output rather than emitted empty.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"companyscrape/internal/scrape"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	countRe         = regexp.MustCompile(`[\d,]*\d[\d,]*`)
	universalNameRe = regexp.MustCompile(`/company/([^/?#]+)/?`)
)

// Location is one cleaned office address.
type Location struct {
	Address string `json:"address,omitempty"`
	MapURL  string `json:"map_url,omitempty"`
}

// Employee is one cleaned public profile reference.
type Employee struct {
	Name       string `json:"employee_name"`
	Position   string `json:"employee_position,omitempty"`
	ProfileURL string `json:"employee_profile_url,omitempty"`
}

// Update is one cleaned activity post.
type Update struct {
	Text       string `json:"text"`
	PostedDate string `json:"articlePostedDate,omitempty"`
	TotalLikes string `json:"totalLikes,omitempty"`
}

// SimilarCompany is one cleaned related-company reference.
type SimilarCompany struct {
	Name string `json:"company_name,omitempty"`
	URL  string `json:"profile_url,omitempty"`
}

// Company is the canonical output record. Field order here fixes the JSON
// key order; source_url stays last for traceability. Every present string is
// non-empty and whitespace-collapsed, present lists are non-empty, and
// follower_count is a true integer.
type Company struct {
	CompanyName             string           `json:"company_name,omitempty"`
	UniversalNameID         string           `json:"universal_name_id,omitempty"`
	BackgroundCoverImageURL string           `json:"background_cover_image_url,omitempty"`
	Industry                string           `json:"industry,omitempty"`
	FollowerCount           int              `json:"follower_count,omitempty"`
	Tagline                 string           `json:"tagline,omitempty"`
	About                   string           `json:"about,omitempty"`
	Website                 string           `json:"website,omitempty"`
	CompanySize             string           `json:"company_size,omitempty"`
	Headquarters            string           `json:"headquarters,omitempty"`
	Type                    string           `json:"type,omitempty"`
	Founded                 string           `json:"founded,omitempty"`
	Locations               []Location       `json:"locations,omitempty"`
	Employees               []Employee       `json:"employees,omitempty"`
	Updates                 []Update         `json:"updates,omitempty"`
	SimilarCompanies        []SimilarCompany `json:"similar_companies,omitempty"`
	SourceURL               string           `json:"source_url,omitempty"`
}

// CleanText trims s and collapses internal whitespace runs to single spaces.
// All-whitespace input becomes the empty string, which downstream means
// "absent".
func CleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// ParseCount extracts the first digit run (grouping commas allowed) from
// text like "1,234 followers" and returns it as an integer. ok is false when
// no digits are present.
func ParseCount(s string) (n int, ok bool) {
	m := countRe.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// UniversalNameID derives the stable company slug from a profile URL of the
// form .../company/<slug>/... and returns "" when the URL has no such
// segment.
func UniversalNameID(sourceURL string) string {
	m := universalNameRe.FindStringSubmatch(sourceURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// Normalize converts a raw profile into the canonical record. ok is false
// when the page yielded no signal beyond its own URL; such records are
// dropped rather than emitted nearly empty. Normalizing an already
// normalized record changes nothing.
func Normalize(raw scrape.RawProfile) (Company, bool) {
	c := Company{
		CompanyName:             CleanText(raw.CompanyName),
		UniversalNameID:         UniversalNameID(raw.SourceURL),
		BackgroundCoverImageURL: CleanText(raw.BackgroundCoverImageURL),
		Industry:                CleanText(raw.Industry),
		Tagline:                 CleanText(raw.Tagline),
		About:                   CleanText(raw.About),
		Website:                 CleanText(raw.Website),
		CompanySize:             CleanText(raw.CompanySize),
		Headquarters:            CleanText(raw.Headquarters),
		Type:                    CleanText(raw.Type),
		Founded:                 CleanText(raw.Founded),
		SourceURL:               CleanText(raw.SourceURL),
	}
	if n, ok := ParseCount(raw.FollowerCount); ok {
		c.FollowerCount = n
	}

	for _, loc := range raw.Locations {
		addr := CleanText(loc.Address)
		mapURL := CleanText(loc.MapURL)
		if addr == "" && mapURL == "" {
			continue
		}
		c.Locations = append(c.Locations, Location{Address: addr, MapURL: mapURL})
	}

	for _, emp := range raw.Employees {
		name := CleanText(emp.Name)
		if name == "" {
			continue
		}
		c.Employees = append(c.Employees, Employee{
			Name:       name,
			Position:   CleanText(emp.Position),
			ProfileURL: CleanText(emp.ProfileURL),
		})
	}

	for _, upd := range raw.Updates {
		text := CleanText(upd.Text)
		if text == "" {
			continue
		}
		c.Updates = append(c.Updates, Update{
			Text:       text,
			PostedDate: CleanText(upd.PostedDate),
			TotalLikes: CleanText(upd.TotalLikes),
		})
	}

	for _, sim := range raw.SimilarCompanies {
		name := CleanText(sim.Name)
		u := CleanText(sim.URL)
		if name == "" && u == "" {
			continue
		}
		c.SimilarCompanies = append(c.SimilarCompanies, SimilarCompany{Name: name, URL: u})
	}

	return c, c.hasSignal()
}

// hasSignal reports whether anything besides the source URL and the slug
// derived from it was extracted.
func (c Company) hasSignal() bool {
	return c.CompanyName != "" ||
		c.BackgroundCoverImageURL != "" ||
		c.Industry != "" ||
		c.FollowerCount != 0 ||
		c.Tagline != "" ||
		c.About != "" ||
		c.Website != "" ||
		c.CompanySize != "" ||
		c.Headquarters != "" ||
		c.Type != "" ||
		c.Founded != "" ||
		len(c.Locations) > 0 ||
		len(c.Employees) > 0 ||
		len(c.Updates) > 0 ||
		len(c.SimilarCompanies) > 0
}

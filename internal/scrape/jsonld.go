package scrape

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"
)

// jsonLDFields holds the organization fields embedded JSON-LD can supply.
type jsonLDFields struct {
	Name        string
	Description string
	URL         string
}

type jsonLDRecord struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// extractJSONLD scans script[type="application/ld+json"] blocks for records
// typed Organization or Corporation. A block may be a single record or an
// array of records; blocks that fail to decode are skipped. Across blocks the
// first seen value for each field wins.
func extractJSONLD(d *Document) jsonLDFields {
	var out jsonLDFields
	d.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := s.Text()
		if raw == "" {
			return
		}
		for _, rec := range decodeJSONLD([]byte(raw)) {
			if rec.Type != "Organization" && rec.Type != "Corporation" {
				continue
			}
			fill(&out.Name, rec.Name)
			fill(&out.Description, rec.Description)
			fill(&out.URL, rec.URL)
		}
	})
	return out
}

func decodeJSONLD(raw []byte) []jsonLDRecord {
	var one jsonLDRecord
	if err := json.Unmarshal(raw, &one); err == nil {
		return []jsonLDRecord{one}
	}
	var many []jsonLDRecord
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	return nil
}

package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var similarHeadingKeywords = []string{"similar", "also viewed", "other pages"}

// extractSimilar scrapes related-company links from sections whose heading
// suggests a "similar pages" rail. Unlike the employee scan there is no
// whole-document fallback: company links appear all over a page, and only
// the ones inside a matching section mean "similar".
func extractSimilar(d *Document) []SimilarCompany {
	var similar []SimilarCompany
	seen := make(map[string]bool)

	d.doc.Find("section, div").Each(func(_ int, s *goquery.Selection) {
		heading := strings.ToLower(collapseText(s.Find("h2, h3, h4").First()))
		if heading == "" || !containsAny(heading, similarHeadingKeywords) {
			return
		}
		s.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href := a.AttrOr("href", "")
			if !strings.Contains(href, "/company/") {
				return
			}
			u := d.resolve(href)
			if seen[u] {
				return
			}
			seen[u] = true
			similar = append(similar, SimilarCompany{
				Name: collapseText(a),
				URL:  u,
			})
		})
	})
	return similar
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

package scrape

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Position text bounds. Shorter strings are icons or glue text, longer ones
// are bios or whole cards that swallowed the layout.
const (
	minPositionLen = 6
	maxPositionLen = 119
)

var employeeHeadingKeywords = []string{"employees", "people", "team"}

// extractEmployees scrapes public profile links from sections whose heading
// mentions employees, people or a team; when no such section exists the whole
// document is scanned. Links are deduplicated by resolved URL and the scan
// stops as soon as max entries have been collected, even mid-container.
func extractEmployees(d *Document, max int) []Employee {
	candidates := employeeContainers(d)

	var employees []Employee
	seen := make(map[string]bool)

	for _, container := range candidates {
		done := false
		container.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href := a.AttrOr("href", "")
			if !strings.Contains(href, "/in/") {
				return true
			}
			profileURL := d.resolve(href)
			if seen[profileURL] {
				return true
			}
			name := collapseText(a)
			if name == "" {
				return true
			}
			employees = append(employees, Employee{
				Name:       name,
				Position:   inferPosition(a),
				ProfileURL: profileURL,
			})
			seen[profileURL] = true
			if len(employees) >= max {
				done = true
				return false
			}
			return true
		})
		if done {
			break
		}
	}
	return employees
}

// employeeContainers returns the section/div subtrees whose first heading
// matches one of the keywords, falling back to the document root.
func employeeContainers(d *Document) []*goquery.Selection {
	var candidates []*goquery.Selection
	d.doc.Find("section, div").Each(func(_ int, s *goquery.Selection) {
		heading := collapseText(s.Find("h2, h3, h4").First())
		if heading == "" {
			return
		}
		if containsAny(strings.ToLower(heading), employeeHeadingKeywords) {
			candidates = append(candidates, s)
		}
	})
	if len(candidates) == 0 {
		candidates = []*goquery.Selection{d.doc.Selection}
	}
	return candidates
}

// inferPosition looks for role text near a profile link: first among the
// link's direct sibling span/div elements, then among the grandparent's
// direct span/div children.
func inferPosition(a *goquery.Selection) string {
	if len(a.Nodes) == 0 {
		return ""
	}
	link := a.Nodes[0]
	parent := link.Parent
	if parent == nil {
		return ""
	}
	if pos := positionAmongChildren(parent, link); pos != "" {
		return pos
	}
	if gp := parent.Parent; gp != nil {
		return positionAmongChildren(gp, nil)
	}
	return ""
}

func positionAmongChildren(parent, skip *html.Node) string {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c == skip || c.Type != html.ElementNode {
			continue
		}
		if c.Data != "span" && c.Data != "div" {
			continue
		}
		txt := nodeText(c)
		if n := utf8.RuneCountInString(txt); n >= minPositionLen && n <= maxPositionLen {
			return txt
		}
	}
	return ""
}

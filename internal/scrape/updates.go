package scrape

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// Post bodies shorter than this are headlines or buttons, not posts.
	minUpdateLen = 20
	// Relative-time labels are short strings like "1w" or "2 weeks ago";
	// longer digit-bearing spans are something else.
	maxTimeLabelLen = 20
)

// extractUpdates scrapes recent posts from feed-item containers, identified
// by their data-urn attribute. Each post needs a body of at least
// minUpdateLen characters; a relative-time label and a like count are
// attached when found. The scan stops at max posts.
func extractUpdates(d *Document, max int) []Update {
	var updates []Update
	d.doc.Find("article[data-urn], div[data-urn]").EachWithBreak(func(_ int, c *goquery.Selection) bool {
		body := firstTextElement(c, "p", "span")
		if body == nil {
			return true
		}
		text := nodeText(body)
		if utf8.RuneCountInString(text) < minUpdateLen {
			return true
		}

		u := Update{Text: text}
		eachOwnTextNode(c, "span", func(txt string) bool {
			if u.PostedDate == "" && containsDigit(txt) && utf8.RuneCountInString(txt) <= maxTimeLabelLen {
				u.PostedDate = txt
			}
			if strings.Contains(strings.ToLower(txt), "like") && containsDigit(txt) {
				u.TotalLikes = txt
				return false
			}
			return true
		})

		updates = append(updates, u)
		return len(updates) < max
	})
	return updates
}

// firstTextElement returns the first descendant with one of the given tags
// that has direct text content of its own.
func firstTextElement(sel *goquery.Selection, tags ...string) *html.Node {
	var found *html.Node
	sel.Find(strings.Join(tags, ", ")).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(s.Nodes) > 0 && ownText(s.Nodes[0]) != "" {
			found = s.Nodes[0]
			return false
		}
		return true
	})
	return found
}

// eachOwnTextNode calls fn with the own-text of every matching descendant
// that has any, stopping when fn returns false.
func eachOwnTextNode(sel *goquery.Selection, tag string, fn func(txt string) bool) {
	sel.Find(tag).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(s.Nodes) == 0 {
			return true
		}
		txt := ownText(s.Nodes[0])
		if txt == "" {
			return true
		}
		return fn(txt)
	})
}

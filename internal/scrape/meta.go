package scrape

// metaFields holds what the page's meta tags can supply. Title maps to the
// company name, Description to the tagline. All fields are raw content
// attribute values; absent tags leave fields empty.
type metaFields struct {
	Title         string
	Description   string
	Image         string
	FollowerCount string
	Industry      string
}

// extractMeta reads the Open Graph tags plus the two named meta tags the
// site sometimes emits for follower count and industry.
func extractMeta(d *Document) metaFields {
	return metaFields{
		Title:         metaContent(d, `meta[property="og:title"]`),
		Description:   metaContent(d, `meta[property="og:description"]`),
		Image:         metaContent(d, `meta[property="og:image"]`),
		FollowerCount: metaContent(d, `meta[name="followersCount"]`),
		Industry:      metaContent(d, `meta[name="industry"]`),
	}
}

func metaContent(d *Document, selector string) string {
	return d.doc.Find(selector).First().AttrOr("content", "")
}

package scrape

import "testing"

func TestEmployees_DedupByResolvedURL(t *testing.T) {
	html := `<html><body><section>
	<h2>People at Acme</h2>
	<a href="/in/jane-doe">Jane Doe</a>
	<a href="https://example.com/in/jane-doe">Jane Doe</a>
	<a href="/in/roy-runner">Roy Runner</a>
	</section></body></html>`

	got := extractEmployees(mustDoc(t, html, "https://example.com/company/acme/"), 4)
	if len(got) != 2 {
		t.Fatalf("expected 2 employees after dedup, got %d", len(got))
	}
	if got[0].ProfileURL != "https://example.com/in/jane-doe" {
		t.Fatalf("expected relative link resolved, got %q", got[0].ProfileURL)
	}
	if got[1].Name != "Roy Runner" {
		t.Fatalf("expected second distinct employee, got %q", got[1].Name)
	}
}

func TestEmployees_CapInDocumentOrder(t *testing.T) {
	html := `<html><body><div>
	<h3>Employees</h3>
	<a href="/in/a">Ann Smith</a>
	<a href="/in/b">Bob Jones</a>
	<a href="/in/c">Cal Brown</a>
	</div></body></html>`

	got := extractEmployees(mustDoc(t, html, "https://example.com"), 2)
	if len(got) != 2 {
		t.Fatalf("expected cap of 2, got %d", len(got))
	}
	if got[0].Name != "Ann Smith" || got[1].Name != "Bob Jones" {
		t.Fatalf("expected document order, got %q then %q", got[0].Name, got[1].Name)
	}
}

func TestEmployees_WholeDocumentFallback(t *testing.T) {
	html := `<html><body>
	<p>No matching heading anywhere.</p>
	<a href="/in/lone-profile">Lone Profile</a>
	</body></html>`

	got := extractEmployees(mustDoc(t, html, "https://example.com"), 4)
	if len(got) != 1 {
		t.Fatalf("expected whole-document fallback to find 1, got %d", len(got))
	}
}

func TestEmployees_PositionFromSibling(t *testing.T) {
	html := `<html><body><section>
	<h2>Our Team</h2>
	<div><a href="/in/jane">Jane Doe</a><span>Chief Engineer</span></div>
	</section></body></html>`

	got := extractEmployees(mustDoc(t, html, "https://example.com"), 4)
	if len(got) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(got))
	}
	if got[0].Position != "Chief Engineer" {
		t.Fatalf("position: got %q", got[0].Position)
	}
}

func TestEmployees_PositionFromGrandparent(t *testing.T) {
	// The link's own wrapper has no usable sibling; the role text sits one
	// level up. The wrapper's text is too short to qualify as a position.
	html := `<html><body><section>
	<h2>Our Team</h2>
	<div>
		<div><a href="/in/al">Al</a></div>
		<span>Staff Engineer</span>
	</div>
	</section></body></html>`

	got := extractEmployees(mustDoc(t, html, "https://example.com"), 4)
	if len(got) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(got))
	}
	if got[0].Position != "Staff Engineer" {
		t.Fatalf("position: got %q", got[0].Position)
	}
}

func TestEmployees_PositionLengthBounds(t *testing.T) {
	html := `<html><body><section>
	<h2>Team</h2>
	<div><a href="/in/jane">Jane Doe</a><span>CEO</span></div>
	</section></body></html>`

	got := extractEmployees(mustDoc(t, html, "https://example.com"), 4)
	if len(got) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(got))
	}
	if got[0].Position != "" {
		t.Fatalf("expected too-short role text rejected, got %q", got[0].Position)
	}
}

func TestEmployees_EmptyLinkTextSkipped(t *testing.T) {
	html := `<html><body><section>
	<h2>People</h2>
	<a href="/in/ghost"></a>
	<a href="/in/real">Real Person</a>
	</section></body></html>`

	got := extractEmployees(mustDoc(t, html, "https://example.com"), 4)
	if len(got) != 1 || got[0].Name != "Real Person" {
		t.Fatalf("expected only the named link, got %+v", got)
	}
}

func TestEmployees_NonProfileLinksIgnored(t *testing.T) {
	html := `<html><body><section>
	<h2>People</h2>
	<a href="/company/other">Other Corp</a>
	</section></body></html>`

	if got := extractEmployees(mustDoc(t, html, "https://example.com"), 4); len(got) != 0 {
		t.Fatalf("expected no employees, got %+v", got)
	}
}

package cache

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestHTTPCache_SaveAndLoad(t *testing.T) {
	c := &HTTPCache{Dir: t.TempDir()}
	url := "https://example.com/company/acme/"
	if err := c.Save(context.Background(), url, "text/html", `"etag1"`, "Mon, 01 Jan 2024 00:00:00 GMT", []byte("<html>acme</html>")); err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := c.LoadMeta(context.Background(), url)
	if err != nil {
		t.Fatalf("load meta: %v", err)
	}
	if meta.ETag != `"etag1"` || meta.ContentType != "text/html" {
		t.Fatalf("unexpected meta: %+v", meta)
	}

	body, err := c.LoadBody(context.Background(), url)
	if err != nil {
		t.Fatalf("load body: %v", err)
	}
	if string(body) != "<html>acme</html>" {
		t.Fatalf("unexpected body: %q", string(body))
	}
}

func TestHTTPCache_MissIsError(t *testing.T) {
	c := &HTTPCache{Dir: t.TempDir()}
	if _, err := c.LoadMeta(context.Background(), "https://example.com/never-saved"); err == nil {
		t.Fatalf("expected miss error")
	}
}

func TestPurgeByAge_RemovesOnlyExpired(t *testing.T) {
	dir := t.TempDir()
	c := &HTTPCache{Dir: dir}
	old := "https://example.com/old"
	fresh := "https://example.com/fresh"
	for _, u := range []string{old, fresh} {
		if err := c.Save(context.Background(), u, "text/html", "", "", []byte("body")); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	// Backdate the old entry's SavedAt by rewriting its meta.
	meta, err := c.LoadMeta(context.Background(), old)
	if err != nil {
		t.Fatalf("load meta: %v", err)
	}
	meta.SavedAt = time.Now().UTC().Add(-48 * time.Hour)
	if err := writeMetaForTest(c, old, meta); err != nil {
		t.Fatalf("rewrite meta: %v", err)
	}

	removed, err := PurgeByAge(dir, 24*time.Hour)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, err := c.LoadBody(context.Background(), old); err == nil {
		t.Fatalf("expected old entry gone")
	}
	if _, err := c.LoadBody(context.Background(), fresh); err != nil {
		t.Fatalf("expected fresh entry kept: %v", err)
	}
}

func TestClearDir_LeavesEmptyDir(t *testing.T) {
	dir := t.TempDir()
	c := &HTTPCache{Dir: dir}
	if err := c.Save(context.Background(), "https://example.com/x", "text/html", "", "", []byte("body")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := ClearDir(dir); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty dir, found %d entries", len(entries))
	}
}

func writeMetaForTest(c *HTTPCache, url string, e *Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return os.WriteFile(c.metaPath(c.key(url)), b, 0o644)
}

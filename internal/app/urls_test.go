package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadURLList_SkipsBlanksAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "# company pages\n\nhttps://example.com/company/acme/\n   \nhttps://example.com/company/beep/\n# trailing comment\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	urls, err := ReadURLList(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{
		"https://example.com/company/acme/",
		"https://example.com/company/beep/",
	}
	if len(urls) != len(want) {
		t.Fatalf("got %d urls: %v", len(urls), urls)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("url %d: got %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestReadURLList_MissingFile(t *testing.T) {
	if _, err := ReadURLList(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

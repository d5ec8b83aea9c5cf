package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/factdesk/factdesk/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data.json"))
}

func TestLoad_MissingFile(t *testing.T) {
	s := tempStore(t)

	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty dataset, got %d entries", len(entries))
	}
}

func TestSave_ReassignsIDsAndRoundTrips(t *testing.T) {
	s := tempStore(t)

	saved, err := s.Save([]model.Entry{
		{ID: 12, SocialLink: "https://youtu.be/a", PolitifactHeadline: "first"},
		{ID: 3, SocialLink: "https://www.tiktok.com/@u/video/2", PolitifactHeadline: "second"},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved[0].ID != 0 || saved[1].ID != 1 {
		t.Errorf("expected dense IDs 0,1, got %d,%d", saved[0].ID, saved[1].ID)
	}
	if saved[0].SocialPlatform != "youtube" {
		t.Errorf("expected platform derived on save, got %q", saved[0].SocialPlatform)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", len(loaded))
	}
	if loaded[1].PolitifactHeadline != "second" {
		t.Errorf("round trip lost data: %q", loaded[1].PolitifactHeadline)
	}
}

func TestLoad_BackfillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	legacy := `[{"id": 0, "politifact_url": "https://www.politifact.com/x/",
		"external_links_info": [{"url": "https://example.com/e", "description": "d"}]}]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	checklist := entries[0].ExternalLinks[0].Checklist
	if len(checklist) != len(model.EvidenceCriteria) {
		t.Errorf("expected checklist backfilled with %d keys, got %d", len(model.EvidenceCriteria), len(checklist))
	}
	for _, c := range model.EvidenceCriteria {
		if checklist[c.Key] {
			t.Errorf("expected criterion %q to default to false", c.Key)
		}
	}
}

func TestImport_RejectsNonArray(t *testing.T) {
	s := tempStore(t)

	if _, err := s.Import([]byte(`{"id": 0}`)); err == nil {
		t.Error("expected error importing a non-array document")
	}
	if _, err := s.Import([]byte(`not json`)); err == nil {
		t.Error("expected error importing malformed JSON")
	}

	n, err := s.Import([]byte(`[{"id": 5, "social_link": "https://x.com/s/1"}]`))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 imported entry, got %d", n)
	}
}

func TestSave_DropsEmptyURLLinks(t *testing.T) {
	s := tempStore(t)

	saved, err := s.Save([]model.Entry{{
		ExternalLinks: []model.EvidenceLink{
			{URL: "   "},
			{URL: "https://example.com/keep"},
		},
	}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(saved[0].ExternalLinks) != 1 {
		t.Fatalf("expected 1 link after save, got %d", len(saved[0].ExternalLinks))
	}
	if saved[0].ExternalLinks[0].URL != "https://example.com/keep" {
		t.Errorf("wrong link survived: %q", saved[0].ExternalLinks[0].URL)
	}
}

package snapshot

import (
	"path/filepath"
	"testing"
	"time"

	"puredesign/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "snapshot.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	want := &Snapshot{
		Hero:    models.HeroBlock{HeadlineFirst: "PURE", HeadlineSecond: "DESIGN", Subhead: "sub"},
		About:   models.AboutBlock{Tag: "Who I am", Stats: []models.Stat{{Num: "08+", Label: "Years Exp"}}},
		Contact: models.ContactBlock{Email: "hello@daniyar.design"},
		Projects: []models.Project{{
			ID:      "abc123",
			Title:   "Case",
			Content: []models.ContentBlock{{ID: "b1", Type: models.BlockImage, Value: "https://cdn.example/1.jpg"}},
		}},
		Language: models.LocaleRUS,
		Inquiries: []models.Inquiry{
			models.NewInquiry(models.InquiryDraft{FirstName: "Aliya", Email: "a@example.com"}, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		},
		Categories: []string{"Branding", "3D"},
	}

	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("expected snapshot, got nil")
	}

	if got.Hero != want.Hero {
		t.Errorf("hero: got %+v", got.Hero)
	}
	if got.Language != models.LocaleRUS {
		t.Errorf("language: got %q", got.Language)
	}
	if len(got.Projects) != 1 || got.Projects[0].ID != "abc123" {
		t.Errorf("projects: got %+v", got.Projects)
	}
	if len(got.Projects[0].Content) != 1 || got.Projects[0].Content[0].Type != models.BlockImage {
		t.Errorf("project content: got %+v", got.Projects[0].Content)
	}
	if len(got.Inquiries) != 1 || got.Inquiries[0].FirstName != "Aliya" {
		t.Errorf("inquiries: got %+v", got.Inquiries)
	}
	if len(got.Categories) != 2 {
		t.Errorf("categories: got %v", got.Categories)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil snapshot, got %+v", got)
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	s, _ := NewFileStore(filepath.Join(t.TempDir(), "snap.json"))

	s.Save(&Snapshot{Language: models.LocaleENG})
	s.Save(&Snapshot{Language: models.LocaleKAZ})

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Language != models.LocaleKAZ {
		t.Errorf("language: got %q, want KAZ", got.Language)
	}
}

// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"puredesign/internal/docstore"
	"puredesign/internal/models"
)

func TestUpdateHeroHandler(t *testing.T) {
	a, st, docs := newAdmin(t)

	body := `{"headlineFirst":"FRESH"}`
	req := httptest.NewRequest(http.MethodPut, "/admin/api/content/hero", strings.NewReader(body))
	rr := httptest.NewRecorder()
	a.UpdateHero(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}

	var hero models.HeroBlock
	if err := json.NewDecoder(rr.Body).Decode(&hero); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if hero.HeadlineFirst != "FRESH" {
		t.Errorf("hero: %+v", hero)
	}
	if got := st.Content().Hero.HeadlineFirst; got != "FRESH" {
		t.Errorf("state hero: got %q", got)
	}
	if _, err := docs.Get(context.Background(), docstore.CollectionContent, docstore.ContentDocID); err != nil {
		t.Errorf("remote content doc missing: %v", err)
	}
}

func TestUpdateTranslationHandler(t *testing.T) {
	a, st, _ := newAdmin(t)

	body := `{"title":"Процесс работы"}`
	req := httptest.NewRequest(http.MethodPut, "/admin/api/translations/RUS/process", strings.NewReader(body))
	req = withURLParam(req, "locale", "RUS")
	req = withURLParam(req, "section", "process")
	rr := httptest.NewRecorder()
	a.UpdateTranslation(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}
	if got := st.Content().Translations[models.LocaleRUS].Process.Title; got != "Процесс работы" {
		t.Errorf("RUS process title: got %q", got)
	}
}

func TestUpdateTranslationHandlerRejectsUnknownSection(t *testing.T) {
	a, _, _ := newAdmin(t)

	req := httptest.NewRequest(http.MethodPut, "/admin/api/translations/RUS/footer", strings.NewReader(`{"x":1}`))
	req = withURLParam(req, "locale", "RUS")
	req = withURLParam(req, "section", "footer")
	rr := httptest.NewRecorder()
	a.UpdateTranslation(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", rr.Code)
	}
}

func TestUpdateServicePackageHandler(t *testing.T) {
	a, st, _ := newAdmin(t)

	req := httptest.NewRequest(http.MethodPut, "/admin/api/translations/ENG/packages/0", strings.NewReader(`{"value":"$500"}`))
	req = withURLParam(req, "locale", "ENG")
	req = withURLParam(req, "index", "0")
	rr := httptest.NewRecorder()
	a.UpdateServicePackage(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}
	if got := st.Content().Translations[models.LocaleENG].Services.Packages[0].Value; got != "$500" {
		t.Errorf("package value: got %q", got)
	}
}

func TestUpdateServicePackageHandlerRejectsBadIndex(t *testing.T) {
	a, _, _ := newAdmin(t)

	for _, index := range []string{"99", "-1", "abc"} {
		req := httptest.NewRequest(http.MethodPut, "/admin/api/translations/ENG/packages/"+index, strings.NewReader(`{}`))
		req = withURLParam(req, "locale", "ENG")
		req = withURLParam(req, "index", index)
		rr := httptest.NewRecorder()
		a.UpdateServicePackage(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("index %q: got status %d, want 400", index, rr.Code)
		}
	}
}

func TestProjectCRUDHandlers(t *testing.T) {
	a, st, _ := newAdmin(t)

	// Create.
	req := httptest.NewRequest(http.MethodPost, "/admin/api/projects", strings.NewReader(`{"title":"Case","category":"Branding"}`))
	rr := httptest.NewRecorder()
	a.CreateProject(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got status %d: %s", rr.Code, rr.Body.String())
	}
	var created models.Project
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode created project: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created project has no id")
	}

	// Update.
	req = httptest.NewRequest(http.MethodPut, "/admin/api/projects/"+created.ID, strings.NewReader(`{"title":"Case v2"}`))
	req = withURLParam(req, "id", created.ID)
	rr = httptest.NewRecorder()
	a.UpdateProject(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got status %d: %s", rr.Code, rr.Body.String())
	}
	if p, _ := st.Project(created.ID); p.Title != "Case v2" {
		t.Errorf("title after update: %q", p.Title)
	}

	// Update of a missing project is 404.
	req = httptest.NewRequest(http.MethodPut, "/admin/api/projects/nope", strings.NewReader(`{"title":"x"}`))
	req = withURLParam(req, "id", "nope")
	rr = httptest.NewRecorder()
	a.UpdateProject(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("update missing: got status %d, want 404", rr.Code)
	}

	// Delete.
	req = httptest.NewRequest(http.MethodDelete, "/admin/api/projects/"+created.ID, nil)
	req = withURLParam(req, "id", created.ID)
	rr = httptest.NewRecorder()
	a.DeleteProject(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: got status %d", rr.Code)
	}
	if _, ok := st.Project(created.ID); ok {
		t.Error("project still present after delete")
	}
}

func TestGetProjectMigratesLegacyGallery(t *testing.T) {
	a, st, _ := newAdmin(t)
	st.ReplaceProjects([]models.Project{{
		ID:            "legacy",
		Title:         "Old case",
		GalleryImages: []string{"https://cdn.example/1.jpg", "https://cdn.example/2.jpg"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/admin/api/projects/legacy", nil)
	req = withURLParam(req, "id", "legacy")
	rr := httptest.NewRecorder()
	a.GetProject(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d", rr.Code)
	}
	var p models.Project
	if err := json.NewDecoder(rr.Body).Decode(&p); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if len(p.Content) != 2 {
		t.Fatalf("content blocks: got %d, want 2", len(p.Content))
	}
	if p.Content[0].Type != models.BlockImage || p.Content[0].Value != "https://cdn.example/1.jpg" {
		t.Errorf("first block: %+v", p.Content[0])
	}

	// The stored project stays untouched until the admin saves it.
	stored, _ := st.Project("legacy")
	if len(stored.Content) != 0 {
		t.Errorf("stored project rewritten by read: %+v", stored.Content)
	}
}

func TestCategoryHandlers(t *testing.T) {
	a, st, _ := newAdmin(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/categories", strings.NewReader(`{"name":"Murals"}`))
	rr := httptest.NewRecorder()
	a.CreateCategory(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: got status %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/api/categories/Murals", nil)
	req = withURLParam(req, "name", "Murals")
	rr = httptest.NewRecorder()
	a.DeleteCategory(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: got status %d", rr.Code)
	}
	for _, c := range st.Categories() {
		if c == "Murals" {
			t.Error("category still present after delete")
		}
	}
}

func TestInquiryHandlers(t *testing.T) {
	a, st, _ := newAdmin(t)
	inq := st.AddInquiry(models.InquiryDraft{FirstName: "Aliya", Email: "a@example.com"})

	req := httptest.NewRequest(http.MethodPost, "/admin/api/inquiries/"+inq.ID+"/read", nil)
	req = withURLParam(req, "id", inq.ID)
	rr := httptest.NewRecorder()
	a.MarkInquiryRead(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("mark read: got status %d", rr.Code)
	}
	if got := st.Inquiries(); !got[0].Read {
		t.Error("inquiry not marked read")
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/api/inquiries/"+inq.ID, nil)
	req = withURLParam(req, "id", inq.ID)
	rr = httptest.NewRecorder()
	a.DeleteInquiry(rr, req)
	if got := st.Inquiries(); len(got) != 0 {
		t.Errorf("inquiries after delete: %+v", got)
	}
}

func TestSetLanguageHandler(t *testing.T) {
	a, st, _ := newAdmin(t)

	req := httptest.NewRequest(http.MethodPut, "/admin/api/language", strings.NewReader(`{"language":"KAZ"}`))
	rr := httptest.NewRecorder()
	a.SetLanguage(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d", rr.Code)
	}
	if got := st.Language(); got != models.LocaleKAZ {
		t.Errorf("language: got %q", got)
	}

	req = httptest.NewRequest(http.MethodPut, "/admin/api/language", strings.NewReader(`{"language":"FRA"}`))
	rr = httptest.NewRecorder()
	a.SetLanguage(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("unknown locale: got status %d, want 400", rr.Code)
	}
}

func TestSaveTranslationsHandler(t *testing.T) {
	a, _, docs := newAdmin(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/translations/save", nil)
	rr := httptest.NewRecorder()
	a.SaveTranslations(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rr.Code, rr.Body.String())
	}

	data, err := docs.Get(context.Background(), docstore.CollectionContent, docstore.ContentDocID)
	if err != nil {
		t.Fatalf("content doc missing after save: %v", err)
	}
	var remote struct {
		Translations map[models.Locale]models.LocaleContent `json:"translations"`
	}
	if err := json.Unmarshal(data, &remote); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(remote.Translations) != 3 {
		t.Errorf("translations: got %d locales", len(remote.Translations))
	}
}

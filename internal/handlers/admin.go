// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"puredesign/internal/content"
	"puredesign/internal/models"
	"puredesign/internal/state"
)

// Admin serves the authenticated editor API. Section edits go through the
// synchronization service so the optimistic local write and the remote
// merge stay in one place.
type Admin struct {
	state *state.Store
	svc   *content.Service
}

// NewAdmin creates the admin handler group.
func NewAdmin(st *state.Store, svc *content.Service) *Admin {
	return &Admin{state: st, svc: svc}
}

// UpdateHero applies a partial hero update.
func (a *Admin) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var patch models.HeroPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := a.svc.UpdateHero(r.Context(), patch); err != nil {
		// Local state already applied; report the failed remote write.
		slog.Error("hero remote write failed", "error", err)
		writeError(w, http.StatusBadGateway, "saved locally, remote store unreachable")
		return
	}
	writeJSON(w, http.StatusOK, a.state.Content().Hero)
}

// UpdateAbout applies a partial about update.
func (a *Admin) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var patch models.AboutPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := a.svc.UpdateAbout(r.Context(), patch); err != nil {
		slog.Error("about remote write failed", "error", err)
		writeError(w, http.StatusBadGateway, "saved locally, remote store unreachable")
		return
	}
	writeJSON(w, http.StatusOK, a.state.Content().About)
}

// UpdateContact applies a partial contact update.
func (a *Admin) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var patch models.ContactPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := a.svc.UpdateContact(r.Context(), patch); err != nil {
		slog.Error("contact remote write failed", "error", err)
		writeError(w, http.StatusBadGateway, "saved locally, remote store unreachable")
		return
	}
	writeJSON(w, http.StatusOK, a.state.Content().Contact)
}

// UpdateTranslation edits one section of one locale's translation tree.
// The edit is local; SaveTranslations pushes the tree remotely.
func (a *Admin) UpdateTranslation(w http.ResponseWriter, r *http.Request) {
	locale := models.Locale(chi.URLParam(r, "locale"))
	section := models.Section(chi.URLParam(r, "section"))

	var patch map[string]any
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := a.svc.UpdateTranslation(locale, section, patch); err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, models.ErrUnknownLocale) && !errors.Is(err, models.ErrUnknownSection) {
			status = http.StatusInternalServerError
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a.state.Content().Translations[locale])
}

// UpdateServicePackage edits one service package of one locale, addressed
// by position within the packages list.
func (a *Admin) UpdateServicePackage(w http.ResponseWriter, r *http.Request) {
	locale := models.Locale(chi.URLParam(r, "locale"))
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "package index must be a number")
		return
	}

	var patch models.ServicePackagePatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := a.svc.UpdateServicePackage(locale, index, patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a.state.Content().Translations[locale].Services)
}

// SaveTranslations pushes the whole local translation tree to the remote
// store in one merge.
func (a *Admin) SaveTranslations(w http.ResponseWriter, r *http.Request) {
	if err := a.svc.SaveTranslations(r.Context()); err != nil {
		slog.Error("translations remote write failed", "error", err)
		writeError(w, http.StatusBadGateway, "remote store unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// SetLanguage switches the site's selected locale.
func (a *Admin) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language models.Locale `json:"language"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	if err := a.state.SetLanguage(body.Language); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.Locale{"language": body.Language})
}

// ListProjects returns the project list for the editor.
func (a *Admin) ListProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.state.Projects())
}

// GetProject returns one project for editing. Legacy gallery-only projects
// are migrated to block content on the way out, so the editor only ever
// sees the block shape.
func (a *Admin) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := a.state.Project(id)
	if !ok {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, models.MigrateLegacyGallery(p))
}

// CreateProject stores a new project remotely and prepends it locally.
func (a *Admin) CreateProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if !decodeJSON(w, r, &p) {
		return
	}
	if p.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := a.svc.AddProject(r.Context(), p)
	if err != nil {
		slog.Error("project create failed", "error", err)
		writeError(w, http.StatusBadGateway, "remote store unreachable")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateProject applies a partial project update.
func (a *Admin) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := a.state.Project(id); !ok {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	var patch models.ProjectPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	if err := a.svc.UpdateProject(r.Context(), id, patch); err != nil {
		slog.Error("project remote write failed", "id", id, "error", err)
		writeError(w, http.StatusBadGateway, "remote store unreachable, project unchanged")
		return
	}
	p, _ := a.state.Project(id)
	writeJSON(w, http.StatusOK, p)
}

// DeleteProject removes a project remotely, then locally.
func (a *Admin) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.svc.DeleteProject(r.Context(), id); err != nil {
		slog.Error("project remote delete failed", "id", id, "error", err)
		writeError(w, http.StatusBadGateway, "remote store unreachable, project unchanged")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListCategories returns the category set.
func (a *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.state.Categories())
}

// CreateCategory adds a category. Duplicates are silently ignored.
func (a *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	a.state.AddCategory(body.Name)
	writeJSON(w, http.StatusCreated, a.state.Categories())
}

// DeleteCategory removes a category from the set. Projects referencing it
// keep their value.
func (a *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	a.state.DeleteCategory(chi.URLParam(r, "name"))
	writeJSON(w, http.StatusOK, a.state.Categories())
}

// ListInquiries returns buffered inquiries, newest first.
func (a *Admin) ListInquiries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.state.Inquiries())
}

// MarkInquiryRead flips an inquiry's read flag.
func (a *Admin) MarkInquiryRead(w http.ResponseWriter, r *http.Request) {
	a.state.MarkInquiryRead(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, a.state.Inquiries())
}

// DeleteInquiry removes a buffered inquiry.
func (a *Admin) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	a.state.DeleteInquiry(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, a.state.Inquiries())
}

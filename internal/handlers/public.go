// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"puredesign/internal/models"
	"puredesign/internal/state"
)

// Public serves the read-only site API and the inquiry form endpoint.
type Public struct {
	state *state.Store
}

// NewPublic creates the public handler group.
func NewPublic(st *state.Store) *Public {
	return &Public{state: st}
}

// contentResponse is the payload the site bootstraps from: every section,
// the full translation tree, and the selected locale.
type contentResponse struct {
	Hero         models.HeroBlock                       `json:"hero"`
	About        models.AboutBlock                      `json:"about"`
	Contact      models.ContactBlock                    `json:"contact"`
	Translations map[models.Locale]models.LocaleContent `json:"translations"`
	Language     models.Locale                          `json:"language"`
	Categories   []string                               `json:"categories"`
}

// GetContent returns the full content tree.
func (p *Public) GetContent(w http.ResponseWriter, r *http.Request) {
	c := p.state.Content()
	writeJSON(w, http.StatusOK, contentResponse{
		Hero:         c.Hero,
		About:        c.About,
		Contact:      c.Contact,
		Translations: c.Translations,
		Language:     p.state.Language(),
		Categories:   p.state.Categories(),
	})
}

// GetProjects returns the portfolio list, newest first.
func (p *Public) GetProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.state.Projects())
}

// CreateInquiry accepts a contact/quiz form submission and buffers it as an
// unread inquiry. Sits behind the rate limiter.
func (p *Public) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var draft models.InquiryDraft
	if !decodeJSON(w, r, &draft) {
		return
	}

	draft.FirstName = strings.TrimSpace(draft.FirstName)
	draft.Email = strings.TrimSpace(draft.Email)
	if draft.FirstName == "" || draft.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	if !strings.Contains(draft.Email, "@") {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	inq := p.state.AddInquiry(draft)
	writeJSON(w, http.StatusCreated, inq)
}
